package recommendation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
)

type stubSource struct {
	mu        sync.Mutex
	products  map[string][]domain.ProductCandidate
	err       error
	callCount int
}

func (s *stubSource) FetchCandidates(ctx context.Context, vehicleType string, lookbackMonths int) ([]domain.ProductCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount++
	if s.err != nil {
		return nil, s.err
	}
	return s.products[vehicleType], nil
}

type stubCatalog struct {
	err error
}

func (s *stubCatalog) Get(assetClass domain.AssetClass, vehicleType, riskLevel string) ([]domain.ProductCandidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.ProductCandidate{
		{Name: "Catalog " + vehicleType, Risk: riskLevel, ExpectedReturnPct: 10},
	}, nil
}

type stubCache struct {
	mu      sync.Mutex
	entries map[string][]domain.ProductCandidate
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]domain.ProductCandidate)}
}

func (s *stubCache) GetIfFresh(vehicleType string) ([]domain.ProductCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[vehicleType], nil
}

func (s *stubCache) Store(vehicleType string, candidates []domain.ProductCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[vehicleType] = candidates
	return nil
}

func findVehicle(recs []VehicleRecommendation, vehicle string) *VehicleRecommendation {
	for i := range recs {
		if recs[i].Vehicle == vehicle {
			return &recs[i]
		}
	}
	return nil
}

// allocFor builds a minimal allocation result for assembler tests.
func allocFor(classes map[domain.AssetClass]float64, buckets map[domain.AssetClass]map[string]float64) *allocation.Result {
	return &allocation.Result{
		AssetClasses: classes,
		Detailed:     map[string]float64{domain.KeyTotal: 1},
		ProductTypes: buckets,
	}
}

func TestRecommendGatesPMSBelowMinimumTicket(t *testing.T) {
	assembler := NewAssembler(&stubSource{}, nil, &stubCatalog{}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 80, domain.AssetDebt: 20},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"PMS": 30, "Large Cap": 20, "Mid Cap": 15, "Small Cap": 15},
			domain.AssetDebt:   {"Debt Mutual Funds": 20},
		},
	)

	// 0.4 crore (40 lakh) is below the 50 lakh PMS minimum.
	result, err := assembler.Recommend(context.Background(), domain.Aggressive, alloc, 0.4)
	require.NoError(t, err)

	assert.Nil(t, findVehicle(result.Equity, domain.VehicleEquityPMS))
	mf := findVehicle(result.Equity, domain.VehicleEquityMF)
	require.NotNil(t, mf)
	assert.InDelta(t, 50, mf.AllocationPct, 1e-9)
}

func TestRecommendGatesAIFs(t *testing.T) {
	assembler := NewAssembler(&stubSource{}, nil, &stubCatalog{}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 70, domain.AssetDebt: 30},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"AIF": 40, "Large Cap": 30},
			domain.AssetDebt:   {"Debt AIF": 20, "Debt Mutual Funds": 10},
		},
	)

	t.Run("below both minimums", func(t *testing.T) {
		result, err := assembler.Recommend(context.Background(), domain.Aggressive, alloc, 0.8)
		require.NoError(t, err)
		assert.Nil(t, findVehicle(result.Equity, domain.VehicleEquityAIF))
		assert.Nil(t, findVehicle(result.Debt, domain.VehicleDebtAIF))
	})

	t.Run("equity AIF in, debt AIF out", func(t *testing.T) {
		result, err := assembler.Recommend(context.Background(), domain.Aggressive, alloc, 4)
		require.NoError(t, err)
		assert.NotNil(t, findVehicle(result.Equity, domain.VehicleEquityAIF))
		assert.Nil(t, findVehicle(result.Debt, domain.VehicleDebtAIF))
	})

	t.Run("both in at five crore", func(t *testing.T) {
		result, err := assembler.Recommend(context.Background(), domain.Aggressive, alloc, 5)
		require.NoError(t, err)
		assert.NotNil(t, findVehicle(result.Equity, domain.VehicleEquityAIF))
		assert.NotNil(t, findVehicle(result.Debt, domain.VehicleDebtAIF))
	})
}

func TestRecommendPrefersLiveSourceAndCaches(t *testing.T) {
	source := &stubSource{products: map[string][]domain.ProductCandidate{
		domain.VehicleEquityMF: {{Name: "Live Flexi Cap Fund", ExpectedReturnPct: 13}},
	}}
	cache := newStubCache()
	assembler := NewAssembler(source, cache, &stubCatalog{}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 100},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"Large Cap": 40, "Mid Cap": 30, "Small Cap": 30},
		},
	)

	result, err := assembler.Recommend(context.Background(), domain.UltraAggressive, alloc, 0.5)
	require.NoError(t, err)

	mf := findVehicle(result.Equity, domain.VehicleEquityMF)
	require.NotNil(t, mf)
	assert.Equal(t, "live", mf.Source)
	require.Len(t, mf.Products, 1)
	assert.Equal(t, "Live Flexi Cap Fund", mf.Products[0].Name)

	// Successful fetches are written through to the cache.
	cached, err := cache.GetIfFresh(domain.VehicleEquityMF)
	require.NoError(t, err)
	assert.NotEmpty(t, cached)
}

func TestRecommendCacheHitSkipsSource(t *testing.T) {
	source := &stubSource{err: errors.New("unreachable")}
	cache := newStubCache()
	require.NoError(t, cache.Store(domain.VehicleEquityMF, []domain.ProductCandidate{{Name: "Cached Fund"}}))

	assembler := NewAssembler(source, cache, &stubCatalog{}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 100},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"Large Cap": 100},
		},
	)

	result, err := assembler.Recommend(context.Background(), domain.UltraAggressive, alloc, 0.5)
	require.NoError(t, err)

	mf := findVehicle(result.Equity, domain.VehicleEquityMF)
	require.NotNil(t, mf)
	assert.Equal(t, "live", mf.Source)
	assert.Equal(t, "Cached Fund", mf.Products[0].Name)
	assert.Equal(t, 0, source.callCount)
}

func TestRecommendFallsBackToCatalog(t *testing.T) {
	assembler := NewAssembler(&stubSource{err: errors.New("listing API down")}, nil, &stubCatalog{}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 100},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"Large Cap": 100},
		},
	)

	result, err := assembler.Recommend(context.Background(), domain.Moderate, alloc, 1)
	require.NoError(t, err)

	mf := findVehicle(result.Equity, domain.VehicleEquityMF)
	require.NotNil(t, mf)
	assert.Equal(t, "catalog", mf.Source)
	require.NotEmpty(t, mf.Products)
	assert.Equal(t, "Catalog "+domain.VehicleEquityMF, mf.Products[0].Name)
}

func TestRecommendForcesMutualFundDefaultForEmptyClass(t *testing.T) {
	assembler := NewAssembler(&stubSource{}, nil, &stubCatalog{}, zerolog.Nop())

	// Gold has a nonzero class target but no vehicle buckets at all.
	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 55, domain.AssetDebt: 40, domain.AssetGoldSilver: 5},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"Large Cap": 55},
			domain.AssetDebt:   {"Debt Mutual Funds": 40},
		},
	)

	result, err := assembler.Recommend(context.Background(), domain.Moderate, alloc, 10)
	require.NoError(t, err)

	require.Len(t, result.GoldSilver, 1)
	gold := result.GoldSilver[0]
	assert.Equal(t, domain.VehicleGoldSilverETF, gold.Vehicle)
	assert.InDelta(t, 5, gold.AllocationPct, 1e-9)
	assert.InDelta(t, 0.5, gold.AmountCrore, 1e-4)
	assert.NotEmpty(t, gold.Products)
}

func TestRecommendNeverFailsOnCatalogError(t *testing.T) {
	assembler := NewAssembler(&stubSource{err: errors.New("down")}, nil, &stubCatalog{err: errors.New("catalog broken")}, zerolog.Nop())

	alloc := allocFor(
		map[domain.AssetClass]float64{domain.AssetEquity: 100},
		map[domain.AssetClass]map[string]float64{
			domain.AssetEquity: {"Large Cap": 100},
		},
	)

	result, err := assembler.Recommend(context.Background(), domain.Moderate, alloc, 1)
	require.NoError(t, err)

	// The vehicle survives with an empty product list rather than failing
	// the whole response.
	mf := findVehicle(result.Equity, domain.VehicleEquityMF)
	require.NotNil(t, mf)
	assert.Empty(t, mf.Products)
}

func TestRecommendNilAllocation(t *testing.T) {
	assembler := NewAssembler(&stubSource{}, nil, &stubCatalog{}, zerolog.Nop())

	_, err := assembler.Recommend(context.Background(), domain.Moderate, nil, 1)
	assert.Error(t, err)
}
