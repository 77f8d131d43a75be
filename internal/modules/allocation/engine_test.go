package allocation

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthcraft/advisor/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultSubBucketPolicy(), zerolog.Nop())
}

func detailedSum(detailed map[string]float64) float64 {
	var sum float64
	for vehicle, amount := range detailed {
		if vehicle == domain.KeyTotal {
			continue
		}
		sum += amount
	}
	return sum
}

func TestComputeConservativeSmallBandBoundary(t *testing.T) {
	engine := newTestEngine()

	// Exactly 2 crore still uses the Conservative small-portfolio split.
	result, err := engine.Compute(domain.Conservative, 2)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Detailed[domain.VehicleEquityMF], 1e-9)
	assert.InDelta(t, 0.6, result.Detailed[domain.VehicleDebtMF], 1e-9)
	assert.InDelta(t, 0.4, result.Detailed[domain.VehicleDirectDebt], 1e-9)
	assert.InDelta(t, 2.0, result.Detailed[domain.KeyTotal], 1e-9)
	assert.NotContains(t, result.Detailed, domain.VehicleEquityPMS)

	// Asset view is derived from the same split.
	assert.InDelta(t, 50, result.AssetClasses[domain.AssetEquity], 1e-9)
	assert.InDelta(t, 50, result.AssetClasses[domain.AssetDebt], 1e-9)
}

func TestComputeConservativeJustAboveSmallBand(t *testing.T) {
	engine := newTestEngine()

	// 2.01 crore leaves the small band: PMS appears and the 5 Cr checkpoint
	// row is scaled down.
	result, err := engine.Compute(domain.Conservative, 2.01)
	require.NoError(t, err)

	assert.Contains(t, result.Detailed, domain.VehicleEquityPMS)
	assert.InDelta(t, 2.01, result.Detailed[domain.KeyTotal], 1e-6)
	assert.InDelta(t, 2.01, detailedSum(result.Detailed), 1e-6)
}

func TestComputeAggressiveFixedMidBand(t *testing.T) {
	engine := newTestEngine()

	// Every size in (2, 5] gets the fixed 5 Cr Aggressive program, unscaled.
	for _, size := range []float64{2.01, 3, 4.2, 5} {
		result, err := engine.Compute(domain.Aggressive, size)
		require.NoError(t, err)

		assert.InDelta(t, 2.0, result.Detailed[domain.VehicleEquityAIF], 1e-9, "size %v", size)
		assert.InDelta(t, 1.0, result.Detailed[domain.VehicleEquityPMS], 1e-9, "size %v", size)
		assert.InDelta(t, 0.75, result.Detailed[domain.VehicleEquityMF], 1e-9, "size %v", size)
		assert.InDelta(t, 0.5, result.Detailed[domain.VehicleDebtMF], 1e-9, "size %v", size)
		assert.InDelta(t, 0.75, result.Detailed[domain.VehicleDirectDebt], 1e-9, "size %v", size)
		assert.InDelta(t, 5.0, result.Detailed[domain.KeyTotal], 1e-9, "size %v", size)
		assert.Contains(t, result.Explanation, "fixed 2-5 Cr Aggressive program", "size %v", size)
	}
}

func TestComputeUltraAggressiveTiny(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(domain.UltraAggressive, 0.5)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		domain.VehicleEquityMF: 0.5,
		domain.KeyTotal:        0.5,
	}, result.Detailed)
	assert.InDelta(t, 100, result.AssetClasses[domain.AssetEquity], 1e-9)
}

func TestComputeModerateExactCheckpoint(t *testing.T) {
	engine := newTestEngine()

	// Size 10 hits the 10 Cr Moderate checkpoint with scale factor 1.
	result, err := engine.Compute(domain.Moderate, 10)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, result.Detailed[domain.VehicleEquityPMS], 1e-9)
	assert.InDelta(t, 3.0, result.Detailed[domain.VehicleEquityMF], 1e-9)
	assert.InDelta(t, 0.5, result.Detailed[domain.VehicleGoldSilverETF], 1e-9)
	assert.InDelta(t, 2.0, result.Detailed[domain.VehicleDebtMF], 1e-9)
	assert.InDelta(t, 2.0, result.Detailed[domain.VehicleDirectDebt], 1e-9)
	assert.InDelta(t, 10.0, result.Detailed[domain.KeyTotal], 1e-9)
	assert.Contains(t, result.Explanation, "exact match")
}

func TestComputeSumInvariant(t *testing.T) {
	engine := newTestEngine()

	categories := []domain.RiskCategory{
		domain.Conservative, domain.Moderate, domain.Aggressive, domain.UltraAggressive,
	}
	sizes := []float64{0.1, 0.5, 1, 1.5, 2, 2.5, 4, 6, 7.5, 9.99, 10, 12, 15, 18, 22, 25, 30, 50, 100}

	for _, category := range categories {
		for _, size := range sizes {
			// Aggressive portfolios in (2, 5] deliberately allocate the
			// fixed 5 Cr program rather than the requested size.
			if category == domain.Aggressive && size > 2 && size <= 5 {
				continue
			}

			t.Run(fmt.Sprintf("%s_%v", category, size), func(t *testing.T) {
				result, err := engine.Compute(category, size)
				require.NoError(t, err)

				tolerance := size * 1e-4
				if tolerance < 1e-9 {
					tolerance = 1e-9
				}
				assert.InDelta(t, size, detailedSum(result.Detailed), tolerance)
				assert.InDelta(t, size, result.Detailed[domain.KeyTotal], tolerance)

				var pctSum float64
				for _, pct := range result.AssetClasses {
					pctSum += pct
				}
				assert.InDelta(t, 100, pctSum, 1)
			})
		}
	}
}

func TestComputeProductTypeViewReconciles(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(domain.Moderate, 10)
	require.NoError(t, err)

	for class, buckets := range result.ProductTypes {
		var sum float64
		for _, pct := range buckets {
			sum += pct
		}
		assert.InDelta(t, result.AssetClasses[class], sum, 0.05, "class %s", class)
	}

	// Equity mutual funds split into the 40/30/30 market-cap sub-buckets.
	equity := result.ProductTypes[domain.AssetEquity]
	require.Contains(t, equity, "Large Cap")
	require.Contains(t, equity, "Mid Cap")
	require.Contains(t, equity, "Small Cap")
	require.Contains(t, equity, "PMS")
	assert.Greater(t, equity["Large Cap"], equity["Mid Cap"])
	assert.InDelta(t, equity["Mid Cap"], equity["Small Cap"], 0.02)
}

func TestComputeIdempotent(t *testing.T) {
	engine := newTestEngine()

	first, err := engine.Compute(domain.Aggressive, 12)
	require.NoError(t, err)
	second, err := engine.Compute(domain.Aggressive, 12)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second), "identical inputs must yield identical output")
}

func TestComputeInvalidCategory(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Compute(domain.RiskCategory("Speculative"), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestComputeInvalidSize(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Compute(domain.Moderate, -1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidStrategy)
}

func TestComputeBeyondCheckpointTable(t *testing.T) {
	engine := newTestEngine()

	// 40 crore is past the last checkpoint: the formula split applies.
	result, err := engine.Compute(domain.UltraAggressive, 40)
	require.NoError(t, err)

	assert.InDelta(t, 24, result.Detailed[domain.VehicleEquityAIF], 1e-6)  // 60%
	assert.InDelta(t, 10, result.Detailed[domain.VehicleEquityPMS], 1e-6)  // 25%
	assert.InDelta(t, 6, result.Detailed[domain.VehicleEquityMF], 1e-6)    // 15%
	assert.InDelta(t, 40, result.Detailed[domain.KeyTotal], 1e-6)
}

func TestCheckpointTableRowsSumToCheckpoint(t *testing.T) {
	for category, rows := range checkpointTable {
		for checkpoint, row := range rows {
			var sum float64
			for _, amount := range row {
				sum += amount
			}
			assert.InDelta(t, checkpoint, sum, 1e-9, "%s %v Cr row", category, checkpoint)
		}
	}
}
