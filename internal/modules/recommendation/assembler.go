// Package recommendation maps a computed allocation onto concrete product
// candidates, applying minimum-ticket gating and falling back to the static
// catalog when the external product source is empty or unreachable.
package recommendation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
)

// Minimum portfolio sizes (crore) below which a vehicle is silently omitted,
// even when its allocation percentage is nonzero.
const (
	pmsMinPortfolioCrore     = 0.5 // 50 lakh
	equityAIFMinPortfolio    = 1.0
	debtAIFMinPortfolioCrore = 5.0
)

// defaultLookbackMonths is the performance lookback requested from the
// external product source.
const defaultLookbackMonths = 36

// maxProductsPerVehicle caps how many candidates a single vehicle lists.
const maxProductsPerVehicle = 3

// ProductSource fetches live candidate products for a vehicle type.
type ProductSource interface {
	FetchCandidates(ctx context.Context, vehicleType string, lookbackMonths int) ([]domain.ProductCandidate, error)
}

// CatalogStore is the static catalog fallback.
type CatalogStore interface {
	Get(assetClass domain.AssetClass, vehicleType, riskLevel string) ([]domain.ProductCandidate, error)
}

// CandidateCache is an optional cache in front of the product source.
type CandidateCache interface {
	GetIfFresh(vehicleType string) ([]domain.ProductCandidate, error)
	Store(vehicleType string, candidates []domain.ProductCandidate) error
}

// VehicleRecommendation is the itemized recommendation for one vehicle.
type VehicleRecommendation struct {
	Vehicle       string                    `json:"vehicle"`
	AllocationPct float64                   `json:"allocation_pct"` // percent of total portfolio
	AmountCrore   float64                   `json:"amount_crore"`
	Source        string                    `json:"source"` // "live" or "catalog"
	Products      []domain.ProductCandidate `json:"products"`
}

// Result groups recommendations by asset class.
type Result struct {
	Equity     []VehicleRecommendation `json:"equity"`
	Debt       []VehicleRecommendation `json:"debt"`
	GoldSilver []VehicleRecommendation `json:"goldSilver"`
	Summary    string                  `json:"summary"`
}

// Assembler builds product recommendations from an allocation result.
type Assembler struct {
	source  ProductSource
	cache   CandidateCache // may be nil
	catalog CatalogStore
	log     zerolog.Logger
}

// NewAssembler creates a new recommendation assembler.
func NewAssembler(source ProductSource, cache CandidateCache, catalog CatalogStore, log zerolog.Logger) *Assembler {
	return &Assembler{
		source:  source,
		cache:   cache,
		catalog: catalog,
		log:     log.With().Str("module", "recommendation").Logger(),
	}
}

// vehiclePlan is a gated-in vehicle awaiting product resolution.
type vehiclePlan struct {
	class   domain.AssetClass
	vehicle string
	pct     float64
}

// Recommend maps the allocation onto concrete products. A single vehicle's
// failure never aborts the response: each branch degrades independently to
// the static catalog, and an asset class that ends up empty is forced to a
// 100% mutual-fund default.
func (a *Assembler) Recommend(ctx context.Context, category domain.RiskCategory, alloc *allocation.Result, sizeCrore float64) (*Result, error) {
	if alloc == nil {
		return nil, fmt.Errorf("allocation result is required")
	}

	riskLevel := domain.RiskLevelFor(category)
	plans := a.gatedVehicles(alloc, sizeCrore)

	// Fetches for distinct vehicle types are independent; issue them
	// concurrently.
	recs := make([]VehicleRecommendation, len(plans))
	var wg sync.WaitGroup
	for i, plan := range plans {
		wg.Add(1)
		go func(i int, plan vehiclePlan) {
			defer wg.Done()
			recs[i] = a.resolveVehicle(ctx, plan, riskLevel, sizeCrore)
		}(i, plan)
	}
	wg.Wait()

	result := &Result{}
	for _, rec := range recs {
		class, _ := allocation.ClassOfVehicle(rec.Vehicle)
		switch class {
		case domain.AssetEquity:
			result.Equity = append(result.Equity, rec)
		case domain.AssetDebt:
			result.Debt = append(result.Debt, rec)
		case domain.AssetGoldSilver:
			result.GoldSilver = append(result.GoldSilver, rec)
		}
	}

	// Never return an empty asset class: force a mutual-fund default when
	// everything was gated out.
	a.fillEmptyClasses(result, alloc, riskLevel, sizeCrore)

	sortByPct(result.Equity)
	sortByPct(result.Debt)
	sortByPct(result.GoldSilver)

	result.Summary = fmt.Sprintf(
		"%d equity, %d debt and %d gold/silver vehicle(s) recommended for a %s profile of ₹%.2f Cr.",
		len(result.Equity), len(result.Debt), len(result.GoldSilver), category, sizeCrore)

	return result, nil
}

// gatedVehicles collapses the product-type view into per-vehicle percentages
// and applies the minimum-ticket gates.
func (a *Assembler) gatedVehicles(alloc *allocation.Result, sizeCrore float64) []vehiclePlan {
	var plans []vehiclePlan
	for class, buckets := range alloc.ProductTypes {
		vehiclePcts := make(map[string]float64)
		for bucket, pct := range buckets {
			vehiclePcts[vehicleForBucket(class, bucket)] += pct
		}

		for vehicle, pct := range vehiclePcts {
			if pct <= 0 {
				continue
			}
			if !a.passesGate(vehicle, sizeCrore) {
				a.log.Debug().
					Str("vehicle", vehicle).
					Float64("size_crore", sizeCrore).
					Msg("Vehicle gated out by minimum ticket")
				continue
			}
			plans = append(plans, vehiclePlan{class: class, vehicle: vehicle, pct: pct})
		}
	}

	// Deterministic resolution order
	sort.Slice(plans, func(i, j int) bool { return plans[i].vehicle < plans[j].vehicle })
	return plans
}

// passesGate applies the minimum portfolio size per vehicle type.
func (a *Assembler) passesGate(vehicle string, sizeCrore float64) bool {
	switch vehicle {
	case domain.VehicleEquityPMS:
		return sizeCrore >= pmsMinPortfolioCrore
	case domain.VehicleEquityAIF:
		return sizeCrore >= equityAIFMinPortfolio
	case domain.VehicleDebtAIF:
		return sizeCrore >= debtAIFMinPortfolioCrore
	default:
		return true
	}
}

// resolveVehicle finds products for one vehicle: cache, then live source,
// then static catalog. Failures are caught here so one vehicle can never
// fail the whole response.
func (a *Assembler) resolveVehicle(ctx context.Context, plan vehiclePlan, riskLevel string, sizeCrore float64) VehicleRecommendation {
	rec := VehicleRecommendation{
		Vehicle:       plan.vehicle,
		AllocationPct: plan.pct,
		AmountCrore:   roundCrore(sizeCrore * plan.pct / 100),
	}

	if candidates := a.fetchCandidates(ctx, plan.vehicle); len(candidates) > 0 {
		rec.Source = "live"
		rec.Products = trim(candidates)
		return rec
	}

	rec.Source = "catalog"
	products, err := a.catalog.Get(plan.class, plan.vehicle, riskLevel)
	if err != nil {
		a.log.Error().Err(err).Str("vehicle", plan.vehicle).Msg("Catalog lookup failed")
		return rec
	}
	rec.Products = trim(products)
	return rec
}

// fetchCandidates tries the cache first, then the live source, caching a
// successful fetch. Any error degrades to nil so the caller falls back to
// the catalog.
func (a *Assembler) fetchCandidates(ctx context.Context, vehicle string) []domain.ProductCandidate {
	if a.cache != nil {
		if cached, err := a.cache.GetIfFresh(vehicle); err != nil {
			a.log.Warn().Err(err).Str("vehicle", vehicle).Msg("Candidate cache read failed")
		} else if len(cached) > 0 {
			return cached
		}
	}

	if a.source == nil {
		return nil
	}

	candidates, err := a.source.FetchCandidates(ctx, vehicle, defaultLookbackMonths)
	if err != nil {
		a.log.Warn().Err(err).Str("vehicle", vehicle).Msg("Live fetch failed, falling back to catalog")
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	if a.cache != nil {
		if err := a.cache.Store(vehicle, candidates); err != nil {
			a.log.Warn().Err(err).Str("vehicle", vehicle).Msg("Failed to cache candidates")
		}
	}

	return candidates
}

// fillEmptyClasses forces a 100%-weighted mutual-fund default for any asset
// class that has a nonzero target but no surviving vehicles.
func (a *Assembler) fillEmptyClasses(result *Result, alloc *allocation.Result, riskLevel string, sizeCrore float64) {
	defaults := []struct {
		class   domain.AssetClass
		recs    *[]VehicleRecommendation
		vehicle string
	}{
		{domain.AssetEquity, &result.Equity, domain.VehicleEquityMF},
		{domain.AssetDebt, &result.Debt, domain.VehicleDebtMF},
		{domain.AssetGoldSilver, &result.GoldSilver, domain.VehicleGoldSilverETF},
	}

	for _, d := range defaults {
		classPct := alloc.AssetClasses[d.class]
		if classPct <= 0 || len(*d.recs) > 0 {
			continue
		}

		rec := VehicleRecommendation{
			Vehicle:       d.vehicle,
			AllocationPct: classPct,
			AmountCrore:   roundCrore(sizeCrore * classPct / 100),
			Source:        "catalog",
		}
		if products, err := a.catalog.Get(d.class, d.vehicle, riskLevel); err != nil {
			a.log.Error().Err(err).Str("vehicle", d.vehicle).Msg("Catalog lookup failed for class default")
		} else {
			rec.Products = trim(products)
		}

		a.log.Info().
			Str("class", string(d.class)).
			Str("vehicle", d.vehicle).
			Msg("Asset class had no vehicles, forced mutual-fund default")

		*d.recs = append(*d.recs, rec)
	}
}

// vehicleForBucket maps a product-type sub-bucket back to its vehicle.
func vehicleForBucket(class domain.AssetClass, bucket string) string {
	switch bucket {
	case "Large Cap", "Mid Cap", "Small Cap":
		return domain.VehicleEquityMF
	case "PMS":
		return domain.VehicleEquityPMS
	case "AIF":
		if class == domain.AssetDebt {
			return domain.VehicleDebtAIF
		}
		return domain.VehicleEquityAIF
	case "Gold & Silver ETF":
		return domain.VehicleGoldSilverETF
	case "Debt Mutual Funds":
		return domain.VehicleDebtMF
	case "Direct Debt":
		return domain.VehicleDirectDebt
	case "Debt AIF":
		return domain.VehicleDebtAIF
	default:
		// Unknown buckets land in mutual funds for their class
		if class == domain.AssetDebt {
			return domain.VehicleDebtMF
		}
		return domain.VehicleEquityMF
	}
}

func trim(products []domain.ProductCandidate) []domain.ProductCandidate {
	if len(products) > maxProductsPerVehicle {
		return products[:maxProductsPerVehicle]
	}
	return products
}

func sortByPct(recs []VehicleRecommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].AllocationPct != recs[j].AllocationPct {
			return recs[i].AllocationPct > recs[j].AllocationPct
		}
		return recs[i].Vehicle < recs[j].Vehicle
	})
}

func roundCrore(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}
