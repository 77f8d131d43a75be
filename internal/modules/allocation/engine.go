// Package allocation implements the deterministic allocation table engine:
// it turns (risk category, portfolio size) into an asset-class split, a fully
// itemized vehicle breakdown in crore, and a reconciled product-type view.
package allocation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/domain"
)

// ErrInvalidStrategy is returned for unrecognized risk categories. Callers
// typically substitute a Moderate default instead of failing the request.
var ErrInvalidStrategy = errors.New("invalid strategy")

// SubBucketPolicy controls how the equity mutual fund amount splits into
// market-cap sub-buckets in the product-type view. Percentages must sum to 100.
type SubBucketPolicy struct {
	LargeCapPct float64
	MidCapPct   float64
	SmallCapPct float64
}

// DefaultSubBucketPolicy returns the standard 40/30/30 large/mid/small split.
func DefaultSubBucketPolicy() SubBucketPolicy {
	return SubBucketPolicy{LargeCapPct: 40, MidCapPct: 30, SmallCapPct: 30}
}

// Result is the full output of a single allocation computation.
// Detailed amounts are in crore and include the reserved Total key.
type Result struct {
	AssetClasses map[domain.AssetClass]float64            `json:"asset_class_allocation"`
	Detailed     map[string]float64                       `json:"detailed_allocation"`
	ProductTypes map[domain.AssetClass]map[string]float64 `json:"product_type_allocation"`
	Explanation  string                                   `json:"allocation_explanation"`
}

// Engine computes allocations from the static tables. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	policy SubBucketPolicy
	log    zerolog.Logger
}

// NewEngine creates a new allocation engine.
func NewEngine(policy SubBucketPolicy, log zerolog.Logger) *Engine {
	return &Engine{
		policy: policy,
		log:    log.With().Str("module", "allocation").Logger(),
	}
}

// Compute produces the tiered allocation for a risk category and portfolio
// size in crore. It is a pure function of its inputs and the static tables:
// identical inputs always yield identical output.
func (e *Engine) Compute(category domain.RiskCategory, sizeCrore float64) (*Result, error) {
	if _, ok := smallDetailedSplits[category]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, category)
	}
	if sizeCrore < 0 || math.IsNaN(sizeCrore) || math.IsInf(sizeCrore, 0) {
		return nil, fmt.Errorf("invalid portfolio size: %v crore", sizeCrore)
	}

	detailed, rule := e.detailedBreakdown(category, sizeCrore)
	assetClasses := e.assetClassSplit(category, sizeCrore)
	productTypes := e.productTypeView(assetClasses, detailed)

	e.log.Debug().
		Str("category", string(category)).
		Float64("size_crore", sizeCrore).
		Str("rule", rule).
		Msg("Computed allocation")

	return &Result{
		AssetClasses: assetClasses,
		Detailed:     detailed,
		ProductTypes: productTypes,
		Explanation: fmt.Sprintf("%s profile at ₹%.2f Cr: %s.",
			category, sizeCrore, rule),
	}, nil
}

// assetClassSplit is the Step-1 coarse split. For the small band it is derived
// from the small detailed splits so the two views cannot drift apart; above
// the band it is a direct table lookup.
func (e *Engine) assetClassSplit(category domain.RiskCategory, sizeCrore float64) map[domain.AssetClass]float64 {
	if sizeCrore <= smallBandThreshold(category) {
		split := make(map[domain.AssetClass]float64)
		for vehicle, pct := range smallDetailedSplits[category] {
			split[vehicleClass[vehicle]] += pct
		}
		return split
	}

	split := make(map[domain.AssetClass]float64, len(largeAssetSplits[category]))
	for class, pct := range largeAssetSplits[category] {
		split[class] = pct
	}
	return split
}

// detailedBreakdown is the Step-2 ground-truth computation. It returns the
// vehicle amounts in crore (with the Total key) and a short description of
// the rule that was applied, used in the explanation text.
func (e *Engine) detailedBreakdown(category domain.RiskCategory, sizeCrore float64) (map[string]float64, string) {
	// Small-portfolio special case: fixed percentage splits.
	if sizeCrore <= smallBandThreshold(category) {
		detailed := make(map[string]float64)
		for vehicle, pct := range smallDetailedSplits[category] {
			detailed[vehicle] = round(sizeCrore*pct/100, 6)
		}
		finalizeTotal(detailed)
		return detailed, fmt.Sprintf("small-portfolio split (≤%.0f Cr band)", smallBandThreshold(category))
	}

	// Aggressive portfolios between 2 and 5 crore get the fixed 5-crore
	// program as-is. The amounts are deliberately NOT scaled to the
	// requested size; Total reflects the program, not the request.
	if category == domain.Aggressive && sizeCrore > 2 && sizeCrore <= 5 {
		detailed := copyRow(checkpointTable[category][5])
		finalizeTotal(detailed)
		return detailed, "fixed 2-5 Cr Aggressive program (unscaled)"
	}

	// Checkpoint interpolation: smallest checkpoint >= size, scaled linearly.
	rows := checkpointTable[category]
	for _, checkpoint := range checkpointSizes {
		row, ok := rows[checkpoint]
		if !ok || sizeCrore > checkpoint {
			continue
		}

		factor := sizeCrore / checkpoint
		detailed := make(map[string]float64, len(row)+1)
		for vehicle, amount := range row {
			detailed[vehicle] = round(amount*factor, 6)
		}
		finalizeTotal(detailed)

		if factor == 1 {
			return detailed, fmt.Sprintf("%.0f Cr checkpoint (exact match)", checkpoint)
		}
		return detailed, fmt.Sprintf("%.0f Cr checkpoint scaled by %.2f", checkpoint, factor)
	}

	// Formula fallback: closed-form percentage split, sums to 100% of size.
	detailed := make(map[string]float64)
	for vehicle, pct := range fallbackFormulas[category] {
		detailed[vehicle] = round(sizeCrore*pct/100, 6)
	}
	finalizeTotal(detailed)
	return detailed, "formula allocation (beyond checkpoint table)"
}

// productTypeView is the Step-3 correction pass: vehicle amounts become
// percentages of total, equity mutual funds split into market-cap sub-buckets,
// and each asset class's sub-percentages are rescaled to sum exactly to that
// class's Step-1 percentage.
func (e *Engine) productTypeView(assetClasses map[domain.AssetClass]float64, detailed map[string]float64) map[domain.AssetClass]map[string]float64 {
	total := detailed[domain.KeyTotal]
	if total <= 0 {
		return map[domain.AssetClass]map[string]float64{}
	}

	raw := make(map[domain.AssetClass]map[string]float64)
	add := func(class domain.AssetClass, bucket string, pct float64) {
		if raw[class] == nil {
			raw[class] = make(map[string]float64)
		}
		raw[class][bucket] += pct
	}

	for vehicle, amount := range detailed {
		if vehicle == domain.KeyTotal || amount == 0 {
			continue
		}
		pct := amount / total * 100

		switch vehicle {
		case domain.VehicleEquityMF:
			add(domain.AssetEquity, "Large Cap", pct*e.policy.LargeCapPct/100)
			add(domain.AssetEquity, "Mid Cap", pct*e.policy.MidCapPct/100)
			add(domain.AssetEquity, "Small Cap", pct*e.policy.SmallCapPct/100)
		case domain.VehicleEquityPMS:
			add(domain.AssetEquity, "PMS", pct)
		case domain.VehicleEquityAIF:
			add(domain.AssetEquity, "AIF", pct)
		case domain.VehicleGoldSilverETF:
			add(domain.AssetGoldSilver, "Gold & Silver ETF", pct)
		case domain.VehicleDebtMF:
			add(domain.AssetDebt, "Debt Mutual Funds", pct)
		case domain.VehicleDirectDebt:
			add(domain.AssetDebt, "Direct Debt", pct)
		case domain.VehicleDebtAIF:
			add(domain.AssetDebt, "Debt AIF", pct)
		}
	}

	// Rescale each class so its sub-buckets sum to the Step-1 percentage.
	view := make(map[domain.AssetClass]map[string]float64, len(raw))
	for class, buckets := range raw {
		classPct, ok := assetClasses[class]
		if !ok || classPct == 0 {
			continue
		}

		var rawSum float64
		for _, pct := range buckets {
			rawSum += pct
		}
		if rawSum == 0 {
			continue
		}

		factor := classPct / rawSum
		scaled := make(map[string]float64, len(buckets))
		for bucket, pct := range buckets {
			scaled[bucket] = round(pct*factor, 2)
		}
		view[class] = scaled
	}

	return view
}

// finalizeTotal drops zero-amount vehicles and sets the Total key to the sum
// of the remaining entries.
func finalizeTotal(detailed map[string]float64) {
	var sum float64
	for vehicle, amount := range detailed {
		if amount == 0 {
			delete(detailed, vehicle)
			continue
		}
		sum += amount
	}
	detailed[domain.KeyTotal] = round(sum, 6)
}

func copyRow(row map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// round rounds a float64 to n decimal places
func round(val float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(val*multiplier) / multiplier
}
