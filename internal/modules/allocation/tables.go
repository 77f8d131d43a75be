package allocation

import "github.com/wealthcraft/advisor/internal/domain"

// All tables in this file are package-level constants in spirit: they are
// initialized once and never mutated. Amounts are in crore.

// smallBandThreshold returns the portfolio size (crore) at or below which the
// small-portfolio special case applies. Conservative clients get a wider band
// because PMS only becomes worthwhile for them at larger sizes.
func smallBandThreshold(category domain.RiskCategory) float64 {
	if category == domain.Conservative {
		return 2.0
	}
	return 1.0
}

// smallDetailedSplits are the hand-specified percentage splits for small
// portfolios. At this scale PMS and AIF are inaccessible due to minimum
// tickets, so everything concentrates into mutual funds and direct debt.
// These splits are the source of truth for the small band; the asset-class
// view is derived from them so the two views always agree.
var smallDetailedSplits = map[domain.RiskCategory]map[string]float64{
	domain.Conservative: {
		domain.VehicleEquityMF:   50,
		domain.VehicleDebtMF:     30,
		domain.VehicleDirectDebt: 20,
	},
	domain.Moderate: {
		domain.VehicleEquityMF:   65,
		domain.VehicleDebtMF:     20,
		domain.VehicleDirectDebt: 15,
	},
	domain.Aggressive: {
		domain.VehicleEquityMF:   80,
		domain.VehicleDebtMF:     10,
		domain.VehicleDirectDebt: 10,
	},
	domain.UltraAggressive: {
		domain.VehicleEquityMF: 100,
	},
}

// largeAssetSplits is the top-level asset-class split for portfolios above the
// small band. At scale the portfolio diversifies into PMS/AIF, which shifts
// the effective blended equity/debt split even though risk appetite is
// unchanged.
var largeAssetSplits = map[domain.RiskCategory]map[domain.AssetClass]float64{
	domain.Conservative: {
		domain.AssetEquity: 40,
		domain.AssetDebt:   60,
	},
	domain.Moderate: {
		domain.AssetEquity:     55,
		domain.AssetDebt:       40,
		domain.AssetGoldSilver: 5,
	},
	domain.Aggressive: {
		domain.AssetEquity: 75,
		domain.AssetDebt:   25,
	},
	domain.UltraAggressive: {
		domain.AssetEquity: 100,
	},
}

// checkpointSizes are the discrete portfolio sizes (crore) with hand-specified
// detailed rows. A requested size selects the smallest checkpoint >= size and
// scales the row linearly; sizes beyond the largest use the formula fallback.
var checkpointSizes = []float64{2, 5, 10, 15, 20, 25}

// checkpointTable holds absolute crore amounts per vehicle at each checkpoint.
// Every row sums exactly to its checkpoint size.
var checkpointTable = map[domain.RiskCategory]map[float64]map[string]float64{
	domain.Conservative: {
		// No 2-crore row: Conservative portfolios up to 2 crore use the
		// small-band special case.
		5:  {domain.VehicleEquityPMS: 0.5, domain.VehicleEquityMF: 1.5, domain.VehicleDebtMF: 1.5, domain.VehicleDirectDebt: 1.5},
		10: {domain.VehicleEquityPMS: 1, domain.VehicleEquityMF: 3, domain.VehicleDebtMF: 3, domain.VehicleDirectDebt: 3},
		15: {domain.VehicleEquityPMS: 1.5, domain.VehicleEquityMF: 4.5, domain.VehicleDebtMF: 4.5, domain.VehicleDirectDebt: 4.5},
		20: {domain.VehicleEquityPMS: 2, domain.VehicleEquityMF: 6, domain.VehicleDebtMF: 6, domain.VehicleDirectDebt: 6},
		25: {domain.VehicleEquityPMS: 2.5, domain.VehicleEquityMF: 7.5, domain.VehicleDebtMF: 7.5, domain.VehicleDirectDebt: 7.5},
	},
	domain.Moderate: {
		2:  {domain.VehicleEquityPMS: 0.5, domain.VehicleEquityMF: 0.6, domain.VehicleGoldSilverETF: 0.1, domain.VehicleDebtMF: 0.4, domain.VehicleDirectDebt: 0.4},
		5:  {domain.VehicleEquityPMS: 1.25, domain.VehicleEquityMF: 1.5, domain.VehicleGoldSilverETF: 0.25, domain.VehicleDebtMF: 1, domain.VehicleDirectDebt: 1},
		10: {domain.VehicleEquityPMS: 2.5, domain.VehicleEquityMF: 3, domain.VehicleGoldSilverETF: 0.5, domain.VehicleDebtMF: 2, domain.VehicleDirectDebt: 2},
		15: {domain.VehicleEquityAIF: 1.5, domain.VehicleEquityPMS: 2.75, domain.VehicleEquityMF: 4, domain.VehicleGoldSilverETF: 0.75, domain.VehicleDebtMF: 3, domain.VehicleDirectDebt: 3},
		20: {domain.VehicleEquityAIF: 2.5, domain.VehicleEquityPMS: 3.5, domain.VehicleEquityMF: 5, domain.VehicleGoldSilverETF: 1, domain.VehicleDebtMF: 4, domain.VehicleDirectDebt: 4},
		25: {domain.VehicleEquityAIF: 3.5, domain.VehicleEquityPMS: 4.25, domain.VehicleEquityMF: 6, domain.VehicleGoldSilverETF: 1.25, domain.VehicleDebtMF: 5, domain.VehicleDirectDebt: 5},
	},
	domain.Aggressive: {
		2: {domain.VehicleEquityPMS: 0.6, domain.VehicleEquityMF: 0.8, domain.VehicleDebtMF: 0.3, domain.VehicleDirectDebt: 0.3},
		// The 5-crore row doubles as the fixed allocation for every size in
		// (2, 5]: these absolute values are applied without scaling.
		5:  {domain.VehicleEquityAIF: 2, domain.VehicleEquityPMS: 1, domain.VehicleEquityMF: 0.75, domain.VehicleDebtMF: 0.5, domain.VehicleDirectDebt: 0.75},
		10: {domain.VehicleEquityAIF: 4, domain.VehicleEquityPMS: 2, domain.VehicleEquityMF: 1.5, domain.VehicleDebtAIF: 1, domain.VehicleDebtMF: 0.5, domain.VehicleDirectDebt: 1},
		15: {domain.VehicleEquityAIF: 6, domain.VehicleEquityPMS: 3, domain.VehicleEquityMF: 2.25, domain.VehicleDebtAIF: 1.5, domain.VehicleDebtMF: 0.75, domain.VehicleDirectDebt: 1.5},
		20: {domain.VehicleEquityAIF: 8, domain.VehicleEquityPMS: 4, domain.VehicleEquityMF: 3, domain.VehicleDebtAIF: 2, domain.VehicleDebtMF: 1, domain.VehicleDirectDebt: 2},
		25: {domain.VehicleEquityAIF: 10, domain.VehicleEquityPMS: 5, domain.VehicleEquityMF: 3.75, domain.VehicleDebtAIF: 2.5, domain.VehicleDebtMF: 1.25, domain.VehicleDirectDebt: 2.5},
	},
	domain.UltraAggressive: {
		2:  {domain.VehicleEquityAIF: 1.2, domain.VehicleEquityPMS: 0.5, domain.VehicleEquityMF: 0.3},
		5:  {domain.VehicleEquityAIF: 3, domain.VehicleEquityPMS: 1.25, domain.VehicleEquityMF: 0.75},
		10: {domain.VehicleEquityAIF: 6, domain.VehicleEquityPMS: 2.5, domain.VehicleEquityMF: 1.5},
		15: {domain.VehicleEquityAIF: 9, domain.VehicleEquityPMS: 3.75, domain.VehicleEquityMF: 2.25},
		20: {domain.VehicleEquityAIF: 12, domain.VehicleEquityPMS: 5, domain.VehicleEquityMF: 3},
		25: {domain.VehicleEquityAIF: 15, domain.VehicleEquityPMS: 6.25, domain.VehicleEquityMF: 3.75},
	},
}

// fallbackFormulas are closed-form percentage splits used when no checkpoint
// applies (sizes beyond the largest checkpoint, or a table miss). Each formula
// sums to exactly 100.
var fallbackFormulas = map[domain.RiskCategory]map[string]float64{
	domain.UltraAggressive: {
		domain.VehicleEquityAIF: 60,
		domain.VehicleEquityPMS: 25,
		domain.VehicleEquityMF:  15,
	},
	domain.Aggressive: {
		domain.VehicleEquityAIF:  40,
		domain.VehicleEquityPMS:  20,
		domain.VehicleEquityMF:   15,
		domain.VehicleDebtAIF:    10,
		domain.VehicleDebtMF:     5,
		domain.VehicleDirectDebt: 10,
	},
	domain.Moderate: {
		domain.VehicleEquityPMS:  25,
		domain.VehicleEquityMF:   35,
		domain.VehicleDebtMF:     20,
		domain.VehicleDirectDebt: 20,
	},
	domain.Conservative: {
		domain.VehicleEquityPMS:  10,
		domain.VehicleEquityMF:   30,
		domain.VehicleDebtMF:     30,
		domain.VehicleDirectDebt: 30,
	},
}

// vehicleClass maps every vehicle to its asset class.
var vehicleClass = map[string]domain.AssetClass{
	domain.VehicleEquityMF:      domain.AssetEquity,
	domain.VehicleEquityPMS:     domain.AssetEquity,
	domain.VehicleEquityAIF:     domain.AssetEquity,
	domain.VehicleGoldSilverETF: domain.AssetGoldSilver,
	domain.VehicleDebtMF:        domain.AssetDebt,
	domain.VehicleDirectDebt:    domain.AssetDebt,
	domain.VehicleDebtAIF:       domain.AssetDebt,
}

// ClassOfVehicle returns the asset class a vehicle belongs to.
func ClassOfVehicle(vehicle string) (domain.AssetClass, bool) {
	class, ok := vehicleClass[vehicle]
	return class, ok
}
