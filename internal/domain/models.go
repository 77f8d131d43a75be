// Package domain contains the shared domain types for the advisor service.
// It has no infrastructure dependencies.
package domain

import "strings"

// RiskCategory is the four-tier client risk classification.
type RiskCategory string

const (
	Conservative    RiskCategory = "Conservative"
	Moderate        RiskCategory = "Moderate"
	Aggressive      RiskCategory = "Aggressive"
	UltraAggressive RiskCategory = "UltraAggressive"
)

// ParseRiskCategory parses a risk category string (case-insensitive).
// The second return value is false for unrecognized categories.
func ParseRiskCategory(s string) (RiskCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return Conservative, true
	case "moderate":
		return Moderate, true
	case "aggressive":
		return Aggressive, true
	case "ultraaggressive", "ultra aggressive", "ultra-aggressive":
		return UltraAggressive, true
	}
	return "", false
}

// AssetClass is a coarse asset class bucket.
type AssetClass string

const (
	AssetEquity     AssetClass = "equity"
	AssetDebt       AssetClass = "debt"
	AssetGoldSilver AssetClass = "goldSilver"
)

// Vehicle labels used as keys in detailed allocations. These are display-facing
// and must stay stable across the engine, assembler and formatter.
const (
	VehicleEquityMF      = "Equity Mutual Funds"
	VehicleEquityPMS     = "Equity PMS"
	VehicleEquityAIF     = "Equity AIF"
	VehicleGoldSilverETF = "Gold & Silver ETF"
	VehicleDebtMF        = "Debt Mutual Funds"
	VehicleDirectDebt    = "Direct Debt"
	VehicleDebtAIF       = "Debt AIF"

	// KeyTotal is the reserved key in a detailed allocation holding the portfolio size.
	KeyTotal = "Total"
)

// Currency units in rupees.
const (
	Lakh  = 100_000.0
	Crore = 10_000_000.0
)

// RupeesToCrore normalizes a rupee amount to crore, the internal table unit.
func RupeesToCrore(rupees float64) float64 {
	return rupees / Crore
}

// CroreToRupees converts a crore amount back to rupees.
func CroreToRupees(crore float64) float64 {
	return crore * Crore
}

// RiskLevelFor maps a risk category to the product risk level used as the
// static catalog key.
func RiskLevelFor(category RiskCategory) string {
	switch category {
	case Conservative:
		return "Low"
	case Moderate:
		return "Moderate"
	case Aggressive:
		return "High"
	case UltraAggressive:
		return "Very High"
	}
	return "Moderate"
}

// ProductCandidate is a normalized investment product, sourced either from the
// static catalog or from an external product listing.
type ProductCandidate struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Category          string  `json:"category,omitempty"` // e.g. "Large Cap", "Corporate Bond"
	ExpectedReturnPct float64 `json:"expected_return_pct"`
	Risk              string  `json:"risk"` // Low, Moderate, High, Very High
	LockInPeriod      string  `json:"lock_in_period,omitempty"`
	MinimumInvestment float64 `json:"minimum_investment"` // rupees
	AUMCrore          float64 `json:"aum_crore,omitempty"`
}
