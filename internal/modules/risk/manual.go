package risk

import (
	"fmt"
	"math"

	"github.com/wealthcraft/advisor/internal/domain"
)

// Manual allocation breakpoints on the stated equity percentage.
// Equity >= 70 maps to Aggressive, >= 50 to Moderate, everything below to
// Conservative. UltraAggressive is only reachable through the questionnaire.
const (
	manualAggressiveMin = 70.0
	manualModerateMin   = 50.0
)

// Representative scores placed mid-band so downstream consumers that only
// look at the score land in the same category.
var manualScores = map[domain.RiskCategory]int{
	domain.Conservative: 10,
	domain.Moderate:     15,
	domain.Aggressive:   20,
}

// FromManualAllocation derives a risk profile purely from a client's stated
// equity/debt split, without touching the questionnaire.
func FromManualAllocation(equityPct, debtPct float64) Profile {
	var category domain.RiskCategory
	switch {
	case equityPct >= manualAggressiveMin:
		category = domain.Aggressive
	case equityPct >= manualModerateMin:
		category = domain.Moderate
	default:
		category = domain.Conservative
	}

	profile := Profile{
		Score:    manualScores[category],
		Category: category,
	}

	if sum := equityPct + debtPct; math.Abs(sum-100) > 1 {
		profile.Inconsistencies = append(profile.Inconsistencies, Inconsistency{
			Kind:    "allocation_sum",
			Message: fmt.Sprintf("stated equity and debt percentages sum to %.1f, expected 100", sum),
		})
	}

	return profile
}
