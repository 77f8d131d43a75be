// Package risk converts client questionnaire answers into a numeric risk score
// and a four-tier risk category.
package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/wealthcraft/advisor/internal/domain"
)

// Score bounds. Individual point tables can theoretically produce values just
// outside this range; the final score is clamped to it.
const (
	ScoreFloor = 8
	ScoreCap   = 28
)

// Category thresholds on the total score.
const (
	conservativeMax = 12
	moderateMax     = 17
	aggressiveMax   = 22
)

// Questionnaire holds the structured answers of the risk questionnaire.
// Enumerated answers left empty fall back to their neutral defaults.
type Questionnaire struct {
	// MarketDropReaction: sell_all, sell_some, hold, buy_some, buy_more
	MarketDropReaction string `json:"market_drop_reaction"`
	// MaxAcceptableLossPct: maximum tolerable portfolio drawdown in percent
	MaxAcceptableLossPct *float64 `json:"max_acceptable_loss_pct"`
	// ReturnsPreference: stability, mostly_stability, balanced, mostly_returns, returns
	ReturnsPreference string `json:"returns_preference"`
	// PortfolioStyle: very_conservative, conservative, balanced, growth, aggressive_growth
	PortfolioStyle string `json:"portfolio_style"`
	// InvestmentHorizon: short, medium, long
	InvestmentHorizon string `json:"investment_horizon"`
	// InvestmentKnowledge: beginner, intermediate, advanced
	InvestmentKnowledge string `json:"investment_knowledge"`

	// Age may be given directly or derived from DateOfBirth (YYYY-MM-DD).
	Age         int    `json:"age"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Inconsistency is a non-fatal advisory flagged during scoring.
type Inconsistency struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Profile is the immutable result of a risk assessment.
type Profile struct {
	Score           int                 `json:"risk_score"`
	Category        domain.RiskCategory `json:"risk_category"`
	Inconsistencies []Inconsistency     `json:"inconsistencies"`
}

// Scorer computes risk profiles from questionnaires.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a new risk scorer.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score converts questionnaire answers into a risk profile.
// Missing age information fails fast; all enumerated answers default to
// neutral values when absent or unrecognized.
func (s *Scorer) Score(q Questionnaire) (Profile, error) {
	age, err := s.resolveAge(q)
	if err != nil {
		return Profile{}, err
	}

	score := reactionPoints(q.MarketDropReaction) +
		lossPoints(q.MaxAcceptableLossPct) +
		preferencePoints(q.ReturnsPreference) +
		stylePoints(q.PortfolioStyle) +
		horizonPoints(q.InvestmentHorizon) +
		knowledgePoints(q.InvestmentKnowledge) +
		agePoints(age)

	if score < ScoreFloor {
		score = ScoreFloor
	}
	if score > ScoreCap {
		score = ScoreCap
	}

	category := CategoryForScore(score)

	return Profile{
		Score:           score,
		Category:        category,
		Inconsistencies: checkConsistency(category, q),
	}, nil
}

// CategoryForScore maps a total score to its risk category. It is a monotonic
// non-decreasing step function of the score.
func CategoryForScore(score int) domain.RiskCategory {
	switch {
	case score <= conservativeMax:
		return domain.Conservative
	case score <= moderateMax:
		return domain.Moderate
	case score <= aggressiveMax:
		return domain.Aggressive
	default:
		return domain.UltraAggressive
	}
}

// resolveAge returns the client age, deriving it from the birth date when no
// direct age is given. Whole calendar years, not yet incremented if the
// birthday hasn't occurred this year.
func (s *Scorer) resolveAge(q Questionnaire) (int, error) {
	if q.Age > 0 {
		return q.Age, nil
	}
	if q.DateOfBirth == "" {
		return 0, fmt.Errorf("missing field: age or date_of_birth is required")
	}

	dob, err := time.Parse("2006-01-02", q.DateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("invalid date_of_birth %q: %w", q.DateOfBirth, err)
	}

	return ageAt(dob, s.now()), nil
}

func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	// Birthday not yet reached this year
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

func reactionPoints(answer string) int {
	switch normalize(answer) {
	case "sell_all":
		return 1
	case "sell_some":
		return 2
	case "hold":
		return 3
	case "buy_some":
		return 4
	case "buy_more":
		return 5
	default:
		return 3 // neutral
	}
}

func lossPoints(maxLossPct *float64) int {
	if maxLossPct == nil {
		return 3 // neutral
	}
	loss := *maxLossPct
	switch {
	case loss <= 5:
		return 1
	case loss <= 10:
		return 2
	case loss <= 15:
		return 3
	case loss <= 25:
		return 4
	default:
		return 5
	}
}

func preferencePoints(answer string) int {
	switch normalize(answer) {
	case "stability":
		return 1
	case "mostly_stability":
		return 2
	case "balanced":
		return 3
	case "mostly_returns":
		return 4
	case "returns":
		return 5
	default:
		return 3
	}
}

func stylePoints(answer string) int {
	switch normalize(answer) {
	case "very_conservative":
		return 1
	case "conservative":
		return 2
	case "balanced":
		return 3
	case "growth":
		return 4
	case "aggressive_growth":
		return 5
	default:
		return 3
	}
}

func horizonPoints(answer string) int {
	switch normalize(answer) {
	case "short":
		return 1
	case "medium":
		return 2
	case "long":
		return 3
	default:
		return 2
	}
}

func knowledgePoints(answer string) int {
	switch normalize(answer) {
	case "beginner":
		return 1
	case "intermediate":
		return 2
	case "advanced":
		return 3
	default:
		return 1
	}
}

// agePoints scores risk capacity by age: younger clients can absorb more risk.
func agePoints(age int) int {
	switch {
	case age >= 60:
		return 1
	case age >= 40:
		return 2
	default:
		return 3
	}
}

// checkConsistency flags contradictions between the derived category and the
// stated answers. Advisories never block the assessment.
func checkConsistency(category domain.RiskCategory, q Questionnaire) []Inconsistency {
	var flags []Inconsistency

	aggressive := category == domain.Aggressive || category == domain.UltraAggressive
	conservative := category == domain.Conservative

	if aggressive && q.PortfolioStyle != "" && stylePoints(q.PortfolioStyle) <= 2 {
		flags = append(flags, Inconsistency{
			Kind:    "style_conflict",
			Message: fmt.Sprintf("risk category is %s but preferred portfolio style is %s", category, q.PortfolioStyle),
		})
	}
	if conservative && q.PortfolioStyle != "" && stylePoints(q.PortfolioStyle) >= 4 {
		flags = append(flags, Inconsistency{
			Kind:    "style_conflict",
			Message: fmt.Sprintf("risk category is Conservative but preferred portfolio style is %s", q.PortfolioStyle),
		})
	}
	if aggressive && normalize(q.InvestmentHorizon) == "short" {
		flags = append(flags, Inconsistency{
			Kind:    "horizon_conflict",
			Message: fmt.Sprintf("risk category is %s but investment horizon is short-term", category),
		})
	}
	if aggressive && q.MaxAcceptableLossPct != nil && *q.MaxAcceptableLossPct <= 10 {
		flags = append(flags, Inconsistency{
			Kind:    "loss_conflict",
			Message: fmt.Sprintf("risk category is %s but maximum acceptable loss is only %.0f%%", category, *q.MaxAcceptableLossPct),
		})
	}
	if conservative && q.MaxAcceptableLossPct != nil && *q.MaxAcceptableLossPct >= 20 {
		flags = append(flags, Inconsistency{
			Kind:    "loss_conflict",
			Message: fmt.Sprintf("risk category is Conservative but maximum acceptable loss is %.0f%%", *q.MaxAcceptableLossPct),
		})
	}

	return flags
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
