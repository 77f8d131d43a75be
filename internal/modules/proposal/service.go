// Package proposal orchestrates the full advisory pipeline: risk scoring,
// allocation, product recommendation and narrative rendering.
package proposal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
	"github.com/wealthcraft/advisor/internal/modules/recommendation"
	"github.com/wealthcraft/advisor/internal/modules/risk"
)

// ManualAllocation carries client-stated equity/debt percentages used instead
// of the questionnaire-based risk score.
type ManualAllocation struct {
	EquityPct float64 `json:"equity_pct"`
	DebtPct   float64 `json:"debt_pct"`
}

// Request is the input to a full proposal computation. PortfolioSize is in
// rupees; either the questionnaire or a manual allocation must be present.
type Request struct {
	ClientName    string              `json:"client_name"`
	PortfolioSize float64             `json:"portfolio_size"`
	Questionnaire *risk.Questionnaire `json:"questionnaire,omitempty"`
	Manual        *ManualAllocation   `json:"manual_allocation,omitempty"`
}

// Proposal is the assembled advisory document.
type Proposal struct {
	ID                string                 `json:"id"`
	CreatedAt         time.Time              `json:"created_at"`
	ClientName        string                 `json:"client_name"`
	PortfolioSize     float64                `json:"portfolio_size"` // rupees
	PortfolioCrore    float64                `json:"portfolio_crore"`
	Risk              risk.Profile           `json:"risk_profile"`
	Allocation        *allocation.Result     `json:"allocation"`
	Recommendations   *recommendation.Result `json:"recommendations"`
	ExpectedReturnPct float64                `json:"expected_return_pct"`
	Narrative         string                 `json:"narrative"`
}

// Service runs the advisory pipeline end to end.
type Service struct {
	scorer    *risk.Scorer
	engine    *allocation.Engine
	assembler *recommendation.Assembler
	formatter *Formatter
	log       zerolog.Logger
}

// NewService creates a new proposal service.
func NewService(scorer *risk.Scorer, engine *allocation.Engine, assembler *recommendation.Assembler, log zerolog.Logger) *Service {
	return &Service{
		scorer:    scorer,
		engine:    engine,
		assembler: assembler,
		formatter: NewFormatter(),
		log:       log.With().Str("module", "proposal").Logger(),
	}
}

// Generate computes a full proposal for the request. Product-source failures
// inside the assembler degrade to the static catalog and never fail the
// proposal; only invalid input does.
func (s *Service) Generate(ctx context.Context, req Request) (*Proposal, error) {
	if req.PortfolioSize < 0 {
		return nil, fmt.Errorf("portfolio size must be non-negative")
	}

	profile, err := s.resolveProfile(req)
	if err != nil {
		return nil, err
	}

	sizeCrore := domain.RupeesToCrore(req.PortfolioSize)

	alloc, err := s.engine.Compute(profile.Category, sizeCrore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute allocation: %w", err)
	}

	recs, err := s.assembler.Recommend(ctx, profile.Category, alloc, sizeCrore)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble recommendations: %w", err)
	}

	proposal := &Proposal{
		ID:                uuid.New().String(),
		CreatedAt:         time.Now().UTC(),
		ClientName:        req.ClientName,
		PortfolioSize:     req.PortfolioSize,
		PortfolioCrore:    sizeCrore,
		Risk:              profile,
		Allocation:        alloc,
		Recommendations:   recs,
		ExpectedReturnPct: weightedExpectedReturn(recs),
		Narrative:         s.formatter.Render(req.ClientName, profile, alloc, recs, sizeCrore),
	}

	s.log.Info().
		Str("proposal_id", proposal.ID).
		Str("category", string(profile.Category)).
		Float64("size_crore", sizeCrore).
		Float64("expected_return_pct", proposal.ExpectedReturnPct).
		Msg("Generated proposal")

	return proposal, nil
}

// resolveProfile scores the questionnaire, or maps a manual allocation when
// no questionnaire is given.
func (s *Service) resolveProfile(req Request) (risk.Profile, error) {
	if req.Questionnaire != nil {
		return s.scorer.Score(*req.Questionnaire)
	}
	if req.Manual != nil {
		return risk.FromManualAllocation(req.Manual.EquityPct, req.Manual.DebtPct), nil
	}
	return risk.Profile{}, fmt.Errorf("missing field: questionnaire or manual_allocation is required")
}

// weightedExpectedReturn is the allocation-weighted mean of the top expected
// return in each recommended vehicle. Vehicles with no products contribute a
// zero-return weight so an all-catalog-miss proposal reads conservatively.
func weightedExpectedReturn(recs *recommendation.Result) float64 {
	if recs == nil {
		return 0
	}

	var returns, weights []float64
	for _, group := range [][]recommendation.VehicleRecommendation{recs.Equity, recs.Debt, recs.GoldSilver} {
		for _, rec := range group {
			if rec.AllocationPct <= 0 {
				continue
			}
			var best float64
			for _, p := range rec.Products {
				if p.ExpectedReturnPct > best {
					best = p.ExpectedReturnPct
				}
			}
			returns = append(returns, best)
			weights = append(weights, rec.AllocationPct)
		}
	}

	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, weights)
}
