// Package handlers provides HTTP handlers for allocation computation.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/domain"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
)

// Handler handles allocation HTTP requests
type Handler struct {
	engine *allocation.Engine
	log    zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(engine *allocation.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "allocation").Logger(),
	}
}

// computeRequest is the allocation input. PortfolioSize is in rupees.
type computeRequest struct {
	RiskCategory  string  `json:"risk_category"`
	PortfolioSize float64 `json:"portfolio_size"`
}

// computeResponse wraps the engine result with the external-contract units.
type computeResponse struct {
	*allocation.Result
	RiskCategory  string  `json:"risk_category"`
	PortfolioSize float64 `json:"portfolio_size"` // rupees, echoed back
	Warning       string  `json:"warning,omitempty"`
}

// HandleCompute computes the tiered allocation for a category and size.
// An unknown category does not fail the request: the Moderate default is
// substituted and the response carries a warning.
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	category, warning := h.resolveCategory(req.RiskCategory)
	sizeCrore := domain.RupeesToCrore(req.PortfolioSize)

	result, err := h.engine.Compute(category, sizeCrore)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, computeResponse{
		Result:        result,
		RiskCategory:  string(category),
		PortfolioSize: req.PortfolioSize,
		Warning:       warning,
	})
}

// resolveCategory parses the category, substituting Moderate for unknown
// values so a bad category degrades instead of failing the request.
func (h *Handler) resolveCategory(raw string) (domain.RiskCategory, string) {
	category, ok := domain.ParseRiskCategory(raw)
	if ok {
		return category, ""
	}

	h.log.Warn().Str("risk_category", raw).Msg("Unknown risk category, using Moderate default")
	return domain.Moderate, "unknown risk category \"" + raw + "\", Moderate default applied"
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
