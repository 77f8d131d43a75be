// Package handlers provides HTTP handlers for risk profiling.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/modules/risk"
)

// Handler handles risk assessment HTTP requests
type Handler struct {
	scorer *risk.Scorer
	log    zerolog.Logger
}

// NewHandler creates a new risk handler
func NewHandler(scorer *risk.Scorer, log zerolog.Logger) *Handler {
	return &Handler{
		scorer: scorer,
		log:    log.With().Str("handler", "risk").Logger(),
	}
}

// HandleScore computes a risk profile from questionnaire answers.
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var q risk.Questionnaire
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	profile, err := h.scorer.Score(q)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
}

// manualRequest carries client-stated percentages in place of a questionnaire.
type manualRequest struct {
	EquityPct float64 `json:"equity_pct"`
	DebtPct   float64 `json:"debt_pct"`
}

// HandleManual maps a client-stated equity/debt split to a risk profile.
func (h *Handler) HandleManual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, risk.FromManualAllocation(req.EquityPct, req.DebtPct))
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
