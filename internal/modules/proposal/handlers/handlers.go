// Package handlers provides HTTP handlers for proposal generation.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/modules/proposal"
)

// Handler handles proposal HTTP requests
type Handler struct {
	service *proposal.Service
	log     zerolog.Logger
}

// NewHandler creates a new proposal handler
func NewHandler(service *proposal.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "proposal").Logger(),
	}
}

// HandleGenerate runs the full advisory pipeline and returns the proposal.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req proposal.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := h.service.Generate(r.Context(), req)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if strings.Contains(err.Error(), "missing field") {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleGenerateDocument returns only the rendered narrative as plain text.
// Rendering problems are reported separately from computation errors.
func (h *Handler) HandleGenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req proposal.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(p.Narrative)); err != nil {
		h.log.Error().Err(err).Str("proposal_id", p.ID).Msg("Failed to write proposal document")
	}
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
