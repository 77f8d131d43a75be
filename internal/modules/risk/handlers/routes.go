package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers risk assessment routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/risk", func(r chi.Router) {
		r.Post("/score", h.HandleScore)
		r.Post("/manual", h.HandleManual)
	})
}
