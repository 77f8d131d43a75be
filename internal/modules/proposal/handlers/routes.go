package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers proposal routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/proposals", func(r chi.Router) {
		r.Post("/", h.HandleGenerate)
		r.Post("/document", h.HandleGenerateDocument)
	})
}
