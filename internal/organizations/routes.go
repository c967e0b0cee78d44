package organizations

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers organization routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
}
