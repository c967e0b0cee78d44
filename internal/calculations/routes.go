package calculations

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers calculation routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
}
