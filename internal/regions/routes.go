package regions

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers region routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
}
