package statistics

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/over-rate", h.OverRate)
	r.Get("/multi-region", h.MultiRegion)
	r.Get("/org-average", h.OrgAverage)
	r.Get("/salary-vacation", h.SalaryVacation)
}
