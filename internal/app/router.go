package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
	"github.com/NMirzabek/PayrollAnalytics/internal/employees"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
	"github.com/NMirzabek/PayrollAnalytics/internal/regions"
	"github.com/NMirzabek/PayrollAnalytics/internal/statistics"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	RegionsHandler       *regions.Handler
	OrganizationsHandler *organizations.Handler
	EmployeesHandler     *employees.Handler
	CalculationsHandler  *calculations.Handler
	StatisticsHandler    *statistics.Handler
}

// NewRouter constructs the chi.Router with service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/regions", params.RegionsHandler.MountRoutes)
		r.Route("/organizations", params.OrganizationsHandler.MountRoutes)
		r.Route("/employees", params.EmployeesHandler.MountRoutes)
		r.Route("/calculations", params.CalculationsHandler.MountRoutes)
		r.Route("/statistics", params.StatisticsHandler.MountRoutes)
	})

	return r
}
