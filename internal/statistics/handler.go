package statistics

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
	"github.com/NMirzabek/PayrollAnalytics/internal/platform/httpx"
)

// Handler wires the statistics report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) OverRate(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.OverRate(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.respondReportError(w, "over-rate", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) MultiRegion(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MultiRegion(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.respondReportError(w, "multi-region", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) OrgAverage(w http.ResponseWriter, r *http.Request) {
	organizationID, err := strconv.ParseInt(r.URL.Query().Get("organization_id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "organization_id must be an integer")
		return
	}

	rows, err := h.service.OrgAverage(r.Context(), r.URL.Query().Get("month"), organizationID)
	if err != nil {
		h.respondReportError(w, "org-average", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) SalaryVacation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.SalaryVacation(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.respondReportError(w, "salary-vacation", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) respondReportError(w http.ResponseWriter, report string, err error) {
	switch {
	case errors.Is(err, ErrMalformedMonth):
		httpx.Problem(w, http.StatusBadRequest, "Malformed Month", err.Error())
	case errors.Is(err, organizations.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		h.logger.Error("report failed", slog.String("report", report), slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
