package calculations

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/NMirzabek/PayrollAnalytics/internal/employees"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
	"github.com/NMirzabek/PayrollAnalytics/internal/platform/httpx"
)

// Handler wires calculation HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCalculationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	calc, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrNotFound),
			errors.Is(err, organizations.ErrNotFound),
			errors.Is(err, ErrBadReference):
			httpx.Problem(w, http.StatusBadRequest, "Bad Reference", err.Error())
		case errors.Is(err, ErrInvalidAmount):
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		default:
			h.logger.Error("create calculation", slog.Any("error", err))
			httpx.RespondError(w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, calc)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	calcs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list calculations", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, calcs)
}
