package calculations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NMirzabek/PayrollAnalytics/internal/employees"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
)

// ErrInvalidAmount indicates a non-positive amount or rate.
var ErrInvalidAmount = errors.New("amount and rate must be positive")

// EmployeeStore is the subset of the employees repository the service needs.
type EmployeeStore interface {
	Get(ctx context.Context, id int64) (*employees.Employee, error)
}

// OrganizationStore is the subset of the organizations repository the service needs.
type OrganizationStore interface {
	Get(ctx context.Context, id int64) (*organizations.Organization, error)
}

type Service struct {
	repo      Repository
	employees EmployeeStore
	orgs      OrganizationStore
}

func NewService(repo Repository, employeeStore EmployeeStore, orgStore OrganizationStore) *Service {
	return &Service{repo: repo, employees: employeeStore, orgs: orgStore}
}

func (s *Service) Create(ctx context.Context, req CreateCalculationRequest) (*Calculation, error) {
	if _, err := s.employees.Get(ctx, req.EmployeeID); err != nil {
		return nil, fmt.Errorf("calculation employee: %w", err)
	}
	if _, err := s.orgs.Get(ctx, req.OrganizationID); err != nil {
		return nil, fmt.Errorf("calculation organization: %w", err)
	}
	if !req.Amount.IsPositive() || !req.Rate.IsPositive() {
		return nil, ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	calc := Calculation{
		EmployeeID:     req.EmployeeID,
		OrganizationID: req.OrganizationID,
		Amount:         req.Amount,
		Rate:           req.Rate,
		Date:           date,
		Kind:           Kind(req.CalculationType),
	}

	var id int64
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		var err error
		id, err = repo.Create(ctx, calc)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create calculation: %w", err)
	}
	calc.ID = id
	return &calc, nil
}

func (s *Service) List(ctx context.Context) ([]Calculation, error) {
	calcs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}
