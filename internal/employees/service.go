package employees

import (
	"context"
	"fmt"
	"time"

	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
)

// OrganizationStore is the subset of the organizations repository the service needs.
type OrganizationStore interface {
	Get(ctx context.Context, id int64) (*organizations.Organization, error)
}

type Service struct {
	repo Repository
	orgs OrganizationStore
}

func NewService(repo Repository, orgStore OrganizationStore) *Service {
	return &Service{repo: repo, orgs: orgStore}
}

func (s *Service) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	if _, err := s.orgs.Get(ctx, req.OrganizationID); err != nil {
		return nil, fmt.Errorf("employee organization: %w", err)
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("parse hire date: %w", err)
	}

	employee := Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Pinfl:          req.Pinfl,
		HireDate:       hireDate,
		OrganizationID: req.OrganizationID,
	}
	id, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	employee.ID = id
	return &employee, nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}
