package organizations

import (
	"context"
	"fmt"

	"github.com/NMirzabek/PayrollAnalytics/internal/regions"
)

// RegionStore is the subset of the regions repository the service needs.
type RegionStore interface {
	Get(ctx context.Context, id int64) (*regions.Region, error)
}

type Service struct {
	repo    Repository
	regions RegionStore
}

func NewService(repo Repository, regionStore RegionStore) *Service {
	return &Service{repo: repo, regions: regionStore}
}

func (s *Service) Create(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	if _, err := s.regions.Get(ctx, req.RegionID); err != nil {
		return nil, fmt.Errorf("organization region: %w", err)
	}
	if req.ParentID != nil {
		if _, err := s.repo.Get(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("organization parent: %w", err)
		}
	}

	org := Organization{
		Name:     req.Name,
		RegionID: req.RegionID,
		ParentID: req.ParentID,
	}
	id, err := s.repo.Create(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	org.ID = id
	return &org, nil
}

func (s *Service) List(ctx context.Context) ([]Organization, error) {
	orgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}
