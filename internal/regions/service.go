package regions

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRegionRequest) (*Region, error) {
	id, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("create region: %w", err)
	}
	return &Region{ID: id, Name: req.Name}, nil
}

func (s *Service) List(ctx context.Context) ([]Region, error) {
	regions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}
