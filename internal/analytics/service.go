package analytics

import (
	"context"
	"fmt"
)

// Service assembles dashboard views from the repository
type Service interface {
	GetOverview(ctx context.Context) (*Overview, error)
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOverview(ctx context.Context) (*Overview, error) {
	return s.repo.GetOverview(ctx)
}

func (s *service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	overview, err := s.repo.GetOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}

	topVenues, err := s.repo.GetVenuePerformance(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue performance: %w", err)
	}

	dailyTrends, err := s.repo.GetDailyStats(ctx, 30)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	popularServices, err := s.repo.GetServicePopularity(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to get service popularity: %w", err)
	}

	return &Dashboard{
		Overview:        *overview,
		TopVenues:       topVenues,
		DailyTrends:     dailyTrends,
		PopularServices: popularServices,
	}, nil
}
