package service

import (
	"context"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

// DashboardService serves both the super-admin platform dashboard and the
// per-institution dashboard from the same aggregation repository.
type DashboardService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewDashboardService(repo repository.Repository, logger *logger.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

func (s *DashboardService) PlatformDashboard(ctx context.Context) (*dto.PlatformDashboardResponse, error) {
	stats, err := s.repo.Analytics().PlatformStats(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromPlatformStats(stats), nil
}

func (s *DashboardService) TenantDashboard(ctx context.Context) (*dto.TenantDashboardResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}

	stats, err := s.repo.Analytics().TenantStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromTenantStats(stats), nil
}

func (s *DashboardService) InstitutionAnalytics(ctx context.Context) ([]domain.InstitutionRollup, error) {
	return s.repo.Analytics().InstitutionRollups(ctx)
}

func (s *DashboardService) SubscriptionAnalytics(ctx context.Context) ([]domain.TierRollup, error) {
	return s.repo.Analytics().TierRollups(ctx)
}
