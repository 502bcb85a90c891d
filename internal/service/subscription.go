package service

import (
	"context"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/pkg/logger"
)

type SubscriptionService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewSubscriptionService(repo repository.Repository, logger *logger.Logger) *SubscriptionService {
	return &SubscriptionService{repo: repo, logger: logger}
}

func validateCycle(cycle domain.BillingCycle) error {
	switch cycle {
	case domain.CycleMonthly, domain.CycleQuarterly, domain.CycleYearly:
		return nil
	}
	return ErrInvalidCycle
}

func (s *SubscriptionService) CreateTier(ctx context.Context, req dto.CreateTierRequest) (*domain.SubscriptionTier, error) {
	tier := req.ToTier()
	if err := validateCycle(tier.BillingCycle); err != nil {
		return nil, err
	}
	if tier.StudentCountMin < 0 || tier.StudentCountMax < tier.StudentCountMin {
		return nil, ErrInvalidCountRange
	}
	return s.repo.Subscription().CreateTier(ctx, tier)
}

func (s *SubscriptionService) GetTier(ctx context.Context, id string) (*domain.SubscriptionTier, error) {
	return s.repo.Subscription().GetTierByID(ctx, id)
}

func (s *SubscriptionService) UpdateTier(ctx context.Context, id string, req dto.UpdateTierRequest) (*domain.SubscriptionTier, error) {
	tier, err := s.repo.Subscription().GetTierByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}

	req.Apply(tier)
	if err := validateCycle(tier.BillingCycle); err != nil {
		return nil, err
	}
	if tier.StudentCountMin < 0 || tier.StudentCountMax < tier.StudentCountMin {
		return nil, ErrInvalidCountRange
	}
	tier.UpdatedAt = time.Now()
	if err := s.repo.Subscription().UpdateTier(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *SubscriptionService) DeleteTier(ctx context.Context, id string) error {
	tier, err := s.repo.Subscription().GetTierByID(ctx, id)
	if err != nil {
		return err
	}
	if tier == nil {
		return ErrTierNotFound
	}
	return s.repo.Subscription().DeleteTier(ctx, id)
}

func (s *SubscriptionService) ListTiers(ctx context.Context) ([]domain.SubscriptionTier, error) {
	return s.repo.Subscription().ListTiers(ctx)
}

// Subscribe moves a tenant onto a tier. Any prior active subscription row is
// deactivated inside the repository transaction.
func (s *SubscriptionService) Subscribe(ctx context.Context, tenantID, tierID string) (*domain.TenantSubscription, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrInstitutionNotFound
	}

	tier, err := s.repo.Subscription().GetTierByID(ctx, tierID)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}

	sub := &domain.TenantSubscription{
		TenantID:  tenantID,
		TierID:    tierID,
		Active:    true,
		StartedAt: time.Now(),
	}
	return s.repo.Subscription().Subscribe(ctx, sub)
}
