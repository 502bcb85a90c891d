package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
)

// InstitutionService handles super-admin tenant onboarding and management.
type InstitutionService struct {
	repo repository.Repository
}

func NewInstitutionService(repo repository.Repository) *InstitutionService {
	return &InstitutionService{repo: repo}
}

func (s *InstitutionService) Create(ctx context.Context, req dto.CreateInstitutionRequest) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().Create(ctx, req.ToTenant())
	if err != nil {
		return nil, fmt.Errorf("failed to create institution: %w", err)
	}

	// Onboarding with a tier subscribes the tenant immediately.
	if req.TierID != "" {
		tier, err := s.repo.Subscription().GetTierByID(ctx, req.TierID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up tier: %w", err)
		}
		if tier == nil {
			return nil, ErrTierNotFound
		}
		_, err = s.repo.Subscription().Subscribe(ctx, &domain.TenantSubscription{
			TenantID:  tenant.ID,
			TierID:    tier.ID,
			Active:    true,
			StartedAt: time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe institution: %w", err)
		}
	}

	return tenant, nil
}

func (s *InstitutionService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.repo.Tenant().GetByID(ctx, id)
}

func (s *InstitutionService) Update(ctx context.Context, id string, req dto.UpdateInstitutionRequest) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrInstitutionNotFound
	}

	req.Apply(tenant)
	tenant.UpdatedAt = time.Now()
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to update institution: %w", err)
	}
	return tenant, nil
}

func (s *InstitutionService) Delete(ctx context.Context, id string) error {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrInstitutionNotFound
	}
	return s.repo.Tenant().Delete(ctx, id)
}

func (s *InstitutionService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.repo.Tenant().List(ctx)
}
