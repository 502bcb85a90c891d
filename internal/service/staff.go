package service

import (
	"context"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

type StaffService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewStaffService(repo repository.Repository, logger *logger.Logger) *StaffService {
	return &StaffService{repo: repo, logger: logger}
}

func (s *StaffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*domain.Staff, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}

	staff := &domain.Staff{
		TenantID: tenantID,
		BranchID: req.BranchID,
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		IsActive: true,
	}
	return s.repo.Staff().Create(ctx, staff)
}

func (s *StaffService) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return s.repo.Staff().GetByID(ctx, id)
}

func (s *StaffService) Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	staff, err := s.repo.Staff().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	req.Apply(staff)
	staff.UpdatedAt = time.Now()
	if err := s.repo.Staff().Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	staff, err := s.repo.Staff().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}
	return s.repo.Staff().Delete(ctx, id)
}

func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}
	return s.repo.Staff().List(ctx, tenantID)
}
