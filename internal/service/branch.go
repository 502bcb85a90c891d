package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
)

type BranchService struct {
	repo repository.Repository
}

func NewBranchService(repo repository.Repository) *BranchService {
	return &BranchService{repo: repo}
}

// Create inserts a branch. Non-super-admin callers always write into their
// own tenant regardless of the request body.
func (s *BranchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error) {
	branch := req.ToBranch()

	if utils.GetRoleFromContext(ctx) != string(domain.RoleSuperAdmin) {
		tenantID, err := utils.GetTenantIDFromContext(ctx)
		if err != nil {
			return nil, ErrTenantIDRequired
		}
		branch.TenantID = tenantID
	}
	if branch.TenantID == "" {
		return nil, ErrTenantIDRequired
	}

	created, err := s.repo.Branch().Create(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return created, nil
}

func (s *BranchService) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	return s.repo.Branch().GetByID(ctx, id)
}

func (s *BranchService) Update(ctx context.Context, id string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	branch, err := s.repo.Branch().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	req.Apply(branch)
	branch.UpdatedAt = time.Now()
	if err := s.repo.Branch().Update(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

func (s *BranchService) Delete(ctx context.Context, id string) error {
	branch, err := s.repo.Branch().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return ErrBranchNotFound
	}
	return s.repo.Branch().Delete(ctx, id)
}

func (s *BranchService) List(ctx context.Context) ([]domain.Branch, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}
	return s.repo.Branch().List(ctx, tenantID)
}
