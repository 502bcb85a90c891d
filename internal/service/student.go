package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

type StudentService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewStudentService(repo repository.Repository, logger *logger.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}

	status := domain.StudentActive
	if req.Status != "" {
		status = domain.StudentStatus(req.Status)
	}
	enrolledAt := time.Now()
	if req.EnrolledAt != nil {
		enrolledAt = *req.EnrolledAt
	}

	student := &domain.Student{
		TenantID:   tenantID,
		BranchID:   req.BranchID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     status,
		EnrolledAt: enrolledAt,
	}

	created, err := s.repo.Student().Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	// Directory indexing is best effort; the row is already persisted.
	if err := s.repo.StudentSearch().Index(ctx, created); err != nil {
		s.logger.Errorf("failed to index student %s: %v", created.ID, err)
	}

	return created, nil
}

func (s *StudentService) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.Student().GetByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	req.Apply(student)
	student.UpdatedAt = time.Now()
	if err := s.repo.Student().Update(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	if err := s.repo.StudentSearch().Index(ctx, student); err != nil {
		s.logger.Errorf("failed to reindex student %s: %v", student.ID, err)
	}

	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}

	if err := s.repo.Student().Delete(ctx, id); err != nil {
		return err
	}
	if err := s.repo.StudentSearch().Remove(ctx, student.TenantID, student.ID); err != nil {
		s.logger.Errorf("failed to remove student %s from index: %v", student.ID, err)
	}
	return nil
}

// List returns students for the caller's tenant. Free-text queries go
// through the search index; plain filters stay on the relational store.
func (s *StudentService) List(ctx context.Context, filter *domain.StudentFilter, usePagination bool) ([]domain.Student, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}
	filter.TenantID = tenantID

	if usePagination {
		if filter.Page < 1 {
			filter.Page = 1
		}
		if filter.PageSize < 1 {
			filter.PageSize = 10
		}
		filter.Limit = filter.PageSize
		filter.Offset = (filter.Page - 1) * filter.PageSize
	}

	if filter.Query != "" {
		return s.repo.StudentSearch().Search(ctx, filter)
	}
	return s.repo.Student().List(ctx, *filter)
}
