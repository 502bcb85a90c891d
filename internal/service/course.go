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

type CourseService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewCourseService(repo repository.Repository, logger *logger.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*domain.Course, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}

	course := &domain.Course{
		TenantID:       tenantID,
		Name:           req.Name,
		Code:           req.Code,
		Fee:            req.Fee,
		DurationMonths: req.DurationMonths,
		Status:         domain.CourseActive,
	}
	return s.repo.Course().Create(ctx, course)
}

func (s *CourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.Course().GetByID(ctx, id)
}

func (s *CourseService) Update(ctx context.Context, id string, req dto.UpdateCourseRequest) (*domain.Course, error) {
	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	req.Apply(course)
	course.UpdatedAt = time.Now()
	if err := s.repo.Course().Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	return s.repo.Course().Delete(ctx, id)
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}
	return s.repo.Course().List(ctx, tenantID)
}
