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

type EnrollmentService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewEnrollmentService(repo repository.Repository, logger *logger.Logger) *EnrollmentService {
	return &EnrollmentService{repo: repo, logger: logger}
}

// Create links a student to a course. Both rows must exist and belong to the
// caller's tenant; tenant scoping on the lookups enforces the latter.
func (s *EnrollmentService) Create(ctx context.Context, req dto.CreateEnrollmentRequest) (*domain.Enrollment, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}

	student, err := s.repo.Student().GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	course, err := s.repo.Course().GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	enrollment := &domain.Enrollment{
		TenantID:   tenantID,
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		Status:     domain.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	return s.repo.Enrollment().Create(ctx, enrollment)
}

func (s *EnrollmentService) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.repo.Enrollment().GetByID(ctx, id)
}

func (s *EnrollmentService) Update(ctx context.Context, id string, req dto.UpdateEnrollmentRequest) (*domain.Enrollment, error) {
	enrollment, err := s.repo.Enrollment().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	if req.Status != nil {
		status := domain.EnrollmentStatus(*req.Status)
		switch status {
		case domain.EnrollmentActive, domain.EnrollmentCompleted, domain.EnrollmentQuit:
			enrollment.Status = status
		default:
			return nil, ErrInvalidStatus
		}
	}
	enrollment.UpdatedAt = time.Now()
	if err := s.repo.Enrollment().Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	enrollment, err := s.repo.Enrollment().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}
	return s.repo.Enrollment().Delete(ctx, id)
}

func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrTenantIDRequired
	}
	return s.repo.Enrollment().List(ctx, tenantID)
}
