package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type EnrollmentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewEnrollmentRepository(writerDB, readerDB *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	if enrollment.ID == "" {
		enrollment.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := db.First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.writerDB.WithContext(ctx).Save(enrollment).Error
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Enrollment{}, "id = ?", id).Error
}

func (r *EnrollmentRepository) List(ctx context.Context, tenantID string) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
