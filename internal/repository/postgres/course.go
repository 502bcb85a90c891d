package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type CourseRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCourseRepository(writerDB, readerDB *gorm.DB) *CourseRepository {
	return &CourseRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &course, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	return r.writerDB.WithContext(ctx).Save(course).Error
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id).Error
}

func (r *CourseRepository) List(ctx context.Context, tenantID string) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
