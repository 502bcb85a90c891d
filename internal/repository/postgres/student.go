package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type StudentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewStudentRepository(writerDB, readerDB *gorm.DB) *StudentRepository {
	return &StudentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := db.First(&student, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &student, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) error {
	return r.writerDB.WithContext(ctx).Save(student).Error
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Student{}, "id = ?", id).Error
}

func (r *StudentRepository) List(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error) {
	var students []domain.Student

	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)
	if filter.BranchID != "" {
		db = db.Where("branch_id = ?", filter.BranchID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("enrolled_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("enrolled_at <= ?", filter.EndTime)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("name ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepository) CountActive(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Student{}).
		Where("tenant_id = ? AND status = ?", tenantID, domain.StudentActive).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
