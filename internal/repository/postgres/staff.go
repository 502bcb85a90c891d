package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type StaffRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewStaffRepository(writerDB, readerDB *gorm.DB) *StaffRepository {
	return &StaffRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	var staff domain.Staff
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := db.First(&staff, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &staff, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	return r.writerDB.WithContext(ctx).Save(staff).Error
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Staff{}, "id = ?", id).Error
}

func (r *StaffRepository) List(ctx context.Context, tenantID string) ([]domain.Staff, error) {
	var staff []domain.Staff
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}
