package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type BranchRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBranchRepository(writerDB, readerDB *gorm.DB) *BranchRepository {
	return &BranchRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BranchRepository) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(branch).Error; err != nil {
		return nil, err
	}
	return branch, nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	var branch domain.Branch
	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}
	if err := db.First(&branch, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &branch, nil
}

func (r *BranchRepository) Update(ctx context.Context, branch *domain.Branch) error {
	return r.writerDB.WithContext(ctx).Save(branch).Error
}

func (r *BranchRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Branch{}, "id = ?", id).Error
}

func (r *BranchRepository) List(ctx context.Context, tenantID string) ([]domain.Branch, error) {
	var branches []domain.Branch
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}
