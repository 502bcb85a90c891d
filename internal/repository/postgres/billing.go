package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type BillingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBillingRepository(writerDB, readerDB *gorm.DB) *BillingRepository {
	return &BillingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BillingRepository) Create(ctx context.Context, billing *domain.InstitutionBilling) (*domain.InstitutionBilling, error) {
	if billing.ID == "" {
		billing.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(billing).Error; err != nil {
		return nil, err
	}
	return billing, nil
}

func (r *BillingRepository) GetByID(ctx context.Context, id string) (*domain.InstitutionBilling, error) {
	var billing domain.InstitutionBilling
	if err := r.readerDB.WithContext(ctx).First(&billing, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &billing, nil
}

func (r *BillingRepository) Update(ctx context.Context, billing *domain.InstitutionBilling) error {
	return r.writerDB.WithContext(ctx).Save(billing).Error
}

func (r *BillingRepository) List(ctx context.Context, filter domain.BillingFilter) ([]domain.InstitutionBilling, error) {
	var rows []domain.InstitutionBilling

	db := r.readerDB.WithContext(ctx)
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.BranchID != "" {
		db = db.Where("branch_id = ?", filter.BranchID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.MonthYear != "" {
		db = db.Where("month_year = ?", filter.MonthYear)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("month_year DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BillingRepository) ExistsForMonth(ctx context.Context, tenantID, monthYear string) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.InstitutionBilling{}).
		Where("tenant_id = ? AND month_year = ?", tenantID, monthYear).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkOverdue flips PENDING rows whose due date has passed to OVERDUE and
// returns the number of rows updated.
func (r *BillingRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.InstitutionBilling{}).
		Where("status = ? AND due_date < ?", domain.BillingPending, asOf).
		Updates(map[string]any{
			"status":     domain.BillingOverdue,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
