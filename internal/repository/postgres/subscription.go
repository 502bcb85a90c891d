package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

type SubscriptionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubscriptionRepository(writerDB, readerDB *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubscriptionRepository) CreateTier(ctx context.Context, tier *domain.SubscriptionTier) (*domain.SubscriptionTier, error) {
	if tier.ID == "" {
		tier.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(tier).Error; err != nil {
		return nil, err
	}
	return tier, nil
}

func (r *SubscriptionRepository) GetTierByID(ctx context.Context, id string) (*domain.SubscriptionTier, error) {
	var tier domain.SubscriptionTier
	if err := r.readerDB.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &tier, nil
}

func (r *SubscriptionRepository) UpdateTier(ctx context.Context, tier *domain.SubscriptionTier) error {
	return r.writerDB.WithContext(ctx).Save(tier).Error
}

func (r *SubscriptionRepository) DeleteTier(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.SubscriptionTier{}, "id = ?", id).Error
}

func (r *SubscriptionRepository) ListTiers(ctx context.Context) ([]domain.SubscriptionTier, error) {
	var tiers []domain.SubscriptionTier
	if err := r.readerDB.WithContext(ctx).Order("student_count_min ASC").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *SubscriptionRepository) Subscribe(ctx context.Context, sub *domain.TenantSubscription) (*domain.TenantSubscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	// A tenant holds at most one active subscription; switching tiers
	// deactivates the previous row rather than deleting history.
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.TenantSubscription{}).
			Where("tenant_id = ? AND active", sub.TenantID).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(sub).Error
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepository) ActiveSubscription(ctx context.Context, tenantID string) (*domain.TenantSubscription, error) {
	var sub domain.TenantSubscription
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND active", tenantID).
		First(&sub).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListActiveSubscriptions(ctx context.Context) ([]domain.TenantSubscription, error) {
	var subs []domain.TenantSubscription
	if err := r.readerDB.WithContext(ctx).Where("active").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
