package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/utils"
)

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// notFoundAsNil maps gorm's record-not-found to a nil row so callers can
// translate absence into a 404 without leaking gorm errors upward.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
