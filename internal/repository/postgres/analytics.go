package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/domain"
)

// AnalyticsRepository runs the dashboard aggregation queries. Aggregates
// always read the full tables; every numeric result defaults to 0 when no
// rows match.
type AnalyticsRepository struct {
	readerDB *gorm.DB
}

func NewAnalyticsRepository(readerDB *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{readerDB: readerDB}
}

func (r *AnalyticsRepository) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	db := r.readerDB.WithContext(ctx)
	stats := &domain.PlatformStats{
		MonthlyRevenue:  []domain.MonthRevenue{},
		BillingByStatus: []domain.StatusCount{},
	}

	if err := db.Model(&domain.Tenant{}).Count(&stats.TotalInstitutions).Error; err != nil {
		return nil, fmt.Errorf("failed to count institutions: %w", err)
	}
	if err := db.Model(&domain.Branch{}).Count(&stats.TotalBranches).Error; err != nil {
		return nil, fmt.Errorf("failed to count branches: %w", err)
	}
	if err := db.Model(&domain.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	if err := db.Model(&domain.Staff{}).Count(&stats.TotalStaff).Error; err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}

	if err := db.Model(&domain.InstitutionBilling{}).
		Where("status = ?", domain.BillingPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum paid billing: %w", err)
	}

	if err := db.Model(&domain.InstitutionBilling{}).
		Where("status = ?", domain.BillingOverdue).
		Count(&stats.OverdueCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count overdue billing: %w", err)
	}

	// Latest 12 month codes, returned oldest first for the chart axis.
	if err := db.Model(&domain.InstitutionBilling{}).
		Select("month_year, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status = ?", domain.BillingPaid).
		Group("month_year").
		Order("month_year DESC").
		Limit(12).
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}
	for i, j := 0, len(stats.MonthlyRevenue)-1; i < j; i, j = i+1, j-1 {
		stats.MonthlyRevenue[i], stats.MonthlyRevenue[j] = stats.MonthlyRevenue[j], stats.MonthlyRevenue[i]
	}

	if err := db.Model(&domain.InstitutionBilling{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.BillingByStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to get billing status breakdown: %w", err)
	}

	return stats, nil
}

func (r *AnalyticsRepository) TenantStats(ctx context.Context, tenantID string) (*domain.TenantStats, error) {
	db := r.readerDB.WithContext(ctx)
	stats := &domain.TenantStats{
		StudentsByStatus: make(map[string]int64),
	}

	if err := db.Model(&domain.Branch{}).Where("tenant_id = ?", tenantID).Count(&stats.TotalBranches).Error; err != nil {
		return nil, fmt.Errorf("failed to count branches: %w", err)
	}
	if err := db.Model(&domain.Student{}).Where("tenant_id = ?", tenantID).Count(&stats.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	if err := db.Model(&domain.Staff{}).Where("tenant_id = ?", tenantID).Count(&stats.TotalStaff).Error; err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	if err := db.Model(&domain.Course{}).Where("tenant_id = ?", tenantID).Count(&stats.TotalCourses).Error; err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var statuses []statusCount
	if err := db.Model(&domain.Student{}).
		Select("status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to get student status breakdown: %w", err)
	}
	for _, s := range statuses {
		stats.StudentsByStatus[s.Status] = s.Count
	}

	if err := db.Model(&domain.InstitutionBilling{}).
		Where("tenant_id = ? AND status = ?", tenantID, domain.BillingPending).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.PendingAmount).Error; err != nil {
		return nil, fmt.Errorf("failed to sum pending billing: %w", err)
	}
	if err := db.Model(&domain.InstitutionBilling{}).
		Where("tenant_id = ? AND status = ?", tenantID, domain.BillingOverdue).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.OverdueAmount).Error; err != nil {
		return nil, fmt.Errorf("failed to sum overdue billing: %w", err)
	}

	return stats, nil
}

func (r *AnalyticsRepository) InstitutionRollups(ctx context.Context) ([]domain.InstitutionRollup, error) {
	var rollups []domain.InstitutionRollup

	query := `
		SELECT
			t.id AS tenant_id,
			t.name AS tenant_name,
			(SELECT COUNT(*) FROM branches b WHERE b.tenant_id = t.id) AS branch_count,
			(SELECT COUNT(*) FROM students s WHERE s.tenant_id = t.id) AS student_count,
			COALESCE((SELECT SUM(ib.total_amount) FROM institution_billing ib WHERE ib.tenant_id = t.id), 0) AS billed_amount,
			COALESCE((SELECT SUM(ib.total_amount) FROM institution_billing ib WHERE ib.tenant_id = t.id AND ib.status = 'PAID'), 0) AS paid_amount,
			COALESCE((SELECT SUM(ib.total_amount) FROM institution_billing ib WHERE ib.tenant_id = t.id AND ib.status = 'OVERDUE'), 0) AS overdue_amount
		FROM tenants t
		ORDER BY t.name ASC`

	if err := r.readerDB.WithContext(ctx).Raw(query).Scan(&rollups).Error; err != nil {
		return nil, fmt.Errorf("failed to get institution rollups: %w", err)
	}
	return rollups, nil
}

func (r *AnalyticsRepository) TierRollups(ctx context.Context) ([]domain.TierRollup, error) {
	var rollups []domain.TierRollup

	// active_institutions counts distinct subscribed tenants; total_revenue
	// sums PAID billing joined through those tenants' active subscriptions.
	query := `
		SELECT
			st.id AS tier_id,
			st.name AS tier_name,
			COUNT(DISTINCT ts.tenant_id) FILTER (WHERE ts.active) AS active_institutions,
			COALESCE(SUM(ib.total_amount) FILTER (WHERE ib.status = 'PAID' AND ts.active), 0) AS total_revenue
		FROM subscription_tiers st
		LEFT JOIN tenant_subscriptions ts ON ts.tier_id = st.id
		LEFT JOIN institution_billing ib ON ib.tenant_id = ts.tenant_id
		GROUP BY st.id, st.name
		ORDER BY st.name ASC`

	if err := r.readerDB.WithContext(ctx).Raw(query).Scan(&rollups).Error; err != nil {
		return nil, fmt.Errorf("failed to get tier rollups: %w", err)
	}
	return rollups, nil
}
