package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/domain"
)

type MapperTestSuite struct {
	suite.Suite
}

func TestMapper(t *testing.T) {
	suite.Run(t, new(MapperTestSuite))
}

func (s *MapperTestSuite) TestFromPlatformStats() {
	stats := &domain.PlatformStats{
		TotalInstitutions: 12,
		TotalRevenue:      250000,
		OverdueCount:      3,
		MonthlyRevenue: []domain.MonthRevenue{
			{MonthYear: "2026-01", Revenue: 80000},
			{MonthYear: "2026-02", Revenue: 82000},
			{MonthYear: "2026-03", Revenue: 88000},
		},
		BillingByStatus: []domain.StatusCount{
			{Status: domain.BillingPaid, Count: 40},
			{Status: domain.BillingPending, Count: 8},
			{Status: domain.BillingOverdue, Count: 3},
		},
	}

	resp := FromPlatformStats(stats)

	s.Equal(int64(12), resp.TotalInstitutions)
	s.Len(resp.MonthlyRevenue, 3)
	s.Equal("Jan", resp.MonthlyRevenue[0].Month)
	s.Equal("2026-01", resp.MonthlyRevenue[0].MonthYear)
	s.Equal("Mar", resp.MonthlyRevenue[2].Month)
	s.Equal(float64(88000), resp.MonthlyRevenue[2].Revenue)

	s.Len(resp.BillingByStatus, 3)
	s.Equal("PAID", resp.BillingByStatus[0].Status)
	s.Equal("#22c55e", resp.BillingByStatus[0].Color)
	s.Equal("#f59e0b", resp.BillingByStatus[1].Color)
	s.Equal("#ef4444", resp.BillingByStatus[2].Color)
}

func (s *MapperTestSuite) TestFromTenantStats() {
	stats := &domain.TenantStats{
		TotalBranches:    2,
		TotalStudents:    340,
		StudentsByStatus: map[string]int64{"ACTIVE": 320, "INACTIVE": 20},
		PendingAmount:    40800,
	}

	resp := FromTenantStats(stats)

	s.Equal(int64(2), resp.TotalBranches)
	s.Equal(int64(320), resp.StudentsByStatus["ACTIVE"])
	s.Equal(float64(40800), resp.PendingAmount)
}

func (s *MapperTestSuite) TestUpdateTierRequestApply() {
	tier := &domain.SubscriptionTier{
		Name:            "Gold",
		StudentCountMin: 50,
		StudentCountMax: 200,
		PricePerStudent: 120,
		BillingCycle:    domain.CycleMonthly,
	}

	price := 135.0
	cycle := "yearly"
	req := UpdateTierRequest{PricePerStudent: &price, BillingCycle: &cycle}
	req.Apply(tier)

	s.Equal(135.0, tier.PricePerStudent)
	s.Equal(domain.CycleYearly, tier.BillingCycle)
	// Untouched fields keep their values.
	s.Equal("Gold", tier.Name)
	s.Equal(50, tier.StudentCountMin)
}

func (s *MapperTestSuite) TestFromBilling() {
	now := time.Now()
	billing := &domain.InstitutionBilling{
		ID:          "billing1",
		TenantID:    "tenant1",
		MonthYear:   "2026-03",
		TotalAmount: 18000,
		Status:      domain.BillingPending,
		UpdatedAt:   now,
	}

	event := FromBilling(billing)

	s.Equal("billing1", event.BillingID)
	s.Equal("PENDING", event.Status)
	s.Equal(18000.0, event.TotalAmount)
	s.True(event.OccurredAt.Equal(now))
}

func (s *MapperTestSuite) TestSanitizeUser() {
	user := &domain.User{
		ID:       "user1",
		Email:    "jordan@springfield.edu",
		Password: "bcrypt-hash",
		Role:     domain.RoleAdmin,
	}

	resp := SanitizeUser(user)

	s.Equal("user1", resp.ID)
	s.Equal("admin", resp.Role)
}
