package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/mocks"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

type BillingServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockBilling      *mocks.BillingRepository
	mockSubscription *mocks.SubscriptionRepository
	mockStudent      *mocks.StudentRepository
	mockTenant       *mocks.TenantRepository
	mockPublisher    *mocks.EventPublisher
	mockQueue        *mocks.InvoiceQueue
	service          *BillingService
}

func (s *BillingServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockBilling = new(mocks.BillingRepository)
	s.mockSubscription = new(mocks.SubscriptionRepository)
	s.mockStudent = new(mocks.StudentRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockPublisher = new(mocks.EventPublisher)
	s.mockQueue = new(mocks.InvoiceQueue)

	s.mockRepo.On("Billing").Return(s.mockBilling)
	s.mockRepo.On("Subscription").Return(s.mockSubscription)
	s.mockRepo.On("Student").Return(s.mockStudent)
	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewBillingService(s.mockRepo, s.mockPublisher, s.mockQueue, logger.NewLogger("test"))
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func ctxWithClaims(role, tenantID string) context.Context {
	claims := jwt.MapClaims{"sub": "user1", string(utils.RoleKey): role}
	if tenantID != "" {
		claims[string(utils.TenantIDKey)] = tenantID
	}
	return context.WithValue(context.Background(), utils.ClaimsKey, claims)
}

func (s *BillingServiceTestSuite) TestGenerateForMonth_AmountIsStudentCountTimesTierPrice() {
	ctx := context.Background()
	subs := []domain.TenantSubscription{
		{ID: "sub1", TenantID: "tenant1", TierID: "tier1", Active: true},
	}
	tier := &domain.SubscriptionTier{ID: "tier1", Name: "Gold", PricePerStudent: 120}

	s.mockSubscription.On("ListActiveSubscriptions", ctx).Return(subs, nil)
	s.mockBilling.On("ExistsForMonth", ctx, "tenant1", "2026-03").Return(false, nil)
	s.mockSubscription.On("GetTierByID", ctx, "tier1").Return(tier, nil)
	s.mockStudent.On("CountActive", ctx, "tenant1").Return(int64(150), nil)
	s.mockBilling.On("Create", ctx, mock.MatchedBy(func(b *domain.InstitutionBilling) bool {
		return b.TenantID == "tenant1" &&
			b.MonthYear == "2026-03" &&
			b.TotalAmount == 18000 &&
			b.Status == domain.BillingPending &&
			b.DueDate.Equal(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	})).Return(func(_ context.Context, b *domain.InstitutionBilling) *domain.InstitutionBilling {
		created := *b
		created.ID = "billing1"
		return &created
	}, nil)
	s.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e *dto.BillingEvent) bool {
		return e.BillingID == "billing1" && e.TotalAmount == 18000 && e.Status == "PENDING"
	})).Return(nil)

	created, err := s.service.GenerateForMonth(ctx, "2026-03")

	s.NoError(err)
	s.Equal(1, created)
	s.mockBilling.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestGenerateForMonth_SkipsExistingRows() {
	ctx := context.Background()
	subs := []domain.TenantSubscription{
		{ID: "sub1", TenantID: "tenant1", TierID: "tier1", Active: true},
		{ID: "sub2", TenantID: "tenant2", TierID: "tier1", Active: true},
	}
	tier := &domain.SubscriptionTier{ID: "tier1", PricePerStudent: 80}

	s.mockSubscription.On("ListActiveSubscriptions", ctx).Return(subs, nil)
	s.mockBilling.On("ExistsForMonth", ctx, "tenant1", "2026-03").Return(true, nil)
	s.mockBilling.On("ExistsForMonth", ctx, "tenant2", "2026-03").Return(false, nil)
	s.mockSubscription.On("GetTierByID", ctx, "tier1").Return(tier, nil)
	s.mockStudent.On("CountActive", ctx, "tenant2").Return(int64(10), nil)
	s.mockBilling.On("Create", ctx, mock.AnythingOfType("*domain.InstitutionBilling")).
		Return(&domain.InstitutionBilling{ID: "billing2", TenantID: "tenant2", Status: domain.BillingPending}, nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.BillingEvent")).Return(nil)

	created, err := s.service.GenerateForMonth(ctx, "2026-03")

	s.NoError(err)
	s.Equal(1, created)
	s.mockBilling.AssertNumberOfCalls(s.T(), "Create", 1)
}

func (s *BillingServiceTestSuite) TestGenerateForMonth_InvalidMonthCode() {
	_, err := s.service.GenerateForMonth(context.Background(), "March 2026")
	s.Error(err)
	s.mockSubscription.AssertNotCalled(s.T(), "ListActiveSubscriptions")
}

func (s *BillingServiceTestSuite) TestUpdateStatus_PaidStampsPaidAt() {
	ctx := context.Background()
	billing := &domain.InstitutionBilling{
		ID:        "billing1",
		TenantID:  "tenant1",
		MonthYear: "2026-03",
		Status:    domain.BillingPending,
	}

	s.mockBilling.On("GetByID", ctx, "billing1").Return(billing, nil)
	s.mockBilling.On("Update", ctx, mock.MatchedBy(func(b *domain.InstitutionBilling) bool {
		return b.Status == domain.BillingPaid && b.PaidAt != nil
	})).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e *dto.BillingEvent) bool {
		return e.Status == "PAID"
	})).Return(nil)

	updated, err := s.service.UpdateStatus(ctx, "billing1", domain.BillingPaid)

	s.NoError(err)
	s.NotNil(updated.PaidAt)
	s.mockBilling.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestUpdateStatus_BackToPendingClearsPaidAt() {
	ctx := context.Background()
	paidAt := time.Now()
	billing := &domain.InstitutionBilling{ID: "billing1", Status: domain.BillingPaid, PaidAt: &paidAt}

	s.mockBilling.On("GetByID", ctx, "billing1").Return(billing, nil)
	s.mockBilling.On("Update", ctx, mock.MatchedBy(func(b *domain.InstitutionBilling) bool {
		return b.Status == domain.BillingPending && b.PaidAt == nil
	})).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.BillingEvent")).Return(nil)

	updated, err := s.service.UpdateStatus(ctx, "billing1", domain.BillingPending)

	s.NoError(err)
	s.Nil(updated.PaidAt)
}

func (s *BillingServiceTestSuite) TestUpdateStatus_RejectsUnknownStatus() {
	_, err := s.service.UpdateStatus(context.Background(), "billing1", domain.BillingStatus("CANCELLED"))
	s.ErrorIs(err, ErrInvalidStatus)
	s.mockBilling.AssertNotCalled(s.T(), "GetByID")
}

func (s *BillingServiceTestSuite) TestUpdateStatus_NotFound() {
	ctx := context.Background()
	s.mockBilling.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := s.service.UpdateStatus(ctx, "missing", domain.BillingPaid)
	s.ErrorIs(err, ErrBillingNotFound)
}

func (s *BillingServiceTestSuite) TestList_AdminIsPinnedToOwnTenant() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")

	s.mockBilling.On("List", ctx, mock.MatchedBy(func(f domain.BillingFilter) bool {
		return f.TenantID == "tenant1" && f.Page == 1 && f.Limit == 10 && f.Offset == 0
	})).Return([]domain.InstitutionBilling{}, nil)

	// The caller asked for another tenant's rows; the filter is overridden.
	_, err := s.service.List(ctx, &domain.BillingFilter{TenantID: "tenant2"})

	s.NoError(err)
	s.mockBilling.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestList_SuperAdminMayFilterAnyTenant() {
	ctx := ctxWithClaims(string(domain.RoleSuperAdmin), "")

	s.mockBilling.On("List", ctx, mock.MatchedBy(func(f domain.BillingFilter) bool {
		return f.TenantID == "tenant2"
	})).Return([]domain.InstitutionBilling{}, nil)

	_, err := s.service.List(ctx, &domain.BillingFilter{TenantID: "tenant2"})

	s.NoError(err)
}

func (s *BillingServiceTestSuite) TestList_NoTenantClaimRejected() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "")

	_, err := s.service.List(ctx, &domain.BillingFilter{})
	s.ErrorIs(err, ErrTenantIDRequired)
}

func (s *BillingServiceTestSuite) TestScheduleInvoiceArchive() {
	ctx := context.Background()
	billing := &domain.InstitutionBilling{ID: "billing1", TenantID: "tenant1", MonthYear: "2026-03"}

	s.mockBilling.On("GetByID", ctx, "billing1").Return(billing, nil)
	s.mockQueue.On("SendArchiveInvoiceMessage", ctx, "tenant1", "billing1", "2026-03").Return(nil)

	s.NoError(s.service.ScheduleInvoiceArchive(ctx, "billing1"))
	s.mockQueue.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestScheduleInvoiceArchive_NotFound() {
	ctx := context.Background()
	s.mockBilling.On("GetByID", ctx, "missing").Return(nil, nil)

	err := s.service.ScheduleInvoiceArchive(ctx, "missing")
	s.ErrorIs(err, ErrBillingNotFound)
	s.mockQueue.AssertNotCalled(s.T(), "SendArchiveInvoiceMessage")
}

func (s *BillingServiceTestSuite) TestInvoiceData() {
	ctx := context.Background()
	billing := &domain.InstitutionBilling{ID: "billing1", TenantID: "tenant1"}
	tenant := &domain.Tenant{ID: "tenant1", Name: "Springfield Academy"}

	s.mockBilling.On("GetByID", ctx, "billing1").Return(billing, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)

	gotBilling, gotTenant, err := s.service.InvoiceData(ctx, "billing1")

	s.NoError(err)
	s.Equal("billing1", gotBilling.ID)
	s.Equal("Springfield Academy", gotTenant.Name)
}
