package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/mocks"
	"github.com/acadify/acadify-api/pkg/logger"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockSubscription *mocks.SubscriptionRepository
	mockTenant       *mocks.TenantRepository
	service          *SubscriptionService
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockSubscription = new(mocks.SubscriptionRepository)
	s.mockTenant = new(mocks.TenantRepository)

	s.mockRepo.On("Subscription").Return(s.mockSubscription)
	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewSubscriptionService(s.mockRepo, logger.NewLogger("test"))
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (s *SubscriptionServiceTestSuite) TestCreateTier_Success() {
	ctx := context.Background()
	req := dto.CreateTierRequest{
		Name:            "Gold",
		StudentCountMin: 50,
		StudentCountMax: 200,
		PricePerStudent: 120,
		BillingCycle:    "monthly",
	}

	s.mockSubscription.On("CreateTier", ctx, mock.MatchedBy(func(t *domain.SubscriptionTier) bool {
		return t.Name == "Gold" && t.BillingCycle == domain.CycleMonthly
	})).Return(&domain.SubscriptionTier{ID: "tier1", Name: "Gold"}, nil)

	tier, err := s.service.CreateTier(ctx, req)

	s.NoError(err)
	s.Equal("tier1", tier.ID)
	s.mockSubscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestCreateTier_InvalidCycle() {
	req := dto.CreateTierRequest{Name: "Gold", BillingCycle: "weekly"}

	_, err := s.service.CreateTier(context.Background(), req)

	s.ErrorIs(err, ErrInvalidCycle)
	s.mockSubscription.AssertNotCalled(s.T(), "CreateTier")
}

func (s *SubscriptionServiceTestSuite) TestCreateTier_InvalidCountRange() {
	req := dto.CreateTierRequest{
		Name:            "Gold",
		StudentCountMin: 200,
		StudentCountMax: 50,
		BillingCycle:    "monthly",
	}

	_, err := s.service.CreateTier(context.Background(), req)

	s.ErrorIs(err, ErrInvalidCountRange)
}

func (s *SubscriptionServiceTestSuite) TestUpdateTier_NotFound() {
	ctx := context.Background()
	s.mockSubscription.On("GetTierByID", ctx, "missing").Return(nil, nil)

	name := "Platinum"
	_, err := s.service.UpdateTier(ctx, "missing", dto.UpdateTierRequest{Name: &name})

	s.ErrorIs(err, ErrTierNotFound)
}

func (s *SubscriptionServiceTestSuite) TestUpdateTier_RangeValidatedAfterApply() {
	ctx := context.Background()
	tier := &domain.SubscriptionTier{
		ID:              "tier1",
		StudentCountMin: 50,
		StudentCountMax: 200,
		BillingCycle:    domain.CycleMonthly,
	}
	s.mockSubscription.On("GetTierByID", ctx, "tier1").Return(tier, nil)

	// Dropping the max below the existing min must be rejected.
	max := 10
	_, err := s.service.UpdateTier(ctx, "tier1", dto.UpdateTierRequest{StudentCountMax: &max})

	s.ErrorIs(err, ErrInvalidCountRange)
	s.mockSubscription.AssertNotCalled(s.T(), "UpdateTier")
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_Success() {
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockSubscription.On("GetTierByID", ctx, "tier1").Return(&domain.SubscriptionTier{ID: "tier1"}, nil)
	s.mockSubscription.On("Subscribe", ctx, mock.MatchedBy(func(sub *domain.TenantSubscription) bool {
		return sub.TenantID == "tenant1" && sub.TierID == "tier1" && sub.Active
	})).Return(&domain.TenantSubscription{ID: "sub1", TenantID: "tenant1", TierID: "tier1", Active: true}, nil)

	sub, err := s.service.Subscribe(ctx, "tenant1", "tier1")

	s.NoError(err)
	s.Equal("sub1", sub.ID)
	s.mockSubscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_UnknownInstitution() {
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := s.service.Subscribe(ctx, "missing", "tier1")

	s.ErrorIs(err, ErrInstitutionNotFound)
	s.mockSubscription.AssertNotCalled(s.T(), "Subscribe")
}

func (s *SubscriptionServiceTestSuite) TestSubscribe_UnknownTier() {
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockSubscription.On("GetTierByID", ctx, "missing").Return(nil, nil)

	_, err := s.service.Subscribe(ctx, "tenant1", "missing")

	s.ErrorIs(err, ErrTierNotFound)
}
