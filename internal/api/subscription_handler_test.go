package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/pkg/logger"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	mockService *MockSubscriptionService
	handler     *SubscriptionHandler
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) CreateTier(ctx context.Context, req dto.CreateTierRequest) (*domain.SubscriptionTier, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionTier), args.Error(1)
}

func (m *MockSubscriptionService) GetTier(ctx context.Context, id string) (*domain.SubscriptionTier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionTier), args.Error(1)
}

func (m *MockSubscriptionService) UpdateTier(ctx context.Context, id string, req dto.UpdateTierRequest) (*domain.SubscriptionTier, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionTier), args.Error(1)
}

func (m *MockSubscriptionService) DeleteTier(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriptionService) ListTiers(ctx context.Context) ([]domain.SubscriptionTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubscriptionTier), args.Error(1)
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, tenantID, tierID string) (*domain.TenantSubscription, error) {
	args := m.Called(ctx, tenantID, tierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantSubscription), args.Error(1)
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockSubscriptionService)
	s.handler = NewSubscriptionHandler(NewBaseHandler(logger.NewLogger("test")), s.mockService)
}

func TestSubscriptionHandler(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

func (s *SubscriptionHandlerTestSuite) TestCreateTier_Success() {
	req := dto.CreateTierRequest{
		Name:            "Gold",
		StudentCountMin: 50,
		StudentCountMax: 200,
		PricePerStudent: 120,
		BillingCycle:    "monthly",
	}
	created := &domain.SubscriptionTier{
		ID:              "tier1",
		Name:            req.Name,
		StudentCountMin: req.StudentCountMin,
		StudentCountMax: req.StudentCountMax,
		PricePerStudent: req.PricePerStudent,
		BillingCycle:    domain.CycleMonthly,
	}

	s.mockService.On("CreateTier", mock.Anything, req).Return(created, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/super-admin/subscription-tiers", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateTier(c)

	s.Equal(http.StatusCreated, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]any)
	s.Equal("Gold", data["name"])
	s.Equal(float64(50), data["student_count_min"])
	s.Equal(float64(200), data["student_count_max"])
	s.Equal(float64(120), data["price_per_student"])
	s.Equal("monthly", data["billing_cycle"])
	s.mockService.AssertExpectations(s.T())
}

func (s *SubscriptionHandlerTestSuite) TestCreateTier_InvalidCycle() {
	req := dto.CreateTierRequest{Name: "Gold", BillingCycle: "weekly"}
	s.mockService.On("CreateTier", mock.Anything, req).Return(nil, service.ErrInvalidCycle)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/super-admin/subscription-tiers", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateTier(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Equal(service.ErrInvalidCycle.Error(), *envelope.ErrorMessage)
	s.mockService.AssertExpectations(s.T())
}

func (s *SubscriptionHandlerTestSuite) TestGetTier_NotFound() {
	s.mockService.On("GetTier", mock.Anything, "missing").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/super-admin/subscription-tiers/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.handler.GetTier(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SubscriptionHandlerTestSuite) TestSubscribeInstitution_Success() {
	sub := &domain.TenantSubscription{ID: "sub1", TenantID: "tenant1", TierID: "tier1", Active: true}
	s.mockService.On("Subscribe", mock.Anything, "tenant1", "tier1").Return(sub, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/super-admin/institutions/tenant1/subscribe/tier1", nil)
	c.Params = gin.Params{
		{Key: "id", Value: "tenant1"},
		{Key: "tier_id", Value: "tier1"},
	}

	s.handler.SubscribeInstitution(c)

	s.Equal(http.StatusOK, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]any)
	s.Equal("tenant1", data["tenant_id"])
	s.Equal(true, data["active"])
	s.mockService.AssertExpectations(s.T())
}

func (s *SubscriptionHandlerTestSuite) TestSubscribeInstitution_UnknownTier() {
	s.mockService.On("Subscribe", mock.Anything, "tenant1", "missing").Return(nil, service.ErrTierNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/super-admin/institutions/tenant1/subscribe/missing", nil)
	c.Params = gin.Params{
		{Key: "id", Value: "tenant1"},
		{Key: "tier_id", Value: "missing"},
	}

	s.handler.SubscribeInstitution(c)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
