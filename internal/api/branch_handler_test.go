package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/pkg/logger"
)

type BranchHandlerTestSuite struct {
	suite.Suite
	mockService *MockBranchService
	handler     *BranchHandler
}

type MockBranchService struct {
	mock.Mock
}

func (m *MockBranchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) Update(ctx context.Context, id string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBranchService) List(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (s *BranchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockBranchService)
	s.handler = NewBranchHandler(NewBaseHandler(logger.NewLogger("test")), s.mockService)
}

func TestBranchHandler(t *testing.T) {
	suite.Run(t, new(BranchHandlerTestSuite))
}

func (s *BranchHandlerTestSuite) TestCreateBranch_Success() {
	now := time.Now()
	req := dto.CreateBranchRequest{Name: "North Campus", Address: "12 Elm St"}
	created := &domain.Branch{
		ID:        "branch1",
		TenantID:  "tenant1",
		Name:      req.Name,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mockService.On("Create", mock.Anything, req).Return(created, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/branches", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateBranch(c)

	s.Equal(http.StatusCreated, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.Equal("created", envelope.Message)
	data := envelope.Data.(map[string]any)
	s.Equal("branch1", data["id"])
	s.Equal("North Campus", data["name"])
	s.mockService.AssertExpectations(s.T())
}

func (s *BranchHandlerTestSuite) TestCreateBranch_MissingName() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/branches", bytes.NewBufferString(`{"address":"12 Elm St"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateBranch(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Nil(envelope.Data)
	s.mockService.AssertNotCalled(s.T(), "Create")
}

func (s *BranchHandlerTestSuite) TestGetBranch_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/branches/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.handler.GetBranch(c)

	s.Equal(http.StatusNotFound, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Equal(service.ErrBranchNotFound.Error(), *envelope.ErrorMessage)
}

func (s *BranchHandlerTestSuite) TestUpdateBranch_NotFound() {
	name := "Renamed Campus"
	req := dto.UpdateBranchRequest{Name: &name}
	s.mockService.On("Update", mock.Anything, "missing", req).Return(nil, service.ErrBranchNotFound)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/branches/missing", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	s.handler.UpdateBranch(c)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *BranchHandlerTestSuite) TestListBranches_Success() {
	branches := []domain.Branch{
		{ID: "branch1", Name: "North Campus"},
		{ID: "branch2", Name: "South Campus"},
	}
	s.mockService.On("List", mock.Anything).Return(branches, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/branches", nil)

	s.handler.ListBranches(c)

	s.Equal(http.StatusOK, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.False(envelope.Error)
	s.Len(envelope.Data.([]any), 2)
	s.mockService.AssertExpectations(s.T())
}

func (s *BranchHandlerTestSuite) TestDeleteBranch_Success() {
	s.mockService.On("Delete", mock.Anything, "branch1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/branches/branch1", nil)
	c.Params = gin.Params{{Key: "id", Value: "branch1"}}

	s.handler.DeleteBranch(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *BranchHandlerTestSuite) TestGetBranch_UnexpectedErrorStaysOpaque() {
	s.mockService.On("GetByID", mock.Anything, "branch1").
		Return(nil, errors.New("failed to look up branch: dial tcp 10.0.0.5:5432: connection refused"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/branches/branch1", nil)
	c.Params = gin.Params{{Key: "id", Value: "branch1"}}

	s.handler.GetBranch(c)

	s.Equal(http.StatusInternalServerError, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Require().NotNil(envelope.ErrorMessage)
	s.Equal("an unexpected error occurred", *envelope.ErrorMessage)
	s.NotContains(w.Body.String(), "connection refused")
	s.mockService.AssertExpectations(s.T())
}
