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
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/pkg/logger"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAuthService)
	s.handler = NewAuthHandler(NewBaseHandler(logger.NewLogger("test")), s.mockService)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) login(body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	s.handler.Login(c)
	return w
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "admin@acadify.io", Password: "secret"}
	expected := &dto.LoginResponse{
		Token: "signed-token",
		User:  dto.UserResponse{ID: "user1", Email: req.Email, Role: "admin"},
	}

	s.mockService.On("Login", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := s.login(body)

	s.Equal(http.StatusOK, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.False(envelope.Error)
	s.Equal("success", envelope.Message)

	data := envelope.Data.(map[string]any)
	s.Equal("signed-token", data["token"])
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestLogin_BadCredentialsAreIndistinguishable() {
	// Unknown email and wrong password must produce the same envelope so
	// the response does not leak which accounts exist.
	unknownEmail := dto.LoginRequest{Email: "nobody@acadify.io", Password: "secret"}
	wrongPassword := dto.LoginRequest{Email: "admin@acadify.io", Password: "wrong"}

	s.mockService.On("Login", mock.Anything, unknownEmail).Return(nil, service.ErrInvalidCredentials)
	s.mockService.On("Login", mock.Anything, wrongPassword).Return(nil, service.ErrInvalidCredentials)

	bodyA, _ := json.Marshal(unknownEmail)
	bodyB, _ := json.Marshal(wrongPassword)
	wA := s.login(bodyA)
	wB := s.login(bodyB)

	s.Equal(http.StatusUnauthorized, wA.Code)
	s.Equal(http.StatusUnauthorized, wB.Code)
	s.Equal(wA.Body.String(), wB.Body.String())

	var envelope dto.Envelope
	s.NoError(json.Unmarshal(wA.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Nil(envelope.Data)
	s.Equal(service.ErrInvalidCredentials.Error(), *envelope.ErrorMessage)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := s.login([]byte(`{"email":"admin@acadify.io"}`))

	s.Equal(http.StatusBadRequest, w.Code)
	var envelope dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	s.True(envelope.Error)
	s.Nil(envelope.Data)
	s.mockService.AssertNotCalled(s.T(), "Login")
}

func (s *AuthHandlerTestSuite) TestLogin_DisabledAccount() {
	req := dto.LoginRequest{Email: "parked@acadify.io", Password: "secret"}
	s.mockService.On("Login", mock.Anything, req).Return(nil, service.ErrAccountDisabled)

	body, _ := json.Marshal(req)
	w := s.login(body)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertExpectations(s.T())
}
