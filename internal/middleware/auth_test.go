package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

type AuthChainTestSuite struct {
	suite.Suite
	auth   *AuthMiddleware
	router *gin.Engine
}

func TestAuthChainTestSuite(t *testing.T) {
	suite.Run(t, new(AuthChainTestSuite))
}

func (s *AuthChainTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecretKey:       "chain-test-secret",
		JWTExpirationHours: 1,
		DefaultRateLimit:   1000,
	}
	s.auth = NewAuthMiddleware(cfg)

	// An unreachable Redis makes the limiter fail open, so the chain test
	// exercises the claim plumbing without a running server.
	rate := NewRateLimitMiddleware(
		redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
		cfg,
		logger.NewLogger("test"),
	)

	s.router = gin.New()
	s.router.GET("/protected", s.auth.JWTAuth(), rate.TenantRateLimit(), func(c *gin.Context) {
		tenantID, _ := utils.GetTenantIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": tenantID,
			"user_id":   utils.GetUserIDFromContext(c.Request.Context()),
		})
	})
}

func (s *AuthChainTestSuite) request(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthChainTestSuite) TestTenantTokenPassesRateLimitedChain() {
	tenantID := "tenant-1"
	token, err := s.auth.GenerateToken("user-1", "admin", "admin@one.edu", "Admin One", &tenantID)
	s.Require().NoError(err)

	w := s.request(token)
	s.Equal(http.StatusOK, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("tenant-1", body["tenant_id"])
	s.Equal("user-1", body["user_id"])
}

func (s *AuthChainTestSuite) TestSuperAdminTokenFallsBackToUserID() {
	token, err := s.auth.GenerateToken("root-1", "super_admin", "root@acadify.io", "Root", nil)
	s.Require().NoError(err)

	w := s.request(token)
	s.Equal(http.StatusOK, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Empty(body["tenant_id"])
	s.Equal("root-1", body["user_id"])
}

func (s *AuthChainTestSuite) TestMissingTokenRejected() {
	w := s.request("")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthChainTestSuite) TestForgedTokenRejected() {
	other := NewAuthMiddleware(&config.Config{JWTSecretKey: "other-secret", JWTExpirationHours: 1})
	tenantID := "tenant-1"
	token, err := other.GenerateToken("user-1", "admin", "admin@one.edu", "Admin One", &tenantID)
	s.Require().NoError(err)

	w := s.request(token)
	s.Equal(http.StatusUnauthorized, w.Code)
}
