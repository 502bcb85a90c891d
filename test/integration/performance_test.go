package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/acadify/acadify-api/internal/api"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/mocks"
	"github.com/acadify/acadify-api/pkg/logger"
)

func billingRouter(handler *api.BillingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Stand-in for the auth middleware: set the claims the handlers expect.
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", "test-tenant-id")
		c.Set("claims", jwt.MapClaims{
			"sub":       "test-user",
			"tenant_id": "test-tenant-id",
			"role":      "admin",
		})
		c.Next()
	})

	router.GET("/billing", handler.ListBilling)
	router.PUT("/billing/:id/status", handler.UpdateBillingStatus)
	return router
}

func BenchmarkListBilling(b *testing.B) {
	mockService := new(mocks.BillingService)
	handler := api.NewBillingHandler(api.NewBaseHandler(logger.NewLogger("test")), mockService)
	router := billingRouter(handler)

	rows := make([]domain.InstitutionBilling, 0, 50)
	for i := 0; i < 50; i++ {
		rows = append(rows, domain.InstitutionBilling{
			ID:          fmt.Sprintf("billing-%d", i),
			TenantID:    "test-tenant-id",
			MonthYear:   "2026-03",
			TotalAmount: 18000,
			Status:      domain.BillingPending,
			DueDate:     time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		})
	}
	mockService.On("List", mock.Anything, mock.AnythingOfType("*domain.BillingFilter")).Return(rows, nil)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/billing?page=1&page_size=50", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkUpdateBillingStatus(b *testing.B) {
	mockService := new(mocks.BillingService)
	handler := api.NewBillingHandler(api.NewBaseHandler(logger.NewLogger("test")), mockService)
	router := billingRouter(handler)

	now := time.Now()
	mockService.On("UpdateStatus", mock.Anything, "billing-1", domain.BillingPaid).Return(&domain.InstitutionBilling{
		ID:        "billing-1",
		TenantID:  "test-tenant-id",
		MonthYear: "2026-03",
		Status:    domain.BillingPaid,
		PaidAt:    &now,
	}, nil)

	payload, _ := json.Marshal(map[string]string{"status": "PAID"})

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("PUT", "/billing/billing-1/status", bytes.NewBuffer(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}
