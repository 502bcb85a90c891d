package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
)

//go:generate mockery --name DashboardService --output ../mocks
type DashboardService interface {
	PlatformDashboard(ctx context.Context) (*dto.PlatformDashboardResponse, error)
	TenantDashboard(ctx context.Context) (*dto.TenantDashboardResponse, error)
	InstitutionAnalytics(ctx context.Context) ([]domain.InstitutionRollup, error)
	SubscriptionAnalytics(ctx context.Context) ([]domain.TierRollup, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
}

func NewDashboardHandler(base *BaseHandler, service DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

// GetTenantDashboard Institution dashboard aggregates
// @Summary Institution dashboard
// @Description Branch, student, staff, and course counts plus the student
// @Description status breakdown and outstanding billing amounts
// @Tags    dashboard
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.TenantDashboardResponse}
// @Router  /dashboard [get]
func (h *DashboardHandler) GetTenantDashboard(c *gin.Context) {
	resp, err := h.service.TenantDashboard(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, resp)
}

// GetPlatformDashboard Super-admin platform dashboard
// @Summary Platform dashboard
// @Description Platform totals, PAID revenue, the monthly revenue series
// @Description with chart labels, and the billing status breakdown
// @Tags    super-admin
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.PlatformDashboardResponse}
// @Router  /super-admin/dashboard [get]
func (h *DashboardHandler) GetPlatformDashboard(c *gin.Context) {
	resp, err := h.service.PlatformDashboard(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, resp)
}

// GetInstitutionAnalytics Per-institution rollups
// @Summary Institution analytics
// @Tags    super-admin
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.InstitutionRollup}
// @Router  /super-admin/institutions/analytics [get]
func (h *DashboardHandler) GetInstitutionAnalytics(c *gin.Context) {
	rollups, err := h.service.InstitutionAnalytics(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, rollups)
}

// GetSubscriptionAnalytics Per-tier rollups
// @Summary Subscription analytics
// @Tags    super-admin
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.TierRollup}
// @Router  /super-admin/subscriptions/analytics [get]
func (h *DashboardHandler) GetSubscriptionAnalytics(c *gin.Context) {
	rollups, err := h.service.SubscriptionAnalytics(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, rollups)
}
