package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name SubscriptionService --output ../mocks
type SubscriptionService interface {
	CreateTier(ctx context.Context, req dto.CreateTierRequest) (*domain.SubscriptionTier, error)
	GetTier(ctx context.Context, id string) (*domain.SubscriptionTier, error)
	UpdateTier(ctx context.Context, id string, req dto.UpdateTierRequest) (*domain.SubscriptionTier, error)
	DeleteTier(ctx context.Context, id string) error
	ListTiers(ctx context.Context) ([]domain.SubscriptionTier, error)
	Subscribe(ctx context.Context, tenantID, tierID string) (*domain.TenantSubscription, error)
}

type SubscriptionHandler struct {
	*BaseHandler
	service SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, service SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{BaseHandler: base, service: service}
}

// CreateTier Create a subscription tier
// @Summary Create tier
// @Tags    super-admin
// @Accept  json
// @Produce json
// @Param   body body dto.CreateTierRequest true "Tier"
// @Success 201 {object} dto.Envelope{data=dto.TierResponse}
// @Failure 400 {object} dto.Envelope
// @Router  /super-admin/subscription-tiers [post]
func (h *SubscriptionHandler) CreateTier(c *gin.Context) {
	var req dto.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	tier, err := h.service.CreateTier(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, dto.FromTier(tier))
}

// GetTier Get a subscription tier
// @Summary Get tier
// @Tags    super-admin
// @Produce json
// @Param   id path string true "Tier ID"
// @Success 200 {object} dto.Envelope{data=dto.TierResponse}
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/subscription-tiers/{id} [get]
func (h *SubscriptionHandler) GetTier(c *gin.Context) {
	tier, err := h.service.GetTier(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if tier == nil {
		h.RespondError(c, service.ErrTierNotFound)
		return
	}

	h.OK(c, dto.FromTier(tier))
}

// UpdateTier Update a subscription tier
// @Summary Update tier
// @Tags    super-admin
// @Accept  json
// @Produce json
// @Param   id path string true "Tier ID"
// @Param   body body dto.UpdateTierRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=dto.TierResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/subscription-tiers/{id} [put]
func (h *SubscriptionHandler) UpdateTier(c *gin.Context) {
	var req dto.UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	tier, err := h.service.UpdateTier(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, dto.FromTier(tier))
}

// DeleteTier Delete a subscription tier
// @Summary Delete tier
// @Tags    super-admin
// @Produce json
// @Param   id path string true "Tier ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/subscription-tiers/{id} [delete]
func (h *SubscriptionHandler) DeleteTier(c *gin.Context) {
	if err := h.service.DeleteTier(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListTiers List subscription tiers
// @Summary List tiers
// @Tags    super-admin
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.TierResponse}
// @Router  /super-admin/subscription-tiers [get]
func (h *SubscriptionHandler) ListTiers(c *gin.Context) {
	tiers, err := h.service.ListTiers(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	resp := make([]dto.TierResponse, 0, len(tiers))
	for i := range tiers {
		resp = append(resp, dto.FromTier(&tiers[i]))
	}
	h.OK(c, resp)
}

// SubscribeInstitution Move an institution onto a tier
// @Summary Subscribe institution
// @Tags    super-admin
// @Produce json
// @Param   id path string true "Institution ID"
// @Param   tier_id path string true "Tier ID"
// @Success 200 {object} dto.Envelope{data=domain.TenantSubscription}
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/institutions/{id}/subscribe/{tier_id} [post]
func (h *SubscriptionHandler) SubscribeInstitution(c *gin.Context) {
	sub, err := h.service.Subscribe(h.RequestCtx(c), c.Param("id"), c.Param("tier_id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, sub)
}
