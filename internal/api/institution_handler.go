package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name InstitutionService --output ../mocks
type InstitutionService interface {
	Create(ctx context.Context, req dto.CreateInstitutionRequest) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, id string, req dto.UpdateInstitutionRequest) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

type InstitutionHandler struct {
	*BaseHandler
	service InstitutionService
}

func NewInstitutionHandler(base *BaseHandler, service InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{BaseHandler: base, service: service}
}

// CreateInstitution Onboard a new institution
// @Summary Create institution
// @Description Create an institution, optionally subscribing it to a tier
// @Tags    super-admin
// @Accept  json
// @Produce json
// @Param   body body dto.CreateInstitutionRequest true "Institution"
// @Success 201 {object} dto.Envelope{data=domain.Tenant}
// @Failure 400 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Router  /super-admin/institutions [post]
func (h *InstitutionHandler) CreateInstitution(c *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetInstitution Get one institution
// @Summary Get institution
// @Tags    super-admin
// @Produce json
// @Param   id path string true "Institution ID"
// @Success 200 {object} dto.Envelope{data=domain.Tenant}
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/institutions/{id} [get]
func (h *InstitutionHandler) GetInstitution(c *gin.Context) {
	tenant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if tenant == nil {
		h.RespondError(c, service.ErrInstitutionNotFound)
		return
	}

	h.OK(c, tenant)
}

// UpdateInstitution Update an institution
// @Summary Update institution
// @Tags    super-admin
// @Accept  json
// @Produce json
// @Param   id path string true "Institution ID"
// @Param   body body dto.UpdateInstitutionRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Tenant}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/institutions/{id} [put]
func (h *InstitutionHandler) UpdateInstitution(c *gin.Context) {
	var req dto.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, tenant)
}

// DeleteInstitution Delete an institution
// @Summary Delete institution
// @Tags    super-admin
// @Produce json
// @Param   id path string true "Institution ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /super-admin/institutions/{id} [delete]
func (h *InstitutionHandler) DeleteInstitution(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListInstitutions List all institutions
// @Summary List institutions
// @Tags    super-admin
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.Tenant}
// @Router  /super-admin/institutions [get]
func (h *InstitutionHandler) ListInstitutions(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, tenants)
}
