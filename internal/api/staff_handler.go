package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name StaffService --output ../mocks
type StaffService interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (*domain.Staff, error)
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (*domain.Staff, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Staff, error)
}

type StaffHandler struct {
	*BaseHandler
	service StaffService
}

func NewStaffHandler(base *BaseHandler, service StaffService) *StaffHandler {
	return &StaffHandler{BaseHandler: base, service: service}
}

// CreateStaff Create a staff member
// @Summary Create staff
// @Tags    staff
// @Accept  json
// @Produce json
// @Param   body body dto.CreateStaffRequest true "Staff member"
// @Success 201 {object} dto.Envelope{data=domain.Staff}
// @Failure 400 {object} dto.Envelope
// @Router  /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	staff, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, staff)
}

// GetStaff Get a staff member
// @Summary Get staff
// @Tags    staff
// @Produce json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.Envelope{data=domain.Staff}
// @Failure 404 {object} dto.Envelope
// @Router  /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if staff == nil {
		h.RespondError(c, service.ErrStaffNotFound)
		return
	}

	h.OK(c, staff)
}

// UpdateStaff Update a staff member
// @Summary Update staff
// @Tags    staff
// @Accept  json
// @Produce json
// @Param   id path string true "Staff ID"
// @Param   body body dto.UpdateStaffRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Staff}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	staff, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, staff)
}

// DeleteStaff Delete a staff member
// @Summary Delete staff
// @Tags    staff
// @Produce json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListStaff List the caller's staff
// @Summary List staff
// @Tags    staff
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.Staff}
// @Router  /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, staff)
}
