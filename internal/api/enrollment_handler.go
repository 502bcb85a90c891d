package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name EnrollmentService --output ../mocks
type EnrollmentService interface {
	Create(ctx context.Context, req dto.CreateEnrollmentRequest) (*domain.Enrollment, error)
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	Update(ctx context.Context, id string, req dto.UpdateEnrollmentRequest) (*domain.Enrollment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Enrollment, error)
}

type EnrollmentHandler struct {
	*BaseHandler
	service EnrollmentService
}

func NewEnrollmentHandler(base *BaseHandler, service EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{BaseHandler: base, service: service}
}

// CreateEnrollment Enroll a student into a course
// @Summary Create enrollment
// @Tags    enrollments
// @Accept  json
// @Produce json
// @Param   body body dto.CreateEnrollmentRequest true "Enrollment"
// @Success 201 {object} dto.Envelope{data=domain.Enrollment}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	enrollment, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, enrollment)
}

// GetEnrollment Get an enrollment
// @Summary Get enrollment
// @Tags    enrollments
// @Produce json
// @Param   id path string true "Enrollment ID"
// @Success 200 {object} dto.Envelope{data=domain.Enrollment}
// @Failure 404 {object} dto.Envelope
// @Router  /enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	enrollment, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if enrollment == nil {
		h.RespondError(c, service.ErrEnrollmentNotFound)
		return
	}

	h.OK(c, enrollment)
}

// UpdateEnrollment Change an enrollment's status
// @Summary Update enrollment
// @Tags    enrollments
// @Accept  json
// @Produce json
// @Param   id path string true "Enrollment ID"
// @Param   body body dto.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Enrollment}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /enrollments/{id} [put]
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	enrollment, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, enrollment)
}

// DeleteEnrollment Delete an enrollment
// @Summary Delete enrollment
// @Tags    enrollments
// @Produce json
// @Param   id path string true "Enrollment ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /enrollments/{id} [delete]
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListEnrollments List the caller's enrollments
// @Summary List enrollments
// @Tags    enrollments
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.Enrollment}
// @Router  /enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, enrollments)
}
