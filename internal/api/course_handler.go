package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name CourseService --output ../mocks
type CourseService interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) (*domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	Update(ctx context.Context, id string, req dto.UpdateCourseRequest) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Course, error)
}

type CourseHandler struct {
	*BaseHandler
	service CourseService
}

func NewCourseHandler(base *BaseHandler, service CourseService) *CourseHandler {
	return &CourseHandler{BaseHandler: base, service: service}
}

// CreateCourse Create a course
// @Summary Create course
// @Tags    courses
// @Accept  json
// @Produce json
// @Param   body body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.Envelope{data=domain.Course}
// @Failure 400 {object} dto.Envelope
// @Router  /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	course, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, course)
}

// GetCourse Get a course
// @Summary Get course
// @Tags    courses
// @Produce json
// @Param   id path string true "Course ID"
// @Success 200 {object} dto.Envelope{data=domain.Course}
// @Failure 404 {object} dto.Envelope
// @Router  /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if course == nil {
		h.RespondError(c, service.ErrCourseNotFound)
		return
	}

	h.OK(c, course)
}

// UpdateCourse Update a course
// @Summary Update course
// @Tags    courses
// @Accept  json
// @Produce json
// @Param   id path string true "Course ID"
// @Param   body body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Course}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	course, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, course)
}

// DeleteCourse Delete a course
// @Summary Delete course
// @Tags    courses
// @Produce json
// @Param   id path string true "Course ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListCourses List the caller's courses
// @Summary List courses
// @Tags    courses
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.Course}
// @Router  /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, courses)
}
