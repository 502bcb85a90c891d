package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.UserFilter) ([]dto.UserResponse, error)
}

type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(base *BaseHandler, service UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// CreateUser Create a user account
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   body body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.Envelope
// @Router  /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	user, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, user)
}

// GetUser Get a user
// @Summary Get user
// @Tags    users
// @Produce json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 404 {object} dto.Envelope
// @Router  /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if user == nil {
		h.RespondError(c, service.ErrUserNotFound)
		return
	}

	h.OK(c, user)
}

// UpdateUser Update a user
// @Summary Update user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   id path string true "User ID"
// @Param   body body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, user)
}

// DeleteUser Delete a user
// @Summary Delete user
// @Tags    users
// @Produce json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListUsers List users
// @Summary List users
// @Tags    users
// @Produce json
// @Param   role query string false "Filter by role"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.UserResponse}
// @Router  /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := domain.UserFilter{
		Email: c.Query("email"),
		Role:  c.Query("role"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filter.PageSize = pageSize
	}

	users, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, users)
}
