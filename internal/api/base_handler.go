package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

type BaseHandler struct {
	logger *logger.Logger
}

func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

var errStatus = map[error]int{
	service.ErrInstitutionNotFound: http.StatusNotFound,
	service.ErrTierNotFound:        http.StatusNotFound,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrBranchNotFound:      http.StatusNotFound,
	service.ErrStudentNotFound:     http.StatusNotFound,
	service.ErrStaffNotFound:       http.StatusNotFound,
	service.ErrCourseNotFound:      http.StatusNotFound,
	service.ErrEnrollmentNotFound:  http.StatusNotFound,
	service.ErrBillingNotFound:     http.StatusNotFound,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrAccountDisabled:     http.StatusUnauthorized,
	service.ErrEmailAlreadyExists:  http.StatusBadRequest,
	service.ErrTenantIDRequired:    http.StatusBadRequest,
	service.ErrInvalidRole:         http.StatusBadRequest,
	service.ErrInvalidStatus:       http.StatusBadRequest,
	service.ErrInvalidCycle:        http.StatusBadRequest,
	service.ErrInvalidCountRange:   http.StatusBadRequest,
}

// RespondError maps service sentinel errors onto envelope failures.
// Anything unmapped is a 500: the original error stays in the server log
// and the caller only sees a generic message.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	for sentinel, status := range errStatus {
		if errors.Is(err, sentinel) {
			c.JSON(status, dto.Failure(status, http.StatusText(status), sentinel.Error()))
			return
		}
	}
	h.logger.Error("unhandled error while serving request", err)
	c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "an unexpected error occurred"))
}

// BadRequest wraps a binding or query parsing error.
func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Failure(http.StatusBadRequest, http.StatusText(http.StatusBadRequest), err.Error()))
}

// OK wraps a payload in the success envelope.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Success(http.StatusOK, "success", data))
}

// Created wraps a freshly created resource in the success envelope.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.Success(http.StatusCreated, "created", data))
}
