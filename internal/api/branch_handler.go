package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name BranchService --output ../mocks
type BranchService interface {
	Create(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error)
	GetByID(ctx context.Context, id string) (*domain.Branch, error)
	Update(ctx context.Context, id string, req dto.UpdateBranchRequest) (*domain.Branch, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Branch, error)
}

type BranchHandler struct {
	*BaseHandler
	service BranchService
}

func NewBranchHandler(base *BaseHandler, service BranchService) *BranchHandler {
	return &BranchHandler{BaseHandler: base, service: service}
}

// CreateBranch Create a branch
// @Summary Create branch
// @Description Create a branch under the caller's institution
// @Tags    branches
// @Accept  json
// @Produce json
// @Param   body body dto.CreateBranchRequest true "Branch"
// @Success 201 {object} dto.Envelope{data=domain.Branch}
// @Failure 400 {object} dto.Envelope
// @Router  /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	branch, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, branch)
}

// GetBranch Get a branch
// @Summary Get branch
// @Tags    branches
// @Produce json
// @Param   id path string true "Branch ID"
// @Success 200 {object} dto.Envelope{data=domain.Branch}
// @Failure 404 {object} dto.Envelope
// @Router  /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	branch, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if branch == nil {
		h.RespondError(c, service.ErrBranchNotFound)
		return
	}

	h.OK(c, branch)
}

// UpdateBranch Update a branch
// @Summary Update branch
// @Tags    branches
// @Accept  json
// @Produce json
// @Param   id path string true "Branch ID"
// @Param   body body dto.UpdateBranchRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Branch}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	branch, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, branch)
}

// DeleteBranch Delete a branch
// @Summary Delete branch
// @Tags    branches
// @Produce json
// @Param   id path string true "Branch ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListBranches List the caller's branches
// @Summary List branches
// @Tags    branches
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]domain.Branch}
// @Router  /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	branches, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, branches)
}
