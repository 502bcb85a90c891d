package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/invoice"
	"github.com/acadify/acadify-api/internal/service"
)

//go:generate mockery --name BillingService --output ../mocks
type BillingService interface {
	GetByID(ctx context.Context, id string) (*domain.InstitutionBilling, error)
	List(ctx context.Context, filter *domain.BillingFilter) ([]domain.InstitutionBilling, error)
	UpdateStatus(ctx context.Context, id string, status domain.BillingStatus) (*domain.InstitutionBilling, error)
	InvoiceData(ctx context.Context, id string) (*domain.InstitutionBilling, *domain.Tenant, error)
	ScheduleInvoiceArchive(ctx context.Context, id string) error
}

type BillingHandler struct {
	*BaseHandler
	service BillingService
}

func NewBillingHandler(base *BaseHandler, service BillingService) *BillingHandler {
	return &BillingHandler{BaseHandler: base, service: service}
}

// ListBilling List billing rows with filtering
// @Summary List billing
// @Description Super admins see every tenant; institution users only their own
// @Tags    billing
// @Produce json
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Param   tenant_id query string false "Filter by institution (super admin only)"
// @Param   status query string false "Filter by status (PAID, PENDING, OVERDUE)"
// @Param   month_year query string false "Filter by month (YYYY-MM)"
// @Success 200 {object} dto.Envelope{data=[]domain.InstitutionBilling}
// @Router  /billing [get]
func (h *BillingHandler) ListBilling(c *gin.Context) {
	filter := &domain.BillingFilter{
		TenantID:  c.Query("tenant_id"),
		BranchID:  c.Query("branch_id"),
		Status:    c.Query("status"),
		MonthYear: c.Query("month_year"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filter.PageSize = pageSize
	}

	rows, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, rows)
}

// GetBilling Get one billing row
// @Summary Get billing
// @Tags    billing
// @Produce json
// @Param   id path string true "Billing ID"
// @Success 200 {object} dto.Envelope{data=domain.InstitutionBilling}
// @Failure 404 {object} dto.Envelope
// @Router  /billing/{id} [get]
func (h *BillingHandler) GetBilling(c *gin.Context) {
	billing, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if billing == nil {
		h.RespondError(c, service.ErrBillingNotFound)
		return
	}

	h.OK(c, billing)
}

// UpdateBillingStatus Transition a billing row's status
// @Summary Update billing status
// @Description Marking a row PAID stamps the payment time; the change is
// @Description pushed to the live billing stream
// @Tags    billing
// @Accept  json
// @Produce json
// @Param   id path string true "Billing ID"
// @Param   body body dto.UpdateBillingStatusRequest true "New status"
// @Success 200 {object} dto.Envelope{data=domain.InstitutionBilling}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /billing/{id}/status [put]
func (h *BillingHandler) UpdateBillingStatus(c *gin.Context) {
	var req dto.UpdateBillingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	billing, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("id"), domain.BillingStatus(req.Status))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, billing)
}

// DownloadInvoice Render the invoice PDF inline
// @Summary Download invoice
// @Tags    billing
// @Produce application/pdf
// @Param   id path string true "Billing ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.Envelope
// @Router  /billing/{id}/invoice [get]
func (h *BillingHandler) DownloadInvoice(c *gin.Context) {
	billing, tenant, err := h.service.InvoiceData(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice_%s_%s.pdf", billing.MonthYear, billing.ID))
	if err := invoice.Render(c.Writer, billing, tenant); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusInternalServerError, "invoice render failed", err.Error()))
	}
}

// ArchiveInvoice Queue the invoice for upload to object storage
// @Summary Archive invoice
// @Tags    billing
// @Produce json
// @Param   id path string true "Billing ID"
// @Success 202 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /billing/{id}/invoice/archive [post]
func (h *BillingHandler) ArchiveInvoice(c *gin.Context) {
	if err := h.service.ScheduleInvoiceArchive(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Success(http.StatusAccepted, "invoice archive scheduled", nil))
}
