package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
	pkgutils "github.com/acadify/acadify-api/pkg/utils"
)

// EventPublisher pushes billing events onto the live stream.
//
//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *dto.BillingEvent) error
}

// InvoiceQueue hands invoice-archive jobs to the background worker.
//
//go:generate mockery --name InvoiceQueue --output ../mocks
type InvoiceQueue interface {
	SendArchiveInvoiceMessage(ctx context.Context, tenantID, billingID, monthYear string) error
}

type BillingService struct {
	repo      repository.Repository
	publisher EventPublisher
	queue     InvoiceQueue
	logger    *logger.Logger
}

func NewBillingService(repo repository.Repository, publisher EventPublisher, queue InvoiceQueue, logger *logger.Logger) *BillingService {
	return &BillingService{
		repo:      repo,
		publisher: publisher,
		queue:     queue,
		logger:    logger,
	}
}

func (s *BillingService) GetByID(ctx context.Context, id string) (*domain.InstitutionBilling, error) {
	return s.repo.Billing().GetByID(ctx, id)
}

// List returns billing rows scoped to the caller. Super admins see all
// tenants and may narrow by the filter's tenant_id; everyone else is pinned
// to their own tenant.
func (s *BillingService) List(ctx context.Context, filter *domain.BillingFilter) ([]domain.InstitutionBilling, error) {
	if utils.GetRoleFromContext(ctx) != string(domain.RoleSuperAdmin) {
		tenantID, err := utils.GetTenantIDFromContext(ctx)
		if err != nil {
			return nil, ErrTenantIDRequired
		}
		filter.TenantID = tenantID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	return s.repo.Billing().List(ctx, *filter)
}

// UpdateStatus transitions a billing row and publishes the change to the
// billing stream. Moving to PAID stamps paid_at.
func (s *BillingService) UpdateStatus(ctx context.Context, id string, status domain.BillingStatus) (*domain.InstitutionBilling, error) {
	switch status {
	case domain.BillingPaid, domain.BillingPending, domain.BillingOverdue:
	default:
		return nil, ErrInvalidStatus
	}

	billing, err := s.repo.Billing().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	now := time.Now()
	billing.Status = status
	billing.UpdatedAt = now
	if status == domain.BillingPaid {
		billing.PaidAt = &now
	} else {
		billing.PaidAt = nil
	}

	if err := s.repo.Billing().Update(ctx, billing); err != nil {
		return nil, fmt.Errorf("failed to update billing status: %w", err)
	}

	s.publish(ctx, billing)
	return billing, nil
}

// InvoiceData loads the billing row together with its tenant for invoice
// rendering.
func (s *BillingService) InvoiceData(ctx context.Context, id string) (*domain.InstitutionBilling, *domain.Tenant, error) {
	billing, err := s.repo.Billing().GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if billing == nil {
		return nil, nil, ErrBillingNotFound
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, billing.TenantID)
	if err != nil {
		return nil, nil, err
	}
	if tenant == nil {
		return nil, nil, ErrInstitutionNotFound
	}
	return billing, tenant, nil
}

// ScheduleInvoiceArchive queues the invoice PDF for upload to object storage.
func (s *BillingService) ScheduleInvoiceArchive(ctx context.Context, id string) error {
	billing, err := s.repo.Billing().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if billing == nil {
		return ErrBillingNotFound
	}
	return s.queue.SendArchiveInvoiceMessage(ctx, billing.TenantID, billing.ID, billing.MonthYear)
}

// GenerateForMonth creates the month's billing row for every actively
// subscribed tenant that does not have one yet. The amount is the tenant's
// active student count times the tier's per-student price; the due date is
// the 15th of the billed month. Returns the number of rows created.
func (s *BillingService) GenerateForMonth(ctx context.Context, monthYear string) (int, error) {
	monthStart, err := pkgutils.ParseMonthYear(monthYear)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", monthYear, err)
	}
	dueDate := monthStart.AddDate(0, 0, 14)

	subs, err := s.repo.Subscription().ListActiveSubscriptions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	created := 0
	for _, sub := range subs {
		exists, err := s.repo.Billing().ExistsForMonth(ctx, sub.TenantID, monthYear)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		tier, err := s.repo.Subscription().GetTierByID(ctx, sub.TierID)
		if err != nil {
			return created, err
		}
		if tier == nil {
			s.logger.Errorf("subscription %s references missing tier %s, skipping", sub.ID, sub.TierID)
			continue
		}

		count, err := s.repo.Student().CountActive(ctx, sub.TenantID)
		if err != nil {
			return created, err
		}

		billing := &domain.InstitutionBilling{
			TenantID:    sub.TenantID,
			MonthYear:   monthYear,
			TotalAmount: float64(count) * tier.PricePerStudent,
			Status:      domain.BillingPending,
			DueDate:     dueDate,
		}
		row, err := s.repo.Billing().Create(ctx, billing)
		if err != nil {
			return created, fmt.Errorf("failed to create billing for tenant %s: %w", sub.TenantID, err)
		}
		created++

		s.publish(ctx, row)
	}
	return created, nil
}

// FlipOverdue marks past-due PENDING rows OVERDUE and returns how many
// changed.
func (s *BillingService) FlipOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return s.repo.Billing().MarkOverdue(ctx, asOf)
}

func (s *BillingService) publish(ctx context.Context, billing *domain.InstitutionBilling) {
	if s.publisher == nil {
		return
	}
	event := dto.FromBilling(billing)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Errorf("failed to publish billing event for %s: %v", billing.ID, err)
	}
}
