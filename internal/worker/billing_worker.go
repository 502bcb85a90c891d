package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/acadify/acadify-api/internal/middleware"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/pkg/logger"
	"github.com/acadify/acadify-api/pkg/utils"
)

const (
	// Monthly generation runs at 02:00 on the 1st; the overdue sweep runs
	// daily at 03:00.
	monthlyGenerationSpec = "0 2 1 * *"
	overdueSweepSpec      = "0 3 * * *"
)

// BillingWorker owns the scheduled billing jobs: creating each month's
// billing rows for actively subscribed tenants and flipping past-due
// PENDING rows to OVERDUE.
type BillingWorker struct {
	billing *service.BillingService
	logger  *logger.Logger
	cron    *cron.Cron
}

func NewBillingWorker(billing *service.BillingService, logger *logger.Logger) *BillingWorker {
	return &BillingWorker{
		billing: billing,
		logger:  logger,
		cron:    cron.New(),
	}
}

func (w *BillingWorker) Start() error {
	if _, err := w.cron.AddFunc(monthlyGenerationSpec, w.runMonthlyGeneration); err != nil {
		return err
	}
	if _, err := w.cron.AddFunc(overdueSweepSpec, w.runOverdueSweep); err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("Billing worker started")
	return nil
}

func (w *BillingWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info("Billing worker stopped")
}

// RunMonthlyGeneration generates billing rows for the given month. Exposed
// so the run can be triggered manually for backfills.
func (w *BillingWorker) RunMonthlyGeneration(ctx context.Context, monthYear string) {
	created, err := w.billing.GenerateForMonth(ctx, monthYear)
	if err != nil {
		w.logger.Errorf("Monthly billing generation for %s failed after %d rows: %v", monthYear, created, err)
		return
	}

	middleware.RecordBillingGenerated(created)
	w.logger.Infof("Monthly billing generation for %s created %d rows", monthYear, created)
}

func (w *BillingWorker) runMonthlyGeneration() {
	w.RunMonthlyGeneration(context.Background(), utils.MonthYear(time.Now()))
}

func (w *BillingWorker) runOverdueSweep() {
	flipped, err := w.billing.FlipOverdue(context.Background(), time.Now())
	if err != nil {
		w.logger.Errorf("Overdue sweep failed: %v", err)
		return
	}
	if flipped > 0 {
		w.logger.Infof("Overdue sweep marked %d rows OVERDUE", flipped)
	}
}
