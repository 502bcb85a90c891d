package worker

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/invoice"
	"github.com/acadify/acadify-api/internal/middleware"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/service/queue"
	"github.com/acadify/acadify-api/pkg/logger"
)

// InvoiceWorker drains the invoice queue: each message names a billing row
// whose invoice PDF gets rendered and uploaded to object storage under
// invoices/{tenant_id}/{month_year}/{billing_id}.pdf.
type InvoiceWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	validate     *validator.Validate
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewInvoiceWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *InvoiceWorker {
	return &InvoiceWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		validate:     validator.New(),
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *InvoiceWorker) Start() {
	w.logger.Info("Starting invoice workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *InvoiceWorker) Stop() {
	w.logger.Info("Stopping invoice workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All invoice workers stopped")
}

func (w *InvoiceWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Invoice worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Invoice worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Invoice worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *InvoiceWorker) processMessages(ctx context.Context) error {
	messages, err := w.sqsService.ReceiveMessages(ctx, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeArchiveInvoice {
			continue
		}

		if err := w.validate.Struct(msg.Message); err != nil {
			w.logger.Errorf("Dropping malformed invoice message: %v", err)
			// Malformed messages would poison the queue if retried
			if err := w.sqsService.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
				w.logger.Errorf("Failed to delete malformed message: %v", err)
			}
			continue
		}

		if err := w.archiveInvoice(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to archive invoice %s: %v", msg.Message.BillingID, err)
			continue
		}

		// Only delete the message once the upload succeeded
		if err := w.sqsService.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *InvoiceWorker) archiveInvoice(ctx context.Context, msg queue.Message) error {
	billing, err := w.repository.Billing().GetByID(ctx, msg.BillingID)
	if err != nil {
		return fmt.Errorf("failed to load billing row: %w", err)
	}
	if billing == nil {
		return fmt.Errorf("billing row %s not found", msg.BillingID)
	}

	tenant, err := w.repository.Tenant().GetByID(ctx, billing.TenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenant == nil {
		return fmt.Errorf("tenant %s not found", billing.TenantID)
	}

	var buf bytes.Buffer
	if err := invoice.Render(&buf, billing, tenant); err != nil {
		return fmt.Errorf("failed to render invoice: %w", err)
	}

	key := invoice.ObjectKey(billing.TenantID, billing.MonthYear, billing.ID)
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/pdf"),
		Metadata: map[string]string{
			"tenant-id":   billing.TenantID,
			"month-year":  billing.MonthYear,
			"archived-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload invoice to S3: %w", err)
	}

	middleware.RecordInvoiceArchived()
	w.logger.Infof("Archived invoice to s3://%s/%s", w.s3Config.BucketName, key)
	return nil
}
