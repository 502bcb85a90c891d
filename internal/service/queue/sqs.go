package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/acadify/acadify-api/internal/config"
)

type MessageType string

const (
	MessageTypeArchiveInvoice MessageType = "ARCHIVE_INVOICE"
)

// Message is the invoice-archive job envelope carried over SQS.
type Message struct {
	Type      MessageType `json:"type" validate:"required"`
	TenantID  string      `json:"tenant_id" validate:"required,uuid"`
	BillingID string      `json:"billing_id" validate:"required,uuid"`
	MonthYear string      `json:"month_year" validate:"required"`
	Timestamp time.Time   `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client          *sqs.Client
	invoiceQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		invoiceQueueURL: config.InvoiceQueueURL,
	}
}

func (s *SQSService) InvoiceQueueURL() string {
	return s.invoiceQueueURL
}

func (s *SQSService) SendArchiveInvoiceMessage(ctx context.Context, tenantID, billingID, monthYear string) error {
	msg := Message{
		Type:      MessageTypeArchiveInvoice,
		TenantID:  tenantID,
		BillingID: billingID,
		MonthYear: monthYear,
		Timestamp: time.Now(),
	}

	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(s.invoiceQueueURL),
	}

	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.invoiceQueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.invoiceQueueURL),
		ReceiptHandle: receiptHandle,
	}

	if _, err := s.client.DeleteMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
