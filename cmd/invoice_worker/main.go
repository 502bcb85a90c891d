package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/repository/postgres"
	"github.com/acadify/acadify-api/internal/service/queue"
	"github.com/acadify/acadify-api/internal/worker"
	"github.com/acadify/acadify-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	invoiceWorker := worker.NewInvoiceWorker(
		sqsService,
		pgRepo,
		appLogger,
		2,             // worker count
		5*time.Second, // poll interval
		s3Client,
		s3Config,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Starting invoice worker...")
		invoiceWorker.Start()
	}()

	<-sigChan
	appLogger.Info("Shutting down invoice worker...")
	invoiceWorker.Stop()
	appLogger.Info("Invoice worker stopped")
}
