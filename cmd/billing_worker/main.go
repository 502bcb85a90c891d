package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/repository/composite"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/internal/service/pubsub"
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

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	billingService := service.NewBillingService(repo, redisPubSub, sqsService, appLogger)
	billingWorker := worker.NewBillingWorker(billingService, appLogger)

	if err := billingWorker.Start(); err != nil {
		appLogger.Fatal("Failed to start billing worker", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	appLogger.Info("Shutting down billing worker...")
	billingWorker.Stop()
	redisPubSub.Close()
}
