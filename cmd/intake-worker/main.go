package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"intake-agent/internal/clients/kafka"
	"intake-agent/internal/clients/mail"
	"intake-agent/internal/email"
	"intake-agent/internal/events/consumers"
	"intake-agent/internal/observability"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting intake confirmation worker...")

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		kafkaBrokers = "localhost:9092"
	}
	brokers := strings.Split(kafkaBrokers, ",")

	kafkaTopic := os.Getenv("KAFKA_INTAKE_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "intake.completed"
	}

	kafkaConsumerGroup := os.Getenv("KAFKA_CONSUMER_GROUP")
	if kafkaConsumerGroup == "" {
		kafkaConsumerGroup = "intake-workers"
	}

	sender := os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	if sender == "" {
		log.Fatal("DEFAULT_EMAIL_SENDER_ADDRESS is not set")
	}

	mailOpts := []mail.Option{mail.WithTag("category", "intake_confirmation")}
	if replyTo := os.Getenv("EMAIL_REPLY_TO_ADDRESS"); replyTo != "" {
		mailOpts = append(mailOpts, mail.WithReplyTo(replyTo))
	}
	mailClient, err := mail.NewResendClient(os.Getenv("RESEND_API_KEY"), logger, mailOpts...)
	if err != nil {
		log.Fatalf("Failed to create resend client: %v", err)
	}
	emailService := email.New(mailClient, sender, logger)

	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   kafkaTopic,
		GroupID: kafkaConsumerGroup,
	}, logger)
	defer kafkaConsumer.Close()

	intakeConsumer := consumers.NewIntakeConsumer(kafkaConsumer, emailService, logger)

	logger.Info(ctx, fmt.Sprintf(`Intake worker configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		brokers, kafkaTopic, kafkaConsumerGroup))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := intakeConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Intake consumer error", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Intake worker stopped")
}
