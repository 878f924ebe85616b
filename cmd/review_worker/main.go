package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/vaanicall/vaani-backend/config"
	"github.com/vaanicall/vaani-backend/internal/application"
	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/redisstore"
	"github.com/vaanicall/vaani-backend/internal/navigation"
	"github.com/vaanicall/vaani-backend/pkg/helpers"
)

// Consumes voice-verification submissions from the review queue. In real
// deployments a human reviewer drives the status endpoint and this worker
// only records the intake; with REVIEW_AUTO_APPROVE=true (dev) it approves
// every submission on the spot.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-review-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQReviewQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQReviewQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQReviewQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	store := redisstore.NewProfileStore(rdb)
	verification := application.NewVerificationService(store, navigation.NewManager(), logger, cfg.VerificationPersistEnabled)

	if cfg.ReviewAutoApprove && !cfg.VerificationPersistEnabled {
		logger.Warn("REVIEW_AUTO_APPROVE has no effect across processes unless VERIFICATION_PERSIST_ENABLED=true")
	}

	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var sub application.ReviewSubmission
			if err := json.Unmarshal(msg.Body, &sub); err != nil {
				logger.WithError(err).Warn("bad submission message")
				_ = msg.Nack(false, false)
				continue
			}

			logger.WithField("device_id", sub.DeviceID).Info("verification submission received")

			if cfg.ReviewAutoApprove {
				if err := verification.SetStatus(ctx, sub.DeviceID, entity.VerificationApproved); err != nil {
					logger.WithError(err).WithField("device_id", sub.DeviceID).Error("auto-approve failed")
					_ = msg.Nack(false, true)
					continue
				}
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("review worker listening on queue=%s", cfg.RabbitMQReviewQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
