package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/Domenick1991/vehiclerental/internal/email"
	"github.com/Domenick1991/vehiclerental/internal/kafka"
	"github.com/Domenick1991/vehiclerental/internal/logger"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.WithField("topic", cfg.Kafka.NotificationsTopic).Info("notification worker started")
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		return handleMessage(ctx, sender, log, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("consumer stopped")
		return
	}
	log.Info("notification worker shut down")
}

type acknowledger interface {
	Send(ctx context.Context, event kafka.BookingRequestEvent) error
}

// handleMessage never fails the consumer for a bad payload; it only surfaces
// errors that should stop consumption.
func handleMessage(ctx context.Context, sender acknowledger, log logrus.FieldLogger, msg kafkaGo.Message) error {
	var event kafka.BookingRequestEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.WithError(err).WithField("offset", msg.Offset).Warn("decode event error")
		return nil
	}
	if err := sender.Send(ctx, event); err != nil {
		if errors.Is(err, email.ErrNoRecipient) {
			log.WithField("reference", event.Reference).Warn("skipping event without recipient")
			return nil
		}
		return err
	}
	return nil
}
