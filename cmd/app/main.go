package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/Domenick1991/vehiclerental/internal/bootstrap"
	"github.com/Domenick1991/vehiclerental/internal/cache"
	"github.com/Domenick1991/vehiclerental/internal/kafka"
	"github.com/Domenick1991/vehiclerental/internal/logger"
	"github.com/Domenick1991/vehiclerental/internal/repository"
	"github.com/Domenick1991/vehiclerental/internal/service/account"
	"github.com/Domenick1991/vehiclerental/internal/service/booking"
	"github.com/Domenick1991/vehiclerental/internal/service/catalog"
	"github.com/joho/godotenv"
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

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.RoutesCacheTTL)*time.Second)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.WithError(err).Warn("kafka not reachable, booking events may be lost")
	}

	routeRepo := repository.NewRouteRepository(cfg.Catalog.Routes)
	services := bootstrap.Services{
		Bookings: booking.NewBookingService(
			redisCache,
			producer,
			cfg.Kafka.BookingTopic,
			time.Duration(cfg.Booking.SubmissionLockSeconds)*time.Second,
			log,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Catalog:  catalog.NewCatalogService(routeRepo, redisCache, log),
		Accounts: account.NewAccountService(log),
	}

	if err := bootstrap.Run(ctx, cfg, services, log); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
