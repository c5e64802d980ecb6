package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka/producer"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/config"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox and runs the maintenance sweeps until signalled.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	svc := buildServices(gormDB, redisClient, cfg, logger)
	maintenance := NewMaintenance(
		svc.Notification,
		svc.Invitations,
		svc.Subscription,
		svc.Reminders,
		svc.Analytics,
		cfg.MeetingReminderLead,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relay := producer.NewRelay(svc.OutboxRepo, kafkaWriter, cfg.OutboxPollInterval, logger)
	go relay.Run(ctx)
	go maintenance.Run(ctx, cfg.MaintenanceInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
