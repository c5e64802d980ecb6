package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/events"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeBadgeEarned turns badge-earned events into BADGE_EARNED notifications.
// Undecodable messages are committed and dropped; failed creates are left
// uncommitted so the group redelivers them.
func ConsumeBadgeEarned(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.badge_earned")
	log.Info("badge earned consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("badge earned consumer stopped")
				return
			}
			log.Error("fetch badge earned message failed", zap.Error(err))
			continue
		}

		handleBadgeEarned(ctx, reader, notificationService, log, msg)
	}
}

func handleBadgeEarned(
	ctx context.Context,
	reader MessageReader,
	notificationService notification.Service,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.BadgeEarnedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode badge earned event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	_, err := notificationService.Create(ctx, BadgeEarnedNotification(event))
	if err != nil {
		log.Error("create badge notification failed",
			zap.Int64("user_id", event.UserID),
			zap.Int64("badge_id", event.BadgeID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit badge earned message failed", zap.Error(err))
		return
	}

	log.Info("badge notification created",
		zap.Int64("user_id", event.UserID),
		zap.Int64("badge_id", event.BadgeID),
	)
}

func BadgeEarnedNotification(event events.BadgeEarnedEvent) notification.CreateNotificationRequest {
	priority := notification.PriorityMedium
	if event.Rarity >= 3 {
		priority = notification.PriorityHigh
	}

	return notification.CreateNotificationRequest{
		UserID:    event.UserID,
		Title:     "New badge earned!",
		Message:   fmt.Sprintf("You earned the %s badge.", event.BadgeName),
		Type:      notification.TypeBadgeEarned,
		Priority:  priority,
		ActionURL: "/gamification/badges",
		Metadata: map[string]any{
			"badge_id":     event.BadgeID,
			"rarity_level": event.Rarity,
		},
	}
}
