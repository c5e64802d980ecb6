package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/events"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka/consumer"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	notificationmock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves queued messages and cancels the consumer once drained.
type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func badgeMessage(t *testing.T, event events.BadgeEarnedEvent) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Topic: events.BadgeEarnedTopic, Value: body}
}

func TestConsumeBadgeEarned(t *testing.T) {
	t.Run("creates notification and commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationmock.NewMockService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			msgs:   []kafkago.Message{badgeMessage(t, events.BadgeEarnedEvent{UserID: 4, BadgeID: 9, BadgeName: "Connector", Rarity: 2})},
			cancel: cancel,
		}

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req notification.CreateNotificationRequest) (*notification.NotificationDTO, error) {
				assert.Equal(t, int64(4), req.UserID)
				assert.Equal(t, notification.TypeBadgeEarned, req.Type)
				assert.Equal(t, "You earned the Connector badge.", req.Message)
				return &notification.NotificationDTO{ID: 1}, nil
			})

		consumer.ConsumeBadgeEarned(ctx, reader, svc, zap.NewNop())

		assert.Len(t, reader.committed, 1)
	})

	t.Run("commits undecodable message without creating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationmock.NewMockService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			msgs:   []kafkago.Message{{Value: []byte("{not json")}},
			cancel: cancel,
		}

		consumer.ConsumeBadgeEarned(ctx, reader, svc, zap.NewNop())

		assert.Len(t, reader.committed, 1)
	})

	t.Run("leaves message uncommitted when create fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationmock.NewMockService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			msgs:   []kafkago.Message{badgeMessage(t, events.BadgeEarnedEvent{UserID: 4, BadgeID: 9})},
			cancel: cancel,
		}

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		consumer.ConsumeBadgeEarned(ctx, reader, svc, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}

func TestBadgeEarnedNotification_RarityRaisesPriority(t *testing.T) {
	assert.Equal(t, notification.PriorityMedium, consumer.BadgeEarnedNotification(events.BadgeEarnedEvent{Rarity: 1}).Priority)
	assert.Equal(t, notification.PriorityHigh, consumer.BadgeEarnedNotification(events.BadgeEarnedEvent{Rarity: 4}).Priority)
}
