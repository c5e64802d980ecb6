package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"
	kafkamock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failOn  string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failOn {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func headerValue(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}
		relay := producer.NewRelay(repo, writer, time.Second, zap.NewNop())

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e1", RequestID: "req-1", AggregateType: "user_badge", AggregateID: "7", EventType: "badge_earned", Topic: "gamification.badge.earned.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)

		sent, err := relay.Flush(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "7", string(msg.Key))
		assert.Equal(t, "gamification.badge.earned.v1", msg.Topic)
		assert.Equal(t, "badge_earned", headerValue(msg, "event_type"))
		assert.Equal(t, "req-1", headerValue(msg, "request_id"))
	})

	t.Run("omits empty request id header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}
		relay := producer.NewRelay(repo, writer, time.Second, zap.NewNop())

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "1", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)

		_, err := relay.Flush(ctx)

		require.NoError(t, err)
		require.Len(t, writer.written, 1)
		assert.Len(t, writer.written[0].Headers, 2)
	})

	t.Run("marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		relay := producer.NewRelay(repo, &fakeWriter{failOn: "1"}, time.Second, zap.NewNop())

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "1", Topic: "t", Payload: []byte(`{}`)},
			{ID: "e2", AggregateID: "2", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "e1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := relay.Flush(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("does not count rows that could not be marked sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		relay := producer.NewRelay(repo, &fakeWriter{}, time.Second, zap.NewNop())

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "1", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(errors.New("db down"))

		sent, err := relay.Flush(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("returns list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		relay := producer.NewRelay(repo, &fakeWriter{}, time.Second, zap.NewNop())

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		sent, err := relay.Flush(ctx)

		assert.Error(t, err)
		assert.Zero(t, sent)
	})
}

func TestRelay_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, nil).AnyTimes()

	relay := producer.NewRelay(repo, &fakeWriter{}, 5*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
