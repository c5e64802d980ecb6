package producer

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultBatchSize    = 50
	defaultPollInterval = 3 * time.Second
)

// Relay moves pending outbox rows to Kafka. Rows are marked sent only after
// the broker acknowledged them, so delivery is at-least-once.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    MessageWriter
	logger    *zap.Logger
	interval  time.Duration
	batchSize int
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, interval time.Duration, logger ...*zap.Logger) *Relay {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	base := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		base = logger[0]
	}
	return &Relay{
		repo:      repo,
		writer:    writer,
		logger:    base.Named("kafka.outbox.relay"),
		interval:  interval,
		batchSize: defaultBatchSize,
	}
}

// Run polls until ctx is canceled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil {
				r.logger.Error("flush outbox failed", zap.Error(err))
			}
		}
	}
}

// Flush publishes one batch and reports how many rows reached the broker.
// A failed publish marks that row failed and moves on to the next one.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, event := range events {
		log := r.logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)

		if err := publishEvent(ctx, r.writer, event); err != nil {
			log.Warn("publish failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if err := r.repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
				log.Error("mark failed", zap.Error(err))
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark sent", zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		r.logger.Debug("outbox batch flushed", zap.Int("sent", sent), zap.Int("pending", len(events)))
	}
	return sent, nil
}
