package kafka

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enqueue marshals payload and writes it to the outbox inside tx.
func Enqueue(
	ctx context.Context,
	repo OutboxRepository,
	tx *gorm.DB,
	requestID, aggregateType, aggregateID, eventType, topic string,
	payload any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return repo.WithTx(tx).Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	})
}
