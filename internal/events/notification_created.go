package events

import "time"

const NotificationCreatedTopic = "notification.created.v1"

// NotificationCreatedEvent fans a stored notification out to push/email senders.
type NotificationCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	NotificationID int64     `json:"notification_id"`
	UserID         int64     `json:"user_id"`
	Type           string    `json:"type"`
	Priority       string    `json:"priority"`
	Title          string    `json:"title"`
	Channels       []string  `json:"channels"`
	OccurredAt     time.Time `json:"occurred_at"`
}
