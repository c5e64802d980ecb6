package events

import "time"

const BadgeEarnedTopic = "gamification.badge.earned.v1"

type BadgeEarnedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     int64     `json:"user_id"`
	BadgeID    int64     `json:"badge_id"`
	BadgeName  string    `json:"badge_name"`
	Rarity     int       `json:"rarity_level"`
	OccurredAt time.Time `json:"occurred_at"`
}
