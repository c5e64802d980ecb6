package match

import "time"

type Type string

const (
	TypeCoffeeChat      Type = "COFFEE_CHAT"
	TypeMentorship      Type = "MENTORSHIP"
	TypeNetworking      Type = "NETWORKING"
	TypeTopicDiscussion Type = "TOPIC_DISCUSSION"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAccepted   Status = "ACCEPTED"
	StatusRejected   Status = "REJECTED"
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusScheduled,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

const DefaultDurationMinutes = 30

type Match struct {
	ID                 int64      `gorm:"column:id;primaryKey;autoIncrement"`
	User1ID            int64      `gorm:"column:user1_id;not null;index"`
	User2ID            int64      `gorm:"column:user2_id;not null;index"`
	MatchType          Type       `gorm:"column:match_type;size:30;not null;default:COFFEE_CHAT"`
	Status             Status     `gorm:"column:status;size:20;not null;default:PENDING"`
	MatchTime          *time.Time `gorm:"column:match_time"`
	ScheduledTime      *time.Time `gorm:"column:scheduled_time"`
	DurationMinutes    int        `gorm:"column:duration_minutes;default:30"`
	CompatibilityScore *float64   `gorm:"column:compatibility_score"`
	MatchReason        string     `gorm:"column:match_reason;type:text"`
	IsActive           bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Match) TableName() string {
	return "matches"
}

func (m Match) Involves(userID int64) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Other returns the counterpart of userID.
func (m Match) Other(userID int64) int64 {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

type ChatMessageType string

const (
	ChatText          ChatMessageType = "TEXT"
	ChatSystem        ChatMessageType = "SYSTEM"
	ChatMatchRequest  ChatMessageType = "MATCH_REQUEST"
	ChatMatchAccepted ChatMessageType = "MATCH_ACCEPTED"
	ChatMatchRejected ChatMessageType = "MATCH_REJECTED"
	ChatStarted       ChatMessageType = "CHAT_STARTED"
	ChatEnded         ChatMessageType = "CHAT_ENDED"
)

type ChatHistory struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	MatchID         int64           `gorm:"column:match_id;not null;index"`
	UserID          int64           `gorm:"column:user_id;not null"`
	MessageType     ChatMessageType `gorm:"column:message_type;size:20;not null;default:TEXT"`
	Content         string          `gorm:"column:content;type:text"`
	Timestamp       time.Time       `gorm:"column:timestamp;not null"`
	IsSystemMessage bool            `gorm:"column:is_system_message;not null;default:false"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}

type Feedback struct {
	ID                     int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MatchID                int64     `gorm:"column:match_id;not null;index"`
	UserID                 int64     `gorm:"column:user_id;not null"`
	QualityRating          int       `gorm:"column:quality_rating;not null"`
	ConversationRating     *int      `gorm:"column:conversation_rating"`
	RelevanceRating        *int      `gorm:"column:relevance_rating"`
	WouldMeetAgain         *bool     `gorm:"column:would_meet_again"`
	FeedbackText           string    `gorm:"column:feedback_text;type:text"`
	ImprovementSuggestions string    `gorm:"column:improvement_suggestions;type:text"`
	Tags                   string    `gorm:"column:tags"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Feedback) TableName() string {
	return "match_feedback"
}
