package notification

import (
	"time"

	"gorm.io/datatypes"
)

type Type string

const (
	TypeMatchFound          Type = "MATCH_FOUND"
	TypeMessageReceived     Type = "MESSAGE_RECEIVED"
	TypeMeetingScheduled    Type = "MEETING_SCHEDULED"
	TypeMeetingReminder     Type = "MEETING_REMINDER"
	TypeFeedbackRequest     Type = "FEEDBACK_REQUEST"
	TypeBadgeEarned         Type = "BADGE_EARNED"
	TypeLoungeInvitation    Type = "LOUNGE_INVITATION"
	TypeSystemAnnouncement  Type = "SYSTEM_ANNOUNCEMENT"
	TypeCompanyAnnouncement Type = "COMPANY_ANNOUNCEMENT"
	TypeProfileUpdate       Type = "PROFILE_UPDATE"
	TypeConnectionRequest   Type = "CONNECTION_REQUEST"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMatchFound, TypeMessageReceived, TypeMeetingScheduled, TypeMeetingReminder,
		TypeFeedbackRequest, TypeBadgeEarned, TypeLoungeInvitation, TypeSystemAnnouncement,
		TypeCompanyAnnouncement, TypeProfileUpdate, TypeConnectionRequest:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Notification struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64          `gorm:"column:user_id;not null;index"`
	Title     string         `gorm:"column:title;size:255;not null"`
	Message   string         `gorm:"column:message;type:text;not null"`
	Type      Type           `gorm:"column:type;size:50;not null"`
	Priority  Priority       `gorm:"column:priority;size:20;not null;default:MEDIUM"`
	IsRead    bool           `gorm:"column:is_read;not null;default:false"`
	ActionURL string         `gorm:"column:action_url;size:500"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	ReadAt    *time.Time     `gorm:"column:read_at"`
	ExpiresAt *time.Time     `gorm:"column:expires_at;index"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
