package match

import (
	"time"

	"gorm.io/datatypes"
)

type MeetingType string

const (
	MeetingVirtual    MeetingType = "VIRTUAL"
	MeetingInPerson   MeetingType = "IN_PERSON"
	MeetingPhoneCall  MeetingType = "PHONE_CALL"
	MeetingCoffeeChat MeetingType = "COFFEE_CHAT"
)

type MeetingStatus string

const (
	MeetingScheduled   MeetingStatus = "SCHEDULED"
	MeetingConfirmed   MeetingStatus = "CONFIRMED"
	MeetingRescheduled MeetingStatus = "RESCHEDULED"
	MeetingCancelled   MeetingStatus = "CANCELLED"
	MeetingInProgress  MeetingStatus = "IN_PROGRESS"
	MeetingCompleted   MeetingStatus = "COMPLETED"
	MeetingNoShow      MeetingStatus = "NO_SHOW"
)

// Open reports whether the meeting still occupies its slot.
func (s MeetingStatus) Open() bool {
	switch s {
	case MeetingScheduled, MeetingConfirmed, MeetingRescheduled, MeetingInProgress:
		return true
	}
	return false
}

type Meeting struct {
	ID                   int64          `gorm:"column:id;primaryKey;autoIncrement"`
	MatchID              int64          `gorm:"column:match_id;not null;index"`
	OrganizerID          int64          `gorm:"column:organizer_id;not null;index"`
	ParticipantID        int64          `gorm:"column:participant_id;not null;index"`
	MeetingTitle         string         `gorm:"column:meeting_title;not null"`
	MeetingDescription   string         `gorm:"column:meeting_description;type:text"`
	ScheduledStartTime   time.Time      `gorm:"column:scheduled_start_time;not null"`
	ScheduledEndTime     time.Time      `gorm:"column:scheduled_end_time;not null"`
	TimeZone             string         `gorm:"column:time_zone;size:64"`
	MeetingType          MeetingType    `gorm:"column:meeting_type;size:20"`
	MeetingLocation      string         `gorm:"column:meeting_location"`
	CalendarEventID      string         `gorm:"column:calendar_event_id"`
	ReminderSent         bool           `gorm:"column:reminder_sent;not null;default:false"`
	Status               MeetingStatus  `gorm:"column:status;size:20;not null;default:SCHEDULED"`
	ConversationStarters datatypes.JSON `gorm:"column:conversation_starters"`
	ActualStartTime      *time.Time     `gorm:"column:actual_start_time"`
	ActualEndTime        *time.Time     `gorm:"column:actual_end_time"`
	MeetingNotes         string         `gorm:"column:meeting_notes;type:text"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "scheduled_meetings"
}

type ContextType string

const (
	ContextSkillBased    ContextType = "SKILL_BASED"
	ContextIndustryBased ContextType = "INDUSTRY_BASED"
	ContextInterestBased ContextType = "INTEREST_BASED"
	ContextGeneral       ContextType = "GENERAL"
	ContextIcebreaker    ContextType = "ICEBREAKER"
	ContextProfessional  ContextType = "PROFESSIONAL"
	ContextCasual        ContextType = "CASUAL"
)

type ConversationStarter struct {
	ID              int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Template        string      `gorm:"column:template;type:text;not null"`
	Category        string      `gorm:"column:category;not null"`
	Tags            string      `gorm:"column:tags"`
	ContextType     ContextType `gorm:"column:context_type;size:30"`
	DifficultyLevel int         `gorm:"column:difficulty_level;default:1"`
	UsageCount      int64       `gorm:"column:usage_count;not null;default:0"`
	SuccessRate     float64     `gorm:"column:success_rate;default:0"`
	IsActive        bool        `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (ConversationStarter) TableName() string {
	return "conversation_starters"
}
