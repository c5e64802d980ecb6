package lounge

import "time"

type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityPrivate   Visibility = "PRIVATE"
	VisibilityCorporate Visibility = "CORPORATE"
)

type Lounge struct {
	ID                  int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title               string     `gorm:"column:title;size:100;not null"`
	Description         string     `gorm:"column:description;size:500"`
	Topic               string     `gorm:"column:topic;size:100;not null"`
	Category            string     `gorm:"column:category;size:100"`
	Tags                string     `gorm:"column:tags;type:text"` // comma separated
	CreatedBy           int64      `gorm:"column:created_by;not null"`
	Visibility          Visibility `gorm:"column:visibility;size:20;not null;default:PUBLIC"`
	MaxParticipants     *int       `gorm:"column:max_participants"`
	CurrentParticipants int        `gorm:"column:current_participants;not null;default:0"`
	IsActive            bool       `gorm:"column:is_active;not null;default:true"`
	IsFeatured          bool       `gorm:"column:is_featured;not null;default:false"`
	LastActivity        *time.Time `gorm:"column:last_activity"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Lounge) TableName() string {
	return "lounges"
}

type ParticipantRole string

const (
	RoleCreator   ParticipantRole = "CREATOR"
	RoleModerator ParticipantRole = "MODERATOR"
	RoleMember    ParticipantRole = "MEMBER"
)

type Participant struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	LoungeID     int64           `gorm:"column:lounge_id;not null;index"`
	UserID       int64           `gorm:"column:user_id;not null;index"`
	Role         ParticipantRole `gorm:"column:role;size:20;not null;default:MEMBER"`
	JoinedAt     time.Time       `gorm:"column:joined_at;not null"`
	LastActivity *time.Time      `gorm:"column:last_activity"`
	IsActive     bool            `gorm:"column:is_active;not null;default:true"`
	IsMuted      bool            `gorm:"column:is_muted;not null;default:false"`
	MutedUntil   *time.Time      `gorm:"column:muted_until"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Participant) TableName() string {
	return "lounge_participants"
}

// IsMutedAt reports whether the participant may not post at t.
func (p Participant) IsMutedAt(t time.Time) bool {
	return p.IsMuted && p.MutedUntil != nil && p.MutedUntil.After(t)
}

type MessageType string

const (
	MessageText            MessageType = "TEXT"
	MessageSystem          MessageType = "SYSTEM"
	MessageJoin            MessageType = "JOIN"
	MessageLeave           MessageType = "LEAVE"
	MessageTopicChange     MessageType = "TOPIC_CHANGE"
	MessageModeratorAction MessageType = "MODERATOR_ACTION"
)

type Message struct {
	ID               int64       `gorm:"column:id;primaryKey;autoIncrement"`
	LoungeID         int64       `gorm:"column:lounge_id;not null;index"`
	UserID           int64       `gorm:"column:user_id;not null"`
	Content          string      `gorm:"column:content;size:1000;not null"`
	MessageType      MessageType `gorm:"column:message_type;size:20;not null;default:TEXT"`
	ReplyToMessageID *int64      `gorm:"column:reply_to_message_id"`
	IsEdited         bool        `gorm:"column:is_edited;not null;default:false"`
	EditedAt         *time.Time  `gorm:"column:edited_at"`
	IsDeleted        bool        `gorm:"column:is_deleted;not null;default:false"`
	DeletedAt        *time.Time  `gorm:"column:deleted_at"`
	CreatedAt        time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (Message) TableName() string {
	return "lounge_messages"
}
