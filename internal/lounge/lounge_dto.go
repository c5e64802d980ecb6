package lounge

import (
	"strings"
	"time"
)

type LoungeDTO struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description,omitempty"`
	Topic               string          `json:"topic"`
	Category            string          `json:"category,omitempty"`
	Tags                []string        `json:"tags"`
	CreatedBy           int64           `json:"created_by"`
	Visibility          Visibility      `json:"visibility"`
	MaxParticipants     *int            `json:"max_participants,omitempty"`
	CurrentParticipants int             `json:"current_participants"`
	IsActive            bool            `json:"is_active"`
	IsFeatured          bool            `json:"is_featured"`
	LastActivity        *time.Time      `json:"last_activity,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	IsFull              bool            `json:"is_full"`
	SpotsLeft           int             `json:"spots_left"`
	IsParticipant       bool            `json:"is_participant"`
	UserRole            ParticipantRole `json:"user_role,omitempty"`
}

func FromEntity(l Lounge) LoungeDTO {
	return LoungeDTO{
		ID:                  l.ID,
		Title:               l.Title,
		Description:         l.Description,
		Topic:               l.Topic,
		Category:            l.Category,
		Tags:                SplitTags(l.Tags),
		CreatedBy:           l.CreatedBy,
		Visibility:          l.Visibility,
		MaxParticipants:     l.MaxParticipants,
		CurrentParticipants: l.CurrentParticipants,
		IsActive:            l.IsActive,
		IsFeatured:          l.IsFeatured,
		LastActivity:        l.LastActivity,
		CreatedAt:           l.CreatedAt,
		IsFull:              l.MaxParticipants != nil && l.CurrentParticipants >= *l.MaxParticipants,
		SpotsLeft:           spotsLeft(l),
	}
}

// spotsLeft is -1 for lounges without a cap.
func spotsLeft(l Lounge) int {
	if l.MaxParticipants == nil {
		return -1
	}
	if left := *l.MaxParticipants - l.CurrentParticipants; left > 0 {
		return left
	}
	return 0
}

func SplitTags(raw string) []string {
	out := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

type MessageDTO struct {
	ID               int64       `json:"id"`
	LoungeID         int64       `json:"lounge_id"`
	UserID           int64       `json:"user_id"`
	Content          string      `json:"content"`
	MessageType      MessageType `json:"message_type"`
	ReplyToMessageID *int64      `json:"reply_to_message_id,omitempty"`
	IsEdited         bool        `json:"is_edited"`
	EditedAt         *time.Time  `json:"edited_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

func MessageFromEntity(m Message) MessageDTO {
	return MessageDTO{
		ID:               m.ID,
		LoungeID:         m.LoungeID,
		UserID:           m.UserID,
		Content:          m.Content,
		MessageType:      m.MessageType,
		ReplyToMessageID: m.ReplyToMessageID,
		IsEdited:         m.IsEdited,
		EditedAt:         m.EditedAt,
		CreatedAt:        m.CreatedAt,
	}
}

type ParticipantDTO struct {
	UserID       int64           `json:"user_id"`
	Role         ParticipantRole `json:"role"`
	JoinedAt     time.Time       `json:"joined_at"`
	LastActivity *time.Time      `json:"last_activity,omitempty"`
	IsMuted      bool            `json:"is_muted"`
}

func ParticipantFromEntity(p Participant) ParticipantDTO {
	return ParticipantDTO{
		UserID:       p.UserID,
		Role:         p.Role,
		JoinedAt:     p.JoinedAt,
		LastActivity: p.LastActivity,
		IsMuted:      p.IsMuted,
	}
}

type CreateLoungeRequest struct {
	Title           string     `json:"title" binding:"required,min=3,max=100"`
	Description     string     `json:"description" binding:"max=500"`
	Topic           string     `json:"topic" binding:"required,max=100"`
	Category        string     `json:"category" binding:"max=100"`
	Tags            []string   `json:"tags" binding:"max=20,dive,max=50"`
	Visibility      Visibility `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE CORPORATE"`
	MaxParticipants *int       `json:"max_participants" binding:"omitempty,min=2,max=1000"`
}

type SendMessageRequest struct {
	Content          string `json:"content" binding:"required,max=1000"`
	ReplyToMessageID *int64 `json:"reply_to_message_id"`
}

// ListFilter narrows List. At most one of the fields is applied, in field order.
type ListFilter struct {
	Query     string
	Topic     string
	Category  string
	Tag       string
	Featured  bool
	WithSpace bool
}
