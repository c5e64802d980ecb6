package notification

import (
	"encoding/json"
	"time"
)

type NotificationDTO struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      Type            `json:"type"`
	Priority  Priority        `json:"priority"`
	IsRead    bool            `json:"is_read"`
	ActionURL string          `json:"action_url,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

type CreateNotificationRequest struct {
	UserID    int64          `json:"user_id" binding:"required,min=1"`
	Title     string         `json:"title" binding:"required,max=255"`
	Message   string         `json:"message" binding:"required"`
	Type      Type           `json:"type" binding:"required"`
	Priority  Priority       `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	ActionURL string         `json:"action_url" binding:"omitempty,max=500"`
	Metadata  map[string]any `json:"metadata"`
	ExpiresAt *time.Time     `json:"expires_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type PreferencesDTO struct {
	UserID int64 `json:"user_id"`

	EmailEnabled   bool `json:"email_enabled"`
	EmailMatch     bool `json:"email_match_notifications"`
	EmailMeeting   bool `json:"email_meeting_notifications"`
	EmailBadge     bool `json:"email_badge_notifications"`
	EmailLounge    bool `json:"email_lounge_notifications"`
	EmailSystem    bool `json:"email_system_notifications"`
	EmailCorporate bool `json:"email_corporate_notifications"`

	PushEnabled   bool `json:"push_enabled"`
	PushMatch     bool `json:"push_match_notifications"`
	PushMeeting   bool `json:"push_meeting_notifications"`
	PushBadge     bool `json:"push_badge_notifications"`
	PushLounge    bool `json:"push_lounge_notifications"`
	PushSystem    bool `json:"push_system_notifications"`
	PushCorporate bool `json:"push_corporate_notifications"`

	InAppEnabled   bool `json:"in_app_enabled"`
	InAppMatch     bool `json:"in_app_match_notifications"`
	InAppMeeting   bool `json:"in_app_meeting_notifications"`
	InAppBadge     bool `json:"in_app_badge_notifications"`
	InAppLounge    bool `json:"in_app_lounge_notifications"`
	InAppSystem    bool `json:"in_app_system_notifications"`
	InAppCorporate bool `json:"in_app_corporate_notifications"`

	QuietHoursEnabled bool   `json:"quiet_hours_enabled"`
	QuietHoursStart   string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd     string `json:"quiet_hours_end,omitempty"`
	Timezone          string `json:"timezone"`
	Language          string `json:"language"`
}

// UpdatePreferencesRequest is a partial update: nil fields keep their value.
type UpdatePreferencesRequest struct {
	EmailEnabled   *bool `json:"email_enabled"`
	EmailMatch     *bool `json:"email_match_notifications"`
	EmailMeeting   *bool `json:"email_meeting_notifications"`
	EmailBadge     *bool `json:"email_badge_notifications"`
	EmailLounge    *bool `json:"email_lounge_notifications"`
	EmailSystem    *bool `json:"email_system_notifications"`
	EmailCorporate *bool `json:"email_corporate_notifications"`

	PushEnabled   *bool `json:"push_enabled"`
	PushMatch     *bool `json:"push_match_notifications"`
	PushMeeting   *bool `json:"push_meeting_notifications"`
	PushBadge     *bool `json:"push_badge_notifications"`
	PushLounge    *bool `json:"push_lounge_notifications"`
	PushSystem    *bool `json:"push_system_notifications"`
	PushCorporate *bool `json:"push_corporate_notifications"`

	InAppEnabled   *bool `json:"in_app_enabled"`
	InAppMatch     *bool `json:"in_app_match_notifications"`
	InAppMeeting   *bool `json:"in_app_meeting_notifications"`
	InAppBadge     *bool `json:"in_app_badge_notifications"`
	InAppLounge    *bool `json:"in_app_lounge_notifications"`
	InAppSystem    *bool `json:"in_app_system_notifications"`
	InAppCorporate *bool `json:"in_app_corporate_notifications"`

	QuietHoursEnabled *bool   `json:"quiet_hours_enabled"`
	QuietHoursStart   *string `json:"quiet_hours_start"`
	QuietHoursEnd     *string `json:"quiet_hours_end"`
	Timezone          *string `json:"timezone"`
	Language          *string `json:"language" binding:"omitempty,max=10"`
}

func mapToDTO(n Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Priority:  n.Priority,
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		Metadata:  json.RawMessage(n.Metadata),
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
		ExpiresAt: n.ExpiresAt,
	}
}

func mapToListDTO(items []Notification) []NotificationDTO {
	res := make([]NotificationDTO, len(items))
	for i, n := range items {
		res[i] = mapToDTO(n)
	}
	return res
}

func mapPreferencesToDTO(p Preferences) PreferencesDTO {
	return PreferencesDTO{
		UserID:            p.UserID,
		EmailEnabled:      p.EmailEnabled,
		EmailMatch:        p.EmailMatch,
		EmailMeeting:      p.EmailMeeting,
		EmailBadge:        p.EmailBadge,
		EmailLounge:       p.EmailLounge,
		EmailSystem:       p.EmailSystem,
		EmailCorporate:    p.EmailCorporate,
		PushEnabled:       p.PushEnabled,
		PushMatch:         p.PushMatch,
		PushMeeting:       p.PushMeeting,
		PushBadge:         p.PushBadge,
		PushLounge:        p.PushLounge,
		PushSystem:        p.PushSystem,
		PushCorporate:     p.PushCorporate,
		InAppEnabled:      p.InAppEnabled,
		InAppMatch:        p.InAppMatch,
		InAppMeeting:      p.InAppMeeting,
		InAppBadge:        p.InAppBadge,
		InAppLounge:       p.InAppLounge,
		InAppSystem:       p.InAppSystem,
		InAppCorporate:    p.InAppCorporate,
		QuietHoursEnabled: p.QuietHoursEnabled,
		QuietHoursStart:   p.QuietHoursStart,
		QuietHoursEnd:     p.QuietHoursEnd,
		Timezone:          p.Timezone,
		Language:          p.Language,
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (req UpdatePreferencesRequest) apply(p *Preferences) {
	setIf(&p.EmailEnabled, req.EmailEnabled)
	setIf(&p.EmailMatch, req.EmailMatch)
	setIf(&p.EmailMeeting, req.EmailMeeting)
	setIf(&p.EmailBadge, req.EmailBadge)
	setIf(&p.EmailLounge, req.EmailLounge)
	setIf(&p.EmailSystem, req.EmailSystem)
	setIf(&p.EmailCorporate, req.EmailCorporate)
	setIf(&p.PushEnabled, req.PushEnabled)
	setIf(&p.PushMatch, req.PushMatch)
	setIf(&p.PushMeeting, req.PushMeeting)
	setIf(&p.PushBadge, req.PushBadge)
	setIf(&p.PushLounge, req.PushLounge)
	setIf(&p.PushSystem, req.PushSystem)
	setIf(&p.PushCorporate, req.PushCorporate)
	setIf(&p.InAppEnabled, req.InAppEnabled)
	setIf(&p.InAppMatch, req.InAppMatch)
	setIf(&p.InAppMeeting, req.InAppMeeting)
	setIf(&p.InAppBadge, req.InAppBadge)
	setIf(&p.InAppLounge, req.InAppLounge)
	setIf(&p.InAppSystem, req.InAppSystem)
	setIf(&p.InAppCorporate, req.InAppCorporate)
	setIf(&p.QuietHoursEnabled, req.QuietHoursEnabled)
	setIf(&p.QuietHoursStart, req.QuietHoursStart)
	setIf(&p.QuietHoursEnd, req.QuietHoursEnd)
	setIf(&p.Timezone, req.Timezone)
	setIf(&p.Language, req.Language)
}
