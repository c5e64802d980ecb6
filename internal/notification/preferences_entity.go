package notification

import (
	"time"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "in_app"
)

// Preferences holds one user's per-channel, per-category switches. Each
// channel has a master flag plus six category flags.
type Preferences struct {
	ID     int64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:uq_notification_preferences_user"`

	EmailEnabled   bool `gorm:"column:email_enabled;not null"`
	EmailMatch     bool `gorm:"column:email_match_notifications;not null"`
	EmailMeeting   bool `gorm:"column:email_meeting_notifications;not null"`
	EmailBadge     bool `gorm:"column:email_badge_notifications;not null"`
	EmailLounge    bool `gorm:"column:email_lounge_notifications;not null"`
	EmailSystem    bool `gorm:"column:email_system_notifications;not null"`
	EmailCorporate bool `gorm:"column:email_corporate_notifications;not null"`

	PushEnabled   bool `gorm:"column:push_enabled;not null"`
	PushMatch     bool `gorm:"column:push_match_notifications;not null"`
	PushMeeting   bool `gorm:"column:push_meeting_notifications;not null"`
	PushBadge     bool `gorm:"column:push_badge_notifications;not null"`
	PushLounge    bool `gorm:"column:push_lounge_notifications;not null"`
	PushSystem    bool `gorm:"column:push_system_notifications;not null"`
	PushCorporate bool `gorm:"column:push_corporate_notifications;not null"`

	InAppEnabled   bool `gorm:"column:in_app_enabled;not null"`
	InAppMatch     bool `gorm:"column:in_app_match_notifications;not null"`
	InAppMeeting   bool `gorm:"column:in_app_meeting_notifications;not null"`
	InAppBadge     bool `gorm:"column:in_app_badge_notifications;not null"`
	InAppLounge    bool `gorm:"column:in_app_lounge_notifications;not null"`
	InAppSystem    bool `gorm:"column:in_app_system_notifications;not null"`
	InAppCorporate bool `gorm:"column:in_app_corporate_notifications;not null"`

	QuietHoursEnabled bool   `gorm:"column:quiet_hours_enabled;not null"`
	QuietHoursStart   string `gorm:"column:quiet_hours_start;size:5"` // HH:MM
	QuietHoursEnd     string `gorm:"column:quiet_hours_end;size:5"`
	Timezone          string `gorm:"column:timezone;size:64;not null"`
	Language          string `gorm:"column:language;size:10;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Preferences) TableName() string {
	return "notification_preferences"
}

// DefaultPreferences is what a user without a stored row gets: every channel
// and category on, quiet hours off.
func DefaultPreferences(userID int64) Preferences {
	return Preferences{
		UserID:         userID,
		EmailEnabled:   true,
		EmailMatch:     true,
		EmailMeeting:   true,
		EmailBadge:     true,
		EmailLounge:    true,
		EmailSystem:    true,
		EmailCorporate: true,
		PushEnabled:    true,
		PushMatch:      true,
		PushMeeting:    true,
		PushBadge:      true,
		PushLounge:     true,
		PushSystem:     true,
		PushCorporate:  true,
		InAppEnabled:   true,
		InAppMatch:     true,
		InAppMeeting:   true,
		InAppBadge:     true,
		InAppLounge:    true,
		InAppSystem:    true,
		InAppCorporate: true,
		Timezone:       "UTC",
		Language:       "en",
	}
}

type categoryFlags struct {
	enabled, match, meeting, badge, lounge, system, corporate bool
}

func (p Preferences) flags(channel Channel) (categoryFlags, bool) {
	switch channel {
	case ChannelEmail:
		return categoryFlags{p.EmailEnabled, p.EmailMatch, p.EmailMeeting, p.EmailBadge, p.EmailLounge, p.EmailSystem, p.EmailCorporate}, true
	case ChannelPush:
		return categoryFlags{p.PushEnabled, p.PushMatch, p.PushMeeting, p.PushBadge, p.PushLounge, p.PushSystem, p.PushCorporate}, true
	case ChannelInApp:
		return categoryFlags{p.InAppEnabled, p.InAppMatch, p.InAppMeeting, p.InAppBadge, p.InAppLounge, p.InAppSystem, p.InAppCorporate}, true
	}
	return categoryFlags{}, false
}

// IsNotificationEnabled reports whether a notification of type t may be sent
// on channel. A disabled channel wins; types without a category flag are
// always allowed.
func (p Preferences) IsNotificationEnabled(t Type, channel Channel) bool {
	f, ok := p.flags(channel)
	if !ok || !f.enabled {
		return false
	}

	switch t {
	case TypeMatchFound:
		return f.match
	case TypeMeetingReminder:
		return f.meeting
	case TypeBadgeEarned:
		return f.badge
	case TypeLoungeInvitation:
		return f.lounge
	case TypeSystemAnnouncement:
		return f.system
	case TypeCompanyAnnouncement:
		return f.corporate
	default:
		return true
	}
}

// InQuietHours reports whether at falls inside the user's quiet window,
// evaluated in the user's timezone. Windows may wrap midnight.
func (p Preferences) InQuietHours(at time.Time) bool {
	if !p.QuietHoursEnabled {
		return false
	}
	start, err := time.Parse("15:04", p.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", p.QuietHoursEnd)
	if err != nil {
		return false
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := at.In(loc)
	minute := local.Hour()*60 + local.Minute()
	from := start.Hour()*60 + start.Minute()
	to := end.Hour()*60 + end.Minute()

	if from == to {
		return false
	}
	if from < to {
		return minute >= from && minute < to
	}
	return minute >= from || minute < to
}
