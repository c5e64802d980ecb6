package notification_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_IsNotificationEnabled(t *testing.T) {
	t.Run("defaults allow every type on every channel", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		for _, ch := range []notification.Channel{notification.ChannelEmail, notification.ChannelPush, notification.ChannelInApp} {
			assert.True(t, p.IsNotificationEnabled(notification.TypeBadgeEarned, ch))
			assert.True(t, p.IsNotificationEnabled(notification.TypeMessageReceived, ch))
		}
	})

	t.Run("disabled channel blocks even unmapped types", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.PushEnabled = false
		assert.False(t, p.IsNotificationEnabled(notification.TypeMatchFound, notification.ChannelPush))
		assert.False(t, p.IsNotificationEnabled(notification.TypeProfileUpdate, notification.ChannelPush))
		assert.True(t, p.IsNotificationEnabled(notification.TypeMatchFound, notification.ChannelEmail))
	})

	t.Run("category flags map per type", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.EmailMatch = false
		p.EmailMeeting = false
		p.EmailBadge = false
		p.EmailLounge = false
		p.EmailSystem = false
		p.EmailCorporate = false

		cases := map[notification.Type]bool{
			notification.TypeMatchFound:          false,
			notification.TypeMeetingReminder:     false,
			notification.TypeBadgeEarned:         false,
			notification.TypeLoungeInvitation:    false,
			notification.TypeSystemAnnouncement:  false,
			notification.TypeCompanyAnnouncement: false,
			notification.TypeMeetingScheduled:    true,
			notification.TypeConnectionRequest:   true,
		}
		for typ, want := range cases {
			assert.Equal(t, want, p.IsNotificationEnabled(typ, notification.ChannelEmail), typ)
		}
	})

	t.Run("unknown channel is never enabled", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		assert.False(t, p.IsNotificationEnabled(notification.TypeMatchFound, notification.Channel("sms")))
	})
}

func TestPreferences_InQuietHours(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 3, 10, h, m, 0, 0, time.UTC)
	}

	t.Run("disabled", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.QuietHoursStart, p.QuietHoursEnd = "00:00", "23:59"
		assert.False(t, p.InQuietHours(at(12, 0)))
	})

	t.Run("same-day window", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.QuietHoursEnabled = true
		p.QuietHoursStart, p.QuietHoursEnd = "12:00", "14:00"
		assert.True(t, p.InQuietHours(at(12, 0)))
		assert.True(t, p.InQuietHours(at(13, 59)))
		assert.False(t, p.InQuietHours(at(14, 0)))
		assert.False(t, p.InQuietHours(at(11, 59)))
	})

	t.Run("window wrapping midnight", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.QuietHoursEnabled = true
		p.QuietHoursStart, p.QuietHoursEnd = "22:00", "07:00"
		assert.True(t, p.InQuietHours(at(23, 30)))
		assert.True(t, p.InQuietHours(at(6, 59)))
		assert.False(t, p.InQuietHours(at(7, 0)))
		assert.False(t, p.InQuietHours(at(21, 59)))
	})

	t.Run("evaluated in user timezone", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.QuietHoursEnabled = true
		p.QuietHoursStart, p.QuietHoursEnd = "22:00", "07:00"
		p.Timezone = "Etc/GMT-3" // UTC+3
		assert.True(t, p.InQuietHours(at(20, 0)))
		assert.False(t, p.InQuietHours(at(12, 0)))
	})

	t.Run("malformed bounds", func(t *testing.T) {
		p := notification.DefaultPreferences(1)
		p.QuietHoursEnabled = true
		p.QuietHoursStart, p.QuietHoursEnd = "late", "07:00"
		assert.False(t, p.InQuietHours(at(23, 0)))
	})
}
