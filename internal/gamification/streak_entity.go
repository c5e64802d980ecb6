package gamification

import "time"

type StreakType string

const (
	StreakDailyLogin          StreakType = "DAILY_LOGIN"
	StreakCoffeeChat          StreakType = "COFFEE_CHAT"
	StreakLoungeParticipation StreakType = "LOUNGE_PARTICIPATION"
	StreakMessage             StreakType = "MESSAGE_STREAK"
)

// Display returns the human label, or the raw value for unknown types.
func (t StreakType) Display() string {
	switch t {
	case StreakDailyLogin:
		return "Daily Login"
	case StreakCoffeeChat:
		return "Coffee Chat"
	case StreakLoungeParticipation:
		return "Lounge Participation"
	case StreakMessage:
		return "Message Streak"
	default:
		return string(t)
	}
}

type UserStreak struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64      `gorm:"column:user_id;not null;index"`
	StreakType       StreakType `gorm:"column:streak_type;size:30;not null"`
	CurrentCount     int        `gorm:"column:current_count;not null;default:0"`
	BestCount        int        `gorm:"column:best_count;not null;default:0"`
	LastActivityDate *time.Time `gorm:"column:last_activity_date;type:date"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Touch records activity on the calendar day of at. A second touch on the same
// day changes nothing, a touch on the following day extends the streak, and
// any longer gap restarts it at 1. It reports whether the streak changed.
func (s *UserStreak) Touch(at time.Time) bool {
	today := dateOf(at)

	if s.LastActivityDate != nil {
		last := dateOf(*s.LastActivityDate)
		switch {
		case !last.Before(today):
			return false
		case last.AddDate(0, 0, 1).Equal(today):
			s.CurrentCount++
		default:
			s.CurrentCount = 1
		}
	} else {
		s.CurrentCount = 1
	}

	if s.CurrentCount > s.BestCount {
		s.BestCount = s.CurrentCount
	}
	s.LastActivityDate = &today
	return true
}

// IsActive is true when the last activity was today or yesterday.
func (s UserStreak) IsActive(at time.Time) bool {
	if s.LastActivityDate == nil {
		return false
	}
	return !dateOf(*s.LastActivityDate).Before(dateOf(at).AddDate(0, 0, -1))
}
