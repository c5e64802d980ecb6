package gamification_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserStreak_Touch(t *testing.T) {
	t.Run("first activity starts at one", func(t *testing.T) {
		s := gamification.UserStreak{}
		assert.True(t, s.Touch(day(2024, 5, 1).Add(9*time.Hour)))
		assert.Equal(t, 1, s.CurrentCount)
		assert.Equal(t, 1, s.BestCount)
		require.NotNil(t, s.LastActivityDate)
		assert.Equal(t, day(2024, 5, 1), *s.LastActivityDate)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		last := day(2024, 5, 1)
		s := gamification.UserStreak{CurrentCount: 3, BestCount: 5, LastActivityDate: &last}
		assert.False(t, s.Touch(day(2024, 5, 1).Add(20*time.Hour)))
		assert.Equal(t, 3, s.CurrentCount)
	})

	t.Run("next day extends and raises best", func(t *testing.T) {
		last := day(2024, 2, 28)
		s := gamification.UserStreak{CurrentCount: 5, BestCount: 5, LastActivityDate: &last}
		assert.True(t, s.Touch(day(2024, 2, 29)))
		assert.Equal(t, 6, s.CurrentCount)
		assert.Equal(t, 6, s.BestCount)
	})

	t.Run("gap resets but keeps best", func(t *testing.T) {
		last := day(2024, 5, 1)
		s := gamification.UserStreak{CurrentCount: 4, BestCount: 9, LastActivityDate: &last}
		assert.True(t, s.Touch(day(2024, 5, 3)))
		assert.Equal(t, 1, s.CurrentCount)
		assert.Equal(t, 9, s.BestCount)
	})
}

func TestUserStreak_IsActive(t *testing.T) {
	now := day(2024, 5, 10).Add(15 * time.Hour)

	assert.False(t, gamification.UserStreak{}.IsActive(now))

	yesterday := day(2024, 5, 9)
	assert.True(t, gamification.UserStreak{LastActivityDate: &yesterday}.IsActive(now))

	older := day(2024, 5, 8)
	assert.False(t, gamification.UserStreak{LastActivityDate: &older}.IsActive(now))
}

func TestStreakTypeDisplay(t *testing.T) {
	assert.Equal(t, "Daily Login", gamification.StreakDailyLogin.Display())
	assert.Equal(t, "Lounge Participation", gamification.StreakLoungeParticipation.Display())

	dto := gamification.UserStreakFromEntity(gamification.UserStreak{StreakType: gamification.StreakCoffeeChat}, time.Now())
	assert.Equal(t, "Coffee Chat", dto.StreakTypeDisplay)
	assert.False(t, dto.IsActive)
}
