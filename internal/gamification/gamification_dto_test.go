package gamification_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestProgressPercentage(t *testing.T) {
	cases := []struct {
		name     string
		current  *int
		required *int
		want     int
	}{
		{"nil requirement", intPtr(3), nil, 0},
		{"zero requirement", intPtr(3), intPtr(0), 0},
		{"eighty percent", intPtr(8), intPtr(10), 80},
		{"clamped above requirement", intPtr(15), intPtr(10), 100},
		{"truncates", intPtr(1), intPtr(3), 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gamification.ProgressPercentage(tc.current, tc.required))
		})
	}
}

func TestCloseToEarning(t *testing.T) {
	assert.True(t, gamification.CloseToEarning(intPtr(8), intPtr(10), false), "80% is inclusive")
	assert.False(t, gamification.CloseToEarning(intPtr(7), intPtr(10), false))
	assert.False(t, gamification.CloseToEarning(intPtr(9), intPtr(10), true), "earned badges are never close")
	assert.False(t, gamification.CloseToEarning(nil, intPtr(10), false))
	assert.False(t, gamification.CloseToEarning(intPtr(9), nil, false))
}

func TestRankEmojiAndClass(t *testing.T) {
	assert.Equal(t, "🥇", gamification.RankEmoji(1))
	assert.Equal(t, "🥈", gamification.RankEmoji(2))
	assert.Equal(t, "🥉", gamification.RankEmoji(3))
	assert.Equal(t, "🏅", gamification.RankEmoji(4))

	assert.Equal(t, "gold", gamification.RankClass(1))
	assert.Equal(t, "standard", gamification.RankClass(12))

	entry := gamification.LeaderboardEntryFromRow(gamification.LeaderboardRow{Rank: 2})
	assert.Equal(t, "🥈", entry.RankEmoji)
	assert.Equal(t, "silver", entry.RankClass)
}

func TestRarityDisplayFallbacks(t *testing.T) {
	badge := gamification.BadgeFromEntity(gamification.Badge{RarityLevel: 9})
	assert.Equal(t, "Common", badge.RarityDisplay)

	progress := gamification.NewBadgeProgressDTO(gamification.Badge{RarityLevel: 9}, intPtr(1), nil)
	assert.Equal(t, "Unknown", progress.RarityDescription)

	assert.Equal(t, "Legendary", gamification.RarityDisplay(4, "Unknown"))
}

func TestNewBadgeProgressDTO(t *testing.T) {
	b := gamification.Badge{ID: 3, Name: "Coffee Enthusiast", RequiredCount: intPtr(10), RarityLevel: 2}

	open := gamification.NewBadgeProgressDTO(b, intPtr(8), nil)
	assert.False(t, open.IsEarned)
	assert.Equal(t, 80, open.ProgressPercentage)
	assert.True(t, open.IsCloseToEarning)
	assert.Equal(t, "Rare", open.RarityDescription)

	earnedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	done := gamification.NewBadgeProgressDTO(b, intPtr(10), &earnedAt)
	assert.True(t, done.IsEarned)
	assert.False(t, done.IsCloseToEarning)
	assert.Equal(t, 100, done.ProgressPercentage)
}

func TestUserBadgeFromEntity(t *testing.T) {
	t.Run("complete progress renders one decimal", func(t *testing.T) {
		dto := gamification.UserBadgeFromEntity(gamification.UserBadge{
			ID:              1,
			CurrentProgress: intPtr(5),
			Badge:           &gamification.Badge{RequiredCount: intPtr(5), RarityLevel: 1},
		})
		require.NotNil(t, dto.Badge)
		assert.Equal(t, "100.0%", dto.ProgressPercentage)
	})

	t.Run("partial progress", func(t *testing.T) {
		dto := gamification.UserBadgeFromEntity(gamification.UserBadge{
			CurrentProgress: intPtr(1),
			Badge:           &gamification.Badge{RequiredCount: intPtr(3)},
		})
		assert.Equal(t, "33.3%", dto.ProgressPercentage)
	})

	t.Run("over requirement is capped", func(t *testing.T) {
		dto := gamification.UserBadgeFromEntity(gamification.UserBadge{
			CurrentProgress: intPtr(12),
			Badge:           &gamification.Badge{RequiredCount: intPtr(10)},
		})
		assert.Equal(t, "100.0%", dto.ProgressPercentage)
	})

	t.Run("unknown requirement", func(t *testing.T) {
		dto := gamification.UserBadgeFromEntity(gamification.UserBadge{
			CurrentProgress: intPtr(5),
			Badge:           &gamification.Badge{},
		})
		assert.Equal(t, "100%", dto.ProgressPercentage)
	})

	t.Run("zero requirement counts as unknown", func(t *testing.T) {
		for _, progress := range []int{0, 3} {
			dto := gamification.UserBadgeFromEntity(gamification.UserBadge{
				CurrentProgress: intPtr(progress),
				Badge:           &gamification.Badge{RequiredCount: intPtr(0)},
			})
			assert.Equal(t, "100%", dto.ProgressPercentage)
		}
	})
}
