package match_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibility(t *testing.T) {
	tests := []struct {
		name string
		a, b user.User
		want float64
	}{
		{
			name: "nothing in common",
			a:    user.User{Industry: "Retail", Skills: "excel"},
			b:    user.User{Industry: "Law", Skills: "go"},
			want: 0,
		},
		{
			name: "same industry ignores case",
			a:    user.User{Industry: "Fintech"},
			b:    user.User{Industry: "fintech"},
			want: 0.4,
		},
		{
			name: "adjacent tech industries",
			a:    user.User{Industry: "FinTech"},
			b:    user.User{Industry: "EdTech"},
			want: 0.2,
		},
		{
			name: "partial skill overlap",
			a:    user.User{Skills: "go, sql, k8s"},
			b:    user.User{Skills: "Go,SQL"},
			want: 0.2,
		},
		{
			name: "everything shared",
			a:    user.User{Industry: "Tech", Skills: "go", Interests: "chess", Role: user.RoleUser},
			b:    user.User{Industry: "tech", Skills: "go", Interests: "chess", Role: user.RoleUser},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, factors := match.Compatibility(tt.a, tt.b)
			assert.InDelta(t, tt.want, score, 0.0001)
			assert.Len(t, factors, 4)
		})
	}
}

func TestSuggestSlots(t *testing.T) {
	// Friday morning: the weekend is skipped.
	now := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

	busy := []match.Meeting{
		{ScheduledStartTime: monday.Add(10 * time.Hour), ScheduledEndTime: monday.Add(10*time.Hour + 30*time.Minute), Status: match.MeetingScheduled},
		{ScheduledStartTime: monday.Add(11 * time.Hour), ScheduledEndTime: monday.Add(12 * time.Hour), Status: match.MeetingCancelled},
	}

	t.Run("skips busy slots", func(t *testing.T) {
		slots := match.SuggestSlots(now, busy, 30*time.Minute, 3)

		require.Len(t, slots, 3)
		assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartTime)
		assert.Equal(t, monday.Add(11*time.Hour), slots[1].StartTime)
		assert.Equal(t, monday.Add(12*time.Hour), slots[2].StartTime)
		assert.Equal(t, "Mon, May 13 09:00 - 09:30", slots[0].DisplayText)
	})

	t.Run("slots end before close of day", func(t *testing.T) {
		slots := match.SuggestSlots(now, nil, time.Hour, 8)

		require.Len(t, slots, 8)
		assert.Equal(t, monday.Add(15*time.Hour), slots[6].StartTime)
		assert.Equal(t, monday.Add(24*time.Hour+9*time.Hour), slots[7].StartTime)
	})
}

func TestFeedbackFromEntity_AverageRating(t *testing.T) {
	four, three := 4, 3

	t.Run("quality only", func(t *testing.T) {
		dto := match.FeedbackFromEntity(match.Feedback{QualityRating: 5})
		assert.Equal(t, 5.0, dto.AverageRating)
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		dto := match.FeedbackFromEntity(match.Feedback{QualityRating: 4, ConversationRating: &four, RelevanceRating: &three})
		assert.Equal(t, 3.7, dto.AverageRating)
	})
}

func TestMeetingFromEntity(t *testing.T) {
	start := time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC)

	dto := match.MeetingFromEntity(match.Meeting{
		ID:                 1,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(45 * time.Minute),
	})

	assert.Equal(t, 45, dto.DurationMinutes)
	assert.NotNil(t, dto.ConversationStarters)
	assert.Empty(t, dto.ConversationStarters)
}
