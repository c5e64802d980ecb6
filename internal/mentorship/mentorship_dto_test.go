package mentorship_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestProgramFromEntity_StatusDisplay(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	base := mentorship.Program{
		ID:                  1,
		ProgramName:         "Tech Ladder",
		ProgramType:         mentorship.ProgramTechnicalSkills,
		MaxMenteesPerMentor: intPtr(2),
		IsActive:            true,
		StartDate:           timePtr(now.AddDate(0, -1, 0)),
		EndDate:             timePtr(now.AddDate(0, 2, 0)),
	}

	tests := []struct {
		name         string
		mutate       func(p *mentorship.Program)
		participants int
		want         string
	}{
		{"inactive wins over everything", func(p *mentorship.Program) { p.IsActive = false }, 50, "Inactive"},
		{"full", nil, 20, "Full"},
		{"upcoming", func(p *mentorship.Program) { p.StartDate = timePtr(now.Add(time.Hour)) }, 3, "Upcoming"},
		{"completed", func(p *mentorship.Program) { p.EndDate = timePtr(now.Add(-time.Hour)) }, 3, "Completed"},
		{"active", nil, 19, "Active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			assert.Equal(t, tt.want, mentorship.ProgramFromEntity(p, tt.participants, now).StatusDisplay)
		})
	}
}

func TestProgramFromEntity_Seats(t *testing.T) {
	now := time.Now()

	t.Run("seats scale with the per-mentor cap", func(t *testing.T) {
		dto := mentorship.ProgramFromEntity(mentorship.Program{IsActive: true, MaxMenteesPerMentor: intPtr(3)}, 30, now)

		require.NotNil(t, dto.MaxParticipants)
		assert.Equal(t, 30, *dto.MaxParticipants)
		assert.True(t, dto.IsFull)
		assert.Equal(t, 30, dto.CurrentParticipants)
	})

	t.Run("uncapped program is never full", func(t *testing.T) {
		dto := mentorship.ProgramFromEntity(mentorship.Program{IsActive: true}, 500, now)

		assert.Nil(t, dto.MaxParticipants)
		assert.False(t, dto.IsFull)
		assert.Equal(t, "Active", dto.StatusDisplay)
	})
}

func TestProgramTypeDisplay(t *testing.T) {
	assert.Equal(t, "leadership development", mentorship.ProgramTypeDisplay(mentorship.ProgramLeadershipDevelopment))
	assert.Equal(t, "networking", mentorship.ProgramTypeDisplay(mentorship.ProgramNetworking))
}
