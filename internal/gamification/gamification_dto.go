package gamification

import (
	"fmt"
	"math"
	"time"
)

// RarityDisplay labels a rarity level, falling back for out-of-range levels.
func RarityDisplay(level int, fallback string) string {
	switch level {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return fallback
	}
}

// ProgressPercentage is current*100/required truncated and capped at 100.
// An unknown or zero requirement yields 0.
func ProgressPercentage(current, required *int) int {
	if required == nil || *required == 0 {
		return 0
	}
	cur := 0
	if current != nil {
		cur = *current
	}
	pct := cur * 100 / *required
	return min(100, pct)
}

// CloseToEarning reports an unearned badge at or above 80% of its requirement.
func CloseToEarning(current, required *int, earned bool) bool {
	if earned || required == nil || current == nil {
		return false
	}
	return *current*5 >= *required*4
}

func RankEmoji(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "🏅"
	}
}

func RankClass(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return "standard"
	}
}

type BadgeDTO struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	IconURL       string        `json:"icon_url"`
	BadgeType     BadgeType     `json:"badge_type"`
	BadgeCategory BadgeCategory `json:"badge_category"`
	RequiredCount *int          `json:"required_count"`
	RarityLevel   int           `json:"rarity_level"`
	RarityDisplay string        `json:"rarity_display"`
	CreatedAt     time.Time     `json:"created_at"`
}

func BadgeFromEntity(b Badge) BadgeDTO {
	return BadgeDTO{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		IconURL:       b.IconURL,
		BadgeType:     b.BadgeType,
		BadgeCategory: b.BadgeCategory,
		RequiredCount: b.RequiredCount,
		RarityLevel:   b.RarityLevel,
		RarityDisplay: RarityDisplay(b.RarityLevel, "Common"),
		CreatedAt:     b.CreatedAt,
	}
}

type BadgeProgressDTO struct {
	BadgeID            int64      `json:"badge_id"`
	BadgeName          string     `json:"badge_name"`
	BadgeDescription   string     `json:"badge_description"`
	IconURL            string     `json:"icon_url"`
	RequiredCount      *int       `json:"required_count"`
	CurrentProgress    *int       `json:"current_progress"`
	RarityLevel        int        `json:"rarity_level"`
	IsEarned           bool       `json:"is_earned"`
	EarnedAt           *time.Time `json:"earned_at,omitempty"`
	ProgressPercentage int        `json:"progress_percentage"`
	IsCloseToEarning   bool       `json:"is_close_to_earning"`
	RarityDescription  string     `json:"rarity_description"`
}

// NewBadgeProgressDTO fills the derived fields from the badge and progress.
func NewBadgeProgressDTO(b Badge, current *int, earnedAt *time.Time) BadgeProgressDTO {
	earned := earnedAt != nil
	return BadgeProgressDTO{
		BadgeID:            b.ID,
		BadgeName:          b.Name,
		BadgeDescription:   b.Description,
		IconURL:            b.IconURL,
		RequiredCount:      b.RequiredCount,
		CurrentProgress:    current,
		RarityLevel:        b.RarityLevel,
		IsEarned:           earned,
		EarnedAt:           earnedAt,
		ProgressPercentage: ProgressPercentage(current, b.RequiredCount),
		IsCloseToEarning:   CloseToEarning(current, b.RequiredCount, earned),
		RarityDescription:  RarityDisplay(b.RarityLevel, "Unknown"),
	}
}

type UserBadgeDTO struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Badge              *BadgeDTO `json:"badge,omitempty"`
	EarnedAt           time.Time `json:"earned_at"`
	CurrentProgress    *int      `json:"current_progress"`
	IsDisplayed        bool      `json:"is_displayed"`
	ProgressPercentage string    `json:"progress_percentage"`
}

// UserBadgeFromEntity renders progress as a one-decimal percentage of the
// badge requirement, or "100%" when the requirement is unknown.
func UserBadgeFromEntity(ub UserBadge) UserBadgeDTO {
	dto := UserBadgeDTO{
		ID:                 ub.ID,
		UserID:             ub.UserID,
		EarnedAt:           ub.EarnedAt,
		CurrentProgress:    ub.CurrentProgress,
		IsDisplayed:        ub.IsDisplayed,
		ProgressPercentage: "100%",
	}

	if ub.Badge != nil {
		badge := BadgeFromEntity(*ub.Badge)
		dto.Badge = &badge

		if ub.Badge.RequiredCount != nil && *ub.Badge.RequiredCount > 0 && ub.CurrentProgress != nil {
			pct := float64(*ub.CurrentProgress) / float64(*ub.Badge.RequiredCount) * 100
			dto.ProgressPercentage = fmt.Sprintf("%.1f%%", math.Min(pct, 100))
		}
	}
	return dto
}

func mapUserBadges(items []UserBadge) []UserBadgeDTO {
	out := make([]UserBadgeDTO, 0, len(items))
	for _, ub := range items {
		out = append(out, UserBadgeFromEntity(ub))
	}
	return out
}

type UserStreakDTO struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	StreakType        StreakType `json:"streak_type"`
	CurrentCount      int        `json:"current_count"`
	BestCount         int        `json:"best_count"`
	LastActivityDate  *time.Time `json:"last_activity_date"`
	IsActive          bool       `json:"is_active"`
	StreakTypeDisplay string     `json:"streak_type_display"`
}

func UserStreakFromEntity(s UserStreak, now time.Time) UserStreakDTO {
	return UserStreakDTO{
		ID:                s.ID,
		UserID:            s.UserID,
		StreakType:        s.StreakType,
		CurrentCount:      s.CurrentCount,
		BestCount:         s.BestCount,
		LastActivityDate:  s.LastActivityDate,
		IsActive:          s.IsActive(now),
		StreakTypeDisplay: s.StreakType.Display(),
	}
}

type LeaderboardEntryDTO struct {
	UserID            int64  `json:"user_id"`
	UserName          string `json:"user_name"`
	UserEmail         string `json:"user_email,omitempty"`
	TotalPoints       int64  `json:"total_points"`
	TotalBadges       int64  `json:"total_badges"`
	LongestStreak     int    `json:"longest_streak"`
	LongestStreakType string `json:"longest_streak_type,omitempty"`
	Rank              int    `json:"rank"`
	RankEmoji         string `json:"rank_emoji"`
	RankClass         string `json:"rank_class"`
}

func LeaderboardEntryFromRow(r LeaderboardRow) LeaderboardEntryDTO {
	return LeaderboardEntryDTO{
		UserID:            r.UserID,
		UserName:          r.UserName,
		UserEmail:         r.UserEmail,
		TotalPoints:       r.TotalPoints,
		TotalBadges:       r.TotalBadges,
		LongestStreak:     r.LongestStreak,
		LongestStreakType: r.LongestStreakType,
		Rank:              r.Rank,
		RankEmoji:         RankEmoji(r.Rank),
		RankClass:         RankClass(r.Rank),
	}
}

func mapLeaderboard(rows []LeaderboardRow) []LeaderboardEntryDTO {
	out := make([]LeaderboardEntryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, LeaderboardEntryFromRow(r))
	}
	return out
}

type GamificationSummaryDTO struct {
	UserID             int64           `json:"user_id"`
	ActiveStreaks      []UserStreakDTO `json:"active_streaks"`
	RecentBadges       []UserBadgeDTO  `json:"recent_badges"`
	DisplayedBadges    []UserBadgeDTO  `json:"displayed_badges"`
	TotalBadges        int64           `json:"total_badges"`
	TotalPoints        int64           `json:"total_points"`
	LongestStreak      int             `json:"longest_streak"`
	LongestStreakType  string          `json:"longest_streak_type"`
	Rank               int             `json:"rank"`
	HasNewAchievements bool            `json:"has_new_achievements"`
}

type RecordActivityRequest struct {
	ActivityType ActivityType `json:"activity_type" binding:"required"`
	EntityID     *int64       `json:"entity_id"`
	ActivityData string       `json:"activity_data"`
}

type ActivityResultDTO struct {
	PointsEarned int            `json:"points_earned"`
	Streak       *UserStreakDTO `json:"streak,omitempty"`
	BadgesEarned []UserBadgeDTO `json:"badges_earned"`
}

type AwardBadgeRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}
