package gamification

import "time"

type BadgeType string

const (
	BadgeTypeStreak      BadgeType = "STREAK"
	BadgeTypeMilestone   BadgeType = "MILESTONE"
	BadgeTypeSocial      BadgeType = "SOCIAL"
	BadgeTypeAchievement BadgeType = "ACHIEVEMENT"
	BadgeTypeSpecial     BadgeType = "SPECIAL"
)

type BadgeCategory string

const (
	CategoryLogin      BadgeCategory = "LOGIN"
	CategoryCoffeeChat BadgeCategory = "COFFEE_CHAT"
	CategoryLounge     BadgeCategory = "LOUNGE"
	CategoryNetworking BadgeCategory = "NETWORKING"
	CategoryEngagement BadgeCategory = "ENGAGEMENT"
	CategoryLeadership BadgeCategory = "LEADERSHIP"
)

// Rarity levels run 1 (Common) through 4 (Legendary).
const (
	RarityCommon    = 1
	RarityRare      = 2
	RarityEpic      = 3
	RarityLegendary = 4
)

type Badge struct {
	ID            int64         `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string        `gorm:"column:name;size:100;not null"`
	Description   string        `gorm:"column:description;type:text"`
	IconURL       string        `gorm:"column:icon_url"`
	BadgeType     BadgeType     `gorm:"column:badge_type;size:30;not null"`
	BadgeCategory BadgeCategory `gorm:"column:badge_category;size:30;not null"`
	CriteriaJSON  string        `gorm:"column:criteria_json;type:text"`
	RequiredCount *int          `gorm:"column:required_count"`
	IsActive      bool          `gorm:"column:is_active;not null;default:true"`
	RarityLevel   int           `gorm:"column:rarity_level;not null;default:1"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime"`
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64     `gorm:"column:user_id;not null;index"`
	BadgeID          int64     `gorm:"column:badge_id;not null"`
	Badge            *Badge    `gorm:"foreignKey:BadgeID"`
	EarnedAt         time.Time `gorm:"column:earned_at;autoCreateTime"`
	ProgressData     string    `gorm:"column:progress_data;type:text"`
	CurrentProgress  *int      `gorm:"column:current_progress;default:0"`
	IsDisplayed      bool      `gorm:"column:is_displayed;not null;default:true"`
	NotificationSent bool      `gorm:"column:notification_sent;not null;default:false"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
