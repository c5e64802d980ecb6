package gamification

import "time"

type ActivityType string

const (
	ActivityLogin               ActivityType = "LOGIN"
	ActivityCoffeeChatRequest   ActivityType = "COFFEE_CHAT_REQUEST"
	ActivityCoffeeChatAccepted  ActivityType = "COFFEE_CHAT_ACCEPTED"
	ActivityCoffeeChatCompleted ActivityType = "COFFEE_CHAT_COMPLETED"
	ActivityLoungeJoined        ActivityType = "LOUNGE_JOINED"
	ActivityLoungeCreated       ActivityType = "LOUNGE_CREATED"
	ActivityLoungeMessageSent   ActivityType = "LOUNGE_MESSAGE_SENT"
	ActivityProfileUpdated      ActivityType = "PROFILE_UPDATED"
	ActivityMatchFound          ActivityType = "MATCH_FOUND"
	ActivityBadgeEarned         ActivityType = "BADGE_EARNED"
)

var activityPoints = map[ActivityType]int{
	ActivityLogin:               5,
	ActivityCoffeeChatRequest:   2,
	ActivityCoffeeChatAccepted:  5,
	ActivityCoffeeChatCompleted: 20,
	ActivityLoungeJoined:        3,
	ActivityLoungeCreated:       15,
	ActivityLoungeMessageSent:   1,
	ActivityProfileUpdated:      5,
	ActivityMatchFound:          10,
	ActivityBadgeEarned:         50,
}

func (t ActivityType) Valid() bool {
	_, ok := activityPoints[t]
	return ok
}

// Points is the score awarded for one activity of this type.
func (t ActivityType) Points() int {
	return activityPoints[t]
}

// StreakType maps an activity onto the streak it feeds, if any.
func (t ActivityType) StreakType() (StreakType, bool) {
	switch t {
	case ActivityLogin:
		return StreakDailyLogin, true
	case ActivityCoffeeChatCompleted:
		return StreakCoffeeChat, true
	case ActivityLoungeJoined, ActivityLoungeMessageSent:
		return StreakLoungeParticipation, true
	default:
		return "", false
	}
}

// progressActivity is the activity counted towards badges of a category.
var progressActivity = map[BadgeCategory]ActivityType{
	CategoryLogin:      ActivityLogin,
	CategoryCoffeeChat: ActivityCoffeeChatCompleted,
	CategoryLounge:     ActivityLoungeJoined,
	CategoryNetworking: ActivityMatchFound,
	CategoryEngagement: ActivityLoungeMessageSent,
}

// BadgeCategory is the category whose badges this activity can unlock.
func (t ActivityType) BadgeCategory() (BadgeCategory, bool) {
	for c, a := range progressActivity {
		if a == t {
			return c, true
		}
	}
	return "", false
}

type ActivityLog struct {
	ID           int64        `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64        `gorm:"column:user_id;not null;index"`
	ActivityType ActivityType `gorm:"column:activity_type;size:40;not null"`
	EntityID     *int64       `gorm:"column:entity_id"`
	ActivityData string       `gorm:"column:activity_data;type:text"`
	PointsEarned int          `gorm:"column:points_earned;default:0"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// LeaderboardRow is one ranked line of the points leaderboard.
type LeaderboardRow struct {
	UserID            int64  `gorm:"column:user_id"`
	UserName          string `gorm:"column:user_name"`
	UserEmail         string `gorm:"column:user_email"`
	TotalPoints       int64  `gorm:"column:total_points"`
	TotalBadges       int64  `gorm:"column:total_badges"`
	LongestStreak     int    `gorm:"column:longest_streak"`
	LongestStreakType string `gorm:"column:longest_streak_type"`
	Rank              int    `gorm:"column:rank"`
}
