package analytics

import (
	"time"

	"gorm.io/datatypes"
)

// Day truncates t to its calendar date in t's location.
func Day(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

type MetricType string

const (
	MetricDailyActiveUsers       MetricType = "DAILY_ACTIVE_USERS"
	MetricWeeklyActiveUsers      MetricType = "WEEKLY_ACTIVE_USERS"
	MetricMonthlyActiveUsers     MetricType = "MONTHLY_ACTIVE_USERS"
	MetricTotalConversations     MetricType = "TOTAL_CONVERSATIONS"
	MetricTotalVideoCalls        MetricType = "TOTAL_VIDEO_CALLS"
	MetricAverageSessionDuration MetricType = "AVERAGE_SESSION_DURATION"
	MetricBadgesEarned           MetricType = "BADGES_EARNED"
	MetricStreaksMaintained      MetricType = "STREAKS_MAINTAINED"
	MetricEmployeeSatisfaction   MetricType = "EMPLOYEE_SATISFACTION"
	MetricResponseRate           MetricType = "RESPONSE_RATE"
	MetricMentorshipMatches      MetricType = "MENTORSHIP_MATCHES"
	MetricTopicEngagement        MetricType = "TOPIC_ENGAGEMENT"
)

type PeriodType string

const (
	PeriodDaily     PeriodType = "DAILY"
	PeriodWeekly    PeriodType = "WEEKLY"
	PeriodMonthly   PeriodType = "MONTHLY"
	PeriodQuarterly PeriodType = "QUARTERLY"
	PeriodYearly    PeriodType = "YEARLY"
)

// Data is one company (or department) metric sample for a period.
type Data struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID    *int64         `gorm:"column:company_id;index"`
	DepartmentID *int64         `gorm:"column:department_id"`
	MetricType   MetricType     `gorm:"column:metric_type;size:40;not null"`
	MetricValue  *float64       `gorm:"column:metric_value"`
	MetricCount  *int           `gorm:"column:metric_count"`
	Date         datatypes.Date `gorm:"column:date;not null"`
	PeriodType   PeriodType     `gorm:"column:period_type;size:20;not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Data) TableName() string {
	return "analytics_data"
}

// PlatformDay is the platform-wide rollup for one date.
type PlatformDay struct {
	ID                       int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Date                     datatypes.Date `gorm:"column:date;not null;uniqueIndex"`
	TotalUsers               int64          `gorm:"column:total_users;not null;default:0"`
	NewUsersToday            int64          `gorm:"column:new_users_today;not null;default:0"`
	ActiveUsersToday         int64          `gorm:"column:active_users_today;not null;default:0"`
	ActiveUsersWeek          int64          `gorm:"column:active_users_week;not null;default:0"`
	ActiveUsersMonth         int64          `gorm:"column:active_users_month;not null;default:0"`
	TotalMatches             int64          `gorm:"column:total_matches;not null;default:0"`
	MatchesCreatedToday      int64          `gorm:"column:matches_created_today;not null;default:0"`
	MatchesAcceptedToday     int64          `gorm:"column:matches_accepted_today;not null;default:0"`
	MatchesCompletedToday    int64          `gorm:"column:matches_completed_today;not null;default:0"`
	MatchSuccessRate         float64        `gorm:"column:match_success_rate;not null;default:0"`
	MeetingsScheduledToday   int64          `gorm:"column:meetings_scheduled_today;not null;default:0"`
	MeetingsCompletedToday   int64          `gorm:"column:meetings_completed_today;not null;default:0"`
	AverageMeetingDuration   float64        `gorm:"column:average_meeting_duration;not null;default:0"`
	MeetingCompletionRate    float64        `gorm:"column:meeting_completion_rate;not null;default:0"`
	TotalLounges             int64          `gorm:"column:total_lounges;not null;default:0"`
	ActiveLoungesToday       int64          `gorm:"column:active_lounges_today;not null;default:0"`
	MessagesSentToday        int64          `gorm:"column:messages_sent_today;not null;default:0"`
	LoungeParticipantsToday  int64          `gorm:"column:lounge_participants_today;not null;default:0"`
	AverageSessionDuration   float64        `gorm:"column:average_session_duration;not null;default:0"`
	UserInteractionsToday    int64          `gorm:"column:user_interactions_today;not null;default:0"`
	FeedbackSubmissionsToday int64          `gorm:"column:feedback_submissions_today;not null;default:0"`
	AverageFeedbackRating    float64        `gorm:"column:average_feedback_rating;not null;default:0"`
	UserGrowthRate           float64        `gorm:"column:user_growth_rate;not null;default:0"`
	RetentionRate7Day        float64        `gorm:"column:retention_rate_7_day;not null;default:0"`
	RetentionRate30Day       float64        `gorm:"column:retention_rate_30_day;not null;default:0"`
	CreatedAt                time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (PlatformDay) TableName() string {
	return "platform_analytics"
}

// UserDay holds one user's activity counters for a date.
type UserDay struct {
	ID                          int64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID                      int64          `gorm:"column:user_id;not null;index"`
	Date                        datatypes.Date `gorm:"column:date;not null"`
	LoginCount                  int            `gorm:"column:login_count;not null;default:0"`
	SessionDurationMinutes      int            `gorm:"column:session_duration_minutes;not null;default:0"`
	PagesVisited                int            `gorm:"column:pages_visited;not null;default:0"`
	ActionsPerformed            int            `gorm:"column:actions_performed;not null;default:0"`
	MatchesInitiated            int            `gorm:"column:matches_initiated;not null;default:0"`
	MatchesReceived             int            `gorm:"column:matches_received;not null;default:0"`
	MatchesAccepted             int            `gorm:"column:matches_accepted;not null;default:0"`
	MatchesRejected             int            `gorm:"column:matches_rejected;not null;default:0"`
	MatchesCompleted            int            `gorm:"column:matches_completed;not null;default:0"`
	MessagesSent                int            `gorm:"column:messages_sent;not null;default:0"`
	MessagesReceived            int            `gorm:"column:messages_received;not null;default:0"`
	ConversationsStarted        int            `gorm:"column:conversations_started;not null;default:0"`
	MeetingsScheduled           int            `gorm:"column:meetings_scheduled;not null;default:0"`
	MeetingsAttended            int            `gorm:"column:meetings_attended;not null;default:0"`
	MeetingsCompleted           int            `gorm:"column:meetings_completed;not null;default:0"`
	TotalMeetingDurationMinutes int            `gorm:"column:total_meeting_duration_minutes;not null;default:0"`
	LoungesJoined               int            `gorm:"column:lounges_joined;not null;default:0"`
	LoungeMessagesSent          int            `gorm:"column:lounge_messages_sent;not null;default:0"`
	LoungesCreated              int            `gorm:"column:lounges_created;not null;default:0"`
	FeedbackGiven               int            `gorm:"column:feedback_given;not null;default:0"`
	AverageRatingGiven          float64        `gorm:"column:average_rating_given;not null;default:0"`
	FeedbackReceived            int            `gorm:"column:feedback_received;not null;default:0"`
	AverageRatingReceived       float64        `gorm:"column:average_rating_received;not null;default:0"`
	ProfileViews                int            `gorm:"column:profile_views;not null;default:0"`
	ProfileViewedByOthers       int            `gorm:"column:profile_viewed_by_others;not null;default:0"`
	SearchQueries               int            `gorm:"column:search_queries;not null;default:0"`
	FeatureUsageScore           float64        `gorm:"column:feature_usage_score;not null;default:0"`
	CurrentLoginStreak          int            `gorm:"column:current_login_streak;not null;default:0"`
	CurrentMatchStreak          int            `gorm:"column:current_match_streak;not null;default:0"`
	CurrentLoungeStreak         int            `gorm:"column:current_lounge_streak;not null;default:0"`
	CreatedAt                   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserDay) TableName() string {
	return "user_analytics"
}

type BehaviorType string

const (
	BehaviorLogin               BehaviorType = "LOGIN"
	BehaviorLogout              BehaviorType = "LOGOUT"
	BehaviorProfileView         BehaviorType = "PROFILE_VIEW"
	BehaviorProfileUpdate       BehaviorType = "PROFILE_UPDATE"
	BehaviorMatchRequest        BehaviorType = "MATCH_REQUEST"
	BehaviorMatchAccept         BehaviorType = "MATCH_ACCEPT"
	BehaviorMatchReject         BehaviorType = "MATCH_REJECT"
	BehaviorCoffeeChatStart     BehaviorType = "COFFEE_CHAT_START"
	BehaviorCoffeeChatEnd       BehaviorType = "COFFEE_CHAT_END"
	BehaviorLoungeJoin          BehaviorType = "LOUNGE_JOIN"
	BehaviorLoungeLeave         BehaviorType = "LOUNGE_LEAVE"
	BehaviorLoungeMessage       BehaviorType = "LOUNGE_MESSAGE"
	BehaviorBadgeEarned         BehaviorType = "BADGE_EARNED"
	BehaviorStreakMaintained    BehaviorType = "STREAK_MAINTAINED"
	BehaviorMentorshipJoin      BehaviorType = "MENTORSHIP_JOIN"
	BehaviorMentorshipSession   BehaviorType = "MENTORSHIP_SESSION"
	BehaviorContentView         BehaviorType = "CONTENT_VIEW"
	BehaviorContentLike         BehaviorType = "CONTENT_LIKE"
	BehaviorContentShare        BehaviorType = "CONTENT_SHARE"
	BehaviorSearchQuery         BehaviorType = "SEARCH_QUERY"
	BehaviorNotificationOpen    BehaviorType = "NOTIFICATION_OPEN"
	BehaviorNotificationDismiss BehaviorType = "NOTIFICATION_DISMISS"
	BehaviorFeedbackSubmit      BehaviorType = "FEEDBACK_SUBMIT"
	BehaviorRatingGive          BehaviorType = "RATING_GIVE"
	BehaviorPreferenceUpdate    BehaviorType = "PREFERENCE_UPDATE"
)

type Behavior struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement"`
	UserID          int64          `gorm:"column:user_id;not null;index"`
	BehaviorType    BehaviorType   `gorm:"column:behavior_type;size:40;not null"`
	TargetID        *int64         `gorm:"column:target_id"`
	TargetType      string         `gorm:"column:target_type;size:50"`
	Context         string         `gorm:"column:context;type:text"`
	Metadata        datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	SessionID       string         `gorm:"column:session_id;size:100"`
	Timestamp       time.Time      `gorm:"column:timestamp;not null"`
	DurationSeconds *int           `gorm:"column:duration_seconds"`
	IntensityScore  *float64       `gorm:"column:intensity_score"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Behavior) TableName() string {
	return "user_behaviors"
}

type InteractionType string

const (
	InteractionProfileView      InteractionType = "PROFILE_VIEW"
	InteractionMatchAccepted    InteractionType = "MATCH_ACCEPTED"
	InteractionMatchRejected    InteractionType = "MATCH_REJECTED"
	InteractionMessageSent      InteractionType = "MESSAGE_SENT"
	InteractionMeetingCompleted InteractionType = "MEETING_COMPLETED"
	InteractionSkillSearch      InteractionType = "SKILL_SEARCH"
	InteractionInterestSearch   InteractionType = "INTEREST_SEARCH"
	InteractionLoungeJoined     InteractionType = "LOUNGE_JOINED"
	InteractionFeedbackGiven    InteractionType = "FEEDBACK_GIVEN"
)

type Interaction struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64           `gorm:"column:user_id;not null;index"`
	TargetUserID     *int64          `gorm:"column:target_user_id"`
	InteractionType  InteractionType `gorm:"column:interaction_type;size:30;not null"`
	InteractionValue string          `gorm:"column:interaction_value;size:255"`
	Weight           float64         `gorm:"column:weight;not null;default:1"`
	ContextData      string          `gorm:"column:context_data;type:text"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Interaction) TableName() string {
	return "user_interactions"
}

type InsightType string

const (
	InsightMatchingImprovement    InsightType = "MATCHING_IMPROVEMENT"
	InsightSkillDevelopment       InsightType = "SKILL_DEVELOPMENT"
	InsightNetworkingOpportunity  InsightType = "NETWORKING_OPPORTUNITY"
	InsightContentRecommendation  InsightType = "CONTENT_RECOMMENDATION"
	InsightGoalAchievement        InsightType = "GOAL_ACHIEVEMENT"
	InsightBehaviorPattern        InsightType = "BEHAVIOR_PATTERN"
	InsightEngagementOptimization InsightType = "ENGAGEMENT_OPTIMIZATION"
	InsightCareerGrowth           InsightType = "CAREER_GROWTH"
	InsightMentorshipSuggestion   InsightType = "MENTORSHIP_SUGGESTION"
	InsightActivityRecommendation InsightType = "ACTIVITY_RECOMMENDATION"
)

type Insight struct {
	ID              int64       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID          int64       `gorm:"column:user_id;not null;index"`
	InsightType     InsightType `gorm:"column:insight_type;size:40;not null"`
	Title           string      `gorm:"column:title;size:200;not null"`
	Description     string      `gorm:"column:description;type:text"`
	Recommendation  string      `gorm:"column:recommendation;type:text"`
	ConfidenceScore *float64    `gorm:"column:confidence_score"`
	PriorityLevel   *int        `gorm:"column:priority_level"`
	Category        string      `gorm:"column:category;size:50"`
	Tags            string      `gorm:"column:tags;size:255"`
	ActionURL       string      `gorm:"column:action_url;size:255"`
	IsRead          bool        `gorm:"column:is_read;not null;default:false"`
	IsActioned      bool        `gorm:"column:is_actioned;not null;default:false"`
	FeedbackRating  *int        `gorm:"column:feedback_rating"`
	FeedbackComment string      `gorm:"column:feedback_comment;type:text"`
	ExpiresAt       *time.Time  `gorm:"column:expires_at"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Insight) TableName() string {
	return "user_insights"
}
