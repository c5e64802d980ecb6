package analytics

import (
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Trend labels for a metric series.
const (
	TrendUp     = "UP"
	TrendDown   = "DOWN"
	TrendStable = "STABLE"
)

// trendThreshold is the growth percentage a series must exceed to count as
// moving.
const trendThreshold = 5.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type DataPoint struct {
	Date  time.Time `json:"date"`
	Value *float64  `json:"value,omitempty"`
	Count *int      `json:"count,omitempty"`
	Label string    `json:"label,omitempty"`
}

type Summary struct {
	TotalValue   float64 `json:"total_value"`
	TotalCount   int     `json:"total_count"`
	AverageValue float64 `json:"average_value"`
	MinValue     float64 `json:"min_value"`
	MaxValue     float64 `json:"max_value"`
	GrowthRate   float64 `json:"growth_rate"`
	Trend        string  `json:"trend"`
}

// Summarize aggregates points in date order. Points without a value count
// toward TotalCount only. GrowthRate compares the last valued point with the
// first, in percent.
func Summarize(points []DataPoint) Summary {
	s := Summary{Trend: TrendStable}
	var values []float64
	for _, p := range points {
		if p.Count != nil {
			s.TotalCount += *p.Count
		}
		if p.Value != nil {
			values = append(values, *p.Value)
		}
	}
	if len(values) == 0 {
		return s
	}

	s.MinValue, s.MaxValue = values[0], values[0]
	for _, v := range values {
		s.TotalValue += v
		s.MinValue = math.Min(s.MinValue, v)
		s.MaxValue = math.Max(s.MaxValue, v)
	}
	s.TotalValue = round2(s.TotalValue)
	s.AverageValue = round2(s.TotalValue / float64(len(values)))

	first, last := values[0], values[len(values)-1]
	if first != 0 {
		s.GrowthRate = round2((last - first) / math.Abs(first) * 100)
	}
	switch {
	case s.GrowthRate > trendThreshold:
		s.Trend = TrendUp
	case s.GrowthRate < -trendThreshold:
		s.Trend = TrendDown
	}
	return s
}

type MetricSeriesDTO struct {
	MetricType MetricType  `json:"metric_type"`
	PeriodType PeriodType  `json:"period_type"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	DataPoints []DataPoint `json:"data_points"`
	Summary    Summary     `json:"summary"`
}

func SeriesFromData(metric MetricType, period PeriodType, from, to time.Time, rows []Data) MetricSeriesDTO {
	points := make([]DataPoint, 0, len(rows))
	for _, d := range rows {
		points = append(points, DataPoint{
			Date:  time.Time(d.Date),
			Value: d.MetricValue,
			Count: d.MetricCount,
		})
	}
	return MetricSeriesDTO{
		MetricType: metric,
		PeriodType: period,
		StartDate:  from,
		EndDate:    to,
		DataPoints: points,
		Summary:    Summarize(points),
	}
}

type DataDTO struct {
	ID           int64      `json:"id"`
	CompanyID    *int64     `json:"company_id,omitempty"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	MetricType   MetricType `json:"metric_type"`
	MetricValue  *float64   `json:"metric_value,omitempty"`
	MetricCount  *int       `json:"metric_count,omitempty"`
	Date         time.Time  `json:"date"`
	PeriodType   PeriodType `json:"period_type"`
}

func DataFromEntity(d Data) DataDTO {
	return DataDTO{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		DepartmentID: d.DepartmentID,
		MetricType:   d.MetricType,
		MetricValue:  d.MetricValue,
		MetricCount:  d.MetricCount,
		Date:         time.Time(d.Date),
		PeriodType:   d.PeriodType,
	}
}

type DailyMetricDTO struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Label string    `json:"label"`
}

type TopUserDTO struct {
	UserID int64   `json:"user_id"`
	Name   string  `json:"name,omitempty"`
	Value  float64 `json:"value"`
}

type OverviewDTO struct {
	TotalUsers             int64            `json:"total_users"`
	ActiveUsersToday       int64            `json:"active_users_today"`
	NewUsersToday          int64            `json:"new_users_today"`
	UserGrowthRate         float64          `json:"user_growth_rate"`
	TotalMatches           int64            `json:"total_matches"`
	MatchesCreatedToday    int64            `json:"matches_created_today"`
	MatchSuccessRate       float64          `json:"match_success_rate"`
	MatchesCompletedToday  int64            `json:"matches_completed_today"`
	MeetingsScheduledToday int64            `json:"meetings_scheduled_today"`
	MeetingsCompletedToday int64            `json:"meetings_completed_today"`
	MeetingCompletionRate  float64          `json:"meeting_completion_rate"`
	AverageMeetingDuration float64          `json:"average_meeting_duration"`
	TotalLounges           int64            `json:"total_lounges"`
	ActiveLoungesToday     int64            `json:"active_lounges_today"`
	MessagesSentToday      int64            `json:"messages_sent_today"`
	AverageFeedbackRating  float64          `json:"average_feedback_rating"`
	UserGrowthTrend        []DailyMetricDTO `json:"user_growth_trend"`
	MatchSuccessTrend      []DailyMetricDTO `json:"match_success_trend"`
	EngagementTrend        []DailyMetricDTO `json:"engagement_trend"`
	MostActiveUsers        []TopUserDTO     `json:"most_active_users"`
	TopEngagedUsers        []TopUserDTO     `json:"top_engaged_users"`
}

// OverviewFromDays builds the overview from today's rollup (zero when
// missing) and the trend window, newest first.
func OverviewFromDays(today PlatformDay, window []PlatformDay) OverviewDTO {
	o := OverviewDTO{
		TotalUsers:             today.TotalUsers,
		ActiveUsersToday:       today.ActiveUsersToday,
		NewUsersToday:          today.NewUsersToday,
		UserGrowthRate:         today.UserGrowthRate,
		TotalMatches:           today.TotalMatches,
		MatchesCreatedToday:    today.MatchesCreatedToday,
		MatchSuccessRate:       today.MatchSuccessRate,
		MatchesCompletedToday:  today.MatchesCompletedToday,
		MeetingsScheduledToday: today.MeetingsScheduledToday,
		MeetingsCompletedToday: today.MeetingsCompletedToday,
		MeetingCompletionRate:  today.MeetingCompletionRate,
		AverageMeetingDuration: today.AverageMeetingDuration,
		TotalLounges:           today.TotalLounges,
		ActiveLoungesToday:     today.ActiveLoungesToday,
		MessagesSentToday:      today.MessagesSentToday,
		AverageFeedbackRating:  today.AverageFeedbackRating,
		UserGrowthTrend:        make([]DailyMetricDTO, 0, len(window)),
		MatchSuccessTrend:      make([]DailyMetricDTO, 0, len(window)),
		EngagementTrend:        make([]DailyMetricDTO, 0, len(window)),
		MostActiveUsers:        []TopUserDTO{},
		TopEngagedUsers:        []TopUserDTO{},
	}
	for _, d := range window {
		date := time.Time(d.Date)
		o.UserGrowthTrend = append(o.UserGrowthTrend, DailyMetricDTO{Date: date, Value: d.UserGrowthRate, Label: "User Growth"})
		o.MatchSuccessTrend = append(o.MatchSuccessTrend, DailyMetricDTO{Date: date, Value: d.MatchSuccessRate, Label: "Match Success"})
		o.EngagementTrend = append(o.EngagementTrend, DailyMetricDTO{Date: date, Value: float64(d.UserInteractionsToday), Label: "User Interactions"})
	}
	return o
}

type CountDTO struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func countsFrom(rows []ValueCount) []CountDTO {
	out := make([]CountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, CountDTO{Value: r.Value, Count: r.Total})
	}
	return out
}

// Engagement levels, by share of active days in the window.
const (
	EngagementVeryHigh = "VERY_HIGH"
	EngagementHigh     = "HIGH"
	EngagementMedium   = "MEDIUM"
	EngagementLow      = "LOW"
)

func EngagementLevel(activeDays, windowDays int) string {
	if windowDays <= 0 {
		return EngagementLow
	}
	ratio := float64(activeDays) / float64(windowDays)
	switch {
	case ratio >= 0.8:
		return EngagementVeryHigh
	case ratio >= 0.6:
		return EngagementHigh
	case ratio >= 0.4:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

type UserStatsDTO struct {
	UserID                int64            `json:"user_id"`
	WindowDays            int              `json:"window_days"`
	ActiveDays            int              `json:"active_days"`
	TotalLogins           int              `json:"total_logins"`
	TotalSessionMinutes   int64            `json:"total_session_minutes"`
	TotalActions          int              `json:"total_actions"`
	MatchesCompleted      int64            `json:"matches_completed"`
	MessagesSent          int              `json:"messages_sent"`
	MeetingsCompleted     int              `json:"meetings_completed"`
	AverageRatingReceived *float64         `json:"average_rating_received,omitempty"`
	EngagementLevel       string           `json:"engagement_level"`
	ActivityTrend         []DailyMetricDTO `json:"activity_trend"`
	BehaviorDistribution  []CountDTO       `json:"behavior_distribution"`
	TopSkillSearches      []CountDTO       `json:"top_skill_searches"`
	UnreadInsights        int64            `json:"unread_insights"`
	ActionedInsights      int64            `json:"actioned_insights"`
}

func InsightTypeDisplay(t InsightType) string {
	return strings.ToLower(strings.ReplaceAll(string(t), "_", " "))
}

func PriorityDisplay(level *int) string {
	if level == nil {
		return "Normal"
	}
	switch *level {
	case 1:
		return "Low"
	case 3:
		return "High"
	case 4:
		return "Critical"
	default:
		return "Normal"
	}
}

func ConfidenceDisplay(score *float64) string {
	switch {
	case score == nil:
		return "Unknown"
	case *score >= 0.8:
		return "High"
	case *score >= 0.6:
		return "Medium"
	default:
		return "Low"
	}
}

func (in Insight) IsExpired(now time.Time) bool {
	return in.ExpiresAt != nil && now.After(*in.ExpiresAt)
}

// StatusDisplay ranks expiry over actioned over read.
func StatusDisplay(expired, actioned, read bool) string {
	switch {
	case expired:
		return "Expired"
	case actioned:
		return "Actioned"
	case read:
		return "Read"
	default:
		return "New"
	}
}

type InsightDTO struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user_id"`
	InsightType        InsightType `json:"insight_type"`
	InsightTypeDisplay string      `json:"insight_type_display"`
	Title              string      `json:"title"`
	Description        string      `json:"description,omitempty"`
	Recommendation     string      `json:"recommendation,omitempty"`
	ConfidenceScore    *float64    `json:"confidence_score,omitempty"`
	ConfidenceDisplay  string      `json:"confidence_display"`
	PriorityLevel      *int        `json:"priority_level,omitempty"`
	PriorityDisplay    string      `json:"priority_display"`
	Category           string      `json:"category,omitempty"`
	Tags               string      `json:"tags,omitempty"`
	ActionURL          string      `json:"action_url,omitempty"`
	IsRead             bool        `json:"is_read"`
	IsActioned         bool        `json:"is_actioned"`
	IsExpired          bool        `json:"is_expired"`
	StatusDisplay      string      `json:"status_display"`
	FeedbackRating     *int        `json:"feedback_rating,omitempty"`
	FeedbackComment    string      `json:"feedback_comment,omitempty"`
	ExpiresAt          *time.Time  `json:"expires_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func InsightFromEntity(in Insight, now time.Time) InsightDTO {
	expired := in.IsExpired(now)
	return InsightDTO{
		ID:                 in.ID,
		UserID:             in.UserID,
		InsightType:        in.InsightType,
		InsightTypeDisplay: InsightTypeDisplay(in.InsightType),
		Title:              in.Title,
		Description:        in.Description,
		Recommendation:     in.Recommendation,
		ConfidenceScore:    in.ConfidenceScore,
		ConfidenceDisplay:  ConfidenceDisplay(in.ConfidenceScore),
		PriorityLevel:      in.PriorityLevel,
		PriorityDisplay:    PriorityDisplay(in.PriorityLevel),
		Category:           in.Category,
		Tags:               in.Tags,
		ActionURL:          in.ActionURL,
		IsRead:             in.IsRead,
		IsActioned:         in.IsActioned,
		IsExpired:          expired,
		StatusDisplay:      StatusDisplay(expired, in.IsActioned, in.IsRead),
		FeedbackRating:     in.FeedbackRating,
		FeedbackComment:    in.FeedbackComment,
		ExpiresAt:          in.ExpiresAt,
		CreatedAt:          in.CreatedAt,
		UpdatedAt:          in.UpdatedAt,
	}
}

type TrackBehaviorRequest struct {
	BehaviorType    BehaviorType   `json:"behavior_type" binding:"required"`
	TargetID        *int64         `json:"target_id"`
	TargetType      string         `json:"target_type" binding:"max=50"`
	Context         string         `json:"context"`
	Metadata        datatypes.JSON `json:"metadata"`
	SessionID       string         `json:"session_id" binding:"max=100"`
	DurationSeconds *int           `json:"duration_seconds" binding:"omitempty,min=0"`
	IntensityScore  *float64       `json:"intensity_score" binding:"omitempty,min=0,max=1"`
}

type TrackBatchRequest struct {
	Behaviors []TrackBehaviorRequest `json:"behaviors" binding:"required,min=1,max=100,dive"`
}

type RecordInteractionRequest struct {
	InteractionType  InteractionType `json:"interaction_type" binding:"required"`
	TargetUserID     *int64          `json:"target_user_id"`
	InteractionValue string          `json:"interaction_value" binding:"max=255"`
	Weight           *float64        `json:"weight" binding:"omitempty,gt=0"`
	ContextData      string          `json:"context_data"`
}

type RecordMetricRequest struct {
	MetricType   MetricType `json:"metric_type" binding:"required"`
	PeriodType   PeriodType `json:"period_type" binding:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
	DepartmentID *int64     `json:"department_id"`
	Date         time.Time  `json:"date" binding:"required"`
	MetricValue  *float64   `json:"metric_value"`
	MetricCount  *int       `json:"metric_count" binding:"omitempty,min=0"`
}

type SeriesQuery struct {
	MetricType   MetricType `form:"metric" binding:"required"`
	PeriodType   PeriodType `form:"period" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
	DepartmentID *int64     `form:"department_id"`
	From         time.Time  `form:"from" time_format:"2006-01-02" binding:"required"`
	To           time.Time  `form:"to" time_format:"2006-01-02" binding:"required"`
}

type InsightFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}
