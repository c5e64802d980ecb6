package analytics_test

import (
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	t.Run("empty series is stable", func(t *testing.T) {
		s := analytics.Summarize(nil)

		assert.Equal(t, analytics.TrendStable, s.Trend)
		assert.Zero(t, s.TotalValue)
		assert.Zero(t, s.GrowthRate)
	})

	t.Run("aggregates values and counts", func(t *testing.T) {
		s := analytics.Summarize([]analytics.DataPoint{
			{Value: floatPtr(10), Count: intPtr(2)},
			{Count: intPtr(3)},
			{Value: floatPtr(20)},
			{Value: floatPtr(15), Count: intPtr(1)},
		})

		assert.Equal(t, 45.0, s.TotalValue)
		assert.Equal(t, 6, s.TotalCount)
		assert.Equal(t, 15.0, s.AverageValue)
		assert.Equal(t, 10.0, s.MinValue)
		assert.Equal(t, 20.0, s.MaxValue)
		assert.Equal(t, 50.0, s.GrowthRate)
		assert.Equal(t, analytics.TrendUp, s.Trend)
	})

	t.Run("falling series", func(t *testing.T) {
		s := analytics.Summarize([]analytics.DataPoint{{Value: floatPtr(200)}, {Value: floatPtr(150)}})

		assert.Equal(t, -25.0, s.GrowthRate)
		assert.Equal(t, analytics.TrendDown, s.Trend)
	})

	t.Run("small moves are stable", func(t *testing.T) {
		s := analytics.Summarize([]analytics.DataPoint{{Value: floatPtr(100)}, {Value: floatPtr(104)}})

		assert.Equal(t, 4.0, s.GrowthRate)
		assert.Equal(t, analytics.TrendStable, s.Trend)
	})

	t.Run("zero start has no growth", func(t *testing.T) {
		s := analytics.Summarize([]analytics.DataPoint{{Value: floatPtr(0)}, {Value: floatPtr(9)}})

		assert.Zero(t, s.GrowthRate)
		assert.Equal(t, analytics.TrendStable, s.Trend)
	})
}

func TestSeriesFromData(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := []analytics.Data{
		{MetricType: analytics.MetricBadgesEarned, Date: analytics.Day(day), MetricValue: floatPtr(4)},
		{MetricType: analytics.MetricBadgesEarned, Date: analytics.Day(day.AddDate(0, 0, 1)), MetricValue: floatPtr(8)},
	}

	out := analytics.SeriesFromData(analytics.MetricBadgesEarned, analytics.PeriodDaily, day, day.AddDate(0, 0, 1), rows)

	assert.Len(t, out.DataPoints, 2)
	assert.Equal(t, day, out.DataPoints[0].Date)
	assert.Equal(t, 100.0, out.Summary.GrowthRate)
	assert.Equal(t, 12.0, out.Summary.TotalValue)
}

func TestDay(t *testing.T) {
	d := analytics.Day(time.Date(2026, 3, 2, 17, 45, 12, 9, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Time(d))
}

func TestInsightDisplays(t *testing.T) {
	assert.Equal(t, "networking opportunity", analytics.InsightTypeDisplay(analytics.InsightNetworkingOpportunity))

	assert.Equal(t, "Normal", analytics.PriorityDisplay(nil))
	assert.Equal(t, "Low", analytics.PriorityDisplay(intPtr(1)))
	assert.Equal(t, "Normal", analytics.PriorityDisplay(intPtr(2)))
	assert.Equal(t, "High", analytics.PriorityDisplay(intPtr(3)))
	assert.Equal(t, "Critical", analytics.PriorityDisplay(intPtr(4)))
	assert.Equal(t, "Normal", analytics.PriorityDisplay(intPtr(9)))

	assert.Equal(t, "Unknown", analytics.ConfidenceDisplay(nil))
	assert.Equal(t, "High", analytics.ConfidenceDisplay(floatPtr(0.8)))
	assert.Equal(t, "Medium", analytics.ConfidenceDisplay(floatPtr(0.6)))
	assert.Equal(t, "Low", analytics.ConfidenceDisplay(floatPtr(0.59)))

	assert.Equal(t, "Expired", analytics.StatusDisplay(true, true, true))
	assert.Equal(t, "Actioned", analytics.StatusDisplay(false, true, true))
	assert.Equal(t, "Read", analytics.StatusDisplay(false, false, true))
	assert.Equal(t, "New", analytics.StatusDisplay(false, false, false))
}

func TestInsightFromEntity(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("expired wins over read", func(t *testing.T) {
		dto := analytics.InsightFromEntity(analytics.Insight{ID: 1, IsRead: true, ExpiresAt: &past}, now)

		assert.True(t, dto.IsExpired)
		assert.Equal(t, "Expired", dto.StatusDisplay)
	})

	t.Run("live insight", func(t *testing.T) {
		dto := analytics.InsightFromEntity(analytics.Insight{
			ID:              1,
			InsightType:     analytics.InsightCareerGrowth,
			IsRead:          true,
			ExpiresAt:       &future,
			PriorityLevel:   intPtr(3),
			ConfidenceScore: floatPtr(0.7),
		}, now)

		assert.False(t, dto.IsExpired)
		assert.Equal(t, "Read", dto.StatusDisplay)
		assert.Equal(t, "career growth", dto.InsightTypeDisplay)
		assert.Equal(t, "High", dto.PriorityDisplay)
		assert.Equal(t, "Medium", dto.ConfidenceDisplay)
	})

	t.Run("no expiry never expires", func(t *testing.T) {
		assert.False(t, analytics.Insight{}.IsExpired(now))
	})
}

func TestEngagementLevel(t *testing.T) {
	assert.Equal(t, analytics.EngagementVeryHigh, analytics.EngagementLevel(24, 30))
	assert.Equal(t, analytics.EngagementHigh, analytics.EngagementLevel(18, 30))
	assert.Equal(t, analytics.EngagementMedium, analytics.EngagementLevel(12, 30))
	assert.Equal(t, analytics.EngagementLow, analytics.EngagementLevel(11, 30))
	assert.Equal(t, analytics.EngagementLow, analytics.EngagementLevel(5, 0))
}

func TestOverviewFromDays(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	window := []analytics.PlatformDay{
		{Date: analytics.Day(day), UserGrowthRate: 1.5, MatchSuccessRate: 40, UserInteractionsToday: 12},
	}

	out := analytics.OverviewFromDays(analytics.PlatformDay{TotalUsers: 90, MessagesSentToday: 4}, window)

	assert.Equal(t, int64(90), out.TotalUsers)
	assert.Equal(t, int64(4), out.MessagesSentToday)
	assert.Equal(t, []analytics.DailyMetricDTO{{Date: day, Value: 1.5, Label: "User Growth"}}, out.UserGrowthTrend)
	assert.Equal(t, 40.0, out.MatchSuccessTrend[0].Value)
	assert.Equal(t, 12.0, out.EngagementTrend[0].Value)
	assert.NotNil(t, out.MostActiveUsers)
}

func TestDeriveInsights(t *testing.T) {
	behaviors := func(counts map[analytics.BehaviorType]int) []analytics.Behavior {
		var out []analytics.Behavior
		for bt, n := range counts {
			for j := 0; j < n; j++ {
				out = append(out, analytics.Behavior{BehaviorType: bt})
			}
		}
		return out
	}
	types := func(in []analytics.Insight) []analytics.InsightType {
		out := make([]analytics.InsightType, 0, len(in))
		for _, i := range in {
			out = append(out, i.InsightType)
		}
		return out
	}

	t.Run("new user", func(t *testing.T) {
		out := analytics.DeriveInsights(7, nil)

		assert.ElementsMatch(t, []analytics.InsightType{
			analytics.InsightSkillDevelopment,
			analytics.InsightNetworkingOpportunity,
		}, types(out))
		assert.Equal(t, int64(7), out[0].UserID)
		assert.Contains(t, out[1].Description, "only had 0 coffee chat(s)")
	})

	t.Run("low acceptance rate", func(t *testing.T) {
		out := analytics.DeriveInsights(7, behaviors(map[analytics.BehaviorType]int{
			analytics.BehaviorMatchRequest:    10,
			analytics.BehaviorMatchAccept:     2,
			analytics.BehaviorBadgeEarned:     1,
			analytics.BehaviorCoffeeChatStart: 3,
		}))

		assert.Equal(t, []analytics.InsightType{analytics.InsightMatchingImprovement}, types(out))
		assert.Contains(t, out[0].Description, "20.0%")
	})

	t.Run("active without profile updates and a streak", func(t *testing.T) {
		out := analytics.DeriveInsights(7, behaviors(map[analytics.BehaviorType]int{
			analytics.BehaviorLogin:             4,
			analytics.BehaviorStreakMaintained:  1,
			analytics.BehaviorMentorshipSession: 1,
			analytics.BehaviorCoffeeChatStart:   5,
		}))

		assert.ElementsMatch(t, []analytics.InsightType{
			analytics.InsightEngagementOptimization,
			analytics.InsightCareerGrowth,
		}, types(out))
	})
}
