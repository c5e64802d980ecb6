package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics"
	analyticserrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/errors"
	analyticsMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type analyticsDeps struct {
	service      analytics.Service
	data         *analyticsMock.MockDataRepository
	platform     *analyticsMock.MockPlatformRepository
	userDays     *analyticsMock.MockUserDayRepository
	behaviors    *analyticsMock.MockBehaviorRepository
	interactions *analyticsMock.MockInteractionRepository
	insights     *analyticsMock.MockInsightRepository
	users        *analyticsMock.MockUserLookup
	userCount    *analyticsMock.MockCounter
	matchCount   *analyticsMock.MockCounter
	meetingCount *analyticsMock.MockCounter
	messageCount *analyticsMock.MockCounter
}

func setupAnalyticsTest(t *testing.T) *analyticsDeps {
	ctrl := gomock.NewController(t)
	d := &analyticsDeps{
		data:         analyticsMock.NewMockDataRepository(ctrl),
		platform:     analyticsMock.NewMockPlatformRepository(ctrl),
		userDays:     analyticsMock.NewMockUserDayRepository(ctrl),
		behaviors:    analyticsMock.NewMockBehaviorRepository(ctrl),
		interactions: analyticsMock.NewMockInteractionRepository(ctrl),
		insights:     analyticsMock.NewMockInsightRepository(ctrl),
		users:        analyticsMock.NewMockUserLookup(ctrl),
		userCount:    analyticsMock.NewMockCounter(ctrl),
		matchCount:   analyticsMock.NewMockCounter(ctrl),
		meetingCount: analyticsMock.NewMockCounter(ctrl),
		messageCount: analyticsMock.NewMockCounter(ctrl),
	}
	d.service = analytics.NewService(
		analytics.Repositories{
			Data:         d.data,
			Platform:     d.platform,
			UserDays:     d.userDays,
			Behaviors:    d.behaviors,
			Interactions: d.interactions,
			Insights:     d.insights,
		},
		analytics.RollupSources{
			Users:    d.userCount,
			Matches:  d.matchCount,
			Meetings: d.meetingCount,
			Messages: d.messageCount,
		},
		d.users,
	)
	return d
}

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestAnalyticsService_Overview(t *testing.T) {
	t.Run("missing rollup reads as zero", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.platform.EXPECT().FindByDate(gomock.Any(), testNow).Return(nil, gorm.ErrRecordNotFound)
		d.platform.EXPECT().FindBetween(gomock.Any(), testNow.AddDate(0, 0, -30), testNow).
			Return([]analytics.PlatformDay{{UserGrowthRate: 2}}, nil)
		d.userDays.EXPECT().FindMostActive(gomock.Any(), gomock.Any(), testNow, 10).
			Return([]analytics.UserScore{{UserID: 4, Score: 12.5}, {UserID: 5, Score: 3}}, nil)
		d.userDays.EXPECT().FindTopEngaged(gomock.Any(), gomock.Any(), testNow, 10).Return(nil, nil)
		d.users.EXPECT().FindByID(gomock.Any(), int64(4)).Return(&user.User{ID: 4, Name: "Ada"}, nil)
		d.users.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, gorm.ErrRecordNotFound)

		out, err := d.service.Overview(context.Background(), testNow)

		require.NoError(t, err)
		assert.Zero(t, out.TotalUsers)
		assert.Len(t, out.UserGrowthTrend, 1)
		assert.Equal(t, []analytics.TopUserDTO{
			{UserID: 4, Name: "Ada", Value: 12.5},
			{UserID: 5, Value: 3},
		}, out.MostActiveUsers)
		assert.Empty(t, out.TopEngagedUsers)
	})

	t.Run("repository failure", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		boom := errors.New("db down")
		d.platform.EXPECT().FindByDate(gomock.Any(), gomock.Any()).Return(&analytics.PlatformDay{}, nil).AnyTimes()
		d.platform.EXPECT().FindBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
		d.userDays.EXPECT().FindMostActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		d.userDays.EXPECT().FindTopEngaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := d.service.Overview(context.Background(), testNow)

		assert.ErrorIs(t, err, boom)
	})
}

func TestAnalyticsService_RollupDay(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1).Add(-time.Microsecond)
	epoch := time.Unix(0, 0).UTC()

	expectCounts := func(d *analyticsDeps) {
		d.userCount.EXPECT().CountCreatedBetween(gomock.Any(), epoch, end).Return(int64(100), nil)
		d.userCount.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(int64(5), nil)
		d.matchCount.EXPECT().CountCreatedBetween(gomock.Any(), epoch, end).Return(int64(40), nil)
		d.matchCount.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(int64(3), nil)
		d.meetingCount.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(int64(2), nil)
		d.messageCount.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(int64(17), nil)
		d.interactions.EXPECT().CountAllBetween(gomock.Any(), start, start.AddDate(0, 0, 1)).Return(int64(9), nil)
		d.userDays.EXPECT().FindActiveUserIDs(gomock.Any(), start).Return([]int64{1, 2}, nil)
	}

	t.Run("overwrites an existing row", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		expectCounts(d)
		d.platform.EXPECT().FindByDate(gomock.Any(), start.AddDate(0, 0, -1)).
			Return(&analytics.PlatformDay{TotalUsers: 80}, nil)
		d.platform.EXPECT().FindByDate(gomock.Any(), start).Return(&analytics.PlatformDay{ID: 9}, nil)
		d.platform.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, day *analytics.PlatformDay) error {
			assert.Equal(t, int64(9), day.ID)
			assert.Equal(t, start, time.Time(day.Date))
			assert.Equal(t, int64(100), day.TotalUsers)
			assert.Equal(t, int64(5), day.NewUsersToday)
			assert.Equal(t, int64(2), day.ActiveUsersToday)
			assert.Equal(t, int64(40), day.TotalMatches)
			assert.Equal(t, int64(3), day.MatchesCreatedToday)
			assert.Equal(t, int64(2), day.MeetingsScheduledToday)
			assert.Equal(t, int64(17), day.MessagesSentToday)
			assert.Equal(t, int64(9), day.UserInteractionsToday)
			assert.Equal(t, 25.0, day.UserGrowthRate)
			return nil
		})

		day, err := d.service.RollupDay(context.Background(), start.Add(15*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, int64(100), day.TotalUsers)
	})

	t.Run("first rollup has no growth", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		expectCounts(d)
		d.platform.EXPECT().FindByDate(gomock.Any(), start.AddDate(0, 0, -1)).Return(nil, gorm.ErrRecordNotFound)
		d.platform.EXPECT().FindByDate(gomock.Any(), start).Return(nil, gorm.ErrRecordNotFound)
		d.platform.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, day *analytics.PlatformDay) error {
			assert.Zero(t, day.ID)
			assert.Zero(t, day.UserGrowthRate)
			return nil
		})

		_, err := d.service.RollupDay(context.Background(), start)

		require.NoError(t, err)
	})
}

func TestAnalyticsService_MetricSeries(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 27)

	t.Run("unknown metric", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		_, err := d.service.MetricSeries(context.Background(), 3, analytics.SeriesQuery{MetricType: "NOPE", From: from, To: to})

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownMetric)
	})

	t.Run("reversed range", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		_, err := d.service.MetricSeries(context.Background(), 3, analytics.SeriesQuery{
			MetricType: analytics.MetricBadgesEarned, From: to, To: from,
		})

		assert.ErrorIs(t, err, analyticserrors.ErrInvalidDateRange)
	})

	t.Run("defaults to daily", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.data.EXPECT().FindByMetricAndRange(gomock.Any(), int64(3), analytics.MetricBadgesEarned, analytics.PeriodDaily, from, to).
			Return([]analytics.Data{{MetricValue: floatPtr(2)}}, nil)

		out, err := d.service.MetricSeries(context.Background(), 3, analytics.SeriesQuery{
			MetricType: analytics.MetricBadgesEarned, From: from, To: to,
		})

		require.NoError(t, err)
		assert.Equal(t, analytics.PeriodDaily, out.PeriodType)
		assert.Len(t, out.DataPoints, 1)
	})

	t.Run("department series keeps the requested metric", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		deptID := int64(8)
		d.data.EXPECT().FindByDepartmentAndRange(gomock.Any(), int64(3), deptID, analytics.PeriodWeekly, from, to).
			Return([]analytics.Data{
				{MetricType: analytics.MetricBadgesEarned, MetricValue: floatPtr(2)},
				{MetricType: analytics.MetricResponseRate, MetricValue: floatPtr(0.4)},
			}, nil)

		out, err := d.service.MetricSeries(context.Background(), 3, analytics.SeriesQuery{
			MetricType:   analytics.MetricBadgesEarned,
			PeriodType:   analytics.PeriodWeekly,
			DepartmentID: &deptID,
			From:         from,
			To:           to,
		})

		require.NoError(t, err)
		require.Len(t, out.DataPoints, 1)
		assert.Equal(t, 2.0, *out.DataPoints[0].Value)
	})
}

func TestAnalyticsService_CompanySnapshot(t *testing.T) {
	t.Run("falls back to the latest sample", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		metrics := []analytics.MetricType{analytics.MetricBadgesEarned, analytics.MetricResponseRate}
		d.data.EXPECT().FindAvailableMetrics(gomock.Any(), int64(3)).Return(metrics, nil)
		d.data.EXPECT().FindByMetricsOnDate(gomock.Any(), int64(3), metrics, analytics.PeriodDaily, testNow).
			Return([]analytics.Data{{ID: 1, MetricType: analytics.MetricBadgesEarned}}, nil)
		d.data.EXPECT().FindLatestByMetric(gomock.Any(), int64(3), analytics.MetricResponseRate, analytics.PeriodDaily).
			Return(&analytics.Data{ID: 2, MetricType: analytics.MetricResponseRate}, nil)

		out, err := d.service.CompanySnapshot(context.Background(), 3, testNow)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, int64(2), out[1].ID)
	})

	t.Run("nothing tracked", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.data.EXPECT().FindAvailableMetrics(gomock.Any(), int64(3)).Return(nil, nil)

		out, err := d.service.CompanySnapshot(context.Background(), 3, testNow)

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestAnalyticsService_RecordMetric(t *testing.T) {
	d := setupAnalyticsTest(t)
	d.data.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data *analytics.Data) error {
		require.NotNil(t, data.CompanyID)
		assert.Equal(t, int64(3), *data.CompanyID)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), time.Time(data.Date))
		data.ID = 11
		return nil
	})

	out, err := d.service.RecordMetric(context.Background(), 3, analytics.RecordMetricRequest{
		MetricType:  analytics.MetricEmployeeSatisfaction,
		PeriodType:  analytics.PeriodDaily,
		Date:        testNow,
		MetricValue: floatPtr(4.2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
}

func TestAnalyticsService_TrackBehavior(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		err := d.service.TrackBehavior(context.Background(), 7, analytics.TrackBehaviorRequest{BehaviorType: "DANCE"})

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownBehavior)
	})

	t.Run("stored with a timestamp", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.behaviors.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *analytics.Behavior) error {
			assert.Equal(t, int64(7), b.UserID)
			assert.Equal(t, analytics.BehaviorLoungeJoin, b.BehaviorType)
			assert.False(t, b.Timestamp.IsZero())
			return nil
		})

		err := d.service.TrackBehavior(context.Background(), 7, analytics.TrackBehaviorRequest{BehaviorType: analytics.BehaviorLoungeJoin})

		require.NoError(t, err)
	})
}

func TestAnalyticsService_TrackBatch(t *testing.T) {
	t.Run("one bad entry rejects the batch", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		n, err := d.service.TrackBatch(context.Background(), 7, analytics.TrackBatchRequest{
			Behaviors: []analytics.TrackBehaviorRequest{{BehaviorType: analytics.BehaviorLogin}, {BehaviorType: "DANCE"}},
		})

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownBehavior)
		assert.Zero(t, n)
	})

	t.Run("stores all", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.behaviors.EXPECT().CreateBatch(gomock.Any(), gomock.Len(2)).Return(nil)

		n, err := d.service.TrackBatch(context.Background(), 7, analytics.TrackBatchRequest{
			Behaviors: []analytics.TrackBehaviorRequest{{BehaviorType: analytics.BehaviorLogin}, {BehaviorType: analytics.BehaviorLogout}},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestAnalyticsService_RecordInteraction(t *testing.T) {
	t.Run("default weight", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.interactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in *analytics.Interaction) error {
			assert.Equal(t, 1.0, in.Weight)
			assert.Equal(t, "golang", in.InteractionValue)
			return nil
		})

		err := d.service.RecordInteraction(context.Background(), 7, analytics.RecordInteractionRequest{
			InteractionType:  analytics.InteractionSkillSearch,
			InteractionValue: "golang",
		})

		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		err := d.service.RecordInteraction(context.Background(), 7, analytics.RecordInteractionRequest{InteractionType: "WAVE"})

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownInteraction)
	})
}

func TestAnalyticsService_UserStats(t *testing.T) {
	d := setupAnalyticsTest(t)
	from := testNow.AddDate(0, 0, -30)
	rating := 4.5
	d.userDays.EXPECT().FindByUserBetween(gomock.Any(), int64(7), from, testNow).Return([]analytics.UserDay{
		{LoginCount: 2, ActionsPerformed: 10, MessagesSent: 3},
		{LoginCount: 0, ActionsPerformed: 1},
	}, nil)
	d.userDays.EXPECT().SumSessionDuration(gomock.Any(), int64(7), from, testNow).Return(int64(95), nil)
	d.userDays.EXPECT().SumMatchesCompleted(gomock.Any(), int64(7), from, testNow).Return(int64(2), nil)
	d.userDays.EXPECT().AverageRatingReceived(gomock.Any(), int64(7), from, testNow).Return(&rating, nil)
	d.behaviors.EXPECT().Distribution(gomock.Any(), int64(7)).
		Return([]analytics.ValueCount{{Value: "LOGIN", Total: 6}}, nil)
	d.interactions.EXPECT().TopInteractionValues(gomock.Any(), int64(7), analytics.InteractionSkillSearch, 5).
		Return([]analytics.ValueCount{{Value: "go", Total: 3}}, nil)
	d.insights.EXPECT().CountUnread(gomock.Any(), int64(7)).Return(int64(4), nil)
	d.insights.EXPECT().CountActioned(gomock.Any(), int64(7)).Return(int64(1), nil)

	out, err := d.service.UserStats(context.Background(), 7, testNow)

	require.NoError(t, err)
	assert.Equal(t, 1, out.ActiveDays)
	assert.Equal(t, 2, out.TotalLogins)
	assert.Equal(t, 11, out.TotalActions)
	assert.Equal(t, int64(95), out.TotalSessionMinutes)
	assert.Equal(t, &rating, out.AverageRatingReceived)
	assert.Equal(t, analytics.EngagementLow, out.EngagementLevel)
	assert.Equal(t, []analytics.CountDTO{{Value: "LOGIN", Count: 6}}, out.BehaviorDistribution)
	assert.Equal(t, []analytics.CountDTO{{Value: "go", Count: 3}}, out.TopSkillSearches)
	assert.Equal(t, int64(4), out.UnreadInsights)
	assert.Len(t, out.ActivityTrend, 2)
}

func TestAnalyticsService_Insights(t *testing.T) {
	t.Run("unread", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindUnread(gomock.Any(), int64(7)).Return([]analytics.Insight{{ID: 1}}, nil)

		out, err := d.service.Insights(context.Background(), 7, analytics.InsightFilter{Status: analytics.InsightsUnread}, testNow)

		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("active", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindActive(gomock.Any(), int64(7), testNow).Return(nil, nil)

		out, err := d.service.Insights(context.Background(), 7, analytics.InsightFilter{Status: analytics.InsightsActive}, testNow)

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("by type", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByUserAndType(gomock.Any(), int64(7), analytics.InsightCareerGrowth).Return(nil, nil)

		_, err := d.service.Insights(context.Background(), 7, analytics.InsightFilter{Type: analytics.InsightCareerGrowth}, testNow)

		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		d := setupAnalyticsTest(t)

		_, err := d.service.Insights(context.Background(), 7, analytics.InsightFilter{Type: "HOROSCOPE"}, testNow)

		assert.ErrorIs(t, err, analyticserrors.ErrUnknownInsightType)
	})

	t.Run("all", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByUser(gomock.Any(), int64(7)).Return(nil, nil)

		_, err := d.service.Insights(context.Background(), 7, analytics.InsightFilter{}, testNow)

		require.NoError(t, err)
	})
}

func TestAnalyticsService_GenerateInsights(t *testing.T) {
	t.Run("skips types with a pending insight", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.behaviors.EXPECT().FindRecent(gomock.Any(), int64(7), testNow.AddDate(0, 0, -30)).Return(nil, nil)
		d.insights.EXPECT().FindActive(gomock.Any(), int64(7), testNow).
			Return([]analytics.Insight{{InsightType: analytics.InsightSkillDevelopment}}, nil)
		d.insights.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in []analytics.Insight) error {
			require.Len(t, in, 1)
			assert.Equal(t, analytics.InsightNetworkingOpportunity, in[0].InsightType)
			require.NotNil(t, in[0].ExpiresAt)
			assert.Equal(t, testNow.Add(30*24*time.Hour), *in[0].ExpiresAt)
			return nil
		})

		out, err := d.service.GenerateInsights(context.Background(), 7, testNow)

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "New", out[0].StatusDisplay)
	})

	t.Run("actioned insights do not block", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.behaviors.EXPECT().FindRecent(gomock.Any(), int64(7), gomock.Any()).Return(nil, nil)
		d.insights.EXPECT().FindActive(gomock.Any(), int64(7), testNow).
			Return([]analytics.Insight{{InsightType: analytics.InsightSkillDevelopment, IsActioned: true}}, nil)
		d.insights.EXPECT().CreateBatch(gomock.Any(), gomock.Len(2)).Return(nil)

		out, err := d.service.GenerateInsights(context.Background(), 7, testNow)

		require.NoError(t, err)
		assert.Len(t, out, 2)
	})
}

func TestAnalyticsService_MarkInsightRead(t *testing.T) {
	t.Run("someone else's insight", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&analytics.Insight{ID: 1, UserID: 99}, nil)

		_, err := d.service.MarkInsightRead(context.Background(), 7, 1)

		assert.ErrorIs(t, err, analyticserrors.ErrInsightNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.MarkInsightRead(context.Background(), 7, 1)

		assert.ErrorIs(t, err, analyticserrors.ErrInsightNotFound)
	})

	t.Run("already read skips the write", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&analytics.Insight{ID: 1, UserID: 7, IsRead: true}, nil)

		out, err := d.service.MarkInsightRead(context.Background(), 7, 1)

		require.NoError(t, err)
		assert.True(t, out.IsRead)
	})

	t.Run("marks read", func(t *testing.T) {
		d := setupAnalyticsTest(t)
		d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&analytics.Insight{ID: 1, UserID: 7}, nil)
		d.insights.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		out, err := d.service.MarkInsightRead(context.Background(), 7, 1)

		require.NoError(t, err)
		assert.Equal(t, "Read", out.StatusDisplay)
	})
}

func TestAnalyticsService_MarkInsightActioned(t *testing.T) {
	d := setupAnalyticsTest(t)
	d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&analytics.Insight{ID: 1, UserID: 7}, nil)
	d.insights.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in *analytics.Insight) error {
		assert.True(t, in.IsActioned)
		assert.True(t, in.IsRead)
		return nil
	})

	out, err := d.service.MarkInsightActioned(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, "Actioned", out.StatusDisplay)
}

func TestAnalyticsService_AddInsightFeedback(t *testing.T) {
	d := setupAnalyticsTest(t)
	d.insights.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&analytics.Insight{ID: 1, UserID: 7}, nil)
	d.insights.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	out, err := d.service.AddInsightFeedback(context.Background(), 7, 1, analytics.InsightFeedbackRequest{Rating: 4, Comment: "useful"})

	require.NoError(t, err)
	require.NotNil(t, out.FeedbackRating)
	assert.Equal(t, 4, *out.FeedbackRating)
	assert.Equal(t, "useful", out.FeedbackComment)
}
