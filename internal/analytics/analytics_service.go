package analytics

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	analyticserrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	windowDays     = 30
	topUsersLimit  = 10
	topValuesLimit = 5
	insightTTL     = 30 * 24 * time.Hour
)

var (
	knownMetrics = []MetricType{
		MetricDailyActiveUsers, MetricWeeklyActiveUsers, MetricMonthlyActiveUsers,
		MetricTotalConversations, MetricTotalVideoCalls, MetricAverageSessionDuration,
		MetricBadgesEarned, MetricStreaksMaintained, MetricEmployeeSatisfaction,
		MetricResponseRate, MetricMentorshipMatches, MetricTopicEngagement,
	}
	knownBehaviors = []BehaviorType{
		BehaviorLogin, BehaviorLogout, BehaviorProfileView, BehaviorProfileUpdate,
		BehaviorMatchRequest, BehaviorMatchAccept, BehaviorMatchReject,
		BehaviorCoffeeChatStart, BehaviorCoffeeChatEnd, BehaviorLoungeJoin,
		BehaviorLoungeLeave, BehaviorLoungeMessage, BehaviorBadgeEarned,
		BehaviorStreakMaintained, BehaviorMentorshipJoin, BehaviorMentorshipSession,
		BehaviorContentView, BehaviorContentLike, BehaviorContentShare,
		BehaviorSearchQuery, BehaviorNotificationOpen, BehaviorNotificationDismiss,
		BehaviorFeedbackSubmit, BehaviorRatingGive, BehaviorPreferenceUpdate,
	}
	knownInteractions = []InteractionType{
		InteractionProfileView, InteractionMatchAccepted, InteractionMatchRejected,
		InteractionMessageSent, InteractionMeetingCompleted, InteractionSkillSearch,
		InteractionInterestSearch, InteractionLoungeJoined, InteractionFeedbackGiven,
	}
	knownInsightTypes = []InsightType{
		InsightMatchingImprovement, InsightSkillDevelopment, InsightNetworkingOpportunity,
		InsightContentRecommendation, InsightGoalAchievement, InsightBehaviorPattern,
		InsightEngagementOptimization, InsightCareerGrowth, InsightMentorshipSuggestion,
		InsightActivityRecommendation,
	}
)

// Counter is satisfied by the repositories that count rows created in a window.
type Counter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// RollupSources feed the daily platform rollup.
type RollupSources struct {
	Users    Counter
	Matches  Counter
	Meetings Counter
	Messages Counter
}

type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

type Repositories struct {
	Data         DataRepository
	Platform     PlatformRepository
	UserDays     UserDayRepository
	Behaviors    BehaviorRepository
	Interactions InteractionRepository
	Insights     InsightRepository
}

// Insight list filters.
const (
	InsightsAll      = ""
	InsightsUnread   = "unread"
	InsightsActive   = "active"
	InsightsExpired  = "expired"
	InsightsActioned = "actioned"
)

type InsightFilter struct {
	Status string
	Type   InsightType
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, now time.Time) (OverviewDTO, error)
	RollupDay(ctx context.Context, date time.Time) (*PlatformDay, error)
	MetricSeries(ctx context.Context, companyID int64, q SeriesQuery) (MetricSeriesDTO, error)
	AvailableMetrics(ctx context.Context, companyID int64) ([]MetricType, error)
	CompanySnapshot(ctx context.Context, companyID int64, now time.Time) ([]DataDTO, error)
	RecordMetric(ctx context.Context, companyID int64, req RecordMetricRequest) (DataDTO, error)
	UserStats(ctx context.Context, userID int64, now time.Time) (UserStatsDTO, error)
	TrackBehavior(ctx context.Context, userID int64, req TrackBehaviorRequest) error
	TrackBatch(ctx context.Context, userID int64, req TrackBatchRequest) (int, error)
	RecordInteraction(ctx context.Context, userID int64, req RecordInteractionRequest) error
	Insights(ctx context.Context, userID int64, filter InsightFilter, now time.Time) ([]InsightDTO, error)
	GenerateInsights(ctx context.Context, userID int64, now time.Time) ([]InsightDTO, error)
	MarkInsightRead(ctx context.Context, userID, insightID int64) (InsightDTO, error)
	MarkInsightActioned(ctx context.Context, userID, insightID int64) (InsightDTO, error)
	AddInsightFeedback(ctx context.Context, userID, insightID int64, req InsightFeedbackRequest) (InsightDTO, error)
}

type service struct {
	repos   Repositories
	sources RollupSources
	users   UserLookup
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(repos Repositories, sources RollupSources, users UserLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{
		repos:   repos,
		sources: sources,
		users:   users,
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Overview(ctx context.Context, now time.Time) (OverviewDTO, error) {
	from := now.AddDate(0, 0, -windowDays)

	var (
		today       PlatformDay
		window      []PlatformDay
		mostActive  []UserScore
		mostEngaged []UserScore
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.repos.Platform.FindByDate(gctx, now)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		today = *d
		return nil
	})
	g.Go(func() (err error) {
		window, err = s.repos.Platform.FindBetween(gctx, from, now)
		return err
	})
	g.Go(func() (err error) {
		mostActive, err = s.repos.UserDays.FindMostActive(gctx, from, now, topUsersLimit)
		return err
	})
	g.Go(func() (err error) {
		mostEngaged, err = s.repos.UserDays.FindTopEngaged(gctx, from, now, topUsersLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return OverviewDTO{}, err
	}

	out := OverviewFromDays(today, window)
	out.MostActiveUsers = s.topUsers(ctx, mostActive)
	out.TopEngagedUsers = s.topUsers(ctx, mostEngaged)
	return out, nil
}

// topUsers resolves display names; an unresolvable user keeps an empty name.
func (s *service) topUsers(ctx context.Context, scores []UserScore) []TopUserDTO {
	out := make([]TopUserDTO, 0, len(scores))
	for _, sc := range scores {
		dto := TopUserDTO{UserID: sc.UserID, Value: round2(sc.Score)}
		if u, err := s.users.FindByID(ctx, sc.UserID); err == nil {
			dto.Name = u.Name
		} else {
			contextutil.GetLogger(ctx, s.logger).Debug("top user lookup failed",
				zap.Int64("user_id", sc.UserID),
				zap.Error(err),
			)
		}
		out = append(out, dto)
	}
	return out
}

// RollupDay recomputes the platform row for date's calendar day. Running it
// twice for the same day overwrites the first result.
func (s *service) RollupDay(ctx context.Context, date time.Time) (*PlatformDay, error) {
	start := time.Time(Day(date))
	end := start.AddDate(0, 0, 1).Add(-time.Microsecond)
	epoch := time.Unix(0, 0).UTC()

	day := PlatformDay{Date: Day(date)}
	var (
		activeIDs []int64
		prevTotal int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		day.TotalUsers, err = s.sources.Users.CountCreatedBetween(gctx, epoch, end)
		return err
	})
	g.Go(func() (err error) {
		day.NewUsersToday, err = s.sources.Users.CountCreatedBetween(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		day.TotalMatches, err = s.sources.Matches.CountCreatedBetween(gctx, epoch, end)
		return err
	})
	g.Go(func() (err error) {
		day.MatchesCreatedToday, err = s.sources.Matches.CountCreatedBetween(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		day.MeetingsScheduledToday, err = s.sources.Meetings.CountCreatedBetween(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		day.MessagesSentToday, err = s.sources.Messages.CountCreatedBetween(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		day.UserInteractionsToday, err = s.repos.Interactions.CountAllBetween(gctx, start, end.Add(time.Microsecond))
		return err
	})
	g.Go(func() (err error) {
		activeIDs, err = s.repos.UserDays.FindActiveUserIDs(gctx, start)
		return err
	})
	g.Go(func() error {
		prev, err := s.repos.Platform.FindByDate(gctx, start.AddDate(0, 0, -1))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		prevTotal = prev.TotalUsers
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	day.ActiveUsersToday = int64(len(activeIDs))
	if prevTotal > 0 {
		day.UserGrowthRate = round2(float64(day.TotalUsers-prevTotal) / float64(prevTotal) * 100)
	}

	existing, err := s.repos.Platform.FindByDate(ctx, start)
	switch {
	case err == nil:
		day.ID = existing.ID
		day.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	if err := s.repos.Platform.Save(ctx, &day); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("platform analytics rolled up",
		zap.Time("date", start),
		zap.Int64("total_users", day.TotalUsers),
		zap.Int64("active_users", day.ActiveUsersToday),
	)
	return &day, nil
}

func (s *service) MetricSeries(ctx context.Context, companyID int64, q SeriesQuery) (MetricSeriesDTO, error) {
	if !slices.Contains(knownMetrics, q.MetricType) {
		return MetricSeriesDTO{}, analyticserrors.ErrUnknownMetric
	}
	if q.To.Before(q.From) {
		return MetricSeriesDTO{}, analyticserrors.ErrInvalidDateRange
	}
	if q.PeriodType == "" {
		q.PeriodType = PeriodDaily
	}

	if q.DepartmentID == nil {
		rows, err := s.repos.Data.FindByMetricAndRange(ctx, companyID, q.MetricType, q.PeriodType, q.From, q.To)
		if err != nil {
			return MetricSeriesDTO{}, err
		}
		return SeriesFromData(q.MetricType, q.PeriodType, q.From, q.To, rows), nil
	}

	rows, err := s.repos.Data.FindByDepartmentAndRange(ctx, companyID, *q.DepartmentID, q.PeriodType, q.From, q.To)
	if err != nil {
		return MetricSeriesDTO{}, err
	}
	rows = slices.DeleteFunc(rows, func(d Data) bool { return d.MetricType != q.MetricType })
	return SeriesFromData(q.MetricType, q.PeriodType, q.From, q.To, rows), nil
}

func (s *service) AvailableMetrics(ctx context.Context, companyID int64) ([]MetricType, error) {
	metrics, err := s.repos.Data.FindAvailableMetrics(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = []MetricType{}
	}
	return metrics, nil
}

// CompanySnapshot returns the daily value of every tracked metric for now's
// date, falling back to the latest earlier sample.
func (s *service) CompanySnapshot(ctx context.Context, companyID int64, now time.Time) ([]DataDTO, error) {
	metrics, err := s.repos.Data.FindAvailableMetrics(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]DataDTO, 0, len(metrics))
	if len(metrics) == 0 {
		return out, nil
	}

	rows, err := s.repos.Data.FindByMetricsOnDate(ctx, companyID, metrics, PeriodDaily, now)
	if err != nil {
		return nil, err
	}
	seen := make(map[MetricType]bool, len(rows))
	for _, d := range rows {
		seen[d.MetricType] = true
		out = append(out, DataFromEntity(d))
	}

	for _, m := range metrics {
		if seen[m] {
			continue
		}
		latest, err := s.repos.Data.FindLatestByMetric(ctx, companyID, m, PeriodDaily)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, DataFromEntity(*latest))
	}
	return out, nil
}

func (s *service) RecordMetric(ctx context.Context, companyID int64, req RecordMetricRequest) (DataDTO, error) {
	if !slices.Contains(knownMetrics, req.MetricType) {
		return DataDTO{}, analyticserrors.ErrUnknownMetric
	}
	d := &Data{
		CompanyID:    &companyID,
		DepartmentID: req.DepartmentID,
		MetricType:   req.MetricType,
		MetricValue:  req.MetricValue,
		MetricCount:  req.MetricCount,
		Date:         Day(req.Date),
		PeriodType:   req.PeriodType,
	}
	if err := s.repos.Data.Save(ctx, d); err != nil {
		return DataDTO{}, err
	}
	return DataFromEntity(*d), nil
}

func (s *service) UserStats(ctx context.Context, userID int64, now time.Time) (UserStatsDTO, error) {
	from := now.AddDate(0, 0, -windowDays)
	out := UserStatsDTO{UserID: userID, WindowDays: windowDays}

	days, err := s.repos.UserDays.FindByUserBetween(ctx, userID, from, now)
	if err != nil {
		return UserStatsDTO{}, err
	}
	out.ActivityTrend = make([]DailyMetricDTO, 0, len(days))
	for _, d := range days {
		if d.LoginCount > 0 {
			out.ActiveDays++
		}
		out.TotalLogins += d.LoginCount
		out.TotalActions += d.ActionsPerformed
		out.MessagesSent += d.MessagesSent
		out.MeetingsCompleted += d.MeetingsCompleted
		out.ActivityTrend = append(out.ActivityTrend, DailyMetricDTO{
			Date:  time.Time(d.Date),
			Value: float64(d.ActionsPerformed),
			Label: "Actions",
		})
	}
	out.EngagementLevel = EngagementLevel(out.ActiveDays, windowDays)

	if out.TotalSessionMinutes, err = s.repos.UserDays.SumSessionDuration(ctx, userID, from, now); err != nil {
		return UserStatsDTO{}, err
	}
	if out.MatchesCompleted, err = s.repos.UserDays.SumMatchesCompleted(ctx, userID, from, now); err != nil {
		return UserStatsDTO{}, err
	}
	if out.AverageRatingReceived, err = s.repos.UserDays.AverageRatingReceived(ctx, userID, from, now); err != nil {
		return UserStatsDTO{}, err
	}

	distribution, err := s.repos.Behaviors.Distribution(ctx, userID)
	if err != nil {
		return UserStatsDTO{}, err
	}
	out.BehaviorDistribution = countsFrom(distribution)

	searches, err := s.repos.Interactions.TopInteractionValues(ctx, userID, InteractionSkillSearch, topValuesLimit)
	if err != nil {
		return UserStatsDTO{}, err
	}
	out.TopSkillSearches = countsFrom(searches)

	if out.UnreadInsights, err = s.repos.Insights.CountUnread(ctx, userID); err != nil {
		return UserStatsDTO{}, err
	}
	if out.ActionedInsights, err = s.repos.Insights.CountActioned(ctx, userID); err != nil {
		return UserStatsDTO{}, err
	}
	return out, nil
}

func (s *service) behaviorFrom(userID int64, req TrackBehaviorRequest) (Behavior, error) {
	if !slices.Contains(knownBehaviors, req.BehaviorType) {
		return Behavior{}, analyticserrors.ErrUnknownBehavior
	}
	return Behavior{
		UserID:          userID,
		BehaviorType:    req.BehaviorType,
		TargetID:        req.TargetID,
		TargetType:      req.TargetType,
		Context:         req.Context,
		Metadata:        req.Metadata,
		SessionID:       req.SessionID,
		Timestamp:       s.now(),
		DurationSeconds: req.DurationSeconds,
		IntensityScore:  req.IntensityScore,
	}, nil
}

func (s *service) TrackBehavior(ctx context.Context, userID int64, req TrackBehaviorRequest) error {
	b, err := s.behaviorFrom(userID, req)
	if err != nil {
		return err
	}
	return s.repos.Behaviors.Create(ctx, &b)
}

// TrackBatch stores every behavior or none: one unknown type rejects the batch.
func (s *service) TrackBatch(ctx context.Context, userID int64, req TrackBatchRequest) (int, error) {
	batch := make([]Behavior, 0, len(req.Behaviors))
	for _, r := range req.Behaviors {
		b, err := s.behaviorFrom(userID, r)
		if err != nil {
			return 0, err
		}
		batch = append(batch, b)
	}
	if err := s.repos.Behaviors.CreateBatch(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

func (s *service) RecordInteraction(ctx context.Context, userID int64, req RecordInteractionRequest) error {
	if !slices.Contains(knownInteractions, req.InteractionType) {
		return analyticserrors.ErrUnknownInteraction
	}
	weight := 1.0
	if req.Weight != nil {
		weight = *req.Weight
	}
	return s.repos.Interactions.Create(ctx, &Interaction{
		UserID:           userID,
		TargetUserID:     req.TargetUserID,
		InteractionType:  req.InteractionType,
		InteractionValue: req.InteractionValue,
		Weight:           weight,
		ContextData:      req.ContextData,
	})
}

func (s *service) Insights(ctx context.Context, userID int64, filter InsightFilter, now time.Time) ([]InsightDTO, error) {
	var (
		rows []Insight
		err  error
	)
	switch {
	case filter.Type != "":
		if !slices.Contains(knownInsightTypes, filter.Type) {
			return nil, analyticserrors.ErrUnknownInsightType
		}
		rows, err = s.repos.Insights.FindByUserAndType(ctx, userID, filter.Type)
	case filter.Status == InsightsUnread:
		rows, err = s.repos.Insights.FindUnread(ctx, userID)
	case filter.Status == InsightsActive:
		rows, err = s.repos.Insights.FindActive(ctx, userID, now)
	case filter.Status == InsightsExpired:
		rows, err = s.repos.Insights.FindExpired(ctx, userID, now)
	case filter.Status == InsightsActioned:
		rows, err = s.repos.Insights.FindActioned(ctx, userID)
	default:
		rows, err = s.repos.Insights.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return insightDTOs(rows, now), nil
}

func insightDTOs(rows []Insight, now time.Time) []InsightDTO {
	out := make([]InsightDTO, 0, len(rows))
	for _, in := range rows {
		out = append(out, InsightFromEntity(in, now))
	}
	return out
}

// GenerateInsights derives insights from the last 30 days of behavior. A type
// that already has an active, unactioned insight is not generated again.
func (s *service) GenerateInsights(ctx context.Context, userID int64, now time.Time) ([]InsightDTO, error) {
	behaviors, err := s.repos.Behaviors.FindRecent(ctx, userID, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, err
	}
	active, err := s.repos.Insights.FindActive(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	pending := make(map[InsightType]bool, len(active))
	for _, in := range active {
		if !in.IsActioned {
			pending[in.InsightType] = true
		}
	}

	expires := now.Add(insightTTL)
	fresh := make([]Insight, 0)
	for _, in := range DeriveInsights(userID, behaviors) {
		if pending[in.InsightType] {
			continue
		}
		in.ExpiresAt = &expires
		fresh = append(fresh, in)
	}
	if err := s.repos.Insights.CreateBatch(ctx, fresh); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("insights generated",
		zap.Int64("user_id", userID),
		zap.Int("count", len(fresh)),
	)
	return insightDTOs(fresh, now), nil
}

// DeriveInsights applies the behavior rules to one user's recent behavior.
func DeriveInsights(userID int64, behaviors []Behavior) []Insight {
	counts := make(map[BehaviorType]int, len(behaviors))
	for _, b := range behaviors {
		counts[b.BehaviorType]++
	}

	priority := 2
	confidence := 0.7
	insight := func(t InsightType, category, title, description, recommendation string) Insight {
		p, c := priority, confidence
		return Insight{
			UserID:          userID,
			InsightType:     t,
			Title:           title,
			Description:     description,
			Recommendation:  recommendation,
			Category:        category,
			PriorityLevel:   &p,
			ConfidenceScore: &c,
		}
	}

	var out []Insight
	requests, accepts := counts[BehaviorMatchRequest], counts[BehaviorMatchAccept]
	if requests > 0 && accepts > 0 {
		rate := float64(accepts) / float64(requests)
		if rate < 0.3 {
			out = append(out, insight(InsightMatchingImprovement, "matching",
				"Improve Your Matching Success Rate",
				fmt.Sprintf("Your match acceptance rate is %.1f%%. Consider updating your profile or preferences.", rate*100),
				"Review and update your profile, adjust matching criteria, and be more selective with match requests."))
		}
	}
	if counts[BehaviorBadgeEarned] == 0 && counts[BehaviorMentorshipSession] == 0 {
		out = append(out, insight(InsightSkillDevelopment, "skills",
			"Start Your Skill Development Journey",
			"You haven't earned any badges or participated in mentorship sessions yet.",
			"Join mentorship programs, participate in skill-building activities, and set learning goals."))
	}
	if chats := counts[BehaviorCoffeeChatStart]; chats < 3 {
		out = append(out, insight(InsightNetworkingOpportunity, "networking",
			"Expand Your Network",
			fmt.Sprintf("You've only had %d coffee chat(s). More connections can lead to better opportunities.", chats),
			"Request more matches, join topic lounges, and actively participate in conversations."))
	}
	if counts[BehaviorLogin] > 0 && counts[BehaviorProfileUpdate] == 0 {
		out = append(out, insight(InsightEngagementOptimization, "engagement",
			"Keep Your Profile Fresh",
			"You're active on the platform but haven't updated your profile recently.",
			"Update your profile with recent achievements, skills, and interests to attract better matches."))
	}
	if counts[BehaviorStreakMaintained] > 0 {
		out = append(out, insight(InsightCareerGrowth, "career",
			"Maintain Your Momentum",
			"Great job maintaining your activity streak! Consistency is key to career growth.",
			"Keep up the good work, set new goals, and consider mentoring others."))
	}
	return out
}

func (s *service) ownedInsight(ctx context.Context, userID, insightID int64) (*Insight, error) {
	in, err := s.repos.Insights.FindByID(ctx, insightID)
	if err != nil {
		return nil, mapRepositoryError(err, analyticserrors.ErrInsightNotFound)
	}
	if in.UserID != userID {
		return nil, analyticserrors.ErrInsightNotFound
	}
	return in, nil
}

func (s *service) updateInsight(ctx context.Context, userID, insightID int64, mutate func(*Insight) bool) (InsightDTO, error) {
	in, err := s.ownedInsight(ctx, userID, insightID)
	if err != nil {
		return InsightDTO{}, err
	}
	if mutate(in) {
		if err := s.repos.Insights.Update(ctx, in); err != nil {
			return InsightDTO{}, err
		}
	}
	return InsightFromEntity(*in, s.now()), nil
}

func (s *service) MarkInsightRead(ctx context.Context, userID, insightID int64) (InsightDTO, error) {
	return s.updateInsight(ctx, userID, insightID, func(in *Insight) bool {
		if in.IsRead {
			return false
		}
		in.IsRead = true
		return true
	})
}

// MarkInsightActioned also marks the insight read.
func (s *service) MarkInsightActioned(ctx context.Context, userID, insightID int64) (InsightDTO, error) {
	return s.updateInsight(ctx, userID, insightID, func(in *Insight) bool {
		if in.IsActioned && in.IsRead {
			return false
		}
		in.IsActioned = true
		in.IsRead = true
		return true
	})
}

func (s *service) AddInsightFeedback(ctx context.Context, userID, insightID int64, req InsightFeedbackRequest) (InsightDTO, error) {
	return s.updateInsight(ctx, userID, insightID, func(in *Insight) bool {
		rating := req.Rating
		in.FeedbackRating = &rating
		in.FeedbackComment = req.Comment
		return true
	})
}
