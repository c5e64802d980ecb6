package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	matcherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultSuggestionLimit = 10
	DefaultStarterLimit    = 5
	highQualityRating      = 4
)

// openStatuses are the states in which a pair may not open another match.
var openStatuses = []Status{StatusPending, StatusAccepted, StatusScheduled, StatusInProgress}

type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64, req gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error)
}

type Notifier interface {
	Create(ctx context.Context, req notification.CreateNotificationRequest) (*notification.NotificationDTO, error)
}

//go:generate mockgen -source=match_service.go -destination=mock/match_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, userID int64, req CreateMatchRequest) (MatchDTO, error)
	Respond(ctx context.Context, matchID, userID int64, req RespondRequest) (MatchDTO, error)
	Get(ctx context.Context, matchID, userID int64) (MatchDTO, error)
	List(ctx context.Context, userID int64, status Status) ([]MatchDTO, error)
	Suggestions(ctx context.Context, userID int64, limit int) ([]SmartMatchDTO, error)
	Chat(ctx context.Context, matchID, userID int64) ([]ChatMessageDTO, error)
	SubmitFeedback(ctx context.Context, matchID, userID int64, req FeedbackRequest) (FeedbackDTO, error)
	Feedback(ctx context.Context, matchID, userID int64) ([]FeedbackDTO, error)
	QualityStats(ctx context.Context) (QualityStatsDTO, error)
	Starters(ctx context.Context, matchID, userID int64, limit int) ([]ConversationStarterDTO, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	feedback FeedbackRepository
	chat     ChatRepository
	starters StarterRepository
	users    user.Repository
	prefs    user.PreferencesRepository
	activity ActivityRecorder
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

type Deps struct {
	Repo     Repository
	Feedback FeedbackRepository
	Chat     ChatRepository
	Starters StarterRepository
	Users    user.Repository
	Prefs    user.PreferencesRepository
	Activity ActivityRecorder
	Notifier Notifier
}

func NewService(db *gorm.DB, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("match.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("match.service")
	}
	return &service{
		db:       db,
		repo:     deps.Repo,
		feedback: deps.Feedback,
		chat:     deps.Chat,
		starters: deps.Starters,
		users:    deps.Users,
		prefs:    deps.Prefs,
		activity: deps.Activity,
		notifier: deps.Notifier,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) Request(ctx context.Context, userID int64, req CreateMatchRequest) (MatchDTO, error) {
	if req.TargetUserID == userID {
		return MatchDTO{}, matcherrors.ErrSelfMatch
	}

	requester, err := s.activeUser(ctx, userID)
	if err != nil {
		return MatchDTO{}, err
	}
	target, err := s.activeUser(ctx, req.TargetUserID)
	if err != nil {
		return MatchDTO{}, err
	}

	open, err := s.repo.ExistsBetween(ctx, userID, req.TargetUserID, openStatuses...)
	if err != nil {
		return MatchDTO{}, err
	}
	if open {
		return MatchDTO{}, matcherrors.ErrMatchExists
	}

	matchType := req.MatchType
	if matchType == "" {
		matchType = TypeCoffeeChat
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}
	score, _ := Compatibility(*requester, *target)
	now := s.now()

	m := &Match{
		User1ID:            userID,
		User2ID:            req.TargetUserID,
		MatchType:          matchType,
		Status:             StatusPending,
		MatchTime:          &now,
		ScheduledTime:      req.PreferredTime,
		DurationMinutes:    duration,
		CompatibilityScore: &score,
		MatchReason:        req.Message,
		IsActive:           true,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, m); err != nil {
			return err
		}
		return s.chat.WithTx(tx).Create(ctx, systemChat(m.ID, userID, ChatMatchRequest, "Match request sent: "+req.Message, now))
	})
	if err != nil {
		return MatchDTO{}, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}

	log := contextutil.GetLogger(ctx, s.logger)
	log.Info("match requested", zap.Int64("match_id", m.ID), zap.Int64("user_id", userID), zap.Int64("target_id", req.TargetUserID))

	s.record(ctx, userID, gamification.ActivityCoffeeChatRequest, m.ID)
	s.notify(ctx, notification.CreateNotificationRequest{
		UserID:    req.TargetUserID,
		Title:     "New coffee chat request",
		Message:   fmt.Sprintf("%s would like to connect with you", requester.Name),
		Type:      notification.TypeConnectionRequest,
		ActionURL: fmt.Sprintf("/matches/%d", m.ID),
	})

	dto := FromEntity(*m)
	withNames(&dto, requester, target)
	return dto, nil
}

func (s *service) Respond(ctx context.Context, matchID, userID int64, req RespondRequest) (MatchDTO, error) {
	m, err := s.repo.FindActiveByID(ctx, matchID)
	if err != nil {
		return MatchDTO{}, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}
	if m.User2ID != userID {
		return MatchDTO{}, matcherrors.ErrNotRecipient
	}
	if m.Status != StatusPending {
		return MatchDTO{}, matcherrors.ErrMatchNotPending
	}

	accepted := req.Status == StatusAccepted
	m.Status = req.Status
	kind, text := ChatMatchRejected, "Match rejected"
	if accepted {
		kind, text = ChatMatchAccepted, "Match accepted"
		if req.ScheduledTime != nil {
			m.ScheduledTime = req.ScheduledTime
		}
		if req.DurationMinutes > 0 {
			m.DurationMinutes = req.DurationMinutes
		}
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, m); err != nil {
			return err
		}
		return s.chat.WithTx(tx).Create(ctx, systemChat(m.ID, userID, kind, text, now))
	})
	if err != nil {
		return MatchDTO{}, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}

	if accepted {
		s.record(ctx, userID, gamification.ActivityCoffeeChatAccepted, m.ID)
		s.record(ctx, m.User1ID, gamification.ActivityMatchFound, m.ID)
		s.notify(ctx, notification.CreateNotificationRequest{
			UserID:    m.User1ID,
			Title:     "Coffee chat accepted",
			Message:   "Your coffee chat request was accepted. Pick a time to meet!",
			Type:      notification.TypeMatchFound,
			ActionURL: fmt.Sprintf("/matches/%d", m.ID),
		})
	}

	dto := FromEntity(*m)
	s.fillNames(ctx, &dto)
	return dto, nil
}

func (s *service) Get(ctx context.Context, matchID, userID int64) (MatchDTO, error) {
	m, err := s.participantMatch(ctx, matchID, userID)
	if err != nil {
		return MatchDTO{}, err
	}
	dto := FromEntity(*m)
	s.fillNames(ctx, &dto)
	return dto, nil
}

func (s *service) List(ctx context.Context, userID int64, status Status) ([]MatchDTO, error) {
	var (
		items []Match
		err   error
	)
	if status == "" {
		items, err = s.repo.FindByUser(ctx, userID)
	} else {
		items, err = s.repo.FindByUserAndStatus(ctx, userID, status)
	}
	if err != nil {
		return nil, err
	}

	out := make([]MatchDTO, 0, len(items))
	for _, m := range items {
		dto := FromEntity(m)
		s.fillNames(ctx, &dto)
		out = append(out, dto)
	}
	return out, nil
}

// Suggestions ranks users open to matching whom the caller has not matched yet.
func (s *service) Suggestions(ctx context.Context, userID int64, limit int) ([]SmartMatchDTO, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	me, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.FindMatchedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	available, err := s.prefs.FindAvailableExcluding(ctx, userID)
	if err != nil {
		return nil, err
	}
	open := make(map[int64]struct{}, len(available))
	for _, p := range available {
		open[p.UserID] = struct{}{}
	}

	candidates, err := s.users.FindActiveExcluding(ctx, append(matched, userID))
	if err != nil {
		return nil, err
	}

	out := make([]SmartMatchDTO, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := open[c.ID]; !ok {
			continue
		}
		score, factors := Compatibility(*me, c)
		if score <= MinSuggestionScore {
			continue
		}
		out = append(out, SmartMatchDTO{
			UserID:               c.ID,
			Name:                 c.Name,
			Email:                c.Email,
			Industry:             c.Industry,
			Skills:               c.Skills,
			Interests:            c.Interests,
			LinkedinURL:          c.LinkedinURL,
			CompatibilityScore:   score,
			CompatibilityFactors: factors,
			MatchReason:          matchReason(factors),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompatibilityScore > out[j].CompatibilityScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *service) Chat(ctx context.Context, matchID, userID int64) ([]ChatMessageDTO, error) {
	if _, err := s.participantMatch(ctx, matchID, userID); err != nil {
		return nil, err
	}
	items, err := s.chat.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	out := make([]ChatMessageDTO, 0, len(items))
	for _, c := range items {
		out = append(out, ChatFromEntity(c))
	}
	return out, nil
}

// SubmitFeedback creates or replaces the caller's feedback. Once both sides
// have rated a completed match its score becomes their average quality.
func (s *service) SubmitFeedback(ctx context.Context, matchID, userID int64, req FeedbackRequest) (FeedbackDTO, error) {
	m, err := s.participantMatch(ctx, matchID, userID)
	if err != nil {
		return FeedbackDTO{}, err
	}

	f, err := s.feedback.FindByMatchAndUser(ctx, matchID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		f = &Feedback{MatchID: matchID, UserID: userID}
	case err != nil:
		return FeedbackDTO{}, err
	}
	f.QualityRating = req.QualityRating
	f.ConversationRating = req.ConversationRating
	f.RelevanceRating = req.RelevanceRating
	f.WouldMeetAgain = req.WouldMeetAgain
	f.FeedbackText = req.FeedbackText
	f.ImprovementSuggestions = req.ImprovementSuggestions
	f.Tags = strings.Join(req.Tags, ",")

	if err := s.feedback.Save(ctx, f); err != nil {
		return FeedbackDTO{}, err
	}

	if m.Status == StatusCompleted {
		if err := s.rescore(ctx, m); err != nil {
			contextutil.GetLogger(ctx, s.logger).Warn("failed to rescore match", zap.Int64("match_id", matchID), zap.Error(err))
		}
	}
	return FeedbackFromEntity(*f), nil
}

func (s *service) rescore(ctx context.Context, m *Match) error {
	all, err := s.feedback.FindByMatch(ctx, m.ID)
	if err != nil || len(all) < 2 {
		return err
	}
	var sum int
	for _, f := range all {
		sum += f.QualityRating
	}
	score := float64(sum) / float64(len(all)) / 5
	m.CompatibilityScore = &score
	return s.repo.Update(ctx, m)
}

func (s *service) Feedback(ctx context.Context, matchID, userID int64) ([]FeedbackDTO, error) {
	if _, err := s.participantMatch(ctx, matchID, userID); err != nil {
		return nil, err
	}
	items, err := s.feedback.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	out := make([]FeedbackDTO, 0, len(items))
	for _, f := range items {
		out = append(out, FeedbackFromEntity(f))
	}
	return out, nil
}

func (s *service) QualityStats(ctx context.Context) (QualityStatsDTO, error) {
	total, err := s.feedback.Count(ctx)
	if err != nil {
		return QualityStatsDTO{}, err
	}
	positive, err := s.feedback.CountPositive(ctx)
	if err != nil {
		return QualityStatsDTO{}, err
	}
	high, err := s.feedback.CountHighQuality(ctx, highQualityRating)
	if err != nil {
		return QualityStatsDTO{}, err
	}

	stats := QualityStatsDTO{TotalFeedback: total, PositiveFeedback: positive, HighQualityMatches: high}
	if total > 0 {
		stats.PositiveRate = float64(positive) / float64(total)
		stats.HighQualityRate = float64(high) / float64(total)
	}
	return stats, nil
}

func (s *service) Starters(ctx context.Context, matchID, userID int64, limit int) ([]ConversationStarterDTO, error) {
	if limit <= 0 {
		limit = DefaultStarterLimit
	}
	m, err := s.participantMatch(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}
	a, err := s.activeUser(ctx, m.User1ID)
	if err != nil {
		return nil, err
	}
	b, err := s.activeUser(ctx, m.User2ID)
	if err != nil {
		return nil, err
	}

	picked, err := pickStarters(ctx, s.starters, s.logger, *a, *b, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ConversationStarterDTO, 0, len(picked))
	for _, st := range picked {
		out = append(out, StarterFromEntity(st))
	}
	return out, nil
}

// pickStarters prefers starters tagged with what the pair shares and falls
// back to random ones.
func pickStarters(ctx context.Context, repo StarterRepository, logger *zap.Logger, a, b user.User, limit int) ([]ConversationStarter, error) {
	tags := sharedTerms(a, b)

	var (
		items []ConversationStarter
		err   error
	)
	if len(tags) > 0 {
		for len(tags) < 3 {
			tags = append(tags, tags[0])
		}
		items, err = repo.FindByTags(ctx, tags[0], tags[1], tags[2])
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		items, err = repo.FindRandom(ctx, limit)
		if err != nil {
			return nil, err
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if err := repo.IncrementUsage(ctx, ids); err != nil {
		contextutil.GetLogger(ctx, logger).Warn("failed to bump starter usage", zap.Error(err))
	}
	return items, nil
}

// sharedTerms returns up to three skills or interests both users list.
func sharedTerms(a, b user.User) []string {
	var out []string
	for _, pair := range [][2]string{{a.Skills, b.Skills}, {a.Interests, b.Interests}} {
		other := csvSet(pair[1])
		for _, p := range strings.Split(pair[0], ",") {
			p = strings.ToLower(strings.TrimSpace(p))
			if _, ok := other[p]; ok && p != "" {
				out = append(out, p)
				if len(out) == 3 {
					return out
				}
			}
		}
	}
	return out
}

func (s *service) participantMatch(ctx context.Context, matchID, userID int64) (*Match, error) {
	if matchID <= 0 {
		return nil, matcherrors.ErrInvalidMatchID
	}
	m, err := s.repo.FindActiveByID(ctx, matchID)
	if err != nil {
		return nil, mapRepositoryError(err, matcherrors.ErrMatchNotFound)
	}
	if !m.Involves(userID) {
		return nil, matcherrors.ErrNotMatchParticipant
	}
	return m, nil
}

func (s *service) activeUser(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, usererrors.ErrUserNotFound
	}
	return u, nil
}

func (s *service) fillNames(ctx context.Context, dto *MatchDTO) {
	a, _ := s.users.FindByID(ctx, dto.User1ID)
	b, _ := s.users.FindByID(ctx, dto.User2ID)
	withNames(dto, a, b)
}

func withNames(dto *MatchDTO, a, b *user.User) {
	if a != nil {
		dto.User1Name, dto.User1Email = a.Name, a.Email
	}
	if b != nil {
		dto.User2Name, dto.User2Email = b.Name, b.Email
	}
}

func systemChat(matchID, userID int64, kind ChatMessageType, content string, at time.Time) *ChatHistory {
	return &ChatHistory{
		MatchID:         matchID,
		UserID:          userID,
		MessageType:     kind,
		Content:         content,
		Timestamp:       at,
		IsSystemMessage: kind != ChatText,
	}
}

func (s *service) record(ctx context.Context, userID int64, activity gamification.ActivityType, matchID int64) {
	recordActivity(ctx, s.activity, s.logger, userID, activity, matchID)
}

func (s *service) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	sendNotification(ctx, s.notifier, s.logger, req)
}

func recordActivity(ctx context.Context, rec ActivityRecorder, logger *zap.Logger, userID int64, activity gamification.ActivityType, matchID int64) {
	if rec == nil {
		return
	}
	id := matchID
	if _, err := rec.RecordActivity(ctx, userID, gamification.RecordActivityRequest{ActivityType: activity, EntityID: &id}); err != nil {
		contextutil.GetLogger(ctx, logger).Warn("failed to record match activity",
			zap.String("activity", string(activity)),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func sendNotification(ctx context.Context, n Notifier, logger *zap.Logger, req notification.CreateNotificationRequest) {
	if n == nil {
		return
	}
	if _, err := n.Create(ctx, req); err != nil {
		contextutil.GetLogger(ctx, logger).Warn("failed to create notification",
			zap.Int64("user_id", req.UserID),
			zap.String("type", string(req.Type)),
			zap.Error(err),
		)
	}
}
