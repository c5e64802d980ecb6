package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/events"
	gamificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// LeaderboardKey caches the top MaxLeaderboardLimit entries; smaller
	// requests are served from a prefix of it.
	LeaderboardKey          = "gamification:leaderboard:top"
	MaxLeaderboardLimit     = 100
	DefaultLeaderboardLimit = 10
	DefaultLeaderboardTTL   = 5 * time.Minute
	recentBadgeCount        = 5
)

//go:generate mockgen -source=gamification_service.go -destination=mock/gamification_service_mock.go -package=mock
type Service interface {
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntryDTO, error)
	UserRank(ctx context.Context, userID int64) (int, error)
	TopPerformers(ctx context.Context, activity ActivityType, limit int) ([]LeaderboardEntryDTO, error)
	Summary(ctx context.Context, userID int64) (GamificationSummaryDTO, error)
	ListBadges(ctx context.Context) ([]BadgeDTO, error)
	BadgeProgress(ctx context.Context, userID int64) ([]BadgeProgressDTO, error)
	RecordActivity(ctx context.Context, userID int64, req RecordActivityRequest) (ActivityResultDTO, error)
	AwardBadge(ctx context.Context, userID, badgeID int64) (UserBadgeDTO, error)
	AcknowledgeBadges(ctx context.Context, userID int64) (int64, error)
}

type service struct {
	db         *gorm.DB
	badges     BadgeRepository
	userBadges UserBadgeRepository
	streaks    StreakRepository
	activities ActivityRepository
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	boardGen   atomic.Uint64
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *gorm.DB,
	badges BadgeRepository,
	userBadges UserBadgeRepository,
	streaks StreakRepository,
	activities ActivityRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, badges, userBadges, streaks, activities, nil, rdb, cacheTTL, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	badges BadgeRepository,
	userBadges UserBadgeRepository,
	streaks StreakRepository,
	activities ActivityRepository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("gamification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gamification.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultLeaderboardTTL
	}
	return &service{
		db:         db,
		badges:     badges,
		userBadges: userBadges,
		streaks:    streaks,
		activities: activities,
		outbox:     outboxRepo,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		cacheTTL:   cacheTTL,
		logger:     l,
		now:        time.Now,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	return min(limit, MaxLeaderboardLimit)
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntryDTO, error) {
	limit = clampLimit(limit)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LeaderboardKey).Result(); err == nil {
			var entries []LeaderboardEntryDTO
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries[:min(limit, len(entries))], nil
			}
		}
	}

	v, err, _ := s.sf.Do(LeaderboardKey, func() (any, error) {
		// the fill is shared by every waiter, so it must outlive this caller
		fillCtx := context.WithoutCancel(ctx)
		gen := s.boardGen.Load()
		rows, err := s.activities.Leaderboard(fillCtx, MaxLeaderboardLimit)
		if err != nil {
			return nil, err
		}
		entries := mapLeaderboard(rows)

		// a fill that read the board before the last invalidation stays out of the cache
		if s.rdb != nil && s.boardGen.Load() == gen {
			if body, err := json.Marshal(entries); err == nil {
				if err := s.rdb.Set(fillCtx, LeaderboardKey, string(body), s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache leaderboard failed", zap.Error(err))
				}
			}
		}
		return entries, nil
	})
	if err != nil {
		s.logger.Error("load leaderboard failed", zap.Error(err))
		return nil, err
	}

	entries := v.([]LeaderboardEntryDTO)
	return entries[:min(limit, len(entries))], nil
}

func (s *service) UserRank(ctx context.Context, userID int64) (int, error) {
	if userID <= 0 {
		return 0, gamificationerrors.ErrInvalidUserID
	}
	return s.activities.UserRank(ctx, userID)
}

func (s *service) TopPerformers(ctx context.Context, activity ActivityType, limit int) ([]LeaderboardEntryDTO, error) {
	if !activity.Valid() {
		return nil, gamificationerrors.ErrInvalidActivityType
	}
	rows, err := s.activities.TopPerformersByCategory(ctx, activity, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return mapLeaderboard(rows), nil
}

func (s *service) Summary(ctx context.Context, userID int64) (GamificationSummaryDTO, error) {
	if userID <= 0 {
		return GamificationSummaryDTO{}, gamificationerrors.ErrInvalidUserID
	}
	now := s.now()

	streaks, err := s.streaks.FindByUser(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}
	earned, err := s.userBadges.FindByUserWithBadge(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}
	displayed, err := s.userBadges.FindDisplayedWithBadge(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}
	points, err := s.activities.TotalPointsByUser(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}
	rank, err := s.activities.UserRank(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}
	unnotified, err := s.userBadges.FindUnnotified(ctx, userID)
	if err != nil {
		return GamificationSummaryDTO{}, err
	}

	summary := GamificationSummaryDTO{
		UserID:             userID,
		ActiveStreaks:      make([]UserStreakDTO, 0),
		RecentBadges:       mapUserBadges(earned[:min(recentBadgeCount, len(earned))]),
		DisplayedBadges:    mapUserBadges(displayed),
		TotalBadges:        int64(len(earned)),
		TotalPoints:        points,
		LongestStreakType:  "None",
		Rank:               rank,
		HasNewAchievements: len(unnotified) > 0,
	}
	for _, st := range streaks {
		if st.CurrentCount > 0 {
			summary.ActiveStreaks = append(summary.ActiveStreaks, UserStreakFromEntity(st, now))
		}
		if st.BestCount > summary.LongestStreak {
			summary.LongestStreak = st.BestCount
			summary.LongestStreakType = string(st.StreakType)
		}
	}
	return summary, nil
}

func (s *service) ListBadges(ctx context.Context) ([]BadgeDTO, error) {
	badges, err := s.badges.FindAllActiveByRarity(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BadgeDTO, 0, len(badges))
	for _, b := range badges {
		out = append(out, BadgeFromEntity(b))
	}
	return out, nil
}

func (s *service) BadgeProgress(ctx context.Context, userID int64) ([]BadgeProgressDTO, error) {
	if userID <= 0 {
		return nil, gamificationerrors.ErrInvalidUserID
	}

	badges, err := s.badges.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	held, err := s.userBadges.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.activities.CountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	loginStreak, err := s.currentStreak(ctx, userID, StreakDailyLogin)
	if err != nil {
		return nil, err
	}

	heldByBadge := make(map[int64]UserBadge, len(held))
	for _, ub := range held {
		heldByBadge[ub.BadgeID] = ub
	}

	out := make([]BadgeProgressDTO, 0, len(badges))
	for _, b := range badges {
		if ub, ok := heldByBadge[b.ID]; ok {
			earnedAt := ub.EarnedAt
			out = append(out, NewBadgeProgressDTO(b, ub.CurrentProgress, &earnedAt))
			continue
		}

		var current int
		switch b.BadgeCategory {
		case CategoryLogin:
			current = loginStreak
		default:
			if activity, ok := progressActivity[b.BadgeCategory]; ok {
				current = int(counts[activity])
			}
		}
		out = append(out, NewBadgeProgressDTO(b, &current, nil))
	}
	return out, nil
}

func (s *service) currentStreak(ctx context.Context, userID int64, t StreakType) (int, error) {
	st, err := s.streaks.FindByUserAndType(ctx, userID, t)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return st.CurrentCount, nil
}

// RecordActivity logs an activity, advances the streak it feeds and awards any
// badges the new totals unlock. Badge failures are logged, not returned.
func (s *service) RecordActivity(ctx context.Context, userID int64, req RecordActivityRequest) (ActivityResultDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if userID <= 0 {
		return ActivityResultDTO{}, gamificationerrors.ErrInvalidUserID
	}
	if !req.ActivityType.Valid() {
		return ActivityResultDTO{}, gamificationerrors.ErrInvalidActivityType
	}

	now := s.now()
	entry := &ActivityLog{
		UserID:       userID,
		ActivityType: req.ActivityType,
		EntityID:     req.EntityID,
		ActivityData: req.ActivityData,
		PointsEarned: req.ActivityType.Points(),
	}

	var streak *UserStreak
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.activities.WithTx(tx).Create(ctx, entry); err != nil {
			return err
		}

		streakType, ok := req.ActivityType.StreakType()
		if !ok {
			return nil
		}

		streaks := s.streaks.WithTx(tx)
		st, err := streaks.FindByUserAndType(ctx, userID, streakType)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			st = &UserStreak{UserID: userID, StreakType: streakType}
		} else if err != nil {
			return err
		}

		if st.Touch(now) {
			if err := streaks.Save(ctx, st); err != nil {
				return err
			}
		}
		streak = st
		return nil
	})
	if err != nil {
		log.Error("record activity failed",
			zap.Int64("user_id", userID),
			zap.String("activity_type", string(req.ActivityType)),
			zap.Error(err),
		)
		return ActivityResultDTO{}, err
	}

	s.invalidateLeaderboard(ctx)

	result := ActivityResultDTO{
		PointsEarned: entry.PointsEarned,
		BadgesEarned: s.checkBadges(ctx, userID, req.ActivityType, streak),
	}
	if streak != nil {
		dto := UserStreakFromEntity(*streak, now)
		result.Streak = &dto
	}

	log.Debug("activity recorded",
		zap.Int64("user_id", userID),
		zap.String("activity_type", string(req.ActivityType)),
		zap.Int("points", entry.PointsEarned),
	)
	return result, nil
}

func (s *service) checkBadges(ctx context.Context, userID int64, activity ActivityType, streak *UserStreak) []UserBadgeDTO {
	log := contextutil.GetLogger(ctx, s.logger)
	awarded := make([]UserBadgeDTO, 0)

	category, ok := activity.BadgeCategory()
	if !ok {
		return awarded
	}

	candidates, err := s.badges.FindActiveByCategory(ctx, category)
	if err != nil {
		log.Error("load candidate badges failed", zap.String("category", string(category)), zap.Error(err))
		return awarded
	}
	if len(candidates) == 0 {
		return awarded
	}

	var progress int
	if category == CategoryLogin && streak != nil {
		progress = streak.CurrentCount
	} else {
		count, err := s.activities.CountByUserAndType(ctx, userID, activity)
		if err != nil {
			log.Error("count activities failed", zap.Int64("user_id", userID), zap.Error(err))
			return awarded
		}
		progress = int(count)
	}

	for _, b := range candidates {
		if b.RequiredCount == nil || progress < *b.RequiredCount {
			continue
		}
		dto, err := s.award(ctx, userID, b)
		if errors.Is(err, gamificationerrors.ErrBadgeAlreadyEarned) {
			continue
		}
		if err != nil {
			log.Error("auto award badge failed", zap.Int64("user_id", userID), zap.Int64("badge_id", b.ID), zap.Error(err))
			continue
		}
		awarded = append(awarded, dto)
	}
	return awarded
}

func (s *service) AwardBadge(ctx context.Context, userID, badgeID int64) (UserBadgeDTO, error) {
	if userID <= 0 {
		return UserBadgeDTO{}, gamificationerrors.ErrInvalidUserID
	}
	if badgeID <= 0 {
		return UserBadgeDTO{}, gamificationerrors.ErrInvalidBadgeID
	}

	badge, err := s.badges.FindByID(ctx, badgeID)
	if err != nil {
		return UserBadgeDTO{}, mapRepositoryError(err)
	}
	if !badge.IsActive {
		return UserBadgeDTO{}, gamificationerrors.ErrBadgeInactive
	}
	return s.award(ctx, userID, *badge)
}

// award stores the badge, its BADGE_EARNED activity and the outbox event in
// one transaction.
func (s *service) award(ctx context.Context, userID int64, badge Badge) (UserBadgeDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	exists, err := s.userBadges.ExistsByUserAndBadge(ctx, userID, badge.ID)
	if err != nil {
		return UserBadgeDTO{}, err
	}
	if exists {
		return UserBadgeDTO{}, gamificationerrors.ErrBadgeAlreadyEarned
	}

	progress := 100
	if badge.RequiredCount != nil {
		progress = *badge.RequiredCount
	}
	ub := &UserBadge{
		UserID:          userID,
		BadgeID:         badge.ID,
		CurrentProgress: &progress,
		IsDisplayed:     true,
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userBadges.WithTx(tx).Create(ctx, ub); err != nil {
			return err
		}

		data, err := json.Marshal(map[string]string{"badge_name": badge.Name})
		if err != nil {
			return err
		}
		if err := s.activities.WithTx(tx).Create(ctx, &ActivityLog{
			UserID:       userID,
			ActivityType: ActivityBadgeEarned,
			EntityID:     &badge.ID,
			ActivityData: string(data),
			PointsEarned: ActivityBadgeEarned.Points(),
		}); err != nil {
			return err
		}

		if s.outbox == nil {
			return nil
		}
		event := events.BadgeEarnedEvent{
			EventType:  "badge_earned",
			RequestID:  rid,
			UserID:     userID,
			BadgeID:    badge.ID,
			BadgeName:  badge.Name,
			Rarity:     badge.RarityLevel,
			OccurredAt: now.UTC(),
		}
		return kafka.Enqueue(ctx, s.outbox, tx, rid,
			"user_badge", strconv.FormatInt(ub.ID, 10),
			event.EventType, events.BadgeEarnedTopic, event)
	})
	if err != nil {
		log.Error("award badge failed", zap.Int64("user_id", userID), zap.Int64("badge_id", badge.ID), zap.Error(err))
		return UserBadgeDTO{}, mapRepositoryError(err)
	}

	s.invalidateLeaderboard(ctx)

	log.Info("badge awarded",
		zap.Int64("user_id", userID),
		zap.Int64("badge_id", badge.ID),
		zap.String("badge_name", badge.Name),
	)
	ub.Badge = &badge
	return UserBadgeFromEntity(*ub), nil
}

func (s *service) AcknowledgeBadges(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, gamificationerrors.ErrInvalidUserID
	}
	return s.userBadges.MarkNotified(ctx, userID)
}

func (s *service) invalidateLeaderboard(ctx context.Context) {
	// a fill still in flight read the board before this write
	s.boardGen.Add(1)
	s.sf.Forget(LeaderboardKey)
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, LeaderboardKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leaderboard cache", zap.String("key", LeaderboardKey), zap.Error(err))
	}
}
