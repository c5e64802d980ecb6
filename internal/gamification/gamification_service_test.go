package gamification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/events"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	gamificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/errors"
	gamificationMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka"
	kafkaMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/messaging/kafka/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

const cacheTTL = 5 * time.Minute

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	service    gamification.Service
	badges     *gamificationMock.MockBadgeRepository
	userBadges *gamificationMock.MockUserBadgeRepository
	streaks    *gamificationMock.MockStreakRepository
	activities *gamificationMock.MockActivityRepository
	outbox     *kafkaMock.MockOutboxRepository
	redismock  redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := testutil.NewGormMock(t)
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:    sqlMock,
		badges:     gamificationMock.NewMockBadgeRepository(ctrl),
		userBadges: gamificationMock.NewMockUserBadgeRepository(ctrl),
		streaks:    gamificationMock.NewMockStreakRepository(ctrl),
		activities: gamificationMock.NewMockActivityRepository(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
		redismock:  redisMock,
	}
	deps.service = gamification.NewServiceWithOutbox(
		db, deps.badges, deps.userBadges, deps.streaks, deps.activities, deps.outbox, rdb, cacheTTL,
	)

	t.Cleanup(func() {
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
	return deps
}

func TestGamificationService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit serves a prefix", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached, err := json.Marshal([]gamification.LeaderboardEntryDTO{
			{UserID: 1, Rank: 1}, {UserID: 2, Rank: 2}, {UserID: 3, Rank: 3},
		})
		require.NoError(t, err)
		deps.redismock.ExpectGet(gamification.LeaderboardKey).SetVal(string(cached))

		entries, err := deps.service.Leaderboard(ctx, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[1].UserID)
	})

	t.Run("cache miss loads top entries and caches them", func(t *testing.T) {
		deps := setupServiceTest(t)

		row := gamification.LeaderboardRow{UserID: 9, UserName: "Ada", TotalPoints: 120, Rank: 1}
		body, err := json.Marshal([]gamification.LeaderboardEntryDTO{gamification.LeaderboardEntryFromRow(row)})
		require.NoError(t, err)

		deps.redismock.ExpectGet(gamification.LeaderboardKey).RedisNil()
		deps.activities.EXPECT().
			Leaderboard(gomock.Any(), gamification.MaxLeaderboardLimit).
			Return([]gamification.LeaderboardRow{row}, nil)
		deps.redismock.ExpectSet(gamification.LeaderboardKey, string(body), cacheTTL).SetVal("OK")

		entries, err := deps.service.Leaderboard(ctx, 0)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "🥇", entries[0].RankEmoji)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(gamification.LeaderboardKey).RedisNil()
		deps.activities.EXPECT().
			Leaderboard(gomock.Any(), gamification.MaxLeaderboardLimit).
			Return(nil, errors.New("db down"))

		entries, err := deps.service.Leaderboard(ctx, 10)

		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

// setupDirectServiceTest wires the service without an outbox, and without
// redis unless cached is set.
func setupDirectServiceTest(t *testing.T, cached bool, logger *zap.Logger) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &serviceDeps{
		sqlMock:    sqlMock,
		badges:     gamificationMock.NewMockBadgeRepository(ctrl),
		userBadges: gamificationMock.NewMockUserBadgeRepository(ctrl),
		streaks:    gamificationMock.NewMockStreakRepository(ctrl),
		activities: gamificationMock.NewMockActivityRepository(ctrl),
	}

	var rdb *redis.Client
	if cached {
		client, redisMock := redismock.NewClientMock()
		rdb, deps.redismock = client, redisMock
		t.Cleanup(func() {
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
	deps.service = gamification.NewService(db, deps.badges, deps.userBadges, deps.streaks, deps.activities, rdb, cacheTTL, logger)
	return deps
}

func TestGamificationService_LeaderboardSharedLoad(t *testing.T) {
	t.Run("cancelled caller does not cancel the load", func(t *testing.T) {
		deps := setupDirectServiceTest(t, false, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		row := gamification.LeaderboardRow{UserID: 9, UserName: "Ada", TotalPoints: 120, Rank: 1}
		deps.activities.EXPECT().
			Leaderboard(gomock.Any(), gamification.MaxLeaderboardLimit).
			DoAndReturn(func(ctx context.Context, _ int) ([]gamification.LeaderboardRow, error) {
				assert.NoError(t, ctx.Err())
				return []gamification.LeaderboardRow{row}, nil
			})

		entries, err := deps.service.Leaderboard(ctx, 5)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(9), entries[0].UserID)
	})

	t.Run("award during a load starts a fresh one", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		deps := setupDirectServiceTest(t, true, zap.New(core))
		ctx := context.Background()

		stale := gamification.LeaderboardRow{UserID: 1, TotalPoints: 10, Rank: 1}
		fresh := gamification.LeaderboardRow{UserID: 7, TotalPoints: 60, Rank: 1}
		freshBody, err := json.Marshal([]gamification.LeaderboardEntryDTO{gamification.LeaderboardEntryFromRow(fresh)})
		require.NoError(t, err)

		// only the load that began after the award may fill the cache
		deps.redismock.ExpectGet(gamification.LeaderboardKey).RedisNil()
		deps.redismock.ExpectDel(gamification.LeaderboardKey).SetVal(1)
		deps.redismock.ExpectGet(gamification.LeaderboardKey).RedisNil()
		deps.redismock.ExpectSet(gamification.LeaderboardKey, string(freshBody), cacheTTL).SetVal("OK")

		started, release := make(chan struct{}), make(chan struct{})
		gomock.InOrder(
			deps.activities.EXPECT().
				Leaderboard(gomock.Any(), gamification.MaxLeaderboardLimit).
				DoAndReturn(func(context.Context, int) ([]gamification.LeaderboardRow, error) {
					close(started)
					<-release
					return []gamification.LeaderboardRow{stale}, nil
				}),
			deps.activities.EXPECT().
				Leaderboard(gomock.Any(), gamification.MaxLeaderboardLimit).
				Return([]gamification.LeaderboardRow{fresh}, nil),
		)

		first := make(chan []gamification.LeaderboardEntryDTO, 1)
		go func() {
			entries, _ := deps.service.Leaderboard(ctx, 1)
			first <- entries
		}()
		<-started

		badge := gamification.Badge{ID: 3, Name: "Coffee Enthusiast", RequiredCount: intPtr(5), IsActive: true, RarityLevel: 2}
		deps.badges.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&badge, nil)
		deps.userBadges.EXPECT().ExistsByUserAndBadge(gomock.Any(), int64(7), int64(3)).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.userBadges.EXPECT().WithTx(gomock.Any()).Return(deps.userBadges)
		deps.userBadges.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.activities.EXPECT().WithTx(gomock.Any()).Return(deps.activities)
		deps.activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		_, err = deps.service.AwardBadge(ctx, 7, 3)
		require.NoError(t, err)

		second := make(chan []gamification.LeaderboardEntryDTO, 1)
		go func() {
			entries, _ := deps.service.Leaderboard(ctx, 1)
			second <- entries
		}()

		select {
		case entries := <-second:
			require.Len(t, entries, 1)
			assert.Equal(t, int64(7), entries[0].UserID)
		case <-time.After(time.Second):
			close(release)
			t.Fatal("leaderboard joined the load started before the award")
		}

		close(release)
		stalled := <-first
		require.Len(t, stalled, 1)
		assert.Equal(t, int64(1), stalled[0].UserID)
		// an unexpected SET from the older load would surface as a cache warning
		assert.Zero(t, logs.FilterMessage("cache leaderboard failed").Len())
	})
}

func TestGamificationService_RecordActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("first login starts streak and unlocks badge", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.activities.EXPECT().WithTx(gomock.Any()).Return(deps.activities)
		deps.activities.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *gamification.ActivityLog) error {
				assert.Equal(t, gamification.ActivityLogin, a.ActivityType)
				assert.Equal(t, 5, a.PointsEarned)
				return nil
			})
		deps.streaks.EXPECT().WithTx(gomock.Any()).Return(deps.streaks)
		deps.streaks.EXPECT().
			FindByUserAndType(gomock.Any(), int64(7), gamification.StreakDailyLogin).
			Return(nil, gorm.ErrRecordNotFound)
		deps.streaks.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *gamification.UserStreak) error {
				assert.Equal(t, 1, s.CurrentCount)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(gamification.LeaderboardKey).SetVal(1)

		firstLogin := gamification.Badge{ID: 1, Name: "First Login", RequiredCount: intPtr(1), IsActive: true, RarityLevel: 1}
		deps.badges.EXPECT().
			FindActiveByCategory(gomock.Any(), gamification.CategoryLogin).
			Return([]gamification.Badge{firstLogin}, nil)
		deps.userBadges.EXPECT().ExistsByUserAndBadge(gomock.Any(), int64(7), int64(1)).Return(false, nil)

		deps.sqlMock.ExpectBegin()
		deps.userBadges.EXPECT().WithTx(gomock.Any()).Return(deps.userBadges)
		deps.userBadges.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ub *gamification.UserBadge) error {
				ub.ID = 50
				return nil
			})
		deps.activities.EXPECT().WithTx(gomock.Any()).Return(deps.activities)
		deps.activities.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *gamification.ActivityLog) error {
				assert.Equal(t, gamification.ActivityBadgeEarned, a.ActivityType)
				assert.Equal(t, 50, a.PointsEarned)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.BadgeEarnedTopic, e.Topic)
				assert.Equal(t, "50", e.AggregateID)

				var payload events.BadgeEarnedEvent
				require.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, "First Login", payload.BadgeName)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(gamification.LeaderboardKey).SetVal(1)

		result, err := deps.service.RecordActivity(ctx, 7, gamification.RecordActivityRequest{
			ActivityType: gamification.ActivityLogin,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, result.PointsEarned)
		require.NotNil(t, result.Streak)
		assert.True(t, result.Streak.IsActive)
		require.Len(t, result.BadgesEarned, 1)
		assert.Equal(t, "100.0%", result.BadgesEarned[0].ProgressPercentage)
	})

	t.Run("activity without streak or badges", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.activities.EXPECT().WithTx(gomock.Any()).Return(deps.activities)
		deps.activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.redismock.ExpectDel(gamification.LeaderboardKey).SetVal(1)

		result, err := deps.service.RecordActivity(ctx, 7, gamification.RecordActivityRequest{
			ActivityType: gamification.ActivityProfileUpdated,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Streak)
		assert.Empty(t, result.BadgesEarned)
	})

	t.Run("rolls back when streak save fails", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.activities.EXPECT().WithTx(gomock.Any()).Return(deps.activities)
		deps.activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.streaks.EXPECT().WithTx(gomock.Any()).Return(deps.streaks)
		deps.streaks.EXPECT().FindByUserAndType(gomock.Any(), int64(7), gamification.StreakCoffeeChat).
			Return(nil, gorm.ErrRecordNotFound)
		deps.streaks.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.RecordActivity(ctx, 7, gamification.RecordActivityRequest{
			ActivityType: gamification.ActivityCoffeeChatCompleted,
		})

		assert.EqualError(t, err, "write failed")
	})

	t.Run("rejects unknown activity", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RecordActivity(ctx, 7, gamification.RecordActivityRequest{ActivityType: "DANCING"})

		assert.ErrorIs(t, err, gamificationerrors.ErrInvalidActivityType)
	})
}

func TestGamificationService_AwardBadge(t *testing.T) {
	ctx := context.Background()
	badge := gamification.Badge{ID: 3, Name: "Coffee Enthusiast", RequiredCount: intPtr(5), IsActive: true, RarityLevel: 2}

	t.Run("already held", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.badges.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&badge, nil)
		deps.userBadges.EXPECT().ExistsByUserAndBadge(gomock.Any(), int64(7), int64(3)).Return(true, nil)

		_, err := deps.service.AwardBadge(ctx, 7, 3)

		assert.ErrorIs(t, err, gamificationerrors.ErrBadgeAlreadyEarned)
	})

	t.Run("unknown badge", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.badges.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AwardBadge(ctx, 7, 99)

		assert.ErrorIs(t, err, gamificationerrors.ErrBadgeNotFound)
	})

	t.Run("inactive badge", func(t *testing.T) {
		deps := setupServiceTest(t)

		retired := badge
		retired.IsActive = false
		deps.badges.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&retired, nil)

		_, err := deps.service.AwardBadge(ctx, 7, 3)

		assert.ErrorIs(t, err, gamificationerrors.ErrBadgeInactive)
	})

	t.Run("concurrent award hits unique constraint", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.badges.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&badge, nil)
		deps.userBadges.EXPECT().ExistsByUserAndBadge(gomock.Any(), int64(7), int64(3)).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.userBadges.EXPECT().WithTx(gomock.Any()).Return(deps.userBadges)
		deps.userBadges.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_badges_user_badge"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.AwardBadge(ctx, 7, 3)

		assert.ErrorIs(t, err, gamificationerrors.ErrBadgeAlreadyEarned)
	})
}

func TestGamificationService_Summary(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	today := time.Now().UTC()

	earned := make([]gamification.UserBadge, 0, 7)
	for i := 0; i < 7; i++ {
		earned = append(earned, gamification.UserBadge{ID: int64(i + 1), UserID: 7, Badge: &gamification.Badge{ID: int64(i + 1)}})
	}

	deps.streaks.EXPECT().FindByUser(gomock.Any(), int64(7)).Return([]gamification.UserStreak{
		{StreakType: gamification.StreakDailyLogin, CurrentCount: 3, BestCount: 4, LastActivityDate: &today},
		{StreakType: gamification.StreakCoffeeChat, CurrentCount: 0, BestCount: 11},
	}, nil)
	deps.userBadges.EXPECT().FindByUserWithBadge(gomock.Any(), int64(7)).Return(earned, nil)
	deps.userBadges.EXPECT().FindDisplayedWithBadge(gomock.Any(), int64(7)).Return(earned[:2], nil)
	deps.activities.EXPECT().TotalPointsByUser(gomock.Any(), int64(7)).Return(int64(340), nil)
	deps.activities.EXPECT().UserRank(gomock.Any(), int64(7)).Return(4, nil)
	deps.userBadges.EXPECT().FindUnnotified(gomock.Any(), int64(7)).Return(earned[:1], nil)

	summary, err := deps.service.Summary(ctx, 7)

	require.NoError(t, err)
	assert.Len(t, summary.ActiveStreaks, 1)
	assert.Len(t, summary.RecentBadges, 5)
	assert.Len(t, summary.DisplayedBadges, 2)
	assert.Equal(t, int64(7), summary.TotalBadges)
	assert.Equal(t, int64(340), summary.TotalPoints)
	assert.Equal(t, 11, summary.LongestStreak)
	assert.Equal(t, "COFFEE_CHAT", summary.LongestStreakType)
	assert.Equal(t, 4, summary.Rank)
	assert.True(t, summary.HasNewAchievements)
}

func TestGamificationService_BadgeProgress(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	earnedAt := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	deps.badges.EXPECT().FindActive(gomock.Any()).Return([]gamification.Badge{
		{ID: 1, BadgeCategory: gamification.CategoryLogin, RequiredCount: intPtr(7), RarityLevel: 1},
		{ID: 2, BadgeCategory: gamification.CategoryCoffeeChat, RequiredCount: intPtr(5), RarityLevel: 2},
		{ID: 3, BadgeCategory: gamification.CategoryLounge, RequiredCount: intPtr(1), RarityLevel: 1},
	}, nil)
	deps.userBadges.EXPECT().FindByUser(gomock.Any(), int64(7)).Return([]gamification.UserBadge{
		{BadgeID: 3, CurrentProgress: intPtr(1), EarnedAt: earnedAt},
	}, nil)
	deps.activities.EXPECT().CountsByUser(gomock.Any(), int64(7)).Return(map[gamification.ActivityType]int64{
		gamification.ActivityCoffeeChatCompleted: 4,
	}, nil)
	deps.streaks.EXPECT().FindByUserAndType(gomock.Any(), int64(7), gamification.StreakDailyLogin).
		Return(&gamification.UserStreak{CurrentCount: 2}, nil)

	progress, err := deps.service.BadgeProgress(ctx, 7)

	require.NoError(t, err)
	require.Len(t, progress, 3)

	assert.Equal(t, 28, progress[0].ProgressPercentage)
	assert.False(t, progress[0].IsCloseToEarning)

	assert.Equal(t, 80, progress[1].ProgressPercentage)
	assert.True(t, progress[1].IsCloseToEarning)

	assert.True(t, progress[2].IsEarned)
	assert.Equal(t, earnedAt, *progress[2].EarnedAt)
}
