package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match"
	matcherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/errors"
	matchMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"
	userMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  match.Service
	repo     *matchMock.MockRepository
	feedback *matchMock.MockFeedbackRepository
	chat     *matchMock.MockChatRepository
	starters *matchMock.MockStarterRepository
	users    *userMock.MockRepository
	prefs    *userMock.MockPreferencesRepository
	activity *matchMock.MockActivityRecorder
	notifier *matchMock.MockNotifier
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &serviceDeps{
		sqlMock:  sqlMock,
		repo:     matchMock.NewMockRepository(ctrl),
		feedback: matchMock.NewMockFeedbackRepository(ctrl),
		chat:     matchMock.NewMockChatRepository(ctrl),
		starters: matchMock.NewMockStarterRepository(ctrl),
		users:    userMock.NewMockRepository(ctrl),
		prefs:    userMock.NewMockPreferencesRepository(ctrl),
		activity: matchMock.NewMockActivityRecorder(ctrl),
		notifier: matchMock.NewMockNotifier(ctrl),
	}
	deps.service = match.NewService(db, match.Deps{
		Repo:     deps.repo,
		Feedback: deps.feedback,
		Chat:     deps.chat,
		Starters: deps.starters,
		Users:    deps.users,
		Prefs:    deps.prefs,
		Activity: deps.activity,
		Notifier: deps.notifier,
	})
	return deps
}

func activeUser(id int64, name string) *user.User {
	return &user.User{ID: id, Name: name, Email: name + "@example.com", IsActive: true}
}

func expectActivity(t *testing.T, kind gamification.ActivityType) func(context.Context, int64, gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error) {
	return func(_ context.Context, _ int64, req gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error) {
		assert.Equal(t, kind, req.ActivityType)
		return gamification.ActivityResultDTO{}, nil
	}
}

func expectNotification(t *testing.T, userID int64, kind notification.Type) func(context.Context, notification.CreateNotificationRequest) (*notification.NotificationDTO, error) {
	return func(_ context.Context, req notification.CreateNotificationRequest) (*notification.NotificationDTO, error) {
		assert.Equal(t, userID, req.UserID)
		assert.Equal(t, kind, req.Type)
		return &notification.NotificationDTO{}, nil
	}
}

func TestMatchService_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects matching with yourself", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Request(ctx, 1, match.CreateMatchRequest{TargetUserID: 1})
		assert.ErrorIs(t, err, matcherrors.ErrSelfMatch)
	})

	t.Run("inactive target is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		target := activeUser(2, "bob")
		target.IsActive = false

		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(activeUser(1, "ada"), nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(target, nil)

		_, err := deps.service.Request(ctx, 1, match.CreateMatchRequest{TargetUserID: 2})
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("open match between the pair conflicts", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(activeUser(1, "ada"), nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(activeUser(2, "bob"), nil)
		deps.repo.EXPECT().ExistsBetween(ctx, int64(1), int64(2),
			match.StatusPending, match.StatusAccepted, match.StatusScheduled, match.StatusInProgress,
		).Return(true, nil)

		_, err := deps.service.Request(ctx, 1, match.CreateMatchRequest{TargetUserID: 2})
		assert.ErrorIs(t, err, matcherrors.ErrMatchExists)
	})

	t.Run("creates pending match and notifies target", func(t *testing.T) {
		deps := setupServiceTest(t)
		ada := activeUser(1, "ada")
		ada.Industry, ada.Skills = "Fintech", "go,sql"
		bob := activeUser(2, "bob")
		bob.Industry, bob.Skills = "fintech", "go,rust"

		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(ada, nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(bob, nil)
		deps.repo.EXPECT().ExistsBetween(ctx, int64(1), int64(2), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *match.Match) error {
			assert.Equal(t, match.StatusPending, m.Status)
			assert.Equal(t, match.TypeCoffeeChat, m.MatchType)
			assert.Equal(t, match.DefaultDurationMinutes, m.DurationMinutes)
			require.NotNil(t, m.CompatibilityScore)
			assert.InDelta(t, 0.55, *m.CompatibilityScore, 0.001)
			m.ID = 7
			return nil
		})
		deps.chat.EXPECT().WithTx(gomock.Any()).Return(deps.chat)
		deps.chat.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *match.ChatHistory) error {
			assert.Equal(t, int64(7), c.MatchID)
			assert.Equal(t, match.ChatMatchRequest, c.MessageType)
			assert.True(t, c.IsSystemMessage)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(1), gomock.Any()).DoAndReturn(expectActivity(t, gamification.ActivityCoffeeChatRequest))
		deps.notifier.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(expectNotification(t, 2, notification.TypeConnectionRequest))

		res, err := deps.service.Request(ctx, 1, match.CreateMatchRequest{TargetUserID: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(7), res.ID)
		assert.Equal(t, "ada", res.User1Name)
		assert.Equal(t, "bob", res.User2Name)
		require.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestMatchService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("only the recipient may respond", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusPending}, nil)

		_, err := deps.service.Respond(ctx, 7, 1, match.RespondRequest{Status: match.StatusAccepted})
		assert.ErrorIs(t, err, matcherrors.ErrNotRecipient)
	})

	t.Run("answered match is not pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusRejected}, nil)

		_, err := deps.service.Respond(ctx, 7, 2, match.RespondRequest{Status: match.StatusAccepted})
		assert.ErrorIs(t, err, matcherrors.ErrMatchNotPending)
	})

	t.Run("missing match maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Respond(ctx, 7, 2, match.RespondRequest{Status: match.StatusAccepted})
		assert.ErrorIs(t, err, matcherrors.ErrMatchNotFound)
	})

	t.Run("accepting rewards both sides", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusPending, DurationMinutes: 30}, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *match.Match) error {
			assert.Equal(t, match.StatusAccepted, m.Status)
			assert.Equal(t, 45, m.DurationMinutes)
			return nil
		})
		deps.chat.EXPECT().WithTx(gomock.Any()).Return(deps.chat)
		deps.chat.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(2), gomock.Any()).DoAndReturn(expectActivity(t, gamification.ActivityCoffeeChatAccepted))
		deps.activity.EXPECT().RecordActivity(ctx, int64(1), gomock.Any()).DoAndReturn(expectActivity(t, gamification.ActivityMatchFound))
		deps.notifier.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(expectNotification(t, 1, notification.TypeMatchFound))
		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(activeUser(1, "ada"), nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(activeUser(2, "bob"), nil)

		res, err := deps.service.Respond(ctx, 7, 2, match.RespondRequest{Status: match.StatusAccepted, DurationMinutes: 45})
		require.NoError(t, err)
		assert.Equal(t, match.StatusAccepted, res.Status)
		require.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejecting sends no rewards", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusPending}, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.chat.EXPECT().WithTx(gomock.Any()).Return(deps.chat)
		deps.chat.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *match.ChatHistory) error {
			assert.Equal(t, match.ChatMatchRejected, c.MessageType)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.users.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(2)

		res, err := deps.service.Respond(ctx, 7, 2, match.RespondRequest{Status: match.StatusRejected})
		require.NoError(t, err)
		assert.Equal(t, match.StatusRejected, res.Status)
		assert.Empty(t, res.User1Name)
	})
}

func TestMatchService_Suggestions(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	me := activeUser(1, "ada")
	me.Industry, me.Skills, me.Interests = "Fintech", "go,sql", "chess"
	strong := user.User{ID: 2, Name: "bob", Industry: "fintech", Skills: "go,sql", Interests: "chess", IsActive: true}
	weak := user.User{ID: 3, Name: "cy", Industry: "retail", Skills: "excel", IsActive: true}
	unavailable := user.User{ID: 4, Name: "di", Industry: "fintech", Skills: "go,sql", IsActive: true}

	deps.users.EXPECT().FindByID(ctx, int64(1)).Return(me, nil)
	deps.repo.EXPECT().FindMatchedUserIDs(ctx, int64(1)).Return([]int64{9}, nil)
	deps.prefs.EXPECT().FindAvailableExcluding(ctx, int64(1)).Return([]user.Preferences{{UserID: 2}, {UserID: 3}}, nil)
	deps.users.EXPECT().FindActiveExcluding(ctx, []int64{9, 1}).Return([]user.User{weak, strong, unavailable}, nil)

	res, err := deps.service.Suggestions(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].UserID)
	assert.InDelta(t, 0.9, res[0].CompatibilityScore, 0.001)
	assert.Equal(t, "Works in a similar industry", res[0].MatchReason)
}

func TestMatchService_SubmitFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("outsider cannot rate", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2}, nil)

		_, err := deps.service.SubmitFeedback(ctx, 7, 3, match.FeedbackRequest{QualityRating: 5})
		assert.ErrorIs(t, err, matcherrors.ErrNotMatchParticipant)
	})

	t.Run("second rating rescores completed match", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := &match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusCompleted}
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(m, nil)
		deps.feedback.EXPECT().FindByMatchAndUser(ctx, int64(7), int64(2)).Return(nil, gorm.ErrRecordNotFound)
		deps.feedback.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f *match.Feedback) error {
			assert.Equal(t, int64(2), f.UserID)
			assert.Equal(t, "fun,useful", f.Tags)
			f.ID = 11
			return nil
		})
		deps.feedback.EXPECT().FindByMatch(ctx, int64(7)).Return([]match.Feedback{{QualityRating: 5}, {QualityRating: 3}}, nil)
		deps.repo.EXPECT().Update(ctx, m).DoAndReturn(func(_ context.Context, m *match.Match) error {
			require.NotNil(t, m.CompatibilityScore)
			assert.InDelta(t, 0.8, *m.CompatibilityScore, 0.001)
			return nil
		})

		res, err := deps.service.SubmitFeedback(ctx, 7, 2, match.FeedbackRequest{
			QualityRating:      3,
			ConversationRating: intPtr(4),
			Tags:               []string{"fun", "useful"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, 3.5, res.AverageRating)
	})

	t.Run("rescore failure is not fatal", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2, Status: match.StatusCompleted}, nil)
		deps.feedback.EXPECT().FindByMatchAndUser(ctx, int64(7), int64(1)).Return(&match.Feedback{ID: 3, MatchID: 7, UserID: 1, QualityRating: 2}, nil)
		deps.feedback.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		deps.feedback.EXPECT().FindByMatch(ctx, int64(7)).Return(nil, errors.New("db down"))

		res, err := deps.service.SubmitFeedback(ctx, 7, 1, match.FeedbackRequest{QualityRating: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.ID)
		assert.Equal(t, 4, res.QualityRating)
	})
}

func TestMatchService_QualityStats(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.feedback.EXPECT().Count(ctx).Return(int64(10), nil)
	deps.feedback.EXPECT().CountPositive(ctx).Return(int64(6), nil)
	deps.feedback.EXPECT().CountHighQuality(ctx, 4).Return(int64(5), nil)

	res, err := deps.service.QualityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.6, res.PositiveRate)
	assert.Equal(t, 0.5, res.HighQualityRate)
}

func TestMatchService_Starters(t *testing.T) {
	ctx := context.Background()

	t.Run("uses shared terms as tags", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := activeUser(1, "ada")
		a.Skills = "Go, SQL"
		b := activeUser(2, "bob")
		b.Skills = "go"

		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2}, nil)
		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(a, nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(b, nil)
		deps.starters.EXPECT().FindByTags(ctx, "go", "go", "go").Return([]match.ConversationStarter{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
		deps.starters.EXPECT().IncrementUsage(ctx, []int64{1, 2}).Return(nil)

		res, err := deps.service.Starters(ctx, 7, 2, 2)
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("falls back to random starters", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindActiveByID(ctx, int64(7)).Return(&match.Match{ID: 7, User1ID: 1, User2ID: 2}, nil)
		deps.users.EXPECT().FindByID(ctx, int64(1)).Return(activeUser(1, "ada"), nil)
		deps.users.EXPECT().FindByID(ctx, int64(2)).Return(activeUser(2, "bob"), nil)
		deps.starters.EXPECT().FindRandom(ctx, match.DefaultStarterLimit).Return([]match.ConversationStarter{{ID: 4}}, nil)
		deps.starters.EXPECT().IncrementUsage(ctx, []int64{4}).Return(errors.New("ignored"))

		res, err := deps.service.Starters(ctx, 7, 1, 0)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, int64(4), res[0].ID)
	})
}

func intPtr(v int) *int { return &v }
