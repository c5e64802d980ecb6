package lounge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge"
	loungeerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/errors"
	loungeMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock      sqlmock.Sqlmock
	service      lounge.Service
	repo         *loungeMock.MockRepository
	participants *loungeMock.MockParticipantRepository
	messages     *loungeMock.MockMessageRepository
	activity     *loungeMock.MockActivityRecorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &serviceDeps{
		sqlMock:      sqlMock,
		repo:         loungeMock.NewMockRepository(ctrl),
		participants: loungeMock.NewMockParticipantRepository(ctrl),
		messages:     loungeMock.NewMockMessageRepository(ctrl),
		activity:     loungeMock.NewMockActivityRecorder(ctrl),
	}
	deps.service = lounge.NewService(db, deps.repo, deps.participants, deps.messages, deps.activity)
	return deps
}

func intPtr(v int) *int { return &v }

func expectActivity(t *testing.T, kind gamification.ActivityType) func(context.Context, int64, gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error) {
	return func(_ context.Context, _ int64, req gamification.RecordActivityRequest) (gamification.ActivityResultDTO, error) {
		assert.Equal(t, kind, req.ActivityType)
		return gamification.ActivityResultDTO{}, nil
	}
}

func TestLoungeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates lounge with creator seat", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := lounge.CreateLoungeRequest{
			Title: "Go Gophers",
			Topic: "golang",
			Tags:  []string{" go ", "", "backend"},
		}

		deps.repo.EXPECT().ExistsActiveByTitle(ctx, "Go Gophers").Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *lounge.Lounge) error {
			assert.Equal(t, "go,backend", l.Tags)
			assert.Equal(t, lounge.VisibilityPublic, l.Visibility)
			assert.Equal(t, 1, l.CurrentParticipants)
			l.ID = 10
			return nil
		})
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *lounge.Participant) error {
			assert.Equal(t, int64(10), p.LoungeID)
			assert.Equal(t, lounge.RoleCreator, p.Role)
			return nil
		})
		deps.messages.EXPECT().WithTx(gomock.Any()).Return(deps.messages)
		deps.messages.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(7), gomock.Any()).
			DoAndReturn(expectActivity(t, gamification.ActivityLoungeCreated))

		res, err := deps.service.Create(ctx, 7, req)

		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ID)
		assert.Equal(t, []string{"go", "backend"}, res.Tags)
		assert.True(t, res.IsParticipant)
		assert.Equal(t, lounge.RoleCreator, res.UserRole)
		assert.Equal(t, -1, res.SpotsLeft)
	})

	t.Run("title taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsActiveByTitle(ctx, "Go Gophers").Return(true, nil)

		_, err := deps.service.Create(ctx, 7, lounge.CreateLoungeRequest{Title: "Go Gophers", Topic: "go"})

		assert.ErrorIs(t, err, loungeerrors.ErrTitleTaken)
	})

	t.Run("activity failure does not fail create", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsActiveByTitle(ctx, "Quiet").Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.messages.EXPECT().WithTx(gomock.Any()).Return(deps.messages)
		deps.messages.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(7), gomock.Any()).
			Return(gamification.ActivityResultDTO{}, errors.New("boom"))

		_, err := deps.service.Create(ctx, 7, lounge.CreateLoungeRequest{Title: "Quiet", Topic: "calm"})

		assert.NoError(t, err)
	})
}

func TestLoungeService_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("joins and records activity", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, Title: "Coffee", MaxParticipants: intPtr(3), CurrentParticipants: 1, IsActive: true}, nil)
		deps.participants.EXPECT().ExistsActive(ctx, int64(5), int64(9)).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().IncrementParticipants(ctx, int64(5), gomock.Any()).Return(true, nil)
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *lounge.Participant) error {
			assert.Equal(t, lounge.RoleMember, p.Role)
			assert.True(t, p.IsActive)
			return nil
		})
		deps.messages.EXPECT().WithTx(gomock.Any()).Return(deps.messages)
		deps.messages.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *lounge.Message) error {
			assert.Equal(t, lounge.MessageJoin, m.MessageType)
			return nil
		})
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(9), gomock.Any()).
			DoAndReturn(expectActivity(t, gamification.ActivityLoungeJoined))

		res, err := deps.service.Join(ctx, 5, 9)

		require.NoError(t, err)
		assert.Equal(t, 2, res.CurrentParticipants)
		assert.Equal(t, 1, res.SpotsLeft)
		assert.False(t, res.IsFull)
		assert.True(t, res.IsParticipant)
	})

	t.Run("full lounge rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, MaxParticipants: intPtr(2), CurrentParticipants: 2, IsActive: true}, nil)
		deps.participants.EXPECT().ExistsActive(ctx, int64(5), int64(9)).Return(false, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().IncrementParticipants(ctx, int64(5), gomock.Any()).Return(false, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Join(ctx, 5, 9)

		assert.ErrorIs(t, err, loungeerrors.ErrLoungeFull)
	})

	t.Run("already participant", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(&lounge.Lounge{ID: 5, IsActive: true}, nil)
		deps.participants.EXPECT().ExistsActive(ctx, int64(5), int64(9)).Return(true, nil)

		_, err := deps.service.Join(ctx, 5, 9)

		assert.ErrorIs(t, err, loungeerrors.ErrAlreadyParticipant)
	})

	t.Run("unknown lounge", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Join(ctx, 5, 9)

		assert.ErrorIs(t, err, loungeerrors.ErrLoungeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Join(ctx, 0, 9)

		assert.ErrorIs(t, err, loungeerrors.ErrInvalidLoungeID)
	})
}

func TestLoungeService_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("member leaves", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).
			Return(&lounge.Participant{ID: 1, LoungeID: 5, UserID: 9, Role: lounge.RoleMember, IsActive: true}, nil)
		deps.sqlMock.ExpectBegin()
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *lounge.Participant) error {
			assert.False(t, p.IsActive)
			return nil
		})
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DecrementParticipants(ctx, int64(5), gomock.Any()).Return(nil)
		deps.messages.EXPECT().WithTx(gomock.Any()).Return(deps.messages)
		deps.messages.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		assert.NoError(t, deps.service.Leave(ctx, 5, 9))
	})

	t.Run("creator cannot leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).
			Return(&lounge.Participant{Role: lounge.RoleCreator, IsActive: true}, nil)

		assert.ErrorIs(t, deps.service.Leave(ctx, 5, 9), loungeerrors.ErrCreatorCannotLeave)
	})

	t.Run("not a participant", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Leave(ctx, 5, 9), loungeerrors.ErrNotParticipant)
	})
}

func TestLoungeService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and touches activity", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(&lounge.Lounge{ID: 5, IsActive: true}, nil)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).
			Return(&lounge.Participant{ID: 2, LoungeID: 5, UserID: 9, Role: lounge.RoleMember, IsActive: true}, nil)
		deps.sqlMock.ExpectBegin()
		deps.messages.EXPECT().WithTx(gomock.Any()).Return(deps.messages)
		deps.messages.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *lounge.Message) error {
			assert.Equal(t, "hello all", m.Content)
			assert.Equal(t, lounge.MessageText, m.MessageType)
			m.ID = 77
			return nil
		})
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Touch(ctx, int64(5), gomock.Any()).Return(nil)
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.activity.EXPECT().RecordActivity(ctx, int64(9), gomock.Any()).
			DoAndReturn(expectActivity(t, gamification.ActivityLoungeMessageSent))

		res, err := deps.service.SendMessage(ctx, 5, 9, lounge.SendMessageRequest{Content: "  hello all "})

		require.NoError(t, err)
		assert.Equal(t, int64(77), res.ID)
	})

	t.Run("muted participant", func(t *testing.T) {
		deps := setupServiceTest(t)
		until := time.Now().Add(time.Hour)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(&lounge.Lounge{ID: 5, IsActive: true}, nil)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).
			Return(&lounge.Participant{IsMuted: true, MutedUntil: &until, IsActive: true}, nil)

		_, err := deps.service.SendMessage(ctx, 5, 9, lounge.SendMessageRequest{Content: "hi"})

		assert.ErrorIs(t, err, loungeerrors.ErrMuted)
	})

	t.Run("not a participant", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(&lounge.Lounge{ID: 5, IsActive: true}, nil)
		deps.participants.EXPECT().FindActiveByLoungeAndUser(ctx, int64(5), int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.SendMessage(ctx, 5, 9, lounge.SendMessageRequest{Content: "hi"})

		assert.ErrorIs(t, err, loungeerrors.ErrNotParticipant)
	})
}

func TestLoungeService_Messages(t *testing.T) {
	ctx := context.Background()

	t.Run("recent messages oldest first", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, Visibility: lounge.VisibilityPublic, IsActive: true}, nil)
		deps.messages.EXPECT().FindRecent(ctx, int64(5), lounge.DefaultMessageLimit).
			Return([]lounge.Message{{ID: 3}, {ID: 2}, {ID: 1}}, nil)

		res, err := deps.service.Messages(ctx, 5, 9, nil, 0)

		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, int64(1), res[0].ID)
		assert.Equal(t, int64(3), res[2].ID)
	})

	t.Run("private lounge requires participation", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, Visibility: lounge.VisibilityPrivate, IsActive: true}, nil)
		deps.participants.EXPECT().ExistsActive(ctx, int64(5), int64(9)).Return(false, nil)

		_, err := deps.service.Messages(ctx, 5, 9, nil, 0)

		assert.ErrorIs(t, err, loungeerrors.ErrNotParticipant)
	})

	t.Run("since filter", func(t *testing.T) {
		deps := setupServiceTest(t)
		since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, Visibility: lounge.VisibilityPublic, IsActive: true}, nil)
		deps.messages.EXPECT().FindSince(ctx, int64(5), since).Return([]lounge.Message{{ID: 8}}, nil)

		res, err := deps.service.Messages(ctx, 5, 9, &since, 0)

		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestLoungeService_List(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().Search(ctx, "go").Return([]lounge.Lounge{
		{ID: 1, Title: "Go", Visibility: lounge.VisibilityPublic},
		{ID: 2, Title: "Secret Go", Visibility: lounge.VisibilityPrivate},
		{ID: 3, Title: "Go Club", Visibility: lounge.VisibilityPrivate},
	}, nil)
	deps.participants.EXPECT().FindActiveByUser(ctx, int64(9)).
		Return([]lounge.Participant{{LoungeID: 3, Role: lounge.RoleModerator}}, nil)

	res, err := deps.service.List(ctx, 9, lounge.ListFilter{Query: "go", Featured: true})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.False(t, res[0].IsParticipant)
	assert.Equal(t, int64(3), res[1].ID)
	assert.Equal(t, lounge.RoleModerator, res[1].UserRole)
}

func TestLoungeService_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("creator closes", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).
			Return(&lounge.Lounge{ID: 5, CreatedBy: 9, CurrentParticipants: 4, IsActive: true}, nil)
		deps.sqlMock.ExpectBegin()
		deps.participants.EXPECT().WithTx(gomock.Any()).Return(deps.participants)
		deps.participants.EXPECT().DeactivateByLounge(ctx, int64(5)).Return(int64(4), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *lounge.Lounge) error {
			assert.False(t, l.IsActive)
			assert.Zero(t, l.CurrentParticipants)
			return nil
		})
		deps.sqlMock.ExpectCommit()

		assert.NoError(t, deps.service.Close(ctx, 5, 9))
	})

	t.Run("other users cannot close", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByID(ctx, int64(5)).Return(&lounge.Lounge{ID: 5, CreatedBy: 1, IsActive: true}, nil)

		assert.ErrorIs(t, deps.service.Close(ctx, 5, 9), loungeerrors.ErrNotCreator)
	})
}
