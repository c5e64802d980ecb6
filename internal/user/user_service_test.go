package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	usererrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/errors"
	userMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service user.Service
	repo    *userMock.MockRepository
	prefs   *userMock.MockPreferencesRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	prefs := userMock.NewMockPreferencesRepository(ctrl)
	return &serviceDeps{
		service: user.NewService(repo, prefs),
		repo:    repo,
		prefs:   prefs,
	}
}

func strPtr(s string) *string { return &s }

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(&user.User{ID: 7, Name: "Ada", Email: "ada@acme.io", Role: user.RoleUser, IsActive: true}, nil)

		res, err := deps.service.GetProfile(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "ada@acme.io", res.Email)
		assert.True(t, res.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetProfile(ctx, 7)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetProfile(ctx, 0)

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
		Return(&user.User{ID: 7, Name: "Ada", Industry: "Finance", Skills: "go"}, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "Ada Lovelace", u.Name)
			assert.Equal(t, "Finance", u.Industry)
			assert.Equal(t, "go,sql", u.Skills)
			return nil
		})

	res, err := deps.service.UpdateProfile(ctx, 7, user.UpdateProfileRequest{
		Name:   strPtr("  Ada Lovelace "),
		Skills: strPtr("go,sql"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", res.Name)
}

func TestUserService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&user.User{ID: 7, IsActive: true}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.False(t, u.IsActive)
				return nil
			})

		assert.NoError(t, deps.service.SetStatus(ctx, 7, false))
	})

	t.Run("unchanged status skips write", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&user.User{ID: 7, IsActive: true}, nil)

		assert.NoError(t, deps.service.SetStatus(ctx, 7, true))
	})
}

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()
	page := pagination.New(2, 10)
	found := []user.User{{ID: 1, Name: "Ada"}}

	t.Run("filters use the filtered query", func(t *testing.T) {
		deps := setupServiceTest(t)
		filter := user.SearchFilter{Query: "ada", Industry: "finance"}
		deps.repo.EXPECT().FindWithFilters(gomock.Any(), filter, page).Return(found, int64(25), nil)

		res, err := deps.service.Search(ctx, filter, page)

		require.NoError(t, err)
		assert.Equal(t, int64(25), res.TotalResults)
		assert.Equal(t, 3, res.TotalPages)
		assert.True(t, res.HasNext)
		assert.True(t, res.HasPrevious)
		assert.Len(t, res.Users, 1)
	})

	t.Run("bare query searches name and email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Search(gomock.Any(), "ada", page).Return(found, int64(11), nil)

		res, err := deps.service.Search(ctx, user.SearchFilter{Query: " ada "}, page)

		require.NoError(t, err)
		assert.Equal(t, "ada", res.Query)
		assert.False(t, res.HasNext)
	})

	t.Run("empty query lists active users", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActivePaged(gomock.Any(), page).Return(nil, int64(0), nil)

		res, err := deps.service.Search(ctx, user.SearchFilter{}, page)

		require.NoError(t, err)
		assert.Empty(t, res.Users)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActivePaged(gomock.Any(), page).Return(nil, int64(0), errors.New("db down"))

		_, err := deps.service.Search(ctx, user.SearchFilter{}, page)

		assert.Error(t, err)
	})
}

func TestUserService_Suggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("short query returns nothing", func(t *testing.T) {
		deps := setupServiceTest(t)

		res, err := deps.service.Suggestions(ctx, "a")

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("names of top matches", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindTop5ByName(gomock.Any(), "ad").
			Return([]user.User{{Name: "Ada"}, {Name: "Adam"}}, nil)

		res, err := deps.service.Suggestions(ctx, "ad")

		require.NoError(t, err)
		assert.Equal(t, []string{"Ada", "Adam"}, res)
	})
}

func TestUserService_Preferences(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when none stored", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.prefs.EXPECT().FindByUserID(gomock.Any(), int64(7)).Return(nil, gorm.ErrRecordNotFound)

		res, err := deps.service.GetPreferences(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, user.DefaultChatDuration, res.PreferredChatDuration)
		assert.True(t, res.IsAvailableForMatching)
		assert.False(t, res.AutoAcceptMatches)
	})

	t.Run("update creates from defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		level := user.ExperienceSenior
		deps.prefs.EXPECT().FindByUserID(gomock.Any(), int64(7)).Return(nil, gorm.ErrRecordNotFound)
		deps.prefs.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *user.Preferences) error {
				assert.Equal(t, int64(7), p.UserID)
				assert.Equal(t, user.ExperienceSenior, p.PreferredExperienceLevel)
				assert.Equal(t, 30, p.PreferredChatDuration)
				return nil
			})

		res, err := deps.service.UpdatePreferences(ctx, 7, user.UpdatePreferencesRequest{PreferredExperienceLevel: &level})

		require.NoError(t, err)
		assert.Equal(t, user.ExperienceSenior, res.PreferredExperienceLevel)
	})

	t.Run("concurrent insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.prefs.EXPECT().FindByUserID(gomock.Any(), int64(7)).Return(nil, gorm.ErrRecordNotFound)
		deps.prefs.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_preferences_user"})

		_, err := deps.service.UpdatePreferences(ctx, 7, user.UpdatePreferencesRequest{})

		assert.ErrorIs(t, err, usererrors.ErrPreferencesConflict)
	})
}
