package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/auth"
	autherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/auth/errors"
	authMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/auth/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"
	userMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type serviceDeps struct {
	service  auth.Service
	users    *userMock.MockRepository
	activity *authMock.MockActivityRecorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	users := userMock.NewMockRepository(ctrl)
	activity := authMock.NewMockActivityRecorder(ctrl)
	return &serviceDeps{
		service:  auth.NewService(users, activity, testSecret),
		users:    users,
		activity: activity,
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func claimsOf(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues tokens", func(t *testing.T) {
		deps := setupServiceTest(t)
		company := int64(3)

		deps.users.EXPECT().ExistsByEmail(gomock.Any(), "ada@acme.io").Return(false, nil)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, user.RoleUser, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
				u.ID = 11
				return nil
			})

		res, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name:      "Ada",
			Email:     " Ada@Acme.io ",
			Password:  "s3cret-pass",
			CompanyID: &company,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), res.User.ID)

		claims := claimsOf(t, res.AccessToken)
		assert.Equal(t, float64(11), claims["user_id"])
		assert.Equal(t, float64(3), claims["company_id"])
		assert.Equal(t, "USER", claims["role"])
		assert.Equal(t, "access", claims["typ"])
	})

	t.Run("email taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().ExistsByEmail(gomock.Any(), "ada@acme.io").Return(true, nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "Ada", Email: "ada@acme.io", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("lost race on unique email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().ExistsByEmail(gomock.Any(), "ada@acme.io").Return(false, nil)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "Ada", Email: "ada@acme.io", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success records login activity", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &user.User{ID: 7, Email: "ada@acme.io", PasswordHash: hashed(t, "pw-12345"), Role: user.RoleAdmin, IsActive: true}

		deps.users.EXPECT().FindByEmail(gomock.Any(), "ada@acme.io").Return(u, nil)
		deps.users.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.NotNil(t, u.LastActiveDate)
				return nil
			})
		deps.activity.EXPECT().
			RecordActivity(gomock.Any(), int64(7), gamification.RecordActivityRequest{ActivityType: gamification.ActivityLogin}).
			Return(gamification.ActivityResultDTO{PointsEarned: 5}, nil)

		res, err := deps.service.Login(ctx, "ada@acme.io", "pw-12345")

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", claimsOf(t, res.AccessToken)["role"])
		assert.Equal(t, "refresh", claimsOf(t, res.RefreshToken)["typ"])
	})

	t.Run("activity failure does not block login", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &user.User{ID: 7, PasswordHash: hashed(t, "pw-12345"), IsActive: true}

		deps.users.EXPECT().FindByEmail(gomock.Any(), "ada@acme.io").Return(u, nil)
		deps.users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.activity.EXPECT().RecordActivity(gomock.Any(), int64(7), gomock.Any()).
			Return(gamification.ActivityResultDTO{}, errors.New("db down"))

		_, err := deps.service.Login(ctx, "ada@acme.io", "pw-12345")

		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ada@acme.io").
			Return(&user.User{ID: 7, PasswordHash: hashed(t, "pw-12345"), IsActive: true}, nil)

		_, err := deps.service.Login(ctx, "ada@acme.io", "nope")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ghost@acme.io").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, "ghost@acme.io", "pw-12345")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ada@acme.io").
			Return(&user.User{ID: 7, PasswordHash: hashed(t, "pw-12345"), IsActive: false}, nil)

		_, err := deps.service.Login(ctx, "ada@acme.io", "pw-12345")

		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	u := &user.User{ID: 7, PasswordHash: hashed(t, "pw-12345"), IsActive: true}

	deps.users.EXPECT().FindByEmail(gomock.Any(), "ada@acme.io").Return(u, nil)
	deps.users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	deps.activity.EXPECT().RecordActivity(gomock.Any(), int64(7), gomock.Any()).Return(gamification.ActivityResultDTO{}, nil)

	login, err := deps.service.Login(ctx, "ada@acme.io", "pw-12345")
	require.NoError(t, err)

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		deps.users.EXPECT().FindByID(gomock.Any(), int64(7)).Return(u, nil)

		res, err := deps.service.Refresh(ctx, login.RefreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		_, err := deps.service.Refresh(ctx, login.AccessToken)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := deps.service.Refresh(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}
