package company_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	companyMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/mock"
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

type invitationDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     company.InvitationService
	invitations *companyMock.MockInvitationRepository
	users       *userMock.MockRepository
}

func setupInvitationTest(t *testing.T) *invitationDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &invitationDeps{
		sqlMock:     sqlMock,
		invitations: companyMock.NewMockInvitationRepository(ctrl),
		users:       userMock.NewMockRepository(ctrl),
	}
	deps.service = company.NewInvitationService(db, deps.invitations, deps.users)
	return deps
}

func int64Ptr(v int64) *int64 { return &v }

func TestInvitationService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a pending invitation with a token", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().
			ExistsByEmailCompanyStatus(ctx, "new@acme.io", int64(3), company.InvitationPending).
			Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, "new@acme.io").Return(nil, gorm.ErrRecordNotFound)
		deps.invitations.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *company.Invitation) error {
			assert.Equal(t, company.InvitationPending, inv.Status)
			assert.NotEmpty(t, inv.InvitationToken)
			assert.Equal(t, int64(9), inv.InvitedByUserID)
			assert.WithinDuration(t, time.Now().Add(company.InvitationTTL), inv.ExpiresAt, time.Minute)
			inv.ID = 11
			return nil
		})

		res, err := deps.service.Invite(ctx, 3, 9, company.InviteRequest{Email: " New@Acme.io "})

		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, "new@acme.io", res.Email)
		assert.NotEmpty(t, res.Token)
		assert.False(t, res.IsExpired)
	})

	t.Run("duplicate pending invitation", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().
			ExistsByEmailCompanyStatus(ctx, "new@acme.io", int64(3), company.InvitationPending).
			Return(true, nil)

		_, err := deps.service.Invite(ctx, 3, 9, company.InviteRequest{Email: "new@acme.io"})

		assert.ErrorIs(t, err, companyerrors.ErrInvitationAlreadyPending)
	})

	t.Run("already a member", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().ExistsByEmailCompanyStatus(ctx, "ada@acme.io", int64(3), company.InvitationPending).Return(false, nil)
		deps.users.EXPECT().FindByEmail(ctx, "ada@acme.io").Return(&user.User{ID: 7, CompanyID: int64Ptr(3)}, nil)

		_, err := deps.service.Invite(ctx, 3, 9, company.InviteRequest{Email: "ada@acme.io"})

		assert.ErrorIs(t, err, companyerrors.ErrAlreadyMember)
	})

	t.Run("invalid company", func(t *testing.T) {
		deps := setupInvitationTest(t)

		_, err := deps.service.Invite(ctx, 0, 9, company.InviteRequest{Email: "ada@acme.io"})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestInvitationService_Accept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	pending := func() *company.Invitation {
		return &company.Invitation{
			ID:              11,
			CompanyID:       3,
			Email:           "ada@acme.io",
			Status:          company.InvitationPending,
			InvitationToken: "tok",
			ExpiresAt:       now.Add(24 * time.Hour),
		}
	}

	t.Run("joins the company", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(pending(), nil)
		deps.users.EXPECT().FindByID(ctx, int64(7)).Return(&user.User{ID: 7, Email: "Ada@acme.io"}, nil)

		deps.sqlMock.ExpectBegin()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			require.NotNil(t, u.CompanyID)
			assert.Equal(t, int64(3), *u.CompanyID)
			return nil
		})
		deps.invitations.EXPECT().WithTx(gomock.Any()).Return(deps.invitations)
		deps.invitations.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *company.Invitation) error {
			assert.Equal(t, company.InvitationAccepted, inv.Status)
			return nil
		})
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.Accept(ctx, 7, "tok", now)

		require.NoError(t, err)
		assert.Equal(t, company.InvitationAccepted, res.Status)
		require.NotNil(t, res.AcceptedAt)
		assert.Equal(t, now, *res.AcceptedAt)
	})

	t.Run("unknown token", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByToken(ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Accept(ctx, 7, "nope", now)

		assert.ErrorIs(t, err, companyerrors.ErrInvitationNotFound)
	})

	t.Run("not pending", func(t *testing.T) {
		deps := setupInvitationTest(t)
		inv := pending()
		inv.Status = company.InvitationCancelled
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(inv, nil)

		_, err := deps.service.Accept(ctx, 7, "tok", now)

		assert.ErrorIs(t, err, companyerrors.ErrInvitationNotPending)
	})

	t.Run("expired token is marked expired", func(t *testing.T) {
		deps := setupInvitationTest(t)
		inv := pending()
		inv.ExpiresAt = now.Add(-time.Minute)
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(inv, nil)
		deps.invitations.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *company.Invitation) error {
			assert.Equal(t, company.InvitationExpired, inv.Status)
			return nil
		})

		_, err := deps.service.Accept(ctx, 7, "tok", now)

		assert.ErrorIs(t, err, companyerrors.ErrInvitationExpired)
	})

	t.Run("email mismatch", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(pending(), nil)
		deps.users.EXPECT().FindByID(ctx, int64(7)).Return(&user.User{ID: 7, Email: "grace@acme.io"}, nil)

		_, err := deps.service.Accept(ctx, 7, "tok", now)

		assert.ErrorIs(t, err, companyerrors.ErrInvitationEmailMismatch)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(pending(), nil)
		deps.users.EXPECT().FindByID(ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Accept(ctx, 7, "tok", now)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("rolls back when the invitation update fails", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByToken(ctx, "tok").Return(pending(), nil)
		deps.users.EXPECT().FindByID(ctx, int64(7)).Return(&user.User{ID: 7, Email: "ada@acme.io"}, nil)

		deps.sqlMock.ExpectBegin()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.invitations.EXPECT().WithTx(gomock.Any()).Return(deps.invitations)
		deps.invitations.EXPECT().Update(ctx, gomock.Any()).Return(errors.New("db down"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Accept(ctx, 7, "tok", now)

		assert.EqualError(t, err, "db down")
	})
}

func TestInvitationService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels a pending invitation", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByID(ctx, int64(11)).
			Return(&company.Invitation{ID: 11, CompanyID: 3, Status: company.InvitationPending}, nil)
		deps.invitations.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *company.Invitation) error {
			assert.Equal(t, company.InvitationCancelled, inv.Status)
			return nil
		})

		assert.NoError(t, deps.service.Cancel(ctx, 3, 11))
	})

	t.Run("other company's invitation", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByID(ctx, int64(11)).
			Return(&company.Invitation{ID: 11, CompanyID: 4, Status: company.InvitationPending}, nil)

		assert.ErrorIs(t, deps.service.Cancel(ctx, 3, 11), companyerrors.ErrInvitationNotFound)
	})

	t.Run("already accepted", func(t *testing.T) {
		deps := setupInvitationTest(t)
		deps.invitations.EXPECT().FindByID(ctx, int64(11)).
			Return(&company.Invitation{ID: 11, CompanyID: 3, Status: company.InvitationAccepted}, nil)

		assert.ErrorIs(t, deps.service.Cancel(ctx, 3, 11), companyerrors.ErrInvitationNotPending)
	})
}

func TestInvitationService_ListForUser(t *testing.T) {
	ctx := context.Background()
	deps := setupInvitationTest(t)
	deps.users.EXPECT().FindByID(ctx, int64(7)).Return(&user.User{ID: 7, Email: "Ada@Acme.io"}, nil)
	deps.invitations.EXPECT().FindByEmailAndStatus(ctx, "ada@acme.io", company.InvitationPending).
		Return([]company.Invitation{{ID: 1, Status: company.InvitationPending, InvitationToken: "secret", ExpiresAt: time.Now().Add(time.Hour)}}, nil)

	res, err := deps.service.ListForUser(ctx, 7)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Token)
	assert.False(t, res[0].IsExpired)
}

func TestInvitationService_ExpireInvitations(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	deps := setupInvitationTest(t)
	deps.invitations.EXPECT().ExpirePending(ctx, now).Return(int64(4), nil)

	n, err := deps.service.ExpireInvitations(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
