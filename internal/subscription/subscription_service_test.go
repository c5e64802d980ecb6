package subscription_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company"
	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"
	companyMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/mock"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription"
	subscriptionerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/errors"
	subscriptionMock "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type subscriptionDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   subscription.Service
	repo      *subscriptionMock.MockRepository
	payments  *subscriptionMock.MockPaymentRepository
	companies *companyMock.MockRepository
}

func setupSubscriptionTest(t *testing.T) *subscriptionDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	deps := &subscriptionDeps{
		sqlMock:   sqlMock,
		repo:      subscriptionMock.NewMockRepository(ctrl),
		payments:  subscriptionMock.NewMockPaymentRepository(ctrl),
		companies: companyMock.NewMockRepository(ctrl),
	}
	deps.service = subscription.NewService(db, deps.repo, deps.payments, deps.companies)
	return deps
}

func liveSubscription(plan subscription.PlanType) *subscription.Subscription {
	start := time.Now().Add(-24 * time.Hour)
	return &subscription.Subscription{
		ID:                 4,
		CompanyID:          3,
		PlanType:           plan,
		Status:             subscription.StatusActive,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   start.AddDate(0, 1, 0),
		Amount:             decimal.RequireFromString("29.00"),
		Currency:           "USD",
		BillingCycle:       subscription.CycleMonthly,
	}
}

// expectTierUpdate expects the in-transaction company lookup and tier write.
func expectTierUpdate(t *testing.T, deps *subscriptionDeps, want company.SubscriptionTier) {
	t.Helper()
	deps.companies.EXPECT().WithTx(gomock.Any()).Return(deps.companies)
	deps.companies.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&company.Company{ID: 3, SubscriptionTier: company.TierBasic}, nil)
	deps.companies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
		assert.Equal(t, want, c.SubscriptionTier)
		return nil
	})
}

func TestSubscriptionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("starts a trial and moves the company tier", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.companies.EXPECT().FindByID(ctx, int64(3)).Return(&company.Company{ID: 3, SubscriptionTier: company.TierFree}, nil)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.StatusTrialing, s.Status)
			assert.Equal(t, "278.40", s.Amount.StringFixed(2))
			require.NotNil(t, s.TrialEnd)
			require.NotNil(t, s.TrialStart)
			assert.Equal(t, s.TrialStart.AddDate(0, 0, 14), *s.TrialEnd)
			assert.Equal(t, s.CurrentPeriodStart.AddDate(1, 0, 0), s.CurrentPeriodEnd)
			s.ID = 4
			return nil
		})
		deps.companies.EXPECT().WithTx(gomock.Any()).Return(deps.companies)
		deps.companies.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, company.TierBasic, c.SubscriptionTier)
			return nil
		})
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.Create(ctx, 3, subscription.CreateSubscriptionRequest{
			PlanType:     subscription.PlanBasic,
			BillingCycle: subscription.CycleYearly,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(4), res.ID)
		assert.True(t, res.IsTrialActive)
		assert.Equal(t, "23.20", res.MonthlyAmount.StringFixed(2))
	})

	t.Run("defaults to monthly billing", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.companies.EXPECT().FindByID(ctx, int64(3)).Return(&company.Company{ID: 3}, nil)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.CycleMonthly, s.BillingCycle)
			assert.Equal(t, "79.00", s.Amount.StringFixed(2))
			return nil
		})
		deps.companies.EXPECT().WithTx(gomock.Any()).Return(deps.companies)
		deps.companies.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Create(ctx, 3, subscription.CreateSubscriptionRequest{PlanType: subscription.PlanPremium})

		require.NoError(t, err)
	})

	t.Run("rejects a second live subscription", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.companies.EXPECT().FindByID(ctx, int64(3)).Return(&company.Company{ID: 3}, nil)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)

		_, err := deps.service.Create(ctx, 3, subscription.CreateSubscriptionRequest{PlanType: subscription.PlanPremium})

		assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionExists)
	})

	t.Run("unknown company", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.companies.EXPECT().FindByID(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, 3, subscription.CreateSubscriptionRequest{PlanType: subscription.PlanBasic})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("unknown plan", func(t *testing.T) {
		deps := setupSubscriptionTest(t)

		_, err := deps.service.Create(ctx, 3, subscription.CreateSubscriptionRequest{PlanType: "GOLD"})

		assert.ErrorIs(t, err, subscriptionerrors.ErrUnknownPlan)
	})

	t.Run("no company", func(t *testing.T) {
		deps := setupSubscriptionTest(t)

		_, err := deps.service.Create(ctx, 0, subscription.CreateSubscriptionRequest{PlanType: subscription.PlanBasic})

		assert.ErrorIs(t, err, subscriptionerrors.ErrMissingCompany)
	})
}

func TestSubscriptionService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Current(ctx, 3)

		assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)

		res, err := deps.service.Current(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Basic", res.PlanDisplayName)
		assert.Equal(t, "Active", res.StatusDisplay)
	})
}

func TestSubscriptionService_ChangePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices and updates the tier", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.PlanEnterprise, s.PlanType)
			assert.Equal(t, "199.00", s.Amount.StringFixed(2))
			return nil
		})
		expectTierUpdate(t, deps, company.TierEnterprise)
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.ChangePlan(ctx, 3, subscription.PlanEnterprise)

		require.NoError(t, err)
		assert.Equal(t, 1000, res.MaxEmployees)
	})

	t.Run("requires a live subscription", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ChangePlan(ctx, 3, subscription.PlanPremium)

		assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionInactive)
	})
}

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("at period end keeps the subscription live", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.True(t, s.CancelAtPeriodEnd)
			assert.Equal(t, subscription.StatusActive, s.Status)
			return nil
		})

		res, err := deps.service.Cancel(ctx, 3, true)

		require.NoError(t, err)
		assert.True(t, res.IsCanceled)
		assert.True(t, res.IsActive)
		assert.NotNil(t, res.NextBillingDate)
	})

	t.Run("immediately drops to the free tier", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.StatusCanceled, s.Status)
			assert.NotNil(t, s.CanceledAt)
			assert.NotNil(t, s.EndedAt)
			return nil
		})
		expectTierUpdate(t, deps, company.TierFree)
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.Cancel(ctx, 3, false)

		require.NoError(t, err)
		assert.False(t, res.IsActive)
		assert.Nil(t, res.NextBillingDate)
	})
}

func TestSubscriptionService_Reactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("restarts a canceled subscription", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		canceled := liveSubscription(subscription.PlanPremium)
		canceled.Status = subscription.StatusCanceled
		at := time.Now().Add(-time.Hour)
		canceled.CanceledAt = &at
		canceled.EndedAt = &at
		deps.repo.EXPECT().FindLatestByCompany(ctx, int64(3)).Return(canceled, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.StatusActive, s.Status)
			assert.Nil(t, s.CanceledAt)
			assert.Nil(t, s.EndedAt)
			assert.True(t, s.CurrentPeriodEnd.After(time.Now()))
			return nil
		})
		expectTierUpdate(t, deps, company.TierPremium)
		deps.sqlMock.ExpectCommit()

		res, err := deps.service.Reactivate(ctx, 3)

		require.NoError(t, err)
		assert.True(t, res.IsActive)
	})

	t.Run("only canceled subscriptions", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindLatestByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil)

		_, err := deps.service.Reactivate(ctx, 3)

		assert.ErrorIs(t, err, subscriptionerrors.ErrNotCanceled)
	})
}

func TestSubscriptionService_CanUpgrade(t *testing.T) {
	ctx := context.Background()

	t.Run("any plan without a subscription", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

		ok, err := deps.service.CanUpgrade(ctx, 3, subscription.PlanFree)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("pricier plan", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(liveSubscription(subscription.PlanBasic), nil).Times(2)

		up, err := deps.service.CanUpgrade(ctx, 3, subscription.PlanPremium)
		require.NoError(t, err)
		assert.True(t, up)

		down, err := deps.service.CanUpgrade(ctx, 3, subscription.PlanFree)
		require.NoError(t, err)
		assert.False(t, down)
	})

	t.Run("repository failure", func(t *testing.T) {
		deps := setupSubscriptionTest(t)
		deps.repo.EXPECT().FindActiveByCompany(ctx, int64(3)).Return(nil, errors.New("db down"))

		_, err := deps.service.CanUpgrade(ctx, 3, subscription.PlanPremium)

		assert.Error(t, err)
	})
}

func TestSubscriptionService_Plans(t *testing.T) {
	deps := setupSubscriptionTest(t)

	plans := deps.service.Plans()

	require.Len(t, plans, 4)
	assert.Equal(t, subscription.PlanFree, plans[0].PlanType)
	assert.Equal(t, subscription.PlanEnterprise, plans[3].PlanType)
}

func TestSubscriptionService_Payments(t *testing.T) {
	ctx := context.Background()
	deps := setupSubscriptionTest(t)
	deps.payments.EXPECT().FindByCompany(ctx, int64(3)).Return([]subscription.Payment{
		{ID: 1, Status: subscription.PaymentSucceeded, Amount: decimal.RequireFromString("29.00")},
		{ID: 2, Status: subscription.PaymentFailed, Amount: decimal.RequireFromString("29.00")},
	}, nil)
	deps.payments.EXPECT().SumSuccessfulByCompany(ctx, int64(3)).Return(decimal.RequireFromString("29.00"), nil)

	res, err := deps.service.Payments(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, res.Payments, 2)
	assert.Equal(t, "29.00", res.TotalPaid.StringFixed(2))
	assert.Equal(t, "Failed", res.Payments[1].StatusDisplay)
}

func TestSubscriptionService_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	deps := setupSubscriptionTest(t)
	deps.repo.EXPECT().MarkPastDue(ctx, now).Return(int64(2), nil)
	deps.repo.EXPECT().EndCanceledAtPeriodEnd(ctx, now).Return(int64(1), nil)

	pastDue, err := deps.service.MarkPastDue(ctx, now)
	require.NoError(t, err)
	ended, err := deps.service.EndCanceled(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), pastDue)
	assert.Equal(t, int64(1), ended)
}
