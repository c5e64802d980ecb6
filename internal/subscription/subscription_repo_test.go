package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_FindActiveByCompany_NotFound(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE status IN \(\$1,\$2\) AND company_id = \$3 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindActiveByCompany(context.Background(), 3)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_CountActiveByPlanType(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE plan_type = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs(subscription.PlanBasic, subscription.StatusActive, subscription.StatusTrialing).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.CountActiveByPlanType(context.Background(), subscription.PlanBasic)

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestRepository_MarkPastDue(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewRepository(db)

	mock.ExpectExec(`UPDATE "subscriptions" SET .*"status".* WHERE status = \$\d+ AND current_period_end < \$\d+ AND cancel_at_period_end = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkPastDue(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRepository_EndCanceledAtPeriodEnd(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewRepository(db)

	mock.ExpectExec(`UPDATE "subscriptions" SET .*"canceled_at".* WHERE status IN \(\$\d+,\$\d+\) AND current_period_end < \$\d+ AND cancel_at_period_end = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.EndCanceledAtPeriodEnd(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPaymentRepository_SumSuccessfulByCompany(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewPaymentRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "payments" WHERE company_id = \$1 AND status = \$2`).
		WithArgs(int64(3), subscription.PaymentSucceeded).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("150.50"))

	total, err := repo.SumSuccessfulByCompany(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "150.50", total.StringFixed(2))
}

func TestPaymentRepository_FindRefundable(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := subscription.NewPaymentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE .*processed_at IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "SUCCEEDED"))

	out, err := repo.FindRefundable(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, subscription.PaymentSucceeded, out[0].Status)
}
