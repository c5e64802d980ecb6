package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	readAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("returns affected rows", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := notification.NewRepository(db)

		mock.ExpectExec(`UPDATE "notifications" SET .*"is_read".* WHERE id = \$\d+ AND user_id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.MarkAsRead(ctx, 10, 7, readAt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("foreign notification touches nothing", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := notification.NewRepository(db)

		mock.ExpectExec(`UPDATE "notifications" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.MarkAsRead(ctx, 10, 99, readAt)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestRepository_MarkAllAsRead(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := notification.NewRepository(db)

	mock.ExpectExec(`UPDATE "notifications" SET .* WHERE user_id = \$\d+ AND is_read = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.MarkAllAsRead(context.Background(), 7, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestRepository_DeleteExpiredNotifications(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := notification.NewRepository(db)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM "notifications" WHERE expires_at IS NOT NULL AND expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.DeleteExpiredNotifications(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestRepository_FindByUser(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := notification.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "type", "priority", "is_read"}).
			AddRow(2, 7, "New match", "MATCH_FOUND", "HIGH", false).
			AddRow(1, 7, "Welcome", "SYSTEM_ANNOUNCEMENT", "LOW", true))

	items, total, err := repo.FindByUser(context.Background(), 7, pagination.New(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 2)
	assert.Equal(t, notification.TypeMatchFound, items[0].Type)
	assert.True(t, items[1].IsRead)
}

func TestRepository_CountUnread(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := notification.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(int64(7), false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountUnread(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRepository_FindHighPriorityUnread(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := notification.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 AND is_read = \$2 AND priority IN \(\$3,\$4\) ORDER BY priority DESC, created_at DESC`).
		WithArgs(int64(7), false, notification.PriorityHigh, notification.PriorityUrgent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "priority"}).AddRow(5, "URGENT"))

	items, err := repo.FindHighPriorityUnread(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, notification.PriorityUrgent, items[0].Priority)
}

func TestPreferencesRepository_FindByUserID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := notification.NewPreferencesRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "notification_preferences" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		p, err := repo.FindByUserID(context.Background(), 7)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, p)
	})

	t.Run("exists", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := notification.NewPreferencesRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_preferences" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		ok, err := repo.ExistsByUserID(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
