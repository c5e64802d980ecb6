package lounge_test

import (
	"context"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoungeRepository_IncrementParticipants(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("seat taken", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := lounge.NewRepository(db)

		mock.ExpectExec(`UPDATE "lounges" SET .*current_participants \+ 1.*WHERE .*max_participants IS NULL OR current_participants < max_participants`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.IncrementParticipants(context.Background(), 5, now)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lounge full", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := lounge.NewRepository(db)

		mock.ExpectExec(`UPDATE "lounges" SET .*current_participants \+ 1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.IncrementParticipants(context.Background(), 5, now)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLoungeRepository_ExistsActiveByTitle(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := lounge.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "lounges" WHERE title = \$1 AND is_active = \$2`).
		WithArgs("Coffee", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsActiveByTitle(context.Background(), "Coffee")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoungeRepository_FindByIDsEmpty(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	repo := lounge.NewRepository(db)

	res, err := repo.FindByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestMessageRepository_FindRecent(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := lounge.NewMessageRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "lounge_messages" WHERE lounge_id = \$1 AND is_deleted = \$2 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lounge_id", "content"}).
			AddRow(2, 5, "second").
			AddRow(1, 5, "first"))

	res, err := repo.FindRecent(context.Background(), 5, 2)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "second", res[0].Content)
}

func TestParticipantRepository_CountActive(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := lounge.NewParticipantRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "lounge_participants" WHERE lounge_id = \$1 AND is_active = \$2`).
		WithArgs(int64(5), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountActive(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
