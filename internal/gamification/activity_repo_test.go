package gamification_test

import (
	"context"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_Leaderboard(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := gamification.NewActivityRepository(db)

	cols := []string{"user_id", "user_name", "user_email", "total_points", "total_badges", "longest_streak", "longest_streak_type", "rank"}
	mock.ExpectQuery(`WITH points AS \(.*FROM users u.*LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(4, "Grace", "grace@acme.io", 320, 3, 12, "DAILY_LOGIN", 1).
			AddRow(9, "Ada", "ada@acme.io", 120, 1, 0, "None", 2))

	rows, err := repo.Leaderboard(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(4), rows[0].UserID)
	assert.Equal(t, int64(320), rows[0].TotalPoints)
	assert.Equal(t, "DAILY_LOGIN", rows[0].LongestStreakType)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestActivityRepository_UserRank(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := gamification.NewActivityRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) \+ 1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"rank"}).AddRow(3))

	rank, err := repo.UserRank(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 3, rank)
}

func TestActivityRepository_CountsByUser(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := gamification.NewActivityRepository(db)

	mock.ExpectQuery(`SELECT activity_type, COUNT\(\*\) AS total FROM "activity_logs" WHERE user_id = \$1 GROUP BY "?activity_type"?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"activity_type", "total"}).
			AddRow("LOGIN", 12).
			AddRow("COFFEE_CHAT_COMPLETED", 2))

	counts, err := repo.CountsByUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(12), counts[gamification.ActivityLogin])
	assert.Equal(t, int64(2), counts[gamification.ActivityCoffeeChatCompleted])
	assert.Zero(t, counts[gamification.ActivityLoungeJoined])
}

func TestActivityRepository_TotalPointsByUser(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := gamification.NewActivityRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points_earned\), 0\) FROM "activity_logs" WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(85))

	total, err := repo.TotalPointsByUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(85), total)
}

func TestUserBadgeRepository_MarkNotified(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := gamification.NewUserBadgeRepository(db)

	mock.ExpectExec(`UPDATE "user_badges" SET "notification_sent"=\$1.* WHERE user_id = \$2 AND notification_sent = \$3`).
		WithArgs(true, int64(7), false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkNotified(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
