package match_test

import (
	"context"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_ExistsBetween(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := match.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "matches" WHERE \(\(\(user1_id = \$1 AND user2_id = \$2\) OR \(user1_id = \$3 AND user2_id = \$4\)\) AND is_active = \$5\) AND status IN \(\$6,\$7\)`).
		WithArgs(1, 2, 2, 1, true, "PENDING", "ACCEPTED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsBetween(context.Background(), 1, 2, match.StatusPending, match.StatusAccepted)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMatchRepository_FindMatchedUserIDs(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := match.NewRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT CASE WHEN user1_id = \$1 THEN user2_id ELSE user1_id END`).
		WithArgs(5, 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7).AddRow(9))

	ids, err := repo.FindMatchedUserIDs(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, ids)
}

func TestMatchRepository_FindActiveByIDNotFound(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := match.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "matches" WHERE id = \$1 AND is_active = \$2 .*LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	res, err := repo.FindActiveByID(context.Background(), 3)

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestMeetingRepository_MarkReminderSent(t *testing.T) {
	t.Run("claimed", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := match.NewMeetingRepository(db)

		mock.ExpectExec(`UPDATE "scheduled_meetings" SET "reminder_sent"=\$1.* WHERE id = .* AND reminder_sent = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.MarkReminderSent(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("already sent", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := match.NewMeetingRepository(db)

		mock.ExpectExec(`UPDATE "scheduled_meetings" SET "reminder_sent"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.MarkReminderSent(context.Background(), 3)

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestMeetingRepository_FindNeedingReminders(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := match.NewMeetingRepository(db)
	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "scheduled_meetings" WHERE \(reminder_sent = \$1 AND scheduled_start_time BETWEEN \$2 AND \$3\) AND status IN \(\$4,\$5,\$6\) ORDER BY scheduled_start_time ASC`).
		WithArgs(false, now, now.Add(time.Hour), "SCHEDULED", "CONFIRMED", "RESCHEDULED").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organizer_id", "participant_id"}).AddRow(1, 10, 20))

	res, err := repo.FindNeedingReminders(context.Background(), now, now.Add(time.Hour))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(20), res[0].ParticipantID)
}

func TestFeedbackRepository_AverageQualityForMatch(t *testing.T) {
	t.Run("no feedback", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := match.NewFeedbackRepository(db)

		mock.ExpectQuery(`SELECT AVG\(quality_rating\) FROM "match_feedback" WHERE match_id = \$1`).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

		avg, err := repo.AverageQualityForMatch(context.Background(), 4)

		require.NoError(t, err)
		assert.Nil(t, avg)
	})

	t.Run("rated", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := match.NewFeedbackRepository(db)

		mock.ExpectQuery(`SELECT AVG\(quality_rating\) FROM "match_feedback"`).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.5))

		avg, err := repo.AverageQualityForMatch(context.Background(), 4)

		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.Equal(t, 4.5, *avg)
	})
}

func TestStarterRepository_IncrementUsageEmpty(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	repo := match.NewStarterRepository(db)

	assert.NoError(t, repo.IncrementUsage(context.Background(), nil))
}
