package mentorship_test

import (
	"context"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRepository_CountActive(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := mentorship.NewProgramRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "mentorship_programs" WHERE company_id = \$1 AND is_active = \$2`).
		WithArgs(int64(3), true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountActive(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestProgramRepository_FindCurrentlyActive(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := mentorship.NewProgramRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "mentorship_programs" WHERE .*start_date <= \$\d+ AND \(end_date IS NULL OR end_date >= \$\d+\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "program_name"}).AddRow(5, "Tech Ladder"))

	out, err := repo.FindCurrentlyActive(context.Background(), 3, time.Now())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tech Ladder", out[0].ProgramName)
}

func TestRelationshipRepository_CountByProgram(t *testing.T) {
	t.Run("groups by program", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := mentorship.NewRelationshipRepository(db)

		mock.ExpectQuery(`SELECT program_id, COUNT\(\*\) AS total FROM "mentorship_relationships" WHERE program_id IN \(\$1,\$2\) GROUP BY .?program_id`).
			WithArgs(int64(5), int64(6)).
			WillReturnRows(sqlmock.NewRows([]string{"program_id", "total"}).AddRow(5, 3))

		counts, err := repo.CountByProgram(context.Background(), []int64{5, 6})

		require.NoError(t, err)
		assert.Equal(t, 3, counts[5])
		assert.Equal(t, 0, counts[6])
	})

	t.Run("no programs skips the query", func(t *testing.T) {
		db, _ := testutil.NewGormMock(t)
		repo := mentorship.NewRelationshipRepository(db)

		counts, err := repo.CountByProgram(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}

func TestRelationshipRepository_CountOpenForMentorInProgram(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := mentorship.NewRelationshipRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "mentorship_relationships" WHERE program_id = \$1 AND mentor_id = \$2 AND status IN \(\$3,\$4\)`).
		WithArgs(int64(5), int64(8), mentorship.RelationshipPending, mentorship.RelationshipActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountOpenForMentorInProgram(context.Background(), 5, 8)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSessionRepository_AverageDurationForMentor(t *testing.T) {
	t.Run("no sessions", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := mentorship.NewSessionRepository(db)

		mock.ExpectQuery(`SELECT AVG\(mentorship_sessions.duration_minutes\) FROM "mentorship_sessions" JOIN mentorship_relationships`).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

		avg, err := repo.AverageDurationForMentor(context.Background(), 8)

		require.NoError(t, err)
		assert.Nil(t, avg)
	})

	t.Run("average", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := mentorship.NewSessionRepository(db)

		mock.ExpectQuery(`SELECT AVG\(mentorship_sessions.duration_minutes\) FROM "mentorship_sessions" JOIN mentorship_relationships`).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(52.5))

		avg, err := repo.AverageDurationForMentor(context.Background(), 8)

		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.InDelta(t, 52.5, *avg, 0.001)
	})
}

func TestSessionRepository_FindUpcomingForMentee(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := mentorship.NewSessionRepository(db)

	mock.ExpectQuery(`SELECT mentorship_sessions.\* FROM "mentorship_sessions" JOIN mentorship_relationships .* WHERE mentorship_relationships.mentee_id = \$1 AND \(mentorship_sessions.status = \$2 AND mentorship_sessions.session_date >= \$3\) ORDER BY mentorship_sessions.session_date ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Kickoff"))

	out, err := repo.FindUpcomingForMentee(context.Background(), 7, time.Now())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kickoff", out[0].Title)
}
