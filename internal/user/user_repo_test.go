package user_test

import (
	"context"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/pagination"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/testutil"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_FindByEmailActive(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := user.NewRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 AND is_active = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "is_active"}).
				AddRow(7, "Ada", "ada@acme.io", true))

		u, err := repo.FindByEmailActive(ctx, "ada@acme.io")
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := user.NewRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 AND is_active = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		u, err := repo.FindByEmailActive(ctx, "nobody@acme.io")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, u)
	})
}

func TestRepository_Search(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := user.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE name ILIKE \$1 OR email ILIKE \$2`).
		WithArgs("%ada%", "%ada%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE name ILIKE \$1 OR email ILIKE \$2 ORDER BY id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Ada"))

	users, total, err := repo.Search(context.Background(), "ada", pagination.New(1, 20))

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Ada", users[0].Name)
}

func TestRepository_ExistsByEmail(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := user.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("ada@acme.io").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "ada@acme.io")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_FindActiveExcluding(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes ids", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := user.NewRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_active = \$1 AND id NOT IN \(\$2,\$3\)`).
			WithArgs(true, int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		users, err := repo.FindActiveExcluding(ctx, []int64{1, 2})
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("no exclusions lists all active", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := user.NewRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_active = \$1`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))

		users, err := repo.FindActiveExcluding(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestProfileRepository_FindByUserIDs(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		db, _ := testutil.NewGormMock(t)
		repo := user.NewProfileRepository(db)

		profiles, err := repo.FindByUserIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}
