package gamification

import (
	"errors"

	gamificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gamificationerrors.ErrBadgeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		pgErr.ConstraintName == "uq_user_badges_user_badge" {
		return gamificationerrors.ErrBadgeAlreadyEarned
	}

	return err
}
