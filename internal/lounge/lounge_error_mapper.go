package lounge

import (
	"errors"

	loungeerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loungeerrors.ErrLoungeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_lounges_active_title":
			return loungeerrors.ErrTitleTaken
		case "uq_lounge_participants_active":
			return loungeerrors.ErrAlreadyParticipant
		}
	}

	return err
}
