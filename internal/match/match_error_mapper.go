package match

import (
	"errors"

	matcherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_matches_pair_status" {
		return matcherrors.ErrMatchExists
	}

	return err
}
