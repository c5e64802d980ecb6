package mentorship

import (
	"errors"

	mentorshiperrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates a missing row into notFound.
func mapRepositoryError(err, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_mentorship_relationships_open" {
		return mentorshiperrors.ErrDuplicateRelationship
	}

	return err
}
