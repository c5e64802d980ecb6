package notification

import (
	"errors"

	notificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/notification/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		pgErr.ConstraintName == "uq_notification_preferences_user" {
		return notificationerrors.ErrPreferencesConflict
	}

	return err
}
