package subscription

import (
	"errors"

	subscriptionerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/subscription/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return subscriptionerrors.ErrSubscriptionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_subscriptions_company_live" {
		return subscriptionerrors.ErrSubscriptionExists
	}

	return err
}
