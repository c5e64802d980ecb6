package company

import (
	"errors"

	companyerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/company/errors"

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
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_companies_name":
			return companyerrors.ErrCompanyAlreadyExists
		case "uq_company_settings_company":
			return companyerrors.ErrSettingsConflict
		case "uq_company_invitations_token":
			return companyerrors.ErrInvitationTokenConflict
		}
	}

	return err
}
