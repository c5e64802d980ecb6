package department

import (
	"errors"

	departmenterrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_departments_company_name":
			return departmenterrors.ErrDepartmentNameTaken
		case "uq_user_departments_user_department":
			return departmenterrors.ErrAlreadyMember
		}
	}

	return err
}
