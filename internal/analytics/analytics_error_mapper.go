package analytics

import (
	"errors"

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
	return err
}
