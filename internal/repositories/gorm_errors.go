package repositories

import (
	"errors"

	"gorm.io/gorm"

	"butik/internal/apperrors"
)

// translateGormError maps store-level errors onto the application taxonomy.
// Requires gorm to be opened with TranslateError so duplicate-key violations
// surface as gorm.ErrDuplicatedKey on every dialect.
func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict
	default:
		return err
	}
}
