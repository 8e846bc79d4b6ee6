// Package dberr maps gorm errors onto the domain error types.
// The gorm.DB handed to repositories must be opened with TranslateError enabled
// so that unique index violations surface as gorm.ErrDuplicatedKey.
package dberr

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate converts not-found and duplicate-key errors for the named entity.
// Any other error is returned unchanged.
func Translate(entity string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewInvariantViolationErrorWithCause(fmt.Sprintf("%s %v already exists", entity, id), err)
	default:
		return err
	}
}

// Unique reports a duplicate on a named unique field, e.g. an order that already has a delivery.
func Unique(rule string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewInvariantViolationErrorWithCause(rule, err)
	}
	return err
}
