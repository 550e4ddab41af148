package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Shelfscore/internal/apperr"
	"gorm.io/gorm"
)

// lookupErr turns a missing row into a not_found error and wraps anything else.
func lookupErr(err error, what string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(fmt.Sprintf("%s %v not found", what, id))
	}
	return fmt.Errorf("failed to load %s %v: %w", what, id, err)
}

// writeErr maps unique constraint violations to conflict.
func writeErr(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.New(apperr.CodeConflict, fmt.Sprintf("%s already exists", what), err)
	}
	return fmt.Errorf("failed to save %s: %w", what, err)
}
