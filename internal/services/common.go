package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kennel_backend/pkg/apperrors"
)

// mapFindErr turns a repository lookup error into the right AppError.
func mapFindErr(err error, domain, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(domain, what)
	}
	return apperrors.InternalError(err)
}

// parseDate converts a validated yyyy-mm-dd string into a datatypes.Date.
func parseDate(s string) datatypes.Date {
	if s == "" {
		return datatypes.Date{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}
	}
	return datatypes.Date(t)
}
