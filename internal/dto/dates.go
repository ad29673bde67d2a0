package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// DateLayout is the calendar date format accepted on input (YYYY-MM-DD).
const DateLayout = time.DateOnly

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must be a date formatted as YYYY-MM-DD")
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalType[T ~string](value *string) *T {
	if value == nil || *value == "" {
		return nil
	}
	t := T(*value)
	return &t
}
