package resolution

import (
	"errors"
	"net/http"
)

// Validation errors returned by Parse and DPI.Validate.
var (
	ErrEmptyInput    = errors.New("DPI is not set")
	ErrNotNumeric    = errors.New("DPI is not a number")
	ErrTooLow        = errors.New("DPI is too low")
	ErrTooHigh       = errors.New("DPI is too high")
	ErrInvalidPreset = errors.New("invalid preset index")
)

// MapHTTPStatus converts resolution errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyInput),
		errors.Is(err, ErrNotNumeric),
		errors.Is(err, ErrTooLow),
		errors.Is(err, ErrTooHigh),
		errors.Is(err, ErrInvalidPreset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
