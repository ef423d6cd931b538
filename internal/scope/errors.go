package scope

import (
	"errors"
	"net/http"
)

var (
	ErrUnknownScope         = errors.New("unknown scope")
	ErrCurrentNotInSequence = errors.New("current page is not in the page sequence")
)

// MapHTTPStatus converts scope errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownScope):
		return http.StatusBadRequest
	case errors.Is(err, ErrCurrentNotInSequence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
