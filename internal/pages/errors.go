package pages

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
)

var (
	ErrNotFound          = errors.New("page not found")
	ErrDuplicate         = errors.New("page number already exists")
	ErrPageNotInDocument = errors.New("page does not belong to document")
	ErrNoPages           = errors.New("document has no pages")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoPages):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrPageNotInDocument):
		return http.StatusBadRequest
	}
	return resolution.MapHTTPStatus(err)
}
