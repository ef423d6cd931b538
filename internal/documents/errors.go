package documents

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicate    = errors.New("document storage key already exists")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
	ErrNameRequired = errors.New("document name is required")
)

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// MapHTTPStatus maps document errors, and the resolution errors an upload
// dpi field can produce, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile), errors.Is(err, ErrNameRequired):
		return http.StatusBadRequest
	}
	return resolution.MapHTTPStatus(err)
}
