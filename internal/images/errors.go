package images

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("image not found")
	ErrDuplicate         = errors.New("image already recorded for page and format")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrNotRenderable     = errors.New("document type cannot be rendered")
	ErrPageNotInDocument = errors.New("page does not belong to document")
	ErrInvalidFormat     = errors.New("invalid image format")
	ErrRenderDPI         = errors.New("page resolution exceeds render limit")
	ErrRenderFailed      = errors.New("render failed")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNotRenderable),
		errors.Is(err, ErrPageNotInDocument),
		errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrRenderDPI):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
