package changes

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/dpi-lab/internal/images"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
)

var ErrScopeUnavailable = errors.New("scope is not available for this selection")

// MapHTTPStatus converts change errors, including those of the systems a
// change passes through, to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrScopeUnavailable) {
		return http.StatusBadRequest
	}
	for _, mapStatus := range []func(error) int{
		resolution.MapHTTPStatus,
		scope.MapHTTPStatus,
		pages.MapHTTPStatus,
		images.MapHTTPStatus,
	} {
		if status := mapStatus(err); status != http.StatusInternalServerError {
			return status
		}
	}
	return http.StatusInternalServerError
}
