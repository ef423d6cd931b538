package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash sends requests for "/path/" to "/path" with a permanent
// redirect, keeping the query string. "/" is served as is.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/" || !strings.HasSuffix(path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			canonical := *r.URL
			canonical.Path = strings.TrimRight(path, "/")
			if canonical.Path == "" {
				canonical.Path = "/"
			}
			canonical.RawPath = ""
			http.Redirect(w, r, canonical.RequestURI(), http.StatusMovedPermanently)
		})
	}
}
