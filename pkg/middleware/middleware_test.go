package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/dpi-lab/pkg/middleware"
	"github.com/google/go-cmp/cmp"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSystem_Apply_Order(t *testing.T) {
	mw := middleware.New()
	var order []string

	for _, name := range []string{"first", "second"} {
		mw.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		})
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	mw.Apply(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first-before", "second-before", "handler", "second-after", "first-after"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/documents/abc/resolution", nil)
	middleware.Logger(logger)(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"request", "POST", "/api/documents/abc/resolution", "duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           7200,
	}

	tests := []struct {
		name       string
		cfg        *middleware.CORSConfig
		method     string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", cfg, http.MethodGet, "http://localhost:3000", "http://localhost:3000"},
		{"disallowed origin", cfg, http.MethodGet, "http://evil.com", ""},
		{"no origin header", cfg, http.MethodGet, "", ""},
		{"preflight", cfg, http.MethodOptions, "http://localhost:3000", "http://localhost:3000"},
		{"disabled", &middleware.CORSConfig{Origins: cfg.Origins}, http.MethodGet, "http://localhost:3000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(okHandler()).ServeHTTP(w, req)

			resp := w.Result()
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if tt.wantOrigin == "" {
				return
			}
			if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "GET, POST" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
			if got := resp.Header.Get("Access-Control-Allow-Credentials"); got != "true" {
				t.Errorf("Access-Control-Allow-Credentials = %q", got)
			}
			if got := resp.Header.Get("Access-Control-Max-Age"); got != "7200" {
				t.Errorf("Access-Control-Max-Age = %q", got)
			}
		})
	}
}

func TestCORSConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := &middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.Origins); diff != "" {
		t.Errorf("Origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
	if len(cfg.AllowedMethods) == 0 || len(cfg.AllowedHeaders) == 0 {
		t.Error("AllowedMethods and AllowedHeaders should have defaults")
	}
}

func TestCORSConfig_Finalize_MalformedEnv(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "yes please")
	t.Setenv("TEST_CORS_MAX_AGE", "1h")

	cfg := &middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		MaxAge:  "TEST_CORS_MAX_AGE",
	})
	if err == nil {
		t.Fatal("Finalize() error = nil, want malformed env error")
	}
	for _, name := range []string{"TEST_CORS_ENABLED", "TEST_CORS_MAX_AGE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		path     string
		wantCode int
		wantLoc  string
	}{
		{"/", http.StatusOK, ""},
		{"/api/documents", http.StatusOK, ""},
		{"/api/documents/", http.StatusMovedPermanently, "/api/documents"},
		{"/api/documents/?page=2", http.StatusMovedPermanently, "/api/documents?page=2"},
		{"/api/documents//", http.StatusMovedPermanently, "/api/documents"},
		{"//", http.StatusMovedPermanently, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			middleware.TrimSlash()(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if got := w.Header().Get("Location"); got != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got, tt.wantLoc)
			}
		})
	}
}
