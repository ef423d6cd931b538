package pagination_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/google/go-cmp/cmp"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &pagination.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}

	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_PAGINATION_DEFAULT_PAGE_SIZE", "15")
	t.Setenv("TEST_PAGINATION_MAX_PAGE_SIZE", "75")

	cfg := &pagination.Config{}
	env := &pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGINATION_DEFAULT_PAGE_SIZE",
		MaxPageSize:     "TEST_PAGINATION_MAX_PAGE_SIZE",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.DefaultPageSize != 15 || cfg.MaxPageSize != 75 {
		t.Errorf("config = %+v, want {15 75}", *cfg)
	}
}

func TestConfig_Finalize_DefaultExceedsMax(t *testing.T) {
	cfg := &pagination.Config{DefaultPageSize: 200, MaxPageSize: 50}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() expected error when default exceeds max")
	}
}

func TestParsePageRequest(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	search := "foo"

	tests := []struct {
		name  string
		query string
		want  pagination.PageRequest
	}{
		{
			name:  "empty query uses defaults",
			query: "",
			want:  pagination.PageRequest{Page: 1, PageSize: 20},
		},
		{
			name:  "all params combined",
			query: "page=3&page_size=25&search=+foo+&sort=-page_number",
			want: pagination.PageRequest{
				Page:     3,
				PageSize: 25,
				Search:   &search,
				Sort:     []query.SortField{{Field: "page_number", Descending: true}},
			},
		},
		{
			name:  "unparseable numbers use defaults",
			query: "page=two&page_size=many&search=",
			want:  pagination.PageRequest{Page: 1, PageSize: 20},
		},
		{
			name:  "page_size exceeding max gets capped",
			query: "page_size=500",
			want:  pagination.PageRequest{Page: 1, PageSize: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got := pagination.ParsePageRequest(values, cfg)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePageRequest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 100, 20, 5},
		{"remainder", 101, 20, 6},
		{"empty result", 0, 20, 1},
		{"single short page", 3, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[int](nil, tt.total, pagination.PageRequest{Page: 1, PageSize: tt.pageSize})

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}

			if result.Data == nil {
				t.Error("Data should be an empty slice, not nil")
			}
		})
	}
}

func TestConfig_Finalize_MalformedEnv(t *testing.T) {
	t.Setenv("TEST_PAGINATION_DEFAULT_PAGE_SIZE", "twenty")
	t.Setenv("TEST_PAGINATION_MAX_PAGE_SIZE", "lots")

	cfg := &pagination.Config{}
	err := cfg.Finalize(&pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGINATION_DEFAULT_PAGE_SIZE",
		MaxPageSize:     "TEST_PAGINATION_MAX_PAGE_SIZE",
	})
	if err == nil {
		t.Fatal("Finalize() expected error for malformed sizes")
	}
	for _, name := range []string{"TEST_PAGINATION_DEFAULT_PAGE_SIZE", "TEST_PAGINATION_MAX_PAGE_SIZE"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}
