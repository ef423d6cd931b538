package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/dpi-lab/pkg/query"
)

// PageRequest selects one page of a listing. Search and Sort are optional.
type PageRequest struct {
	Page     int
	PageSize int
	Search   *string
	Sort     []query.SortField
}

// ParsePageRequest reads page, page_size, search and sort from values.
// Numbers that do not parse fall back to the configured defaults and the
// result is normalized against cfg.
func ParsePageRequest(values url.Values, cfg Config) PageRequest {
	req := PageRequest{Sort: query.ParseSortFields(values.Get("sort"))}
	req.Page, _ = strconv.Atoi(values.Get("page"))
	req.PageSize, _ = strconv.Atoi(values.Get("page_size"))
	if s := strings.TrimSpace(values.Get("search")); s != "" {
		req.Search = &s
	}

	req.Normalize(cfg)
	return req
}

// Normalize starts at page 1 and keeps PageSize within (0, cfg.MaxPageSize].
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

// Offset is the number of rows before the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageResult is one page of T with the totals needed to page further.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult wraps data as the page req asked for. TotalPages is at
// least 1 and Data is never nil.
func NewPageResult[T any](data []T, total int, req PageRequest) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: max((total+req.PageSize-1)/req.PageSize, 1),
	}
}
