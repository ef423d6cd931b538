package changes_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/dpi-lab/internal/changes"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/google/go-cmp/cmp"
)

func TestBuild_TooLowReturnsNoRequest(t *testing.T) {
	ctx := scope.Context[string]{Current: "p1", Sequence: []string{"p1", "p2"}}

	req, err := changes.Build("50", scope.CurrentPage, ctx)

	if !errors.Is(err, resolution.ErrTooLow) {
		t.Errorf("Build() error = %v, want ErrTooLow", err)
	}
	if req != nil {
		t.Errorf("Build() request = %+v, want nil", req)
	}
}

func TestBuild_AllPages(t *testing.T) {
	ctx := scope.Context[string]{Sequence: []string{"p1", "p2"}}

	req, err := changes.Build("600", scope.AllPages, ctx)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &changes.Request[string]{
		Pages: scope.NewSet("p1", "p2"),
		DPI:   resolution.DPI{Horizontal: 600, Vertical: 600},
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	ctx := scope.Context[string]{
		Current:  "p3",
		Sequence: []string{"p1", "p2", "p3", "p4", "p5"},
		Selected: []string{"p2", "p4"},
	}

	for _, s := range scope.All() {
		t.Run(s.String(), func(t *testing.T) {
			first, err1 := changes.Build("400", s, ctx)
			second, err2 := changes.Build("400", s, ctx)

			if (err1 == nil) != (err2 == nil) {
				t.Fatalf("errors differ: %v vs %v", err1, err2)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Build() not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

func TestBuild_Scopes(t *testing.T) {
	ctx := scope.Context[string]{
		Current:  "p3",
		Sequence: []string{"p1", "p2", "p3", "p4", "p5"},
		Selected: []string{"p4", "p1"},
	}

	tests := []struct {
		scope scope.Scope
		want  []string
	}{
		{scope.CurrentPage, []string{"p3"}},
		{scope.AllPages, []string{"p1", "p2", "p3", "p4", "p5"}},
		{scope.CurrentAndFollowing, []string{"p3", "p4", "p5"}},
		{scope.SelectedPages, []string{"p1", "p4"}},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			req, err := changes.Build(" 300 ", tt.scope, ctx)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, req.Pages.Ordered(ctx.Sequence)); diff != "" {
				t.Errorf("pages mismatch (-want +got):\n%s", diff)
			}
			if req.DPI != resolution.Isotropic(300) {
				t.Errorf("DPI = %+v, want 300x300", req.DPI)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	ctx := scope.Context[string]{Current: "p9", Sequence: []string{"p1", "p2"}}

	tests := []struct {
		name  string
		raw   string
		scope scope.Scope
		want  error
	}{
		{"empty", "", scope.AllPages, resolution.ErrEmptyInput},
		{"not numeric", "abc", scope.AllPages, resolution.ErrNotNumeric},
		{"too high", "12801", scope.AllPages, resolution.ErrTooHigh},
		{"parse checked before scope", "abc", scope.Scope(0), resolution.ErrNotNumeric},
		{"unknown scope", "300", scope.Scope(0), scope.ErrUnknownScope},
		{"current missing", "300", scope.CurrentAndFollowing, scope.ErrCurrentNotInSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := changes.Build(tt.raw, tt.scope, ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
			if req != nil {
				t.Errorf("Build() request = %+v, want nil", req)
			}
		})
	}
}
