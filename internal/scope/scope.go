// Package scope resolves which pages of a document a change applies to.
package scope

import (
	"fmt"
	"slices"
)

// Scope selects a subset of a document's pages.
type Scope int

const (
	CurrentPage Scope = iota + 1
	AllPages
	CurrentAndFollowing
	SelectedPages
)

var names = map[Scope]string{
	CurrentPage:         "current_page",
	AllPages:            "all_pages",
	CurrentAndFollowing: "current_and_following",
	SelectedPages:       "selected_pages",
}

// All lists every scope in presentation order.
func All() []Scope {
	return []Scope{CurrentPage, AllPages, CurrentAndFollowing, SelectedPages}
}

// Parse returns the scope with the given wire name.
func Parse(name string) (Scope, error) {
	for s, n := range names {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScope, name)
}

func (s Scope) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

func (s Scope) MarshalText() ([]byte, error) {
	n, ok := names[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScope, int(s))
	}
	return []byte(n), nil
}

func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Context is the page information a scope is resolved against.
// Sequence holds every page in document order.
type Context[T comparable] struct {
	Current  T
	Sequence []T
	Selected []T
}

// Available lists the scopes that can be offered for ctx. SelectedPages
// is only offered when more than one page is selected.
func Available[T comparable](ctx Context[T]) []Scope {
	scopes := []Scope{CurrentPage, AllPages, CurrentAndFollowing}
	if len(ctx.Selected) > 1 {
		scopes = append(scopes, SelectedPages)
	}
	return scopes
}

// Resolve returns the pages covered by s.
//
// SelectedPages returns ctx.Selected as given, even when it holds fewer
// than two pages. CurrentAndFollowing fails with ErrCurrentNotInSequence
// when the current page is missing from the sequence.
func Resolve[T comparable](s Scope, ctx Context[T]) (Set[T], error) {
	switch s {
	case CurrentPage:
		return NewSet(ctx.Current), nil
	case AllPages:
		return NewSet(ctx.Sequence...), nil
	case CurrentAndFollowing:
		i := slices.Index(ctx.Sequence, ctx.Current)
		if i < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCurrentNotInSequence, ctx.Current)
		}
		return NewSet(ctx.Sequence[i:]...), nil
	case SelectedPages:
		return NewSet(ctx.Selected...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScope, int(s))
	}
}
