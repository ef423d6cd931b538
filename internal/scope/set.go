package scope

// Set is an unordered collection of unique page ids.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Contains reports whether item is a member of s.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Add inserts item into s.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Ordered returns the members of s in the order they appear in sequence.
// Members absent from sequence are omitted.
func (s Set[T]) Ordered(sequence []T) []T {
	out := make([]T, 0, len(s))
	for _, item := range sequence {
		if s.Contains(item) {
			out = append(out, item)
		}
	}
	return out
}
