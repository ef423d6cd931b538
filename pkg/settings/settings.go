// Package settings holds the helpers configuration sections share to merge
// overlay files and apply environment variable overrides.
//
// Environment readers take the variable name and a destination. An empty
// name, an unset variable, or an empty value leaves the destination alone;
// a value that does not parse is reported with the variable name.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Merge sets *dst to v unless v is the zero value.
func Merge[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// MergeSlice replaces *dst with v when v is non-nil.
func MergeSlice[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = v
	}
}

// MergePtr replaces *dst with v when v is non-nil.
func MergePtr[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// Default sets *dst to v when *dst is the zero value.
func Default[T comparable](dst *T, v T) {
	var zero T
	if *dst == zero {
		*dst = v
	}
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := strings.TrimSpace(os.Getenv(name))
	return v, v != ""
}

// String overrides *dst with the variable's value.
func String(name string, dst *string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

// Int overrides *dst with the variable parsed as a base 10 integer.
func Int(name string, dst *int) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

// Bool overrides *dst with the variable parsed by strconv.ParseBool.
func Bool(name string, dst *bool) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// Flag is Bool for optional fields, where nil means not configured.
func Flag(name string, dst **bool) error {
	var b bool
	if _, ok := lookup(name); !ok {
		return nil
	}
	if err := Bool(name, &b); err != nil {
		return err
	}
	*dst = &b
	return nil
}

// Duration overrides *dst after checking the value with time.ParseDuration.
func Duration(name string, dst *string) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	if _, err := time.ParseDuration(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}

// List overrides *dst with the comma separated items of the variable.
// Blank items are dropped.
func List(name string, dst *[]string) {
	if v, ok := lookup(name); ok {
		*dst = Split(v)
	}
}

// Ints is List for integer items.
func Ints(name string, dst *[]int) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}

	items := Split(v)
	out := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return fmt.Errorf("%s: item %q: %w", name, item, err)
		}
		out[i] = n
	}
	*dst = out
	return nil
}

// Split breaks a comma separated list into trimmed, non-empty items.
func Split(v string) []string {
	items := make([]string, 0)
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseDuration parses a duration validated during Finalize. Invalid
// values yield zero.
func ParseDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
