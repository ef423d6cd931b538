// Package resolution validates page resolutions and models the preset
// catalog offered when changing the resolution of document pages.
package resolution

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Resolution bounds, inclusive.
const (
	MinDPI = 72
	MaxDPI = 12800
)

// DPI is a horizontal and vertical sampling density in dots per inch.
type DPI struct {
	Horizontal int `json:"horizontal"`
	Vertical   int `json:"vertical"`
}

// Isotropic returns a DPI with both components set to d.
func Isotropic(d int) DPI {
	return DPI{Horizontal: d, Vertical: d}
}

// Parse validates a user-entered resolution and returns it as an isotropic DPI.
func Parse(text string) (DPI, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return DPI{}, ErrEmptyInput
	}

	d, err := strconv.Atoi(text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(text, "-") {
				return DPI{}, fmt.Errorf("%w: %s", ErrTooLow, text)
			}
			return DPI{}, fmt.Errorf("%w: %s", ErrTooHigh, text)
		}
		return DPI{}, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}

	if err := checkBounds(d); err != nil {
		return DPI{}, err
	}

	return Isotropic(d), nil
}

// Max returns the larger of the two components.
func (d DPI) Max() int {
	return max(d.Horizontal, d.Vertical)
}

// Validate checks both components against MinDPI and MaxDPI.
func (d DPI) Validate() error {
	if err := checkBounds(d.Horizontal); err != nil {
		return fmt.Errorf("horizontal: %w", err)
	}
	if err := checkBounds(d.Vertical); err != nil {
		return fmt.Errorf("vertical: %w", err)
	}
	return nil
}

// String renders "300" for isotropic values and "300x600" otherwise.
func (d DPI) String() string {
	if d.Horizontal == d.Vertical {
		return strconv.Itoa(d.Horizontal)
	}
	return fmt.Sprintf("%dx%d", d.Horizontal, d.Vertical)
}

func checkBounds(d int) error {
	if d < MinDPI {
		return fmt.Errorf("%w: %d < %d", ErrTooLow, d, MinDPI)
	}
	if d > MaxDPI {
		return fmt.Errorf("%w: %d > %d", ErrTooHigh, d, MaxDPI)
	}
	return nil
}
