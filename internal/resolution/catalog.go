package resolution

import (
	"fmt"
	"slices"
	"strconv"
)

// DefaultPresets are the commonly used scan resolutions offered first.
var DefaultPresets = []int{300, 400, 600}

// CustomLabel is the display label of the custom slot.
const CustomLabel = "Custom"

// State is the catalog's selection state.
type State int

const (
	// StatePresetSelected means a preset entry is selected.
	StatePresetSelected State = iota
	// StateCustomEditing means the custom slot is selected and its text is editable.
	StateCustomEditing
)

func (s State) String() string {
	switch s {
	case StatePresetSelected:
		return "preset_selected"
	case StateCustomEditing:
		return "custom_editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entry is one selectable catalog item.
type Entry struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Custom bool   `json:"custom"`
}

// Selection describes the catalog after a transition.
// SelectAll hints that the custom text should be fully selected for replacement.
type Selection struct {
	Index      int    `json:"index"`
	Editable   bool   `json:"editable"`
	CustomText string `json:"custom_text"`
	SelectAll  bool   `json:"select_all"`
	State      State  `json:"state"`
}

// Catalog holds preset resolutions followed by one custom slot and tracks
// which entry is selected. A Catalog belongs to a single interaction and
// is not safe for concurrent use.
type Catalog struct {
	presets    []int
	selected   int
	state      State
	customText string
}

// NewCatalog creates a catalog over presets, or DefaultPresets when none are given.
func NewCatalog(presets ...int) *Catalog {
	if len(presets) == 0 {
		presets = DefaultPresets
	}
	return &Catalog{
		presets: slices.Clone(presets),
	}
}

// CustomIndex is the index of the custom slot, after every preset.
func (c *Catalog) CustomIndex() int {
	return len(c.presets)
}

// Presets returns a copy of the preset values.
func (c *Catalog) Presets() []int {
	return slices.Clone(c.presets)
}

// State returns the current selection state.
func (c *Catalog) State() State {
	return c.state
}

// CustomText returns the last known custom text.
func (c *Catalog) CustomText() string {
	return c.customText
}

// Initialize selects the entry matching the larger component of current.
// An exact preset match selects that preset; anything else selects the
// editable custom slot. The custom text always holds the requested value.
func (c *Catalog) Initialize(current DPI) Selection {
	requested := current.Max()
	c.customText = strconv.Itoa(requested)

	if i := slices.Index(c.presets, requested); i >= 0 {
		c.selected = i
		c.state = StatePresetSelected
	} else {
		c.selected = c.CustomIndex()
		c.state = StateCustomEditing
	}

	return c.selection(false)
}

// Select moves the selection to index. Selecting the custom slot enters
// custom editing with the last known custom text. An out of range index
// returns ErrInvalidPreset and leaves the catalog unchanged.
func (c *Catalog) Select(index int) (Selection, error) {
	if index < 0 || index > c.CustomIndex() {
		return c.selection(false), fmt.Errorf("%w: %d", ErrInvalidPreset, index)
	}

	c.selected = index
	if index == c.CustomIndex() {
		c.state = StateCustomEditing
		return c.selection(true), nil
	}

	c.state = StatePresetSelected
	return c.selection(false), nil
}

// EditCustomText stores text as the custom value. It reports false and
// does nothing unless the catalog is in custom editing state.
func (c *Catalog) EditCustomText(text string) bool {
	if c.state != StateCustomEditing {
		return false
	}
	c.customText = text
	return true
}

// Text returns the value that would be submitted for the current selection.
func (c *Catalog) Text() string {
	if c.state == StateCustomEditing {
		return c.customText
	}
	return strconv.Itoa(c.presets[c.selected])
}

// Entries lists presets then the custom slot.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.presets)+1)
	for i, p := range c.presets {
		v := strconv.Itoa(p)
		entries = append(entries, Entry{Index: i, Label: v, Value: v})
	}
	return append(entries, Entry{
		Index:  c.CustomIndex(),
		Label:  CustomLabel,
		Value:  c.customText,
		Custom: true,
	})
}

func (c *Catalog) selection(selectAll bool) Selection {
	return Selection{
		Index:      c.selected,
		Editable:   c.state == StateCustomEditing,
		CustomText: c.customText,
		SelectAll:  selectAll,
		State:      c.state,
	}
}
