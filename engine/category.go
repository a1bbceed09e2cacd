package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/fitparam/errs"
)

// Level is a single labeled state of a Category.
type Level struct {
	Label string
	Code  int
}

// Category is a discrete fit factor whose states are a fixed set of labeled
// integer codes. Levels are append-only: once defined, a label/code pair never
// changes.
//
// Category is not safe for concurrent use.
type Category struct {
	name    string
	levels  []Level
	byLabel map[string]int
	byCode  map[int]int
	current int
}

// NewCategory creates a category without levels.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty category name", errs.ErrMalformedArguments)
	}

	return &Category{
		name:    name,
		byLabel: make(map[string]int),
		byCode:  make(map[int]int),
	}, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// DefineType adds a level. Both the label and the code must be unused.
func (c *Category) DefineType(label string, code int) error {
	if _, ok := c.byLabel[label]; ok {
		return fmt.Errorf("%w: %q: label %q", errs.ErrDuplicateLevel, c.name, label)
	}
	if _, ok := c.byCode[code]; ok {
		return fmt.Errorf("%w: %q: code %d", errs.ErrDuplicateLevel, c.name, code)
	}

	c.byLabel[label] = len(c.levels)
	c.byCode[code] = len(c.levels)
	c.levels = append(c.levels, Level{Label: label, Code: code})

	return nil
}

// Len returns the number of defined levels.
func (c *Category) Len() int { return len(c.levels) }

// Levels returns a copy of the defined levels sorted by code.
func (c *Category) Levels() []Level {
	levels := slices.Clone(c.levels)
	slices.SortFunc(levels, func(a, b Level) int { return cmp.Compare(a.Code, b.Code) })

	return levels
}

// Lookup returns the code of the level with the given label.
func (c *Category) Lookup(label string) (int, bool) {
	idx, ok := c.byLabel[label]
	if !ok {
		return 0, false
	}

	return c.levels[idx].Code, true
}

// Label returns the label of the level with the given code.
func (c *Category) Label(code int) (string, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return "", false
	}

	return c.levels[idx].Label, true
}

// Index returns the code of the current state. A category without levels reports 0.
func (c *Category) Index() int {
	if len(c.levels) == 0 {
		return 0
	}

	return c.levels[c.current].Code
}

// SetIndex selects the current state by code.
func (c *Category) SetIndex(code int) error {
	idx, ok := c.byCode[code]
	if !ok {
		return fmt.Errorf("%w: %q: code %d", errs.ErrUnknownLevel, c.name, code)
	}
	c.current = idx

	return nil
}

// String renders the category as "Category name {code:label, ...}".
func (c *Category) String() string {
	var sb strings.Builder
	sb.WriteString("Category ")
	sb.WriteString(c.name)
	sb.WriteString(" {")
	for i, l := range c.Levels() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d:%s", l.Code, l.Label)
	}
	sb.WriteString("}")

	return sb.String()
}
