package virtual

import (
	"fmt"
	"strings"
)

// Direction is the scroll axis of a list.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection parses "vertical" or "horizontal" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("virtual: unknown direction %q", s)
}

// Auto lets the engine pick the cross-axis extent (one column or row unless
// minimum item sizes are given).
const Auto = 0

// Config holds the layout parameters of a list. It is passed by value and
// never modified by the engine.
type Config struct {
	Direction Direction

	// Explicit item size. The cross-axis size is ignored by linear layouts.
	ItemWidth  int
	ItemHeight int

	// When both are set, the engine fits as many items as possible on the
	// cross axis and sizes them itself.
	MinItemWidth  int
	MinItemHeight int

	// Space between items and around the edges.
	Spacing int

	// Cross-axis extent. Columns applies to vertical lists, Rows to
	// horizontal ones.
	Columns int
	Rows    int

	// Extra slots created beyond those needed to fill the viewport.
	Overhang int

	// Mirror the cross axis for right-to-left layouts.
	RTL bool

	// Report the item step as snap increment so scrolling rests on item
	// boundaries.
	ScrollToBoundaries bool
}

// DefaultConfig returns a single-column vertical layout of one-line items.
func DefaultConfig() Config {
	return Config{
		Direction:  Vertical,
		ItemWidth:  20,
		ItemHeight: 1,
		Columns:    Auto,
		Rows:       Auto,
		Overhang:   3,
	}
}

// extentRequest returns the requested cross-axis extent for the direction.
func (c Config) extentRequest() int {
	if c.Direction == Vertical {
		return c.Columns
	}
	return c.Rows
}
