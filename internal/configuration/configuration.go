package configuration

import (
	"errors"
	"fmt"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/virtual"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidBorder    = errors.New("invalid border")
)

type Configuration struct {
	Items         int    `usage:"number of generated records"`
	Duplicates    int    `usage:"number of extra records reusing existing ids"`
	Direction     string `usage:"scroll direction: vertical | horizontal"`
	ItemWidth     int    `usage:"item width in cells"`
	ItemHeight    int    `usage:"item height in cells"`
	MinItemWidth  int    `usage:"minimum item width, enables auto sizing together with MinItemHeight"`
	MinItemHeight int    `usage:"minimum item height, enables auto sizing together with MinItemWidth"`
	Columns       int    `usage:"columns of a vertical grid, 0 means one column unless both minimum item sizes are set"`
	Rows          int    `usage:"rows of a horizontal grid, 0 means one row unless both minimum item sizes are set"`
	Spacing       int    `usage:"cells between items"`
	Overhang      int    `usage:"extra slots beyond the visible ones"`
	RTL           bool   `usage:"right to left layout"`
	Snap          bool   `usage:"scroll by whole items"`
	Border        string `usage:"border set: plain | round | thick | double | hidden"`
	Churn         int    `usage:"milliseconds between background inserts, 0 disables them"`
	LogFile       string `usage:"write the log to this file"`
	Debug         bool   `usage:"log debug messages"`
	ShowConfig    bool   `usage:"print config and exit"`
}

func Default() Configuration {
	return Configuration{
		Items:      10_000,
		Direction:  "vertical",
		ItemWidth:  24,
		ItemHeight: 1,
		Overhang:   3,
		Border:     "round",
	}
}

// Validate checks the values goconfig cannot check by type.
func (c Configuration) Validate() error {
	if _, err := virtual.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, c.Direction)
	}
	sizes := []struct {
		name  string
		value int
	}{
		{"Items", c.Items},
		{"Duplicates", c.Duplicates},
		{"ItemWidth", c.ItemWidth},
		{"ItemHeight", c.ItemHeight},
		{"MinItemWidth", c.MinItemWidth},
		{"MinItemHeight", c.MinItemHeight},
		{"Columns", c.Columns},
		{"Rows", c.Rows},
		{"Spacing", c.Spacing},
		{"Overhang", c.Overhang},
		{"Churn", c.Churn},
	}
	for _, s := range sizes {
		if s.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidSize, s.name, s.value)
		}
	}
	if c.ItemWidth == 0 && c.MinItemWidth == 0 || c.ItemHeight == 0 && c.MinItemHeight == 0 {
		return fmt.Errorf("%w: items need a width and a height", ErrInvalidSize)
	}
	if c.Duplicates > c.Items {
		return fmt.Errorf("%w: Duplicates (%d) exceeds Items (%d)", ErrInvalidSize, c.Duplicates, c.Items)
	}
	if _, ok := vlist.ParseBorderSet(c.Border); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidBorder, c.Border)
	}
	return nil
}

// Layout returns the list layout described by the configuration.
func (c Configuration) Layout() (virtual.Config, error) {
	direction, err := virtual.ParseDirection(c.Direction)
	if err != nil {
		return virtual.Config{}, fmt.Errorf("%w: %q", ErrInvalidDirection, c.Direction)
	}
	return virtual.Config{
		Direction:          direction,
		ItemWidth:          c.ItemWidth,
		ItemHeight:         c.ItemHeight,
		MinItemWidth:       c.MinItemWidth,
		MinItemHeight:      c.MinItemHeight,
		Spacing:            c.Spacing,
		Columns:            c.Columns,
		Rows:               c.Rows,
		Overhang:           c.Overhang,
		RTL:                c.RTL,
		ScrollToBoundaries: c.Snap,
	}, nil
}
