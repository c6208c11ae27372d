package virtual

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestCalculateMetrics(t *testing.T) {
	Alternative("vertical list of 100 high items", func(a *A) {
		cfg := Config{Direction: Vertical, ItemWidth: 100, ItemHeight: 100, Overhang: 3}
		m := CalculateMetrics(cfg, Viewport{Width: 200, Height: 350})

		a.AssertEqual(m.Extent, 1)
		a.AssertEqual(m.Delta, 100)
		a.AssertEqual(m.NumItems, 7)
		a.AssertEqual(m.InitialThreshold(), Threshold{Max: 200, Floor: 200, MinOpen: true})
		a.AssertFalse(m.SizeItems)
		a.AssertEqual(m.SnapIncrement, 0)

		a.Alternative("same inputs, same metrics", func(a *A) {
			a.AssertEqual(CalculateMetrics(cfg, Viewport{Width: 200, Height: 350}), m)
		})

		a.Alternative("snap to boundaries", func(a *A) {
			cfg.ScrollToBoundaries = true
			a.AssertEqual(CalculateMetrics(cfg, Viewport{Width: 200, Height: 350}).SnapIncrement, 100)
		})
	})

	Alternative("auto-fit grid", func(a *A) {
		cfg := Config{Direction: Vertical, MinItemWidth: 80, MinItemHeight: 80, Spacing: 10, Overhang: 3}
		m := CalculateMetrics(cfg, Viewport{Width: 350, Height: 400})

		a.AssertTrue(m.SizeItems)
		a.AssertEqual(m.Extent, 3)
		a.AssertEqual(m.ItemSize2, 103)
		a.AssertEqual(m.ItemSize, 103)
		a.AssertEqual(m.Delta, 113)
		a.AssertEqual(m.Delta2, 113)
		a.AssertEqual(m.NumItems, 3*(4+3))

		a.Alternative("horizontal grid swaps axes", func(a *A) {
			cfg.Direction = Horizontal
			cfg.MinItemWidth = 40
			m := CalculateMetrics(cfg, Viewport{Width: 400, Height: 350})
			a.AssertEqual(m.Extent, 3)
			a.AssertEqual(m.ItemSize2, 103)
			a.AssertEqual(m.ItemSize, 52) // 40 * 103 / 80 = 51.5
			a.AssertEqual(m.Size, 400)
		})

		a.Alternative("narrow viewport keeps one column", func(a *A) {
			m := CalculateMetrics(cfg, Viewport{Width: 50, Height: 400})
			a.AssertEqual(m.Extent, 1)
		})
	})

	Alternative("explicit extent", func(a *A) {
		cfg := Config{Direction: Horizontal, ItemWidth: 10, ItemHeight: 2, Rows: 4, Columns: 9, Overhang: 2}
		m := CalculateMetrics(cfg, Viewport{Width: 35, Height: 8})
		a.AssertEqual(m.Extent, 4)
		a.AssertEqual(m.ItemSize, 10)
		a.AssertEqual(m.ItemSize2, 2)
		a.AssertEqual(m.NumItems, 4*(4+2))
	})

	Alternative("zero step is clamped", func(a *A) {
		m := CalculateMetrics(Config{}, Viewport{Width: 10, Height: 10})
		a.AssertEqual(m.Delta, 1)
		a.AssertEqual(m.NumItems, 10)
	})
}

func TestOverhangDoesNotShrinkPool(t *testing.T) {
	vp := Viewport{Width: 80, Height: 23}
	for _, cfg := range []Config{
		{Direction: Vertical, ItemHeight: 3, ItemWidth: 10},
		{Direction: Vertical, ItemHeight: 3, ItemWidth: 10, Columns: 4, Spacing: 1},
		{Direction: Horizontal, MinItemHeight: 5, MinItemWidth: 7, Spacing: 2},
	} {
		previous := -1
		for overhang := 0; overhang < 10; overhang++ {
			cfg.Overhang = overhang
			n := CalculateMetrics(cfg, vp).NumItems
			AssertTrue(n >= previous)
			previous = n
		}
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Horizontal ")
	AssertNil(err)
	AssertEqual(d, Horizontal)
	AssertEqual(d.String(), "horizontal")

	_, err = ParseDirection("diagonal")
	AssertNotNil(err)
}
