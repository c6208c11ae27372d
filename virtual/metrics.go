package virtual

import "math"

// Viewport is the content box of the scrolling element: its size with
// borders and padding removed.
type Viewport struct {
	Width  int
	Height int
}

// Metrics are the layout constants derived from a Config and a Viewport.
// Primary-axis values follow the scroll direction, secondary ("2") values the
// cross axis.
type Metrics struct {
	Direction Direction
	Spacing   int
	Overhang  int

	// Number of items per row (vertical) or column (horizontal).
	Extent int

	ItemSize  int
	ItemSize2 int
	Delta     int
	Delta2    int

	// Viewport size along each axis.
	Size  int
	Size2 int

	// Pool size.
	NumItems int

	// Set when item sizes were computed from minimum sizes; slots must then
	// be resized during positioning.
	SizeItems bool

	// Step to snap scrolling to, or 0.
	SnapIncrement int
}

// CalculateMetrics derives layout constants. It only reads its inputs, so
// calling it again with the same arguments yields the same Metrics.
func CalculateMetrics(cfg Config, vp Viewport) Metrics {
	m := Metrics{
		Direction: cfg.Direction,
		Spacing:   cfg.Spacing,
		Overhang:  cfg.Overhang,
	}

	var md1, md2 int
	if cfg.Direction == Vertical {
		m.Size, m.Size2 = vp.Height, vp.Width
		md1, md2 = cfg.MinItemHeight, cfg.MinItemWidth
		m.ItemSize, m.ItemSize2 = cfg.ItemHeight, cfg.ItemWidth
	} else {
		m.Size, m.Size2 = vp.Width, vp.Height
		md1, md2 = cfg.MinItemWidth, cfg.MinItemHeight
		m.ItemSize, m.ItemSize2 = cfg.ItemWidth, cfg.ItemHeight
	}

	sp := cfg.Spacing
	m.SizeItems = md1 > 0 && md2 > 0
	switch {
	case m.SizeItems:
		// As many minimum-size items as fit across, then share the leftover
		// space between them and scale the primary size to keep the aspect.
		m.Extent = max((m.Size2-2*sp)/(md2+sp), 1)
		m.ItemSize2 = round(float64(m.Size2-sp*(m.Extent+1)) / float64(m.Extent))
		m.ItemSize = round(float64(md1) * float64(m.ItemSize2) / float64(md2))
	case cfg.extentRequest() <= Auto:
		m.Extent = 1
	default:
		m.Extent = cfg.extentRequest()
	}

	// A zero step would divide by zero below and in every positioning pass.
	m.Delta = max(sp+m.ItemSize, 1)
	m.Delta2 = max(sp+m.ItemSize2, 1)

	m.NumItems = m.Extent * (ceilDiv(max(m.Size, 0), m.Delta) + max(m.Overhang, 0))

	if cfg.ScrollToBoundaries {
		m.SnapIncrement = m.Delta
	}
	return m
}

// InitialThreshold returns the degenerate window used before the first
// scroll: unbounded below and two steps above, so the first pass recycles
// as soon as the list moves past its first rows.
func (m Metrics) InitialThreshold() Threshold {
	floor := 2 * m.Delta
	return Threshold{
		Max:     floor,
		Floor:   floor,
		MinOpen: true,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// floorDiv rounds towards negative infinity, unlike Go's "/".
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
