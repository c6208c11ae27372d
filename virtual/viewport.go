package virtual

// Rect is a rectangle in content space (offsets from the start of the
// scrollable content, not from the viewport).
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Side names an edge of a rectangle.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// ChildOffsets is the bounding box of an item together with the margin
// that scroll-bounds computations must keep around it.
type ChildOffsets struct {
	Rect
	margin int
}

// Margin returns the margin on the given side. Items are separated by the
// list spacing on every side.
func (o ChildOffsets) Margin(side Side) int {
	return o.margin
}

// ItemBounds returns the content-space rectangle of the item at index. The
// index is not range-checked.
func (m Metrics) ItemBounds(index int) Rect {
	extent := max(m.Extent, 1)
	g := index / extent
	g2 := index % extent
	p := m.Spacing + g*m.Delta
	p2 := m.Spacing + g2*m.Delta2

	if m.Direction == Vertical {
		return Rect{Left: p2, Top: p, Width: m.ItemSize2, Height: m.ItemSize}
	}
	return Rect{Left: p, Top: p2, Width: m.ItemSize, Height: m.ItemSize2}
}

// ChildOffsets returns the bounds of the item at index with the spacing as
// margin.
func (m Metrics) ChildOffsets(index int) ChildOffsets {
	return ChildOffsets{Rect: m.ItemBounds(index), margin: m.Spacing}
}

// ScrollTarget returns the scroll offsets that bring the item at index to
// the viewport origin. Targets within one spacing of the origin snap to 0 so
// no sliver of spacing is left visible at the start.
func (m Metrics) ScrollTarget(index int) (x, y int) {
	b := m.ItemBounds(index)
	x, y = b.Left, b.Top
	if x <= m.Spacing {
		x = 0
	}
	if y <= m.Spacing {
		y = 0
	}
	return x, y
}

// VirtualScrollDimension returns the total scrollable extent along the
// primary axis for a collection of the given length.
func (m Metrics) VirtualScrollDimension(length int) int {
	extent := max(m.Extent, 1)
	return ceilDiv(max(length, 0), extent)*m.Delta + m.Spacing
}

// CrossDimension returns the content size along the cross axis.
func (m Metrics) CrossDimension() int {
	return m.Extent*m.Delta2 + m.Spacing
}
