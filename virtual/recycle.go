package virtual

// Positioner applies the geometry computed by a recycle pass to whatever
// visual element a slot stands for.
type Positioner interface {
	// Transform moves the slot to (x, y), relative to the viewport origin.
	Transform(slot *Slot, x, y int)
	// Resize is only called when item sizes are computed by the engine.
	Resize(slot *Slot, width, height int)
}

// VisibleRange holds positions into an ordered slot list. A value of -1
// means no slot qualified.
type VisibleRange struct {
	FirstVisible      int
	LastVisible       int
	FirstFullyVisible int
	LastFullyVisible  int
}

// NoneVisible is the range of an empty pass.
var NoneVisible = VisibleRange{-1, -1, -1, -1}

// Visible returns the part of ordered between FirstVisible and LastVisible,
// inclusive.
func (r VisibleRange) Visible(ordered []*Slot) []*Slot {
	return sliceRange(ordered, r.FirstVisible, r.LastVisible)
}

// FullyVisible returns the part of ordered between FirstFullyVisible and
// LastFullyVisible, inclusive.
func (r VisibleRange) FullyVisible(ordered []*Slot) []*Slot {
	return sliceRange(ordered, r.FirstFullyVisible, r.LastFullyVisible)
}

func sliceRange(ordered []*Slot, first, last int) []*Slot {
	if first < 0 || last < first || first >= len(ordered) {
		return nil
	}
	return ordered[first:min(last+1, len(ordered))]
}

// Position lays out ordered (slots sorted by data index) for the given
// primary-axis scroll offset and records which of them are visible.
func Position(ordered []*Slot, m Metrics, scroll int, rtl bool, p Positioner) VisibleRange {
	vr := NoneVisible
	extent := max(m.Extent, 1)

	for i, s := range ordered {
		idx := s.index
		g := idx / extent
		g2 := idx % extent
		pos := m.Spacing + g*m.Delta - scroll
		pos2 := m.Spacing + g2*m.Delta2

		var x, y, w, h int
		if m.Direction == Vertical {
			x, y, w, h = pos2, pos, m.ItemSize2, m.ItemSize
		} else {
			x, y, w, h = pos, pos2, m.ItemSize, m.ItemSize2
		}
		if rtl {
			x = -x
		}

		s.X, s.Y, s.Width, s.Height = x, y, w, h
		if p != nil {
			if m.SizeItems {
				p.Resize(s, w, h)
			}
			p.Transform(s, x, y)
		}

		if vr.FirstVisible < 0 && pos+m.ItemSize > 0 {
			vr.FirstVisible = i
		}
		if vr.FirstFullyVisible < 0 && pos >= 0 {
			vr.FirstFullyVisible = i
		}
		if pos+m.ItemSize <= m.Size {
			vr.LastFullyVisible = i
		}
		if pos < m.Size {
			vr.LastVisible = i
		}
	}
	return vr
}
