package virtual

// Threshold is the scroll-offset window inside which no recycle pass is
// needed. MinOpen and MaxOpen stand for unbounded ends.
type Threshold struct {
	Min int
	Max int
	// Floor is the degenerate maximum (two steps); Max never drops below it.
	Floor   int
	MinOpen bool
	MaxOpen bool
}

// Contains reports whether offset lies inside the window.
func (t Threshold) Contains(offset int) bool {
	if !t.MinOpen && offset < t.Min {
		return false
	}
	if !t.MaxOpen && offset > t.Max {
		return false
	}
	return true
}

// Tracker keeps the threshold window and the data index bound to the first
// pool slot.
type Tracker struct {
	threshold Threshold
	first     int
}

// Reset installs the initial window for m and rewinds to the first item.
func (t *Tracker) Reset(m Metrics) {
	t.threshold = m.InitialThreshold()
	t.first = 0
}

// Threshold returns the current window.
func (t *Tracker) Threshold() Threshold {
	return t.threshold
}

// First returns the data index of the first pool slot.
func (t *Tracker) First() int {
	return t.first
}

// Due reports whether offset has left the window, i.e. a refresh and a
// recycle pass must run.
func (t *Tracker) Due(offset int) bool {
	return !t.threshold.Contains(offset)
}

// Refresh recomputes the window around offset. maxOffset is the largest
// offset the viewport can scroll to along the primary axis and length the
// size of the collection. Callers must follow with a recycle pass.
func (t *Tracker) Refresh(offset, maxOffset, length int, m Metrics) {
	delta := m.Delta
	floor := t.threshold.Floor
	if floor == 0 {
		floor = 2 * delta
	}

	head := max(m.Overhang, 0) / 2
	fvg := floorDiv(offset, delta)
	fg := max(0, fvg-head)
	first := m.Extent * fg

	tt := Threshold{Floor: floor}
	tt.Max = max(floor, min(maxOffset, fvg*delta+delta))
	// The window is only unbounded below while the pool starts at the
	// first item.
	if tt.Max > floor || first > 0 {
		tt.Min = tt.Max - delta
	} else {
		tt.MinOpen = true
	}
	// Near the end, once the pool reaches the last item, there is nothing
	// left to recycle.
	if tt.Max > maxOffset-floor && first+m.NumItems >= length {
		tt.MaxOpen = true
	}

	t.threshold = tt
	t.first = first
}
