package vlist

import "github.com/gdamore/tcell/v2"

// ScrollBarArrows selects the arrow cells drawn at the ends of the track.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) count() int {
	n := 0
	if a.hasStart() {
		n++
	}
	if a.hasEnd() {
		n++
	}
	return n
}

// TrackClickBehavior decides what a click on the track outside the thumb
// does.
type TrackClickBehavior uint8

const (
	// Move by one page towards the click.
	TrackClickBehaviorPage TrackClickBehavior = iota
	// Center the thumb on the click.
	TrackClickBehaviorJumpToClick
)

// Orientation is the axis a scroll bar runs along.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// ScrollLengths are the content and viewport lengths along the bar's axis,
// in the same unit as the offset.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

// Eighths of a cell; the thumb is positioned with this resolution.
const subcell = 8

// GlyphSet holds the runes of both orientations. Thumb glyph i covers i+1
// eighths of a cell, filled from the top (left) edge for Start glyphs and
// from the bottom (right) edge for End glyphs.
type GlyphSet struct {
	TrackVertical   rune
	TrackHorizontal rune

	ArrowVerticalStart   rune
	ArrowVerticalEnd     rune
	ArrowHorizontalStart rune
	ArrowHorizontalEnd   rune

	ThumbVerticalStart   [8]rune
	ThumbVerticalEnd     [8]rune
	ThumbHorizontalStart [8]rune
	ThumbHorizontalEnd   [8]rune
}

// axisGlyphs are the runes of one orientation.
type axisGlyphs struct {
	track                rune
	arrowStart, arrowEnd rune
	thumbStart, thumbEnd [8]rune
}

func (g GlyphSet) axis(o Orientation) axisGlyphs {
	if o == OrientationHorizontal {
		return axisGlyphs{g.TrackHorizontal, g.ArrowHorizontalStart, g.ArrowHorizontalEnd, g.ThumbHorizontalStart, g.ThumbHorizontalEnd}
	}
	return axisGlyphs{g.TrackVertical, g.ArrowVerticalStart, g.ArrowVerticalEnd, g.ThumbVerticalStart, g.ThumbVerticalEnd}
}

// UnicodeGlyphSet uses block elements found in most terminal fonts. Some
// fractions are approximated.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   '│',
		TrackHorizontal: '─',

		ArrowVerticalStart:   '▲',
		ArrowVerticalEnd:     '▼',
		ArrowHorizontalStart: '◀',
		ArrowHorizontalEnd:   '▶',

		ThumbVerticalStart:   [8]rune{'▔', '▔', '▀', '▀', '▀', '▀', '█', '█'},
		ThumbVerticalEnd:     [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
		ThumbHorizontalStart: [8]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
		ThumbHorizontalEnd:   [8]rune{'▕', '▕', '▐', '▐', '▐', '▐', '█', '█'},
	}
}

// LegacyComputingGlyphSet completes the eighths missing from
// UnicodeGlyphSet with the Symbols for Legacy Computing block.
func LegacyComputingGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.ThumbVerticalStart = [8]rune{'▔', '🮂', '🮃', '▀', '🮄', '🮅', '🮆', '█'}
	g.ThumbHorizontalEnd = [8]rune{'▕', '🮇', '🮈', '▐', '🮉', '🮊', '🮋', '█'}
	return g
}

// MinimalGlyphSet is LegacyComputingGlyphSet with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = ' '
	g.TrackHorizontal = ' '
	return g
}

// ScrollBar draws the position of a viewport within its content along one
// axis. It only displays state; the owner sets lengths and offset before
// drawing and turns clicks into offsets with ClickOffset.
type ScrollBar struct {
	*Box

	orientation Orientation
	glyphs      GlyphSet
	arrows      ScrollBarArrows
	onTrack     TrackClickBehavior

	contentLen  int
	viewportLen int
	offset      int

	// Draw nothing when the content fits.
	autoHide  bool
	showTrack bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style
}

// NewScrollBar returns a vertical bar without arrows that hides itself when
// there is nothing to scroll.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		glyphs:     MinimalGlyphSet(),
		autoHide:   true,
		showTrack:  true,
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault,
		arrowStyle: tcell.StyleDefault.Dim(true),
	}
}

func (s *ScrollBar) SetOrientation(orientation Orientation) *ScrollBar {
	s.orientation = orientation
	return s
}

func (s *ScrollBar) Orientation() Orientation {
	return s.orientation
}

// SetLengths sets the content and viewport lengths. A zero viewport length
// means the bar's own length.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphs = g
	return s
}

func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	s.arrows = arrows
	return s
}

func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.onTrack = behavior
	return s
}

func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackGlyph sets the track rune of the current orientation. An invisible
// track is drawn as blanks.
func (s *ScrollBar) SetTrackGlyph(glyph rune, visible bool) *ScrollBar {
	if s.orientation == OrientationHorizontal {
		s.glyphs.TrackHorizontal = glyph
	} else {
		s.glyphs.TrackVertical = glyph
	}
	s.showTrack = visible
	return s
}

func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

func (s *ScrollBar) SetArrowStyle(style tcell.Style) *ScrollBar {
	s.arrowStyle = style
	return s
}

// length returns the number of cells along the bar.
func (s *ScrollBar) length() int {
	_, _, width, height := s.GetInnerRect()
	if s.orientation == OrientationHorizontal {
		return width
	}
	return height
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

// scrollMetrics is the track geometry in eighths of a cell.
type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func (s *ScrollBar) metrics(length int) scrollMetrics {
	trackCells := 0
	if length > 0 {
		trackCells = max(length-s.arrows.count(), 0)
	}
	return computeScrollMetrics(trackCells, s.contentLen, s.viewportLength(length), s.offset)
}

// computeScrollMetrics sizes the thumb in proportion to the visible share of
// the content, at least one cell, and places it in proportion to the offset.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}
	m := scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := contentLen - viewportLen
	if maxOffset == 0 {
		return m
	}
	offset = min(max(offset, 0), maxOffset)

	m.thumbLen = min(max(trackLen*viewportLen/contentLen, subcell), trackLen)
	m.thumbStart = (trackLen - m.thumbLen) * offset / maxOffset
	return m
}

// Visible reports whether Draw would draw a bar with the current state.
func (s *ScrollBar) Visible() bool {
	length := s.length()
	return s.visible(length, s.metrics(length))
}

func (s *ScrollBar) visible(length int, m scrollMetrics) bool {
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	return !s.autoHide || s.contentLen > s.viewportLength(length)
}

// cellFill returns the part of track cell i covered by the thumb, as a start
// and a length in eighths relative to the cell.
func cellFill(m scrollMetrics, i int) (start, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := i * subcell
	from := max(m.thumbStart, cellStart)
	to := min(m.thumbStart+m.thumbLen, cellStart+subcell)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

// glyph returns the rune and style of a track cell with the given fill.
func (s *ScrollBar) glyph(g axisGlyphs, start, fillLen int) (rune, tcell.Style) {
	switch {
	case fillLen <= 0 && !s.showTrack:
		return ' ', s.trackStyle
	case fillLen <= 0:
		return g.track, s.trackStyle
	case fillLen >= subcell:
		return g.thumbEnd[subcell-1], s.thumbStyle
	case start == 0:
		return g.thumbStart[fillLen-1], s.thumbStyle
	}
	return g.thumbEnd[fillLen-1], s.thumbStyle
}

// put sets cell i of the bar.
func (s *ScrollBar) put(screen tcell.Screen, i int, r rune, style tcell.Style) {
	x, y, _, _ := s.GetInnerRect()
	if s.orientation == OrientationHorizontal {
		x += i
	} else {
		y += i
	}
	screen.SetContent(x, y, r, nil, style)
}

func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	length := s.length()
	m := s.metrics(length)
	if !s.visible(length, m) {
		return
	}

	g := s.glyphs.axis(s.orientation)
	i := 0
	if s.arrows.hasStart() {
		s.put(screen, i, g.arrowStart, s.arrowStyle)
		i++
	}
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		r, style := s.glyph(g, start, fillLen)
		s.put(screen, i, r, style)
		i++
	}
	if s.arrows.hasEnd() {
		s.put(screen, i, g.arrowEnd, s.arrowStyle)
	}
}

// ClickOffset returns the offset asked for by a click on cell pos of the
// bar, counted from its start. Arrows step by one, the track moves by page
// or jumps, the thumb keeps the offset. The result is not clamped.
func (s *ScrollBar) ClickOffset(pos, page int) int {
	length := s.length()
	m := s.metrics(length)
	if m.trackLen == 0 {
		return s.offset
	}
	if s.arrows.hasStart() {
		if pos == 0 {
			return s.offset - 1
		}
		pos--
	}
	if s.arrows.hasEnd() && pos == m.trackCells {
		return s.offset + 1
	}

	at := pos * subcell
	switch {
	case at >= m.thumbStart && at < m.thumbStart+m.thumbLen:
		return s.offset
	case s.onTrack == TrackClickBehaviorJumpToClick:
		travel := m.trackLen - m.thumbLen
		if travel <= 0 {
			return 0
		}
		maxOffset := max(s.contentLen-s.viewportLength(length), 0)
		return min(max(at-m.thumbLen/2, 0), travel) * maxOffset / travel
	case at < m.thumbStart:
		return s.offset - page
	}
	return s.offset + page
}

var _ Primitive = &ScrollBar{}
