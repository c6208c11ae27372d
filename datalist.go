package vlist

import (
	"github.com/ayn2op/vlist/internal/logger"
	"github.com/ayn2op/vlist/modellist"
	"github.com/ayn2op/vlist/virtual"
	"github.com/gdamore/tcell/v2"
)

// ItemRenderer draws the record at index into rect. The screen is clipped
// to the list's viewport.
type ItemRenderer func(screen tcell.Screen, rect virtual.Rect, record modellist.Record, index int, selected bool)

// DataList displays a ModelList through a virtual.Engine. Only the records
// bound to the engine's slot pool are drawn, so the cost of a frame does not
// depend on the size of the collection.
type DataList struct {
	*Box

	records  *modellist.ModelList
	engine   *virtual.Engine
	cfg      virtual.Config
	renderer ItemRenderer
	logger   logger.Logger

	// Scroll offsets, in cells.
	offsetX, offsetY int

	// The part of the inner rect used by items; the rest holds the scroll bar.
	list virtual.Rect

	// Screen rectangles of the positioned slots, by slot ID.
	cells map[int]virtual.Rect

	scrollBar     *ScrollBar
	showScrollBar bool
	scrollStep    int

	cursor        int
	pendingCursor bool

	keyMap DataListKeyMap

	changed  func(index int, record modellist.Record)
	selected func(index int, record modellist.Record)
}

// NewDataList returns a list over records using virtual.DefaultConfig. The
// list observes records until Close is called.
func NewDataList(records *modellist.ModelList) *DataList {
	d := &DataList{
		Box:           NewBox(),
		records:       records,
		cfg:           virtual.DefaultConfig(),
		renderer:      TextRenderer(PrimaryKeyText),
		logger:        logger.Noop(),
		cells:         make(map[int]virtual.Rect),
		scrollBar:     NewScrollBar(),
		showScrollBar: true,
		scrollStep:    3,
		keyMap:        DefaultDataListKeyMap(),
	}
	d.engine = d.newEngine()
	records.Observe(d.engine)
	return d
}

func (d *DataList) newEngine() *virtual.Engine {
	return virtual.NewEngine(d.cfg, d.records,
		virtual.WithScroller(d),
		virtual.WithPositioner(d),
		virtual.WithLogger(d.logger),
		virtual.WithRecycleFunc(d.recycled),
	)
}

// Close stops observing the collection.
func (d *DataList) Close() {
	d.records.Unobserve(d.engine)
}

// SetLogger sets the logger used by the list and its engine.
func (d *DataList) SetLogger(l logger.Logger) *DataList {
	if l == nil {
		return d
	}
	d.logger = l
	d.engine.SetLogger(l)
	return d
}

// Records returns the listed collection.
func (d *DataList) Records() *modellist.ModelList {
	return d.records
}

// Engine returns the layout engine.
func (d *DataList) Engine() *virtual.Engine {
	return d.engine
}

// SetConfig replaces all layout parameters at once.
func (d *DataList) SetConfig(cfg virtual.Config) *DataList {
	d.cfg = cfg
	d.engine.SetConfig(cfg)
	return d
}

// Config returns the layout parameters.
func (d *DataList) Config() virtual.Config {
	return d.cfg
}

func (d *DataList) update(fn func(cfg *virtual.Config)) *DataList {
	cfg := d.cfg
	fn(&cfg)
	return d.SetConfig(cfg)
}

// SetDirection sets the scroll axis.
func (d *DataList) SetDirection(direction virtual.Direction) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.Direction = direction })
}

// SetItemSize sets a fixed item size in cells.
func (d *DataList) SetItemSize(width, height int) *DataList {
	return d.update(func(cfg *virtual.Config) {
		cfg.ItemWidth, cfg.ItemHeight = width, height
	})
}

// SetMinItemSize makes the list size items itself, fitting as many of at
// least this size as possible on the cross axis. Zero values disable it.
func (d *DataList) SetMinItemSize(width, height int) *DataList {
	return d.update(func(cfg *virtual.Config) {
		cfg.MinItemWidth, cfg.MinItemHeight = width, height
	})
}

// SetSpacing sets the gap between items and around the edges.
func (d *DataList) SetSpacing(spacing int) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.Spacing = spacing })
}

// SetColumns sets the number of columns of a vertical grid, or
// virtual.Auto.
func (d *DataList) SetColumns(columns int) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.Columns = columns })
}

// SetRows sets the number of rows of a horizontal grid, or virtual.Auto.
func (d *DataList) SetRows(rows int) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.Rows = rows })
}

// SetOverhang sets the number of slots kept beyond the visible ones.
func (d *DataList) SetOverhang(overhang int) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.Overhang = overhang })
}

// SetRTL mirrors the layout horizontally.
func (d *DataList) SetRTL(rtl bool) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.RTL = rtl })
}

// SetScrollToBoundaries makes wheel scrolling move by whole items.
func (d *DataList) SetScrollToBoundaries(snap bool) *DataList {
	return d.update(func(cfg *virtual.Config) { cfg.ScrollToBoundaries = snap })
}

// SetRenderer sets the function drawing each item.
func (d *DataList) SetRenderer(renderer ItemRenderer) *DataList {
	if renderer != nil {
		d.renderer = renderer
	}
	return d
}

// SetScrollBar shows or hides the scroll bar.
func (d *DataList) SetScrollBar(show bool) *DataList {
	d.showScrollBar = show
	return d
}

// ScrollBar returns the scroll bar for styling.
func (d *DataList) ScrollBar() *ScrollBar {
	return d.scrollBar
}

// SetScrollStep sets the number of cells a wheel notch scrolls.
func (d *DataList) SetScrollStep(step int) *DataList {
	d.scrollStep = max(step, 1)
	return d
}

// SetKeyMap replaces the key bindings.
func (d *DataList) SetKeyMap(keyMap DataListKeyMap) *DataList {
	d.keyMap = keyMap
	return d
}

// KeyMap returns the key bindings.
func (d *DataList) KeyMap() DataListKeyMap {
	return d.keyMap
}

// SetChangedFunc sets a handler called when the cursor moves to another
// record.
func (d *DataList) SetChangedFunc(handler func(index int, record modellist.Record)) *DataList {
	d.changed = handler
	return d
}

// SetSelectedFunc sets a handler called when a record is activated with the
// select key or a double click.
func (d *DataList) SetSelectedFunc(handler func(index int, record modellist.Record)) *DataList {
	d.selected = handler
	return d
}

// Cursor returns the index of the current record, or -1 for an empty list.
func (d *DataList) Cursor() int {
	if d.records.Len() == 0 {
		return -1
	}
	return min(d.cursor, d.records.Len()-1)
}

// SetCursor moves the cursor and scrolls it into view.
func (d *DataList) SetCursor(index int) *DataList {
	d.moveCursorTo(index)
	return d
}

// ScrollToItem scrolls so the record at index starts at the viewport origin.
func (d *DataList) ScrollToItem(index int) *DataList {
	d.engine.ScrollToItem(index)
	return d
}

// ScrollOffset implements virtual.Scroller.
func (d *DataList) ScrollOffset() (int, int) {
	return d.offsetX, d.offsetY
}

// ScrollBounds implements virtual.Scroller.
func (d *DataList) ScrollBounds() (int, int) {
	return d.engine.ContentBounds()
}

// ScrollTo implements virtual.Scroller. Offsets are clamped to the content.
func (d *DataList) ScrollTo(x, y int) {
	maxX, maxY := d.engine.ContentBounds()
	d.offsetX = min(max(x, 0), maxX)
	d.offsetY = min(max(y, 0), maxY)
}

// scrollBy moves the offsets and lets the engine recycle.
func (d *DataList) scrollBy(dx, dy int) {
	d.ScrollTo(d.offsetX+dx, d.offsetY+dy)
	d.engine.Scroll()
}

// Transform implements virtual.Positioner. It maps the viewport-relative
// slot position to screen cells.
func (d *DataList) Transform(slot *virtual.Slot, x, y int) {
	if d.cfg.Direction == virtual.Vertical {
		if d.cfg.RTL {
			x += d.offsetX
		} else {
			x -= d.offsetX
		}
	} else {
		y -= d.offsetY
	}
	if d.cfg.RTL {
		x += d.list.Width - slot.Width
	}
	d.cells[slot.ID] = virtual.Rect{
		Left:   d.list.Left + x,
		Top:    d.list.Top + y,
		Width:  slot.Width,
		Height: slot.Height,
	}
}

// Resize implements virtual.Positioner. Sizes are taken from the slot in
// Transform, which always follows.
func (d *DataList) Resize(slot *virtual.Slot, width, height int) {}

func (d *DataList) recycled(slots []*virtual.Slot) {
	d.logger.Debug("slots rebound", logger.F("count", len(slots)))
}

// Draw draws this primitive onto the screen.
func (d *DataList) Draw(screen tcell.Screen) {
	d.DrawForSubclass(screen, d)

	x, y, width, height := d.GetInnerRect()
	d.list = virtual.Rect{Left: x, Top: y, Width: width, Height: height}
	vertical := d.cfg.Direction == virtual.Vertical
	if d.showScrollBar {
		if vertical {
			d.list.Width = max(width-1, 0)
		} else {
			d.list.Height = max(height-1, 0)
		}
	}

	vp := virtual.Viewport{Width: d.list.Width, Height: d.list.Height}
	switch {
	case !d.engine.Initialized():
		d.engine.Init(vp)
		d.logger.Debug("list initialised", logger.F("width", vp.Width), logger.F("height", vp.Height))
	case d.engine.Viewport() != vp:
		d.engine.Reset(vp)
	}
	if d.pendingCursor {
		d.pendingCursor = false
		d.ensureVisible(d.Cursor())
	}
	// Positions depend on the inner rect, which may have moved.
	d.engine.Scroll()

	cursor := d.Cursor()
	clipped := newClippedScreen(screen, d.list.Left, d.list.Top, d.list.Width, d.list.Height)
	for _, slot := range d.engine.VisibleItems() {
		index := slot.Index()
		if index >= d.records.Len() {
			continue
		}
		d.renderer(clipped, d.cells[slot.ID], d.records.At(index), index, index == cursor)
	}

	if d.showScrollBar {
		d.drawScrollBar(screen, x, y, width, height)
	}
}

func (d *DataList) drawScrollBar(screen tcell.Screen, x, y, width, height int) {
	m := d.engine.Metrics()
	lengths := ScrollLengths{ContentLen: d.engine.VirtualScrollDimension(), ViewportLen: m.Size}
	if d.cfg.Direction == virtual.Vertical {
		d.scrollBar.SetOrientation(OrientationVertical)
		d.scrollBar.SetRect(x+width-1, y, 1, height)
		d.scrollBar.SetOffset(d.offsetY)
	} else {
		d.scrollBar.SetOrientation(OrientationHorizontal)
		d.scrollBar.SetRect(x, y+height-1, width, 1)
		d.scrollBar.SetOffset(d.offsetX)
	}
	d.scrollBar.SetLengths(lengths)
	d.scrollBar.Draw(screen)
}

// InputHandler handles cursor movement and selection.
func (d *DataList) InputHandler(event *tcell.EventKey) Command {
	if d.records.Len() == 0 {
		return nil
	}

	cursor := d.Cursor()
	extent := max(d.engine.Metrics().Extent, 1)
	along, across := extent, 1
	if d.cfg.Direction == virtual.Horizontal {
		along, across = 1, extent
	}
	if d.cfg.RTL {
		across = -across
	}

	switch {
	case d.keyMap.Up.Matches(event):
		return d.moveCursorTo(cursor - along)
	case d.keyMap.Down.Matches(event):
		return d.moveCursorTo(cursor + along)
	case d.keyMap.Left.Matches(event):
		return d.moveCursorTo(cursor - across)
	case d.keyMap.Right.Matches(event):
		return d.moveCursorTo(cursor + across)
	case d.keyMap.PageUp.Matches(event):
		return d.moveCursorTo(cursor - d.pageSize())
	case d.keyMap.PageDown.Matches(event):
		return d.moveCursorTo(cursor + d.pageSize())
	case d.keyMap.Top.Matches(event):
		return d.moveCursorTo(0)
	case d.keyMap.Bottom.Matches(event):
		return d.moveCursorTo(d.records.Len() - 1)
	case d.keyMap.Select.Matches(event):
		if d.selected != nil {
			d.selected(cursor, d.records.At(cursor))
		}
		return RedrawCommand{}
	}
	return nil
}

// MouseHandler handles wheel scrolling, clicks on items and on the scroll
// bar.
func (d *DataList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !d.InRect(x, y) {
		return nil, nil
	}

	step := d.scrollStep
	if snap := d.engine.Metrics().SnapIncrement; snap > 0 {
		step = snap
	}
	vertical := d.cfg.Direction == virtual.Vertical

	switch action {
	case MouseScrollUp, MouseScrollDown:
		if action == MouseScrollUp {
			step = -step
		}
		if vertical {
			d.scrollBy(0, step)
		} else {
			d.scrollBy(step, 0)
		}
		return nil, RedrawCommand{}
	case MouseScrollLeft, MouseScrollRight:
		if action == MouseScrollLeft {
			step = -step
		}
		if vertical {
			d.scrollBy(step, 0)
		} else {
			d.scrollBy(0, step)
		}
		return nil, RedrawCommand{}
	case MouseLeftDown:
		cmd := Command(SetFocusCommand{Target: d})
		if d.showScrollBar && d.scrollBar.InRect(x, y) {
			bx, by, _, _ := d.scrollBar.GetInnerRect()
			page := d.engine.Metrics().Size
			if vertical {
				d.scrollTo(d.offsetX, d.scrollBar.ClickOffset(y-by, page))
			} else {
				d.scrollTo(d.scrollBar.ClickOffset(x-bx, page), d.offsetY)
			}
			cmd = AppendCommand(cmd, RedrawCommand{})
		}
		return nil, cmd
	case MouseLeftClick:
		if index := d.indexAt(x, y); index >= 0 {
			return nil, d.moveCursorTo(index)
		}
		return nil, nil
	case MouseLeftDoubleClick:
		if index := d.indexAt(x, y); index >= 0 && d.selected != nil {
			d.selected(index, d.records.At(index))
			return nil, RedrawCommand{}
		}
		return nil, nil
	}
	return nil, nil
}

func (d *DataList) scrollTo(x, y int) {
	d.ScrollTo(x, y)
	d.engine.Scroll()
}

// indexAt returns the record drawn at the screen position, or -1.
func (d *DataList) indexAt(x, y int) int {
	if x < d.list.Left || x >= d.list.Left+d.list.Width || y < d.list.Top || y >= d.list.Top+d.list.Height {
		return -1
	}
	for _, slot := range d.engine.VisibleItems() {
		c := d.cells[slot.ID]
		if x >= c.Left && x < c.Left+c.Width && y >= c.Top && y < c.Top+c.Height {
			return slot.Index()
		}
	}
	return -1
}

// pageSize returns the number of records in one viewport.
func (d *DataList) pageSize() int {
	m := d.engine.Metrics()
	if m.Delta <= 0 {
		return 1
	}
	return max(m.Size/m.Delta, 1) * max(m.Extent, 1)
}

func (d *DataList) moveCursorTo(index int) Command {
	n := d.records.Len()
	if n == 0 {
		return nil
	}
	index = min(max(index, 0), n-1)
	previous := d.Cursor()
	d.cursor = index
	if d.engine.Initialized() {
		d.ensureVisible(index)
	} else {
		d.pendingCursor = true
	}
	if index == previous {
		return nil
	}
	if d.changed != nil {
		d.changed(index, d.records.At(index))
	}
	return RedrawCommand{}
}

// ensureVisible scrolls the least amount needed to show the whole record at
// index, spacing included.
func (d *DataList) ensureVisible(index int) {
	if index < 0 {
		return
	}
	m := d.engine.Metrics()
	b := d.engine.ItemBounds(index)
	x, y := d.offsetX, d.offsetY
	x = reveal(x, b.Left, b.Width, m.Spacing, d.list.Width)
	y = reveal(y, b.Top, b.Height, m.Spacing, d.list.Height)
	if x != d.offsetX || y != d.offsetY {
		d.scrollTo(x, y)
	}
}

// reveal returns the offset closest to offset that shows [start, start+size)
// within a viewport of the given length.
func reveal(offset, start, size, spacing, length int) int {
	switch {
	case start-spacing < offset:
		if start <= spacing {
			return 0
		}
		return start - spacing
	case start+size+spacing > offset+length:
		return max(start+size+spacing-length, 0)
	}
	return offset
}

var (
	_ Primitive          = &DataList{}
	_ virtual.Scroller   = &DataList{}
	_ virtual.Positioner = &DataList{}
)

// clippedScreen drops content outside a rectangle.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
