// Package virtual implements the layout and recycling engine behind
// virtualized lists: a bounded pool of slots is bound to the data indices
// around the scroll position and positioned absolutely, in linear or grid
// layouts scrolling vertically or horizontally.
//
// The engine is single-threaded. Scroll, resize and collection events must be
// delivered from one goroutine, and each call completes its recycle pass
// before returning.
package virtual

import (
	"github.com/ayn2op/vlist/internal/logger"
	"github.com/ayn2op/vlist/modellist"
)

// Scroller is the scrollable viewport driving the engine.
type Scroller interface {
	// ScrollOffset returns the current offsets along both axes.
	ScrollOffset() (x, y int)
	// ScrollBounds returns the largest offsets along both axes.
	ScrollBounds() (maxX, maxY int)
	// ScrollTo moves the viewport. Implementations clamp to their bounds.
	ScrollTo(x, y int)
}

// Source is the collection being listed.
type Source interface {
	Len() int
}

// Option configures an Engine.
type Option func(*Engine)

// WithScroller sets the viewport the engine reads offsets from.
func WithScroller(s Scroller) Option {
	return func(e *Engine) {
		e.scroller = s
	}
}

// WithPositioner sets the receiver of slot transforms.
func WithPositioner(p Positioner) Option {
	return func(e *Engine) {
		e.positioner = p
	}
}

// WithLogger sets the logger used for recycle diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecycleFunc sets a callback receiving the slots whose data index
// changed during a recycle pass, so their content can be refreshed.
func WithRecycleFunc(fn func(slots []*Slot)) Option {
	return func(e *Engine) {
		e.recycled = fn
	}
}

// Engine owns the layout metrics, the threshold tracker and the slot pool of
// one list.
type Engine struct {
	cfg      Config
	viewport Viewport
	metrics  Metrics
	tracker  Tracker
	pool     *Pool
	ordered  []*Slot
	visible  VisibleRange

	source     Source
	scroller   Scroller
	positioner Positioner
	recycled   func(slots []*Slot)
	logger     logger.Logger

	maxX, maxY  int
	initialized bool
}

// NewEngine returns an engine laying out source with cfg. Init must be
// called once the viewport size is known.
func NewEngine(cfg Config, source Source, options ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		source:  source,
		pool:    NewPool(),
		visible: NoneVisible,
		logger:  logger.Noop(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Init performs the initial layout: scroll to the origin, compute metrics and
// bounds, bind the pool from the first item and position it.
func (e *Engine) Init(vp Viewport) {
	e.viewport = vp
	if e.scroller != nil {
		e.scroller.ScrollTo(0, 0)
	}
	e.calculateMetrics()
	e.calcBoundaries()
	e.tracker.Reset(e.metrics)
	e.recycle(true)
	e.position()
	e.initialized = true
}

// Initialized reports whether Init has run.
func (e *Engine) Initialized() bool {
	return e.initialized
}

// Reset recomputes the layout for a new viewport size, keeping the scroll
// position as far as the new bounds allow.
func (e *Engine) Reset(vp Viewport) {
	if !e.initialized {
		e.Init(vp)
		return
	}
	e.viewport = vp
	e.calculateMetrics()
	e.calcBoundaries()
	e.clampScroll()
	e.tracker.Reset(e.metrics)
	e.refreshThresholds()
	e.recycle(true)
	e.position()
}

// SetConfig replaces the layout parameters and resets the layout.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
	if e.initialized {
		e.Reset(e.viewport)
	}
}

// SetLogger replaces the logger without touching the layout. Nil is
// ignored.
func (e *Engine) SetLogger(l logger.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Config returns the layout parameters.
func (e *Engine) Config() Config {
	return e.cfg
}

// Metrics returns the current layout constants.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// Viewport returns the viewport size used by the last layout.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Threshold returns the current refresh window.
func (e *Engine) Threshold() Threshold {
	return e.tracker.Threshold()
}

// First returns the data index of the first pool slot.
func (e *Engine) First() int {
	return e.tracker.First()
}

// Pool returns the slot pool.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Ordered returns the bound slots sorted by data index.
func (e *Engine) Ordered() []*Slot {
	return e.ordered
}

// Scroll must be called after every scroll position change. It recycles the
// pool when the offset left the threshold window and repositions all slots.
func (e *Engine) Scroll() {
	if !e.initialized {
		return
	}
	if e.tracker.Due(e.primaryOffset()) {
		e.refreshThresholds()
		e.recycle(false)
	}
	e.position()
}

// ScrollToItem scrolls so the item at index sits at the viewport origin. The
// index is not range-checked.
func (e *Engine) ScrollToItem(index int) {
	if e.scroller == nil {
		return
	}
	x, y := e.metrics.ScrollTarget(index)
	e.scroller.ScrollTo(x, y)
	e.Scroll()
}

// VisibleItems returns the slots at least partially inside the viewport.
func (e *Engine) VisibleItems() []*Slot {
	return e.visible.Visible(e.ordered)
}

// FullyVisibleItems returns the slots entirely inside the viewport.
func (e *Engine) FullyVisibleItems() []*Slot {
	return e.visible.FullyVisible(e.ordered)
}

// VisibleRange returns the positions into Ordered of the visible slots.
func (e *Engine) VisibleRange() VisibleRange {
	return e.visible
}

// ItemBounds returns the content-space rectangle of the item at index.
func (e *Engine) ItemBounds(index int) Rect {
	return e.metrics.ItemBounds(index)
}

// ChildOffsets returns the bounds of the item bound to slot.
func (e *Engine) ChildOffsets(slot *Slot) ChildOffsets {
	return e.metrics.ChildOffsets(slot.Index())
}

// SlotForIndex returns the slot bound to data index i, if any.
func (e *Engine) SlotForIndex(i int) (*Slot, bool) {
	return e.pool.ForIndex(i)
}

// VirtualScrollDimension returns the total scrollable size along the primary
// axis.
func (e *Engine) VirtualScrollDimension() int {
	return e.metrics.VirtualScrollDimension(e.length())
}

// ScrollHeight returns the virtual height of a vertical list. The second
// result is false for horizontal lists, whose height is not virtual.
func (e *Engine) ScrollHeight() (int, bool) {
	if e.metrics.Direction != Vertical {
		return 0, false
	}
	return e.VirtualScrollDimension(), true
}

// ScrollWidth returns the virtual width of a horizontal list.
func (e *Engine) ScrollWidth() (int, bool) {
	if e.metrics.Direction != Horizontal {
		return 0, false
	}
	return e.VirtualScrollDimension(), true
}

// ContentBounds returns the largest scroll offsets allowed by the content,
// for scrollers that derive their bounds from the engine.
func (e *Engine) ContentBounds() (maxX, maxY int) {
	primary := max(e.VirtualScrollDimension()-e.metrics.Size, 0)
	cross := max(e.metrics.CrossDimension()-e.metrics.Size2, 0)
	if e.metrics.Direction == Vertical {
		return cross, primary
	}
	return primary, cross
}

// ItemsAdded implements modellist.Observer.
func (e *Engine) ItemsAdded(records []modellist.Record, at int) {
	e.collectionChanged(false)
}

// ItemsRemoved implements modellist.Observer.
func (e *Engine) ItemsRemoved(records []modellist.Record) {
	e.collectionChanged(false)
}

// CollectionReset implements modellist.Observer.
func (e *Engine) CollectionReset() {
	e.collectionChanged(true)
}

var _ modellist.Observer = (*Engine)(nil)

func (e *Engine) collectionChanged(reset bool) {
	if !e.initialized {
		return
	}
	e.calcBoundaries()
	e.clampScroll()
	if reset {
		e.tracker.Reset(e.metrics)
	}
	e.refreshThresholds()
	// Indices shifted under every slot, so all of them are relabeled.
	e.recycle(true)
	e.position()
}

func (e *Engine) calculateMetrics() {
	e.metrics = CalculateMetrics(e.cfg, e.viewport)
	e.pool.Resize(e.metrics.NumItems)
	e.logger.Debug("metrics",
		logger.F("extent", e.metrics.Extent),
		logger.F("itemSize", e.metrics.ItemSize),
		logger.F("itemSize2", e.metrics.ItemSize2),
		logger.F("numItems", e.metrics.NumItems))
}

func (e *Engine) calcBoundaries() {
	if e.scroller != nil {
		e.maxX, e.maxY = e.scroller.ScrollBounds()
		return
	}
	e.maxX, e.maxY = e.ContentBounds()
}

func (e *Engine) clampScroll() {
	if e.scroller == nil {
		return
	}
	x, y := e.scroller.ScrollOffset()
	cx := min(max(x, 0), max(e.maxX, 0))
	cy := min(max(y, 0), max(e.maxY, 0))
	if cx != x || cy != y {
		e.scroller.ScrollTo(cx, cy)
	}
}

func (e *Engine) refreshThresholds() {
	maxOffset := e.maxY
	if e.metrics.Direction == Horizontal {
		maxOffset = e.maxX
	}
	e.tracker.Refresh(e.primaryOffset(), maxOffset, e.length(), e.metrics)
}

func (e *Engine) recycle(all bool) {
	rebound := e.pool.Assign(e.tracker.First(), e.length())
	e.ordered = e.pool.Ordered()
	if all {
		rebound = e.ordered
	}
	e.logger.Debug("recycle",
		logger.F("first", e.tracker.First()),
		logger.F("rebound", len(rebound)),
		logger.F("bound", len(e.ordered)))
	if e.recycled != nil && len(rebound) > 0 {
		e.recycled(rebound)
	}
}

func (e *Engine) position() {
	e.visible = Position(e.ordered, e.metrics, e.primaryOffset(), e.cfg.RTL, e.positioner)
}

func (e *Engine) primaryOffset() int {
	if e.scroller == nil {
		return 0
	}
	x, y := e.scroller.ScrollOffset()
	if e.metrics.Direction == Horizontal {
		return x
	}
	return y
}

func (e *Engine) length() int {
	if e.source == nil {
		return 0
	}
	return e.source.Len()
}
