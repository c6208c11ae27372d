package vlist

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ayn2op/vlist/internal/logger"
	"github.com/gdamore/tcell/v2"
)

const (
	eventQueueSize   = 100
	updatesQueueSize = 100
	// Resize events closer than this are coalesced into one extra redraw.
	redrawPause = 50 * time.Millisecond
)

// DoubleClickInterval is the longest time between two clicks of the same
// button that still counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var buttonActions = []struct {
	button                    tcell.ButtonMask
	down, up, click, dblClick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// pointer is the mouse state carried from one event to the next.
type pointer struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time

	// Receives all actions until its handler stops returning it.
	capture Primitive
}

// actions turns one raw event into logical actions and advances the state.
// A release at the position of the matching press is a click, or a double
// click when it follows a click within DoubleClickInterval.
func (p *pointer) actions(event *tcell.EventMouse, now time.Time) []MouseAction {
	x, y := event.Position()
	buttons := event.Buttons()

	var out []MouseAction
	if x != p.x || y != p.y {
		out = append(out, MouseMove)
		p.x, p.y = x, y
	}

	moved := x != p.downX || y != p.downY
	changed := buttons ^ p.buttons
	for _, b := range buttonActions {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			out = append(out, b.down)
			p.downX, p.downY = x, y
			continue
		}
		out = append(out, b.up)
		if moved {
			continue
		}
		if now.Sub(p.lastClick) > DoubleClickInterval {
			out = append(out, b.click)
			p.lastClick = now
		} else {
			out = append(out, b.dblClick)
			p.lastClick = time.Time{}
		}
	}

	for _, w := range wheelActions {
		if buttons&w.button != 0 {
			out = append(out, w.action)
		}
	}
	p.buttons = buttons
	return out
}

type queuedUpdate struct {
	f func()
	// Receives one value once f returned, if not nil.
	done chan struct{}
}

// Application owns the terminal screen and runs the event loop feeding one
// root primitive. All primitive state is touched from the loop goroutine
// only; other goroutines go through QueueUpdate.
//
//	app := vlist.NewApplication().SetRoot(list)
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	mu sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	events  chan tcell.Event
	quit    chan struct{}
	updates chan queuedUpdate

	pointer pointer
	logger  logger.Logger

	// Clear the screen before the next frame.
	forceRedraw bool
}

// NewApplication returns an application without screen or root.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
		logger:  logger.Noop(),
	}
}

// SetLogger sets the logger receiving event loop diagnostics.
func (a *Application) SetLogger(l logger.Logger) *Application {
	if l != nil {
		a.logger = l
	}
	return a
}

// SetScreen sets the screen to run on instead of the terminal. Run
// initialises it. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run initialises the screen and processes events until Stop is called or
// the screen reports an error, which is then returned. A panic in a
// primitive restores the terminal before it propagates.
func (a *Application) Run() error {
	events, quit, err := a.start()
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	a.logger.Info("event loop started")

	loop := &eventLoop{app: a}
	for {
		select {
		case event, ok := <-events:
			if !ok || event == nil {
				return loop.finish()
			}
			loop.handle(event)
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		case <-quit:
			return loop.finish()
		}
	}
}

func (a *Application) start() (chan tcell.Event, chan struct{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("vlist: create screen: %w", err)
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		a.screen = nil
		return nil, nil, fmt.Errorf("vlist: init screen: %w", err)
	}
	a.screen.EnableMouse()
	a.screen.EnablePaste()

	a.events = make(chan tcell.Event, eventQueueSize)
	a.quit = make(chan struct{})
	go a.screen.ChannelEvents(a.events, a.quit)
	return a.events, a.quit, nil
}

// eventLoop holds the state Run keeps between events.
type eventLoop struct {
	app *Application

	pasting bool
	paste   strings.Builder

	lastResize  time.Time
	resizeTimer *time.Timer

	err error
}

func (l *eventLoop) handle(event tcell.Event) {
	a := l.app
	switch event := event.(type) {
	case *tcell.EventKey:
		l.key(event)
	case *tcell.EventPaste:
		l.pasteEvent(event)
	case *tcell.EventResize:
		l.resize(event)
	case *tcell.EventMouse:
		if a.dispatchMouse(event) {
			a.draw()
		}
	case *tcell.EventError:
		l.err = event
		a.logger.Error("screen error", logger.F("err", event))
		a.Stop()
	}
}

func (l *eventLoop) key(event *tcell.EventKey) {
	// Bracketed paste arrives as key events between the paste markers.
	if l.pasting {
		switch event.Key() {
		case tcell.KeyRune:
			l.paste.WriteRune(event.Rune())
		case tcell.KeyEnter:
			l.paste.WriteByte('\n')
		case tcell.KeyTab:
			l.paste.WriteByte('\t')
		}
		return
	}

	a := l.app
	if root := a.rootPrimitive(); root != nil && root.HasFocus() {
		if a.executeCommand(root.InputHandler(event)) {
			a.draw()
		}
	}
}

func (l *eventLoop) pasteEvent(event *tcell.EventPaste) {
	if event.Start() {
		l.pasting = true
		l.paste.Reset()
		return
	}
	if !event.End() {
		return
	}
	l.pasting = false

	a := l.app
	root := a.rootPrimitive()
	if root == nil || !root.HasFocus() || l.paste.Len() == 0 {
		return
	}
	if a.executeCommand(root.PasteHandler(l.paste.String())) {
		a.draw()
	}
}

func (l *eventLoop) resize(event *tcell.EventResize) {
	a := l.app
	a.mu.Lock()
	a.forceRedraw = true
	a.mu.Unlock()

	// Terminals often send bursts; the last one is replayed after a pause so
	// the final size is drawn.
	if time.Since(l.lastResize) < redrawPause {
		if l.resizeTimer != nil {
			l.resizeTimer.Stop()
		}
		l.resizeTimer = time.AfterFunc(redrawPause, func() {
			a.QueueEvent(event)
		})
	}
	l.lastResize = time.Now()
	a.draw()
}

func (l *eventLoop) finish() error {
	if l.resizeTimer != nil {
		l.resizeTimer.Stop()
	}
	l.app.logger.Info("event loop stopped")
	return l.err
}

// dispatchMouse delivers the actions of event to the capturing primitive or
// the root, and reports whether a redraw was requested.
func (a *Application) dispatchMouse(event *tcell.EventMouse) bool {
	redraw := false
	var target Primitive
	for _, action := range a.pointer.actions(event, time.Now()) {
		p := a.pointer.capture
		switch {
		case p != nil:
			target = p
		case target != nil:
			p = target
		default:
			p = a.rootPrimitive()
		}
		if p == nil {
			a.pointer.capture = nil
			continue
		}

		capture, cmd := p.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			redraw = true
		}
		a.pointer.capture = capture
	}
	return redraw
}

// Stop ends the event loop and restores the terminal. Run then returns.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		return
	}
	if a.quit != nil {
		close(a.quit)
		a.quit = nil
	}
	// ChannelEvents closes the event channel once quit is closed.
	a.events = nil
	a.screen.Fini()
	a.screen = nil
}

// Draw queues a redraw. It blocks until the frame is drawn, so it must not be
// called from the event loop goroutine.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() {
	a.mu.Lock()
	screen, root, force := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.mu.Unlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// Show only flushes changed cells; a clear is needed after a resize.
	if force {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// Sync repaints the whole terminal on the next loop iteration, e.g. after
// another program wrote to it.
func (a *Application) Sync() *Application {
	a.updates <- queuedUpdate{f: func() {
		a.mu.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.mu.Unlock()
		if screen != nil {
			screen.Sync()
		}
	}}
	return a
}

// SetRoot sets the primitive filling the screen and gives it the focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.mu.Unlock()

	a.SetFocus(root)
	return a
}

func (a *Application) rootPrimitive() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root
}

// SetFocus blurs the focused primitive and focuses p, which may delegate the
// focus further.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.mu.Unlock()

	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop goroutine and returns once it ran.
// This is the only safe way to touch primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws afterwards.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// QueueEvent injects event into the loop as if the screen had sent it. It is
// dropped when the loop is not running or its queue is full.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	// Stop takes the write lock, so the channel stays open while we hold the
	// read lock.
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.events == nil {
		return a
	}
	select {
	case a.events <- event:
	default:
		a.logger.Warn("event queue full, event dropped", logger.F("event", fmt.Sprintf("%T", event)))
	}
	return a
}

// executeCommand runs cmd and reports whether a redraw is needed.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
		return false
	}

	a.logger.Debug("unknown command", logger.F("type", fmt.Sprintf("%T", cmd)))
	return false
}
