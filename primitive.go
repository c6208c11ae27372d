package vlist

import "github.com/gdamore/tcell/v2"

// Primitive is a rectangular element the Application can draw and feed with
// events. Handlers never act on the application directly: they return a
// Command describing the side effect, or nil.
type Primitive interface {
	// Draw paints the primitive inside its rect. Only a focused primitive
	// may show the terminal cursor.
	Draw(screen tcell.Screen)

	GetRect() (x, y, width, height int)
	SetRect(x, y, width, height int)

	// InputHandler is called for key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler is called for every logical mouse action. A non-nil
	// primitive in the result captures the following actions until a handler
	// returns nil again.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	// PasteHandler receives bracketed paste content while focused.
	PasteHandler(text string) Command

	// HasFocus also reports true when a child of the primitive is focused.
	HasFocus() bool
	// Focus gives the primitive the focus; it may hand it on through
	// delegate.
	Focus(delegate func(p Primitive))
	Blur()
}
