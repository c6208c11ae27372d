package vlist

import (
	"github.com/gdamore/tcell/v2"
)

// caption is a line of text drawn over the top or bottom border.
type caption struct {
	text      string
	style     tcell.Style
	alignment Alignment
}

// Box is the frame every primitive of this package embeds: a rectangle with
// a background, optional borders, a title and a footer. Embedders draw
// their content inside GetInnerRect.
type Box struct {
	x, y, width, height int

	// Space between the borders and the content.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color
	// Keep whatever is on the screen behind the box.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title  caption
	footer caption

	hasFocus    bool
	focus, blur func()
}

// NewBox returns a box without borders, drawn with the global Styles.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:       BorderSetPlain(),
		title:           caption{style: tcell.StyleDefault.Foreground(Styles.TitleColor), alignment: AlignmentCenter},
		footer:          caption{style: tcell.StyleDefault.Foreground(Styles.TitleColor), alignment: AlignmentCenter},
	}
}

// SetBorderPadding sets the space between the borders and the content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	return b
}

func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the content area: the rect without borders, caption
// rows and padding. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.x, b.y, b.width, b.height

	if b.title.text != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer.text != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom
	return x, y, max(width, 0), max(height, 0)
}

func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler asks for the focus on a left press inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect reports whether the cell (x, y) lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return contains(x, y, b.x, b.y, b.width, b.height)
}

// InInnerRect reports whether the cell (x, y) lies inside the content area.
func (b *Box) InInnerRect(x, y int) bool {
	left, top, width, height := b.GetInnerRect()
	return contains(x, y, left, top, width, height)
}

func contains(x, y, left, top, width, height int) bool {
	return x >= left && x < left+width && y >= top && y < top+height
}

// SetBackgroundColor sets the fill color of the box and its borders.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetDontClear keeps the existing screen content behind the box.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorders selects the sides to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	return b
}

// SetBorderSet sets the runes borders are drawn with.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

func (b *Box) GetTitle() string {
	return b.title.text
}

// SetTitle sets the caption drawn over the top border. A title takes the top
// row even without a top border.
func (b *Box) SetTitle(title string) *Box {
	b.title.text = title
	return b
}

func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.title.style = style
	return b
}

func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.title.alignment = alignment
	return b
}

func (b *Box) GetFooter() string {
	return b.footer.text
}

// SetFooter sets the caption drawn over the bottom border.
func (b *Box) SetFooter(footer string) *Box {
	b.footer.text = footer
	return b
}

func (b *Box) SetFooterStyle(style tcell.Style) *Box {
	b.footer.style = style
	return b
}

func (b *Box) SetFooterAlignment(alignment Alignment) *Box {
	b.footer.alignment = alignment
	return b
}

func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the frame of p, which embeds this box. Embedders call
// it first and then draw their content.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		fill(screen, b.x, b.y, b.width, b.height, tcell.StyleDefault.Background(b.backgroundColor))
	}
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}
	// Captions need room for at least two cells between the corners.
	if b.width >= 4 {
		b.drawCaption(screen, b.title, b.y)
		b.drawCaption(screen, b.footer, b.y+b.height-1)
	}
}

func (b *Box) drawBorders(screen tcell.Screen) {
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	for x := b.x + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.SetContent(x, b.y, set.Top, nil, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.SetContent(x, bottom, set.Bottom, nil, style)
		}
	}
	for y := b.y + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.SetContent(b.x, y, set.Left, nil, style)
		}
		if b.borders.Has(BordersRight) {
			screen.SetContent(right, y, set.Right, nil, style)
		}
	}

	corners := []struct {
		sides Borders
		x, y  int
		r     rune
	}{
		{BordersTop | BordersLeft, b.x, b.y, set.TopLeft},
		{BordersTop | BordersRight, right, b.y, set.TopRight},
		{BordersBottom | BordersLeft, b.x, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.sides == c.sides {
			screen.SetContent(c.x, c.y, c.r, nil, style)
		}
	}
}

// drawCaption prints c on row y between the corners. A cut caption ends in
// an ellipsis on the side where text was lost.
func (b *Box) drawCaption(screen tcell.Screen, c caption, y int) {
	if c.text == "" {
		return
	}
	start, end, _ := printWithStyle(screen, c.text, b.x+1, y, 0, b.width-2, c.alignment, c.style, true)
	printed := end - start
	if printed == 0 || printed == len(c.text) {
		return
	}

	x := b.x + b.width - 2
	if c.alignment == AlignmentRight {
		x = b.x + 1
	}
	_, _, existing, _ := screen.GetContent(x, y)
	fg, _, _ := existing.Decompose()
	Print(screen, string(SemigraphicsHorizontalEllipsis), x, y, 1, AlignmentLeft, fg)
}

// SetFocusFunc sets a callback run when the box gains the focus, or clears
// it with nil.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback run when the box loses the focus, or clears it
// with nil.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
	if b.focus != nil {
		b.focus()
	}
}

func (b *Box) Blur() {
	b.hasFocus = false
	if b.blur != nil {
		b.blur()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
