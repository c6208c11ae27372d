// Package help renders the key bindings of a KeyMap as a one-line summary or
// as aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/keybind"
	"github.com/gdamore/tcell/v2"
)

type KeyMap interface {
	// ShortHelp returns the bindings of the one-line summary.
	ShortHelp() []keybind.Keybind
	// FullHelp returns the bindings by column.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive drawing the help of a KeyMap. Disabled bindings and
// bindings without help text are left out.
type Help struct {
	*vlist.Box
	Styles Styles

	keyMap  KeyMap
	showAll bool

	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            vlist.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll switches between the one-line summary and the full columns.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

// Height returns the number of rows the help needs at the given width.
func (h *Help) Height(width int) int {
	switch {
	case h.keyMap == nil:
		return 0
	case h.showAll:
		return len(h.fullLines(h.keyMap.FullHelp(), width))
	}
	return 1
}

func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < min(len(lines), height); row++ {
		lines[row].draw(screen, x, y+row, width)
	}
}

// ShortHelpLine returns the summary line as plain text. A maxWidth of 0
// means unlimited.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	return h.shortLine(bindings, maxWidth).text()
}

// FullHelpLines returns the column layout as plain text lines. Columns that
// do not fit in maxWidth are dropped, marked by an ellipsis on the first
// line.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	lines := h.fullLines(groups, maxWidth)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text()
	}
	return out
}

type segment struct {
	text  string
	style tcell.Style
}

// line is a row of styled text.
type line []segment

func (l line) width() int {
	width := 0
	for _, s := range l {
		width += vlist.StringWidth(s.text)
	}
	return width
}

func (l line) text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		_, printed := vlist.PrintStyled(screen, s.text, x, y, width, vlist.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// entries returns the help texts of the bindings worth showing.
func entries(bindings []keybind.Keybind) []keybind.Help {
	var out []keybind.Help
	for _, kb := range bindings {
		if hp := kb.Help(); kb.Enabled() && (hp.Key != "" || hp.Desc != "") {
			out = append(out, hp)
		}
	}
	return out
}

// shortLine joins bindings until the next one would overflow maxWidth.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	styles := h.Styles.Short
	var out line
	for _, hp := range entries(bindings) {
		item := line{{hp.Key, styles.Key}, {" ", styles.Desc}, {hp.Desc, styles.Desc}}
		switch {
		case hp.Key == "":
			item = line{{hp.Desc, styles.Desc}}
		case hp.Desc == "":
			item = line{{hp.Key, styles.Key}}
		}

		next := append(line{}, out...)
		if len(next) > 0 {
			next = append(next, segment{h.shortSeparator, styles.Separator})
		}
		next = append(next, item...)
		if maxWidth > 0 && next.width() > maxWidth {
			return append(out, h.truncation(out, maxWidth)...)
		}
		out = next
	}
	return out
}

type column struct {
	entries []keybind.Help
	// Width of the widest key, and of the widest "key desc" row.
	keyWidth int
	width    int
}

func newColumn(bindings []keybind.Keybind) column {
	c := column{entries: entries(bindings)}
	for _, e := range c.entries {
		c.keyWidth = max(c.keyWidth, vlist.StringWidth(e.Key))
	}
	for _, e := range c.entries {
		w := c.keyWidth + vlist.StringWidth(e.Desc)
		if e.Key != "" && e.Desc != "" {
			w++
		}
		c.width = max(c.width, w)
	}
	return c
}

// cell returns row of the column with keys padded to a common width, and
// the whole row padded to the column width unless last.
func (c column) cell(row int, styles ModeStyles, last bool) line {
	var out line
	if row < len(c.entries) {
		e := c.entries[row]
		out = append(out, segment{e.Key + strings.Repeat(" ", c.keyWidth-vlist.StringWidth(e.Key)), styles.Key})
		if e.Key != "" && e.Desc != "" {
			out = append(out, segment{" ", styles.Desc})
		}
		out = append(out, segment{e.Desc, styles.Desc})
	}
	if pad := c.width - out.width(); !last && pad > 0 {
		out = append(out, segment{strings.Repeat(" ", pad), styles.Desc})
	}
	return out
}

func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	var columns []column
	for _, group := range groups {
		if c := newColumn(group); len(c.entries) > 0 {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return nil
	}

	// Keep the leading columns that fit.
	sepWidth := vlist.StringWidth(h.fullSeparator)
	fit, total := 0, 0
	for i, c := range columns {
		w := c.width
		if i > 0 {
			w += sepWidth
		}
		if maxWidth > 0 && total+w > maxWidth {
			break
		}
		fit++
		total += w
	}
	if fit == 0 {
		return []line{{{h.ellipsis, h.Styles.Ellipsis}}}
	}
	dropped := fit < len(columns)
	columns = columns[:fit]

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c.entries))
	}
	styles := h.Styles.Full
	lines := make([]line, rows)
	for row := range lines {
		for i, c := range columns {
			if i > 0 {
				lines[row] = append(lines[row], segment{h.fullSeparator, styles.Separator})
			}
			lines[row] = append(lines[row], c.cell(row, styles, i == len(columns)-1)...)
		}
	}
	if dropped {
		lines[0] = append(lines[0], h.truncation(lines[0], maxWidth)...)
	}
	return lines
}

// truncation returns the ellipsis marker when it fits after current.
func (h *Help) truncation(current line, maxWidth int) line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := line{{" " + h.ellipsis, h.Styles.Ellipsis}}
	if current.width()+tail.width() > maxWidth {
		return nil
	}
	return tail
}
