package vlist

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color will not be changed.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed runes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintStyled works like [Print] but takes a full style and paints the
// style's background.
func PrintStyled(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}

// PrintSimple prints white text to the screen at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	Print(screen, text, x, y, math.MaxInt32, AlignmentLeft, Styles.PrimaryTextColor)
}

// StringWidth returns the number of cells text occupies.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

type grapheme struct {
	cluster string
	runes   []rune
	offset  int
	width   int
}

func graphemes(text string) []grapheme {
	var out []grapheme
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		from, _ := gr.Positions()
		out = append(out, grapheme{
			cluster: gr.Str(),
			runes:   gr.Runes(),
			offset:  from,
			width:   gr.Width(),
		})
	}
	return out
}

// printWithStyle works like [Print] but it takes a style instead of just a
// foreground color. The skipWidth parameter specifies the number of cells
// skipped at the beginning of the text. It returns the start index, end index
// (exclusively), and screen width of the text actually printed. If
// maintainBackground is "true", the existing screen background is not changed
// (i.e. the style's background color is ignored).
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	clusters := graphemes(text)

	// Skip beginning and measure width.
	first := 0
	for first < len(clusters) && skipWidth > 0 {
		skipWidth -= clusters[first].width
		first++
	}
	var textWidth int
	for _, g := range clusters[first:] {
		textWidth += g.width
	}

	// Reduce all alignments to AlignLeft.
	switch alignment {
	case AlignmentRight:
		// Chop off characters on the left until it fits.
		for first < len(clusters) && textWidth > maxWidth {
			textWidth -= clusters[first].width
			first++
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for first < len(clusters) && subtracted > 0 {
			subtracted -= clusters[first].width
			textWidth -= clusters[first].width
			first++
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	if first < len(clusters) {
		start = clusters[first].offset
	} else {
		start = len(text)
	}

	// Draw left-aligned text.
	end = start
	rightBorder := x + maxWidth
	for _, g := range clusters[first:] {
		if x+g.width > rightBorder || x >= totalWidth {
			break
		}
		if g.width > 0 && x >= 0 {
			finalStyle := style
			if maintainBackground {
				_, _, existing, _ := screen.GetContent(x, y)
				_, background, _ := existing.Decompose()
				finalStyle = finalStyle.Background(background)
			}
			for offset := g.width - 1; offset >= 0; offset-- {
				// To avoid undesired effects, we populate all cells.
				if offset == 0 {
					screen.SetContent(x, y, g.runes[0], g.runes[1:], finalStyle)
				} else {
					screen.SetContent(x+offset, y, ' ', nil, finalStyle)
				}
			}
		}
		x += g.width
		end = g.offset + len(g.cluster)
		printedWidth += g.width
	}

	return
}

// fill paints a rectangle with spaces in the given style.
func fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
