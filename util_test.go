package vlist

import (
	"testing"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"
)

func TestPrint(t *testing.T) {
	Alternative("truncates to the width", func(a *A) {
		screen := newTestScreen(10, 1)
		n, width := Print(screen, "héllo", 0, 0, 3, AlignmentLeft, tcell.ColorRed)
		a.AssertEqual(n, 4)
		a.AssertEqual(width, 3)
		a.AssertEqual(rowText(screen, 0), "hél       ")
	})

	Alternative("right alignment keeps the end", func(a *A) {
		screen := newTestScreen(10, 1)
		PrintStyled(screen, "hello", 0, 0, 3, AlignmentRight, tcell.StyleDefault)
		a.AssertEqual(rowText(screen, 0)[:3], "llo")
	})

	Alternative("center", func(a *A) {
		screen := newTestScreen(10, 1)
		Print(screen, "ab", 0, 0, 6, AlignmentCenter, tcell.ColorRed)
		a.AssertEqual(rowText(screen, 0), "  ab      ")
	})

	Alternative("wide runes are never split", func(a *A) {
		screen := newTestScreen(10, 1)
		n, width := Print(screen, "日本語", 0, 0, 5, AlignmentLeft, tcell.ColorRed)
		a.AssertEqual(n, 6)
		a.AssertEqual(width, 4)
		a.AssertEqual(runeAt(screen, 0, 0), '日')
		a.AssertEqual(runeAt(screen, 2, 0), '本')
		a.AssertEqual(runeAt(screen, 4, 0), ' ')
	})

	Alternative("keeps the background", func(a *A) {
		screen := newTestScreen(10, 1)
		fill(screen, 0, 0, 10, 1, tcell.StyleDefault.Background(tcell.ColorBlue))
		Print(screen, "x", 0, 0, 10, AlignmentLeft, tcell.ColorRed)
		_, _, style, _ := screen.GetContent(0, 0)
		fg, bg, _ := style.Decompose()
		a.AssertEqual(fg, tcell.ColorRed)
		a.AssertEqual(bg, tcell.ColorBlue)
	})

	Alternative("styled print paints the background", func(a *A) {
		screen := newTestScreen(10, 1)
		fill(screen, 0, 0, 10, 1, tcell.StyleDefault.Background(tcell.ColorBlue))
		PrintStyled(screen, "x", 0, 0, 10, AlignmentLeft, tcell.StyleDefault.Background(tcell.ColorGreen))
		_, _, style, _ := screen.GetContent(0, 0)
		_, bg, _ := style.Decompose()
		a.AssertEqual(bg, tcell.ColorGreen)
	})

	Alternative("outside the screen", func(a *A) {
		screen := newTestScreen(10, 1)
		n, width := Print(screen, "x", 0, 3, 10, AlignmentLeft, tcell.ColorRed)
		a.AssertEqual(n, 0)
		a.AssertEqual(width, 0)
	})

	Alternative("simple print uses the primary text color", func(a *A) {
		screen := newTestScreen(10, 1)
		PrintSimple(screen, "hi", 1, 0)
		a.AssertEqual(rowText(screen, 0), " hi       ")
		_, _, style, _ := screen.GetContent(1, 0)
		fg, _, _ := style.Decompose()
		a.AssertEqual(fg, Styles.PrimaryTextColor)
	})
}

func TestStringWidth(t *testing.T) {
	AssertEqual(StringWidth("abc"), 3)
	AssertEqual(StringWidth("日本"), 4)
	AssertEqual(StringWidth(""), 0)
}
