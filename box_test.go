package vlist

import (
	"testing"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"
)

func TestBoxDraw(t *testing.T) {
	Alternative("borders and title", func(a *A) {
		screen := newTestScreen(10, 3)
		box := NewBox().SetBorders(BordersAll).SetTitle("abc")
		box.SetRect(0, 0, 10, 3)
		box.Draw(screen)

		a.AssertEqual(rowText(screen, 0), "┌───abc──┐")
		a.AssertEqual(rowText(screen, 1), "│        │")
		a.AssertEqual(rowText(screen, 2), "└────────┘")

		x, y, width, height := box.GetInnerRect()
		a.AssertEqual([]int{x, y, width, height}, []int{1, 1, 8, 1})
	})

	Alternative("long title is cut with an ellipsis", func(a *A) {
		screen := newTestScreen(6, 3)
		box := NewBox().SetBorders(BordersAll).SetTitle("abcdef")
		box.SetRect(0, 0, 6, 3)
		box.Draw(screen)
		a.AssertEqual(rowText(screen, 0), "┌bcd…┐")
	})

	Alternative("round border set", func(a *A) {
		screen := newTestScreen(4, 2)
		box := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
		box.SetRect(0, 0, 4, 2)
		box.Draw(screen)
		a.AssertEqual(rowText(screen, 0), "╭──╮")
		a.AssertEqual(rowText(screen, 1), "╰──╯")
	})

	Alternative("footer", func(a *A) {
		screen := newTestScreen(10, 3)
		box := NewBox().SetFooter("1/2").SetFooterAlignment(AlignmentRight)
		box.SetRect(0, 0, 10, 3)
		box.Draw(screen)
		a.AssertEqual(rowText(screen, 2), "      1/2 ")

		_, _, _, height := box.GetInnerRect()
		a.AssertEqual(height, 2)
	})
}

func TestParseBorderSet(t *testing.T) {
	set, ok := ParseBorderSet("double")
	AssertTrue(ok)
	AssertEqual(set, BorderSetDouble())

	set, ok = ParseBorderSet("")
	AssertTrue(ok)
	AssertEqual(set, BorderSetPlain())

	_, ok = ParseBorderSet("dotted")
	AssertFalse(ok)
}

func TestBoxMouseFocus(t *testing.T) {
	box := NewBox()
	box.SetRect(2, 2, 4, 4)

	_, cmd := box.MouseHandler(MouseLeftDown, tcell.NewEventMouse(3, 3, tcell.ButtonPrimary, tcell.ModNone))
	AssertEqual(cmd, Command(SetFocusCommand{Target: box}))

	_, cmd = box.MouseHandler(MouseLeftDown, tcell.NewEventMouse(0, 0, tcell.ButtonPrimary, tcell.ModNone))
	AssertNil(cmd)

	focused := false
	box.SetFocusFunc(func() { focused = true })
	box.Focus(nil)
	AssertTrue(focused)
	AssertTrue(box.HasFocus())
	box.Blur()
	AssertFalse(box.HasFocus())
}
