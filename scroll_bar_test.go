package vlist

import (
	"testing"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"
)

func TestComputeScrollMetrics(t *testing.T) {
	Alternative("thumb keeps a minimum of one cell", func(a *A) {
		m := computeScrollMetrics(5, 100, 5, 0)
		a.AssertEqual(m, scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 8, thumbStart: 0})

		a.Alternative("at the end", func(a *A) {
			m := computeScrollMetrics(5, 100, 5, 95)
			a.AssertEqual(m.thumbStart, 32)
		})
		a.Alternative("offset is clamped", func(a *A) {
			m := computeScrollMetrics(5, 100, 5, 500)
			a.AssertEqual(m.thumbStart, 32)
		})
	})

	Alternative("nothing to scroll", func(a *A) {
		m := computeScrollMetrics(5, 3, 5, 0)
		a.AssertEqual(m.thumbLen, 40)
		a.AssertEqual(m.thumbStart, 0)
	})

	Alternative("no track", func(a *A) {
		a.AssertEqual(computeScrollMetrics(0, 100, 5, 0), scrollMetrics{})
	})
}

func TestCellFill(t *testing.T) {
	m := scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 8, thumbStart: 4}

	start, n := cellFill(m, 0)
	AssertEqual(start, 4)
	AssertEqual(n, 4)

	start, n = cellFill(m, 1)
	AssertEqual(start, 0)
	AssertEqual(n, 4)

	_, n = cellFill(m, 2)
	AssertEqual(n, 0)
}

func newTestScrollBar(content, viewport, offset int) *ScrollBar {
	s := NewScrollBar().
		SetLengths(ScrollLengths{ContentLen: content, ViewportLen: viewport}).
		SetOffset(offset)
	s.SetRect(0, 0, 1, 5)
	return s
}

func TestScrollBarClickOffset(t *testing.T) {
	Alternative("page", func(a *A) {
		a.AssertEqual(newTestScrollBar(100, 5, 0).ClickOffset(4, 5), 5)

		s := newTestScrollBar(100, 5, 50)
		a.AssertEqual(s.ClickOffset(2, 5), 50)
		a.AssertEqual(s.ClickOffset(0, 5), 45)
		a.AssertEqual(s.ClickOffset(4, 5), 55)
	})

	Alternative("jump to click", func(a *A) {
		s := newTestScrollBar(100, 5, 0).SetTrackClickBehavior(TrackClickBehaviorJumpToClick)
		a.AssertEqual(s.ClickOffset(4, 5), 83)
	})

	Alternative("arrows step by one", func(a *A) {
		s := newTestScrollBar(100, 5, 50).SetArrows(ScrollBarArrowsBoth)
		a.AssertEqual(s.ClickOffset(0, 5), 49)
		a.AssertEqual(s.ClickOffset(4, 5), 51)
	})
}

func TestScrollBarDraw(t *testing.T) {
	Alternative("horizontal", func(a *A) {
		screen := newTestScreen(5, 1)
		s := NewScrollBar().
			SetOrientation(OrientationHorizontal).
			SetGlyphSet(UnicodeGlyphSet()).
			SetLengths(ScrollLengths{ContentLen: 20, ViewportLen: 10})
		s.SetRect(0, 0, 5, 1)
		s.Draw(screen)
		a.AssertEqual(rowText(screen, 0), "██▌──")
	})

	Alternative("auto hide", func(a *A) {
		screen := newTestScreen(1, 5)
		s := newTestScrollBar(5, 5, 0).SetGlyphSet(UnicodeGlyphSet())
		a.AssertFalse(s.Visible())
		s.Draw(screen)
		a.AssertEqual(runeAt(screen, 0, 0), ' ')

		a.Alternative("disabled", func(a *A) {
			s.SetAutoHide(false)
			a.AssertTrue(s.Visible())
			s.Draw(screen)
			a.AssertEqual(runeAt(screen, 0, 4), '█')
		})
	})

	Alternative("thumb style", func(a *A) {
		screen := newTestScreen(1, 5)
		s := newTestScrollBar(100, 5, 0).SetThumbStyle(tcell.StyleDefault.Bold(true))
		s.Draw(screen)
		a.AssertTrue(attrsAt(screen, 0, 0)&tcell.AttrBold != 0)
		a.AssertTrue(attrsAt(screen, 0, 1)&tcell.AttrDim != 0)
	})
}
