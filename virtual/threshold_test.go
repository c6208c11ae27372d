package virtual

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestThresholdContains(t *testing.T) {
	tt := Threshold{Min: 100, Max: 200}
	AssertTrue(tt.Contains(100))
	AssertTrue(tt.Contains(200))
	AssertFalse(tt.Contains(99))
	AssertFalse(tt.Contains(201))

	open := Threshold{Max: 200, MinOpen: true}
	AssertTrue(open.Contains(-1000))

	open = Threshold{Min: 100, MaxOpen: true}
	AssertTrue(open.Contains(1 << 40))
	AssertFalse(open.Contains(50))
}

func TestTrackerRefresh(t *testing.T) {
	m := CalculateMetrics(Config{Direction: Vertical, ItemHeight: 100, ItemWidth: 100, Overhang: 3}, Viewport{Width: 100, Height: 350})
	// 100 items, 10000 high in a 350 high viewport.
	maxOffset := 100*100 - 350

	Alternative("fresh tracker", func(a *A) {
		tr := &Tracker{}
		tr.Reset(m)
		a.AssertEqual(tr.First(), 0)
		a.AssertFalse(tr.Due(0))
		a.AssertFalse(tr.Due(200))
		a.AssertTrue(tr.Due(201))

		a.Alternative("scroll past two items", func(a *A) {
			tr.Refresh(250, maxOffset, 100, m)
			a.AssertEqual(tr.First(), 1)
			a.AssertEqual(tr.Threshold(), Threshold{Min: 200, Max: 300, Floor: 200})
		})

		a.Alternative("scroll to the start", func(a *A) {
			tr.Refresh(30, maxOffset, 100, m)
			a.AssertEqual(tr.First(), 0)
			a.AssertTrue(tr.Threshold().MinOpen)
			a.AssertEqual(tr.Threshold().Max, 200)
		})

		a.Alternative("scroll near the end", func(a *A) {
			tr.Refresh(9600, maxOffset, 100, m)
			a.AssertTrue(tr.Threshold().MaxOpen)
			a.AssertEqual(tr.First(), 95)
			a.AssertFalse(tr.Due(maxOffset))
		})

		a.Alternative("near the end with a pool too short to reach it", func(a *A) {
			short := m
			short.NumItems = 2
			tr.Refresh(9600, maxOffset, 100, short)
			a.AssertFalse(tr.Threshold().MaxOpen)
			a.AssertEqual(tr.Threshold().Max, maxOffset)
		})

		a.Alternative("overscroll before the start", func(a *A) {
			tr.Refresh(-40, maxOffset, 100, m)
			a.AssertEqual(tr.First(), 0)
			a.AssertTrue(tr.Threshold().Contains(-40))
		})
	})
}

func TestTrackerContainsOffsetAfterRefresh(t *testing.T) {
	for _, cfg := range []Config{
		{Direction: Vertical, ItemHeight: 3, Overhang: 3},
		{Direction: Vertical, ItemHeight: 2, Spacing: 1, Columns: 3, Overhang: 4},
		{Direction: Horizontal, ItemWidth: 7, Overhang: 1},
	} {
		m := CalculateMetrics(cfg, Viewport{Width: 40, Height: 20})
		maxOffset := 500
		length := (maxOffset + m.Size) / m.Delta * m.Extent
		tr := &Tracker{}
		tr.Reset(m)
		for offset := 0; offset <= maxOffset; offset++ {
			tr.Refresh(offset, maxOffset, length, m)
			tt := tr.Threshold()
			if tt.MaxOpen {
				continue
			}
			if !tt.Contains(offset) {
				t.Fatalf("offset %d outside %+v", offset, tt)
			}
		}
	}
}
