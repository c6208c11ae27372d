package vlist

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/vlist/modellist"
)

func newTestScreen(width, height int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		panic(err)
	}
	screen.SetSize(width, height)
	return screen
}

// rowText returns the runes of one screen row.
func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func attrsAt(screen tcell.Screen, x, y int) tcell.AttrMask {
	_, _, style, _ := screen.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

// numberedRecords returns a list of n models with ids 0..n-1 and labels
// "item <id>".
func numberedRecords(n int) *modellist.ModelList {
	list := modellist.New()
	records := make([]modellist.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, modellist.NewModel(map[string]any{
			"id":    i,
			"label": fmt.Sprintf("item %d", i),
		}))
	}
	list.Add(0, records...)
	return list
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouseEvent(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}
