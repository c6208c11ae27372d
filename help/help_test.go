package help

import (
	"strings"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/vlist/keybind"
)

type testKeyMap struct {
	add, back, copy, hidden keybind.Keybind
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		add:    keybind.NewKeybind(keybind.WithKeys("a"), keybind.WithHelp("a", "add")),
		back:   keybind.NewKeybind(keybind.WithKeys("b"), keybind.WithHelp("bb", "back")),
		copy:   keybind.NewKeybind(keybind.WithKeys("c"), keybind.WithHelp("c", "copy")),
		hidden: keybind.NewKeybind(keybind.WithKeys("h"), keybind.WithHelp("h", "hidden"), keybind.WithDisabled()),
	}
}

func (k testKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.add, k.hidden, k.copy}
}

func (k testKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.add, k.back, k.hidden}, {k.copy}}
}

func TestShortHelpLine(t *testing.T) {
	h := New()
	keys := newTestKeyMap().ShortHelp()

	AssertEqual(h.ShortHelpLine(keys, 0), "a add • c copy")
	AssertEqual(h.ShortHelpLine(keys, 10), "a add …")
	AssertEqual(h.ShortHelpLine(keys, 6), "a add")
}

func TestFullHelpLines(t *testing.T) {
	h := New()
	groups := newTestKeyMap().FullHelp()

	Alternative("all columns fit", func(a *A) {
		a.AssertEqual(h.FullHelpLines(groups, 0), []string{
			"a  add     c copy",
			"bb back    ",
		})
	})

	Alternative("columns that do not fit are dropped", func(a *A) {
		a.AssertEqual(h.FullHelpLines(groups, 10), []string{
			"a  add …",
			"bb back",
		})
	})

	Alternative("no room at all", func(a *A) {
		a.AssertEqual(h.FullHelpLines(groups, 3), []string{"…"})
	})
}

func TestHelpDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	AssertNil(screen.Init())
	screen.SetSize(20, 2)

	h := New().SetKeyMap(newTestKeyMap())
	h.SetRect(0, 0, 20, 2)
	AssertEqual(h.Height(20), 1)
	h.Draw(screen)
	AssertEqual(row(screen, 0), "a add • c copy      ")

	h.SetShowAll(true)
	AssertEqual(h.Height(20), 2)
	h.Draw(screen)
	AssertEqual(row(screen, 0), "a  add     c copy   ")
	AssertEqual(row(screen, 1), "bb back             ")
}

func row(screen tcell.Screen, y int) string {
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
