package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/help"
	"github.com/ayn2op/vlist/internal/logger"
	"github.com/ayn2op/vlist/modellist"
	"github.com/gdamore/tcell/v2"
)

// view stacks the list above a help bar and handles the demo bindings.
type view struct {
	*vlist.Box

	list       *vlist.DataList
	help       *help.Help
	keys       keyMap
	logger     logger.Logger
	nextID     int
	descending bool
	records    *modellist.ModelList
}

func newView(records *modellist.ModelList, list *vlist.DataList, log logger.Logger) *view {
	keys := defaultKeyMap()
	keys.list = list.KeyMap()
	v := &view{
		Box:     vlist.NewBox(),
		list:    list,
		help:    help.New(),
		keys:    keys,
		logger:  log,
		nextID:  records.Len(),
		records: records,
	}
	v.help.SetKeyMap(keys)
	list.SetChangedFunc(func(index int, record modellist.Record) {
		v.updateFooter()
	})
	v.updateFooter()
	return v
}

func (v *view) newRecord() *modellist.Model {
	id := v.nextID
	v.nextID++
	return newRecord(id)
}

func newRecord(id int) *modellist.Model {
	return modellist.NewModel(map[string]any{
		"id":    id,
		"label": fmt.Sprintf("item %d", id),
	})
}

// recordID returns the numeric primary key of a demo record. Headless
// records still carry the attribute.
func recordID(r modellist.Record) int {
	if m, ok := r.(*modellist.Model); ok {
		if id, ok := m.Get("id").(int); ok {
			return id
		}
	}
	return -1
}

func (v *view) updateFooter() {
	cursor := v.list.Cursor()
	headless := len(v.records.Filter(func(r modellist.Record) bool { return r.Headless() }))
	footer := fmt.Sprintf(" %d/%d ", cursor+1, v.records.Len())
	if headless > 0 {
		footer = strings.TrimSuffix(footer, " ") + fmt.Sprintf(" · %d headless ", headless)
	}
	v.list.SetFooter(footer)
}

func (v *view) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	helpHeight := min(v.help.Height(width), height)
	v.list.SetRect(x, y, width, height-helpHeight)
	v.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	v.list.Draw(screen)
	v.help.Draw(screen)
}

func (v *view) InputHandler(event *tcell.EventKey) vlist.Command {
	switch {
	case v.keys.Quit.Matches(event):
		return vlist.QuitCommand{}
	case v.keys.Help.Matches(event):
		v.help.SetShowAll(!v.help.ShowAll())
		return vlist.RedrawCommand{}
	case v.keys.Add.Matches(event):
		record := v.newRecord()
		at := v.list.Cursor() + 1
		v.records.Add(at, record)
		v.logger.Info("record added", logger.F("id", v.nextID-1), logger.F("at", at))
		v.list.SetCursor(at)
		v.updateFooter()
		return vlist.RedrawCommand{}
	case v.keys.Delete.Matches(event):
		cursor := v.list.Cursor()
		if cursor < 0 {
			return nil
		}
		removed := v.records.Remove(v.records.At(cursor))
		v.logger.Info("record removed", logger.F("count", len(removed)), logger.F("at", cursor))
		v.list.SetCursor(cursor)
		v.updateFooter()
		return vlist.RedrawCommand{}
	case v.keys.Reverse.Matches(event):
		v.descending = !v.descending
		v.records.Sort(func(a, b modellist.Record) int {
			c := cmp.Compare(recordID(a), recordID(b))
			if v.descending {
				return -c
			}
			return c
		})
		v.updateFooter()
		return vlist.RedrawCommand{}
	}
	return v.list.InputHandler(event)
}

func (v *view) MouseHandler(action vlist.MouseAction, event *tcell.EventMouse) (vlist.Primitive, vlist.Command) {
	return v.list.MouseHandler(action, event)
}

func (v *view) Focus(delegate func(p vlist.Primitive)) {
	v.Box.Focus(delegate)
	v.list.Focus(delegate)
}

func (v *view) HasFocus() bool {
	return v.Box.HasFocus() || v.list.HasFocus()
}

func (v *view) Blur() {
	v.list.Blur()
	v.Box.Blur()
}
