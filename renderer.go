package vlist

import (
	"fmt"

	"github.com/ayn2op/vlist/modellist"
	"github.com/ayn2op/vlist/virtual"
	"github.com/gdamore/tcell/v2"
)

// ItemStyles are the styles used by TextRenderer.
type ItemStyles struct {
	Normal   tcell.Style
	Selected tcell.Style
	// Headless records lost their primary key to another record.
	Headless tcell.Style
}

// DefaultItemStyles returns styles derived from the global theme.
func DefaultItemStyles() ItemStyles {
	normal := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor)
	return ItemStyles{
		Normal:   normal,
		Selected: normal.Reverse(true),
		Headless: normal.Foreground(Styles.SecondaryTextColor).Italic(true),
	}
}

// PrimaryKeyText labels a record with its primary key, or its EUID when it
// has none.
func PrimaryKeyText(record modellist.Record, index int) string {
	if key, ok := record.PrimaryKey(); ok {
		return fmt.Sprint(key)
	}
	return string(record.EUID())
}

// FieldText returns a labeler printing one attribute of *modellist.Model
// records, falling back to PrimaryKeyText.
func FieldText(field string) func(record modellist.Record, index int) string {
	return func(record modellist.Record, index int) string {
		if m, ok := record.(*modellist.Model); ok {
			if v := m.Get(field); v != nil {
				return fmt.Sprint(v)
			}
		}
		return PrimaryKeyText(record, index)
	}
}

// TextRenderer returns a renderer that fills the item rectangle and prints
// the label on its first row, using DefaultItemStyles.
func TextRenderer(label func(record modellist.Record, index int) string) ItemRenderer {
	return StyledTextRenderer(label, DefaultItemStyles())
}

// StyledTextRenderer works like TextRenderer with explicit styles.
func StyledTextRenderer(label func(record modellist.Record, index int) string, styles ItemStyles) ItemRenderer {
	return func(screen tcell.Screen, rect virtual.Rect, record modellist.Record, index int, selected bool) {
		style := styles.Normal
		switch {
		case selected:
			style = styles.Selected
		case record.Headless():
			style = styles.Headless
		}
		fill(screen, rect.Left, rect.Top, rect.Width, rect.Height, style)
		PrintStyled(screen, label(record, index), rect.Left, rect.Top, rect.Width, AlignmentLeft, style)
	}
}
