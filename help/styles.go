package help

import (
	"github.com/ayn2op/vlist"
	"github.com/gdamore/tcell/v2"
)

// ModeStyles style one help mode.
type ModeStyles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
}

type Styles struct {
	Short ModeStyles
	Full  ModeStyles

	// Marks bindings left out for lack of space.
	Ellipsis tcell.Style
}

// DefaultStyles derives the help styles from the global vlist theme.
func DefaultStyles() Styles {
	desc := tcell.StyleDefault.Foreground(vlist.Styles.PrimaryTextColor)
	dim := tcell.StyleDefault.Foreground(vlist.Styles.SecondaryTextColor).Dim(true)
	mode := ModeStyles{
		Key:       dim.Bold(true),
		Desc:      desc,
		Separator: dim,
	}
	return Styles{
		Short:    mode,
		Full:     mode,
		Ellipsis: dim,
	}
}
