package vlist

// Semigraphics used by borders and truncated titles.
const (
	SemigraphicsHorizontalEllipsis rune = '…' // …

	BoxDrawingsLightHorizontal      rune = '─' // ─
	BoxDrawingsHeavyHorizontal      rune = '━' // ━
	BoxDrawingsLightVertical        rune = '│' // │
	BoxDrawingsHeavyVertical        rune = '┃' // ┃
	BoxDrawingsLightDownAndRight    rune = '┌' // ┌
	BoxDrawingsHeavyDownAndRight    rune = '┏' // ┏
	BoxDrawingsLightDownAndLeft     rune = '┐' // ┐
	BoxDrawingsHeavyDownAndLeft     rune = '┓' // ┓
	BoxDrawingsLightUpAndRight      rune = '└' // └
	BoxDrawingsHeavyUpAndRight      rune = '┗' // ┗
	BoxDrawingsLightUpAndLeft       rune = '┘' // ┘
	BoxDrawingsHeavyUpAndLeft       rune = '┛' // ┛
	BoxDrawingsDoubleHorizontal     rune = '═' // ═
	BoxDrawingsDoubleVertical       rune = '║' // ║
	BoxDrawingsDoubleDownAndRight   rune = '╔' // ╔
	BoxDrawingsDoubleDownAndLeft    rune = '╗' // ╗
	BoxDrawingsDoubleUpAndRight     rune = '╚' // ╚
	BoxDrawingsDoubleUpAndLeft      rune = '╝' // ╝
	BoxDrawingsLightArcDownAndRight rune = '╭' // ╭
	BoxDrawingsLightArcDownAndLeft  rune = '╮' // ╮
	BoxDrawingsLightArcUpAndLeft    rune = '╯' // ╯
	BoxDrawingsLightArcUpAndRight   rune = '╰' // ╰
)

// BorderSet defines the runes used when box borders are drawn.
type BorderSet struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

func BorderSetHidden() BorderSet {
	return BorderSet{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft = BoxDrawingsLightArcDownAndRight
	b.TopRight = BoxDrawingsLightArcDownAndLeft
	b.BottomLeft = BoxDrawingsLightArcUpAndRight
	b.BottomRight = BoxDrawingsLightArcUpAndLeft
	return b
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
	}
}

// ParseBorderSet returns the border set with the given name: "plain",
// "round", "thick", "double" or "hidden".
func ParseBorderSet(name string) (BorderSet, bool) {
	switch name {
	case "plain", "":
		return BorderSetPlain(), true
	case "round":
		return BorderSetRound(), true
	case "thick":
		return BorderSetThick(), true
	case "double":
		return BorderSetDouble(), true
	case "hidden":
		return BorderSetHidden(), true
	}
	return BorderSet{}, false
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
