// Package keybind maps terminal key events to named, user-configurable
// bindings such as "ctrl+d" or "pgdn".
//
// Binding names are normalized: modifiers are lower case and joined with
// "+" in the order written, named keys are lower case, and a single
// printable rune keeps its case unless a modifier is present ("G" and
// "ctrl+g").
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of key names triggering one action, with the help text
// shown for it.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text describing a binding in help views.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

// Keys returns the normalized key names.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the key names. Names that normalize to nothing are
// dropped.
func (k *Keybind) SetKeys(keys ...string) {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	k.keys = normalized
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding has keys and was not disabled.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers this binding.
func (k Keybind) Matches(event *tcell.EventKey) bool {
	return Matches(event, k)
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	name := EventKeyString(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.keys, name)
	})
}

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"space":    " ",
}

// normalizeKey turns "Ctrl+D", "control+d" or "ctrl-d" into "ctrl+d" and
// returns "" for names without a key.
func normalizeKey(name string) string {
	var mods []string
	primary := ""
	for _, part := range strings.Split(strings.TrimSpace(name), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			mods = append(mods, mod)
			continue
		}
		primary = part
	}
	if primary == "" {
		return ""
	}

	// tcell's own names: "Rune[x]", "Ctrl-X", "Backtab".
	lower := strings.ToLower(primary)
	switch {
	case strings.HasPrefix(primary, "Rune[") && strings.HasSuffix(primary, "]") && len(primary) > len("Rune[]"):
		primary = primary[len("Rune[") : len(primary)-1]
	case strings.HasPrefix(lower, "ctrl-") && len(lower) > len("ctrl-"):
		mods = append(mods, "ctrl")
		primary = lower[len("ctrl-"):]
	case lower == "backtab":
		mods = append(mods, "shift")
		primary = "tab"
	case keyAliases[lower] != "":
		primary = keyAliases[lower]
	case len([]rune(primary)) > 1:
		primary = lower
	}

	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinKey(mods, primary)
}

// joinKey joins modifiers, without repeats, and the key name.
func joinKey(mods []string, primary string) string {
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range mods {
		if !slices.Contains(parts, mod) {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

// EventKeyString returns the normalized name of a key event, in the form
// bindings are stored.
func EventKeyString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	// Tab, enter and backspace share their codes with ctrl+i, ctrl+m and
	// ctrl+h, so named keys are looked up first.
	key := event.Key()
	modifiers := event.Modifiers()
	if key == tcell.KeyBacktab {
		key = tcell.KeyTab
		modifiers |= tcell.ModShift
	}
	primary, named := keyNames[key]
	switch {
	case named:
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	case key == tcell.KeyRune:
		primary = string(event.Rune())
	default:
		return normalizeKey(event.Name())
	}

	var mods []string
	if modifiers&tcell.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if modifiers&tcell.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	// Shift is already folded into printable runes.
	if modifiers&tcell.ModShift != 0 && key != tcell.KeyRune {
		mods = append(mods, "shift")
	}
	if modifiers&tcell.ModMeta != 0 {
		mods = append(mods, "meta")
	}
	if len(mods) == 0 {
		return primary
	}
	return joinKey(mods, primary)
}
