package input

import (
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/session"
	"terminal-rpg/internal/special"

	"github.com/gdamore/tcell/v2"
)

// Context is the part of the game state that decides what a key means.
type Context struct {
	State session.State
	Menu  menu.Type
	// Navigable is set when the open menu has focusable widgets.
	Navigable bool
	// Editing is set when a widget of the open menu has captured input.
	Editing bool
	Special special.Entities
}

// Translate maps a key press to a request. In the game only the game
// section applies. In a menu the menu's own section is tried first unless a
// widget is editing, then navigation if the menu is navigable, and finally
// printable keys become typed text while editing.
func (k *Keymap) Translate(ev *tcell.EventKey, c Context) (action.Request, bool) {
	name := KeyName(ev)
	switch c.State {
	case session.StateRunning:
		if b, ok := k.game[name]; ok {
			return b.Request(c.Special), true
		}
	case session.StateMenu:
		if !c.Editing {
			if b, ok := k.menus[c.Menu][name]; ok {
				return b.Request(c.Special), true
			}
		}
		if !c.Navigable {
			return action.Request{}, false
		}
		if b, ok := k.navigation[name]; ok {
			return b.Request(c.Special), true
		}
		if c.Editing && ev.Key() == tcell.KeyRune {
			return action.Request{
				Actor:  c.Special.Player,
				Action: action.NavigateMenu,
				Noun:   action.Literal(string(ev.Rune())),
			}, true
		}
	}
	return action.Request{}, false
}

// KeyName is the binding-file name of a key: the lower-cased character for
// printable keys, otherwise one of esc, enter, tab, backspace, up, down,
// left, right. Unnamed keys return the empty string.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return normalize(string(ev.Rune()))
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	}
	return ""
}
