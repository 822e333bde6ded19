// Package menu holds menu focus and widget state. Menus are navigated with six
// primitives (up, down, left, right, in, out); rendering lives elsewhere.
package menu

import (
	"errors"
	"fmt"
)

var ErrUnknownMenu = errors.New("unknown menu")

// Type identifies a menu screen.
type Type uint8

const (
	Main Type = iota
	Character
	NewCharacter
	Pause
	Test
)

func (t Type) String() string {
	switch t {
	case Main:
		return "main"
	case Character:
		return "character"
	case NewCharacter:
		return "new-character"
	case Pause:
		return "pause"
	case Test:
		return "test"
	}
	return "unknown"
}

// Types lists every menu.
func Types() []Type {
	return []Type{Main, Character, NewCharacter, Pause, Test}
}

// ParseType is the inverse of String.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMenu, name)
}

// ParentKind says what closing a menu returns to.
type ParentKind uint8

const (
	ParentMenu ParentKind = iota // another menu, named by Parent.Menu
	ParentGame                   // the running game
	ParentQuit                   // nothing left; quit
)

// Parent is the destination of CloseMenu.
type Parent struct {
	Kind ParentKind
	Menu Type
}

// DefaultParent returns where closing t leads.
func DefaultParent(t Type) Parent {
	switch t {
	case Test, NewCharacter:
		return Parent{Kind: ParentMenu, Menu: Main}
	case Character, Pause:
		return Parent{Kind: ParentGame}
	}
	return Parent{Kind: ParentQuit}
}

// Navigator is implemented by every menu that has focusable content.
type Navigator interface {
	Up()
	Down()
	Left()
	Right()
	In()
	Out()
	// EditingAnything reports whether a widget has captured input, in which
	// case Escape leaves the widget instead of closing the menu.
	EditingAnything() bool
	Focused() int
}

// TextInput is implemented by navigators that accept typed text.
type TextInput interface {
	Type(text string)
}

// Data holds the state of every menu that has any.
type Data struct {
	Test         *Form
	NewCharacter *CharacterForm
}

// NewData creates fresh menu state.
func NewData() *Data {
	return &Data{
		Test:         NewTestForm(),
		NewCharacter: NewCharacterForm(),
	}
}

// Navigator returns the navigable state for t; ok is false for menus that
// are driven purely by hotkeys.
func (d *Data) Navigator(t Type) (Navigator, bool) {
	switch t {
	case Test:
		return d.Test, true
	case NewCharacter:
		return d.NewCharacter, true
	}
	return nil, false
}
