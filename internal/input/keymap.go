// Package input turns key presses into action requests. What a key does
// depends on the session state and the open menu; the bindings themselves
// are data and can be replaced from a YAML file.
package input

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/special"

	"gopkg.in/yaml.v3"
)

var ErrBadBinding = errors.New("bad key binding")

// File is the YAML layout of a binding file. Every value is "action" or
// "action noun", where noun names a sentinel (north, player, ...) or, for
// open-menu, a menu. Sections missing from a file keep their defaults.
type File struct {
	Game       map[string]string            `yaml:"game"`
	Menus      map[string]map[string]string `yaml:"menus"`
	Navigation map[string]string            `yaml:"navigation"`
}

// DefaultFile is the built-in binding set.
func DefaultFile() File {
	return File{
		Game: map[string]string{
			"7":   "go northwest",
			"8":   "go north",
			"9":   "go northeast",
			"4":   "go west",
			"6":   "go east",
			"1":   "go southwest",
			"2":   "go south",
			"3":   "go southeast",
			"5":   "wait",
			".":   "wait",
			"l":   "look",
			"i":   "inventory",
			"c":   "open-menu character",
			"p":   "open-menu pause",
			"esc": "quit",
		},
		Menus: map[string]map[string]string{
			"main": {
				"p": "new-game",
				"n": "open-menu new-character",
				"t": "open-menu test",
				"q": "quit",
			},
			"test": {
				"esc": "close-menu",
			},
			"new-character": {
				"s":   "new-game",
				"esc": "close-menu",
			},
			"pause": {
				"q":   "quit",
				"esc": "close-menu",
			},
			"character": {
				"c":   "close-menu",
				"esc": "close-menu",
			},
		},
		Navigation: map[string]string{
			"up":        "navigate-menu north",
			"down":      "navigate-menu south",
			"right":     "navigate-menu east",
			"left":      "navigate-menu west",
			"backspace": "navigate-menu west",
			"enter":     "navigate-menu down",
			"esc":       "navigate-menu up",
		},
	}
}

// Binding is one parsed key binding.
type Binding struct {
	Action action.Action
	// Sentinel is the name of the noun entity, or empty.
	Sentinel string
	Menu     menu.Type
	HasMenu  bool
}

// Keymap holds parsed bindings by section.
type Keymap struct {
	game       map[string]Binding
	menus      map[menu.Type]map[string]Binding
	navigation map[string]Binding
}

// Default returns the built-in keymap.
func Default() *Keymap {
	k, err := Compile(DefaultFile())
	if err != nil {
		panic(err)
	}
	return k
}

// Load reads a binding file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Keymap, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key bindings: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse key bindings: %w", err)
	}
	merged := DefaultFile()
	if f.Game != nil {
		merged.Game = f.Game
	}
	for name, section := range f.Menus {
		merged.Menus[name] = section
	}
	if f.Navigation != nil {
		merged.Navigation = f.Navigation
	}
	k, err := Compile(merged)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return k, nil
}

// Compile parses every binding in f.
func Compile(f File) (*Keymap, error) {
	k := &Keymap{menus: make(map[menu.Type]map[string]Binding)}
	var err error
	if k.game, err = compileSection("game", f.Game); err != nil {
		return nil, err
	}
	if k.navigation, err = compileSection("navigation", f.Navigation); err != nil {
		return nil, err
	}
	for name, section := range f.Menus {
		t, err := menu.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: section menus.%s: %v", ErrBadBinding, name, err)
		}
		if k.menus[t], err = compileSection("menus."+name, section); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func compileSection(name string, section map[string]string) (map[string]Binding, error) {
	out := make(map[string]Binding, len(section))
	for key, value := range section {
		b, err := ParseBinding(value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, key, err)
		}
		out[normalize(key)] = b
	}
	return out, nil
}

// ParseBinding parses "action" or "action noun".
func ParseBinding(value string) (Binding, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return Binding{}, fmt.Errorf("%w: %q", ErrBadBinding, value)
	}
	a, err := action.Parse(fields[0])
	if err != nil {
		return Binding{}, fmt.Errorf("%w: %v", ErrBadBinding, err)
	}
	b := Binding{Action: a}
	if len(fields) == 1 {
		if a == action.OpenMenu {
			return Binding{}, fmt.Errorf("%w: %s needs a menu", ErrBadBinding, a)
		}
		return b, nil
	}
	if a == action.OpenMenu {
		t, err := menu.ParseType(fields[1])
		if err != nil {
			return Binding{}, fmt.Errorf("%w: %v", ErrBadBinding, err)
		}
		b.Menu, b.HasMenu = t, true
		return b, nil
	}
	if !slices.Contains(special.Names(), fields[1]) {
		return Binding{}, fmt.Errorf("%w: unknown noun %q", ErrBadBinding, fields[1])
	}
	b.Sentinel = fields[1]
	return b, nil
}

// Request builds the request for b with the player as actor.
func (b Binding) Request(s special.Entities) action.Request {
	req := action.Request{Actor: s.Player, Action: b.Action}
	switch {
	case b.HasMenu:
		req.Noun = action.Menu(b.Menu)
	case b.Sentinel != "":
		id, _ := s.Lookup(b.Sentinel)
		req.Noun = action.Entity(id)
	}
	return req
}

// normalize folds single letters to lower case so bindings ignore shift.
func normalize(key string) string {
	if len([]rune(key)) == 1 {
		return strings.ToLower(key)
	}
	return key
}
