package input

import (
	"errors"
	"os"
	"path/filepath"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/session"
	"terminal-rpg/internal/special"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func namedKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func sentinels() special.Entities {
	return special.Allocate(ecs.NewWorld())
}

func TestTranslateGameDirections(t *testing.T) {
	s := sentinels()
	k := Default()
	c := Context{State: session.StateRunning, Special: s}
	cases := []struct {
		key rune
		dir func(special.Entities) action.Noun
	}{
		{key: '8', dir: func(s special.Entities) action.Noun { return action.Entity(s.North) }},
		{key: '3', dir: func(s special.Entities) action.Noun { return action.Entity(s.SouthEast) }},
		{key: '4', dir: func(s special.Entities) action.Noun { return action.Entity(s.West) }},
		{key: '7', dir: func(s special.Entities) action.Noun { return action.Entity(s.NorthWest) }},
	}
	for _, tc := range cases {
		req, ok := k.Translate(runeKey(tc.key), c)
		if !ok {
			t.Errorf("key %q not bound", tc.key)
			continue
		}
		if req.Action != action.Go || req.Noun != tc.dir(s) || req.Actor != s.Player {
			t.Errorf("key %q = %+v", tc.key, req)
		}
	}
}

func TestTranslateByState(t *testing.T) {
	s := sentinels()
	k := Default()
	cases := []struct {
		name string
		ev   *tcell.EventKey
		c    Context
		want action.Action
		noun action.Noun
		ok   bool
	}{
		{"main p plays", runeKey('p'), Context{State: session.StateMenu, Menu: menu.Main}, action.NewGame, action.Nothing, true},
		{"main P plays", runeKey('P'), Context{State: session.StateMenu, Menu: menu.Main}, action.NewGame, action.Nothing, true},
		{"main q quits", runeKey('q'), Context{State: session.StateMenu, Menu: menu.Main}, action.Quit, action.Nothing, true},
		{"main t opens test", runeKey('t'), Context{State: session.StateMenu, Menu: menu.Main}, action.OpenMenu, action.Menu(menu.Test), true},
		{"main arrows ignored", namedKey(tcell.KeyDown), Context{State: session.StateMenu, Menu: menu.Main}, 0, action.Nothing, false},
		{"game esc quits", namedKey(tcell.KeyEscape), Context{State: session.StateRunning}, action.Quit, action.Nothing, true},
		{"game p pauses", runeKey('p'), Context{State: session.StateRunning}, action.OpenMenu, action.Menu(menu.Pause), true},
		{"test esc closes", namedKey(tcell.KeyEscape), Context{State: session.StateMenu, Menu: menu.Test, Navigable: true}, action.CloseMenu, action.Nothing, true},
		{"test down navigates", namedKey(tcell.KeyDown), Context{State: session.StateMenu, Menu: menu.Test, Navigable: true}, action.NavigateMenu, action.Entity(s.South), true},
		{"test enter goes in", namedKey(tcell.KeyEnter), Context{State: session.StateMenu, Menu: menu.Test, Navigable: true}, action.NavigateMenu, action.Entity(s.Down), true},
		{"editing esc leaves widget", namedKey(tcell.KeyEscape), Context{State: session.StateMenu, Menu: menu.Test, Navigable: true, Editing: true}, action.NavigateMenu, action.Entity(s.Up), true},
		{"editing types runes", runeKey('S'), Context{State: session.StateMenu, Menu: menu.NewCharacter, Navigable: true, Editing: true}, action.NavigateMenu, action.Literal("S"), true},
		{"s starts from new character", runeKey('s'), Context{State: session.StateMenu, Menu: menu.NewCharacter, Navigable: true}, action.NewGame, action.Nothing, true},
		{"quit requested ignores keys", runeKey('q'), Context{State: session.StateQuitRequested}, 0, action.Nothing, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.c.Special = s
			req, ok := k.Translate(tc.ev, tc.c)
			if ok != tc.ok {
				t.Fatalf("ok = %v; want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if req.Action != tc.want || req.Noun != tc.noun {
				t.Errorf("request = %v %v; want %v %v", req.Action, req.Noun, tc.want, tc.noun)
			}
		})
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, value := range []string{
		"",
		"dance",
		"go sideways",
		"open-menu",
		"open-menu inventory",
		"go north extra",
	} {
		if _, err := ParseBinding(value); !errors.Is(err, ErrBadBinding) {
			t.Errorf("ParseBinding(%q) err = %v; want ErrBadBinding", value, err)
		}
	}
}

func TestLoadOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	src := "game:\n  w: go north\n  esc: quit\nmenus:\n  main:\n    x: quit\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	k, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s := sentinels()
	game := Context{State: session.StateRunning, Special: s}
	if req, ok := k.Translate(runeKey('w'), game); !ok || req.Noun != action.Entity(s.North) {
		t.Errorf("w = %+v, %v; want go north", req, ok)
	}
	if _, ok := k.Translate(runeKey('8'), game); ok {
		t.Error("replaced game section still binds 8")
	}
	mainMenu := Context{State: session.StateMenu, Menu: menu.Main, Special: s}
	if _, ok := k.Translate(runeKey('p'), mainMenu); ok {
		t.Error("replaced main menu section still binds p")
	}
	test := Context{State: session.StateMenu, Menu: menu.Test, Navigable: true, Special: s}
	if req, ok := k.Translate(namedKey(tcell.KeyEscape), test); !ok || req.Action != action.CloseMenu {
		t.Error("test menu section should keep its default")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-yaml.yaml":   "game: [",
		"bad-action.yaml": "game:\n  z: fly north\n",
		"bad-menu.yaml":   "menus:\n  shop:\n    q: quit\n",
	}
	for name, src := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestShippedBindingsLoad(t *testing.T) {
	if _, err := Load(filepath.Join("..", "..", "config", "keys.yaml")); err != nil {
		t.Fatalf("shipped bindings: %v", err)
	}
}
