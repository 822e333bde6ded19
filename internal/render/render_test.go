package render

import (
	"errors"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/factory"
	"terminal-rpg/internal/gamemap"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/session"
	"terminal-rpg/internal/tabletop"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(w, h int) tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(w, h)
	return ss
}

// rowText reads n cells of row y starting at x.
func rowText(s tcell.Screen, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		ch, _, _, _ := s.GetContent(x+i, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestCheckSize(t *testing.T) {
	cases := []struct {
		w, h  int
		small bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
	}
	for _, tc := range cases {
		s := newSimScreen(tc.w, tc.h)
		err := NewRenderer(s).CheckSize()
		if got := errors.Is(err, ErrTerminalTooSmall); got != tc.small {
			t.Errorf("%dx%d: too small = %v; want %v (err %v)", tc.w, tc.h, got, tc.small, err)
		}
		s.Fini()
	}
}

func TestDrawMainMenu(t *testing.T) {
	s := newSimScreen(80, 24)
	defer s.Fini()
	NewRenderer(s).Draw(Frame{State: session.StateMenu, Menu: menu.Main, Menus: menu.NewData()})

	if got := rowText(s, 3, 1, len("Terminal RPG")); got != "Terminal RPG" {
		t.Errorf("title = %q", got)
	}
	if ch, _, _, _ := s.GetContent(3, 3); ch != 'P' {
		t.Errorf("first hotkey = %q; want P", ch)
	}
}

func TestDrawWorldPlacesPlayer(t *testing.T) {
	s := newSimScreen(80, 24)
	defer s.Fini()
	w := ecs.NewWorld()
	m := gamemap.Bordered(1, 20, 10)
	player := factory.NewPlayer(w, m.ID, 4, 3, tabletop.Fighter, factory.DefaultProfile())
	factory.NewMonster(w, m.ID, 6, 3, factory.DefaultProfile())
	factory.NewCarried(w, player)

	NewRenderer(s).Draw(Frame{
		World:    w,
		Map:      m,
		Player:   player,
		State:    session.StateRunning,
		Messages: []string{"first", "second", "third"},
	})

	cases := []struct {
		x, y int
		want rune
	}{
		{4, 3, glyphCharacter},
		{6, 3, glyphMonster},
		{0, 0, '#'},
		{1, 1, '.'},
	}
	for _, tc := range cases {
		if ch, _, _, _ := s.GetContent(tc.x, tc.y); ch != tc.want {
			t.Errorf("cell (%d,%d) = %q; want %q", tc.x, tc.y, ch, tc.want)
		}
	}
	if got := rowText(s, 0, 24-hudRows+1, len("second")); got != "second" {
		t.Errorf("hud shows %q; want the last two messages", got)
	}
}

func TestDrawFormHighlightsFocus(t *testing.T) {
	s := newSimScreen(80, 24)
	defer s.Fini()
	d := menu.NewData()
	d.Test.Down()
	NewRenderer(s).Draw(Frame{State: session.StateMenu, Menu: menu.Test, Menus: d})

	_, _, focused, _ := s.GetContent(formLabelX, formTopY+menu.TestTextField)
	_, _, plain, _ := s.GetContent(formLabelX, formTopY+menu.TestDropdown)
	if focused != styleFocus {
		t.Errorf("focused label style = %v; want focus style", focused)
	}
	if plain == styleFocus {
		t.Error("unfocused label drawn with focus style")
	}
}

func TestCameraFollowClamps(t *testing.T) {
	cases := []struct {
		name         string
		cx, cy       int
		mapW, mapH   int
		wantX, wantY int
	}{
		{"map fits", 5, 5, 40, 10, 0, 0},
		{"centre", 100, 50, 200, 100, 60, 40},
		{"left edge", 3, 50, 200, 100, 0, 40},
		{"far corner", 199, 99, 200, 100, 120, 80},
	}
	for _, tc := range cases {
		c := NewCamera(80, 20)
		c.Follow(tc.cx, tc.cy, tc.mapW, tc.mapH)
		if c.OffsetX != tc.wantX || c.OffsetY != tc.wantY {
			t.Errorf("%s: offset = (%d,%d); want (%d,%d)", tc.name, c.OffsetX, c.OffsetY, tc.wantX, tc.wantY)
		}
	}
}

func TestWorldToScreenVisibility(t *testing.T) {
	c := &Camera{OffsetX: 10, OffsetY: 5, ViewWidth: 20, ViewHeight: 10}
	if sx, sy, ok := c.WorldToScreen(12, 7); !ok || sx != 2 || sy != 2 {
		t.Errorf("WorldToScreen(12,7) = (%d,%d,%v)", sx, sy, ok)
	}
	if _, _, ok := c.WorldToScreen(9, 7); ok {
		t.Error("column left of the viewport reported visible")
	}
	if _, _, ok := c.WorldToScreen(12, 15); ok {
		t.Error("row below the viewport reported visible")
	}
}
