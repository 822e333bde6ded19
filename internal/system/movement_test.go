package system

import (
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/gamemap"
	"testing"
)

func setupMoveWorld(x, y uint16) (*ecs.World, *gamemap.GameMap, entity.ID) {
	w := ecs.NewWorld()
	gmap := gamemap.New(1, 10, 10)
	player := w.CreateEntity(entity.Character)
	*w.PositionMut(player) = component.Position{X: x, Y: y}
	return w, gmap, player
}

func TestStepSucceeds(t *testing.T) {
	w, gmap, player := setupMoveWorld(3, 3)
	if got := Step(w, gmap, player, 1, 0); got != MoveOK {
		t.Fatalf("expected MoveOK, got %v", got)
	}
	pos, _ := w.Position(player)
	if pos.X != 4 || pos.Y != 3 {
		t.Fatalf("expected position (4,3), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestStepClampsAtEdges(t *testing.T) {
	cases := []struct {
		name   string
		x, y   uint16
		dx, dy int
	}{
		{"west edge", 0, 5, -1, 0},
		{"east edge", 9, 5, 1, 0},
		{"north edge", 5, 0, 0, -1},
		{"south edge", 5, 9, 0, 1},
		{"corner diagonal", 9, 9, 1, 1},
		{"edge diagonal", 0, 4, -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, gmap, player := setupMoveWorld(tc.x, tc.y)
			if got := Step(w, gmap, player, tc.dx, tc.dy); got != MoveBlocked {
				t.Fatalf("expected MoveBlocked, got %v", got)
			}
			pos, _ := w.Position(player)
			if pos.X != tc.x || pos.Y != tc.y {
				t.Fatalf("position should be unchanged, got (%d,%d)", pos.X, pos.Y)
			}
		})
	}
}

func TestStepWithoutPosition(t *testing.T) {
	w, gmap, _ := setupMoveWorld(1, 1)
	meta := w.CreateEntity(entity.Meta)
	if got := Step(w, gmap, meta, 1, 0); got != MoveNoPosition {
		t.Fatalf("expected MoveNoPosition, got %v", got)
	}
}

func TestChebyshev(t *testing.T) {
	if d := Chebyshev(0, 0, 3, -2); d != 3 {
		t.Errorf("Chebyshev = %d; want 3", d)
	}
	if d := Chebyshev(4, 4, 4, 4); d != 0 {
		t.Errorf("Chebyshev = %d; want 0", d)
	}
}
