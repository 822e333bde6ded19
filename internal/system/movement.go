package system

import (
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/gamemap"
)

// MoveResult describes the outcome of a Step call.
type MoveResult uint8

const (
	MoveOK         MoveResult = iota // position updated
	MoveBlocked                      // destination off the map
	MoveNoPosition                   // entity has no position row
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveNoPosition:
		return "no position"
	}
	return "unknown"
}

// Step moves id by (dx, dy) when the destination stays inside gmap. Movement
// clamps at the edge; it never wraps.
func Step(w *ecs.World, gmap *gamemap.GameMap, id entity.ID, dx, dy int) MoveResult {
	pos := w.PositionMut(id)
	if pos == nil {
		return MoveNoPosition
	}
	nx, ny := int(pos.X)+dx, int(pos.Y)+dy
	if !gmap.InBounds(nx, ny) {
		return MoveBlocked
	}
	pos.X, pos.Y = uint16(nx), uint16(ny)
	return MoveOK
}

// Chebyshev returns the king-move distance between two points.
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(abs(x1-x2), abs(y1-y2))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
