// Package special allocates the sentinel entities that stand in for
// directions, places and the player. Consumers compare nouns against them by
// value, so new exits can be added as content without a direction enum.
package special

import (
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
)

// Entities is the fixed sentinel table. Every field is a Meta id.
type Entities struct {
	North     entity.ID
	NorthEast entity.ID
	East      entity.ID
	SouthEast entity.ID
	South     entity.ID
	SouthWest entity.ID
	West      entity.ID
	NorthWest entity.ID
	Up        entity.ID
	Down      entity.ID
	Inside    entity.ID
	Outside   entity.ID
	World     entity.ID
	Player    entity.ID
}

// Allocate creates one Meta entity per sentinel. Call it once, before any
// other Meta entity is created, so the ids are stable across runs.
func Allocate(w *ecs.World) Entities {
	var s Entities
	for _, f := range s.fields() {
		*f.id = w.CreateEntity(entity.Meta)
	}
	return s
}

type field struct {
	name string
	id   *entity.ID
	dx   int
	dy   int
}

func (s *Entities) fields() []field {
	return []field{
		{"north", &s.North, 0, -1},
		{"northeast", &s.NorthEast, 1, -1},
		{"east", &s.East, 1, 0},
		{"southeast", &s.SouthEast, 1, 1},
		{"south", &s.South, 0, 1},
		{"southwest", &s.SouthWest, -1, 1},
		{"west", &s.West, -1, 0},
		{"northwest", &s.NorthWest, -1, -1},
		{"up", &s.Up, 0, 0},
		{"down", &s.Down, 0, 0},
		{"inside", &s.Inside, 0, 0},
		{"outside", &s.Outside, 0, 0},
		{"world", &s.World, 0, 0},
		{"player", &s.Player, 0, 0},
	}
}

// compassCount is the number of leading fields that are compass directions.
const compassCount = 8

// Offset returns the signed step for a compass sentinel.
func (s Entities) Offset(id entity.ID) (dx, dy int, ok bool) {
	for _, f := range s.fields()[:compassCount] {
		if *f.id == id {
			return f.dx, f.dy, true
		}
	}
	return 0, 0, false
}

// IsCompass reports whether id is one of the eight compass sentinels.
func (s Entities) IsCompass(id entity.ID) bool {
	_, _, ok := s.Offset(id)
	return ok
}

// Name returns the lowercase name of a sentinel.
func (s Entities) Name(id entity.ID) (string, bool) {
	for _, f := range s.fields() {
		if *f.id == id {
			return f.name, true
		}
	}
	return "", false
}

// Lookup resolves a sentinel by name, as used in binding files and scripts.
func (s Entities) Lookup(name string) (entity.ID, bool) {
	for _, f := range s.fields() {
		if f.name == name {
			return *f.id, true
		}
	}
	return 0, false
}

// Names lists every sentinel name in allocation order.
func Names() []string {
	var s Entities
	fs := s.fields()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.name
	}
	return out
}
