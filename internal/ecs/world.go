package ecs

import (
	"fmt"
	"sync/atomic"
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/entity"
)

// Component rows are kept as parallel arrays, one array set per category,
// all indexed by the id's sequence number. Every array of a category always
// has the same length.

type metaComponents struct {
	next  atomic.Uint64
	alive []component.Alive
}

type characterComponents struct {
	next      atomic.Uint64
	alive     []component.Alive
	creature  []component.Creature
	character []component.Character
	mapIndex  []component.MapIndex
	position  []component.Position
}

type monsterComponents struct {
	next     atomic.Uint64
	alive    []component.Alive
	creature []component.Creature
	mapIndex []component.MapIndex
	position []component.Position
}

type objectComponents struct {
	next     atomic.Uint64
	alive    []component.Alive
	mapIndex []component.MapIndex
	position []component.Position
	parent   []component.Parent
}

// World is the entity registry and component store. It is owned by the game
// loop; only id allocation is safe for concurrent use.
type World struct {
	meta      metaComponents
	character characterComponents
	monster   monsterComponents
	object    objectComponents
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return NewWorldWithCapacity(0)
}

// NewWorldWithCapacity creates an empty World whose arrays are pre-sized for
// n rows per category.
func NewWorldWithCapacity(n int) *World {
	w := &World{}
	w.meta.alive = make([]component.Alive, 0, n)

	w.character.alive = make([]component.Alive, 0, n)
	w.character.creature = make([]component.Creature, 0, n)
	w.character.character = make([]component.Character, 0, n)
	w.character.mapIndex = make([]component.MapIndex, 0, n)
	w.character.position = make([]component.Position, 0, n)

	w.monster.alive = make([]component.Alive, 0, n)
	w.monster.creature = make([]component.Creature, 0, n)
	w.monster.mapIndex = make([]component.MapIndex, 0, n)
	w.monster.position = make([]component.Position, 0, n)

	w.object.alive = make([]component.Alive, 0, n)
	w.object.mapIndex = make([]component.MapIndex, 0, n)
	w.object.position = make([]component.Position, 0, n)
	w.object.parent = make([]component.Parent, 0, n)
	return w
}

// CreateEntity mints a new id of category c and appends one default row to
// every array of that category.
func (w *World) CreateEntity(c entity.Category) entity.ID {
	alive := component.Alive{Alive: true}

	switch c {
	case entity.Meta:
		f := &w.meta
		seq := reserve(&f.next, c)
		f.alive = append(f.alive, alive)
		return entity.Encode(c, seq)

	case entity.Character:
		f := &w.character
		seq := reserve(&f.next, c)
		f.alive = append(f.alive, alive)
		f.creature = append(f.creature, component.DefaultCreature())
		f.character = append(f.character, component.Character{})
		f.mapIndex = append(f.mapIndex, component.MapIndex{})
		f.position = append(f.position, component.Position{})
		return entity.Encode(c, seq)

	case entity.Monster:
		f := &w.monster
		seq := reserve(&f.next, c)
		f.alive = append(f.alive, alive)
		f.creature = append(f.creature, component.DefaultCreature())
		f.mapIndex = append(f.mapIndex, component.MapIndex{})
		f.position = append(f.position, component.Position{})
		return entity.Encode(c, seq)

	case entity.Object:
		f := &w.object
		seq := reserve(&f.next, c)
		f.alive = append(f.alive, alive)
		f.mapIndex = append(f.mapIndex, component.MapIndex{})
		f.position = append(f.position, component.Position{})
		f.parent = append(f.parent, component.Parent{Owner: component.NoOwner})
		return entity.Encode(c, seq)
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownCategory, c))
}

// Size returns the number of rows allocated for category c, dead ones included.
func (w *World) Size(c entity.Category) int {
	switch c {
	case entity.Meta:
		return len(w.meta.alive)
	case entity.Character:
		return len(w.character.alive)
	case entity.Monster:
		return len(w.monster.alive)
	case entity.Object:
		return len(w.object.alive)
	}
	return 0
}

// Kill clears the liveness flag. The row stays in place.
func (w *World) Kill(id entity.ID) {
	if a := w.AliveMut(id); a != nil {
		a.Alive = false
	}
}

// IsAlive reports whether id refers to an allocated entity that is alive.
func (w *World) IsAlive(id entity.ID) bool {
	a, ok := w.Alive(id)
	return ok && a.Alive
}
