package ecs

import (
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/entity"
)

// Views expose one category's arrays directly so a renderer can walk them
// row by row. The slices alias the store and must be treated as read-only;
// they are invalidated by the next CreateEntity of the same category.

// CharacterView is the character family's parallel arrays.
type CharacterView struct {
	Alive     []component.Alive
	Creature  []component.Creature
	Character []component.Character
	MapIndex  []component.MapIndex
	Position  []component.Position
}

// MonsterView is the monster family's parallel arrays.
type MonsterView struct {
	Alive    []component.Alive
	Creature []component.Creature
	MapIndex []component.MapIndex
	Position []component.Position
}

// ObjectView is the object family's parallel arrays.
type ObjectView struct {
	Alive    []component.Alive
	MapIndex []component.MapIndex
	Position []component.Position
	Parent   []component.Parent
}

func (w *World) Characters() CharacterView {
	f := &w.character
	return CharacterView{f.alive, f.creature, f.character, f.mapIndex, f.position}
}

func (w *World) Monsters() MonsterView {
	f := &w.monster
	return MonsterView{f.alive, f.creature, f.mapIndex, f.position}
}

func (w *World) Objects() ObjectView {
	f := &w.object
	return ObjectView{f.alive, f.mapIndex, f.position, f.parent}
}

func (v CharacterView) Len() int { return len(v.Alive) }
func (v MonsterView) Len() int   { return len(v.Alive) }
func (v ObjectView) Len() int    { return len(v.Alive) }

// Row converts id to an index into the view. Panics if id is not a character.
func (v CharacterView) Row(id entity.ID) int {
	mustOwn(id, entity.Character)
	return int(entity.Sequence(id))
}

// Row converts id to an index into the view. Panics if id is not a monster.
func (v MonsterView) Row(id entity.ID) int {
	mustOwn(id, entity.Monster)
	return int(entity.Sequence(id))
}

// Row converts id to an index into the view. Panics if id is not an object.
func (v ObjectView) Row(id entity.ID) int {
	mustOwn(id, entity.Object)
	return int(entity.Sequence(id))
}

// ID returns the id of row i of category c.
func ID(c entity.Category, i int) entity.ID {
	return entity.Encode(c, uint64(i))
}
