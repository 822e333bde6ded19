package ecs

import (
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/entity"
)

// Each component has a read accessor returning (value, ok) and a Mut accessor
// returning a pointer into the category's array, or nil when the category
// does not carry the component or the id is past the end of the array.
// Pointers stay valid until the next CreateEntity of the same category.

func (w *World) AliveMut(id entity.ID) *component.Alive {
	seq := entity.Sequence(id)
	switch entity.CategoryOf(id) {
	case entity.Meta:
		return row(w.meta.alive, seq)
	case entity.Character:
		return row(w.character.alive, seq)
	case entity.Monster:
		return row(w.monster.alive, seq)
	case entity.Object:
		return row(w.object.alive, seq)
	}
	return nil
}

func (w *World) Alive(id entity.ID) (component.Alive, bool) {
	return deref(w.AliveMut(id))
}

func (w *World) CreatureMut(id entity.ID) *component.Creature {
	seq := entity.Sequence(id)
	switch entity.CategoryOf(id) {
	case entity.Character:
		return row(w.character.creature, seq)
	case entity.Monster:
		return row(w.monster.creature, seq)
	}
	return nil
}

func (w *World) Creature(id entity.ID) (component.Creature, bool) {
	return deref(w.CreatureMut(id))
}

func (w *World) CharacterMut(id entity.ID) *component.Character {
	if entity.CategoryOf(id) != entity.Character {
		return nil
	}
	return row(w.character.character, entity.Sequence(id))
}

func (w *World) Character(id entity.ID) (component.Character, bool) {
	return deref(w.CharacterMut(id))
}

func (w *World) MapIndexMut(id entity.ID) *component.MapIndex {
	seq := entity.Sequence(id)
	switch entity.CategoryOf(id) {
	case entity.Character:
		return row(w.character.mapIndex, seq)
	case entity.Monster:
		return row(w.monster.mapIndex, seq)
	case entity.Object:
		return row(w.object.mapIndex, seq)
	}
	return nil
}

func (w *World) MapIndex(id entity.ID) (component.MapIndex, bool) {
	return deref(w.MapIndexMut(id))
}

func (w *World) PositionMut(id entity.ID) *component.Position {
	seq := entity.Sequence(id)
	switch entity.CategoryOf(id) {
	case entity.Character:
		return row(w.character.position, seq)
	case entity.Monster:
		return row(w.monster.position, seq)
	case entity.Object:
		return row(w.object.position, seq)
	}
	return nil
}

func (w *World) Position(id entity.ID) (component.Position, bool) {
	return deref(w.PositionMut(id))
}

func (w *World) ParentMut(id entity.ID) *component.Parent {
	if entity.CategoryOf(id) != entity.Object {
		return nil
	}
	return row(w.object.parent, entity.Sequence(id))
}

func (w *World) Parent(id entity.ID) (component.Parent, bool) {
	return deref(w.ParentMut(id))
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
