package factory

import (
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/gamemap"
	"terminal-rpg/internal/tabletop"
)

// Profile describes a creature being spawned.
type Profile struct {
	Race      tabletop.Race
	Size      tabletop.Size
	Alignment tabletop.Alignment
	Stats     tabletop.Stats
}

// DefaultProfile is a medium, true-neutral human with all scores at 10.
func DefaultProfile() Profile {
	c := component.DefaultCreature()
	return Profile{Race: c.Race, Size: c.Size, Alignment: c.Alignment, Stats: c.Stats}
}

func place(w *ecs.World, id entity.ID, m gamemap.ID, x, y uint16) {
	*w.MapIndexMut(id) = component.MapIndex{Map: m}
	*w.PositionMut(id) = component.Position{X: x, Y: y}
}

func apply(w *ecs.World, id entity.ID, p Profile) {
	*w.CreatureMut(id) = component.Creature{
		Alignment: p.Alignment,
		Size:      p.Size,
		Race:      p.Race,
		Stats:     p.Stats,
	}
}

// NewPlayer creates the player character at (x, y) on map m.
func NewPlayer(w *ecs.World, m gamemap.ID, x, y uint16, class tabletop.Class, p Profile) entity.ID {
	id := w.CreateEntity(entity.Character)
	place(w, id, m, x, y)
	apply(w, id, p)
	w.CharacterMut(id).Class = class
	return id
}

// NewMonster creates a monster at (x, y) on map m.
func NewMonster(w *ecs.World, m gamemap.ID, x, y uint16, p Profile) entity.ID {
	id := w.CreateEntity(entity.Monster)
	place(w, id, m, x, y)
	apply(w, id, p)
	return id
}

// NewObject creates a loose object lying at (x, y) on map m.
func NewObject(w *ecs.World, m gamemap.ID, x, y uint16) entity.ID {
	id := w.CreateEntity(entity.Object)
	place(w, id, m, x, y)
	return id
}

// NewCarried creates an object held by owner. It shares the owner's map and
// position; when the owner has neither, the object keeps its defaults.
func NewCarried(w *ecs.World, owner entity.ID) entity.ID {
	id := w.CreateEntity(entity.Object)
	w.ParentMut(id).Owner = owner
	if mi, ok := w.MapIndex(owner); ok {
		*w.MapIndexMut(id) = mi
	}
	if pos, ok := w.Position(owner); ok {
		*w.PositionMut(id) = pos
	}
	return id
}

// Carried lists the live objects whose parent is owner.
func Carried(w *ecs.World, owner entity.ID) []entity.ID {
	var out []entity.ID
	v := w.Objects()
	for i := 0; i < v.Len(); i++ {
		if v.Alive[i].Alive && v.Parent[i].Owner == owner {
			out = append(out, ecs.ID(entity.Object, i))
		}
	}
	return out
}
