package component

import "terminal-rpg/internal/entity"

// NoOwner marks an object lying loose on a map. It is the last meta id;
// meta entities never hold objects.
const NoOwner entity.ID = 1<<63 - 1

// Parent links a carried object to the entity holding it.
type Parent struct {
	Owner entity.ID
}

// Carried reports whether the object is held by another entity.
func (p Parent) Carried() bool {
	return p.Owner != NoOwner
}
