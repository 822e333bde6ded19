package component

import "terminal-rpg/internal/gamemap"

// MapIndex names the map an entity is on.
type MapIndex struct {
	Map gamemap.ID
}
