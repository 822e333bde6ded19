package component

import "terminal-rpg/internal/tabletop"

// Character holds data only player-class creatures carry.
type Character struct {
	Class tabletop.Class
}
