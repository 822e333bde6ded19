package component

import "terminal-rpg/internal/tabletop"

// Creature holds the rule identifiers shared by characters and monsters.
type Creature struct {
	Alignment tabletop.Alignment
	Size      tabletop.Size
	Race      tabletop.Race
	Stats     tabletop.Stats
}

// DefaultCreature is the row appended when a creature entity is created.
func DefaultCreature() Creature {
	return Creature{
		Alignment: tabletop.TrueNeutral,
		Size:      tabletop.Medium,
		Race:      tabletop.Human,
		Stats:     tabletop.DefaultStats(),
	}
}
