// Package tabletop holds the pen-and-paper rule identifiers stored on
// creatures and the pure functions that interpret them. Nothing here mutates
// world state.
package tabletop

// Class is a character's adventuring class.
type Class uint8

const (
	Barbarian Class = iota
	Bard
	Cleric
	Druid
	Fighter
	Monk
	Paladin
	Ranger
	Rogue
	Sorcerer
	Warlock
	Wizard
)

var classNames = [...]string{
	"Barbarian", "Bard", "Cleric", "Druid", "Fighter", "Monk",
	"Paladin", "Ranger", "Rogue", "Sorcerer", "Warlock", "Wizard",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Unknown"
}

// Classes lists every class in declaration order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i := range out {
		out[i] = Class(i)
	}
	return out
}

// Race is a creature's ancestry. Renderers key icons and colors off it.
type Race uint8

const (
	Human Race = iota
	Dragonborn
	Dwarf
	Elf
	Gnome
	HalfElf
	HalfOrc
	Halfling
	Tiefling
)

var raceNames = [...]string{
	"Human", "Dragonborn", "Dwarf", "Elf", "Gnome", "Half-Elf", "Half-Orc", "Halfling", "Tiefling",
}

func (r Race) String() string {
	if int(r) < len(raceNames) {
		return raceNames[r]
	}
	return "Unknown"
}

// Races lists every race in declaration order.
func Races() []Race {
	out := make([]Race, len(raceNames))
	for i := range out {
		out[i] = Race(i)
	}
	return out
}

// Size is a creature's size category.
type Size uint8

const (
	Medium Size = iota
	Tiny
	Small
	Large
	Huge
	Gargantuan
)

// Alignment is a creature's moral and ethical outlook.
type Alignment uint8

const (
	TrueNeutral Alignment = iota
	LawfulGood
	NeutralGood
	ChaoticGood
	LawfulNeutral
	ChaoticNeutral
	LawfulEvil
	NeutralEvil
	ChaoticEvil
)

var alignmentNames = [...]string{
	"True Neutral", "Lawful Good", "Neutral Good", "Chaotic Good",
	"Lawful Neutral", "Chaotic Neutral", "Lawful Evil", "Neutral Evil", "Chaotic Evil",
}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "Unknown"
}

// Alignments lists every alignment in declaration order.
func Alignments() []Alignment {
	out := make([]Alignment, len(alignmentNames))
	for i := range out {
		out[i] = Alignment(i)
	}
	return out
}

// AdvantageStatus modifies a passive check.
type AdvantageStatus uint8

const (
	Normal AdvantageStatus = iota
	Advantage
	Disadvantage
)

// Ability indexes one of the six scores in a Stats block.
type Ability uint8

const (
	Strength Ability = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma

	AbilityCount
)

var abilityNames = [...]string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

func (a Ability) String() string {
	if a < AbilityCount {
		return abilityNames[a]
	}
	return "???"
}

// Stats is the six-score ability block.
type Stats struct {
	Strength     uint8
	Dexterity    uint8
	Constitution uint8
	Intelligence uint8
	Wisdom       uint8
	Charisma     uint8
}

// DefaultStats returns an all-10 block.
func DefaultStats() Stats {
	return Stats{10, 10, 10, 10, 10, 10}
}

// Get returns the score for a.
func (s Stats) Get(a Ability) uint8 {
	switch a {
	case Strength:
		return s.Strength
	case Dexterity:
		return s.Dexterity
	case Constitution:
		return s.Constitution
	case Intelligence:
		return s.Intelligence
	case Wisdom:
		return s.Wisdom
	case Charisma:
		return s.Charisma
	}
	return 0
}

// Set writes the score for a.
func (s *Stats) Set(a Ability, v uint8) {
	switch a {
	case Strength:
		s.Strength = v
	case Dexterity:
		s.Dexterity = v
	case Constitution:
		s.Constitution = v
	case Intelligence:
		s.Intelligence = v
	case Wisdom:
		s.Wisdom = v
	case Charisma:
		s.Charisma = v
	}
}
