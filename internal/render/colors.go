package render

import (
	"terminal-rpg/internal/gamemap"
	"terminal-rpg/internal/tabletop"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleHotkey  = styleDefault.Foreground(tcell.ColorYellow)
	styleFocus   = styleDefault.Reverse(true)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
	styleMessage = styleDefault.Foreground(tcell.ColorLightYellow)
)

// raceColors tints creatures by race.
var raceColors = map[tabletop.Race]tcell.Color{
	tabletop.Human:      tcell.ColorWhite,
	tabletop.Dragonborn: tcell.ColorOrangeRed,
	tabletop.Dwarf:      tcell.ColorSandyBrown,
	tabletop.Elf:        tcell.ColorLightGreen,
	tabletop.Gnome:      tcell.ColorPlum,
	tabletop.HalfElf:    tcell.ColorPaleGreen,
	tabletop.HalfOrc:    tcell.ColorOliveDrab,
	tabletop.Halfling:   tcell.ColorWheat,
	tabletop.Tiefling:   tcell.ColorCrimson,
}

// CreatureColor returns the draw color for a race.
func CreatureColor(r tabletop.Race) tcell.Color {
	if c, ok := raceColors[r]; ok {
		return c
	}
	return tcell.ColorWhite
}

// TileGlyph returns the rune and style for a map tile.
func TileGlyph(t gamemap.Tile) (rune, tcell.Style) {
	switch t.Kind {
	case gamemap.TileWall:
		return '#', styleDefault.Foreground(tcell.ColorSilver)
	case gamemap.TileFloor:
		return '.', styleDim
	}
	return ' ', styleDefault
}

const (
	glyphCharacter = '@'
	glyphMonster   = 'M'
	glyphObject    = '*'
)
