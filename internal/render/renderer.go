package render

import (
	"errors"
	"fmt"
	"terminal-rpg/internal/component"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/gamemap"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Minimum terminal size the layout needs.
const (
	MinWidth  = 80
	MinHeight = 24
)

// hudRows are reserved at the bottom of the screen for messages.
const hudRows = 3

var ErrTerminalTooSmall = errors.New("terminal too small")

// Frame is everything one draw needs. The renderer only reads it.
type Frame struct {
	World    *ecs.World
	Map      *gamemap.GameMap
	Player   entity.ID
	State    session.State
	Menu     menu.Type
	Menus    *menu.Data
	Messages []string
	FPS      float64
	ShowFPS  bool
	// TargetFPS colors the counter red when FPS falls below it.
	TargetFPS int
}

// Renderer draws frames onto a tcell screen. tcell diffs against the
// previous frame, so each Draw repaints everything.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, camera: NewCamera(w, h-hudRows)}
}

// CheckSize reports whether the terminal can hold the layout.
func (r *Renderer) CheckSize() error {
	w, h := r.screen.Size()
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTerminalTooSmall, w, h, MinWidth, MinHeight)
	}
	return nil
}

// Resize picks up a new terminal size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, h-hudRows
	r.screen.Sync()
}

func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	switch f.State {
	case session.StateRunning:
		r.drawWorld(f)
	case session.StateMenu:
		r.drawMenu(f)
	}
	r.drawHUD(f)
	if f.ShowFPS {
		r.drawFPS(f)
	}
	r.screen.Show()
}

// drawWorld paints the player's map, then live objects, monsters and
// characters on it, walking each category's arrays directly.
func (r *Renderer) drawWorld(f Frame) {
	m := f.Map
	if m == nil {
		return
	}
	if pos, ok := f.World.Position(f.Player); ok {
		r.camera.Follow(int(pos.X), int(pos.Y), int(m.Width), int(m.Height))
	}
	for y := 0; y < int(m.Height); y++ {
		for x := 0; x < int(m.Width); x++ {
			sx, sy, ok := r.camera.WorldToScreen(x, y)
			if !ok {
				continue
			}
			ch, style := TileGlyph(*m.At(x, y))
			r.screen.SetContent(sx, sy, ch, nil, style)
		}
	}

	here := component.MapIndex{Map: m.ID}
	ov := f.World.Objects()
	for i := 0; i < ov.Len(); i++ {
		if !ov.Alive[i].Alive || ov.MapIndex[i] != here || ov.Parent[i].Carried() {
			continue
		}
		r.put(ov.Position[i], glyphObject, styleDefault.Foreground(tcell.ColorGold))
	}
	mv := f.World.Monsters()
	for i := 0; i < mv.Len(); i++ {
		if !mv.Alive[i].Alive || mv.MapIndex[i] != here {
			continue
		}
		r.put(mv.Position[i], glyphMonster, styleDefault.Foreground(CreatureColor(mv.Creature[i].Race)))
	}
	cv := f.World.Characters()
	for i := 0; i < cv.Len(); i++ {
		if !cv.Alive[i].Alive || cv.MapIndex[i] != here {
			continue
		}
		style := styleDefault.Foreground(CreatureColor(cv.Creature[i].Race))
		if ecs.ID(entity.Character, i) == f.Player {
			style = style.Bold(true)
		}
		r.put(cv.Position[i], glyphCharacter, style)
	}
}

func (r *Renderer) put(p component.Position, ch rune, style tcell.Style) {
	if sx, sy, ok := r.camera.WorldToScreen(int(p.X), int(p.Y)); ok {
		r.screen.SetContent(sx, sy, ch, nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
// Wide runes take two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
