package render

import (
	"fmt"
	"strings"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/tabletop"
)

// Widget label column and value column inside form menus.
const (
	formLabelX = 2
	formValueX = 16
	formTopY   = 2
)

func (r *Renderer) drawMenu(f Frame) {
	switch f.Menu {
	case menu.Main:
		r.drawHotkeys("Terminal RPG", [][2]string{
			{"P", "Play game"},
			{"N", "New character"},
			{"T", "Widget test"},
			{"Q", "Quit"},
		})
	case menu.Pause:
		r.drawHotkeys("Paused", [][2]string{
			{"Esc", "Resume"},
			{"Q", "Quit"},
		})
	case menu.Character:
		r.drawCharacterSheet(f)
	case menu.Test:
		if f.Menus != nil {
			r.drawForm("Widget test", f.Menus.Test)
		}
	case menu.NewCharacter:
		if f.Menus != nil {
			r.drawForm("New character  (S to start)", f.Menus.NewCharacter.Form)
		}
	}
}

func (r *Renderer) drawHotkeys(title string, items [][2]string) {
	r.drawText(3, 1, title, styleDefault.Bold(true))
	for i, it := range items {
		y := 3 + 2*i
		r.drawText(3, y, it[0], styleHotkey)
		r.drawText(3+len(it[0])+2, y, it[1], styleDefault)
	}
}

func (r *Renderer) drawCharacterSheet(f Frame) {
	r.drawText(3, 1, "Character", styleDefault.Bold(true))
	cr, ok := f.World.Creature(f.Player)
	if !ok {
		return
	}
	ch, _ := f.World.Character(f.Player)
	lines := []string{
		fmt.Sprintf("%s %s, %s", cr.Race, ch.Class, cr.Alignment),
		"",
	}
	for a := tabletop.Ability(0); a < tabletop.AbilityCount; a++ {
		score := cr.Stats.Get(a)
		lines = append(lines, fmt.Sprintf("%s %2d (%+d)", a, score, tabletop.Modifier(score)))
	}
	lines = append(lines, "",
		fmt.Sprintf("Carry %d lb", tabletop.CarryingCapacity(cr.Stats.Strength, cr.Size)))
	for i, l := range lines {
		r.drawText(3, 3+i, l, styleDefault)
	}
}

// drawForm lists each widget with its current value; the focused row is
// highlighted and an editing widget shows its expanded state below the form.
func (r *Renderer) drawForm(title string, form *menu.Form) {
	r.drawText(formLabelX, 0, title, styleDefault.Bold(true))
	for i, w := range form.Widgets {
		y := formTopY + i
		style := styleDefault
		if i == form.Focused() {
			style = styleFocus
		}
		r.drawText(formLabelX, y, w.Label(), style)
		r.drawText(formValueX, y, widgetValue(w), styleDefault)
	}
	if i := form.Focused(); i < len(form.Widgets) && form.Widgets[i].Editing() {
		r.drawEditor(form.Widgets[i], formTopY+len(form.Widgets)+1)
	}
}

func widgetValue(w menu.Widget) string {
	switch w := w.(type) {
	case *menu.Dropdown:
		return "< " + w.Value() + " >"
	case *menu.TextField:
		return "[" + w.Text() + strings.Repeat("_", max(0, w.Max-len([]rune(w.Text())))) + "]"
	case *menu.PointBuy:
		parts := make([]string, 0, tabletop.AbilityCount)
		for a := tabletop.Ability(0); a < tabletop.AbilityCount; a++ {
			parts = append(parts, fmt.Sprintf("%s %d", a, w.Stats.Get(a)))
		}
		return strings.Join(parts, "  ") + fmt.Sprintf("  (%d left)", w.Remaining())
	}
	return ""
}

func (r *Renderer) drawEditor(w menu.Widget, y int) {
	switch w := w.(type) {
	case *menu.Dropdown:
		for i, opt := range w.Options {
			style := styleDefault
			if i == w.Selected {
				style = styleFocus
			}
			r.drawText(formValueX, y+i, opt, style)
		}
	case *menu.PointBuy:
		for a := tabletop.Ability(0); a < tabletop.AbilityCount; a++ {
			style := styleDefault
			if a == w.Ability() {
				style = styleFocus
			}
			cost, _ := tabletop.PointBuyCost(w.Stats.Get(a))
			r.drawText(formValueX, y+int(a), fmt.Sprintf("%s %2d  cost %d", a, w.Stats.Get(a), cost), style)
		}
	case *menu.TextField:
		r.drawText(formValueX, y, "typing…", styleDim)
	}
}
