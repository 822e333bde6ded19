package menu

import "terminal-rpg/internal/tabletop"

// Widget is one focusable slot of a Form.
type Widget interface {
	Label() string
	Editing() bool
	Up()
	Down()
	Left()
	Right()
	In()
	Out()
}

// Dropdown is a single-choice list. In opens it; while open, Up and Down move
// the highlight, In confirms and Out restores the previous choice. While
// closed, Left and Right cycle the choice directly.
type Dropdown struct {
	label    string
	Options  []string
	Selected int
	open     bool
	previous int
}

func NewDropdown(label string, options []string) *Dropdown {
	return &Dropdown{label: label, Options: options}
}

func (d *Dropdown) Label() string { return d.label }
func (d *Dropdown) Editing() bool { return d.open }

func (d *Dropdown) Up() {
	if d.open && d.Selected > 0 {
		d.Selected--
	}
}

func (d *Dropdown) Down() {
	if d.open && d.Selected < len(d.Options)-1 {
		d.Selected++
	}
}

func (d *Dropdown) Left() {
	if d.open || len(d.Options) == 0 {
		return
	}
	d.Selected = (d.Selected - 1 + len(d.Options)) % len(d.Options)
}

func (d *Dropdown) Right() {
	if d.open || len(d.Options) == 0 {
		return
	}
	d.Selected = (d.Selected + 1) % len(d.Options)
}

func (d *Dropdown) In() {
	if d.open {
		d.open = false
		return
	}
	d.open = true
	d.previous = d.Selected
}

func (d *Dropdown) Out() {
	if d.open {
		d.Selected = d.previous
		d.open = false
	}
}

// Value returns the selected option text, or "" when there are no options.
func (d *Dropdown) Value() string {
	if d.Selected < 0 || d.Selected >= len(d.Options) {
		return ""
	}
	return d.Options[d.Selected]
}

// TextField is a single line of text. In starts and stops editing; while
// editing, Type appends and Left erases the last rune.
type TextField struct {
	label   string
	text    []rune
	Max     int
	editing bool
}

func NewTextField(label string, maxLen int) *TextField {
	return &TextField{label: label, Max: maxLen}
}

func (t *TextField) Label() string { return t.label }
func (t *TextField) Editing() bool { return t.editing }
func (t *TextField) Text() string  { return string(t.text) }
func (t *TextField) Up()           {}
func (t *TextField) Down()         {}
func (t *TextField) Right()        {}
func (t *TextField) In()           { t.editing = !t.editing }
func (t *TextField) Out()          { t.editing = false }

func (t *TextField) Left() {
	if t.editing && len(t.text) > 0 {
		t.text = t.text[:len(t.text)-1]
	}
}

// Type appends text while editing, up to Max runes.
func (t *TextField) Type(text string) {
	if !t.editing {
		return
	}
	for _, r := range text {
		if t.Max > 0 && len(t.text) >= t.Max {
			return
		}
		t.text = append(t.text, r)
	}
}

// PointBuy edits a stats block under the point-buy budget. In starts and
// stops editing; while editing, Up and Down pick an ability and Right and
// Left raise and lower it.
type PointBuy struct {
	label   string
	Stats   tabletop.Stats
	focus   Focus
	editing bool
}

func NewPointBuy(label string) *PointBuy {
	p := &PointBuy{label: label, focus: NewFocus(int(tabletop.AbilityCount), false)}
	for a := tabletop.Ability(0); a < tabletop.AbilityCount; a++ {
		p.Stats.Set(a, tabletop.PointBuyMin)
	}
	return p
}

func (p *PointBuy) Label() string { return p.label }
func (p *PointBuy) Editing() bool { return p.editing }
func (p *PointBuy) In()           { p.editing = !p.editing }
func (p *PointBuy) Out()          { p.editing = false }

// Ability returns the ability under the cursor.
func (p *PointBuy) Ability() tabletop.Ability {
	return tabletop.Ability(p.focus.Index())
}

func (p *PointBuy) Up() {
	if p.editing {
		p.focus.Up()
	}
}

func (p *PointBuy) Down() {
	if p.editing {
		p.focus.Down()
	}
}

func (p *PointBuy) Right() {
	if !p.editing {
		return
	}
	a := p.Ability()
	next := p.Stats
	next.Set(a, p.Stats.Get(a)+1)
	if total, ok := tabletop.PointBuyTotal(next); ok && total <= tabletop.PointBuyBudget {
		p.Stats = next
	}
}

func (p *PointBuy) Left() {
	if !p.editing {
		return
	}
	a := p.Ability()
	if v := p.Stats.Get(a); v > tabletop.PointBuyMin {
		p.Stats.Set(a, v-1)
	}
}

// Remaining returns the unspent budget.
func (p *PointBuy) Remaining() int {
	total, _ := tabletop.PointBuyTotal(p.Stats)
	return tabletop.PointBuyBudget - total
}
