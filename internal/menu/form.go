package menu

import "terminal-rpg/internal/tabletop"

// Slots of the test menu.
const (
	TestDropdown = iota
	TestTextField
	TestPointBuy

	testSlots
)

// Slots of the new-character menu.
const (
	NewCharacterName = iota
	NewCharacterClass
	NewCharacterRace
	NewCharacterAlignment
	NewCharacterStats

	newCharacterSlots
)

// Form is a vertical list of widgets with a non-wrapping focus. Up and Down
// move the focus unless the focused widget is editing, in which case every
// primitive goes to the widget.
type Form struct {
	Widgets []Widget
	focus   Focus
}

func NewForm(widgets ...Widget) *Form {
	return &Form{Widgets: widgets, focus: NewFocus(len(widgets), false)}
}

// NewTestForm builds the widget showcase menu.
func NewTestForm() *Form {
	return NewForm(
		NewDropdown("Class", classNames()),
		NewTextField("Name", 24),
		NewPointBuy("Abilities"),
	)
}

func (f *Form) Focused() int { return f.focus.Index() }

func (f *Form) focused() Widget {
	if len(f.Widgets) == 0 {
		return nil
	}
	return f.Widgets[f.focus.Index()]
}

func (f *Form) EditingAnything() bool {
	for _, w := range f.Widgets {
		if w.Editing() {
			return true
		}
	}
	return false
}

func (f *Form) Up() {
	if w := f.focused(); w != nil && w.Editing() {
		w.Up()
		return
	}
	f.focus.Up()
}

func (f *Form) Down() {
	if w := f.focused(); w != nil && w.Editing() {
		w.Down()
		return
	}
	f.focus.Down()
}

func (f *Form) Left() {
	if w := f.focused(); w != nil {
		w.Left()
	}
}

func (f *Form) Right() {
	if w := f.focused(); w != nil {
		w.Right()
	}
}

func (f *Form) In() {
	if w := f.focused(); w != nil {
		w.In()
	}
}

func (f *Form) Out() {
	if w := f.focused(); w != nil {
		w.Out()
	}
}

// Type forwards text to the focused widget when it accepts text.
func (f *Form) Type(text string) {
	if t, ok := f.focused().(TextInput); ok {
		t.Type(text)
	}
}

// CharacterForm is the new-character menu.
type CharacterForm struct {
	*Form
	Name      *TextField
	Class     *Dropdown
	Race      *Dropdown
	Alignment *Dropdown
	Stats     *PointBuy
}

func NewCharacterForm() *CharacterForm {
	cf := &CharacterForm{
		Name:      NewTextField("Name", 24),
		Class:     NewDropdown("Class", classNames()),
		Race:      NewDropdown("Race", raceNames()),
		Alignment: NewDropdown("Alignment", alignmentNames()),
		Stats:     NewPointBuy("Abilities"),
	}
	cf.Form = NewForm(cf.Name, cf.Class, cf.Race, cf.Alignment, cf.Stats)
	return cf
}

// Choice is what the new-character menu currently describes.
type Choice struct {
	Name      string
	Class     tabletop.Class
	Race      tabletop.Race
	Alignment tabletop.Alignment
	Stats     tabletop.Stats
}

func (cf *CharacterForm) Choice() Choice {
	return Choice{
		Name:      cf.Name.Text(),
		Class:     tabletop.Class(cf.Class.Selected),
		Race:      tabletop.Race(cf.Race.Selected),
		Alignment: tabletop.Alignment(cf.Alignment.Selected),
		Stats:     cf.Stats.Stats,
	}
}

func classNames() []string {
	var out []string
	for _, c := range tabletop.Classes() {
		out = append(out, c.String())
	}
	return out
}

func raceNames() []string {
	var out []string
	for _, r := range tabletop.Races() {
		out = append(out, r.String())
	}
	return out
}

func alignmentNames() []string {
	var out []string
	for _, a := range tabletop.Alignments() {
		out = append(out, a.String())
	}
	return out
}
