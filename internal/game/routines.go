package game

import (
	"errors"
	"fmt"
	"strings"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/factory"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/system"

	"go.uber.org/zap"
)

// ErrWrongNounKind is the panic value when a request carries a noun of the
// wrong kind for its action. Requests are built by trusted code, so this is
// a programming error.
var ErrWrongNounKind = errors.New("wrong noun kind")

// Routine is the during stage of one action. It returns true when the action
// is fully resolved and the after stages must not run.
type Routine func(g *Game, actor entity.ID, noun, second action.Noun) bool

// routines binds every action to exactly one routine.
var routines = [action.Count]Routine{
	action.Quit:         quitRoutine,
	action.Restart:      persistenceRoutine,
	action.Restore:      persistenceRoutine,
	action.Save:         persistenceRoutine,
	action.NewGame:      newGameRoutine,
	action.OpenMenu:     openMenuRoutine,
	action.CloseMenu:    closeMenuRoutine,
	action.NavigateMenu: navigateMenuRoutine,

	action.Answer:    unimplemented,
	action.Ask:       unimplemented,
	action.AskFor:    unimplemented,
	action.Attack:    unimplemented,
	action.Blow:      unimplemented,
	action.Burn:      unimplemented,
	action.Buy:       unimplemented,
	action.Clean:     unimplemented,
	action.Climb:     unimplemented,
	action.Close:     unimplemented,
	action.Consult:   unimplemented,
	action.Crush:     unimplemented,
	action.Cut:       unimplemented,
	action.Dig:       unimplemented,
	action.Disrobe:   unimplemented,
	action.Drink:     unimplemented,
	action.Drop:      unimplemented,
	action.Eat:       unimplemented,
	action.Empty:     unimplemented,
	action.Enter:     unimplemented,
	action.Examine:   examineRoutine,
	action.Exit:      unimplemented,
	action.Fill:      unimplemented,
	action.GetOff:    unimplemented,
	action.Give:      unimplemented,
	action.Go:        goRoutine,
	action.Insert:    unimplemented,
	action.Inventory: inventoryRoutine,
	action.Jump:      unimplemented,
	action.JumpOver:  unimplemented,
	action.Kiss:      unimplemented,
	action.Listen:    unimplemented,
	action.Lock:      unimplemented,
	action.Look:      lookRoutine,
	action.LookUnder: unimplemented,
	action.Open:      unimplemented,
	action.Order:     unimplemented,
	action.Pray:      unimplemented,
	action.Pull:      unimplemented,
	action.Push:      unimplemented,
	action.PushDir:   unimplemented,
	action.PutOn:     unimplemented,
	action.Remove:    unimplemented,
	action.Search:    unimplemented,
	action.Set:       unimplemented,
	action.SetTo:     unimplemented,
	action.Show:      unimplemented,
	action.Sing:      unimplemented,
	action.Sleep:     unimplemented,
	action.Smell:     unimplemented,
	action.Swim:      unimplemented,
	action.Swing:     unimplemented,
	action.SwitchOff: unimplemented,
	action.SwitchOn:  unimplemented,
	action.Take:      unimplemented,
	action.Taste:     unimplemented,
	action.Tell:      unimplemented,
	action.Think:     unimplemented,
	action.ThrowAt:   unimplemented,
	action.Tie:       unimplemented,
	action.Touch:     unimplemented,
	action.Turn:      unimplemented,
	action.Unlock:    unimplemented,
	action.Wait:      waitRoutine,
	action.Wake:      unimplemented,
	action.WakeOther: unimplemented,
	action.Wave:      unimplemented,
	action.WaveHands: unimplemented,
	action.Wear:      unimplemented,
}

func wrongNoun(a action.Action, want action.NounKind, got action.Noun) error {
	return fmt.Errorf("%w: %v expects %v, got %v", ErrWrongNounKind, a, want, got.Kind())
}

// must panics on a session error; those mean the request stream and the
// session disagree.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func quitRoutine(g *Game, _ entity.ID, _, _ action.Noun) bool {
	must(g.session.Quit())
	return false
}

// persistenceRoutine accepts Save, Restore and Restart without effect.
func persistenceRoutine(g *Game, actor entity.ID, _, _ action.Noun) bool {
	g.log.Debug("persistence action ignored", zap.Stringer("actor", actor))
	return false
}

// newGameRoutine starts play, taking the new-character sheet if one was
// filled in.
func newGameRoutine(g *Game, _ entity.ID, _, _ action.Noun) bool {
	choice := g.menus.NewCharacter.Choice()
	if choice.Name != "" {
		cr := g.world.CreatureMut(g.player)
		cr.Race = choice.Race
		cr.Alignment = choice.Alignment
		cr.Stats = choice.Stats
		g.world.CharacterMut(g.player).Class = choice.Class
		g.addMessage(fmt.Sprintf("Welcome, %s the %s %s.", choice.Name, choice.Race, choice.Class))
	}
	must(g.session.NewGame())
	return false
}

func openMenuRoutine(g *Game, _ entity.ID, noun, _ action.Noun) bool {
	m, ok := noun.Menu()
	if !ok {
		panic(wrongNoun(action.OpenMenu, action.NounMenu, noun))
	}
	must(g.session.OpenMenu(m))
	return false
}

func closeMenuRoutine(g *Game, _ entity.ID, _, _ action.Noun) bool {
	must(g.session.CloseMenu())
	return false
}

// navigateMenuRoutine forwards a direction to the active menu: the compass
// points move within it, down enters a widget and up leaves it. Literal text
// is typed into the focused widget.
func navigateMenuRoutine(g *Game, _ entity.ID, noun, _ action.Noun) bool {
	current, ok := g.session.Menu()
	if !ok {
		g.log.Debug("navigate outside a menu", zap.String("session", string(g.session.State())))
		return false
	}
	nav, ok := g.menus.Navigator(current)
	if !ok {
		return false
	}
	if text, ok := noun.Literal(); ok {
		if ti, ok := nav.(menu.TextInput); ok {
			ti.Type(text)
		}
		return false
	}
	id, ok := noun.Entity()
	if !ok {
		return false
	}
	s := g.special
	switch id {
	case s.North:
		nav.Up()
	case s.South:
		nav.Down()
	case s.East:
		nav.Right()
	case s.West:
		nav.Left()
	case s.Down:
		nav.In()
	case s.Up:
		nav.Out()
	default:
		g.log.Debug("unresolved menu direction", zap.Stringer("noun", id))
	}
	return false
}

// goRoutine moves the actor one step toward a compass sentinel.
func goRoutine(g *Game, actor entity.ID, noun, _ action.Noun) bool {
	dir, ok := noun.Entity()
	if !ok {
		panic(wrongNoun(action.Go, action.NounEntity, noun))
	}
	dx, dy, ok := g.special.Offset(dir)
	if !ok {
		if name, known := g.special.Name(dir); known {
			g.decline(fmt.Sprintf("You can't go %s from here.", name), zap.Stringer("actor", actor))
		} else {
			g.decline("That is not a direction.", zap.Stringer("noun", dir))
		}
		return false
	}
	mi, ok := g.world.MapIndex(actor)
	if !ok {
		g.decline(fmt.Sprintf("%s cannot move.", capitalize(g.describe(actor))), zap.Stringer("actor", actor))
		return false
	}
	m, ok := g.maps[mi.Map]
	if !ok {
		g.decline("There is nowhere to go.", zap.Stringer("actor", actor), zap.Uint32("map", uint32(mi.Map)))
		return false
	}
	switch system.Step(g.world, m, actor, dx, dy) {
	case system.MoveBlocked:
		if actor == g.player {
			g.decline("You can't go that way.", zap.Stringer("actor", actor))
		}
	case system.MoveNoPosition:
		g.decline(fmt.Sprintf("%s cannot move.", capitalize(g.describe(actor))), zap.Stringer("actor", actor))
	}
	return false
}

func lookRoutine(g *Game, actor entity.ID, _, _ action.Noun) bool {
	pos, ok := g.world.Position(actor)
	if !ok {
		g.decline("There is nothing to see.", zap.Stringer("actor", actor))
		return false
	}
	var seen []string
	for _, id := range g.vicinity(actor) {
		seen = append(seen, g.describe(id))
	}
	msg := fmt.Sprintf("You stand at (%d,%d).", pos.X, pos.Y)
	if len(seen) > 0 {
		msg += " Nearby: " + strings.Join(seen, ", ") + "."
	}
	g.addMessage(msg)
	return false
}

func examineRoutine(g *Game, _ entity.ID, noun, _ action.Noun) bool {
	if noun.IsNothing() {
		g.decline("Examine what?")
		return false
	}
	id, ok := noun.Entity()
	if !ok {
		panic(wrongNoun(action.Examine, action.NounEntity, noun))
	}
	if !g.world.IsAlive(id) {
		g.decline("There is nothing there.", zap.Stringer("noun", id))
		return false
	}
	desc := capitalize(g.describe(id))
	if cr, ok := g.world.Creature(id); ok {
		desc += fmt.Sprintf(" (%s, STR %d DEX %d CON %d INT %d WIS %d CHA %d)", cr.Alignment,
			cr.Stats.Strength, cr.Stats.Dexterity, cr.Stats.Constitution,
			cr.Stats.Intelligence, cr.Stats.Wisdom, cr.Stats.Charisma)
	}
	if c, ok := g.world.Character(id); ok {
		desc += ", a " + c.Class.String()
	}
	g.addMessage(desc + ".")
	return false
}

func inventoryRoutine(g *Game, actor entity.ID, _, _ action.Noun) bool {
	items := factory.Carried(g.world, actor)
	if len(items) == 0 {
		g.addMessage("You are carrying nothing.")
		return false
	}
	g.addMessage(fmt.Sprintf("You are carrying %d object(s).", len(items)))
	return false
}

func waitRoutine(g *Game, _ entity.ID, _, _ action.Noun) bool {
	g.addMessage("Time passes.")
	return false
}

// unimplemented accepts the action and lets the after stages respond.
func unimplemented(g *Game, actor entity.ID, _, _ action.Noun) bool {
	g.log.Debug("no routine for action", zap.Stringer("actor", actor))
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
