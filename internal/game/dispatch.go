package game

import (
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/rules"
	"terminal-rpg/internal/system"

	"go.uber.org/zap"
)

// ProcessQueue drives every queued request through Dispatch in FIFO order,
// including requests enqueued by earlier ones. It returns how many ran.
func (g *Game) ProcessQueue() int {
	n := 0
	for {
		req, ok := g.queue.Pop()
		if !ok {
			return n
		}
		g.Dispatch(req)
		n++
	}
}

// Dispatch resolves one request. Meta actions go straight to their routine.
// Gameplay actions run the noun's Before hook, then the ReactBefore hooks of
// everything around the actor, then the routine, then the matching After
// stages unless an earlier stage handled the action. Requests from dead
// actors are dropped, and a dead noun gets no hooks of its own.
func (g *Game) Dispatch(req action.Request) {
	actor := g.resolve(req.Actor)
	if !g.live(actor) {
		g.log.Debug("request from dead actor dropped",
			zap.Stringer("actor", actor), zap.Stringer("action", req.Action))
		return
	}
	noun, second := g.resolveNoun(req.Noun), g.resolveNoun(req.Second)
	meta := action.IsMeta(req.Action)

	ctx := rules.Context{Action: req.Action, Actor: actor, Noun: noun, Second: second}
	target, hasTarget := noun.Entity()
	hasTarget = hasTarget && g.live(target)

	if !meta {
		if hasTarget {
			ctx.Self = target
			if g.book.Actor(target).Before(ctx) {
				return
			}
		}
		if g.react(ctx, rules.Actor.ReactBefore) {
			return
		}
	}

	if routines[req.Action](g, actor, noun, second) || meta {
		return
	}

	if hasTarget {
		ctx.Self = target
		if g.book.Actor(target).After(ctx) {
			return
		}
	}
	g.react(ctx, rules.Actor.ReactAfter)
}

// live reports whether id may take part in dispatch. Meta entities have no
// liveness of their own.
func (g *Game) live(id entity.ID) bool {
	return entity.CategoryOf(id) == entity.Meta || g.world.IsAlive(id)
}

// resolve maps the player sentinel to the player character.
func (g *Game) resolve(id entity.ID) entity.ID {
	if id == g.special.Player {
		return g.player
	}
	return id
}

func (g *Game) resolveNoun(n action.Noun) action.Noun {
	if id, ok := n.Entity(); ok && id == g.special.Player {
		return action.Entity(g.player)
	}
	return n
}

// react offers the action to everything in the actor's vicinity, then to the
// room. The first hook to handle it wins.
func (g *Game) react(ctx rules.Context, hook func(rules.Actor, rules.Context) bool) bool {
	for _, id := range g.vicinity(ctx.Actor) {
		ctx.Self = id
		if hook(g.book.Actor(id), ctx) {
			return true
		}
	}
	ctx.Self = g.special.World
	return hook(g.book.Actor(g.special.World), ctx)
}

// vicinity lists live entities on the actor's map within one step of it,
// excluding the actor. Carried objects are skipped. An actor without a map
// or position has no vicinity.
func (g *Game) vicinity(actor entity.ID) []entity.ID {
	mi, ok := g.world.MapIndex(actor)
	if !ok {
		return nil
	}
	pos, ok := g.world.Position(actor)
	if !ok {
		return nil
	}
	near := func(x, y uint16) bool {
		return system.Chebyshev(int(pos.X), int(pos.Y), int(x), int(y)) <= 1
	}

	var out []entity.ID
	cv := g.world.Characters()
	for i := 0; i < cv.Len(); i++ {
		if cv.Alive[i].Alive && cv.MapIndex[i] == mi && near(cv.Position[i].X, cv.Position[i].Y) {
			out = append(out, entity.Encode(entity.Character, uint64(i)))
		}
	}
	mv := g.world.Monsters()
	for i := 0; i < mv.Len(); i++ {
		if mv.Alive[i].Alive && mv.MapIndex[i] == mi && near(mv.Position[i].X, mv.Position[i].Y) {
			out = append(out, entity.Encode(entity.Monster, uint64(i)))
		}
	}
	ov := g.world.Objects()
	for i := 0; i < ov.Len(); i++ {
		if ov.Alive[i].Alive && !ov.Parent[i].Carried() && ov.MapIndex[i] == mi && near(ov.Position[i].X, ov.Position[i].Y) {
			out = append(out, entity.Encode(entity.Object, uint64(i)))
		}
	}
	for i, id := range out {
		if id == actor {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}
