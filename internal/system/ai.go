package system

import (
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
)

// Patrol walks one entity along a fixed route of compass sentinels. It is the
// only scripted movement in the game; each step is an ordinary Go request so
// it passes through the same hooks as player movement.
type Patrol struct {
	Actor    entity.ID
	Route    []entity.ID
	Interval int // frames between steps; 0 steps every frame

	next int
	wait int
}

// Tick advances the patrol by one frame and returns the request to enqueue,
// if this frame is a step. Dead actors and empty routes never step.
func (p *Patrol) Tick(w *ecs.World) (action.Request, bool) {
	if len(p.Route) == 0 || !w.IsAlive(p.Actor) {
		return action.Request{}, false
	}
	if p.wait > 0 {
		p.wait--
		return action.Request{}, false
	}
	p.wait = p.Interval
	dir := p.Route[p.next]
	p.next = (p.next + 1) % len(p.Route)
	return action.Request{
		Actor:  p.Actor,
		Action: action.Go,
		Noun:   action.Entity(dir),
	}, true
}

// ProcessPatrols ticks every patrol and pushes due steps onto q.
func ProcessPatrols(w *ecs.World, patrols []*Patrol, q *action.Queue) int {
	n := 0
	for _, p := range patrols {
		if req, ok := p.Tick(w); ok {
			q.Push(req)
			n++
		}
	}
	return n
}
