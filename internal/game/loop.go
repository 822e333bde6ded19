package game

import (
	"context"
	"terminal-rpg/internal/input"
	"terminal-rpg/internal/render"
	"terminal-rpg/internal/session"
	"terminal-rpg/internal/system"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Run drives the game in real time until a quit is requested, the context
// is cancelled or the screen closes. Each frame drains pending input into
// the queue, advances the patrols, dispatches the queue and redraws.
func (g *Game) Run(ctx context.Context, screen tcell.Screen, keys *input.Keymap) error {
	r := render.NewRenderer(screen)
	if err := r.CheckSize(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FramesPerSecond))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("fps", g.cfg.FramesPerSecond))
	last := time.Now()
	r.Draw(g.Frame())
	for g.session.State() != session.StateQuitRequested {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			g.fps.record(now.Sub(last))
			last = now
		}
		if !g.pollInput(events, r, keys) {
			g.log.Info("screen closed")
			return nil
		}
		g.Tick()
		r.Draw(g.Frame())
	}
	g.log.Info("quit requested")
	return nil
}

// pollInput handles every event already waiting without blocking. It
// returns false once the event source has closed.
func (g *Game) pollInput(events <-chan tcell.Event, r *render.Renderer, keys *input.Keymap) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.Resize()
			case *tcell.EventKey:
				if req, ok := keys.Translate(ev, g.InputContext()); ok {
					g.Enqueue(req)
				}
			}
		default:
			return true
		}
	}
}

// Tick advances one frame: patrols step while the game is running, then
// every queued request is dispatched.
func (g *Game) Tick() int {
	if g.session.State() == session.StateRunning {
		system.ProcessPatrols(g.world, g.patrols, g.queue)
	}
	return g.ProcessQueue()
}

// InputContext describes the current state for key translation.
func (g *Game) InputContext() input.Context {
	c := input.Context{State: g.session.State(), Special: g.special}
	if m, ok := g.session.Menu(); ok {
		c.Menu = m
		if nav, ok := g.menus.Navigator(m); ok {
			c.Navigable = true
			c.Editing = nav.EditingAnything()
		}
	}
	return c
}

// Frame snapshots what the renderer needs.
func (g *Game) Frame() render.Frame {
	f := render.Frame{
		World:     g.world,
		Map:       g.CurrentMap(),
		Player:    g.player,
		State:     g.session.State(),
		Menus:     g.menus,
		Messages:  g.messages,
		FPS:       g.fps.FPS(),
		ShowFPS:   g.cfg.ShowFPS,
		TargetFPS: g.cfg.FramesPerSecond,
	}
	if m, ok := g.session.Menu(); ok {
		f.Menu = m
	}
	return f
}
