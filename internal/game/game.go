package game

import (
	"fmt"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/config"
	"terminal-rpg/internal/ecs"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/factory"
	"terminal-rpg/internal/gamemap"
	"terminal-rpg/internal/menu"
	"terminal-rpg/internal/rules"
	"terminal-rpg/internal/session"
	"terminal-rpg/internal/special"
	"terminal-rpg/internal/system"
	"terminal-rpg/internal/tabletop"

	"go.uber.org/zap"
)

// maxMessages bounds the status log.
const maxMessages = 50

// startMap is the id of the map a new game begins on.
const startMap gamemap.ID = 1

// Game owns the world and everything that mutates it. It is driven from a
// single goroutine.
type Game struct {
	cfg      config.GameConfig
	log      *zap.Logger
	world    *ecs.World
	maps     map[gamemap.ID]*gamemap.GameMap
	session  *session.Session
	menus    *menu.Data
	special  special.Entities
	queue    *action.Queue
	book     *rules.Book
	messages []string
	player   entity.ID
	patrols  []*system.Patrol
	fps      fpsHistory
}

// New builds a game with a fresh world: the sentinel table, the starting map,
// the player and a patrolling guard. book may be nil.
func New(cfg config.GameConfig, log *zap.Logger, book *rules.Book) *Game {
	if book == nil {
		book = rules.NewBook()
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		world:   ecs.NewWorldWithCapacity(64),
		maps:    make(map[gamemap.ID]*gamemap.GameMap),
		session: session.New(log),
		menus:   menu.NewData(),
		queue:   action.NewQueue(),
		book:    book,
	}
	g.special = special.Allocate(g.world)
	g.populate()
	return g
}

// populate lays out the starting map.
func (g *Game) populate() {
	m := gamemap.Bordered(startMap, g.cfg.MapWidth, g.cfg.MapHeight)
	g.maps[m.ID] = m

	cx, cy := m.Width/2, m.Height/2
	g.player = factory.NewPlayer(g.world, m.ID, cx, cy, tabletop.Fighter, factory.DefaultProfile())

	guard := factory.DefaultProfile()
	guard.Race = tabletop.HalfOrc
	guard.Alignment = tabletop.LawfulNeutral
	gx, gy := floorOr(m, m.Width/4, m.Height/4, cx, cy)
	id := factory.NewMonster(g.world, m.ID, gx, gy, guard)
	s := g.special
	g.patrols = append(g.patrols, &system.Patrol{
		Actor:    id,
		Route:    []entity.ID{s.East, s.East, s.East, s.South, s.South, s.West, s.West, s.West, s.North, s.North},
		Interval: g.cfg.PatrolInterval,
	})

	ox, oy := floorOr(m, cx+2, cy, cx, cy)
	factory.NewObject(g.world, m.ID, ox, oy)
	factory.NewCarried(g.world, g.player)
}

// floorOr returns (x, y) when it is walkable floor on m, else (fx, fy).
func floorOr(m *gamemap.GameMap, x, y, fx, fy uint16) (uint16, uint16) {
	if m.IsWalkable(int(x), int(y)) {
		return x, y
	}
	return fx, fy
}

func (g *Game) World() *ecs.World          { return g.world }
func (g *Game) Session() *session.Session  { return g.session }
func (g *Game) Menus() *menu.Data          { return g.menus }
func (g *Game) Special() special.Entities  { return g.special }
func (g *Game) Player() entity.ID          { return g.player }
func (g *Game) Book() *rules.Book          { return g.book }
func (g *Game) Queue() *action.Queue       { return g.queue }
func (g *Game) Patrols() []*system.Patrol  { return g.patrols }
func (g *Game) Enqueue(req action.Request) { g.queue.Push(req) }
func (g *Game) Map(id gamemap.ID) (*gamemap.GameMap, bool) {
	m, ok := g.maps[id]
	return m, ok
}

// CurrentMap is the map the player stands on.
func (g *Game) CurrentMap() *gamemap.GameMap {
	if mi, ok := g.world.MapIndex(g.player); ok {
		if m, ok := g.maps[mi.Map]; ok {
			return m
		}
	}
	return g.maps[startMap]
}

// Messages returns the status log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// addMessage appends to the status log, keeping the last maxMessages.
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// Say writes to the status log; rule scripts use it.
func (g *Game) Say(msg string) { g.addMessage(msg) }

// decline reports a recoverable no-op: nothing changes, the player is told
// why and the reason is logged.
func (g *Game) decline(msg string, fields ...zap.Field) {
	g.log.Debug("action declined", append(fields, zap.String("reason", msg))...)
	g.addMessage(msg)
}

// describe names an entity for status messages.
func (g *Game) describe(id entity.ID) string {
	if id == g.player {
		return "you"
	}
	if name, ok := g.special.Name(id); ok {
		return name
	}
	if cr, ok := g.world.Creature(id); ok {
		return fmt.Sprintf("a %s %s", sizeWord(cr.Size), cr.Race)
	}
	return "an object"
}

func sizeWord(s tabletop.Size) string {
	switch s {
	case tabletop.Tiny:
		return "tiny"
	case tabletop.Small:
		return "small"
	case tabletop.Large:
		return "large"
	case tabletop.Huge:
		return "huge"
	case tabletop.Gargantuan:
		return "gargantuan"
	}
	return "medium"
}
