// Package session tracks which screen owns the game: a menu, the running
// world or a pending quit.
package session

import (
	"context"
	"errors"
	"fmt"
	"terminal-rpg/internal/menu"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// State is the session state name.
type State string

const (
	StateMenu          State = "menu"
	StateRunning       State = "running"
	StateQuitRequested State = "quit_requested"
)

const (
	eventNewGame     = "new_game"
	eventQuit        = "quit"
	eventOpenMenu    = "open_menu"
	eventCloseToMenu = "close_to_menu"
	eventCloseToGame = "close_to_game"
)

// ErrInconsistentSession is returned when an event is not allowed from the
// current state.
var ErrInconsistentSession = errors.New("inconsistent session state")

// Session is the state machine plus the active menu. Not safe for
// concurrent use.
type Session struct {
	fsm  *fsm.FSM
	menu menu.Type
	log  *zap.Logger
}

// New starts in the main menu.
func New(log *zap.Logger) *Session {
	s := &Session{menu: menu.Main, log: log}
	s.fsm = fsm.NewFSM(
		string(StateMenu),
		fsm.Events{
			{Name: eventNewGame, Src: []string{string(StateMenu), string(StateRunning)}, Dst: string(StateRunning)},
			{Name: eventQuit, Src: []string{string(StateMenu), string(StateRunning), string(StateQuitRequested)}, Dst: string(StateQuitRequested)},
			{Name: eventOpenMenu, Src: []string{string(StateMenu), string(StateRunning)}, Dst: string(StateMenu)},
			{Name: eventCloseToMenu, Src: []string{string(StateMenu)}, Dst: string(StateMenu)},
			{Name: eventCloseToGame, Src: []string{string(StateMenu)}, Dst: string(StateRunning)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.log.Debug("session transition",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst))
			},
		},
	)
	return s
}

func (s *Session) State() State { return State(s.fsm.Current()) }

// Menu returns the active menu; ok is false outside the menu state.
func (s *Session) Menu() (menu.Type, bool) {
	if s.State() != StateMenu {
		return 0, false
	}
	return s.menu, true
}

func (s *Session) NewGame() error { return s.fire(eventNewGame) }
func (s *Session) Quit() error    { return s.fire(eventQuit) }

// OpenMenu shows t, replacing any menu already open.
func (s *Session) OpenMenu(t menu.Type) error {
	if err := s.fire(eventOpenMenu); err != nil {
		return err
	}
	s.menu = t
	return nil
}

// CloseMenu leaves the active menu for its default parent.
func (s *Session) CloseMenu() error {
	current, ok := s.Menu()
	if !ok {
		return fmt.Errorf("%w: close menu in state %s", ErrInconsistentSession, s.State())
	}
	parent := menu.DefaultParent(current)
	switch parent.Kind {
	case menu.ParentMenu:
		if err := s.fire(eventCloseToMenu); err != nil {
			return err
		}
		s.menu = parent.Menu
		return nil
	case menu.ParentGame:
		return s.fire(eventCloseToGame)
	case menu.ParentQuit:
		return s.fire(eventQuit)
	}
	return fmt.Errorf("%w: menu %v has no parent", ErrInconsistentSession, current)
}

// fire runs event. Staying in the same state is not an error.
func (s *Session) fire(event string) error {
	err := s.fsm.Event(context.Background(), event)
	if err == nil || errors.As(err, &fsm.NoTransitionError{}) {
		return nil
	}
	return fmt.Errorf("%w: %s from %s: %v", ErrInconsistentSession, event, s.State(), err)
}
