// Package rules holds the hook capability consulted by the dispatcher around
// each gameplay action, and the registry that maps entities to their hooks.
package rules

import (
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/entity"
)

// Context describes the action being resolved. Self is the entity whose
// hooks are running, which differs from the noun during reaction stages.
type Context struct {
	Action action.Action
	Actor  entity.ID
	Noun   action.Noun
	Second action.Noun
	Self   entity.ID
}

// Actor is implemented by anything that can intercept actions. Each hook
// returns true when it fully handled the action and later stages must not run.
type Actor interface {
	Before(Context) bool
	After(Context) bool
	ReactBefore(Context) bool
	ReactAfter(Context) bool
}

// NoOp never handles anything.
type NoOp struct{}

func (NoOp) Before(Context) bool      { return false }
func (NoOp) After(Context) bool       { return false }
func (NoOp) ReactBefore(Context) bool { return false }
func (NoOp) ReactAfter(Context) bool  { return false }

// Book resolves the Actor for an entity: a per-entity binding wins over a
// per-category default, which wins over the fallback.
type Book struct {
	byEntity   map[entity.ID]Actor
	byCategory [len(entity.Categories)]Actor
	fallback   Actor
}

func NewBook() *Book {
	return &Book{byEntity: make(map[entity.ID]Actor), fallback: NoOp{}}
}

// Bind attaches a to one entity.
func (b *Book) Bind(id entity.ID, a Actor) { b.byEntity[id] = a }

// Unbind removes a per-entity binding.
func (b *Book) Unbind(id entity.ID) { delete(b.byEntity, id) }

// BindCategory sets the default actor for every entity of c.
func (b *Book) BindCategory(c entity.Category, a Actor) { b.byCategory[c] = a }

// SetFallback replaces the actor used when nothing else is bound. nil
// restores NoOp.
func (b *Book) SetFallback(a Actor) {
	if a == nil {
		a = NoOp{}
	}
	b.fallback = a
}

// Actor returns the hooks for id. It never returns nil.
func (b *Book) Actor(id entity.ID) Actor {
	if a, ok := b.byEntity[id]; ok {
		return a
	}
	if a := b.byCategory[entity.CategoryOf(id)]; a != nil {
		return a
	}
	return b.fallback
}

// Chain runs several actors in order; the first to handle an action wins.
type Chain []Actor

func (c Chain) Before(ctx Context) bool {
	for _, a := range c {
		if a.Before(ctx) {
			return true
		}
	}
	return false
}

func (c Chain) After(ctx Context) bool {
	for _, a := range c {
		if a.After(ctx) {
			return true
		}
	}
	return false
}

func (c Chain) ReactBefore(ctx Context) bool {
	for _, a := range c {
		if a.ReactBefore(ctx) {
			return true
		}
	}
	return false
}

func (c Chain) ReactAfter(ctx Context) bool {
	for _, a := range c {
		if a.ReactAfter(ctx) {
			return true
		}
	}
	return false
}
