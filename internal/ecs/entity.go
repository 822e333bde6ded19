package ecs

import (
	"errors"
	"fmt"
	"sync/atomic"
	"terminal-rpg/internal/entity"
)

// Fatal contract violations. The store panics with an error wrapping one of
// these; callers are never expected to recover in production.
var (
	ErrIDSpaceExhausted = errors.New("ecs: entity id space exhausted")
	ErrCategoryMismatch = errors.New("ecs: id category does not match component family")
	ErrUnknownCategory  = errors.New("ecs: unknown entity category")
)

// reserve hands out the next sequence number from a category counter.
// Sequence numbers are never reused, so running out is fatal.
func reserve(next *atomic.Uint64, c entity.Category) uint64 {
	seq := next.Add(1) - 1
	if seq > entity.MaxSequence {
		panic(fmt.Errorf("%w: %v", ErrIDSpaceExhausted, c))
	}
	return seq
}

// mustOwn panics unless id belongs to category c.
func mustOwn(id entity.ID, c entity.Category) {
	if got := entity.CategoryOf(id); got != c {
		panic(fmt.Errorf("%w: %v used as %v", ErrCategoryMismatch, id, c))
	}
}

// row returns a pointer to rows[seq], or nil when seq is past the end.
func row[T any](rows []T, seq uint64) *T {
	if seq >= uint64(len(rows)) {
		return nil
	}
	return &rows[seq]
}
