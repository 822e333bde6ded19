package entity

import (
	"errors"
	"fmt"
)

// ID uniquely identifies an entity. The top two bits hold the Category and
// the remaining bits a dense per-category sequence number starting at 0.
type ID uint64

// Category selects which component family an ID belongs to.
type Category uint8

const (
	Character Category = 0b00
	Meta      Category = 0b01
	Monster   Category = 0b10
	Object    Category = 0b11
)

// Categories lists every category in bit-pattern order.
var Categories = [...]Category{Character, Meta, Monster, Object}

const (
	categoryShift = 62
	categoryMask  = ID(0b11) << categoryShift

	// MaxSequence is the largest sequence number an ID can carry.
	MaxSequence uint64 = 1<<categoryShift - 1
)

// ErrSequenceOverflow is raised when a sequence number does not fit below the
// category bits.
var ErrSequenceOverflow = errors.New("entity: sequence number overflows id space")

// Encode packs a category and sequence number into an ID.
// Panics if seq exceeds MaxSequence; silently masking it would alias ids.
func Encode(c Category, seq uint64) ID {
	if seq > MaxSequence {
		panic(fmt.Errorf("%w: %d", ErrSequenceOverflow, seq))
	}
	return ID(uint64(c)<<categoryShift) | ID(seq)
}

// CategoryOf decodes the category bits of id.
func CategoryOf(id ID) Category {
	return Category((id & categoryMask) >> categoryShift)
}

// Sequence returns id with the category bits removed.
func Sequence(id ID) uint64 {
	return uint64(id &^ categoryMask)
}

func (c Category) String() string {
	switch c {
	case Character:
		return "character"
	case Meta:
		return "meta"
	case Monster:
		return "monster"
	case Object:
		return "object"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

func (id ID) String() string {
	return fmt.Sprintf("%s#%d", CategoryOf(id), Sequence(id))
}
