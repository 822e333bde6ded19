package action

import (
	"fmt"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/menu"
)

// NounKind tags which variant a Noun holds.
type NounKind uint8

const (
	NounNothing NounKind = iota
	NounEntity
	NounLiteral
	NounMenu
	NounNumber
)

func (k NounKind) String() string {
	switch k {
	case NounNothing:
		return "nothing"
	case NounEntity:
		return "entity"
	case NounLiteral:
		return "literal"
	case NounMenu:
		return "menu"
	case NounNumber:
		return "number"
	}
	return "unknown"
}

// Noun is what an action acts on. Only the field matching Kind is meaningful;
// build values with the constructors below.
type Noun struct {
	kind   NounKind
	id     entity.ID
	text   string
	menu   menu.Type
	number int64
}

// Nothing is the empty noun.
var Nothing = Noun{}

func Entity(id entity.ID) Noun { return Noun{kind: NounEntity, id: id} }
func Literal(text string) Noun { return Noun{kind: NounLiteral, text: text} }
func Menu(t menu.Type) Noun    { return Noun{kind: NounMenu, menu: t} }
func Number(n int64) Noun      { return Noun{kind: NounNumber, number: n} }
func (n Noun) Kind() NounKind  { return n.kind }
func (n Noun) IsNothing() bool { return n.kind == NounNothing }

func (n Noun) Entity() (entity.ID, bool) { return n.id, n.kind == NounEntity }
func (n Noun) Literal() (string, bool)   { return n.text, n.kind == NounLiteral }
func (n Noun) Menu() (menu.Type, bool)   { return n.menu, n.kind == NounMenu }
func (n Noun) Number() (int64, bool)     { return n.number, n.kind == NounNumber }

func (n Noun) String() string {
	switch n.kind {
	case NounEntity:
		return n.id.String()
	case NounLiteral:
		return fmt.Sprintf("%q", n.text)
	case NounMenu:
		return "menu:" + n.menu.String()
	case NounNumber:
		return fmt.Sprint(n.number)
	}
	return "nothing"
}
