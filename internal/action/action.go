// Package action defines the closed set of commands the simulation accepts,
// the nouns they act on and the FIFO queue that carries them to the
// dispatcher.
package action

import (
	"errors"
	"fmt"
)

// Action is a payload-free command tag. Arguments travel in Request.
type Action uint8

// Meta actions address the session, never world entities.
const (
	Quit Action = iota
	Restart
	Restore
	Save
	NewGame
	OpenMenu
	CloseMenu
	NavigateMenu

	// Gameplay actions.
	Answer
	Ask
	AskFor
	Attack
	Blow
	Burn
	Buy
	Clean
	Climb
	Close
	Consult
	Crush
	Cut
	Dig
	Disrobe
	Drink
	Drop
	Eat
	Empty
	Enter
	Examine
	Exit
	Fill
	GetOff
	Give
	Go
	Insert
	Inventory
	Jump
	JumpOver
	Kiss
	Listen
	Lock
	Look
	LookUnder
	Open
	Order
	Pray
	Pull
	Push
	PushDir
	PutOn
	Remove
	Search
	Set
	SetTo
	Show
	Sing
	Sleep
	Smell
	Swim
	Swing
	SwitchOff
	SwitchOn
	Take
	Taste
	Tell
	Think
	ThrowAt
	Tie
	Touch
	Turn
	Unlock
	Wait
	Wake
	WakeOther
	Wave
	WaveHands
	Wear

	// Count is the number of actions. It is not itself an action.
	Count
)

var ErrUnknownAction = errors.New("unknown action")

var names = [Count]string{
	Quit:         "quit",
	Restart:      "restart",
	Restore:      "restore",
	Save:         "save",
	NewGame:      "new-game",
	OpenMenu:     "open-menu",
	CloseMenu:    "close-menu",
	NavigateMenu: "navigate-menu",
	Answer:       "answer",
	Ask:          "ask",
	AskFor:       "ask-for",
	Attack:       "attack",
	Blow:         "blow",
	Burn:         "burn",
	Buy:          "buy",
	Clean:        "clean",
	Climb:        "climb",
	Close:        "close",
	Consult:      "consult",
	Crush:        "crush",
	Cut:          "cut",
	Dig:          "dig",
	Disrobe:      "disrobe",
	Drink:        "drink",
	Drop:         "drop",
	Eat:          "eat",
	Empty:        "empty",
	Enter:        "enter",
	Examine:      "examine",
	Exit:         "exit",
	Fill:         "fill",
	GetOff:       "get-off",
	Give:         "give",
	Go:           "go",
	Insert:       "insert",
	Inventory:    "inventory",
	Jump:         "jump",
	JumpOver:     "jump-over",
	Kiss:         "kiss",
	Listen:       "listen",
	Lock:         "lock",
	Look:         "look",
	LookUnder:    "look-under",
	Open:         "open",
	Order:        "order",
	Pray:         "pray",
	Pull:         "pull",
	Push:         "push",
	PushDir:      "push-dir",
	PutOn:        "put-on",
	Remove:       "remove",
	Search:       "search",
	Set:          "set",
	SetTo:        "set-to",
	Show:         "show",
	Sing:         "sing",
	Sleep:        "sleep",
	Smell:        "smell",
	Swim:         "swim",
	Swing:        "swing",
	SwitchOff:    "switch-off",
	SwitchOn:     "switch-on",
	Take:         "take",
	Taste:        "taste",
	Tell:         "tell",
	Think:        "think",
	ThrowAt:      "throw-at",
	Tie:          "tie",
	Touch:        "touch",
	Turn:         "turn",
	Unlock:       "unlock",
	Wait:         "wait",
	Wake:         "wake",
	WakeOther:    "wake-other",
	Wave:         "wave",
	WaveHands:    "wave-hands",
	Wear:         "wear",
}

func (a Action) String() string {
	if a < Count {
		return names[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Parse resolves the name produced by String.
func Parse(name string) (Action, error) {
	for a, n := range names {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// All lists every action in declaration order.
func All() []Action {
	out := make([]Action, Count)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// IsMeta reports whether a skips the before and after hook stages. Every
// action is listed; a value outside the enumeration panics.
func IsMeta(a Action) bool {
	switch a {
	case Quit, Restart, Restore, Save, NewGame, OpenMenu, CloseMenu, NavigateMenu:
		return true
	case Answer, Ask, AskFor, Attack, Blow, Burn, Buy, Clean, Climb, Close, Consult,
		Crush, Cut, Dig, Disrobe, Drink, Drop, Eat, Empty, Enter, Examine, Exit,
		Fill, GetOff, Give, Go, Insert, Inventory, Jump, JumpOver, Kiss, Listen,
		Lock, Look, LookUnder, Open, Order, Pray, Pull, Push, PushDir, PutOn, Remove,
		Search, Set, SetTo, Show, Sing, Sleep, Smell, Swim, Swing, SwitchOff, SwitchOn,
		Take, Taste, Tell, Think, ThrowAt, Tie, Touch, Turn, Unlock, Wait, Wake,
		WakeOther, Wave, WaveHands, Wear:
		return false
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownAction, uint8(a)))
}
