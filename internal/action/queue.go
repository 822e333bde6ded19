package action

import (
	"fmt"
	"terminal-rpg/internal/entity"

	"gopkg.in/eapache/queue.v1"
)

// Request is one queued command: who does what to which nouns.
type Request struct {
	Actor  entity.ID
	Action Action
	Noun   Noun
	Second Noun
}

func (r Request) String() string {
	return fmt.Sprintf("%v %v %v %v", r.Actor, r.Action, r.Noun, r.Second)
}

// Queue is a strict FIFO of requests. It is owned by the main loop and is not
// safe for concurrent use.
type Queue struct {
	q *queue.Queue
}

func NewQueue() *Queue {
	return &Queue{q: queue.New()}
}

func (q *Queue) Push(r Request) { q.q.Add(r) }

func (q *Queue) Len() int { return q.q.Length() }

// Pop removes the oldest request; ok is false when the queue is empty.
func (q *Queue) Pop() (r Request, ok bool) {
	if q.q.Length() == 0 {
		return Request{}, false
	}
	return q.q.Remove().(Request), true
}
