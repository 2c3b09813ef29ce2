package sim

import "github.com/milk9111/platformer3d/vmath"

// EventKind identifies simulation event types.
type EventKind string

const (
	EventCaught    EventKind = "caught"     // chaser reached the player, both reset
	EventBlast     EventKind = "blast"      // bomb explosion hit the player
	EventCollected EventKind = "collected"  // a companion joined the party
	EventAdvance   EventKind = "advance"    // level 1 -> level 2 transition
	EventVictory   EventKind = "victory"    // level 2 goal reached
	EventExplosion EventKind = "explosion"  // bomb detonated (hit or not)
)

// Event is one simulation occurrence, queued during a step and drained by
// the frontend afterward.
type Event struct {
	Kind EventKind
	Pos  vmath.Vec3
	// Index is the companion or bomb slot the event refers to, -1 otherwise.
	Index int
}

// eventQueue is a simple FIFO queue.
type eventQueue struct {
	items []Event
}

func (q *eventQueue) push(evt Event) {
	q.items = append(q.items, evt)
}

// drain returns all events and clears the queue.
func (q *eventQueue) drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
