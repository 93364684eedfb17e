package snake

import (
	"time"

	"github.com/vovakirdan/snake-plus/internal/config"
)

// EventKind tags a discrete event consumed by the frame loop.
type EventKind int

const (
	EventNone EventKind = iota
	// EventDirection steers the snake; Event.Heading carries the vector.
	EventDirection
	// EventRestart starts a new round after game over.
	EventRestart
	// EventQuit ends the session. Events queued after it are dropped.
	EventQuit
	// Timer events.
	EventSpawnFood
	EventSpawnBoost
	EventRelocateObstacles
	EventRelocateFoods
)

func (k EventKind) String() string {
	switch k {
	case EventDirection:
		return "direction"
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	case EventSpawnFood:
		return "spawn_food"
	case EventSpawnBoost:
		return "spawn_boost"
	case EventRelocateObstacles:
		return "relocate_obstacles"
	case EventRelocateFoods:
		return "relocate_foods"
	default:
		return "none"
	}
}

// IsTimer reports whether the event comes from a periodic timer.
func (k EventKind) IsTimer() bool {
	return k >= EventSpawnFood && k <= EventRelocateFoods
}

// Event is one input or timer occurrence.
type Event struct {
	Kind    EventKind
	Heading Heading
}

// DirectionEvent builds a steering event.
func DirectionEvent(h Heading) Event {
	return Event{Kind: EventDirection, Heading: h}
}

// EventQueue is a FIFO of pending events. Input and timers push; the frame
// loop drains everything once per frame, before the tick.
// It is not safe for concurrent use; the single main loop owns it.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Timer is one periodic event source.
type Timer struct {
	Kind     EventKind
	Interval time.Duration
}

// Schedule returns the timers a session runs for the given level. Disabled
// timers (zero interval) are left out.
func Schedule(cfg config.Config, profile config.DifficultyProfile) []Timer {
	all := []Timer{
		{Kind: EventSpawnFood, Interval: cfg.FoodSpawnEvery()},
		{Kind: EventSpawnBoost, Interval: cfg.BoostSpawnEvery()},
		{Kind: EventRelocateObstacles, Interval: profile.ObstacleRelocateEvery()},
		{Kind: EventRelocateFoods, Interval: profile.FoodRelocateEvery()},
	}

	timers := make([]Timer, 0, len(all))
	for _, t := range all {
		if t.Interval > 0 {
			timers = append(timers, t)
		}
	}
	return timers
}
