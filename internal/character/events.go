package character

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type EventKind int

const (
	EventHit EventKind = iota
	EventKnockedOut
	EventWokeUp
	EventGrabbed
	EventThrown
	EventFell
	EventBoosted
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventKnockedOut:
		return "knocked-out"
	case EventWokeUp:
		return "woke-up"
	case EventGrabbed:
		return "grabbed"
	case EventThrown:
		return "thrown"
	case EventFell:
		return "fell"
	case EventBoosted:
		return "boosted"
	}
	return "unknown"
}

// Event is a combat signal for presentation and round bookkeeping. Target is
// nil for events that involve only Source.
type Event struct {
	Kind     EventKind
	Source   *Character
	Target   *Character
	Position rl.Vector3
	Amount   float32
}

func (e Event) String() string {
	switch e.Kind {
	case EventHit:
		return fmt.Sprintf("%s hit %s for %.0f", e.Source, e.Target, e.Amount)
	case EventGrabbed:
		return fmt.Sprintf("%s grabbed %s", e.Source, e.Target)
	case EventThrown:
		return fmt.Sprintf("%s threw %s", e.Source, e.Target)
	}
	return fmt.Sprintf("%s %s", e.Source, e.Kind)
}
