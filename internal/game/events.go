package game

import "fmt"

// EventKind classifies a simulation event.
type EventKind int

const (
	EventSpawn     EventKind = iota // drone appended to the live set
	EventHit                        // beam touched a drone this tick
	EventDestroyed                  // drone culled with no health left
	EventEscaped                    // drone culled after leaving the playfield
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventDestroyed:
		return "destroyed"
	case EventEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Event is one thing that happened to a drone during a tick.
type Event struct {
	Tick    int
	Kind    EventKind
	DroneID int
	Bounds  Rect
	Health  float64
}

// String formats the event as a short panel line.
func (e Event) String() string {
	c := e.Bounds.Center()
	return fmt.Sprintf("D%-3d %-9s (%3.0f,%3.0f) hp=%.1f", e.DroneID, e.Kind, c.X, c.Y, e.Health)
}

// EventSink receives events synchronously from Simulation.Step.
type EventSink interface {
	Observe(Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// Observe calls f(e).
func (f EventSinkFunc) Observe(e Event) { f(e) }

func droneEvent(tick int, kind EventKind, d *Drone) Event {
	return Event{Tick: tick, Kind: kind, DroneID: d.id, Bounds: d.bounds, Health: d.health}
}
