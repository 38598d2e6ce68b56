package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 240
	logMaxEntries = 60
	logLineHeight = 11
)

// EventLog is a ring buffer of recent drone events rendered on-screen.
// Hit events are not kept; at 60 per second they would flood the panel.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]Event, logMaxEntries),
	}
}

// Observe appends spawn, destroyed and escaped events.
func (el *EventLog) Observe(e Event) {
	if e.Kind == EventHit {
		return
	}
	el.entries[el.head] = e
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []Event {
	result := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// eventColor is the marker colour for each kind.
func eventColor(k EventKind) color.RGBA {
	switch k {
	case EventSpawn:
		return color.RGBA{R: 200, G: 200, B: 60, A: 255}
	case EventDestroyed:
		return color.RGBA{R: 230, G: 60, B: 50, A: 255}
	default:
		return color.RGBA{R: 110, G: 110, B: 120, A: 255}
	}
}

// Draw renders the log panel starting at panelX.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 50, A: 255}, false)

	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 30, G: 20, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := el.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}

	y := 20
	for _, e := range entries[startIdx:] {
		vector.DrawFilledRect(screen, float32(panelX+5), float32(y+3), 3, 5, eventColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e), panelX+12, y)
		y += logLineHeight
	}
}
