package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Drone    string  // label e.g. "D3", or "--" for turret/global events
	Category string  // drone, turret, stats
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] D3   drone     hit              (412,130) hp=0.7
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Drone, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation.
// Unlike EventLog (UI ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick turret entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, drone, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Drone:    drone,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, drone, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, drone, category, key, value, numVal)
}

// Observe records a simulation event under the "drone" category, keyed by
// the event kind. NumVal carries the drone's health.
func (sl *SimLog) Observe(e Event) {
	c := e.Bounds.Center()
	sl.Add(e.Tick, fmt.Sprintf("D%d", e.DroneID), "drone", e.Kind.String(),
		fmt.Sprintf("(%.0f,%.0f) hp=%.1f", c.X, c.Y, e.Health), e.Health)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterDrone returns entries for a specific drone label.
func (sl *SimLog) FilterDrone(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Drone == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the simulation state.
func (sl *SimLog) Summary(sim *Simulation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", sim.Tick())
	t := sim.Turret()
	fmt.Fprintf(&sb, "Turret: angle=%d firing=%v\n", t.Angle(), t.Firing())
	fmt.Fprintf(&sb, "Events: spawn=%d hit=%d destroyed=%d escaped=%d\n",
		sl.CountCategory("drone", EventSpawn.String()),
		sl.CountCategory("drone", EventHit.String()),
		sl.CountCategory("drone", EventDestroyed.String()),
		sl.CountCategory("drone", EventEscaped.String()))

	drones := sim.Drones()
	if len(drones) == 0 {
		sb.WriteString("Live: none\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Live: %d\n", len(drones))
	for _, d := range drones {
		c := d.Bounds().Center()
		fmt.Fprintf(&sb, "  D%-3d (%.0f,%.0f) v=(%+.2f,%.2f) hp=%.1f\n",
			d.ID(), c.X, c.Y, d.Velocity().X, d.Velocity().Y, d.Health())
	}
	return sb.String()
}
