package game

import "fmt"

// SessionStats tallies events over a session.
type SessionStats struct {
	Spawned   int
	Destroyed int
	Escaped   int
	HitTicks  int // drone-ticks spent under the beam
	Live      int
	PeakLive  int
	LastTick  int
}

// Observe updates the counters for one event.
func (st *SessionStats) Observe(e Event) {
	st.LastTick = e.Tick
	switch e.Kind {
	case EventSpawn:
		st.Spawned++
		st.Live++
		if st.Live > st.PeakLive {
			st.PeakLive = st.Live
		}
	case EventHit:
		st.HitTicks++
	case EventDestroyed:
		st.Destroyed++
		st.Live--
	case EventEscaped:
		st.Escaped++
		st.Live--
	}
}

// KillRatio is destroyed / (destroyed + escaped), or 0 before any drone
// has left play.
func (st SessionStats) KillRatio() float64 {
	gone := st.Destroyed + st.Escaped
	if gone == 0 {
		return 0
	}
	return float64(st.Destroyed) / float64(gone)
}

func (st SessionStats) String() string {
	return fmt.Sprintf("spawned=%d destroyed=%d escaped=%d live=%d peak=%d hit_ticks=%d kill_ratio=%.2f",
		st.Spawned, st.Destroyed, st.Escaped, st.Live, st.PeakLive, st.HitTicks, st.KillRatio())
}
