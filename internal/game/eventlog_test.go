package game

import "testing"

func TestEventLog_SkipsHits(t *testing.T) {
	el := NewEventLog()
	el.Observe(Event{Tick: 1, Kind: EventSpawn, DroneID: 0})
	el.Observe(Event{Tick: 2, Kind: EventHit, DroneID: 0})
	el.Observe(Event{Tick: 3, Kind: EventDestroyed, DroneID: 0})
	got := el.Recent()
	if len(got) != 2 || got[0].Kind != EventSpawn || got[1].Kind != EventDestroyed {
		t.Fatalf("expected spawn then destroyed, got %+v", got)
	}
}

func TestEventLog_RingKeepsNewest(t *testing.T) {
	el := NewEventLog()
	total := logMaxEntries + 15
	for i := 0; i < total; i++ {
		el.Observe(Event{Tick: i, Kind: EventEscaped, DroneID: i})
	}
	got := el.Recent()
	if len(got) != logMaxEntries {
		t.Fatalf("expected %d entries, got %d", logMaxEntries, len(got))
	}
	if got[0].Tick != 15 || got[len(got)-1].Tick != total-1 {
		t.Fatalf("expected ticks 15..%d, got %d..%d", total-1, got[0].Tick, got[len(got)-1].Tick)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Tick != got[i-1].Tick+1 {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}
