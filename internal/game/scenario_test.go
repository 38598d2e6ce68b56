package game

import (
	"math"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: drone directly above the turret ---

func TestScenario_BeamHitsDroneAbove(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(380, 100, 0, 0), // spans x 380..420, turret at x=400
	)
	ts.Step(Input{Fire: true})
	dumpLog(t, ts)

	d := ts.Drone(0)
	if d == nil {
		t.Fatal("drone should still be alive after one hit")
	}
	if math.Abs(d.Health()-0.9) > eps {
		t.Fatalf("expected hp 0.9 after one hit tick, got %v", d.Health())
	}
	if ts.SimLog.CountCategory("drone", "hit") != 1 {
		t.Fatalf("expected exactly one hit entry, got %d", ts.SimLog.CountCategory("drone", "hit"))
	}
}

// --- Scenario: ten firing ticks destroy a drone ---

func TestScenario_TenHitsDestroy(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(380, 100, 0, 0),
	)
	for n := 1; n <= 9; n++ {
		ts.Step(Input{Fire: true})
		d := ts.Drone(0)
		if d == nil {
			t.Fatalf("drone culled early at tick %d", n)
		}
		if want := 1 - 0.1*float64(n); math.Abs(d.Health()-want) > 1e-9 {
			t.Fatalf("tick %d: hp=%v want %v", n, d.Health(), want)
		}
	}
	ts.Step(Input{Fire: true})
	dumpLog(t, ts)

	if ts.Drone(0) != nil {
		t.Fatal("drone should be culled on the 10th hit tick")
	}
	e, ok := ts.SimLog.LastOf("drone", "destroyed")
	if !ok || e.Tick != 10 || e.Drone != "D0" {
		t.Fatalf("expected D0 destroyed at T=10, got %+v (found=%v)", e, ok)
	}
	if ts.Stats.Destroyed != 1 || ts.Stats.Escaped != 0 {
		t.Fatalf("unexpected stats: %s", ts.Stats)
	}
}

// --- Scenario: no damage without firing ---

func TestScenario_NoDamageWithoutFiring(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(380, 100, 0, 0),
	)
	ts.RunTicks(5, Input{})
	d := ts.Drone(0)
	if d == nil || d.Health() != 1 {
		t.Fatalf("drone in the beam path took damage without firing: %+v", d)
	}
	if ts.SimLog.CountCategory("drone", "hit") != 0 {
		t.Fatal("no hit entries expected without firing")
	}
}

// --- Scenario: angled beam ---

func TestScenario_AngledBeamMissesThenHits(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(500, 200, 0, 0), // centre (520,212), ~19.5° right of vertical
	)
	ts.Step(Input{Fire: true})
	if ts.Drone(0).BeingHit() {
		t.Fatal("a vertical beam should miss a drone off to the right")
	}

	ts.RunTicks(19, Input{Right: true})
	ts.Step(Input{Fire: true})
	if !ts.Drone(0).BeingHit() {
		t.Fatalf("beam at %d° should hit the drone", ts.Sim.Turret().Angle())
	}
}

// --- Scenario: drifting drones leave play ---

func TestScenario_DriftingDroneEscapes(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(300, 0, 0, 0.5),
	)
	// Bottom starts at 24 and crosses 600 after (600-24)/0.5 = 1152 ticks.
	tick := ts.RunUntil(func(ts *TestSim) bool { return len(ts.Sim.Drones()) == 0 }, Input{}, 2000)
	if tick != 1153 {
		t.Fatalf("expected escape on tick 1153, got %d", tick)
	}
	if ts.Stats.Escaped != 1 || ts.Stats.Destroyed != 0 {
		t.Fatalf("unexpected stats: %s", ts.Stats)
	}
}

// --- Scenario: autopilot ---

func TestScenario_AutopilotKillsStationaryDrone(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(500, 200, 0, 0),
	)
	ts.RunAutopilot(200)
	t.Log(ts.Summary())
	if ts.Stats.Destroyed != 1 {
		t.Fatalf("autopilot should destroy a stationary drone within 200 ticks: %s", ts.Stats)
	}
}

func TestScenario_AutopilotBeatsIdle(t *testing.T) {
	auto := NewTestSim(WithSeed(5), WithSpawnChance(0.02))
	auto.RunAutopilot(6000)
	idle := NewTestSim(WithSeed(5), WithSpawnChance(0.02))
	idle.RunTicks(6000, Input{})

	t.Logf("auto: %s", auto.Stats)
	t.Logf("idle: %s", idle.Stats)
	if idle.Stats.Destroyed != 0 {
		t.Fatalf("idle turret destroyed %d drones", idle.Stats.Destroyed)
	}
	if auto.Stats.Destroyed == 0 {
		t.Fatal("autopilot destroyed nothing in 6000 ticks")
	}
}

func TestScenario_SameSeedSameRun(t *testing.T) {
	a := NewTestSim(WithSeed(11))
	b := NewTestSim(WithSeed(11))
	a.RunAutopilot(3000)
	b.RunAutopilot(3000)
	if a.Stats != b.Stats {
		t.Fatalf("same seed diverged:\n a=%s\n b=%s", a.Stats, b.Stats)
	}
	if a.SimLog.Format() != b.SimLog.Format() {
		t.Fatal("same seed produced different event logs")
	}
}

func TestScenario_VerboseLogsTurretEachTick(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithSpawnChance(0))
	ts.RunTicks(30, Input{Right: true})
	if n := ts.SimLog.CountCategory("turret", "state"); n != 30 {
		t.Fatalf("expected 30 turret entries, got %d", n)
	}
	last, _ := ts.SimLog.LastOf("turret", "state")
	if last.NumVal != 30 || !ts.SimLog.HasEntry("turret", "state", "angle=30") {
		t.Fatalf("unexpected last turret entry %s", last)
	}
	if len(ts.SimLog.FilterTickRange(10, 19)) < 10 {
		t.Fatal("expected at least one entry per tick in range")
	}
}

// --- Scenario: small playfield, sink added mid-run ---

func TestScenario_SmallScreenLateSink(t *testing.T) {
	ts := NewTestSim(
		WithScreenSize(200, 150),
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(80, 20, 0, 0),
	)
	if p := ts.Sim.Turret().Pos(); p != (Vec2{X: 100, Y: 100}) {
		t.Fatalf("expected turret at (100,100), got %+v", p)
	}

	var late []EventKind
	ts.Sim.AddSink(EventSinkFunc(func(e Event) { late = append(late, e.Kind) }))
	ts.RunTicks(10, Input{Fire: true})

	if len(late) != 11 || late[10] != EventDestroyed {
		t.Fatalf("late sink should see 10 hits then destroyed, got %v", late)
	}
	if n := len(ts.SimLog.FilterDrone("D0")); n != 12 {
		dumpLog(t, ts)
		t.Fatalf("expected spawn + 10 hits + destroyed for D0, got %d entries", n)
	}
}
