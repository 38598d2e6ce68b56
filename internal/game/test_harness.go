package game

import (
	"fmt"
	"math/rand"
)

// TestSim is a headless simulation harness used by tests and the headless
// report. It mirrors Game.Update without any Ebiten dependency and supports
// deterministic seeding and structured logging.
type TestSim struct {
	Config Config
	Sim    *Simulation
	SimLog *SimLog
	Stats  SessionStats

	rng   *rand.Rand
	sinks []EventSink
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, sinks: applied before the simulation exists
	simOptEntity                      // drones, turret aim: applied to the built simulation
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithScreenSize sets the playfield dimensions.
func WithScreenSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.ScreenWidth = w
		ts.Config.ScreenHeight = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithSpawnChance sets the per-tick spawn probability.
func WithSpawnChance(p float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.SpawnChance = p
	}}
}

// WithoutInitialDrones starts with an empty playfield.
func WithoutInitialDrones() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.InitialDrones = 0
	}}
}

// WithConfig edits any config field before the simulation is built.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.Config)
	}}
}

// WithVerbose enables per-tick turret logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithSink adds an extra event receiver, registered before the initial
// drones spawn.
func WithSink(sink EventSink) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.sinks = append(ts.sinks, sink)
	}}
}

// WithDrone places a drone with its top-left corner at (x,y) drifting by
// (vx,vy) per tick.
func WithDrone(x, y, vx, vy float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.addDrone(newDroneAt(ts.Config, Vec2{X: x, Y: y}, Vec2{X: vx, Y: vy}))
	}}
}

// WithTurretAngle pre-aims the turret, clamped to the tilt limit.
func WithTurretAngle(deg int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		t := ts.Sim.Turret()
		for t.Angle() < deg && t.Angle() < t.limit {
			t.TiltClockwise()
		}
		for t.Angle() > deg && t.Angle() > -t.limit {
			t.TiltCounterclockwise()
		}
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (config, seed, verbose), then the simulation is built
//  2. Entities (drones, turret aim)
//
// It panics on an invalid config; that is always a broken test.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Config: DefaultConfig(),
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	sinks := append([]EventSink{ts.SimLog, &ts.Stats}, ts.sinks...)
	sim, err := NewSimulation(ts.Config, ts.rng, sinks...)
	if err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	ts.Sim = sim
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Step runs a single tick with the given input.
func (ts *TestSim) Step(in Input) {
	ts.Sim.Step(in)
	t := ts.Sim.Turret()
	ts.SimLog.AddVerbose(ts.Sim.Tick(), "--", "turret", "state",
		fmt.Sprintf("angle=%d firing=%v live=%d", t.Angle(), t.Firing(), len(ts.Sim.Drones())), float64(t.Angle()))
}

// RunTicks advances the simulation n ticks holding the same input.
func (ts *TestSim) RunTicks(n int, in Input) {
	for i := 0; i < n; i++ {
		ts.Step(in)
	}
}

// RunWith advances n ticks, asking control for the input before each one.
func (ts *TestSim) RunWith(n int, control func(*TestSim) Input) {
	for i := 0; i < n; i++ {
		ts.Step(control(ts))
	}
}

// RunAutopilot advances n ticks under the autopilot.
func (ts *TestSim) RunAutopilot(n int) {
	ap := NewAutopilot()
	ts.RunWith(n, func(ts *TestSim) Input { return ap.Decide(ts.Sim) })
}

// RunUntil advances the simulation up to maxTicks with a fixed input,
// stopping early if predicate returns true. Returns the tick at which the
// predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, in Input, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(in)
		if predicate(ts) {
			return ts.Sim.Tick()
		}
	}
	return -1
}

// Drone returns the live drone with the given id, or nil.
func (ts *TestSim) Drone(id int) *Drone {
	for _, d := range ts.Sim.Drones() {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Summary is the SimLog summary for the current state.
func (ts *TestSim) Summary() string {
	return ts.SimLog.Summary(ts.Sim)
}
