package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Simulation owns the turret and the live drones and advances them one
// tick at a time. It has no Ebiten dependency so it can run headless.
type Simulation struct {
	cfg    Config
	rng    *rand.Rand
	runID  uuid.UUID
	turret *Turret
	drones []*Drone
	tick   int
	nextID int
	sinks  []EventSink
}

// NewSimulation validates cfg and seeds the playfield with
// cfg.InitialDrones drones. Sinks see those initial spawns too.
func NewSimulation(cfg Config, rng *rand.Rand, sinks ...EventSink) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("new simulation: nil random source")
	}
	s := &Simulation{
		cfg:    cfg,
		rng:    rng,
		runID:  uuid.New(),
		turret: NewTurret(cfg),
		sinks:  sinks,
	}
	for i := 0; i < cfg.InitialDrones; i++ {
		s.addDrone(NewDrone(rng, cfg))
	}
	return s, nil
}

// AddSink registers another event receiver.
func (s *Simulation) AddSink(sink EventSink) {
	s.sinks = append(s.sinks, sink)
}

// Config returns the session configuration.
func (s *Simulation) Config() Config { return s.cfg }

// RunID identifies this session in reports.
func (s *Simulation) RunID() string { return s.runID.String() }

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int { return s.tick }

// Turret returns the player's turret.
func (s *Simulation) Turret() *Turret { return s.turret }

// Drones returns the live drones. The slice must not be modified.
func (s *Simulation) Drones() []*Drone { return s.drones }

// Step runs one tick: spawn roll, aim and fire, hit test, movement, cull.
// Quit handling and rendering belong to the caller.
func (s *Simulation) Step(in Input) {
	s.tick++

	if s.rng.Float64() < s.cfg.SpawnChance {
		s.addDrone(NewDrone(s.rng, s.cfg))
	}

	// Both held cancels out.
	if in.Left {
		s.turret.TiltCounterclockwise()
	}
	if in.Right {
		s.turret.TiltClockwise()
	}
	s.turret.SetFiring(in.Fire)

	if s.turret.Firing() {
		beam := s.turret.FiringLine()
		for _, d := range s.drones {
			if d.TestHit(beam) {
				s.emit(droneEvent(s.tick, EventHit, d))
			}
		}
	} else if s.cfg.ClearFlashWhenIdle {
		for _, d := range s.drones {
			d.ClearHit()
		}
	}

	for _, d := range s.drones {
		d.Advance()
	}

	alive, dead := cullDead(s.drones)
	for _, d := range dead {
		kind := EventEscaped
		if d.Destroyed() {
			kind = EventDestroyed
		}
		s.emit(droneEvent(s.tick, kind, d))
	}
	s.drones = alive
}

// addDrone assigns the next id and appends d to the live set.
func (s *Simulation) addDrone(d *Drone) {
	d.id = s.nextID
	s.nextID++
	s.drones = append(s.drones, d)
	s.emit(droneEvent(s.tick, EventSpawn, d))
}

func (s *Simulation) emit(e Event) {
	for _, sink := range s.sinks {
		sink.Observe(e)
	}
}

// cullDead splits drones into survivors and dead ones, preserving order.
// The input slice is not modified.
func cullDead(drones []*Drone) (alive, dead []*Drone) {
	alive = make([]*Drone, 0, len(drones))
	for _, d := range drones {
		if d.IsDead() {
			dead = append(dead, d)
			continue
		}
		alive = append(alive, d)
	}
	return alive, dead
}
