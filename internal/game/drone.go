package game

import "math/rand"

// deathEpsilon absorbs the rounding left by repeated 0.1 subtractions so
// that ten hits from full health read as dead.
const deathEpsilon = 1e-9

// Drone is an enemy falling from the top edge. Its bounding box is its
// position; there is no separate centre point.
type Drone struct {
	id       int
	bounds   Rect
	velocity Vec2
	health   float64
	beingHit bool

	damage       float64
	screenWidth  float64
	screenHeight float64
}

// NewDrone spawns a drone at a random x in [0, ScreenWidth) on the top edge
// with a random drift: vx in [-1,1), vy in [0,1).
func NewDrone(rng *rand.Rand, cfg Config) *Drone {
	x := float64(rng.Intn(cfg.ScreenWidth))
	vel := Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()}
	return newDroneAt(cfg, Vec2{X: x, Y: 0}, vel)
}

func newDroneAt(cfg Config, pos, vel Vec2) *Drone {
	return &Drone{
		bounds:       RectAt(pos, cfg.DroneWidth, cfg.DroneHeight),
		velocity:     vel,
		health:       1.0,
		damage:       cfg.BeamDamage,
		screenWidth:  float64(cfg.ScreenWidth),
		screenHeight: float64(cfg.ScreenHeight),
	}
}

// ID is the spawn sequence number assigned by the simulation.
func (d *Drone) ID() int { return d.id }

// Bounds returns the drone's box.
func (d *Drone) Bounds() Rect { return d.bounds }

// Velocity returns the per-tick drift.
func (d *Drone) Velocity() Vec2 { return d.velocity }

// Health starts at 1 and may go negative.
func (d *Drone) Health() float64 { return d.health }

// BeingHit reports whether the beam touched the drone on its last hit test.
func (d *Drone) BeingHit() bool { return d.beingHit }

// Advance moves the whole box by the velocity.
func (d *Drone) Advance() {
	d.bounds = translateRect(d.bounds, d.velocity)
}

// TestHit applies one tick of beam damage when beam touches the box and
// sets the hit flash accordingly. It never moves the drone.
func (d *Drone) TestHit(beam Segment) bool {
	if !SegmentIntersectsRect(beam, d.bounds) {
		d.beingHit = false
		return false
	}
	d.health -= d.damage
	d.beingHit = true
	return true
}

// ClearHit turns the hit flash off.
func (d *Drone) ClearHit() {
	d.beingHit = false
}

// Destroyed reports whether the drone has run out of health.
func (d *Drone) Destroyed() bool {
	return d.health <= deathEpsilon
}

// Escaped reports whether any edge of the box left the playfield.
func (d *Drone) Escaped() bool {
	return !playfield(d.screenWidth, d.screenHeight).Contains(d.bounds)
}

// IsDead is the cull predicate: destroyed or escaped.
func (d *Drone) IsDead() bool {
	return d.Destroyed() || d.Escaped()
}
