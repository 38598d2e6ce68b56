package game

import "math"

// Turret is the player's DragonFire cannon. It sits at a fixed point and
// only changes its aim and firing state.
type Turret struct {
	pos        Vec2
	angle      int // degrees, 0 = straight up, positive = clockwise
	limit      int
	beamLength float64
	firing     bool
}

// NewTurret places a turret at cfg.TurretPos aiming straight up.
func NewTurret(cfg Config) *Turret {
	return &Turret{
		pos:        cfg.TurretPos(),
		limit:      cfg.TiltLimit,
		beamLength: cfg.BeamLength,
	}
}

// TiltClockwise turns the barrel one degree right, stopping at the limit.
func (t *Turret) TiltClockwise() {
	if t.angle < t.limit {
		t.angle++
	}
}

// TiltCounterclockwise turns the barrel one degree left, stopping at the limit.
func (t *Turret) TiltCounterclockwise() {
	if t.angle > -t.limit {
		t.angle--
	}
}

// SetFiring sets the firing state for this tick.
func (t *Turret) SetFiring(firing bool) {
	t.firing = firing
}

// Firing reports whether the beam is on.
func (t *Turret) Firing() bool { return t.firing }

// Angle returns the barrel angle in degrees.
func (t *Turret) Angle() int { return t.angle }

// Pos returns the pivot point of the turret.
func (t *Turret) Pos() Vec2 { return t.pos }

// FiringLine returns the beam from the pivot along the barrel. Only
// meaningful while Firing is true.
func (t *Turret) FiringLine() Segment {
	// Barrel angle 0 is up; subtracting 90 converts to the math angle
	// where 0 is +X, with +Y down on screen.
	rad := float64(t.angle-90) * math.Pi / 180
	dir := Vec2{X: t.beamLength * math.Cos(rad), Y: t.beamLength * math.Sin(rad)}
	return Segment{A: t.pos, B: t.pos.Add(dir)}
}

// aimAngleTo returns the barrel angle in (-180,180] degrees, not clamped,
// that points from the turret at p.
func (t *Turret) aimAngleTo(p Vec2) float64 {
	d := p.Sub(t.pos)
	a := math.Atan2(d.Y, d.X)*180/math.Pi + 90
	if a > 180 {
		a -= 360
	}
	return a
}
