package game

import (
	"errors"
	"fmt"
)

// Config holds the fixed parameters of one play session. It is passed by
// value and never mutated after construction.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	TPS          int // simulation ticks per second

	SpawnChance   float64 // per-tick probability of a new drone
	InitialDrones int

	BeamLength  float64
	BeamDamage  float64 // health removed per hit tick
	TiltLimit   int     // |angle| never exceeds this, in degrees
	TurretInset float64 // turret distance above the bottom edge

	// Drone box size; cmd/game overrides these from the decoded sprite.
	DroneWidth  float64
	DroneHeight float64

	// ClearFlashWhenIdle resets every drone's hit flash on ticks the
	// turret is not firing. With false the flash from the last firing
	// tick stays on until the next firing tick.
	ClearFlashWhenIdle bool
}

// DefaultConfig returns the 800x600, 60 Hz configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:        800,
		ScreenHeight:       600,
		TPS:                60,
		SpawnChance:        0.01,
		InitialDrones:      1,
		BeamLength:         1000,
		BeamDamage:         0.1,
		TiltLimit:          90,
		TurretInset:        50,
		DroneWidth:         40,
		DroneHeight:        24,
		ClearFlashWhenIdle: true,
	}
}

var errBadConfig = errors.New("invalid config")

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", errBadConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", errBadConfig, c.TPS)
	case c.SpawnChance < 0 || c.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %v outside [0,1]", errBadConfig, c.SpawnChance)
	case c.InitialDrones < 0:
		return fmt.Errorf("%w: initial drones %d", errBadConfig, c.InitialDrones)
	case c.BeamLength <= 0:
		return fmt.Errorf("%w: beam length %v", errBadConfig, c.BeamLength)
	case c.BeamDamage <= 0:
		return fmt.Errorf("%w: beam damage %v", errBadConfig, c.BeamDamage)
	case c.TurretInset < 0 || c.TurretInset > float64(c.ScreenHeight):
		return fmt.Errorf("%w: turret inset %v outside [0,%d]", errBadConfig, c.TurretInset, c.ScreenHeight)
	case c.TiltLimit < 0 || c.TiltLimit > 180:
		return fmt.Errorf("%w: tilt limit %d", errBadConfig, c.TiltLimit)
	case c.DroneWidth <= 0 || c.DroneHeight <= 0:
		return fmt.Errorf("%w: drone size %vx%v", errBadConfig, c.DroneWidth, c.DroneHeight)
	}
	return nil
}

// TurretPos is the fixed turret point: horizontal centre, TurretInset above
// the bottom edge.
func (c Config) TurretPos() Vec2 {
	return Vec2{X: float64(c.ScreenWidth / 2), Y: float64(c.ScreenHeight) - c.TurretInset}
}
