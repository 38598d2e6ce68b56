package game

import "math"

// Autopilot plays the turret on its own: it tracks the drone nearest the
// bottom edge and holds fire while the barrel is on it. Used by the
// headless runner and the in-window attract mode.
type Autopilot struct {
	Tolerance float64 // degrees of aim error that still counts as on target
}

// NewAutopilot returns an autopilot with a one-degree tolerance.
func NewAutopilot() *Autopilot {
	return &Autopilot{Tolerance: 1}
}

// Target returns the live drone closest to escaping through the bottom,
// or nil when the playfield is empty.
func (a *Autopilot) Target(drones []*Drone) *Drone {
	var best *Drone
	for _, d := range drones {
		if best == nil || d.bounds.Y.Hi > best.bounds.Y.Hi {
			best = d
		}
	}
	return best
}

// Decide returns the input for the coming tick.
func (a *Autopilot) Decide(s *Simulation) Input {
	target := a.Target(s.Drones())
	if target == nil {
		return Input{}
	}
	t := s.Turret()
	limit := float64(s.Config().TiltLimit)
	want := math.Max(-limit, math.Min(limit, t.aimAngleTo(target.bounds.Center())))
	diff := want - float64(t.Angle())

	var in Input
	switch {
	case diff > a.Tolerance:
		in.Right = true
	case diff < -a.Tolerance:
		in.Left = true
	}
	in.Fire = math.Abs(diff) <= a.Tolerance || SegmentIntersectsRect(t.FiringLine(), target.bounds)
	return in
}
