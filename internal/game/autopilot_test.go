package game

import "testing"

func TestAutopilot_IdleWithNoDrones(t *testing.T) {
	ts := NewTestSim(WithoutInitialDrones(), WithSpawnChance(0))
	if in := NewAutopilot().Decide(ts.Sim); in != (Input{}) {
		t.Fatalf("expected no input on an empty playfield, got %+v", in)
	}
}

func TestAutopilot_TargetsLowestDrone(t *testing.T) {
	ts := NewTestSim(
		WithoutInitialDrones(),
		WithSpawnChance(0),
		WithDrone(100, 50, 0, 0),
		WithDrone(600, 300, 0, 0),
		WithDrone(300, 200, 0, 0),
	)
	if d := NewAutopilot().Target(ts.Sim.Drones()); d == nil || d.ID() != 1 {
		t.Fatalf("expected drone 1 (lowest), got %+v", d)
	}
}

func TestAutopilot_TurnsTowardTarget(t *testing.T) {
	right := NewTestSim(WithoutInitialDrones(), WithSpawnChance(0), WithDrone(650, 200, 0, 0))
	in := NewAutopilot().Decide(right.Sim)
	if !in.Right || in.Left || in.Fire {
		t.Fatalf("expected tilt right without firing, got %+v", in)
	}

	left := NewTestSim(WithoutInitialDrones(), WithSpawnChance(0), WithDrone(100, 200, 0, 0))
	in = NewAutopilot().Decide(left.Sim)
	if !in.Left || in.Right || in.Fire {
		t.Fatalf("expected tilt left without firing, got %+v", in)
	}
}

func TestAutopilot_FiresWhenOnTarget(t *testing.T) {
	ts := NewTestSim(WithoutInitialDrones(), WithSpawnChance(0), WithDrone(380, 100, 0, 0))
	in := NewAutopilot().Decide(ts.Sim)
	if !in.Fire || in.Left || in.Right {
		t.Fatalf("expected fire without tilting, got %+v", in)
	}
}

func TestAutopilot_ClampsUnreachableAim(t *testing.T) {
	// Centre below the turret on the far right needs more than 90°.
	ts := NewTestSim(WithoutInitialDrones(), WithSpawnChance(0), WithTurretAngle(90), WithDrone(700, 560, 0, 0))
	in := NewAutopilot().Decide(ts.Sim)
	if in.Right || in.Left {
		t.Fatalf("at the limit the autopilot should hold, got %+v", in)
	}
}
