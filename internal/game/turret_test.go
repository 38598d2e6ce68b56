package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestTurret_StartsCentredAndIdle(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	if tr.Pos() != (Vec2{X: 400, Y: 550}) {
		t.Fatalf("expected pos (400,550), got %+v", tr.Pos())
	}
	if tr.Angle() != 0 || tr.Firing() {
		t.Fatalf("expected angle 0 not firing, got angle=%d firing=%v", tr.Angle(), tr.Firing())
	}
}

func TestTurret_TiltClampsAtLimits(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	for i := 0; i < 200; i++ {
		tr.TiltClockwise()
	}
	if tr.Angle() != 90 {
		t.Fatalf("200 clockwise tilts from 0 should stop at 90, got %d", tr.Angle())
	}
	for i := 0; i < 400; i++ {
		tr.TiltCounterclockwise()
		if tr.Angle() < -90 || tr.Angle() > 90 {
			t.Fatalf("angle left range: %d", tr.Angle())
		}
	}
	if tr.Angle() != -90 {
		t.Fatalf("expected -90, got %d", tr.Angle())
	}
}

func TestTurret_SetFiringHasNoHysteresis(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	tr.SetFiring(true)
	tr.SetFiring(true)
	tr.SetFiring(false)
	if tr.Firing() {
		t.Fatal("expected firing=false after SetFiring(false)")
	}
}

func TestTurret_FiringLineStraightUp(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	line := tr.FiringLine()
	if line.A != tr.Pos() {
		t.Fatalf("beam should start at the pivot, got %+v", line.A)
	}
	d := line.B.Sub(line.A)
	if math.Abs(d.X) > eps || math.Abs(d.Y+1000) > eps {
		t.Fatalf("angle 0 should point straight up 1000px, got %+v", d)
	}
}

func TestTurret_FiringLineAtNinety(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	for i := 0; i < 90; i++ {
		tr.TiltClockwise()
	}
	d := tr.FiringLine().B.Sub(tr.Pos())
	if math.Abs(d.X-1000) > eps || math.Abs(d.Y) > eps {
		t.Fatalf("angle 90 should point right, got %+v", d)
	}
}

func TestTurret_FiringLineMirrorSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	for _, a := range []int{1, 17, 45, 73, 90} {
		pos, neg := NewTurret(cfg), NewTurret(cfg)
		for i := 0; i < a; i++ {
			pos.TiltClockwise()
			neg.TiltCounterclockwise()
		}
		dp := pos.FiringLine().B.Sub(pos.Pos())
		dn := neg.FiringLine().B.Sub(neg.Pos())
		if math.Abs(dp.X+dn.X) > eps || math.Abs(dp.Y-dn.Y) > eps {
			t.Fatalf("angle ±%d not mirrored: +%+v -%+v", a, dp, dn)
		}
		if math.Abs(dp.Norm()-1000) > 1e-6 {
			t.Fatalf("beam length %.6f, want 1000", dp.Norm())
		}
	}
}

func TestTurret_AimAngleTo(t *testing.T) {
	tr := NewTurret(DefaultConfig())
	if a := tr.aimAngleTo(Vec2{X: 400, Y: 100}); math.Abs(a) > eps {
		t.Fatalf("point straight above should need angle 0, got %v", a)
	}
	if a := tr.aimAngleTo(Vec2{X: 700, Y: 550}); math.Abs(a-90) > eps {
		t.Fatalf("point to the right should need angle 90, got %v", a)
	}
	if a := tr.aimAngleTo(Vec2{X: 100, Y: 550}); math.Abs(a+90) > eps {
		t.Fatalf("point to the left should need angle -90, got %v", a)
	}
}
