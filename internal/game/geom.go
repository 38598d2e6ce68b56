package game

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Vec2 is a screen-space point or offset. +Y points down.
type Vec2 = r2.Point

// Rect is an axis-aligned box in screen space. X spans left..right and Y
// spans top..bottom.
type Rect = r2.Rect

// RectAt returns a w×h box whose top-left corner is p.
func RectAt(p Vec2, w, h float64) Rect {
	return r2.RectFromPoints(p, p.Add(Vec2{X: w, Y: h}))
}

// translateRect moves both edges of each axis by d; the size never changes.
func translateRect(r Rect, d Vec2) Rect {
	return Rect{
		X: r1.Interval{Lo: r.X.Lo + d.X, Hi: r.X.Hi + d.X},
		Y: r1.Interval{Lo: r.Y.Lo + d.Y, Hi: r.Y.Hi + d.Y},
	}
}

// playfield is the closed [0,w]×[0,h] screen box.
func playfield(w, h float64) Rect {
	return Rect{X: r1.Interval{Lo: 0, Hi: w}, Y: r1.Interval{Lo: 0, Hi: h}}
}

// Segment is a line segment from A to B.
type Segment struct {
	A, B Vec2
}

// segmentHitT returns the first segment parameter t in [0,1] where the
// segment A->B enters r. The bool is false when no hit exists. Touching an
// edge or corner counts as a hit.
func segmentHitT(s Segment, r Rect) (float64, bool) {
	d := s.B.Sub(s.A)
	tMin := 0.0
	tMax := 1.0

	for _, axis := range [2]struct {
		origin, delta float64
		span          r1.Interval
	}{
		{s.A.X, d.X, r.X},
		{s.A.Y, d.Y, r.Y},
	} {
		if math.Abs(axis.delta) < 1e-12 {
			if !axis.span.Contains(axis.origin) {
				return 0, false
			}
			continue
		}
		invD := 1.0 / axis.delta
		t1 := (axis.span.Lo - axis.origin) * invD
		t2 := (axis.span.Hi - axis.origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

// SegmentIntersectsRect reports whether s touches or crosses r.
func SegmentIntersectsRect(s Segment, r Rect) bool {
	_, hit := segmentHitT(s, r)
	return hit
}
