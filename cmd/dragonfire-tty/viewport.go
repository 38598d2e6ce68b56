package main

import (
	"math"

	"github.com/Garsondee/DragonFire/internal/game"
)

// viewport maps playfield pixels onto a cols×rows grid of terminal cells.
type viewport struct {
	cols, rows    int
	width, height float64
}

// cell returns the cell containing p, and false when p is off the grid.
func (v viewport) cell(p game.Vec2) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= v.width || p.Y >= v.height {
		return 0, 0, false
	}
	x := int(p.X / v.width * float64(v.cols))
	y := int(p.Y / v.height * float64(v.rows))
	return x, y, true
}

// segmentCells lists the distinct on-grid cells crossed by s, from A to B.
func (v viewport) segmentCells(s game.Segment) [][2]int {
	// Sample at half-cell spacing along the longer axis.
	stepPx := math.Min(v.width/float64(v.cols), v.height/float64(v.rows)) / 2
	n := int(s.B.Sub(s.A).Norm()/stepPx) + 1

	var out [][2]int
	seen := map[[2]int]bool{}
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		p := game.Vec2{X: s.A.X + (s.B.X-s.A.X)*f, Y: s.A.Y + (s.B.Y-s.A.Y)*f}
		x, y, ok := v.cell(p)
		if !ok {
			continue
		}
		c := [2]int{x, y}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
