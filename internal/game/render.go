package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const beamWidth = 5

var (
	backgroundColor = color.RGBA{A: 255}
	beamColor       = color.RGBA{R: 255, A: 255}
)

// drawPlayfield clears the playfield and draws drones, then the turret and
// its beam on top.
func (g *Game) drawPlayfield(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.cfg.ScreenWidth), float32(g.cfg.ScreenHeight), backgroundColor, false)

	for _, d := range g.sim.Drones() {
		img := g.sprites.Drone
		if d.BeingHit() {
			img = g.sprites.DroneFlash
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(d.Bounds().X.Lo, d.Bounds().Y.Lo)
		screen.DrawImage(img, op)
	}

	t := g.sim.Turret()
	img := g.sprites.Turret
	if t.Firing() {
		img = g.sprites.TurretFiring
	}
	// Rotate about the sprite centre, then place the centre on the pivot.
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(float64(t.Angle()) * math.Pi / 180)
	op.GeoM.Translate(t.Pos().X, t.Pos().Y)
	screen.DrawImage(img, op)

	if t.Firing() {
		beam := t.FiringLine()
		vector.StrokeLine(screen,
			float32(beam.A.X), float32(beam.A.Y), float32(beam.B.X), float32(beam.B.Y),
			beamWidth, beamColor, true)
	}
}

// drawHUD prints the counters top-left and the key legend bottom-left.
func (g *Game) drawHUD(screen *ebiten.Image) {
	mode := ""
	if g.autoplay {
		mode = "  [AUTO]"
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("angle %+3d  live %d  destroyed %d  escaped %d%s",
			g.sim.Turret().Angle(), len(g.sim.Drones()), g.stats.Destroyed, g.stats.Escaped, mode),
		6, 4)
	ebitenutil.DebugPrintAt(screen,
		"<- -> aim  SPACE fire  TAB autopilot  L log  F2 copy report  ESC quit",
		6, g.cfg.ScreenHeight-18)

	if g.status != "" && g.sim.Tick() < g.statusUntil {
		ebitenutil.DebugPrintAt(screen, g.status, 6, 20)
	}
}
