package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// statusTicks is how long a HUD status message stays up (~2s at 60TPS).
const statusTicks = 120

// Game adapts a Simulation to ebiten.Game: Update polls keys and steps the
// simulation, Draw renders it.
type Game struct {
	cfg     Config
	sim     *Simulation
	sprites *Sprites
	keys    *keyPoller

	autopilot *Autopilot
	autoplay  bool // Tab: attract mode, the autopilot holds the controls

	events    *EventLog
	stats     SessionStats
	showPanel bool

	status      string
	statusUntil int
}

// New builds a game around a fresh simulation seeded with seed.
func New(cfg Config, sprites *Sprites, seed int64) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		sprites:   sprites,
		keys:      newKeyPoller(),
		autopilot: NewAutopilot(),
		events:    NewEventLog(),
		showPanel: true,
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	sim, err := NewSimulation(cfg, rng, g.events, &g.stats)
	if err != nil {
		return nil, err
	}
	g.sim = sim
	return g, nil
}

// WindowSize is the outer size to request from Ebiten.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

func (g *Game) Update() error {
	in := g.keys.poll()
	if in.Quit {
		return ebiten.Termination
	}

	if in.ToggleAutopilot {
		g.autoplay = !g.autoplay
		if g.autoplay {
			g.setStatus("autopilot on")
		} else {
			g.setStatus("autopilot off")
		}
	}
	if in.TogglePanel {
		g.showPanel = !g.showPanel
		ebiten.SetWindowSize(g.WindowSize())
	}
	if in.CopyReport {
		g.copyReport()
	}

	if g.autoplay {
		in = g.autopilot.Decide(g.sim)
	}
	g.sim.Step(in)
	return nil
}

func (g *Game) copyReport() {
	if err := copyToClipboard(sessionReport(g.sim, g.stats)); err != nil {
		log.Printf("report: %v", err)
		g.setStatus("report copy failed")
		return
	}
	g.setStatus(fmt.Sprintf("report for tick %d copied", g.sim.Tick()))
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.sim.Tick() + statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawPlayfield(screen)
	g.drawHUD(screen)
	if g.showPanel {
		g.events.Draw(screen, g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	w := g.cfg.ScreenWidth
	if g.showPanel {
		w += logPanelWidth
	}
	return w, g.cfg.ScreenHeight
}
