package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Garsondee/DragonFire/internal/game"
	"github.com/gdamore/tcell/v2"
)

// A tap moves the turret one step. Auto-repeat presses (typically every
// ~30ms after a ~0.35s delay) hold the button for a few ticks each, so a
// held key reads as down from the first repeat on.
const (
	tapTicks    = 1
	repeatTicks = 6
	repeatGap   = 40
)

var (
	styleDrone  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHit    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTurret = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBeam   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type ttyGame struct {
	screen tcell.Screen
	sim    *game.Simulation
	stats  game.SessionStats
	keys   *heldKeys

	autopilot *game.Autopilot
	autoplay  bool
}

func newTTYGame(cfg game.Config, seed int64) (*ttyGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	g := &ttyGame{
		screen:    screen,
		keys:      newHeldKeys(tapTicks, repeatTicks, repeatGap),
		autopilot: game.NewAutopilot(),
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	sim, err := game.NewSimulation(cfg, rng, &g.stats)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	g.sim = sim
	return g, nil
}

// handleInput records presses; it returns false on quit.
func (g *ttyGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		tick := g.sim.Tick()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.keys.press(buttonLeft, tick)
		case tcell.KeyRight:
			g.keys.press(buttonRight, tick)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.keys.press(buttonFire, tick)
			case 'a':
				g.autoplay = !g.autoplay
				g.keys.release()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *ttyGame) input() game.Input {
	if g.autoplay {
		return g.autopilot.Decide(g.sim)
	}
	tick := g.sim.Tick()
	return game.Input{
		Left:  g.keys.held(buttonLeft, tick),
		Right: g.keys.held(buttonRight, tick),
		Fire:  g.keys.held(buttonFire, tick),
	}
}

func (g *ttyGame) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.sim.Step(g.input())
			g.draw()
		}
	}
}

func (g *ttyGame) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	field := rows - 1 // last row is the status line
	if cols <= 0 || field <= 0 {
		return
	}
	cfg := g.sim.Config()
	v := viewport{cols: cols, rows: field, width: float64(cfg.ScreenWidth), height: float64(cfg.ScreenHeight)}

	t := g.sim.Turret()
	if t.Firing() {
		for _, c := range v.segmentCells(t.FiringLine()) {
			g.screen.SetContent(c[0], c[1], '·', nil, styleBeam)
		}
	}
	for _, d := range g.sim.Drones() {
		x, y, ok := v.cell(d.Bounds().Center())
		if !ok {
			continue
		}
		style := styleDrone
		if d.BeingHit() {
			style = styleHit
		}
		g.screen.SetContent(x, y, 'V', nil, style)
	}
	if x, y, ok := v.cell(t.Pos()); ok {
		g.screen.SetContent(x, y, '^', nil, styleTurret)
	}

	mode := ""
	if g.autoplay {
		mode = " [AUTO]"
	}
	status := fmt.Sprintf(" angle %+3d  live %d  destroyed %d  escaped %d%s  <- -> aim  SPACE fire  a auto  q quit ",
		t.Angle(), len(g.sim.Drones()), g.stats.Destroyed, g.stats.Escaped, mode)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		g.screen.SetContent(i, rows-1, r, nil, styleStatus)
	}
	g.screen.Show()
}

func main() {
	cfg := game.DefaultConfig()
	g, err := newTTYGame(cfg, time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}
	g.run(cfg.TPS)
	g.screen.Fini()
}
