package game

import "github.com/hajimehoshi/ebiten/v2"

// Input is the logical button state for one tick.
type Input struct {
	Left  bool // held: tilt counterclockwise
	Right bool // held: tilt clockwise
	Fire  bool // held: beam on
	Quit  bool

	// Edge-triggered extras, true only on the tick the key went down.
	ToggleAutopilot bool
	CopyReport      bool
	TogglePanel     bool
}

// keyPoller turns Ebiten key state into Input. Held buttons are read
// directly; toggles fire once per press.
type keyPoller struct {
	prevKeys map[ebiten.Key]bool
}

func newKeyPoller() *keyPoller {
	return &keyPoller{prevKeys: make(map[ebiten.Key]bool)}
}

func (kp *keyPoller) poll() Input {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !kp.prevKeys[k]
	}

	in := Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Quit:  ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ),
	}
	in.ToggleAutopilot = pressed(ebiten.KeyTab)
	in.CopyReport = pressed(ebiten.KeyF2)
	in.TogglePanel = pressed(ebiten.KeyL)

	kp.prevKeys = currentKeys
	return in
}
