package main

// button is a logical held button on the terminal front-end.
type button int

const (
	buttonLeft button = iota
	buttonRight
	buttonFire
	buttonCount
)

// heldKeys emulates held-key state from terminal key events. Terminals
// only report presses, repeated while a key is down after an initial delay.
// A lone press holds the button for tap ticks. A press arriving within gap
// ticks of the previous one is an auto-repeat and holds for repeat ticks,
// long enough to bridge the repeat interval.
type heldKeys struct {
	tap, repeat, gap int

	last  [buttonCount]int
	until [buttonCount]int
	seen  [buttonCount]bool
}

func newHeldKeys(tap, repeat, gap int) *heldKeys {
	return &heldKeys{tap: tap, repeat: repeat, gap: gap}
}

func (h *heldKeys) press(b button, tick int) {
	window := h.tap
	if h.seen[b] && tick-h.last[b] <= h.gap {
		window = h.repeat
	}
	h.last[b] = tick
	h.until[b] = tick + window
	h.seen[b] = true
}

func (h *heldKeys) held(b button, tick int) bool {
	return h.seen[b] && tick < h.until[b]
}

// release drops every button, used when focus or mode changes.
func (h *heldKeys) release() {
	h.seen = [buttonCount]bool{}
}
