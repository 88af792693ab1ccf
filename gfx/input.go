package gfx

import "github.com/OpticalFlyer/trellis/ui"

// PointerState is the pointer as seen during one tick.
type PointerState struct {
	X, Y int
	// JustPressed and JustReleased mark the button edges of this tick. A
	// tap shorter than a tick sets both.
	JustPressed  bool
	JustReleased bool
}

// Input turns per-tick pointer state into discrete pointer events.
type Input struct {
	pointer pointer

	x, y   int
	down   bool
	seen   bool
	events []ui.Event
}

// Poll reads this tick's mouse and touch input from ebiten and returns the
// events it implies. The returned slice is reused by the next call.
func (in *Input) Poll() []ui.Event {
	return in.Feed(in.pointer.state())
}

// Feed returns the events implied by s: a move when the position changed,
// then a down and an up for the button edges. The returned slice is reused by
// the next call.
func (in *Input) Feed(s PointerState) []ui.Event {
	in.events = in.events[:0]

	if !in.seen || s.X != in.x || s.Y != in.y {
		in.events = append(in.events, ui.Event{Kind: ui.EventPointerMove, X: s.X, Y: s.Y})
	}
	if s.JustPressed {
		in.events = append(in.events, ui.Event{Kind: ui.EventPointerDown, X: s.X, Y: s.Y})
		in.down = true
	}
	if s.JustReleased && (in.down || s.JustPressed) {
		in.events = append(in.events, ui.Event{Kind: ui.EventPointerUp, X: s.X, Y: s.Y})
		in.down = false
	}

	in.x, in.y, in.seen = s.X, s.Y, true
	return in.events
}

// Pressed reports whether the pointer is held down.
func (in *Input) Pressed() bool {
	return in.down
}
