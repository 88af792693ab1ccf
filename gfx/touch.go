package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer merges mouse and touch input into a single pointer. The first
// finger down drives the pointer until it lifts; its release is reported at
// the position of the previous tick so a tap still lands on the widget under
// it.
type pointer struct {
	touches  []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
}

func (p *pointer) state() PointerState {
	if !p.touching {
		p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
		if len(p.touches) > 0 {
			p.touchID = p.touches[0]
			p.touching = true
			x, y := ebiten.TouchPosition(p.touchID)
			return PointerState{X: x, Y: y, JustPressed: true}
		}
	}

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(p.touchID)
			return PointerState{X: x, Y: y, JustReleased: true}
		}
		x, y := ebiten.TouchPosition(p.touchID)
		return PointerState{X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
