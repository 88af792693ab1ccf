package ui

import (
	"image/color"

	"github.com/OpticalFlyer/trellis/geom"
)

var _ Widget = (*Button)(nil)

// ButtonState is the pointer interaction state of a Button.
type ButtonState int

const (
	StateNormal ButtonState = iota
	StateActive
	StateDown
	// StateChanged and StateDisabled are declared for widgets that need
	// them; Button never enters either.
	StateChanged
	StateDisabled
)

// String returns the lower-case state name.
func (s ButtonState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateActive:
		return "active"
	case StateDown:
		return "down"
	case StateChanged:
		return "changed"
	case StateDisabled:
		return "disabled"
	}
	return "unknown"
}

var activeFill = color.RGBA{128, 128, 128, 255}

// Button is a clickable label. A click is a press and a release that both
// land inside the button.
type Button struct {
	*WidgetBase
	text    clipText
	state   ButtonState
	clicked bool
	onClick func()
}

// NewButton measures label and sizes the button to it plus vertical padding.
func NewButton(g Graphics, label string, options Options) *Button {
	b := &Button{WidgetBase: newWidgetBase(g, label, options)}
	b.text = newClipText(g, label, b.props.Foreground)
	size := b.text.natural
	size.H += 2 * b.props.Padding
	b.seed(size)
	return b
}

// Name returns "button".
func (b *Button) Name() string { return "button" }

// State returns the current interaction state.
func (b *Button) State() ButtonState { return b.state }

// OnClick registers fn to run on every click, alongside the Clicked flag.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// Clicked reports whether the previous Event completed a click. It is true
// for exactly one Event call per click.
func (b *Button) Clicked() bool { return b.clicked }

// IsDown is the historical name of Clicked.
func (b *Button) IsDown() bool { return b.clicked }

// Draw paints the button in the style of its current state.
func (b *Button) Draw() {
	switch b.state {
	case StateActive:
		b.g.FillRect(b.dims, activeFill)
		b.g.Rect(b.dims, b.props.Foreground)
		b.text.paint(b.g, color.White)
	case StateDown:
		b.g.FillRect(b.dims, b.props.Foreground)
		b.text.dest.Y++
		b.text.paint(b.g, color.Black)
		b.text.dest.Y--
	default:
		b.g.Rect(b.dims, b.props.Foreground)
		b.text.paint(b.g, color.White)
	}
}

// Event drives the interaction state. Moving the pointer while pressed
// keeps the button down wherever the pointer goes.
func (b *Button) Event(ev Event) bool {
	b.clicked = false

	inside := geom.PointInRect(ev.X, ev.Y, b.dims)
	switch ev.Kind {
	case EventPointerMove:
		if b.state == StateDown {
			break
		}
		if inside {
			b.state = StateActive
		} else {
			b.state = StateNormal
		}

	case EventPointerDown:
		if inside {
			b.state = StateDown
		}

	case EventPointerUp:
		switch {
		case inside && b.state == StateDown:
			b.state = StateActive
			b.clicked = true
			logger.Debug("click", "button", b.label)
			if b.onClick != nil {
				b.onClick()
			}
		case inside:
			b.state = StateActive
		default:
			b.state = StateNormal
		}
	}
	return true
}

// Update reports a pending refresh requested by SetLabel.
func (b *Button) Update() bool {
	return b.takeRefreshRequest()
}

// Refresh crops the text to the assigned width, unless OptNoClip is set,
// and aligns it inside the padding.
func (b *Button) Refresh() {
	if !b.options.Has(OptNoClip) {
		b.text.overflowX(b.dims)
	}
	b.text.align(b.dims, b.props.ContentAlign, b.props.Padding, b.props.Padding)
}

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	b.WidgetBase.SetLabel(label)
	b.text = newClipText(b.g, label, b.props.Foreground)
	b.Refresh()
}
