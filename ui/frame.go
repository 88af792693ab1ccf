package ui

import (
	"image/color"

	"github.com/OpticalFlyer/trellis/geom"
)

var _ Widget = (*Frame)(nil)

var frameBackground = color.RGBA{40, 40, 40, 255}

// Frame is a grid-laid-out panel. It is the only container that paints a
// background, and it sizes its height to fit its children.
type Frame struct {
	*Container[*GridGeometry]
}

// NewFrame returns an empty frame. Only the width of dims is kept across the
// first refresh; the height comes from the children.
func NewFrame(g Graphics, label string, options Options, dims geom.Rect) *Frame {
	f := &Frame{}
	f.Container = NewContainer(g, label, options, dims, (*GridGeometry)(nil))
	f.Geo = NewGridGeometry(&f.props)
	return f
}

// Name returns "frame".
func (f *Frame) Name() string { return "frame" }

// Grid declares that the widgets added from now on form rows x cols blocks.
func (f *Frame) Grid(rows, cols int) {
	f.Geo.Add(f.Len(), rows, cols, 1)
}

// GridRepeat is Grid with an explicit repeat count, which is recorded but
// not acted on by the layout.
func (f *Frame) GridRepeat(rows, cols, repeatTill int) {
	f.Geo.Add(f.Len(), rows, cols, repeatTill)
}

// Draw paints the frame background and border, then the children.
func (f *Frame) Draw() {
	f.g.FillRect(f.dims, frameBackground)
	f.g.Rect(f.dims, f.props.Foreground)
	f.Container.Draw()
}
