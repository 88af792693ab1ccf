package ui

import "github.com/OpticalFlyer/trellis/geom"

var _ Widget = (*TopLevel)(nil)

// TopLevel is the root of a widget tree. It lays out its children by gravity
// against the whole window and follows window resizes.
type TopLevel struct {
	*Container[*RelativeGeometry]
}

// NewTopLevel returns an empty root occupying dims, usually the window.
func NewTopLevel(g Graphics, label string, options Options, dims geom.Rect) *TopLevel {
	return &TopLevel{
		Container: NewContainer(g, label, options, dims, NewRelativeGeometry()),
	}
}

// Name returns "toplevel".
func (t *TopLevel) Name() string { return "toplevel" }

// Gravity pins the next widget added to anchor g.
func (t *TopLevel) Gravity(g geom.Gravity, hpad, vpad int) {
	t.Geo.Add(t.Len(), g, hpad, vpad)
}

// Event lays the tree out for the new window size before any child sees a
// resize event.
func (t *TopLevel) Event(ev Event) bool {
	if ev.Kind == EventWindowResize {
		t.dims = geom.Rect{W: ev.Width, H: ev.Height}
		t.Refresh()
	}
	return t.Container.Event(ev)
}
