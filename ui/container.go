package ui

import "github.com/OpticalFlyer/trellis/geom"

// Container is a widget that owns a list of children and lays them out with
// a geometry strategy of type G.
type Container[G Geometry] struct {
	*WidgetBase
	widgets WidgetList

	// Geo is the layout strategy. Its Add calls declare the shape of the
	// widgets added after them; see Frame.Grid and TopLevel.Gravity.
	Geo G
}

// NewContainer returns an empty container occupying dims.
func NewContainer[G Geometry](g Graphics, label string, options Options, dims geom.Rect, geo G) *Container[G] {
	c := &Container[G]{
		WidgetBase: newWidgetBase(g, label, options),
		Geo:        geo,
	}
	c.dims = dims
	return c
}

// Parent is anything that can own a child widget: every Container, Frame
// and TopLevel.
type Parent interface {
	appendChild(w Widget)
}

// Add appends w to p and returns it. Children are held by pointer, so the
// returned widget stays valid for the lifetime of p.
func Add[W Widget](p Parent, w W) W {
	p.appendChild(w)
	return w
}

func (c *Container[G]) appendChild(w Widget) {
	c.widgets = append(c.widgets, w)
}

// Name returns "container".
func (c *Container[G]) Name() string { return "container" }

// Len returns the number of children.
func (c *Container[G]) Len() int { return len(c.widgets) }

// Children returns the children in insertion order.
func (c *Container[G]) Children() WidgetList { return c.widgets }

// AddLabel appends a new Label.
func (c *Container[G]) AddLabel(label string, options Options) *Label {
	return Add(c, NewLabel(c.g, label, options))
}

// AddButton appends a new Button.
func (c *Container[G]) AddButton(label string, options Options) *Button {
	return Add(c, NewButton(c.g, label, options))
}

// AddFrame appends a new nested Frame of the given size. The frame's height
// is recomputed from its children on the first refresh.
func (c *Container[G]) AddFrame(label string, options Options, dims geom.Rect) *Frame {
	return Add(c, NewFrame(c.g, label, options, dims))
}

// Draw draws the shown children in insertion order, so later siblings are
// painted on top.
func (c *Container[G]) Draw() {
	for _, w := range c.widgets {
		if w.Shown() {
			w.Draw()
		}
	}
}

// Event passes ev to every shown child and refreshes the whole subtree if
// any child asked for it. Every child sees the event.
func (c *Container[G]) Event(ev Event) bool {
	noRefresh := true
	for _, w := range c.widgets {
		if w.Shown() {
			noRefresh = w.Event(ev) && noRefresh
		}
	}
	if !noRefresh {
		c.Refresh()
		return false
	}
	return true
}

// Update has the same contract as Event.
func (c *Container[G]) Update() bool {
	noRefresh := c.takeRefreshRequest()
	for _, w := range c.widgets {
		if w.Shown() {
			noRefresh = w.Update() && noRefresh
		}
	}
	if !noRefresh {
		c.Refresh()
		return false
	}
	return true
}

// Refresh lays out the children inside the container's rectangle and then
// refreshes each of them. When the layout gives the container a new size it
// requests a refresh, so the parent re-lays out around it on the next Update.
func (c *Container[G]) Refresh() {
	prev := c.Geo.ContainerDim()
	c.dims = c.Geo.UpdateContainerDim(c.widgets, c.dims)
	if !prev.SameSize(c.dims) {
		c.RequestRefresh()
	}
	logger.Debug("refresh", "container", c.label, "dims", c.dims)
	for _, w := range c.widgets {
		w.Refresh()
	}
}

// Resize moves the container to dims and refreshes it.
func (c *Container[G]) Resize(dims geom.Rect) {
	c.dims = dims
	c.Refresh()
}
