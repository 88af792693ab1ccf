package ui

import "github.com/OpticalFlyer/trellis/geom"

// Widget is a node of the UI tree. Leaf kinds and containers all embed
// *WidgetBase, which is the only way to satisfy the interface.
type Widget interface {
	// Draw issues the widget's drawing calls.
	Draw()
	// Event processes one input event. It returns false when the caller
	// must recompute this widget's layout.
	Event(ev Event) bool
	// Update advances the widget by one frame, with the same return
	// contract as Event.
	Update() bool
	// Refresh recomputes presentation state for the rectangle the parent
	// last assigned.
	Refresh()

	// Clicked reports whether a click completed since the previous Event.
	Clicked() bool
	// Changed reports whether the widget's value changed since the
	// previous Event.
	Changed() bool
	Name() string

	Dims() geom.Rect
	Shown() bool
	Label() string
	SetLabel(label string)

	base() *WidgetBase
}

// WidgetList is the ordered, owning list of a container's children.
type WidgetList []Widget

// WidgetBase holds the state shared by every widget.
type WidgetBase struct {
	g       Graphics
	label   string
	options Options

	// dims is the widget's ideal rectangle. It is seeded by the widget's
	// constructor and afterwards written only by the parent's geometry.
	dims      geom.Rect
	props     Properties
	hidden    bool
	noRefresh bool
}

func newWidgetBase(g Graphics, label string, options Options) *WidgetBase {
	return &WidgetBase{
		g:         g,
		label:     label,
		options:   options,
		props:     DefaultProperties(),
		noRefresh: true,
	}
}

func (w *WidgetBase) base() *WidgetBase { return w }

// Dims returns the rectangle last assigned to the widget.
func (w *WidgetBase) Dims() geom.Rect { return w.dims }

// Label returns the widget's display label.
func (w *WidgetBase) Label() string { return w.label }

// Options returns the widget's flag set.
func (w *WidgetBase) Options() Options { return w.options }

// Properties returns the widget's mutable style block.
func (w *WidgetBase) Properties() *Properties {
	w.options |= OptPropsSet
	return &w.props
}

// Shown reports whether the widget is drawn and receives input.
func (w *WidgetBase) Shown() bool { return !w.hidden }

// Show makes a hidden widget visible again.
func (w *WidgetBase) Show() { w.hidden = false }

// Hide stops the widget from drawing and receiving input. It keeps its
// place in the parent's layout.
func (w *WidgetBase) Hide() { w.hidden = true }

// Clicked is false for widgets that cannot be clicked.
func (w *WidgetBase) Clicked() bool { return false }

// Changed is false for widgets that hold no value.
func (w *WidgetBase) Changed() bool { return false }

// SetLabel replaces the display label and marks the widget for refresh.
func (w *WidgetBase) SetLabel(label string) {
	w.label = label
	w.RequestRefresh()
}

// RequestRefresh asks the parent to re-lay out on the next Update.
func (w *WidgetBase) RequestRefresh() {
	w.noRefresh = false
}

// takeRefreshRequest returns true when no refresh was requested and clears
// any pending request.
func (w *WidgetBase) takeRefreshRequest() bool {
	ok := w.noRefresh
	w.noRefresh = true
	return ok
}

// seed sets the widget's initial size from its content, within the
// configured bounds.
func (w *WidgetBase) seed(s geom.Size) {
	s = s.Clamp(w.props.MinSize, w.props.MaxSize)
	w.dims.W, w.dims.H = s.W, s.H
}

// displayText replaces empty content with a single space so it still
// measures to a non-zero size.
func displayText(s string) string {
	if s == "" {
		return " "
	}
	return s
}
