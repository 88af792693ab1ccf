package ui

import "image/color"

var _ Widget = (*Label)(nil)

// Label shows a single run of text.
type Label struct {
	*WidgetBase
	text clipText
}

// NewLabel measures label and sizes the widget to it plus vertical padding.
// An empty label is shown as a single space.
func NewLabel(g Graphics, label string, options Options) *Label {
	l := &Label{WidgetBase: newWidgetBase(g, label, options)}
	l.text = newClipText(g, label, l.props.Foreground)
	size := l.text.natural
	size.H += 2 * l.props.Padding
	l.seed(size)
	return l
}

// Name returns "label".
func (l *Label) Name() string { return "label" }

// Draw paints the visible part of the text.
func (l *Label) Draw() {
	l.text.paint(l.g, color.White)
}

// Event ignores input; a label never needs a refresh from it.
func (l *Label) Event(Event) bool { return true }

// Update reports a pending refresh requested by SetLabel.
func (l *Label) Update() bool {
	return l.takeRefreshRequest()
}

// Refresh crops the text to the assigned width, unless OptNoClip is set, and
// aligns it by the configured content gravity.
func (l *Label) Refresh() {
	if !l.options.Has(OptNoClip) {
		l.text.overflowX(l.dims)
	}
	l.text.align(l.dims, l.props.ContentAlign, 0, 0)
}

// SetLabel replaces the text, re-measures it and realigns it.
func (l *Label) SetLabel(label string) {
	l.WidgetBase.SetLabel(label)
	l.text = newClipText(l.g, label, l.props.Foreground)
	l.Refresh()
}
