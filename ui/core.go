package ui

import (
	"image/color"

	"github.com/OpticalFlyer/trellis/geom"
)

const (
	DefaultPadding   = 3
	DefaultMargin    = 5
	DefaultMinWidth  = 30
	DefaultMinHeight = 30
)

// Options is a widget's flag set. The low 24 bits belong to the widget
// itself, the high 8 bits to whatever geometry lays out its parent.
type Options uint32

const (
	optSelfBits = 24
	parentMask  = Options(0xff) << optSelfBits
)

const (
	// OptPropsSet marks a widget whose properties were set by the caller.
	OptPropsSet = Options(1 << 0)

	// OptNoClip keeps content at its natural size even if it overflows.
	OptNoClip = Options(1 << (optSelfBits + 0))
	// OptStretch and OptFixed are reserved for the parent geometry.
	OptStretch = Options(1 << (optSelfBits + 1))
	OptFixed   = Options(1 << (optSelfBits + 2))
)

// Has reports whether every bit of flag is set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// Self returns the widget-owned bits.
func (o Options) Self() Options {
	return o &^ parentMask
}

// Parent returns the bits reserved for the parent geometry.
func (o Options) Parent() Options {
	return o & parentMask
}

// Properties is the per-widget style block. Geometry strategies read only
// Padding and Margin.
type Properties struct {
	Tooltip      string
	ContentAlign geom.Gravity
	MinSize      geom.Size
	MaxSize      geom.Size
	Background   color.RGBA
	Foreground   color.RGBA
	Padding      int
	Margin       int
	Scale        int
}

var (
	widgetPadding = DefaultPadding
	widgetMargin  = DefaultMargin
)

// SetSpacing changes the padding and margin of widgets created afterwards.
func SetSpacing(padding, margin int) {
	widgetPadding, widgetMargin = padding, margin
}

// DefaultProperties returns the properties every widget starts with.
func DefaultProperties() Properties {
	return Properties{
		ContentAlign: geom.Center,
		MinSize:      geom.Size{},
		MaxSize:      geom.Size{W: 100000, H: 100000},
		Background:   color.RGBA{110, 110, 110, 255},
		Foreground:   color.RGBA{255, 255, 255, 255},
		Padding:      widgetPadding,
		Margin:       widgetMargin,
		Scale:        1,
	}
}

// Texture is a pre-rendered display object, usually a run of text.
type Texture interface {
	// Size is the natural pixel size of the texture.
	Size() geom.Size
}

// Graphics is the renderer a widget tree draws through.
type Graphics interface {
	Rect(r geom.Rect, c color.Color)
	FillRect(r geom.Rect, c color.Color)
	Line(x1, y1, x2, y2 int, c color.Color)
	// Paint copies src of t onto dst, multiplying its colours by tint.
	Paint(t Texture, src, dst geom.Rect, tint color.Color)
	// Text renders s in colour c.
	Text(s string, c color.Color) Texture
}

// EventKind identifies an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventWindowResize
)

// Event is one input notification. X and Y carry the pointer position,
// Width and Height the new window size of a resize.
type Event struct {
	Kind          EventKind
	X, Y          int
	Width, Height int
}
