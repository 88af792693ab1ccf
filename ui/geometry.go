package ui

import "github.com/OpticalFlyer/trellis/geom"

// Geometry arranges a container's children. The child list is passed on
// every call; a strategy never keeps a reference to it.
type Geometry interface {
	// CalculateAll lays out every widget inside dims and returns the
	// container's resulting rectangle.
	CalculateAll(widgets WidgetList, dims geom.Rect) geom.Rect
	// UpdateContainerDim is CalculateAll with whatever shortcut the
	// strategy can take when only the position of dims changed.
	UpdateContainerDim(widgets WidgetList, dims geom.Rect) geom.Rect
	// ContainerDim returns the rectangle last computed.
	ContainerDim() geom.Rect
}
