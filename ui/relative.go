package ui

import "github.com/OpticalFlyer/trellis/geom"

var _ Geometry = (*RelativeGeometry)(nil)

// GravityEntry pins the widget at WidgetOffset to an anchor of the container.
type GravityEntry struct {
	WidgetOffset int
	Gravity      geom.Gravity
	HPad, VPad   int
}

var defaultGravity = GravityEntry{Gravity: geom.Center}

// RelativeGeometry places each widget at a gravity anchor of the whole
// container rectangle. Widgets without an entry are centred.
type RelativeGeometry struct {
	entries      []GravityEntry
	containerDim geom.Rect
}

// NewRelativeGeometry returns a geometry with no gravity entries.
func NewRelativeGeometry() *RelativeGeometry {
	return &RelativeGeometry{}
}

// Add pins the widget at offset to gravity g. Entries must be added in
// increasing offset order.
func (rg *RelativeGeometry) Add(offset int, g geom.Gravity, hpad, vpad int) {
	rg.entries = append(rg.entries, GravityEntry{
		WidgetOffset: offset,
		Gravity:      g,
		HPad:         hpad,
		VPad:         vpad,
	})
}

// Entries returns the declared gravity overrides.
func (rg *RelativeGeometry) Entries() []GravityEntry {
	return rg.entries
}

// ContainerDim returns the rectangle of the last layout.
func (rg *RelativeGeometry) ContainerDim() geom.Rect {
	return rg.containerDim
}

func (rg *RelativeGeometry) next(index int, cursor *int) GravityEntry {
	if *cursor >= len(rg.entries) || index < rg.entries[*cursor].WidgetOffset {
		return defaultGravity
	}
	e := rg.entries[*cursor]
	*cursor++
	return e
}

// CalculateAll aligns every widget inside newDim by its gravity entry and
// returns newDim unchanged.
func (rg *RelativeGeometry) CalculateAll(widgets WidgetList, newDim geom.Rect) geom.Rect {
	var cursor int
	rg.containerDim = newDim
	for i, w := range widgets {
		e := rg.next(i, &cursor)
		b := w.base()
		b.dims = geom.Align(newDim, b.dims, e.Gravity, e.HPad, e.VPad)
	}
	logger.Debug("relative layout", "widgets", len(widgets), "dims", newDim)
	return rg.containerDim
}

// UpdateContainerDim always recomputes. Edge anchors move differently from
// the container when it is resized, so there is no translate shortcut.
func (rg *RelativeGeometry) UpdateContainerDim(widgets WidgetList, newDim geom.Rect) geom.Rect {
	return rg.CalculateAll(widgets, newDim)
}
