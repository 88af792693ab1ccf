package ui

import "github.com/OpticalFlyer/trellis/geom"

var _ Geometry = (*GridGeometry)(nil)

// GridEntry declares that the Rows*Cols widgets starting at WidgetOffset form
// one grid block.
type GridEntry struct {
	WidgetOffset int
	Rows         int
	Cols         int
	// RepeatTill is accepted and stored but not used by the layout.
	RepeatTill int
}

// defaultGrid gives each widget not covered by an entry a full-width row.
var defaultGrid = GridEntry{Rows: 1, Cols: 1}

// GridGeometry is the flow layout used by Frame. Widgets fill consecutive
// rows of evenly divided columns, and the container grows to fit them.
type GridGeometry struct {
	entries      []GridEntry
	containerDim geom.Rect
	props        *Properties
	laidOut      bool
	// sizes holds each widget's size as the last CalculateAll left it.
	sizes []geom.Size
}

// NewGridGeometry returns a grid that reads the owning container's padding
// from props. A nil props uses the current SetSpacing values.
func NewGridGeometry(props *Properties) *GridGeometry {
	return &GridGeometry{props: props}
}

// Add declares that the widgets from offset onwards form a rows x cols block.
// Entries must be added in increasing offset order.
func (gg *GridGeometry) Add(offset, rows, cols, repeatTill int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	gg.entries = append(gg.entries, GridEntry{
		WidgetOffset: offset,
		Rows:         rows,
		Cols:         cols,
		RepeatTill:   repeatTill,
	})
}

// Entries returns the declared grid blocks.
func (gg *GridGeometry) Entries() []GridEntry {
	return gg.entries
}

func (gg *GridGeometry) padding() int {
	if gg.props == nil {
		return widgetPadding
	}
	return gg.props.Padding
}

func (gg *GridGeometry) margin() int {
	if gg.props == nil {
		return widgetMargin
	}
	return gg.props.Margin
}

// ContainerDim returns the rectangle computed by the last layout.
func (gg *GridGeometry) ContainerDim() geom.Rect {
	return gg.containerDim
}

// next returns the entry for the block starting at index. Entries are
// consumed strictly in order.
func (gg *GridGeometry) next(index int, cursor *int) GridEntry {
	if *cursor >= len(gg.entries) || index < gg.entries[*cursor].WidgetOffset {
		return defaultGrid
	}
	e := gg.entries[*cursor]
	*cursor++
	return e
}

// setRowHeight stamps h onto the widgets of the current row placed so far.
func setRowHeight(widgets WidgetList, rowStart, index, h int) {
	for i := rowStart; i <= index; i++ {
		widgets[i].base().dims.H = h
	}
}

// CalculateAll lays every widget out from scratch inside newDim and returns
// the container rectangle, whose height is grown to fit the rows.
func (gg *GridGeometry) CalculateAll(widgets WidgetList, newDim geom.Rect) geom.Rect {
	var (
		cursor    int
		rowHeight int
		cur       = newDim
	)
	cur.Y += gg.padding()

	i := 0
	for i < len(widgets) {
		grid := gg.next(i, &cursor)
		cur.W = newDim.W / grid.Cols

		for j := 0; j < grid.Rows && i < len(widgets); j++ {
			margin := widgets[i].base().props.Margin
			rowStart := i
			rowHeight = 0
			cur.X = newDim.X

			for k := 0; k < grid.Cols && i < len(widgets); k++ {
				d := &widgets[i].base().dims
				if d.H > rowHeight {
					setRowHeight(widgets, rowStart, i, d.H)
					rowHeight = d.H
				}

				d.X = cur.X
				d.Y = cur.Y
				if k == 0 {
					d.X += margin
				} else {
					d.X += margin - margin/2
				}

				last := k == grid.Cols-1
				switch {
				case last && k == 0:
					d.W = cur.W - 2*margin
				case last:
					d.W = newDim.W - (d.X - newDim.X) - margin
				case k == 0:
					d.W = cur.W - margin/2 - margin
				default:
					d.W = cur.W - margin
				}
				d.H = rowHeight

				cur.X += cur.W
				i++
			}

			// The gap above a row is the margin of its first widget.
			if i < len(widgets) {
				cur.Y += rowHeight + widgets[i].base().props.Margin
			}
		}
	}

	cur.Y += rowHeight + gg.margin()*3
	gg.containerDim = geom.Rect{X: newDim.X, Y: newDim.Y, W: newDim.W, H: cur.Y - newDim.Y}
	gg.laidOut = true
	gg.sizes = gg.sizes[:0]
	for _, w := range widgets {
		gg.sizes = append(gg.sizes, w.Dims().Size())
	}
	logger.Debug("grid layout", "widgets", len(widgets), "dims", gg.containerDim)
	return gg.containerDim
}

// TranslateAll shifts every widget by the offset between pos and the last
// computed container position.
func (gg *GridGeometry) TranslateAll(widgets WidgetList, pos geom.Point) geom.Rect {
	dx := pos.X - gg.containerDim.X
	dy := pos.Y - gg.containerDim.Y
	for _, w := range widgets {
		b := w.base()
		b.dims = b.dims.Translate(dx, dy)
	}
	gg.containerDim.X = pos.X
	gg.containerDim.Y = pos.Y
	logger.Debug("grid translate", "widgets", len(widgets), "dx", dx, "dy", dy)
	return gg.containerDim
}

// UpdateContainerDim translates the existing layout when neither newDim nor
// any widget changed size since the last computation, and recomputes it
// otherwise. The first call always computes.
func (gg *GridGeometry) UpdateContainerDim(widgets WidgetList, newDim geom.Rect) geom.Rect {
	if gg.canTranslate(widgets, newDim) {
		return gg.TranslateAll(widgets, newDim.Pt())
	}
	return gg.CalculateAll(widgets, newDim)
}

func (gg *GridGeometry) canTranslate(widgets WidgetList, newDim geom.Rect) bool {
	if !gg.laidOut || len(gg.sizes) != len(widgets) || !gg.containerDim.SameSize(newDim) {
		return false
	}
	for i, w := range widgets {
		if w.Dims().Size() != gg.sizes[i] {
			return false
		}
	}
	return true
}
