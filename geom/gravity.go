package geom

// Gravity names the anchor an inner rectangle is pinned to inside an outer one.
type Gravity int

const (
	Center Gravity = iota
	TopLeft
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

var gravityNames = [...]string{
	Center:      "center",
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Right:       "right",
	BottomRight: "bottom-right",
	Bottom:      "bottom",
	BottomLeft:  "bottom-left",
	Left:        "left",
}

// String returns the anchor name.
func (g Gravity) String() string {
	if g < 0 || int(g) >= len(gravityNames) {
		return "unknown"
	}
	return gravityNames[g]
}

// Align returns a rectangle with inner's size placed inside outer according to
// g. Corner anchors apply hpad and vpad on both touching edges, edge anchors
// apply the pad of the touched edge and centre on the other axis, and Center
// ignores both pads.
func Align(outer, inner Rect, g Gravity, hpad, vpad int) Rect {
	w, h := inner.W, inner.H
	left := outer.X + hpad
	right := outer.X + outer.W - w - hpad
	top := outer.Y + vpad
	bottom := outer.Y + outer.H - h - vpad
	midX := outer.X + outer.W/2 - w/2
	midY := outer.Y + outer.H/2 - h/2

	switch g {
	case TopLeft:
		return Rect{left, top, w, h}
	case Top:
		return Rect{midX, top, w, h}
	case TopRight:
		return Rect{right, top, w, h}
	case Right:
		return Rect{right, midY, w, h}
	case BottomRight:
		return Rect{right, bottom, w, h}
	case Bottom:
		return Rect{midX, bottom, w, h}
	case BottomLeft:
		return Rect{left, bottom, w, h}
	case Left:
		return Rect{left, midY, w, h}
	case Center:
		return Rect{midX, midY, w, h}
	}
	return Rect{}
}
