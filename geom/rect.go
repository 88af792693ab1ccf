package geom

import "fmt"

// Rect is an integer screen-space box.
type Rect struct {
	X, Y int
	W, H int
}

// Point is a screen-space position.
type Point struct {
	X, Y int
}

// Size is a width/height pair with no position.
type Size struct {
	W, H int
}

// Pt returns the rectangle's top-left corner.
func (r Rect) Pt() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// SameSize reports whether r and o have equal width and height.
func (r Rect) SameSize(o Rect) bool {
	return r.W == o.W && r.H == o.H
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// String formats r as rect(x, y, w, h).
func (r Rect) String() string {
	return fmt.Sprintf("rect(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}

// PointInRect reports whether (x, y) lies inside rect. All four edges are
// inclusive, so neighbours sharing an edge both claim the shared pixel.
func PointInRect(x, y int, rect Rect) bool {
	return x >= rect.X && y >= rect.Y &&
		x <= rect.X+rect.W && y <= rect.Y+rect.H
}

// Clamp bounds s between min and max on each axis.
func (s Size) Clamp(min, max Size) Size {
	s.W = clamp(s.W, min.W, max.W)
	s.H = clamp(s.H, min.H, max.H)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
