package ui

import (
	"image/color"

	"github.com/OpticalFlyer/trellis/geom"
)

// clipText is a texture placed on screen that can be cropped from the right
// when its destination is narrower than the texture.
type clipText struct {
	tex     Texture
	natural geom.Size
	src     geom.Rect
	dest    geom.Rect
	clipped bool
}

func newClipText(g Graphics, s string, c color.Color) clipText {
	tex := g.Text(displayText(s), c)
	n := tex.Size()
	return clipText{
		tex:     tex,
		natural: n,
		src:     geom.Rect{W: n.W, H: n.H},
		dest:    geom.Rect{W: n.W, H: n.H},
	}
}

// overflowX crops the texture to bounds' width when it does not fit, and
// widens the crop again when bounds grow.
func (t *clipText) overflowX(bounds geom.Rect) {
	if t.dest.W <= bounds.W && !t.clipped {
		return
	}
	w := bounds.W
	if w < 0 {
		w = 0
	}
	if w >= t.natural.W {
		t.clipped = false
		w = t.natural.W
	} else {
		t.clipped = true
	}
	t.src = geom.Rect{W: w, H: t.natural.H}
	t.dest.W, t.dest.H = w, t.natural.H
}

func (t *clipText) align(bounds geom.Rect, g geom.Gravity, hpad, vpad int) {
	t.dest = geom.Align(bounds, t.dest, g, hpad, vpad)
}

func (t *clipText) paint(g Graphics, tint color.Color) {
	g.Paint(t.tex, t.src, t.dest, tint)
}
