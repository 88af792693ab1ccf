package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/ui"
)

var _ ui.Graphics = (*Screen)(nil)

// Texture is a piece of text rendered once into an offscreen image.
type Texture struct {
	img  *ebiten.Image
	size geom.Size
}

// Size returns the text's measured pixel size.
func (t *Texture) Size() geom.Size { return t.size }

// Screen draws a widget tree onto the current ebiten frame.
type Screen struct {
	target *ebiten.Image
	face   text.Face
	cache  *textCache
}

// NewScreen returns a Screen that renders text with face.
func NewScreen(face text.Face) *Screen {
	return &Screen{
		face:  face,
		cache: newTextCache(maxCachedTexts),
	}
}

// SetTarget sets the image the next drawing calls go to. ebiten hands a new
// screen image to every Draw.
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Rect strokes a one pixel outline of r.
func (s *Screen) Rect(r geom.Rect, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(r.X)+0.5, float32(r.Y)+0.5,
		float32(r.W), float32(r.H), 1, c, false)
}

// FillRect fills r with c.
func (s *Screen) FillRect(r geom.Rect, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y),
		float32(r.W), float32(r.H), c, false)
}

// Line draws a one pixel line.
func (s *Screen) Line(x1, y1, x2, y2 int, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
}

// Paint draws the src part of t scaled into dst, multiplied by tint.
func (s *Screen) Paint(t ui.Texture, src, dst geom.Rect, tint color.Color) {
	tex, ok := t.(*Texture)
	if !ok || s.target == nil || tex.img == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	sub := tex.img.SubImage(image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.ColorScale.ScaleWithColor(tint)
	s.target.DrawImage(sub, op)
}

// Text renders str in colour c. Recently used textures are cached per string
// and colour.
func (s *Screen) Text(str string, c color.Color) ui.Texture {
	key := textKey{s: str, c: color.RGBAModel.Convert(c).(color.RGBA)}
	if tex, ok := s.cache.get(key); ok {
		return tex
	}

	w, h := text.Measure(str, s.face, s.lineHeight())
	size := geom.Size{W: int(math.Ceil(w)), H: int(math.Ceil(h))}
	tex := &Texture{size: size}
	if size.W > 0 && size.H > 0 {
		tex.img = ebiten.NewImage(size.W, size.H)
		op := &text.DrawOptions{}
		op.LineSpacing = s.lineHeight()
		op.ColorScale.ScaleWithColor(c)
		text.Draw(tex.img, str, s.face, op)
	}
	s.cache.put(key, tex)
	return tex
}

func (s *Screen) lineHeight() float64 {
	m := s.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
