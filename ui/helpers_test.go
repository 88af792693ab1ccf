package ui

import (
	"image/color"

	"github.com/OpticalFlyer/trellis/geom"
)

type fakeTexture struct {
	text string
	size geom.Size
}

func (t *fakeTexture) Size() geom.Size { return t.size }

type drawCall struct {
	op   string
	rect geom.Rect
	src  geom.Rect
	tex  *fakeTexture
	clr  color.Color
}

// fakeGraphics records drawing calls. Text measures 8x16 pixels per byte.
type fakeGraphics struct {
	calls []drawCall
}

func (g *fakeGraphics) Rect(r geom.Rect, c color.Color) {
	g.calls = append(g.calls, drawCall{op: "rect", rect: r, clr: c})
}

func (g *fakeGraphics) FillRect(r geom.Rect, c color.Color) {
	g.calls = append(g.calls, drawCall{op: "fill", rect: r, clr: c})
}

func (g *fakeGraphics) Line(x1, y1, x2, y2 int, c color.Color) {
	g.calls = append(g.calls, drawCall{op: "line", rect: geom.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, clr: c})
}

func (g *fakeGraphics) Paint(t Texture, src, dst geom.Rect, tint color.Color) {
	g.calls = append(g.calls, drawCall{op: "paint", rect: dst, src: src, tex: t.(*fakeTexture), clr: tint})
}

func (g *fakeGraphics) Text(s string, c color.Color) Texture {
	return &fakeTexture{text: s, size: geom.Size{W: 8 * len(s), H: 16}}
}

func (g *fakeGraphics) reset() { g.calls = nil }

// stubWidget is a leaf with a fixed natural size and scripted results.
type stubWidget struct {
	*WidgetBase
	eventResult  bool
	updateResult bool

	events    int
	updates   int
	refreshes int
	draws     int
	// dimsAtEvent records the assigned rectangle each time Event runs.
	dimsAtEvent []geom.Rect
}

func newStub(w, h int) *stubWidget {
	s := &stubWidget{
		WidgetBase:   newWidgetBase(nil, "stub", 0),
		eventResult:  true,
		updateResult: true,
	}
	s.dims = geom.Rect{W: w, H: h}
	return s
}

func (s *stubWidget) Name() string { return "stub" }
func (s *stubWidget) Draw()        { s.draws++ }
func (s *stubWidget) Refresh()     { s.refreshes++ }

func (s *stubWidget) Event(Event) bool {
	s.events++
	s.dimsAtEvent = append(s.dimsAtEvent, s.dims)
	return s.eventResult
}

func (s *stubWidget) Update() bool {
	s.updates++
	return s.updateResult
}

func dimsOf(widgets WidgetList) []geom.Rect {
	out := make([]geom.Rect, len(widgets))
	for i, w := range widgets {
		out[i] = w.Dims()
	}
	return out
}

func stubs(heights ...int) WidgetList {
	ws := make(WidgetList, len(heights))
	for i, h := range heights {
		ws[i] = newStub(10, h)
	}
	return ws
}
