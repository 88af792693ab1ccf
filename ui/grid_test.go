package ui

import (
	"fmt"
	"testing"

	"github.com/OpticalFlyer/trellis/geom"
)

func TestGridTwoButtonsInFrame(t *testing.T) {
	g := &fakeGraphics{}
	f := NewFrame(g, "menu", 0, geom.Rect{W: 400})
	f.Grid(1, 2)
	a := f.AddButton("A", 0)
	b := f.AddButton("B", 0)
	f.Refresh()

	m := DefaultMargin
	wantA := geom.Rect{X: m, Y: DefaultPadding, W: 200 - m/2 - m, H: 22}
	wantB := geom.Rect{X: 200 + m - m/2, Y: DefaultPadding, W: 400 - (200 + m - m/2) - m, H: 22}
	if a.Dims() != wantA {
		t.Errorf("first button: got %v; want %v", a.Dims(), wantA)
	}
	if b.Dims() != wantB {
		t.Errorf("second button: got %v; want %v", b.Dims(), wantB)
	}
	if a.Dims().X != m || b.Dims().X+b.Dims().W != 400-m {
		t.Errorf("buttons span [%d, %d); want [%d, %d)", a.Dims().X, b.Dims().X+b.Dims().W, m, 400-m)
	}
	if gap := b.Dims().X - (a.Dims().X + a.Dims().W); gap != m {
		t.Errorf("gap between columns = %d; want %d", gap, m)
	}

	wantFrame := geom.Rect{W: 400, H: DefaultPadding + 22 + 3*DefaultMargin}
	if f.Dims() != wantFrame {
		t.Errorf("frame: got %v; want %v", f.Dims(), wantFrame)
	}
}

func TestGridWidthConservation(t *testing.T) {
	const m = DefaultMargin

	for _, width := range []int{400, 401, 333, 1000} {
		for cols := 1; cols <= 5; cols++ {
			t.Run(fmt.Sprintf("w%d_c%d", width, cols), func(t *testing.T) {
				ws := stubs(make([]int, cols)...)
				gg := NewGridGeometry(nil)
				gg.Add(0, 1, cols, 1)
				container := geom.Rect{X: 17, Y: 4, W: width}
				gg.CalculateAll(ws, container)

				colW := width / cols
				d := dimsOf(ws)
				if d[0].X != container.X+m {
					t.Errorf("first column x = %d; want %d", d[0].X, container.X+m)
				}
				last := d[cols-1]
				if end := last.X + last.W; end != container.X+width-m {
					t.Errorf("last column ends at %d; want %d", end, container.X+width-m)
				}
				for k := 1; k < cols; k++ {
					if gap := d[k].X - (d[k-1].X + d[k-1].W); gap != m {
						t.Errorf("gap before column %d = %d; want %d", k, gap, m)
					}
				}
				if cols > 1 && d[0].W != colW-m/2-m {
					t.Errorf("first column w = %d; want %d", d[0].W, colW-m/2-m)
				}
				for k := 1; k < cols-1; k++ {
					if d[k].W != colW-m {
						t.Errorf("middle column %d w = %d; want %d", k, d[k].W, colW-m)
					}
				}

				sum := d[0].X - container.X
				for k := range d {
					sum += d[k].W
					if k > 0 {
						sum += d[k].X - (d[k-1].X + d[k-1].W)
					}
				}
				sum += container.X + width - (last.X + last.W)
				if sum != width {
					t.Errorf("widths and margins sum to %d; want %d", sum, width)
				}
			})
		}
	}
}

func TestGridRowHeightBackfill(t *testing.T) {
	ws := stubs(10, 40, 15)
	gg := NewGridGeometry(nil)
	gg.Add(0, 1, 3, 1)
	got := gg.CalculateAll(ws, geom.Rect{W: 300})

	for i, d := range dimsOf(ws) {
		if d.H != 40 {
			t.Errorf("widget %d height = %d; want 40", i, d.H)
		}
	}
	if want := DefaultPadding + 40 + 3*DefaultMargin; got.H != want {
		t.Errorf("container height = %d; want %d", got.H, want)
	}
}

func TestGridBackfillStaysInRow(t *testing.T) {
	ws := stubs(10, 20, 30, 5)
	gg := NewGridGeometry(nil)
	gg.Add(0, 2, 2, 1)
	got := gg.CalculateAll(ws, geom.Rect{W: 200})

	d := dimsOf(ws)
	wantH := []int{20, 20, 30, 30}
	secondRow := DefaultPadding + 20 + DefaultMargin
	wantY := []int{DefaultPadding, DefaultPadding, secondRow, secondRow}
	for i := range d {
		if d[i].H != wantH[i] || d[i].Y != wantY[i] {
			t.Errorf("widget %d: got y=%d h=%d; want y=%d h=%d", i, d[i].Y, d[i].H, wantY[i], wantH[i])
		}
	}
	if want := secondRow + 30 + 3*DefaultMargin; got.H != want {
		t.Errorf("container height = %d; want %d", got.H, want)
	}
}

func TestGridEntries(t *testing.T) {
	const m = DefaultMargin
	full := 100 - 2*m

	tests := []struct {
		name    string
		entries []GridEntry
		want    []geom.Rect
	}{
		{
			name: "no entries gives one widget per row",
			want: []geom.Rect{
				{X: m, Y: 3, W: full, H: 10},
				{X: m, Y: 18, W: full, H: 10},
				{X: m, Y: 33, W: full, H: 10},
			},
		},
		{
			name:    "two columns then default",
			entries: []GridEntry{{WidgetOffset: 0, Rows: 1, Cols: 2}},
			want: []geom.Rect{
				{X: m, Y: 3, W: 50 - m/2 - m, H: 10},
				{X: 50 + m - m/2, Y: 3, W: 100 - (50 + m - m/2) - m, H: 10},
				{X: m, Y: 18, W: full, H: 10},
			},
		},
		{
			name:    "default then two columns",
			entries: []GridEntry{{WidgetOffset: 1, Rows: 1, Cols: 2}},
			want: []geom.Rect{
				{X: m, Y: 3, W: full, H: 10},
				{X: m, Y: 18, W: 50 - m/2 - m, H: 10},
				{X: 50 + m - m/2, Y: 18, W: 100 - (50 + m - m/2) - m, H: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := stubs(10, 10, 10)
			gg := NewGridGeometry(nil)
			for _, e := range tt.entries {
				gg.Add(e.WidgetOffset, e.Rows, e.Cols, e.RepeatTill)
			}
			gg.CalculateAll(ws, geom.Rect{W: 100})
			for i, d := range dimsOf(ws) {
				if d != tt.want[i] {
					t.Errorf("widget %d: got %v; want %v", i, d, tt.want[i])
				}
			}
		})
	}
}

func TestGridMarginAboveRow(t *testing.T) {
	ws := stubs(10, 10)
	ws[1].base().props.Margin = 20
	gg := NewGridGeometry(nil)
	gg.CalculateAll(ws, geom.Rect{W: 100})

	want := geom.Rect{X: 20, Y: DefaultPadding + 10 + 20, W: 60, H: 10}
	if got := ws[1].Dims(); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestGridTranslateEquivalence(t *testing.T) {
	ws := stubs(10, 25, 15, 30, 12)
	gg := NewGridGeometry(nil)
	gg.Add(0, 1, 2, 1)
	gg.Add(2, 1, 3, 1)

	r1 := gg.UpdateContainerDim(ws, geom.Rect{X: 10, Y: 20, W: 300})
	before := dimsOf(ws)

	r2 := geom.Rect{X: 110, Y: 70, W: r1.W, H: r1.H}
	moved := gg.UpdateContainerDim(ws, r2)
	translated := dimsOf(ws)
	for i := range translated {
		if want := before[i].Translate(100, 50); translated[i] != want {
			t.Errorf("widget %d after move: got %v; want %v", i, translated[i], want)
		}
	}

	full := gg.CalculateAll(ws, r2)
	recomputed := dimsOf(ws)
	if moved != full {
		t.Errorf("container after move = %v; full layout gives %v", moved, full)
	}
	for i := range recomputed {
		if translated[i] != recomputed[i] {
			t.Errorf("widget %d: translated %v; recomputed %v", i, translated[i], recomputed[i])
		}
	}
}

func TestGridNestedFrameGrowth(t *testing.T) {
	g := &fakeGraphics{}
	outer := NewFrame(g, "outer", 0, geom.Rect{W: 300})
	inner := outer.AddFrame("inner", 0, geom.Rect{})
	Add(inner, newStub(10, 10))
	below := Add(outer, newStub(10, 10))
	outer.Refresh()
	outer.Update()

	check := func(stage string) {
		t.Helper()
		in := inner.Dims()
		if below.Dims().Y < in.Y+in.H {
			t.Errorf("%s: sibling %v overlaps inner frame %v", stage, below.Dims(), in)
		}
		got := dimsOf(outer.Children())
		outer.Geo.CalculateAll(outer.Children(), outer.Dims())
		want := dimsOf(outer.Children())
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%s: child %d = %v; full layout gives %v", stage, i, got[i], want[i])
			}
		}
	}
	check("first layout")

	Add(inner, newStub(10, 30))
	outer.Refresh()
	outer.Update()
	check("after inner grew")

	outer.Refresh()
	check("second refresh")
}

func TestGridRecomputesWhenChildResizes(t *testing.T) {
	ws := stubs(10, 10)
	gg := NewGridGeometry(nil)
	gg.UpdateContainerDim(ws, geom.Rect{W: 200})
	second := ws[1].Dims()

	ws[0].base().dims.H = 40
	r := gg.UpdateContainerDim(ws, gg.ContainerDim())
	if ws[1].Dims().Y != second.Y+30 {
		t.Errorf("second widget y = %d; want %d", ws[1].Dims().Y, second.Y+30)
	}
	if want := DefaultPadding + 40 + DefaultMargin + 10 + 3*DefaultMargin; r.H != want {
		t.Errorf("container height = %d; want %d", r.H, want)
	}
}

func TestGridFollowsSetSpacing(t *testing.T) {
	SetSpacing(0, 10)
	t.Cleanup(func() { SetSpacing(DefaultPadding, DefaultMargin) })

	g := &fakeGraphics{}
	l := NewLabel(g, "abc", 0)
	if got, want := l.Dims(), (geom.Rect{W: 24, H: 16}); got != want {
		t.Errorf("label seed = %v; want %v", got, want)
	}
	b := NewButton(g, "abc", 0)
	if got, want := b.Dims(), (geom.Rect{W: 24, H: 16}); got != want {
		t.Errorf("button seed = %v; want %v", got, want)
	}

	f := NewFrame(g, "menu", 0, geom.Rect{W: 200})
	inside := f.AddLabel("abc", 0)
	f.Refresh()
	if got, want := inside.Dims(), (geom.Rect{X: 10, Y: 0, W: 180, H: 16}); got != want {
		t.Errorf("label in frame = %v; want %v", got, want)
	}
	if got, want := f.Dims().H, 0+16+3*10; got != want {
		t.Errorf("frame height = %d; want %d", got, want)
	}
}

func TestGridResizeRecomputes(t *testing.T) {
	ws := stubs(10, 10)
	gg := NewGridGeometry(nil)
	gg.Add(0, 1, 2, 1)
	r := gg.UpdateContainerDim(ws, geom.Rect{W: 300})

	got := gg.UpdateContainerDim(ws, geom.Rect{W: 200, H: r.H})
	if got.W != 200 {
		t.Errorf("container width = %d; want 200", got.W)
	}
	if w := ws[0].Dims().W; w != 100-DefaultMargin/2-DefaultMargin {
		t.Errorf("first column width = %d; want %d", w, 100-DefaultMargin/2-DefaultMargin)
	}
}

func TestGridRecomputesAfterAdd(t *testing.T) {
	ws := stubs(10)
	gg := NewGridGeometry(nil)
	r := gg.UpdateContainerDim(ws, geom.Rect{W: 100})

	ws = append(ws, newStub(10, 10))
	gg.UpdateContainerDim(ws, r)
	want := geom.Rect{X: DefaultMargin, Y: DefaultPadding + 10 + DefaultMargin, W: 100 - 2*DefaultMargin, H: 10}
	if got := ws[1].Dims(); got != want {
		t.Errorf("new widget: got %v; want %v", got, want)
	}
}

func TestGridRepeatTillIsInert(t *testing.T) {
	layout := func(repeat int) []geom.Rect {
		ws := stubs(10, 20, 30, 40, 50)
		gg := NewGridGeometry(nil)
		gg.Add(0, 1, 2, repeat)
		gg.CalculateAll(ws, geom.Rect{W: 240})
		return dimsOf(ws)
	}

	a, b := layout(1), layout(7)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("widget %d: repeat 1 gives %v, repeat 7 gives %v", i, a[i], b[i])
		}
	}
}

func TestGridEmpty(t *testing.T) {
	gg := NewGridGeometry(nil)
	got := gg.CalculateAll(nil, geom.Rect{X: 5, Y: 6, W: 100, H: 999})
	want := geom.Rect{X: 5, Y: 6, W: 100, H: DefaultPadding + 3*DefaultMargin}
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func BenchmarkGridCalculateAll(b *testing.B) {
	heights := make([]int, 64)
	for i := range heights {
		heights[i] = 10 + i%7
	}
	ws := stubs(heights...)
	gg := NewGridGeometry(nil)
	gg.Add(0, 4, 4, 1)
	gg.Add(16, 8, 2, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gg.CalculateAll(ws, geom.Rect{W: 800})
	}
}
