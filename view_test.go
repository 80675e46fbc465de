package pinchzoom

import "testing"

const epsilon = 1e-9

func testView() View {
	// 400x300 image in an 800x600 viewport fits at exactly 2x.
	return View{Viewport: Rect{Width: 800, Height: 600}, ImageW: 400, ImageH: 300}
}

func TestViewFitScale(t *testing.T) {
	tests := []struct {
		name string
		v    View
		want float64
	}{
		{"exact", testView(), 2},
		{"padding", View{Viewport: Rect{Width: 820, Height: 620}, ImageW: 400, ImageH: 300, Padding: 10}, 2},
		{"tall image", View{Viewport: Rect{Width: 800, Height: 600}, ImageW: 100, ImageH: 600}, 1},
		{"empty image", View{Viewport: Rect{Width: 800, Height: 600}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.FitScale(); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("FitScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewIdentityCentersImage(t *testing.T) {
	v := testView()
	b := v.Bounds(Display{Scale: 1})
	want := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	if !approxEqual(b.X, want.X, epsilon) || !approxEqual(b.Width, want.Width, epsilon) ||
		!approxEqual(b.Y, want.Y, epsilon) || !approxEqual(b.Height, want.Height, epsilon) {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
}

func TestViewZoomAroundCenter(t *testing.T) {
	v := testView()
	d := Display{Scale: 5}
	// The image centre stays on the viewport centre.
	sx, sy := v.ImageToScreen(d, 200, 150)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("centre maps to (%v,%v), want (400,300)", sx, sy)
	}
	// One image pixel spans fit*scale screen pixels.
	x1, _ := v.ImageToScreen(d, 201, 150)
	if !approxEqual(x1-sx, 10, epsilon) {
		t.Errorf("pixel width = %v, want 10", x1-sx)
	}
}

func TestViewOffsetIsScreenSpace(t *testing.T) {
	v := testView()
	d := Display{Scale: 3, Offset: Vec2{40, 10}}
	sx, sy := v.ImageToScreen(d, 200, 150)
	if !approxEqual(sx, 440, epsilon) || !approxEqual(sy, 310, epsilon) {
		t.Errorf("centre maps to (%v,%v), want (440,310)", sx, sy)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := testView()
	d := Display{Scale: 2.5, Offset: Vec2{-33, 17}}
	sx, sy := v.ImageToScreen(d, 123, 45)
	ix, iy := v.ScreenToImage(d, sx, sy)
	if !approxEqual(ix, 123, 1e-6) || !approxEqual(iy, 45, 1e-6) {
		t.Errorf("round trip = (%v,%v), want (123,45)", ix, iy)
	}
}

func TestViewGeoMMatchesMatrix(t *testing.T) {
	v := testView()
	d := Display{Scale: 2, Offset: Vec2{5, 6}}
	g := v.GeoM(d)
	gx, gy := g.Apply(10, 20)
	mx, my := v.ImageToScreen(d, 10, 20)
	if !approxEqual(gx, mx, 1e-6) || !approxEqual(gy, my, 1e-6) {
		t.Errorf("GeoM.Apply = (%v,%v), matrix = (%v,%v)", gx, gy, mx, my)
	}
}
