package pinchzoom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// View maps image space to screen space for a displayed transform. The image
// is first fitted into the viewport (aspect preserved, centred, inset by
// Padding), then scaled around the viewport centre by
// Display.Scale and finally shifted by Display.Offset in screen pixels.
type View struct {
	// Viewport is the screen-space rectangle the image is drawn into.
	Viewport Rect
	// ImageW and ImageH are the source image dimensions.
	ImageW, ImageH float64
	// Padding is kept free on every side of the fitted image.
	Padding float64
}

// FitScale returns the scale that fits the image inside the padded viewport.
func (v View) FitScale() float64 {
	if v.ImageW <= 0 || v.ImageH <= 0 {
		return 1
	}
	w := math.Max(v.Viewport.Width-2*v.Padding, 0)
	h := math.Max(v.Viewport.Height-2*v.Padding, 0)
	return math.Min(w/v.ImageW, h/v.ImageH)
}

// Matrix returns the image-to-screen matrix for d.
//
//	Translate(center + offset) * Scale(d.Scale * fit) * Translate(-imageW/2, -imageH/2)
func (v View) Matrix(d Display) [6]float64 {
	c := v.Viewport.Center()
	m := translateAffine(-v.ImageW/2, -v.ImageH/2)
	m = multiplyAffine(scaleAffine(d.Scale*v.FitScale()), m)
	return multiplyAffine(translateAffine(c.X+d.Offset.X, c.Y+d.Offset.Y), m)
}

// ImageToScreen converts an image-space point to screen space.
func (v View) ImageToScreen(d Display, ix, iy float64) (sx, sy float64) {
	return transformPoint(v.Matrix(d), ix, iy)
}

// ScreenToImage converts a screen-space point to image space.
func (v View) ScreenToImage(d Display, sx, sy float64) (ix, iy float64) {
	return transformPoint(invertAffine(v.Matrix(d)), sx, sy)
}

// Bounds returns the screen-space rectangle covered by the image.
func (v View) Bounds(d Display) Rect {
	x0, y0 := v.ImageToScreen(d, 0, 0)
	x1, y1 := v.ImageToScreen(d, v.ImageW, v.ImageH)
	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// GeoM returns Matrix as an ebiten.GeoM for DrawImage.
func (v View) GeoM(d Display) ebiten.GeoM {
	m := v.Matrix(d)
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
