package pinchzoom

// Drawer lays out page thumbnails in a vertical strip anchored at Origin and
// maps pointer positions back to pages. It only covers geometry; open state
// lives in TransformState.DrawerOpen.
type Drawer struct {
	Origin      Vec2
	ThumbWidth  float64
	ThumbHeight float64
	Gap         float64
	// Handle is the always-visible toggle area next to the strip.
	Handle Rect
}

// ThumbRect returns the screen rectangle of the thumbnail at display
// position i.
func (d Drawer) ThumbRect(i int) Rect {
	return Rect{
		X:      d.Origin.X,
		Y:      d.Origin.Y + float64(i)*(d.ThumbHeight+d.Gap),
		Width:  d.ThumbWidth,
		Height: d.ThumbHeight,
	}
}

// Bounds returns the rectangle covering n thumbnails.
func (d Drawer) Bounds(n int) Rect {
	if n <= 0 {
		return Rect{X: d.Origin.X, Y: d.Origin.Y}
	}
	return Rect{
		X:      d.Origin.X,
		Y:      d.Origin.Y,
		Width:  d.ThumbWidth,
		Height: float64(n)*d.ThumbHeight + float64(n-1)*d.Gap,
	}
}

// PageAt returns the page whose thumbnail contains (x, y). A closed drawer
// hits nothing. Points in the gaps between thumbnails hit nothing either.
func (d Drawer) PageAt(pages *PageList, open bool, x, y float64) (Page, bool) {
	if !open || pages == nil {
		return Page{}, false
	}
	for i := 0; i < pages.Len(); i++ {
		if d.ThumbRect(i).Contains(x, y) {
			return pages.At(i), true
		}
	}
	return Page{}, false
}

// HandleHit reports whether (x, y) is on the drawer toggle handle.
func (d Drawer) HandleHit(x, y float64) bool {
	return d.Handle.Width > 0 && d.Handle.Contains(x, y)
}

// Hit reports whether (x, y) is on the handle or, when open, on the strip.
// The presentation layer uses it to keep drawer taps away from the image.
func (d Drawer) Hit(pages *PageList, open bool, x, y float64) bool {
	if d.HandleHit(x, y) {
		return true
	}
	return open && pages != nil && d.Bounds(pages.Len()).Contains(x, y)
}
