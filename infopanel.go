package pinchzoom

import "fmt"

// InfoPanel is the readout of the current scale and offset. It starts
// hidden; a long press on its hotspot toggles it.
type InfoPanel struct {
	Hotspot Rect
	Visible bool
}

// HotspotHit reports whether at is on the hotspot.
func (p *InfoPanel) HotspotHit(at Vec2) bool {
	return p.Hotspot.Contains(at.X, at.Y)
}

// Toggle shows or hides the panel.
func (p *InfoPanel) Toggle() {
	p.Visible = !p.Visible
}

// Label formats st for display.
func (p *InfoPanel) Label(st TransformState) string {
	return fmt.Sprintf("scale %.2f   x %.1f   y %.1f", st.Scale, st.Offset.X, st.Offset.Y)
}
