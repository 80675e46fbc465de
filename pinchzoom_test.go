package pinchzoom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
	if c := r.Center(); c != (Vec2{60, 45}) {
		t.Errorf("Center() = %v, want (60,45)", c)
	}
}

func TestVec2(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{3, 5}
	if a.Add(b) != (Vec2{4, 7}) || b.Sub(a) != (Vec2{2, 3}) {
		t.Error("Add/Sub mismatch")
	}
	if !(Vec2{}).IsZero() || a.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventMagnificationEnded.String() != "magnification-ended" {
		t.Errorf("String() = %q", EventMagnificationEnded.String())
	}
	if EventType(200).String() != "unknown" {
		t.Error("out of range event should be unknown")
	}
	if !EventDragChanged.Continuous() || EventDragEnded.Continuous() {
		t.Error("Continuous mismatch")
	}
}

func TestInfoPanel(t *testing.T) {
	p := InfoPanel{Hotspot: Rect{Width: 30, Height: 30}}
	if p.Visible {
		t.Fatal("panel should start hidden")
	}
	if !p.HotspotHit(Vec2{15, 15}) || p.HotspotHit(Vec2{40, 15}) {
		t.Error("HotspotHit mismatch")
	}
	p.Toggle()
	if !p.Visible {
		t.Error("Toggle did not show the panel")
	}
	label := p.Label(TransformState{Scale: 2.5, Offset: Vec2{40, -10}})
	for _, want := range []string{"2.50", "40.0", "-10.0"} {
		if !strings.Contains(label, want) {
			t.Errorf("Label %q missing %q", label, want)
		}
	}
}

func TestControllerLogging(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(testPages(t), WithLogger(NewLogger(&buf, log.DebugLevel)))
	if err != nil {
		t.Fatal(err)
	}
	c.Tap()
	if !strings.Contains(buf.String(), "tap") {
		t.Errorf("debug log missing tap: %q", buf.String())
	}

	buf.Reset()
	c.DragChanged(Vec2{1, 1})
	if buf.Len() != 0 {
		t.Errorf("in-bounds drag should not log, got %q", buf.String())
	}

	buf.Reset()
	_ = c.SelectPage(99)
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("invalid page should warn, got %q", buf.String())
	}
}
