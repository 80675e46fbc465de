package pinchzoom

import (
	"errors"
	"testing"
)

func testPages(t *testing.T) *PageList {
	t.Helper()
	pages, err := NewPageList([]Page{
		{ID: 1, ImageName: "magazine-front-cover"},
		{ID: 2, ImageName: "magazine-back-cover"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return pages
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(testPages(t))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func assertScaleOffset(t *testing.T, c *Controller, scale float64, offset Vec2) {
	t.Helper()
	st := c.State()
	if st.Scale != scale {
		t.Errorf("Scale = %v, want %v", st.Scale, scale)
	}
	if st.Offset != offset {
		t.Errorf("Offset = %v, want %v", st.Offset, offset)
	}
}

func TestControllerDefaults(t *testing.T) {
	c := newTestController(t)
	want := TransformState{Scale: 1, DrawerOpen: true, CurrentPageID: 1}
	if got := c.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
	if c.Appeared() {
		t.Error("Appeared() = true before Appear")
	}
	if c.CurrentPage().ImageName != "magazine-front-cover" {
		t.Errorf("CurrentPage() = %+v", c.CurrentPage())
	}
}

func TestNewRejectsEmptyPages(t *testing.T) {
	empty, err := NewPageList(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(empty); !errors.Is(err, ErrNoPages) {
		t.Errorf("New(empty) err = %v, want ErrNoPages", err)
	}
	if _, err := New(nil); !errors.Is(err, ErrNoPages) {
		t.Errorf("New(nil) err = %v, want ErrNoPages", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxScale = 0.5
	if _, err := New(testPages(t), WithConfig(cfg)); err == nil {
		t.Error("expected error for max_scale below min_scale")
	}
}

func TestTapTogglesZoom(t *testing.T) {
	c := newTestController(t)
	c.Tap()
	assertScaleOffset(t, c, 5, Vec2{})
	c.Tap()
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestTapFromFractionalScaleResets(t *testing.T) {
	c := newTestController(t)
	c.MagnificationChanged(2.5)
	c.DragChanged(Vec2{10, 10})
	c.Tap()
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestLongPressTogglesHighlight(t *testing.T) {
	c := newTestController(t)
	c.LongPress()
	if !c.State().Highlighted {
		t.Error("Highlighted = false after one long press")
	}
	c.LongPress()
	if c.State().Highlighted {
		t.Error("Highlighted = true after two long presses")
	}
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestDragIsAbsolute(t *testing.T) {
	c := newTestController(t)
	c.Tap()
	c.DragChanged(Vec2{10, 5})
	c.DragChanged(Vec2{40, 10})
	assertScaleOffset(t, c, 5, Vec2{40, 10})
}

func TestDragEndedAtMinScaleResets(t *testing.T) {
	translations := []Vec2{{0, 0}, {40, 10}, {-300, 999}, {0.5, -0.5}}
	for _, tr := range translations {
		c := newTestController(t)
		c.DragChanged(tr)
		c.DragEnded()
		assertScaleOffset(t, c, 1, Vec2{})
	}
}

func TestDragEndedWhenZoomedKeepsOffset(t *testing.T) {
	c := newTestController(t)
	c.StepScale(1)
	c.DragChanged(Vec2{-20, 30})
	c.DragEnded()
	assertScaleOffset(t, c, 2, Vec2{-20, 30})
}

func TestMagnificationChanged(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		value float64
		want  float64
	}{
		{"within bounds follows value", 1, 2.5, 2.5},
		{"at upper bound follows value", 5, 6, 6},
		{"above upper bound clamps", 6, 2, 5},
		{"below lower bound holds", 0.5, 3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.state.Scale = tt.start
			c.MagnificationChanged(tt.value)
			if got := c.State().Scale; got != tt.want {
				t.Errorf("Scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMagnificationEnded(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantScale  float64
		wantOffset Vec2
	}{
		{"overshoot clamps to max", []float64{3, 6}, 5, Vec2{12, 12}},
		{"pinch in resets", []float64{0.4}, 1, Vec2{}},
		{"exactly one resets", []float64{2, 1}, 1, Vec2{}},
		{"inside bounds kept", []float64{1.5, 3.25}, 3.25, Vec2{12, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.DragChanged(Vec2{12, 12})
			for _, v := range tt.values {
				c.MagnificationChanged(v)
			}
			c.MagnificationEnded()
			assertScaleOffset(t, c, tt.wantScale, tt.wantOffset)
			if s := c.State().Scale; s < MinScale || s > MaxScale {
				t.Errorf("settled Scale %v outside bounds", s)
			}
		})
	}
}

func TestResetKeepsOtherFields(t *testing.T) {
	c := newTestController(t)
	c.Tap()
	c.DragChanged(Vec2{3, 4})
	c.LongPress()
	c.ToggleDrawer()
	if err := c.SelectPage(2); err != nil {
		t.Fatal(err)
	}
	c.Reset()
	want := TransformState{Scale: 1, Highlighted: true, DrawerOpen: false, CurrentPageID: 2}
	if got := c.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestStepScale(t *testing.T) {
	c := newTestController(t)
	for i, want := range []float64{2, 3, 4, 5, 5} {
		c.StepScale(1)
		if got := c.State().Scale; got != want {
			t.Errorf("after step %d: Scale = %v, want %v", i+1, got, want)
		}
	}
}

func TestStepScaleDownResetsOffset(t *testing.T) {
	c := newTestController(t)
	c.StepScale(1)
	c.DragChanged(Vec2{50, -50})
	c.StepScale(-1)
	assertScaleOffset(t, c, 1, Vec2{})

	c.StepScale(3)
	c.DragChanged(Vec2{5, 5})
	c.StepScale(-10)
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestStepScaleFromFractional(t *testing.T) {
	c := newTestController(t)
	c.MagnificationChanged(2.5)
	c.StepScale(1)
	if got := c.State().Scale; got != 3.5 {
		t.Errorf("Scale = %v, want 3.5", got)
	}
	c.StepScale(5)
	if got := c.State().Scale; got != 5 {
		t.Errorf("Scale = %v, want 5", got)
	}
}

func TestToggleDrawerTwice(t *testing.T) {
	c := newTestController(t)
	orig := c.State().DrawerOpen
	c.ToggleDrawer()
	if c.State().DrawerOpen == orig {
		t.Error("DrawerOpen unchanged after one toggle")
	}
	c.ToggleDrawer()
	if c.State().DrawerOpen != orig {
		t.Error("DrawerOpen not restored after two toggles")
	}
}

func TestSelectPage(t *testing.T) {
	c := newTestController(t)
	if err := c.SelectPage(2); err != nil {
		t.Fatalf("SelectPage(2) = %v", err)
	}
	if c.State().CurrentPageID != 2 {
		t.Errorf("CurrentPageID = %d, want 2", c.State().CurrentPageID)
	}
	if !c.Appeared() {
		t.Error("Appeared() = false after SelectPage")
	}
}

func TestSelectPageInvalid(t *testing.T) {
	c := newTestController(t)
	c.Tap()
	c.DragChanged(Vec2{1, 2})
	before := c.State()

	fired := false
	c.OnChange(func(Change) { fired = true })

	err := c.SelectPage(42)
	if !errors.Is(err, ErrInvalidPageID) {
		t.Fatalf("SelectPage(42) err = %v, want ErrInvalidPageID", err)
	}
	if got := c.State(); got != before {
		t.Errorf("State changed: %+v, want %+v", got, before)
	}
	if fired {
		t.Error("OnChange fired for rejected selection")
	}
	if c.Appeared() {
		t.Error("Appeared() = true after rejected selection")
	}
}

func TestScenarioTapDragTap(t *testing.T) {
	c := newTestController(t)
	c.Tap()
	assertScaleOffset(t, c, 5, Vec2{})
	c.DragChanged(Vec2{40, 10})
	assertScaleOffset(t, c, 5, Vec2{40, 10})
	c.DragEnded()
	assertScaleOffset(t, c, 5, Vec2{40, 10})
	c.Tap()
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestStrayDragAfterPinchResetKeepsScale(t *testing.T) {
	c := newTestController(t)
	c.MagnificationChanged(0.6)
	c.MagnificationEnded()
	c.DragChanged(Vec2{30, 30})
	if got := c.State().Scale; got != 1 {
		t.Errorf("Scale = %v after stray drag, want 1", got)
	}
	c.DragEnded()
	assertScaleOffset(t, c, 1, Vec2{})
}

func TestResetAfterAnySequence(t *testing.T) {
	ops := []func(c *Controller){
		func(c *Controller) { c.Tap() },
		func(c *Controller) { c.DragChanged(Vec2{7, -3}) },
		func(c *Controller) { c.MagnificationChanged(9) },
		func(c *Controller) { c.StepScale(2) },
		func(c *Controller) { c.LongPress() },
		func(c *Controller) { c.MagnificationChanged(0.2) },
	}
	for i := range ops {
		c := newTestController(t)
		for _, op := range ops[i:] {
			op(c)
		}
		c.Reset()
		assertScaleOffset(t, c, 1, Vec2{})
	}
}

func TestOnChange(t *testing.T) {
	c := newTestController(t)
	var got []Change
	h := c.OnChange(func(ch Change) { got = append(got, ch) })

	c.Tap()
	c.DragChanged(Vec2{1, 1})
	if len(got) != 2 {
		t.Fatalf("got %d changes, want 2", len(got))
	}
	if got[0].Kind != EventTap || got[0].Before.Scale != 1 || got[0].After.Scale != 5 {
		t.Errorf("change 0 = %+v", got[0])
	}
	if got[1].Kind != EventDragChanged || got[1].After.Offset != (Vec2{1, 1}) {
		t.Errorf("change 1 = %+v", got[1])
	}

	h.Remove()
	c.Reset()
	if len(got) != 2 {
		t.Errorf("callback fired after Remove")
	}
}

func TestOnChangeRemoveDuringDelivery(t *testing.T) {
	c := newTestController(t)

	once := 0
	var h CallbackHandle
	h = c.OnChange(func(Change) {
		once++
		h.Remove()
	})
	second := 0
	c.OnChange(func(Change) { second++ })

	c.Tap()
	c.LongPress()
	c.Reset()

	if once != 1 {
		t.Errorf("one-shot callback fired %d times, want 1", once)
	}
	if second != 3 {
		t.Errorf("second callback fired %d times, want 3", second)
	}
}

func TestCallbackHandleRemoveZero(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

func TestCustomBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxScale = 3
	cfg.TapScale = 2
	c, err := New(testPages(t), WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	c.Tap()
	if got := c.State().Scale; got != 2 {
		t.Errorf("Scale after tap = %v, want 2", got)
	}
	c.StepScale(4)
	if got := c.State().Scale; got != 3 {
		t.Errorf("Scale after step = %v, want 3", got)
	}
}
