package pinchzoom

import "errors"

// Default scale bounds. Every settled TransformState keeps Scale within
// [MinScale, MaxScale].
const (
	MinScale = 1.0
	MaxScale = 5.0
)

var (
	// ErrInvalidPageID is returned by Controller.SelectPage when the id is not
	// in the page list.
	ErrInvalidPageID = errors.New("pinchzoom: invalid page id")
	// ErrNoPages is returned by New when the page list is empty.
	ErrNoPages = errors.New("pinchzoom: page list is empty")
)

// Vec2 is a 2D vector used for offsets, translations and positions.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// EventType identifies the transition that produced a Change.
type EventType uint8

const (
	EventTap                  EventType = iota // tap toggled between zoomed and reset
	EventLongPress                             // long press toggled the highlight
	EventDragChanged                           // drag translation replaced the offset
	EventDragEnded                             // drag finished
	EventMagnificationChanged                  // pinch updated the scale
	EventMagnificationEnded                    // pinch finished
	EventReset                                 // explicit reset
	EventStepScale                             // +/- control pressed
	EventToggleDrawer                          // thumbnail drawer opened or closed
	EventSelectPage                            // another page became current
	EventAppear                                // view appeared; presentation may fade in
)

var eventNames = [...]string{
	EventTap:                  "tap",
	EventLongPress:            "long-press",
	EventDragChanged:          "drag-changed",
	EventDragEnded:            "drag-ended",
	EventMagnificationChanged: "magnification-changed",
	EventMagnificationEnded:   "magnification-ended",
	EventReset:                "reset",
	EventStepScale:            "step-scale",
	EventToggleDrawer:         "toggle-drawer",
	EventSelectPage:           "select-page",
	EventAppear:               "appear",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Continuous reports whether the event fires many times per gesture. The
// presentation layer tracks continuous changes directly and eases the rest.
func (e EventType) Continuous() bool {
	return e == EventDragChanged || e == EventMagnificationChanged
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
