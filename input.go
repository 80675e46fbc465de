package pinchzoom

import (
	"math"
	"time"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down        bool
	start       Vec2
	last        Vec2
	pressedAt   time.Duration
	dragging    bool
	longPressed bool
	pinched     bool // took part in a pinch; its release yields no tap or drag end
	ignored     bool // pressed inside an excluded region
}

// --- Tap counting ---

type tapState struct {
	count   int
	lastAt  time.Duration
	lastPos Vec2
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	pointer0    int
	pointer1    int
	initialDist float64
	value       float64
}

// Recognizer turns raw pointer samples into gestures for a GestureSink.
// Timestamps are durations since an arbitrary epoch (usually session start);
// they only need to be monotonic.
//
// A Recognizer is driven from a single goroutine, normally the game loop:
// feed every pointer through Process (or let EbitenInput do it), then call
// Tick once per frame so held pointers can become long presses.
type Recognizer struct {
	cfg      Config
	sink     GestureSink
	pointers [maxPointers]pointerState
	tap      tapState
	pinch    pinchState
	exclude  func(x, y float64) bool

	injectQueue [][]syntheticPointerEvent
}

// NewRecognizer creates a recognizer dispatching to sink with the thresholds
// in cfg.
func NewRecognizer(sink GestureSink, cfg Config) *Recognizer {
	return &Recognizer{cfg: cfg, sink: sink}
}

// SetExclude installs a predicate for screen regions owned by other
// controls, such as buttons or the thumbnail drawer. Presses that start where
// exclude returns true are ignored until released. Nil clears it.
func (r *Recognizer) SetExclude(exclude func(x, y float64) bool) {
	r.exclude = exclude
}

// Pinching reports whether a two-finger pinch is in progress.
func (r *Recognizer) Pinching() bool { return r.pinch.active }

// Dragging reports whether any pointer is dragging.
func (r *Recognizer) Dragging() bool {
	for i := range r.pointers {
		if r.pointers[i].dragging {
			return true
		}
	}
	return false
}

// Cancel drops all pointer, tap and pinch state, ending an active drag or
// pinch so the sink can settle. Use it when the window loses focus.
func (r *Recognizer) Cancel() {
	for i := range r.pointers {
		if r.pointers[i].dragging {
			r.sink.DragEnded()
			break
		}
	}
	if r.pinch.active {
		r.sink.MagnificationEnded()
	}
	r.pointers = [maxPointers]pointerState{}
	r.tap = tapState{}
	r.pinch = pinchState{}
}

// Process runs the pointer state machine for a single pointer.
func (r *Recognizer) Process(pointerID int, x, y float64, pressed bool, now time.Duration) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &r.pointers[pointerID]
	pos := Vec2{x, y}

	switch {
	case pressed && !ps.down:
		if r.exclude != nil && r.exclude(x, y) {
			*ps = pointerState{down: true, ignored: true, last: pos}
			return
		}
		*ps = pointerState{down: true, start: pos, last: pos, pressedAt: now}
		if pointerID > 0 {
			r.detectPinch()
		}

	case !pressed && ps.down:
		ps.last = pos
		switch {
		case ps.ignored, ps.pinched:
		case ps.dragging:
			r.sink.DragEnded()
		case !ps.longPressed:
			r.registerTap(pos, now)
		}
		*ps = pointerState{last: pos}
		if pointerID > 0 {
			r.detectPinch()
		}

	case pressed && ps.down:
		if ps.ignored || pos == ps.last {
			return
		}
		ps.last = pos
		if ps.pinched {
			r.updatePinch()
			return
		}
		if !ps.dragging && distance(pos, ps.start) > r.cfg.DragDeadZone {
			ps.dragging = true
			r.tap.count = 0
		}
		if ps.dragging {
			r.sink.DragChanged(pos.Sub(ps.start))
		}
	}
}

// Tick fires time-based gestures. Call it once per frame after Process.
func (r *Recognizer) Tick(now time.Duration) {
	for i := range r.pointers {
		ps := &r.pointers[i]
		if !ps.down || ps.ignored || ps.dragging || ps.longPressed || ps.pinched {
			continue
		}
		if now-ps.pressedAt >= r.cfg.LongPressDuration.Duration {
			ps.longPressed = true
			r.tap.count = 0
			r.sink.LongPress()
		}
	}
	if r.tap.count > 0 && now-r.tap.lastAt > r.cfg.DoubleTapInterval.Duration {
		r.tap.count = 0
	}
}

// registerTap counts consecutive taps and fires one Tap when the configured
// count is reached.
func (r *Recognizer) registerTap(pos Vec2, now time.Duration) {
	t := &r.tap
	if t.count > 0 && now-t.lastAt <= r.cfg.DoubleTapInterval.Duration &&
		distance(pos, t.lastPos) <= r.cfg.TapSlop {
		t.count++
	} else {
		t.count = 1
	}
	t.lastAt = now
	t.lastPos = pos
	if t.count >= r.cfg.TapCount {
		t.count = 0
		r.sink.Tap()
	}
}

// --- Pinch detection ---

// detectPinch starts a pinch when exactly two touch pointers are down and
// ends it when fewer remain.
func (r *Recognizer) detectPinch() {
	var active [2]int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if r.pointers[i].down && !r.pointers[i].ignored {
			if count < 2 {
				active[count] = i
			}
			count++
		}
	}

	if r.pinch.active {
		p0, p1 := &r.pointers[r.pinch.pointer0], &r.pointers[r.pinch.pointer1]
		if !p0.down || !p1.down {
			r.pinch.active = false
			r.sink.MagnificationEnded()
		}
		return
	}
	if count != 2 {
		return
	}

	ps0, ps1 := &r.pointers[active[0]], &r.pointers[active[1]]
	// A drag already running on either finger ends before the pinch takes over.
	if ps0.dragging || ps1.dragging {
		r.sink.DragEnded()
	}
	for _, ps := range []*pointerState{ps0, ps1} {
		ps.dragging = false
		ps.pinched = true
	}
	r.tap.count = 0
	r.pinch = pinchState{
		active:      true,
		pointer0:    active[0],
		pointer1:    active[1],
		initialDist: distance(ps0.last, ps1.last),
		value:       1,
	}
}

// updatePinch reports the cumulative magnification since the pinch began.
func (r *Recognizer) updatePinch() {
	if !r.pinch.active {
		return
	}
	ps0 := &r.pointers[r.pinch.pointer0]
	ps1 := &r.pointers[r.pinch.pointer1]
	value := 1.0
	if r.pinch.initialDist > 0 {
		value = distance(ps0.last, ps1.last) / r.pinch.initialDist
	}
	if value == r.pinch.value {
		return
	}
	r.pinch.value = value
	r.sink.MagnificationChanged(value)
}

func distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
