package pinchzoom

import "time"

// syntheticPointerEvent is one injected pointer sample. Events queued
// together form a frame and are applied by a single Step call.
type syntheticPointerEvent struct {
	pointerID int
	x, y      float64
	pressed   bool
}

// Touch pointers used by InjectPinch.
const (
	injectPinchPointer0 = 1
	injectPinchPointer1 = 2
)

func (r *Recognizer) injectFrame(events ...syntheticPointerEvent) {
	r.injectQueue = append(r.injectQueue, events)
}

// Pending reports how many injected frames are still queued.
func (r *Recognizer) Pending() int { return len(r.injectQueue) }

// InjectPress queues a mouse press at (x, y).
func (r *Recognizer) InjectPress(x, y float64) {
	r.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a mouse move at (x, y) with the button held.
func (r *Recognizer) InjectMove(x, y float64) {
	r.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a mouse release at (x, y).
func (r *Recognizer) InjectRelease(x, y float64) {
	r.injectFrame(syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press followed by a release. Consumes two frames.
func (r *Recognizer) InjectTap(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDoubleTap queues two taps at the same point. Consumes four frames,
// well inside DoubleTapInterval at any normal frame rate.
func (r *Recognizer) InjectDoubleTap(x, y float64) {
	r.InjectTap(x, y)
	r.InjectTap(x, y)
}

// InjectLongPress queues a press held still for frames frames, then a
// release. Pick frames so that frames*dt exceeds LongPressDuration.
func (r *Recognizer) InjectLongPress(x, y float64, frames int) {
	r.InjectPress(x, y)
	for i := 1; i < frames; i++ {
		r.InjectMove(x, y)
	}
	r.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames and a release at
// (toX, toY). Minimum frames is 3 so the drag reaches its end point while
// held.
func (r *Recognizer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centred on (cx, cy) whose
// finger distance goes from fromDist to toDist over frames-2 move frames.
// The reported magnification ends at toDist/fromDist.
func (r *Recognizer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(dist float64, pressed bool) []syntheticPointerEvent {
		return []syntheticPointerEvent{
			{pointerID: injectPinchPointer0, x: cx - dist/2, y: cy, pressed: pressed},
			{pointerID: injectPinchPointer1, x: cx + dist/2, y: cy, pressed: pressed},
		}
	}
	r.injectFrame(pair(fromDist, true)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.injectFrame(pair(fromDist+(toDist-fromDist)*t, true)...)
	}
	r.injectFrame(pair(toDist, false)...)
}

// Step applies the next injected frame, if any, and then runs Tick.
// Returns true if a frame was consumed.
func (r *Recognizer) Step(now time.Duration) bool {
	consumed := false
	if len(r.injectQueue) > 0 {
		frame := r.injectQueue[0]
		copy(r.injectQueue, r.injectQueue[1:])
		r.injectQueue[len(r.injectQueue)-1] = nil
		r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
		for _, evt := range frame {
			r.Process(evt.pointerID, evt.x, evt.y, evt.pressed, now)
		}
		consumed = true
	}
	r.Tick(now)
	return consumed
}
