package pinchzoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenInput polls Ebitengine's mouse, touch and wheel state and feeds it to
// a Recognizer. The zero value is ready to use.
type EbitenInput struct {
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	wheel        float64
}

// Poll processes one frame of input. Injected frames queued on r take
// precedence over real input, so scripted runs are not disturbed by the
// cursor. Whole wheel notches are sent to stepper; a nil stepper ignores the
// wheel.
func (in *EbitenInput) Poll(r *Recognizer, stepper Stepper, now time.Duration) {
	if r.Pending() > 0 {
		r.Step(now)
		return
	}
	in.pollMouse(r, now)
	in.pollTouches(r, now)
	if stepper != nil {
		in.pollWheel(stepper)
	}
	r.Tick(now)
}

// pollMouse handles mouse input (pointer 0). Only the left button drives
// gestures.
func (in *EbitenInput) pollMouse(r *Recognizer, now time.Duration) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	r.Process(0, float64(mx), float64(my), pressed, now)
}

// pollTouches handles touch input (pointers 1-9).
func (in *EbitenInput) pollTouches(r *Recognizer, now time.Duration) {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		r.Process(slot, float64(tx), float64(ty), true, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &r.pointers[i]
			if ps.down {
				r.Process(i, ps.last.X, ps.last.Y, false, now)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *EbitenInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (in *EbitenInput) pollWheel(stepper Stepper) {
	_, dy := ebiten.Wheel()
	in.addWheel(dy, stepper)
}

// addWheel accumulates vertical wheel movement and emits one step per whole
// notch. Fractional movement from trackpads carries over to later frames.
func (in *EbitenInput) addWheel(dy float64, stepper Stepper) {
	in.wheel += dy
	for in.wheel >= 1 {
		in.wheel--
		stepper.StepScale(1)
	}
	for in.wheel <= -1 {
		in.wheel++
		stepper.StepScale(-1)
	}
}
