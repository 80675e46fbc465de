package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Display is what the presentation layer draws: the settled TransformState
// values on their way there, plus the cosmetic fade values.
type Display struct {
	Scale   float64
	Offset  Vec2
	Opacity float64 // page fade-in, 0..1
	Shadow  float64 // highlight shadow strength, 0..1
}

const (
	fieldScale = iota
	fieldOffsetX
	fieldOffsetY
	fieldOpacity
	fieldShadow
	fieldCount
)

// Animator eases the displayed values toward the controller's state. It
// subscribes to the controller on creation; call Close to detach it.
//
// Continuous drag and pinch updates are applied immediately so the image
// tracks the fingers. Discrete transitions spring toward their target, and
// page appearance fades in linearly. Update must be called once per frame.
type Animator struct {
	cfg     Config
	display Display
	tweens  [fieldCount]*gween.Tween
	handle  CallbackHandle
}

// NewAnimator creates an Animator showing c's current state.
func NewAnimator(c *Controller) *Animator {
	st := c.State()
	a := &Animator{
		cfg: c.Config(),
		display: Display{
			Scale:  st.Scale,
			Offset: st.Offset,
		},
	}
	if c.Appeared() {
		a.display.Opacity = 1
	}
	if st.Highlighted {
		a.display.Shadow = 1
	}
	a.handle = c.OnChange(a.apply)
	return a
}

// Close stops following the controller.
func (a *Animator) Close() {
	a.handle.Remove()
}

// Display returns the values to draw this frame.
func (a *Animator) Display() Display { return a.display }

// Animating reports whether any tween is still running.
func (a *Animator) Animating() bool {
	for _, tw := range a.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}

// Update advances all tweens by dt seconds.
func (a *Animator) Update(dt float32) {
	for i, tw := range a.tweens {
		if tw == nil {
			continue
		}
		val, done := tw.Update(dt)
		*a.field(i) = float64(val)
		if done {
			a.tweens[i] = nil
		}
	}
}

func (a *Animator) field(i int) *float64 {
	switch i {
	case fieldScale:
		return &a.display.Scale
	case fieldOffsetX:
		return &a.display.Offset.X
	case fieldOffsetY:
		return &a.display.Offset.Y
	case fieldOpacity:
		return &a.display.Opacity
	default:
		return &a.display.Shadow
	}
}

// tween starts field i toward to, or snaps when duration is zero.
func (a *Animator) tween(i int, to float64, duration float32, fn ease.TweenFunc) {
	p := a.field(i)
	if duration <= 0 {
		*p = to
		a.tweens[i] = nil
		return
	}
	a.tweens[i] = gween.New(float32(*p), float32(to), duration, fn)
}

func (a *Animator) snap(i int, to float64) {
	*a.field(i) = to
	a.tweens[i] = nil
}

func (a *Animator) apply(ch Change) {
	spring := float32(a.cfg.SpringDuration.Seconds())
	after, before := ch.After, ch.Before

	if ch.Kind.Continuous() {
		a.snap(fieldScale, after.Scale)
		a.snap(fieldOffsetX, after.Offset.X)
		a.snap(fieldOffsetY, after.Offset.Y)
	} else {
		if after.Scale != before.Scale || a.display.Scale != after.Scale {
			a.tween(fieldScale, after.Scale, spring, ease.OutBack)
		}
		if after.Offset != before.Offset || a.display.Offset != after.Offset {
			a.tween(fieldOffsetX, after.Offset.X, spring, ease.OutBack)
			a.tween(fieldOffsetY, after.Offset.Y, spring, ease.OutBack)
		}
	}

	if after.Highlighted != before.Highlighted {
		shadow := 0.0
		if after.Highlighted {
			shadow = 1
		}
		a.tween(fieldShadow, shadow, spring/2, ease.Linear)
	}

	if ch.Kind == EventSelectPage || ch.Kind == EventAppear {
		a.display.Opacity = 0
		a.tween(fieldOpacity, 1, float32(a.cfg.AppearDuration.Seconds()), ease.Linear)
	}
}
