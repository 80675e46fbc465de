package pinchzoom

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// TransformState is the visual state of the viewer. It is only mutated
// through Controller methods; State returns a copy.
type TransformState struct {
	Scale         float64 `json:"scale" yaml:"scale"`
	Offset        Vec2    `json:"offset" yaml:"offset"`
	Highlighted   bool    `json:"highlighted" yaml:"highlighted"`
	DrawerOpen    bool    `json:"drawerOpen" yaml:"drawer_open"`
	CurrentPageID int     `json:"currentPageId" yaml:"current_page_id"`
}

// Change describes one completed transition.
type Change struct {
	Kind   EventType
	Before TransformState
	After  TransformState
}

// GestureSink receives recognized gestures. Controller implements it.
type GestureSink interface {
	Tap()
	LongPress()
	DragChanged(translation Vec2)
	DragEnded()
	MagnificationChanged(value float64)
	MagnificationEnded()
}

// Stepper receives discrete zoom steps from buttons, keys or the wheel.
type Stepper interface {
	StepScale(delta int)
}

var (
	_ GestureSink = (*Controller)(nil)
	_ Stepper     = (*Controller)(nil)
)

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithLogger installs a logger. Transitions are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns the TransformState of one viewing session and converts
// gesture events into bounded state transitions. Every method runs to
// completion synchronously; a Controller must not be shared between
// goroutines.
type Controller struct {
	cfg      Config
	pages    *PageList
	state    TransformState
	appeared bool
	session  uuid.UUID
	logger   *log.Logger
	handlers changeRegistry
}

// New creates a Controller for pages with the default state: scale at the
// lower bound, zero offset, drawer open, first page current.
func New(pages *PageList, opts ...Option) (*Controller, error) {
	if pages == nil || pages.Len() == 0 {
		return nil, ErrNoPages
	}
	c := &Controller{
		cfg:     DefaultConfig(),
		pages:   pages,
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	c.state = TransformState{
		Scale:         c.cfg.MinScale,
		DrawerOpen:    true,
		CurrentPageID: pages.At(0).ID,
	}
	return c, nil
}

// State returns a snapshot of the current state.
func (c *Controller) State() TransformState { return c.state }

// Pages returns the page list the controller was created with.
func (c *Controller) Pages() *PageList { return c.pages }

// Config returns the controller's settings.
func (c *Controller) Config() Config { return c.cfg }

// Session returns the id of this viewing session.
func (c *Controller) Session() uuid.UUID { return c.session }

// Appeared reports whether the current page has been shown. SelectPage sets
// it again so the presentation layer can rerun its appearance transition.
func (c *Controller) Appeared() bool { return c.appeared }

// CurrentPage returns the current page record.
func (c *Controller) CurrentPage() Page {
	p, _ := c.pages.Lookup(c.state.CurrentPageID)
	return p
}

// --- Transitions ---

// Tap zooms to TapScale when the image is at its lower bound and resets
// otherwise.
func (c *Controller) Tap() {
	before := c.state
	if c.state.Scale == c.cfg.MinScale {
		c.state.Scale = c.cfg.TapScale
	} else {
		c.reset()
	}
	c.emit(EventTap, before)
}

// LongPress toggles the highlight.
func (c *Controller) LongPress() {
	before := c.state
	c.state.Highlighted = !c.state.Highlighted
	c.emit(EventLongPress, before)
}

// DragChanged replaces the offset with the drag's running translation since
// it started. Translations are absolute, not deltas.
func (c *Controller) DragChanged(translation Vec2) {
	before := c.state
	c.state.Offset = translation
	c.emit(EventDragChanged, before)
}

// DragEnded snaps back when the image is not zoomed in. At higher scales the
// offset stays where the drag left it; panning is unbounded.
func (c *Controller) DragEnded() {
	before := c.state
	if c.state.Scale <= c.cfg.MinScale {
		c.reset()
	}
	c.emit(EventDragEnded, before)
}

// MagnificationChanged applies the gesture's cumulative magnification while
// the scale is within bounds. A scale that overshot the upper bound is pulled
// back to it; one below the lower bound waits for MagnificationEnded.
func (c *Controller) MagnificationChanged(value float64) {
	before := c.state
	switch s := c.state.Scale; {
	case s >= c.cfg.MinScale && s <= c.cfg.MaxScale:
		c.state.Scale = value
	case s > c.cfg.MaxScale:
		c.state.Scale = c.cfg.MaxScale
	}
	c.emit(EventMagnificationChanged, before)
}

// MagnificationEnded settles the scale: clamp to the upper bound, reset at or
// below the lower one.
func (c *Controller) MagnificationEnded() {
	before := c.state
	if c.state.Scale > c.cfg.MaxScale {
		c.state.Scale = c.cfg.MaxScale
	}
	if c.state.Scale <= c.cfg.MinScale {
		c.reset()
	}
	c.emit(EventMagnificationEnded, before)
}

// Reset restores the lower-bound scale and a zero offset. Highlight, drawer
// and current page are left alone.
func (c *Controller) Reset() {
	before := c.state
	c.reset()
	c.emit(EventReset, before)
}

func (c *Controller) reset() {
	c.state.Scale = c.cfg.MinScale
	c.state.Offset = Vec2{}
}

// StepScale adds delta to the scale, clamped to the bounds. Reaching the
// lower bound resets the offset too.
func (c *Controller) StepScale(delta int) {
	before := c.state
	s := clamp(c.state.Scale+float64(delta), c.cfg.MinScale, c.cfg.MaxScale)
	if s <= c.cfg.MinScale {
		c.reset()
	} else {
		c.state.Scale = s
	}
	c.emit(EventStepScale, before)
}

// ToggleDrawer opens or closes the thumbnail drawer.
func (c *Controller) ToggleDrawer() {
	before := c.state
	c.state.DrawerOpen = !c.state.DrawerOpen
	c.emit(EventToggleDrawer, before)
}

// SelectPage makes the page with the given id current and marks it as
// appeared. An unknown id returns an error wrapping ErrInvalidPageID and
// leaves the state unchanged.
func (c *Controller) SelectPage(id int) error {
	if _, ok := c.pages.Lookup(id); !ok {
		if c.logger != nil {
			c.logger.Warn("select page", "session", c.session, "id", id, "err", ErrInvalidPageID)
		}
		return fmt.Errorf("%w: %d", ErrInvalidPageID, id)
	}
	before := c.state
	c.state.CurrentPageID = id
	c.appeared = true
	c.emit(EventSelectPage, before)
	return nil
}

// Appear marks the view as shown. Call it once the first frame is up.
func (c *Controller) Appear() {
	before := c.state
	c.appeared = true
	c.emit(EventAppear, before)
}

// --- Change notification ---

type changeHandler struct {
	id uint32
	fn func(Change)
}

type changeRegistry struct {
	handlers []changeHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id  uint32
	reg *changeRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

// OnChange registers fn to run after every transition.
func (c *Controller) OnChange(fn func(Change)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.handlers = append(c.handlers.handlers, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers}
}

func (c *Controller) emit(kind EventType, before TransformState) {
	ch := Change{Kind: kind, Before: before, After: c.state}
	c.logChange(ch)
	// Callbacks may remove themselves or others while being delivered.
	hs := append([]changeHandler(nil), c.handlers.handlers...)
	for _, h := range hs {
		h.fn(ch)
	}
}
