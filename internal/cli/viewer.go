package cli

import (
	"context"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pinchzoom"
)

const (
	pagePadding  = 16
	thumbWidth   = 80
	thumbHeight  = 100
	thumbGap     = 12
	buttonSize   = 36
	buttonGap    = 10
	hotspotSize  = 30
	shadowOffset = 2
	shadowAlpha  = 0.8
)

var (
	colorChrome    = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xd0}
	colorSelection = color.RGBA{R: 0xf0, G: 0xc0, B: 0x40, A: 0xff}
	colorBack      = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}
)

// whitePixel is scaled and tinted to draw solid rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// zoomButton is one of the on-screen zoom controls.
type zoomButton struct {
	label  string
	rect   pinchzoom.Rect
	action func()
}

// viewer is the ebiten.Game presenting a controller.
type viewer struct {
	ctx   context.Context
	ctrl  *pinchzoom.Controller
	rec   *pinchzoom.Recognizer
	input pinchzoom.EbitenInput
	// hotspotRec only sees presses on the info hotspot.
	hotspotRec   *pinchzoom.Recognizer
	hotspotInput pinchzoom.EbitenInput
	anim         *pinchzoom.Animator
	images       pinchzoom.ImageLookup
	logger       *log.Logger

	drawer  pinchzoom.Drawer
	panel   pinchzoom.InfoPanel
	buttons []zoomButton

	width, height int
	now           time.Duration
	started       bool
	unfocused     bool
	touchIDs      []ebiten.TouchID
}

func newViewer(ctx context.Context, ctrl *pinchzoom.Controller, images pinchzoom.ImageLookup, logger *log.Logger, width, height int) *viewer {
	v := &viewer{
		ctx:    ctx,
		ctrl:   ctrl,
		anim:   pinchzoom.NewAnimator(ctrl),
		images: images,
		logger: logger,
		width:  width,
		height: height,
		panel: pinchzoom.InfoPanel{
			Hotspot: pinchzoom.Rect{X: pagePadding, Y: pagePadding, Width: hotspotSize, Height: hotspotSize},
		},
	}
	v.rec = pinchzoom.NewRecognizer(ctrl, ctrl.Config())
	v.rec.SetExclude(v.onChrome)
	v.hotspotRec = pinchzoom.NewRecognizer(panelSink{&v.panel}, ctrl.Config())
	v.hotspotRec.SetExclude(func(x, y float64) bool {
		return !v.panel.HotspotHit(pinchzoom.Vec2{X: x, Y: y})
	})
	v.layoutChrome()
	return v
}

func (v *viewer) close() {
	v.anim.Close()
}

// panelSink toggles the info panel on a long press and drops every other
// gesture.
type panelSink struct{ panel *pinchzoom.InfoPanel }

func (p panelSink) LongPress()                 { p.panel.Toggle() }
func (panelSink) Tap()                         {}
func (panelSink) DragChanged(pinchzoom.Vec2)   {}
func (panelSink) DragEnded()                   {}
func (panelSink) MagnificationChanged(float64) {}
func (panelSink) MagnificationEnded()          {}

// layoutChrome positions the drawer and buttons for the current size.
func (v *viewer) layoutChrome() {
	w, h := float64(v.width), float64(v.height)
	v.drawer = pinchzoom.Drawer{
		Origin:      pinchzoom.Vec2{X: w - thumbWidth - pagePadding, Y: pagePadding + buttonSize + buttonGap},
		ThumbWidth:  thumbWidth,
		ThumbHeight: thumbHeight,
		Gap:         thumbGap,
		Handle:      pinchzoom.Rect{X: w - buttonSize - pagePadding, Y: pagePadding, Width: buttonSize, Height: buttonSize},
	}

	total := float64(3*buttonSize + 2*buttonGap)
	x := (w - total) / 2
	y := h - buttonSize - pagePadding
	v.buttons = []zoomButton{
		{label: "-", action: func() { v.ctrl.StepScale(-1) }},
		{label: "1:1", action: v.ctrl.Reset},
		{label: "+", action: func() { v.ctrl.StepScale(1) }},
	}
	for i := range v.buttons {
		v.buttons[i].rect = pinchzoom.Rect{X: x + float64(i)*(buttonSize+buttonGap), Y: y, Width: buttonSize, Height: buttonSize}
	}
}

// onChrome reports whether (x, y) belongs to a button, the info hotspot or
// the drawer.
func (v *viewer) onChrome(x, y float64) bool {
	if v.panel.HotspotHit(pinchzoom.Vec2{X: x, Y: y}) {
		return true
	}
	for _, b := range v.buttons {
		if b.rect.Contains(x, y) {
			return true
		}
	}
	return v.drawer.Hit(v.ctrl.Pages(), v.ctrl.State().DrawerOpen, x, y)
}

// clickChrome runs the control under a fresh press.
func (v *viewer) clickChrome(x, y float64) {
	for _, b := range v.buttons {
		if b.rect.Contains(x, y) {
			b.action()
			return
		}
	}
	if v.drawer.HandleHit(x, y) {
		v.ctrl.ToggleDrawer()
		return
	}
	if p, ok := v.drawer.PageAt(v.ctrl.Pages(), v.ctrl.State().DrawerOpen, x, y); ok {
		logSelectError(v.logger, v.ctrl.SelectPage(p.ID))
	}
}

func (v *viewer) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		v.ctrl.StepScale(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		v.ctrl.StepScale(-1)
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.ctrl.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		v.ctrl.ToggleDrawer()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		v.panel.Toggle()
	}
}

// Update implements ebiten.Game.
func (v *viewer) Update() error {
	if stopped(v.ctx) {
		return ebiten.Termination
	}
	if !v.started {
		v.started = true
		v.ctrl.Appear()
	}

	v.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.clickChrome(float64(x), float64(y))
	}
	v.touchIDs = inpututil.AppendJustPressedTouchIDs(v.touchIDs[:0])
	for _, id := range v.touchIDs {
		x, y := ebiten.TouchPosition(id)
		v.clickChrome(float64(x), float64(y))
	}

	dt := frameDuration(ebiten.TPS())
	v.now += dt
	if v.syncFocus(ebiten.IsFocused()) {
		v.input.Poll(v.rec, v.ctrl, v.now)
		v.hotspotInput.Poll(v.hotspotRec, nil, v.now)
	}
	v.anim.Update(float32(dt.Seconds()))
	return nil
}

// syncFocus cancels gestures in progress when the window loses focus, so a
// release that happens elsewhere cannot leave a drag or pinch hanging. It
// reports whether input should be polled this frame.
func (v *viewer) syncFocus(focused bool) bool {
	if !focused && !v.unfocused {
		v.rec.Cancel()
		v.hotspotRec.Cancel()
	}
	v.unfocused = !focused
	return focused
}

// frameDuration is the length of one update tick. Ebitengine reports
// SyncWithFPS as a negative TPS; the default rate is used then.
func frameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw implements ebiten.Game.
func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBack)
	st := v.ctrl.State()
	d := v.anim.Display()

	page := v.ctrl.CurrentPage()
	img, err := v.images.Image(page.ImageName)
	if err != nil {
		ebitenutil.DebugPrintAt(screen, err.Error(), pagePadding, v.height/2)
	} else {
		b := img.Bounds()
		view := pinchzoom.View{
			Viewport: pinchzoom.Rect{Width: float64(v.width), Height: float64(v.height)},
			ImageW:   float64(b.Dx()),
			ImageH:   float64(b.Dy()),
			Padding:  pagePadding,
		}
		geo := view.GeoM(d)
		if d.Shadow > 0 {
			op := &ebiten.DrawImageOptions{GeoM: geo}
			op.GeoM.Translate(shadowOffset, shadowOffset)
			op.ColorScale.Scale(0, 0, 0, float32(shadowAlpha*d.Shadow*d.Opacity))
			screen.DrawImage(img, op)
		}
		op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
		op.ColorScale.ScaleAlpha(float32(d.Opacity))
		screen.DrawImage(img, op)
	}

	v.drawChrome(screen, st)
}

func (v *viewer) drawChrome(screen *ebiten.Image, st pinchzoom.TransformState) {
	fillRect(screen, v.panel.Hotspot, colorChrome)
	ebitenutil.DebugPrintAt(screen, "i", int(v.panel.Hotspot.X)+12, int(v.panel.Hotspot.Y)+7)
	if v.panel.Visible {
		ebitenutil.DebugPrintAt(screen, v.panel.Label(st),
			int(v.panel.Hotspot.X+v.panel.Hotspot.Width)+buttonGap, int(v.panel.Hotspot.Y)+7)
	}

	for _, b := range v.buttons {
		fillRect(screen, b.rect, colorChrome)
		ebitenutil.DebugPrintAt(screen, b.label, int(b.rect.X)+8, int(b.rect.Y)+10)
	}

	fillRect(screen, v.drawer.Handle, colorChrome)
	handle := "<"
	if st.DrawerOpen {
		handle = ">"
	}
	ebitenutil.DebugPrintAt(screen, handle, int(v.drawer.Handle.X)+14, int(v.drawer.Handle.Y)+10)
	if !st.DrawerOpen {
		return
	}

	pages := v.ctrl.Pages()
	for i := 0; i < pages.Len(); i++ {
		p := pages.At(i)
		r := v.drawer.ThumbRect(i)
		if p.ID == st.CurrentPageID {
			fillRect(screen, pinchzoom.Rect{X: r.X - 2, Y: r.Y - 2, Width: r.Width + 4, Height: r.Height + 4}, colorSelection)
		}
		fillRect(screen, r, colorChrome)
		img, err := v.images.Image(p.ImageName)
		if err != nil {
			continue
		}
		thumb := pinchzoom.View{Viewport: r, ImageW: float64(img.Bounds().Dx()), ImageH: float64(img.Bounds().Dy())}
		op := &ebiten.DrawImageOptions{GeoM: thumb.GeoM(pinchzoom.Display{Scale: 1}), Filter: ebiten.FilterLinear}
		screen.DrawImage(img, op)
	}
}

// Layout implements ebiten.Game.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.layoutChrome()
	}
	return v.width, v.height
}

func fillRect(dst *ebiten.Image, r pinchzoom.Rect, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel, op)
}
