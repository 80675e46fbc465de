// Package pinchzoom turns pointer gestures into a bounded image transform for
// a paged image viewer on [Ebitengine].
//
// The core is [Controller], a small state machine over [TransformState]:
// scale, pan offset, a highlight flag, the thumbnail drawer state and the
// current page. Every transition runs to completion on the caller's
// goroutine; there is no locking.
//
// # Quick start
//
//	pages, _ := pinchzoom.LoadPages(data)
//	ctrl, _ := pinchzoom.New(pages)
//
//	ctrl.Tap()                      // 1x -> 5x
//	ctrl.DragChanged(pinchzoom.Vec2{X: 40, Y: -12})
//	ctrl.DragEnded()                // keeps the offset while zoomed
//	ctrl.Tap()                      // back to 1x, offset cleared
//
// # Gestures
//
// [Recognizer] converts raw pointer presses, moves and releases into
// controller calls: multi-tap counting, long press, drag and two-finger
// pinch. [EbitenInput] polls mouse, touch and wheel input into a recognizer
// once per frame. Gestures can also be injected for tests and scripted
// replays:
//
//	r := pinchzoom.NewRecognizer(ctrl, ctrl.Config())
//	r.InjectDoubleTap(200, 200)
//	r.InjectPinch(200, 200, 50, 150, 10)
//
// # Scale bounds
//
// Every settled state keeps Scale within [Config.MinScale, Config.MaxScale]
// (1 and 5 by default). Scale may leave that range while a magnification
// gesture is in progress; [Controller.MagnificationEnded] brings it back.
//
// # Presentation
//
// [Animator] eases displayed values toward the settled state with [gween].
// [View] computes the image matrix for a viewport, [Drawer] lays out and hit
// tests page thumbnails and [InfoPanel] formats a scale and offset readout.
//
// # Scripts
//
// [ScriptRunner] replays JSON gesture scripts against a controller on a fixed
// clock and returns labelled [Snapshot] values. The pinchzoom command runs
// them with `pinchzoom replay`.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pinchzoom
