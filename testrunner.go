package pinchzoom

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From   float64 `json:"from,omitempty"` // pinch start distance
	To     float64 `json:"to,omitempty"`   // pinch end distance
	Delta  int     `json:"delta,omitempty"`
	Page   int     `json:"page,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// Script is a parsed gesture script.
type Script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "doubletap": true, "longpress": true, "drag": true,
	"pinch": true, "step": true, "reset": true, "drawer": true,
	"select": true, "wait": true, "snapshot": true,
}

const defaultGestureFrames = 10

// LoadScript parses a JSON gesture script:
//
//	{"steps": [
//		{"action": "doubletap", "x": 320, "y": 240},
//		{"action": "drag", "fromX": 320, "fromY": 240, "toX": 360, "toY": 250},
//		{"action": "snapshot", "label": "panned"}
//	]}
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "pinch" && (st.From <= 0 || st.To <= 0) {
			return nil, fmt.Errorf("parse script: step %d: pinch needs positive from and to", i)
		}
	}
	return &s, nil
}

// Snapshot is the controller state captured by a "snapshot" step.
type Snapshot struct {
	Label string         `json:"label" yaml:"label"`
	Frame int            `json:"frame" yaml:"frame"`
	State TransformState `json:"state" yaml:"state"`
}

// ScriptResult is the outcome of a script run.
type ScriptResult struct {
	Snapshots []Snapshot `json:"snapshots" yaml:"snapshots"`
	// Warnings collects non-fatal failures such as unknown page ids.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Frames   int      `json:"frames" yaml:"frames"`
}

// ScriptRunner replays a Script against a Controller. Gesture steps are
// injected into a Recognizer and played frame by frame on a fixed clock;
// button steps call the controller directly.
type ScriptRunner struct {
	ctrl    *Controller
	rec     *Recognizer
	script  *Script
	frameDT time.Duration
	now     time.Duration
	frame   int
	logger  *log.Logger
}

// NewScriptRunner creates a runner at 60 frames per second. A nil logger
// disables logging.
func NewScriptRunner(ctrl *Controller, script *Script, logger *log.Logger) *ScriptRunner {
	return &ScriptRunner{
		ctrl:    ctrl,
		rec:     NewRecognizer(ctrl, ctrl.Config()),
		script:  script,
		frameDT: time.Second / 60,
		logger:  logger,
	}
}

// Run executes every step and returns the snapshots taken.
func (r *ScriptRunner) Run() ScriptResult {
	var res ScriptResult
	for i, st := range r.script.Steps {
		if r.logger != nil {
			r.logger.Debug("step", "index", i, "action", st.Action)
		}
		switch st.Action {
		case "tap":
			r.rec.InjectTap(st.X, st.Y)
		case "doubletap":
			r.rec.InjectDoubleTap(st.X, st.Y)
		case "longpress":
			r.rec.InjectLongPress(st.X, st.Y, r.longPressFrames())
		case "drag":
			r.rec.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, framesOr(st.Frames))
		case "pinch":
			r.rec.InjectPinch(st.X, st.Y, st.From, st.To, framesOr(st.Frames))
		case "step":
			r.ctrl.StepScale(st.Delta)
		case "reset":
			r.ctrl.Reset()
		case "drawer":
			r.ctrl.ToggleDrawer()
		case "select":
			if err := r.ctrl.SelectPage(st.Page); err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("step %d: %v", i, err))
			}
		case "wait":
			for n := 0; n < st.Frames; n++ {
				r.advance()
			}
		case "snapshot":
			res.Snapshots = append(res.Snapshots, Snapshot{
				Label: st.Label,
				Frame: r.frame,
				State: r.ctrl.State(),
			})
		}
		r.drain()
	}
	res.Frames = r.frame
	return res
}

// drain plays queued injected frames until none are left.
func (r *ScriptRunner) drain() {
	for r.rec.Pending() > 0 {
		r.advance()
	}
}

func (r *ScriptRunner) advance() {
	r.now += r.frameDT
	r.frame++
	r.rec.Step(r.now)
}

// longPressFrames is the number of held frames that crosses the long press
// threshold.
func (r *ScriptRunner) longPressFrames() int {
	d := r.ctrl.Config().LongPressDuration.Duration
	return int(d/r.frameDT) + 2
}

func framesOr(frames int) int {
	if frames > 0 {
		return frames
	}
	return defaultGestureFrames
}
