package gesture

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action   string  `json:"action"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	DX       float64 `json:"dx,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true, "leave": true,
	"wheel": true, "drag": true, "pinch": true, "wait": true,
}

// Runner sequences injected input across frames, for replaying recorded or
// hand-written gesture scripts against a HostSurface.
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "press", "id": 1, "x": 100, "y": 100},
//	  {"action": "move", "id": 1, "x": 150, "y": 100},
//	  {"action": "release", "id": 1, "x": 150, "y": 100},
//	  {"action": "wheel", "dy": 100},
//	  {"action": "pinch", "id": 2, "x": 100, "y": 100, "fromDist": 50, "toDist": 100, "frames": 4},
//	  {"action": "wait", "frames": 10}
//	]}
func LoadScript(jsonData []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Step advances the runner by one frame: it queues the next step's input
// when the previous step has drained, then replays one queued frame.
func (r *Runner) Step(h *HostSurface) {
	if r.done {
		return
	}
	if h.Pending() == 0 {
		r.advance(h)
	}
	h.Step()
	if r.cursor >= len(r.steps) && r.waitCount == 0 && h.Pending() == 0 {
		r.done = true
	}
}

// Run steps until the script is done.
func (r *Runner) Run(h *HostSurface) {
	for !r.done {
		r.Step(h)
	}
}

func (r *Runner) advance(h *HostSurface) {
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		h.InjectPress(st.ID, st.X, st.Y)
	case "move":
		h.InjectMove(st.ID, st.X, st.Y)
	case "release":
		h.InjectRelease(st.ID, st.X, st.Y)
	case "cancel":
		h.InjectCancel(st.ID, st.X, st.Y)
	case "leave":
		h.InjectLeave(st.ID, st.X, st.Y)
	case "wheel":
		h.InjectWheel(st.DX, st.DY)
	case "drag":
		h.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		h.InjectPinch(st.ID, st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
