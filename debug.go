package gesture

import (
	"fmt"
)

// debugStats holds counters for the current attachment; Attach resets them.
// Delivered gestures are counted only while debug mode is on, and the
// counters are reported on Detach in debug mode.
type debugStats struct {
	pointerEvents int
	wheelEvents   int
	ignoredMoves  int
	delivered     [len(kindNames)]int
}

// SetDebugMode enables or disables debug mode. When enabled, one line per
// delivered event is written to Config.DebugOutput, and a summary of the
// attachment's counters is written on Detach.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled {
		e.merger.onDeliver = e.debugTrace
	} else {
		e.merger.onDeliver = nil
	}
}

// debugTrace prints one delivered event.
func (e *Engine) debugTrace(ev Event) {
	if ev.Replayed {
		_, _ = fmt.Fprintf(e.cfg.DebugOutput, "[gesture] replay %s | active: %d\n",
			ev.Gesture.Kind(), ev.ActivePointers)
		return
	}
	if k := ev.Gesture.Kind(); int(k) < len(e.stats.delivered) {
		e.stats.delivered[k]++
	}
	_, _ = fmt.Fprintf(e.cfg.DebugOutput, "[gesture] %s | active: %d\n",
		describeGesture(ev.Gesture), ev.ActivePointers)
}

// debugSummary prints the counters collected during this attachment.
func (e *Engine) debugSummary() {
	s := e.stats
	_, _ = fmt.Fprintf(e.cfg.DebugOutput,
		"[gesture] pointer events: %d | wheel events: %d | ignored moves: %d\n",
		s.pointerEvents, s.wheelEvents, s.ignoredMoves)
	_, _ = fmt.Fprintf(e.cfg.DebugOutput,
		"[gesture] delivered drag: %d | pinch: %d | wheel: %d\n",
		s.delivered[KindDrag], s.delivered[KindPinch], s.delivered[KindWheel])
}

// describeGesture formats a gesture for the debug trace.
func describeGesture(g Gesture) string {
	switch g := g.(type) {
	case Drag:
		return fmt.Sprintf("drag id=%d abs=(%.3f, %.3f) rel=(%.3f, %.3f)",
			g.PointerID, g.Absolute.X, g.Absolute.Y, g.Relative.X, g.Relative.Y)
	case Pinch:
		return fmt.Sprintf("pinch dz=%.3f d=(%.3f, %.3f)", g.DZ, g.DX, g.DY)
	case Wheel:
		return fmt.Sprintf("wheel d=(%.3f, %.3f)", g.DX, g.DY)
	case Tap, Press, LongPress, Rotate, Pan:
		return g.Kind().String()
	default:
		return "unknown"
	}
}
