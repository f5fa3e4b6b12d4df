package gesture

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DefaultsToStderr(t *testing.T) {
	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	e, h, _ := newTestEngine(t, Config{}, square)
	e.SetDebugMode(true)
	h.DispatchWheel(WheelEvent{DeltaY: 20})

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "[gesture] wheel d=(0.000, 0.100)") {
		t.Errorf("expected wheel trace in stderr, got: %q", output)
	}
}

func TestDebugMode_Off(t *testing.T) {
	var buf bytes.Buffer
	e, h, _ := newTestEngine(t, Config{DebugOutput: &buf}, square)
	e.SetDebugMode(true)
	e.SetDebugMode(false)

	press(h, 1, 100, 100)
	move(h, 1, 120, 100)
	e.Detach()

	if buf.Len() != 0 {
		t.Errorf("release mode wrote debug output: %q", buf.String())
	}
}

func TestDebugMode_CountsIgnoredMoves(t *testing.T) {
	var buf bytes.Buffer
	e, h, _ := newTestEngine(t, Config{DebugOutput: &buf}, square)
	e.SetDebugMode(true)

	move(h, 9, 10, 10)
	press(h, 1, 100, 100)
	move(h, 1, 100, 150)
	h.DispatchWheel(WheelEvent{DeltaY: 1, DeltaMode: DeltaLine})
	e.Detach()

	output := buf.String()
	for _, want := range []string{
		"pointer events: 3 | wheel events: 1 | ignored moves: 1",
		"delivered drag: 1 | pinch: 0 | wheel: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("summary missing %q:\n%s", want, output)
		}
	}
}

func TestDescribeGesture(t *testing.T) {
	tests := []struct {
		g    Gesture
		want string
	}{
		{Drag{PointerID: 3, Absolute: Vec2{0.5, 0}, Relative: Vec2{0.25, 0}}, "drag id=3 abs=(0.500, 0.000) rel=(0.250, 0.000)"},
		{Pinch{DZ: 1, DX: 0.1}, "pinch dz=1.000 d=(0.100, 0.000)"},
		{Wheel{DY: -0.2}, "wheel d=(0.000, -0.200)"},
		{Rotate{}, "rotate"},
	}
	for _, tt := range tests {
		if got := describeGesture(tt.g); got != tt.want {
			t.Errorf("describeGesture(%T) = %q, want %q", tt.g, got, tt.want)
		}
	}
}
