package gesture

import "testing"

func TestNormalizeWheel(t *testing.T) {
	bounds := Rect{Width: 400, Height: 500}

	tests := []struct {
		name   string
		ev     WheelEvent
		wantDX float64
		wantDY float64
	}{
		{"pixel vertical", WheelEvent{DeltaY: 100, DeltaMode: DeltaPixel}, 0, 0.2},
		{"pixel horizontal", WheelEvent{DeltaX: 100, DeltaMode: DeltaPixel}, 0.25, 0},
		{"negative", WheelEvent{DeltaX: -40, DeltaY: -50}, -0.1, -0.1},
		{"line mode is unscaled", WheelEvent{DeltaY: 3, DeltaMode: DeltaLine}, 0, 3.0 / 500},
		{"page mode is unscaled", WheelEvent{DeltaY: 1, DeltaMode: DeltaPage}, 0, 1.0 / 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NormalizeWheel(tt.ev, bounds)
			if !approx(w.DX, tt.wantDX) || !approx(w.DY, tt.wantDY) {
				t.Errorf("NormalizeWheel = (%v, %v), want (%v, %v)", w.DX, w.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestNormalizeWheel_Linear(t *testing.T) {
	bounds := Rect{Width: 300, Height: 300}
	a := NormalizeWheel(WheelEvent{DeltaX: 30}, bounds)
	b := NormalizeWheel(WheelEvent{DeltaX: 60}, bounds)
	if !approx(b.DX, 2*a.DX) {
		t.Errorf("doubling DeltaX: %v, want %v", b.DX, 2*a.DX)
	}

	c := NormalizeWheel(WheelEvent{DeltaX: 30}, Rect{Width: 150, Height: 300})
	if !approx(c.DX, 2*a.DX) {
		t.Errorf("halving width: %v, want %v", c.DX, 2*a.DX)
	}
}

func TestNormalizeWheel_CarriesModifiers(t *testing.T) {
	w := NormalizeWheel(WheelEvent{DeltaY: 1, Modifiers: ModCtrl}, Rect{Width: 1, Height: 1})
	if w.Modifiers != ModCtrl {
		t.Errorf("Modifiers = %v, want ModCtrl", w.Modifiers)
	}
}
