package gesture

// wheelUnit returns the multiplier for a delta mode. Line and page deltas
// are not converted to pixels.
func wheelUnit(DeltaMode) float64 {
	return 1
}

// NormalizeWheel converts a raw wheel event into deltas expressed as a
// fraction of the surface size.
func NormalizeWheel(ev WheelEvent, bounds Rect) Wheel {
	unit := wheelUnit(ev.DeltaMode)
	return Wheel{
		DX:        unit * ev.DeltaX / bounds.Width,
		DY:        unit * ev.DeltaY / bounds.Height,
		Modifiers: ev.Modifiers,
	}
}
