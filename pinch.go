package gesture

import "math"

// CentroidSample is the spread of the active pointers around their centroid.
type CentroidSample struct {
	// Magnitude is the sum, not the mean, of every pointer's distance from
	// Centroid, so it grows with the number of contacts.
	Magnitude float64
	// Centroid is the mean pointer position in NDC.
	Centroid Vec2
}

// Centroid samples the cache. It returns false when fewer than two pointers
// are active.
func Centroid(cache *PointerCache, bounds Rect) (CentroidSample, bool) {
	n := cache.Len()
	if n < 2 {
		return CentroidSample{}, false
	}

	points := make([]Vec2, 0, n)
	var sx, sy float64
	cache.Each(func(ev TaggedEvent) {
		p := MapCoordinates(bounds, ev.Raw.Position()).NDC
		points = append(points, p)
		sx += p.X
		sy += p.Y
	})
	c := Vec2{X: sx / float64(n), Y: sy / float64(n)}

	var mag float64
	for _, p := range points {
		mag += math.Hypot(p.X-c.X, p.Y-c.Y)
	}
	return CentroidSample{Magnitude: mag, Centroid: c}, true
}

// PinchDetector pairs consecutive centroid samples. The pairing window
// restarts whenever fewer than two pointers are active, so no delta is
// computed across a gap.
type PinchDetector struct {
	prev   CentroidSample
	primed bool
}

// Observe samples the cache and returns the delta from the previous sample.
func (d *PinchDetector) Observe(cache *PointerCache, bounds Rect) (Pinch, bool) {
	sample, ok := Centroid(cache, bounds)
	if !ok {
		d.primed = false
		return Pinch{}, false
	}
	return d.observeSample(sample)
}

func (d *PinchDetector) observeSample(sample CentroidSample) (Pinch, bool) {
	if !d.primed {
		d.prev = sample
		d.primed = true
		return Pinch{}, false
	}
	p := Pinch{
		DZ: sample.Magnitude - d.prev.Magnitude,
		DX: sample.Centroid.X - d.prev.Centroid.X,
		DY: sample.Centroid.Y - d.prev.Centroid.Y,
	}
	d.prev = sample
	return p, true
}

// Reset drops the previous sample.
func (d *PinchDetector) Reset() {
	d.primed = false
	d.prev = CentroidSample{}
}
