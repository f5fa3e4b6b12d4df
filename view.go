package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultMinZoom      = 0.1
	defaultMaxZoom      = 10.0
	defaultWheelZoomDur = 0.15 // seconds
)

// View is a pan/zoom state driven by gesture events: the kind of consumer a
// renderer's camera binds to. Offsets are in NDC units of the surface.
//
// A single-pointer drag pans, a pinch zooms by its spread change and pans by
// its centroid change, and a wheel eases the zoom toward a new target.
type View struct {
	// X and Y are the pan offset.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom).
	Zoom float64
	// MinZoom and MaxZoom clamp Zoom.
	MinZoom, MaxZoom float64

	// WheelDuration and WheelEase configure the wheel zoom tween.
	WheelDuration float32
	WheelEase     ease.TweenFunc

	zoomTween  *gween.Tween
	zoomTarget float64
}

// NewView returns a view at the origin with zoom 1.
func NewView() *View {
	return &View{
		Zoom:          1,
		MinZoom:       defaultMinZoom,
		MaxZoom:       defaultMaxZoom,
		WheelDuration: defaultWheelZoomDur,
		WheelEase:     ease.OutQuad,
	}
}

// Apply updates the view from one delivered event. Replayed events are
// ignored so no delta is applied twice.
func (v *View) Apply(ev Event) {
	if ev.Replayed {
		return
	}
	switch g := ev.Gesture.(type) {
	case Drag:
		if ev.ActivePointers > 1 {
			return
		}
		v.X += g.Relative.X / v.Zoom
		v.Y += g.Relative.Y / v.Zoom
	case Pinch:
		v.zoomTween = nil
		v.Zoom = v.clamp(v.Zoom * (1 + g.DZ))
		v.X += g.DX / v.Zoom
		v.Y += g.DY / v.Zoom
	case Wheel:
		target := v.Zoom
		if v.zoomTween != nil {
			target = v.zoomTarget
		}
		v.ZoomTo(target*(1-g.DY), v.WheelDuration, v.WheelEase)
	case Tap, Press, LongPress, Rotate, Pan:
	}
}

// ZoomTo eases Zoom to z over duration seconds.
func (v *View) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	v.zoomTarget = v.clamp(z)
	v.zoomTween = gween.New(float32(v.Zoom), float32(v.zoomTarget), duration, easeFn)
}

// Animating reports whether a zoom tween is running.
func (v *View) Animating() bool {
	return v.zoomTween != nil
}

// Update advances the zoom tween by dt seconds.
func (v *View) Update(dt float32) {
	if v.zoomTween == nil {
		return
	}
	val, done := v.zoomTween.Update(dt)
	v.Zoom = float64(val)
	if done {
		v.Zoom = v.zoomTarget
		v.zoomTween = nil
	}
}

func (v *View) clamp(z float64) float64 {
	if z < v.MinZoom {
		return v.MinZoom
	}
	if z > v.MaxZoom {
		return v.MaxZoom
	}
	return z
}
