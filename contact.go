package gesture

// PointerEvent is a raw contact event as delivered by a host surface.
type PointerEvent struct {
	PointerID int
	// X and Y are client coordinates, the same space as Surface.Bounds.
	X, Y      float64
	Source    Source
	Button    MouseButton
	Modifiers KeyModifiers
	// Native is the platform event, if any. When it implements
	// DefaultPreventer or PropagationStopper the engine calls it.
	Native any
}

// Position returns the client-space position of the event.
func (e PointerEvent) Position() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// WheelEvent is a raw wheel-scroll event as delivered by a host surface.
type WheelEvent struct {
	DeltaX, DeltaY float64
	DeltaMode      DeltaMode
	X, Y           float64
	Modifiers      KeyModifiers
	Native         any
}

// DefaultPreventer is implemented by native events whose platform default
// action (page scroll, zoom) can be suppressed.
type DefaultPreventer interface {
	PreventDefault()
}

// PropagationStopper is implemented by native events that can be kept from
// reaching enclosing elements.
type PropagationStopper interface {
	StopPropagation()
}

// TaggedEvent is a raw contact event paired with its discriminant tag.
type TaggedEvent struct {
	Tag       ContactTag
	PointerID int
	Raw       PointerEvent
}

// Tag wraps ev with tag and suppresses the platform's default handling.
// Element-exit events additionally stop propagation.
func Tag(tag ContactTag, ev PointerEvent) TaggedEvent {
	suppress(ev.Native)
	if tag == TagExitElement {
		if s, ok := ev.Native.(PropagationStopper); ok {
			s.StopPropagation()
		}
	}
	return TaggedEvent{Tag: tag, PointerID: ev.PointerID, Raw: ev}
}

func suppress(native any) {
	if p, ok := native.(DefaultPreventer); ok {
		p.PreventDefault()
	}
}
