package gesture

// Surface is the host the engine attaches to. It delivers raw events to
// registered listeners and reports its bounding rectangle on demand. Each
// registration returns a function that removes the listener; calling it
// more than once must be safe.
type Surface interface {
	Bounds() Rect
	OnPointer(tag ContactTag, fn func(PointerEvent)) (remove func())
	OnWheel(fn func(WheelEvent)) (remove func())
}

// FrameSurface is a Surface that delivers input in polled frames and
// signals the end of each frame.
type FrameSurface interface {
	Surface
	OnFrameEnd(fn func()) (remove func())
}

// listener is one registered callback. Registries are copied on removal and
// never shifted in place, so a dispatch already in progress keeps its view
// and skips entries flagged as removed.
type listener[F any] struct {
	id      uint32
	fn      F
	removed bool
}

func removeListener[F any](s []*listener[F], id uint32) []*listener[F] {
	for i, l := range s {
		if l.id == id {
			l.removed = true
			out := make([]*listener[F], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// HostSurface is an in-memory FrameSurface. Host adapters translate their
// platform input into Dispatch calls; tests drive it directly or through
// the injection queue. Listeners may be added or removed from inside a
// callback.
type HostSurface struct {
	bounds Rect

	pointer  [numContactTags][]*listener[func(PointerEvent)]
	wheel    []*listener[func(WheelEvent)]
	frameEnd []*listener[func()]
	nextID   uint32

	injectQueue [][]syntheticEvent
}

// NewHostSurface creates a surface with the given bounding rectangle.
func NewHostSurface(bounds Rect) *HostSurface {
	return &HostSurface{bounds: bounds}
}

// Bounds returns the surface's current bounding rectangle.
func (h *HostSurface) Bounds() Rect {
	return h.bounds
}

// SetBounds updates the bounding rectangle, e.g. after a resize.
func (h *HostSurface) SetBounds(r Rect) {
	h.bounds = r
}

// OnPointer registers fn for raw contact events with the given tag.
func (h *HostSurface) OnPointer(tag ContactTag, fn func(PointerEvent)) func() {
	h.nextID++
	id := h.nextID
	h.pointer[tag] = append(h.pointer[tag], &listener[func(PointerEvent)]{id: id, fn: fn})
	return func() {
		h.pointer[tag] = removeListener(h.pointer[tag], id)
	}
}

// OnWheel registers fn for raw wheel events.
func (h *HostSurface) OnWheel(fn func(WheelEvent)) func() {
	h.nextID++
	id := h.nextID
	h.wheel = append(h.wheel, &listener[func(WheelEvent)]{id: id, fn: fn})
	return func() {
		h.wheel = removeListener(h.wheel, id)
	}
}

// OnFrameEnd registers fn to run at the end of every frame.
func (h *HostSurface) OnFrameEnd(fn func()) func() {
	h.nextID++
	id := h.nextID
	h.frameEnd = append(h.frameEnd, &listener[func()]{id: id, fn: fn})
	return func() {
		h.frameEnd = removeListener(h.frameEnd, id)
	}
}

// DispatchPointer delivers ev to every listener registered for tag.
func (h *HostSurface) DispatchPointer(tag ContactTag, ev PointerEvent) {
	for _, l := range h.pointer[tag] {
		if !l.removed {
			l.fn(ev)
		}
	}
}

// DispatchWheel delivers ev to every wheel listener.
func (h *HostSurface) DispatchWheel(ev WheelEvent) {
	for _, l := range h.wheel {
		if !l.removed {
			l.fn(ev)
		}
	}
}

// EndFrame signals the end of a frame of input.
func (h *HostSurface) EndFrame() {
	for _, l := range h.frameEnd {
		if !l.removed {
			l.fn()
		}
	}
}

// ListenerCount returns the number of registered listeners of every kind.
func (h *HostSurface) ListenerCount() int {
	n := len(h.wheel) + len(h.frameEnd)
	for i := range h.pointer {
		n += len(h.pointer[i])
	}
	return n
}
