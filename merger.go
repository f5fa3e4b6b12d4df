package gesture

// EntityStore is the interface for optional ECS integration.
// When set on an Engine, every delivered Event is forwarded to it.
type EntityStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type gestureHandler struct {
	id      uint32
	fn      func(Event)
	removed bool
}

// handlerRegistry never mutates a handler slice in place, so a delivery
// already ranging over it is unaffected by removals made from a callback.
type handlerRegistry struct {
	gesture []*gestureHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.gesture = removeGestureHandler(h.reg.gesture, h.id)
}

func removeGestureHandler(s []*gestureHandler, id uint32) []*gestureHandler {
	for i, h := range s {
		if h.id == id {
			h.removed = true
			out := make([]*gestureHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// --- Merger ---

// Merger fans gestures from the drag, pinch and wheel producers into one
// ordered sequence and pairs each with the latest active pointer count.
// When the count changes the latest gesture is delivered again with the new
// count. Nothing is delivered before the first gesture.
type Merger struct {
	handlers handlerRegistry
	store    EntityStore

	latest Gesture
	active int

	// onDeliver observes every delivery; used by the engine's debug trace.
	onDeliver func(Event)
}

// OnGesture registers a callback that receives every delivered Event.
func (m *Merger) OnGesture(fn func(Event)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.gesture = append(m.handlers.gesture, &gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers}
}

// Publish delivers g paired with the current active pointer count.
func (m *Merger) Publish(g Gesture) {
	m.latest = g
	m.deliver(false)
}

// SetActivePointers records the active pointer count and, if it changed and
// a gesture has been published, delivers the latest gesture again.
func (m *Merger) SetActivePointers(n int) {
	if n == m.active {
		return
	}
	m.active = n
	if m.latest != nil {
		m.deliver(true)
	}
}

// ActivePointers returns the last recorded active pointer count.
func (m *Merger) ActivePointers() int {
	return m.active
}

// Latest returns the most recently published gesture, or nil.
func (m *Merger) Latest() Gesture {
	return m.latest
}

// reset forgets the latest gesture and count. Subscribers are kept.
func (m *Merger) reset() {
	m.latest = nil
	m.active = 0
}

func (m *Merger) deliver(replayed bool) {
	ev := Event{Gesture: m.latest, ActivePointers: m.active, Replayed: replayed}
	for _, h := range m.handlers.gesture {
		if !h.removed {
			h.fn(ev)
		}
	}
	if m.store != nil {
		m.store.EmitEvent(ev)
	}
	if m.onDeliver != nil {
		m.onDeliver(ev)
	}
}
