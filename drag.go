package gesture

import "sort"

// --- Drag session state machine ---

type dragState uint8

const (
	dragActive dragState = iota
	dragTerminated
)

// dragSession tracks one pointer from its start event until the first
// terminal event bearing the same identifier.
type dragSession struct {
	pointerID int
	state     dragState
	start     PointerEvent
	prev      PointerEvent // start until the first move
}

// handle advances the session by one event for its own pointer.
func (s *dragSession) handle(ev TaggedEvent, bounds Rect) (Drag, bool) {
	if s.state != dragActive {
		return Drag{}, false
	}
	switch {
	case ev.Tag == TagMove:
		cur := ev.Raw.Position()
		d := Drag{
			Phase:     PhaseDragging,
			PointerID: s.pointerID,
			Current:   ev.Raw,
			Absolute:  Difference(bounds, cur, s.start.Position()),
			Relative:  Difference(bounds, cur, s.prev.Position()),
		}
		s.prev = ev.Raw
		return d, true
	case ev.Tag.Terminal():
		s.state = dragTerminated
	}
	return Drag{}, false
}

// DragTracker runs one drag session per pointer identifier. Sessions for
// different pointers never share state.
type DragTracker struct {
	sessions map[int]*dragSession
}

// NewDragTracker returns a tracker with no open sessions.
func NewDragTracker() *DragTracker {
	return &DragTracker{sessions: make(map[int]*dragSession)}
}

// Handle routes ev to the session for its pointer. A start opens a new
// session, replacing any session already open for that identifier. Moves and
// terminal events for pointers with no open session are ignored.
func (t *DragTracker) Handle(ev TaggedEvent, bounds Rect) (Drag, bool) {
	if ev.Tag == TagStart {
		t.sessions[ev.PointerID] = &dragSession{
			pointerID: ev.PointerID,
			state:     dragActive,
			start:     ev.Raw,
			prev:      ev.Raw,
		}
		return Drag{}, false
	}

	s, ok := t.sessions[ev.PointerID]
	if !ok {
		return Drag{}, false
	}
	d, emitted := s.handle(ev, bounds)
	if s.state == dragTerminated {
		delete(t.sessions, ev.PointerID)
	}
	return d, emitted
}

// Active returns the identifiers of open sessions in ascending order.
func (t *DragTracker) Active() []int {
	ids := make([]int, 0, len(t.sessions))
	for id := range t.sessions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Reset abandons every open session without emitting anything.
func (t *DragTracker) Reset() {
	clear(t.sessions)
}
