package gesture

// syntheticEvent is a single injected raw event. Coordinates are client
// coordinates, identical to what a real host would deliver.
type syntheticEvent struct {
	wheel   bool
	tag     ContactTag
	pointer PointerEvent
	scroll  WheelEvent
}

func contactEvent(tag ContactTag, id int, x, y float64) syntheticEvent {
	return syntheticEvent{
		tag: tag,
		pointer: PointerEvent{
			PointerID: id,
			X:         x,
			Y:         y,
			Source:    SourceTouch,
		},
	}
}

// injectFrame queues events to be dispatched together as one frame.
func (h *HostSurface) injectFrame(events ...syntheticEvent) {
	h.injectQueue = append(h.injectQueue, events)
}

// InjectPress queues a contact start for pointer id at (x, y). Each Inject
// call queues one frame; frames are replayed by Step or Drain.
func (h *HostSurface) InjectPress(id int, x, y float64) {
	h.injectFrame(contactEvent(TagStart, id, x, y))
}

// InjectMove queues a move of pointer id to (x, y).
func (h *HostSurface) InjectMove(id int, x, y float64) {
	h.injectFrame(contactEvent(TagMove, id, x, y))
}

// InjectRelease queues a contact end for pointer id at (x, y).
func (h *HostSurface) InjectRelease(id int, x, y float64) {
	h.injectFrame(contactEvent(TagEnd, id, x, y))
}

// InjectCancel queues a platform cancel for pointer id.
func (h *HostSurface) InjectCancel(id int, x, y float64) {
	h.injectFrame(contactEvent(TagCancel, id, x, y))
}

// InjectLeave queues the pointer leaving the surface at (x, y).
func (h *HostSurface) InjectLeave(id int, x, y float64) {
	h.injectFrame(contactEvent(TagExitElement, id, x, y))
}

// InjectWheel queues a pixel-mode wheel event.
func (h *HostSurface) InjectWheel(dx, dy float64) {
	h.injectFrame(syntheticEvent{
		wheel:  true,
		scroll: WheelEvent{DeltaX: dx, DeltaY: dy, DeltaMode: DeltaPixel},
	})
}

// InjectDrag queues a full drag for pointer id: a press at (fromX, fromY),
// frames-2 linearly interpolated moves, and a final move and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (h *HostSurface) InjectDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.injectFrame(
		contactEvent(TagMove, id, toX, toY),
		contactEvent(TagEnd, id, toX, toY),
	)
}

// InjectPinch queues a two-pointer pinch centered on (cx, cy) along the X
// axis. Pointers id and id+1 press fromDist apart, spread linearly to toDist
// over frames-2 frames, and release in a final frame. Both pointers move in
// the same frame. Minimum frames is 2 (press + release).
func (h *HostSurface) InjectPinch(id int, cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a, b := id, id+1
	h.injectFrame(
		contactEvent(TagStart, a, cx-fromDist/2, cy),
		contactEvent(TagStart, b, cx+fromDist/2, cy),
	)
	steps := frames - 2
	d := fromDist
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d = fromDist + (toDist-fromDist)*t
		h.injectFrame(
			contactEvent(TagMove, a, cx-d/2, cy),
			contactEvent(TagMove, b, cx+d/2, cy),
		)
	}
	h.injectFrame(
		contactEvent(TagEnd, a, cx-d/2, cy),
		contactEvent(TagEnd, b, cx+d/2, cy),
	)
}

// Pending returns the number of queued frames.
func (h *HostSurface) Pending() int {
	return len(h.injectQueue)
}

// Step pops one queued frame, dispatches its events in order and ends the
// frame. Returns false if the queue was empty.
func (h *HostSurface) Step() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	frame := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue[len(h.injectQueue)-1] = nil
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	for _, ev := range frame {
		if ev.wheel {
			h.DispatchWheel(ev.scroll)
		} else {
			h.DispatchPointer(ev.tag, ev.pointer)
		}
	}
	h.EndFrame()
	return true
}

// Drain steps until the queue is empty.
func (h *HostSurface) Drain() {
	for h.Step() {
	}
}
