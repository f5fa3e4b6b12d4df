package gesture

import (
	"errors"
	"io"
	"os"
)

var (
	// ErrAttached is returned by Attach when the engine is already attached.
	ErrAttached = errors.New("gesture: engine already attached")
	// ErrNilSurface is returned by Attach when given a nil surface.
	ErrNilSurface = errors.New("gesture: nil surface")
)

// Config holds engine options. The zero value is ready to use.
type Config struct {
	// CoalesceFrames samples the pinch centroid once per frame instead of
	// once per event when the surface is a FrameSurface. Polled hosts move
	// several pointers in one frame; coalescing reports that as one pinch.
	CoalesceFrames bool
	// DebugOutput receives debug trace lines. Defaults to os.Stderr.
	DebugOutput io.Writer
}

// Engine turns the raw input of one attached Surface into gesture events.
// It is single-threaded: all work happens synchronously inside the
// surface's listener callbacks, and callers must not use an Engine from
// more than one goroutine.
type Engine struct {
	cfg Config

	surface  Surface
	removers []func()
	// attachGen counts attachments; handlers compare it to notice a
	// Detach (or Detach and re-Attach) made from inside a callback.
	attachGen uint64

	cache  *PointerCache
	drags  *DragTracker
	pinch  PinchDetector
	merger Merger

	// Frame coalescing state.
	coalesce   bool
	frameDirty bool
	frameGap   bool

	debug bool
	stats debugStats
}

// NewEngine creates a detached engine.
func NewEngine(cfg Config) *Engine {
	if cfg.DebugOutput == nil {
		cfg.DebugOutput = os.Stderr
	}
	return &Engine{
		cfg:   cfg,
		cache: NewPointerCache(),
		drags: NewDragTracker(),
	}
}

// Attach subscribes the engine to every contact tag and to wheel events on
// s. An engine serves one surface at a time.
func (e *Engine) Attach(s Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	if e.surface != nil {
		return ErrAttached
	}
	e.surface = s
	e.attachGen++
	e.stats = debugStats{}
	for tag := TagStart; int(tag) < numContactTags; tag++ {
		e.removers = append(e.removers, s.OnPointer(tag, e.pointerHandler(tag)))
	}
	e.removers = append(e.removers, s.OnWheel(e.handleWheel))

	e.coalesce = false
	if fs, ok := s.(FrameSurface); ok && e.cfg.CoalesceFrames {
		e.coalesce = true
		e.removers = append(e.removers, fs.OnFrameEnd(e.handleFrameEnd))
	}
	return nil
}

// Detach removes every listener the engine added. Open drag sessions are
// abandoned without a completion event, and the pointer cache is cleared.
// Detaching a detached engine is a no-op.
func (e *Engine) Detach() {
	if e.surface == nil {
		return
	}
	for _, remove := range e.removers {
		remove()
	}
	e.removers = e.removers[:0]
	e.surface = nil

	e.cache.Clear()
	e.drags.Reset()
	e.pinch.Reset()
	e.merger.reset()
	e.frameDirty = false
	e.frameGap = false

	if e.debug {
		e.debugSummary()
	}
}

// Attached reports whether the engine is attached to a surface.
func (e *Engine) Attached() bool {
	return e.surface != nil
}

// OnGesture registers a callback that receives every gesture paired with the
// active pointer count. Callbacks run synchronously and must not block.
func (e *Engine) OnGesture(fn func(Event)) CallbackHandle {
	return e.merger.OnGesture(fn)
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.merger.store = store
}

// ActivePointers returns the number of pointers currently in contact.
func (e *Engine) ActivePointers() int {
	return e.cache.Len()
}

// Pointer returns the latest event for an active pointer.
func (e *Engine) Pointer(id int) (TaggedEvent, bool) {
	return e.cache.Get(id)
}

// Dragging returns the identifiers of pointers with an open drag session.
func (e *Engine) Dragging() []int {
	return e.drags.Active()
}

// --- Input processing ---

func (e *Engine) pointerHandler(tag ContactTag) func(PointerEvent) {
	return func(ev PointerEvent) {
		e.handlePointer(Tag(tag, ev))
	}
}

// handlePointer runs one tagged contact event through the cache, the pinch
// detector and the drag tracker, in that order. Processing stops as soon as
// a gesture callback detaches the engine.
func (e *Engine) handlePointer(ev TaggedEvent) {
	if e.surface == nil {
		return
	}
	gen := e.attachGen
	bounds := e.surface.Bounds()
	e.stats.pointerEvents++

	changed := e.cache.Update(ev)
	if ev.Tag == TagMove && !changed {
		e.stats.ignoredMoves++
	}
	e.merger.SetActivePointers(e.cache.Len())
	if e.detachedSince(gen) {
		return
	}

	if changed {
		e.samplePinch(bounds)
		if e.detachedSince(gen) {
			return
		}
	}
	if d, ok := e.drags.Handle(ev, bounds); ok {
		e.merger.Publish(d)
	}
}

// detachedSince reports whether the attachment gen has ended.
func (e *Engine) detachedSince(gen uint64) bool {
	return e.surface == nil || e.attachGen != gen
}

func (e *Engine) samplePinch(bounds Rect) {
	if e.coalesce {
		e.frameDirty = true
		if e.cache.Len() < 2 {
			e.frameGap = true
		}
		return
	}
	if p, ok := e.pinch.Observe(e.cache, bounds); ok {
		e.merger.Publish(p)
	}
}

func (e *Engine) handleFrameEnd() {
	if e.surface == nil || !e.frameDirty {
		return
	}
	if e.frameGap {
		e.pinch.Reset()
	}
	e.frameDirty = false
	e.frameGap = false
	if p, ok := e.pinch.Observe(e.cache, e.surface.Bounds()); ok {
		e.merger.Publish(p)
	}
}

func (e *Engine) handleWheel(ev WheelEvent) {
	if e.surface == nil {
		return
	}
	e.stats.wheelEvents++
	suppress(ev.Native)
	e.merger.Publish(NormalizeWheel(ev, e.surface.Bounds()))
}
