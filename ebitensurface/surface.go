// Package ebitensurface adapts Ebitengine's polled mouse, touch and wheel
// state into raw gesture events.
//
// Call [Surface.Update] once per tick from your game's Update and keep the
// bounds in sync from Layout:
//
//	surface := ebitensurface.New(gesture.Rect{Width: 640, Height: 480})
//	engine := gesture.NewEngine(gesture.Config{CoalesceFrames: true})
//	_ = engine.Attach(surface)
//
//	func (g *Game) Update() error { g.surface.Update(); return nil }
package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

const (
	maxPointers  = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointer = 0
)

// Surface is a gesture.FrameSurface fed by Ebitengine input. Each Update
// diffs the current input against the previous tick, dispatches the
// resulting contact and wheel events, and ends the frame.
type Surface struct {
	*gesture.HostSurface

	mouseDown   bool
	mouseExited bool // left the bounds while pressed; ignored until release
	mouseButton gesture.MouseButton
	lastMouse   gesture.Vec2

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers]gesture.Vec2
	prevTouchIDs []ebiten.TouchID

	unfocused bool
}

// New creates a surface covering bounds in Ebitengine screen coordinates.
func New(bounds gesture.Rect) *Surface {
	return &Surface{HostSurface: gesture.NewHostSurface(bounds)}
}

// touchPoint is one active touch in a tick's snapshot.
type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// inputState is a snapshot of one tick's input.
type inputState struct {
	cursor  gesture.Vec2
	pressed bool
	button  gesture.MouseButton
	touches []touchPoint
	wheelX  float64
	wheelY  float64
	mods    gesture.KeyModifiers
	focused bool
}

// Update polls Ebitengine input and dispatches one frame of events.
func (s *Surface) Update() {
	s.apply(s.read())
}

// read captures the current Ebitengine input state.
func (s *Surface) read() inputState {
	mx, my := ebiten.CursorPosition()
	in := inputState{
		cursor:  gesture.Vec2{X: float64(mx), Y: float64(my)},
		mods:    readModifiers(),
		focused: ebiten.IsFocused(),
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		in.pressed = true
		if left {
			in.button = gesture.MouseButtonLeft
		} else if right {
			in.button = gesture.MouseButtonRight
		} else {
			in.button = gesture.MouseButtonMiddle
		}
	}

	s.prevTouchIDs = ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	for _, tid := range s.prevTouchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		in.touches = append(in.touches, touchPoint{id: tid, x: float64(tx), y: float64(ty)})
	}

	in.wheelX, in.wheelY = ebiten.Wheel()
	return in
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() gesture.KeyModifiers {
	var mods gesture.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= gesture.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= gesture.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= gesture.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= gesture.ModMeta
	}
	return mods
}

// apply dispatches the events implied by one snapshot and ends the frame.
func (s *Surface) apply(in inputState) {
	if !in.focused {
		if !s.unfocused {
			s.cancelAll(in.mods)
			s.unfocused = true
		}
		s.EndFrame()
		return
	}
	s.unfocused = false

	s.applyMouse(in)
	s.applyTouches(in)

	if in.wheelX != 0 || in.wheelY != 0 {
		// Ebitengine reports wheel-up as positive; DOM-style deltas are the
		// opposite.
		s.DispatchWheel(gesture.WheelEvent{
			DeltaX:    -in.wheelX,
			DeltaY:    -in.wheelY,
			DeltaMode: gesture.DeltaLine,
			X:         in.cursor.X,
			Y:         in.cursor.Y,
			Modifiers: in.mods,
		})
	}
	s.EndFrame()
}

// applyMouse runs the mouse pointer (pointer 0) state machine.
func (s *Surface) applyMouse(in inputState) {
	p := in.cursor
	inside := s.Bounds().Contains(p.X, p.Y)
	moved := p != s.lastMouse

	switch {
	case in.pressed && !s.mouseDown:
		if inside && !s.mouseExited {
			// Capture the button for the duration of this contact.
			s.mouseDown = true
			s.mouseButton = in.button
			s.dispatch(gesture.TagStart, mousePointer, p, gesture.SourceMouse, in.mods)
		}
	case in.pressed && s.mouseDown:
		if moved {
			if inside {
				s.dispatch(gesture.TagMove, mousePointer, p, gesture.SourceMouse, in.mods)
			} else {
				s.dispatch(gesture.TagExitBounds, mousePointer, p, gesture.SourceMouse, in.mods)
				s.mouseDown = false
				s.mouseExited = true
			}
		}
	case !in.pressed && s.mouseDown:
		s.dispatch(gesture.TagEnd, mousePointer, p, gesture.SourceMouse, in.mods)
		s.mouseDown = false
	case !in.pressed:
		s.mouseExited = false
		// Hover move; the engine ignores moves for pointers that never started.
		if moved && inside {
			s.dispatch(gesture.TagMove, mousePointer, p, gesture.SourceMouse, in.mods)
		}
	}
	s.lastMouse = p
}

// applyTouches handles touch input (pointers 1-9).
func (s *Surface) applyTouches(in inputState) {
	var activeSlots [maxPointers]bool
	for _, tp := range in.touches {
		slot, fresh := s.touchSlot(tp.id)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		p := gesture.Vec2{X: tp.x, Y: tp.y}
		if fresh {
			s.dispatch(gesture.TagStart, slot, p, gesture.SourceTouch, in.mods)
		} else if p != s.touchLast[slot] {
			s.dispatch(gesture.TagMove, slot, p, gesture.SourceTouch, in.mods)
		}
		s.touchLast[slot] = p
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			s.dispatch(gesture.TagEnd, i, s.touchLast[i], gesture.SourceTouch, in.mods)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), reporting
// whether the slot was newly allocated. Returns -1 if full.
func (s *Surface) touchSlot(tid ebiten.TouchID) (int, bool) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}

// cancelAll cancels every active contact, e.g. when the window loses focus.
func (s *Surface) cancelAll(mods gesture.KeyModifiers) {
	if s.mouseDown {
		s.dispatch(gesture.TagCancel, mousePointer, s.lastMouse, gesture.SourceMouse, mods)
		s.mouseDown = false
	}
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] {
			s.dispatch(gesture.TagCancel, i, s.touchLast[i], gesture.SourceTouch, mods)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

func (s *Surface) dispatch(tag gesture.ContactTag, id int, p gesture.Vec2, src gesture.Source, mods gesture.KeyModifiers) {
	ev := gesture.PointerEvent{
		PointerID: id,
		X:         p.X,
		Y:         p.Y,
		Source:    src,
		Modifiers: mods,
	}
	if src == gesture.SourceMouse {
		ev.Button = s.mouseButton
	}
	s.DispatchPointer(tag, ev)
}
