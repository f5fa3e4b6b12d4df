// Package termsurface turns tcell terminal events into raw gesture events.
// Coordinates are terminal cells. Each mouse button is its own pointer, so
// holding two buttons while moving produces a two-pointer contact set.
package termsurface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/gesture"
)

// Pointer IDs assigned to the mouse buttons.
const (
	PointerPrimary   = 1
	PointerSecondary = 2
	PointerMiddle    = 3
)

var buttons = [...]struct {
	mask   tcell.ButtonMask
	id     int
	button gesture.MouseButton
}{
	{tcell.Button1, PointerPrimary, gesture.MouseButtonLeft},
	{tcell.Button2, PointerSecondary, gesture.MouseButtonRight},
	{tcell.Button3, PointerMiddle, gesture.MouseButtonMiddle},
}

// Surface is a gesture.FrameSurface fed from a tcell event loop. Every
// handled event is delivered as one frame.
type Surface struct {
	*gesture.HostSurface

	held   tcell.ButtonMask
	exited tcell.ButtonMask // left the bounds while held; ignored until release
	last   gesture.Vec2
}

// New creates a surface covering bounds, in cells.
func New(bounds gesture.Rect) *Surface {
	return &Surface{HostSurface: gesture.NewHostSurface(bounds)}
}

// HandleEvent dispatches the raw events implied by ev and reports whether
// the surface consumed it. Mouse, focus and resize events are consumed;
// everything else is left to the caller.
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			s.cancelAll()
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		b := s.Bounds()
		b.Width, b.Height = float64(w), float64(h)
		s.SetBounds(b)
	default:
		return false
	}
	s.EndFrame()
	return true
}

func (s *Surface) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := gesture.Vec2{X: float64(x), Y: float64(y)}
	mods := modifiers(ev.Modifiers())
	mask := ev.Buttons()
	inside := s.Bounds().Contains(p.X, p.Y)
	moved := p != s.last

	for _, b := range buttons {
		down := mask&b.mask != 0
		wasDown := s.held&b.mask != 0
		switch {
		case down && !wasDown:
			if inside && s.exited&b.mask == 0 {
				s.held |= b.mask
				s.dispatch(gesture.TagStart, b.id, b.button, p, mods)
			}
		case down && wasDown && moved:
			if inside {
				s.dispatch(gesture.TagMove, b.id, b.button, p, mods)
			} else {
				s.dispatch(gesture.TagExitBounds, b.id, b.button, p, mods)
				s.held &^= b.mask
				s.exited |= b.mask
			}
		case !down && wasDown:
			s.dispatch(gesture.TagEnd, b.id, b.button, p, mods)
			s.held &^= b.mask
		case !down:
			s.exited &^= b.mask
		}
	}

	// Plain motion with nothing held.
	if s.held == 0 && mask == tcell.ButtonNone && moved && inside {
		s.dispatch(gesture.TagMove, PointerPrimary, gesture.MouseButtonLeft, p, mods)
	}

	var dx, dy float64
	if mask&tcell.WheelUp != 0 {
		dy--
	}
	if mask&tcell.WheelDown != 0 {
		dy++
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		s.DispatchWheel(gesture.WheelEvent{
			DeltaX:    dx,
			DeltaY:    dy,
			DeltaMode: gesture.DeltaLine,
			X:         p.X,
			Y:         p.Y,
			Modifiers: mods,
			Native:    ev,
		})
	}
	s.last = p
}

// cancelAll cancels every held button.
func (s *Surface) cancelAll() {
	for _, b := range buttons {
		if s.held&b.mask != 0 {
			s.dispatch(gesture.TagCancel, b.id, b.button, s.last, 0)
		}
	}
	s.held = 0
	s.exited = 0
}

func (s *Surface) dispatch(tag gesture.ContactTag, id int, button gesture.MouseButton, p gesture.Vec2, mods gesture.KeyModifiers) {
	s.DispatchPointer(tag, gesture.PointerEvent{
		PointerID: id,
		X:         p.X,
		Y:         p.Y,
		Source:    gesture.SourceMouse,
		Button:    button,
		Modifiers: mods,
	})
}

func modifiers(m tcell.ModMask) gesture.KeyModifiers {
	var mods gesture.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= gesture.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= gesture.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= gesture.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= gesture.ModMeta
	}
	return mods
}
