package termsurface

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/gesture"
)

type recorded struct {
	tag gesture.ContactTag
	id  int
}

func newRecordingSurface(t *testing.T) (*Surface, *[]recorded, *[]gesture.WheelEvent) {
	t.Helper()
	s := New(gesture.Rect{Width: 80, Height: 24})
	var events []recorded
	var wheels []gesture.WheelEvent
	for _, tag := range []gesture.ContactTag{
		gesture.TagStart, gesture.TagMove, gesture.TagEnd,
		gesture.TagCancel, gesture.TagExitBounds, gesture.TagExitElement,
	} {
		tag := tag
		s.OnPointer(tag, func(ev gesture.PointerEvent) {
			events = append(events, recorded{tag: tag, id: ev.PointerID})
		})
	}
	s.OnWheel(func(ev gesture.WheelEvent) { wheels = append(wheels, ev) })
	return s, &events, &wheels
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestButtonLifecycle(t *testing.T) {
	s, events, _ := newRecordingSurface(t)

	s.HandleEvent(mouse(10, 5, tcell.Button1))
	s.HandleEvent(mouse(12, 5, tcell.Button1))
	s.HandleEvent(mouse(12, 5, tcell.ButtonNone))

	want := []recorded{
		{gesture.TagStart, PointerPrimary},
		{gesture.TagMove, PointerPrimary},
		{gesture.TagEnd, PointerPrimary},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, (*events)[i], want[i])
		}
	}
}

func TestTwoButtonsAreTwoPointers(t *testing.T) {
	s, events, _ := newRecordingSurface(t)

	s.HandleEvent(mouse(10, 5, tcell.Button1))
	s.HandleEvent(mouse(10, 5, tcell.Button1|tcell.Button2))
	s.HandleEvent(mouse(11, 5, tcell.Button1|tcell.Button2))

	want := []recorded{
		{gesture.TagStart, PointerPrimary},
		{gesture.TagStart, PointerSecondary},
		{gesture.TagMove, PointerPrimary},
		{gesture.TagMove, PointerSecondary},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, (*events)[i], want[i])
		}
	}
}

func TestExitBounds(t *testing.T) {
	s, events, _ := newRecordingSurface(t)
	s.SetBounds(gesture.Rect{X: 0, Y: 0, Width: 20, Height: 10})

	s.HandleEvent(mouse(5, 5, tcell.Button1))
	s.HandleEvent(mouse(30, 5, tcell.Button1))
	s.HandleEvent(mouse(6, 5, tcell.Button1)) // back inside, still held

	if n := len(*events); n != 2 || (*events)[1].tag != gesture.TagExitBounds {
		t.Errorf("events = %v, want start then exit-bounds", *events)
	}
}

func TestWheel(t *testing.T) {
	s, events, wheels := newRecordingSurface(t)

	s.HandleEvent(mouse(3, 4, tcell.WheelDown))
	s.HandleEvent(mouse(3, 4, tcell.WheelUp|tcell.WheelRight))

	if len(*events) != 0 {
		t.Errorf("wheel produced contact events: %v", *events)
	}
	if len(*wheels) != 2 {
		t.Fatalf("wheels = %d, want 2", len(*wheels))
	}
	if w := (*wheels)[0]; w.DeltaY != 1 || w.DeltaX != 0 || w.DeltaMode != gesture.DeltaLine {
		t.Errorf("wheel down = %+v", w)
	}
	if w := (*wheels)[1]; w.DeltaY != -1 || w.DeltaX != 1 {
		t.Errorf("wheel up-right = %+v", w)
	}
}

func TestFocusLossCancels(t *testing.T) {
	s, events, _ := newRecordingSurface(t)

	s.HandleEvent(mouse(1, 1, tcell.Button1|tcell.Button3))
	if !s.HandleEvent(tcell.NewEventFocus(false)) {
		t.Fatal("focus event not consumed")
	}

	var cancels []int
	for _, r := range *events {
		if r.tag == gesture.TagCancel {
			cancels = append(cancels, r.id)
		}
	}
	if len(cancels) != 2 || cancels[0] != PointerPrimary || cancels[1] != PointerMiddle {
		t.Errorf("cancels = %v, want [%d %d]", cancels, PointerPrimary, PointerMiddle)
	}
}

func TestResize(t *testing.T) {
	s := New(gesture.Rect{X: 2, Y: 1, Width: 80, Height: 24})
	s.HandleEvent(tcell.NewEventResize(120, 40))
	want := gesture.Rect{X: 2, Y: 1, Width: 120, Height: 40}
	if b := s.Bounds(); b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
}

func TestKeyEventsPassThrough(t *testing.T) {
	s := New(gesture.Rect{Width: 80, Height: 24})
	frames := 0
	s.OnFrameEnd(func() { frames++ })
	if s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("key event consumed")
	}
	if frames != 0 {
		t.Errorf("frames = %d, want 0", frames)
	}
}

func TestDrivesEngine(t *testing.T) {
	s := New(gesture.Rect{Width: 80, Height: 24})
	e := gesture.NewEngine(gesture.Config{CoalesceFrames: true})
	if err := e.Attach(s); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	var kinds []gesture.Kind
	e.OnGesture(func(ev gesture.Event) {
		if !ev.Replayed {
			kinds = append(kinds, ev.Gesture.Kind())
		}
	})

	s.HandleEvent(mouse(40, 12, tcell.Button1))
	s.HandleEvent(mouse(60, 12, tcell.Button1))
	s.HandleEvent(mouse(60, 12, tcell.WheelDown))

	// The release between them only replays the drag.
	if len(kinds) != 2 || kinds[0] != gesture.KindDrag || kinds[1] != gesture.KindWheel {
		t.Errorf("kinds = %v, want [drag wheel]", kinds)
	}
}
