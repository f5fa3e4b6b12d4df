package gesture

import "testing"

type recordingStore struct {
	events []Event
}

func (s *recordingStore) EmitEvent(ev Event) {
	s.events = append(s.events, ev)
}

func TestMerger_NothingBeforeFirstGesture(t *testing.T) {
	var m Merger
	var got []Event
	m.OnGesture(func(ev Event) { got = append(got, ev) })

	m.SetActivePointers(1)
	m.SetActivePointers(2)
	if len(got) != 0 {
		t.Fatalf("delivered %d events before any gesture", len(got))
	}
	if m.ActivePointers() != 2 {
		t.Errorf("ActivePointers = %d, want 2", m.ActivePointers())
	}
}

func TestMerger_PairsLatest(t *testing.T) {
	var m Merger
	var got []Event
	m.OnGesture(func(ev Event) { got = append(got, ev) })

	m.SetActivePointers(1)
	m.Publish(Wheel{DY: 0.1})
	m.SetActivePointers(2) // replays the wheel with the new count
	m.SetActivePointers(2) // unchanged: nothing
	m.Publish(Pinch{DZ: 0.5})

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].ActivePointers != 1 || got[0].Gesture.Kind() != KindWheel || got[0].Replayed {
		t.Errorf("event 0 = %+v", got[0])
	}
	if got[1].ActivePointers != 2 || got[1].Gesture.Kind() != KindWheel || !got[1].Replayed {
		t.Errorf("event 1 = %+v", got[1])
	}
	if got[2].ActivePointers != 2 || got[2].Gesture.Kind() != KindPinch || got[2].Replayed {
		t.Errorf("event 2 = %+v", got[2])
	}
}

func TestMerger_HandleRemove(t *testing.T) {
	var m Merger
	count := 0
	h := m.OnGesture(func(Event) { count++ })

	m.Publish(Wheel{})
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	h.Remove()
	h.Remove()
	CallbackHandle{}.Remove()
	m.Publish(Wheel{})
	if count != 1 {
		t.Fatalf("count = %d after Remove, want 1", count)
	}
}

func TestMerger_RemoveKeepsOthers(t *testing.T) {
	var m Merger
	var order []string
	a := m.OnGesture(func(Event) { order = append(order, "a") })
	m.OnGesture(func(Event) { order = append(order, "b") })
	m.OnGesture(func(Event) { order = append(order, "c") })

	a.Remove()
	m.Publish(Pinch{})
	if len(order) != 2 || order[0] != "b" || order[1] != "c" {
		t.Errorf("order = %v, want [b c]", order)
	}
}

func TestMerger_EntityStore(t *testing.T) {
	var m Merger
	store := &recordingStore{}
	m.store = store

	m.Publish(Drag{PointerID: 3})
	if len(store.events) != 1 {
		t.Fatalf("store got %d events, want 1", len(store.events))
	}
	if d, ok := store.events[0].Gesture.(Drag); !ok || d.PointerID != 3 {
		t.Errorf("store event = %+v", store.events[0])
	}
}

func TestGestureKinds(t *testing.T) {
	tests := []struct {
		g    Gesture
		want string
	}{
		{Drag{}, "drag"},
		{Wheel{}, "wheel"},
		{Pinch{}, "pinch"},
		{Tap{}, "tap"},
		{Press{}, "press"},
		{LongPress{}, "longpress"},
		{Rotate{}, "rotate"},
		{Pan{}, "pan"},
	}
	for _, tt := range tests {
		if got := tt.g.Kind().String(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
	if Kind(200).String() != "unknown" {
		t.Error("out-of-range Kind should be unknown")
	}
}

func TestMerger_RemoveDuringDelivery(t *testing.T) {
	var m Merger
	var order []string
	var ha, hc CallbackHandle
	ha = m.OnGesture(func(Event) {
		order = append(order, "a")
		ha.Remove()
	})
	m.OnGesture(func(Event) {
		order = append(order, "b")
		hc.Remove()
	})
	hc = m.OnGesture(func(Event) { order = append(order, "c") })

	m.Publish(Wheel{})
	m.Publish(Wheel{})

	want := []string{"a", "b", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestMerger_AddDuringDelivery(t *testing.T) {
	var m Merger
	added := 0
	m.OnGesture(func(Event) {
		if added == 0 {
			m.OnGesture(func(Event) { added++ })
			added = -1
		}
	})
	m.Publish(Wheel{})
	if added != -1 {
		t.Fatalf("new handler ran during the delivery that added it")
	}
	m.Publish(Wheel{})
	if added != 0 {
		t.Errorf("added = %d, want 0 after one later delivery", added)
	}
}
