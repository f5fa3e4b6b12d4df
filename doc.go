// Package gesture turns raw pointer and wheel input into drag, pinch and
// wheel gestures.
//
// An [Engine] attaches to a [Surface], the host that delivers raw contact
// events (start, move, end, cancel, exit) keyed by pointer identifier, and
// wheel events. Every event is processed synchronously inside the host's
// callback; the engine never blocks or starts goroutines.
//
// # Quick start
//
//	surface := gesture.NewHostSurface(gesture.Rect{Width: 640, Height: 480})
//	engine := gesture.NewEngine(gesture.Config{})
//	if err := engine.Attach(surface); err != nil {
//		log.Fatal(err)
//	}
//	engine.OnGesture(func(ev gesture.Event) {
//		switch g := ev.Gesture.(type) {
//		case gesture.Drag:
//			fmt.Println("drag", g.PointerID, g.Absolute)
//		case gesture.Pinch:
//			fmt.Println("pinch", g.DZ)
//		case gesture.Wheel:
//			fmt.Println("wheel", g.DY)
//		}
//	})
//	surface.DispatchPointer(gesture.TagStart, gesture.PointerEvent{PointerID: 1, X: 100, Y: 100})
//
// Host adapters live in subpackages: [ebitensurface] polls Ebitengine input
// each tick and [termsurface] converts tcell mouse events. The ecs module
// bridges engine output into a [Donburi] world.
//
// # Gestures
//
// [Drag] tracks one pointer from its start event until the first end,
// cancel or exit event for that pointer, reporting deltas from the start and
// from the previous sample in normalized device coordinates. [Pinch] reports
// the change in spread and centroid of all active pointers while two or more
// are down. [Wheel] reports wheel deltas as a fraction of the surface size.
// [Tap], [Press], [LongPress], [Rotate] and [Pan] are reserved variants.
//
// Every delivered [Event] carries the active pointer count. When the count
// changes the latest gesture is delivered again with Replayed set.
//
// [ebitensurface]: https://pkg.go.dev/github.com/phanxgames/gesture/ebitensurface
// [termsurface]: https://pkg.go.dev/github.com/phanxgames/gesture/termsurface
// [Donburi]: https://github.com/yohamta/donburi
package gesture
