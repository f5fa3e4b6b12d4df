// Package ecs bridges gesture engine output into a [Donburi] world.
//
// [NewDonburiStore] publishes every delivered [gesture.Event] on
// [GestureEventType]. Subscribe to it in your ECS systems, or call
// [SubscribeViews] to drive every entity carrying a [ViewComponent].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEntityStore(store)
//	ecs.SubscribeViews(world)
//	...
//	events.ProcessAllEvents(world) // once per tick
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
