package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// GestureEventType is the Donburi event type for engine output.
// Events are queued and delivered by ProcessEvents or ProcessAllEvents.
var GestureEventType = events.NewEventType[gesture.Event]()

// ViewComponent attaches a pan/zoom view to an entity.
var ViewComponent = donburi.NewComponentType[gesture.View]()

var viewQuery = donburi.NewQuery(filter.Contains(ViewComponent))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.Event) {
	GestureEventType.Publish(s.world, event)
}

// NewViewEntity creates an entity with a default view.
func NewViewEntity(world donburi.World) donburi.Entity {
	entity := world.Create(ViewComponent)
	ViewComponent.SetValue(world.Entry(entity), *gesture.NewView())
	return entity
}

// SubscribeViews applies every processed gesture event to each view entity.
func SubscribeViews(world donburi.World) {
	GestureEventType.Subscribe(world, applyToViews)
}

func applyToViews(w donburi.World, ev gesture.Event) {
	viewQuery.Each(w, func(entry *donburi.Entry) {
		ViewComponent.Get(entry).Apply(ev)
	})
}

// UpdateViews advances the zoom animation of every view entity by dt
// seconds.
func UpdateViews(world donburi.World, dt float32) {
	viewQuery.Each(world, func(entry *donburi.Entry) {
		ViewComponent.Get(entry).Update(dt)
	})
}
