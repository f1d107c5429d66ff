// Package ecs provides ECS adapters for sortable.
package ecs

import (
	"github.com/phanxgames/sortable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for sortable events.
// Subscribe to this in your ECS systems to receive pointer presses and
// releases on entity-backed nodes along with reorder start, end and change.
var InteractionEventType = events.NewEventType[sortable.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sortable.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sortable.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// IsReorder reports whether ev belongs to a reorder gesture's lifecycle.
func IsReorder(ev sortable.InteractionEvent) bool {
	switch ev.Type {
	case sortable.EventReorderStart, sortable.EventReorderChanged, sortable.EventReorderEnd:
		return true
	}
	return false
}

// SubscribeReorders subscribes fn to the reorder events published on world,
// skipping pointer events.
func SubscribeReorders(world donburi.World, fn func(w donburi.World, ev sortable.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, ev sortable.InteractionEvent) {
		if IsReorder(ev) {
			fn(w, ev)
		}
	})
}
