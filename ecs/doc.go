// Package ecs provides ECS adapters for sortable's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges pointer and reorder
// events from a sortable scene into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive all of
// them, or use [SubscribeReorders] for gesture lifecycle events only.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
