// Package ecs provides ECS adapters for wires' screen event system.
//
// The primary adapter is [NewDonburiStore], which bridges screen events
// (added, removed, collision) into a [Donburi] world as typed events and
// keeps one mirror entity per registered sprite.
// Subscribe to [ScreenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session.Screen.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
