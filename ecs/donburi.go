// Package ecs provides ECS adapters for wires.
package ecs

import (
	"github.com/phanxgames/wires"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScreenEventType is the Donburi event type for wires screen events.
// Subscribe to this in your ECS systems to receive added, removed and
// collision events.
var ScreenEventType = events.NewEventType[wires.Event]()

// SpriteRef is the component attached to the Donburi entity mirroring each
// sprite on the screen.
type SpriteRef struct {
	ID   uint32
	Name string
}

// SpriteComponent holds the SpriteRef of a mirrored sprite.
var SpriteComponent = donburi.NewComponentType[SpriteRef]()

type donburiStore struct {
	world   donburi.World
	mirrors map[uint32]donburi.Entity
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Every sprite added to the screen gets a mirror entity carrying
// SpriteComponent, removed again when the sprite leaves. All events are
// published to ScreenEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiStore(world donburi.World) wires.EventSink {
	return &donburiStore{world: world, mirrors: make(map[uint32]donburi.Entity)}
}

func (s *donburiStore) EmitEvent(event wires.Event) {
	switch event.Type {
	case wires.EventAdded:
		if _, ok := s.mirrors[event.EntityID]; !ok {
			e := s.world.Create(SpriteComponent)
			SpriteComponent.SetValue(s.world.Entry(e), SpriteRef{ID: event.EntityID, Name: event.Name})
			s.mirrors[event.EntityID] = e
		}
	case wires.EventRemoved:
		if e, ok := s.mirrors[event.EntityID]; ok {
			s.world.Remove(e)
			delete(s.mirrors, event.EntityID)
		}
	}
	ScreenEventType.Publish(s.world, event)
}
