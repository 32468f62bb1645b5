package wires

// EventSink is the interface for optional ECS integration.
// When set on a Screen, lifecycle and collision events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a kind of screen event.
type EventType uint8

const (
	EventAdded     EventType = iota // an entity was registered with the screen
	EventRemoved                    // an entity left the screen
	EventCollision                  // an entity's overlap check found another entity
)

// String returns a lowercase name for the event type.
func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Event carries screen event data for the ECS bridge.
type Event struct {
	Type  EventType
	Frame uint64

	EntityID uint32
	Name     string

	// Other fields are valid for EventCollision only.
	OtherID   uint32
	OtherName string
}

// SetEventSink sets the optional event bridge. Pass nil to detach.
func (s *Screen) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Screen) emitLifecycle(t EventType, sp *Sprite) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(Event{Type: t, Frame: s.frameCount, EntityID: sp.ID, Name: sp.Name})
}

func (s *Screen) emitCollisions(sp *Sprite) {
	if s.sink == nil {
		return
	}
	for _, e := range sp.overlapping {
		o := e.sprite()
		s.sink.EmitEvent(Event{
			Type:      EventCollision,
			Frame:     s.frameCount,
			EntityID:  sp.ID,
			Name:      sp.Name,
			OtherID:   o.ID,
			OtherName: o.Name,
		})
	}
}
