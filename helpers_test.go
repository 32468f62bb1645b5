package wires

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestScreen returns a headless screen with virtual input.
func newTestScreen(t *testing.T, w, h, fps int) (*Screen, *HeadlessDisplay, *VirtualInput) {
	t.Helper()
	d := NewHeadlessDisplay()
	in := NewVirtualInput()
	return NewScreen(w, h, fps, d, in), d, in
}

func testImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}

// recorder is a test entity counting its hooks.
type recorder struct {
	*Sprite
	updates int
	ticks   int
	onUpd   func()
}

func newRecorder(opts SpriteOptions) *recorder {
	return &recorder{Sprite: NewSprite(testImage(10, 10), opts)}
}

func (r *recorder) Update() {
	r.updates++
	if r.onUpd != nil {
		r.onUpd()
	}
}

func (r *recorder) Tick() { r.ticks++ }

// sinkRecorder collects screen events.
type sinkRecorder struct {
	events []Event
}

func (s *sinkRecorder) EmitEvent(e Event) { s.events = append(s.events, e) }

func (s *sinkRecorder) ofType(t EventType) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
