// Package wires is a small 2D sprite framework for [Ebitengine].
//
// A program creates a [Session] with [Init], adds entities to its [Screen]
// and runs the main loop. Every frame the screen checks each entity's
// overlaps, draws it, moves it by its velocity and calls its hooks, in the
// order entities were added.
//
// # Quick start
//
//	s, err := wires.Init(wires.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	ball := wires.NewSprite(wires.MustLoadImage("ball.png", true), wires.SpriteOptions{
//		X: 320, Y: 240, DX: 2,
//	})
//	s.Screen.Add(ball)
//	s.Mainloop()
//
// # Entities
//
// [Sprite] is the base entity. [Text] renders a string, [Message] is a text
// that removes itself after a lifetime and [Animation] cycles through
// images. User types embed any of them and may implement [Updater] (called
// every frame) and [Ticker] (called every Interval frames):
//
//	type Catcher struct {
//		*wires.Sprite
//		mouse *wires.Mouse
//	}
//
//	func (c *Catcher) Update() {
//		c.SetX(c.mouse.X())
//		for _, other := range c.Overlapping() {
//			wires.AsSprite(other).Destroy()
//		}
//	}
//
// Entities may add or remove entities, including themselves, from inside
// their hooks. A removed entity is not processed again that frame; an added
// one is first processed on the next frame.
//
// # Virtual sessions
//
// With Config.Virtual set, the session has no window, reads a [VirtualInput]
// and never opens an audio device. Combined with [Screen.RunFrames] and
// [ScriptRunner] this makes games testable frame by frame.
//
// # ECS integration
//
// The wires/ecs module forwards the screen's lifecycle and collision
// [Event]s into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package wires
