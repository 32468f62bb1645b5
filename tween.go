package wires

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 values of a Sprite simultaneously. Durations
// are measured in frames. Create one via the convenience constructors
// (TweenPosition, TweenVelocity, TweenAngle) and call Step once per frame,
// typically from the owner's Update. The group writes through the sprite's
// setters, so the bounding rectangle stays in sync. If the target is no
// longer on a screen, the group stops immediately.
//
// There is no global tween manager; users call Step themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	values [2]float64
	apply  func(v [2]float64)
	target *Sprite
	Done   bool
}

// Step advances all tweens by one frame and applies the new values. A group
// whose target has left its screen is marked Done without writing.
func (g *TweenGroup) Step() {
	if g.Done {
		return
	}

	if g.target != nil && g.target.screen == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(1)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.values)
}

// TweenPosition moves the sprite's center to (toX, toY) over frames frames.
func TweenPosition(s *Sprite, toX, toY float64, frames int, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.x), float32(toX), float32(frames), fn)
	g.tweens[1] = gween.New(float32(s.y), float32(toY), float32(frames), fn)
	g.apply = func(v [2]float64) { s.SetPosition(v[0], v[1]) }
	return g
}

// TweenVelocity eases the sprite's velocity to (toDX, toDY) over frames
// frames.
func TweenVelocity(s *Sprite, toDX, toDY float64, frames int, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.dx), float32(toDX), float32(frames), fn)
	g.tweens[1] = gween.New(float32(s.dy), float32(toDY), float32(frames), fn)
	g.apply = func(v [2]float64) { s.SetVelocity(v[0], v[1]) }
	return g
}

// TweenAngle rotates the sprite to the given angle in degrees over frames
// frames. The angle is not normalized before interpolation, so a target of
// 720 spins twice.
func TweenAngle(s *Sprite, to float64, frames int, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.angle), float32(to), float32(frames), fn)
	g.apply = func(v [2]float64) { s.SetAngle(v[0]) }
	return g
}
