package wires

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	screen, _, _ := newTestScreen(t, 200, 200, 50)
	s := NewSprite(testImage(10, 10), SpriteOptions{X: 0, Y: 0})
	screen.Add(s)

	g := TweenPosition(s, 100, 50, 10, ease.Linear)
	for range 5 {
		g.Step()
	}
	assert.InDelta(t, 50, s.X(), 0.01)
	assert.InDelta(t, 25, s.Y(), 0.01)
	assert.InDelta(t, 45, s.Left(), 0.01, "rect follows")
	assert.False(t, g.Done)

	for range 5 {
		g.Step()
	}
	assert.True(t, g.Done)
	assert.InDelta(t, 100, s.X(), 0.01)
}

func TestTweenVelocity(t *testing.T) {
	screen, _, _ := newTestScreen(t, 200, 200, 50)
	s := NewSprite(testImage(10, 10), SpriteOptions{})
	screen.Add(s)

	g := TweenVelocity(s, 4, -2, 4, ease.Linear)
	for !g.Done {
		g.Step()
	}
	assert.InDelta(t, 4, s.DX(), 0.01)
	assert.InDelta(t, -2, s.DY(), 0.01)
}

func TestTweenAngle(t *testing.T) {
	screen, _, _ := newTestScreen(t, 200, 200, 50)
	s := NewSprite(testImage(40, 20), SpriteOptions{})
	screen.Add(s)

	g := TweenAngle(s, 90, 2, ease.Linear)
	g.Step()
	g.Step()
	assert.True(t, g.Done)
	assert.InDelta(t, 90, s.Angle(), 0.01)
	assert.Equal(t, 20.0, s.Width())
}

func TestTweenStopsWhenTargetRemoved(t *testing.T) {
	screen, _, _ := newTestScreen(t, 200, 200, 50)
	s := NewSprite(testImage(10, 10), SpriteOptions{})
	screen.Add(s)

	g := TweenPosition(s, 100, 100, 10, ease.Linear)
	g.Step()
	x := s.X()
	s.Destroy()
	g.Step()
	assert.True(t, g.Done)
	assert.Equal(t, x, s.X())
}
