package wires

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewText(t *testing.T) {
	tx := NewText("Score: 0", 24, ColorWhite, SpriteOptions{X: 100, Y: 50})
	assert.Equal(t, "Score: 0", tx.Value())
	assert.Equal(t, 24.0, tx.Size())
	assert.Equal(t, ColorWhite, tx.Color())
	assert.Greater(t, tx.Width(), 0.0)
	assert.GreaterOrEqual(t, tx.Height(), 24.0)
	assert.Equal(t, Vec2{100, 50}, tx.Position())
}

func TestTextSetValueRerenders(t *testing.T) {
	tx := NewText("a", 24, ColorWhite, SpriteOptions{X: 100, Y: 50})
	img := tx.Image()
	w := tx.Width()

	tx.SetValue("a much longer string")
	assert.NotSame(t, img, tx.Image())
	assert.Greater(t, tx.Width(), w)
	assert.Equal(t, Vec2{100, 50}, tx.Position(), "center kept")
}

func TestTextSetSize(t *testing.T) {
	tx := NewText("hello", 12, ColorWhite, SpriteOptions{})
	h := tx.Height()
	tx.SetSize(48)
	assert.Equal(t, 48.0, tx.Size())
	assert.Greater(t, tx.Height(), h)
}

func TestTextSetColor(t *testing.T) {
	tx := NewText("hello", 12, ColorWhite, SpriteOptions{})
	img := tx.Image()
	tx.SetColor(ColorRed)
	assert.Equal(t, ColorRed, tx.Color())
	assert.NotSame(t, img, tx.Image())
}

func TestTextEmptyValue(t *testing.T) {
	tx := NewText("", 16, ColorWhite, SpriteOptions{})
	assert.Equal(t, 1.0, tx.Width())
	assert.Greater(t, tx.Height(), 0.0)
}

func TestTextInvalidSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewText("x", 0, ColorWhite, SpriteOptions{}) })
	tx := NewText("x", 10, ColorWhite, SpriteOptions{})
	assert.Panics(t, func() { tx.SetSize(-3) })
	assert.Equal(t, 10.0, tx.Size())
}
