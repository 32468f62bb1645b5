package wires

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"Escape", ebiten.KeyEscape, true},
		{"escape", ebiten.KeyEscape, true},
		{"Space", ebiten.KeySpace, true},
		{"ArrowLeft", ebiten.KeyArrowLeft, true},
		{"A", ebiten.KeyA, true},
		{"NoSuchKey", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyByName(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyByName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVirtualInputKeys(t *testing.T) {
	in := NewVirtualInput()
	in.SetKeys([]ebiten.Key{ebiten.KeyB, ebiten.KeyA, ebiten.KeyB})
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyB}, in.PressedKeys())

	in.PressKey(ebiten.KeyC)
	in.PressKey(ebiten.KeyC)
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyC}, in.PressedKeys())

	in.ReleaseKey(ebiten.KeyA)
	assert.False(t, in.IsKeyPressed(ebiten.KeyA))
	assert.True(t, in.IsKeyPressed(ebiten.KeyB))

	keys := in.PressedKeys()
	keys[0] = ebiten.KeyZ
	assert.False(t, in.IsKeyPressed(ebiten.KeyZ), "PressedKeys returns a copy")
}

func TestVirtualInputQuitIsConsumed(t *testing.T) {
	in := NewVirtualInput()
	assert.False(t, in.QuitRequested())
	in.RequestQuit()
	assert.True(t, in.QuitRequested())
	assert.False(t, in.QuitRequested())
}

func TestVirtualInputButtons(t *testing.T) {
	in := NewVirtualInput()
	in.SetMouseButton(MouseButtonRight, true)
	assert.True(t, in.IsMouseButtonPressed(MouseButtonRight))
	assert.False(t, in.IsMouseButtonPressed(MouseButtonLeft))
	assert.False(t, in.IsMouseButtonPressed(MouseButton(9)))
	in.SetMouseButton(MouseButton(9), true) // ignored
	in.SetMouseButton(MouseButtonRight, false)
	assert.False(t, in.IsMouseButtonPressed(MouseButtonRight))
}

func TestMouse(t *testing.T) {
	in := NewVirtualInput()
	m := newMouse(in)

	m.SetPosition(10, 20)
	assert.Equal(t, 10.0, m.X())
	assert.Equal(t, 20.0, m.Y())
	m.SetX(30)
	m.SetY(40)
	assert.Equal(t, Vec2{30, 40}, m.Position())

	assert.True(t, m.Visible())
	m.SetVisible(false)
	assert.False(t, m.Visible())
	assert.False(t, in.CursorVisible())

	in.SetMouseButton(MouseButtonLeft, true)
	assert.True(t, m.IsPressed(MouseButtonLeft))
}

func TestKeyboard(t *testing.T) {
	in := NewVirtualInput()
	k := newKeyboard(in)

	k.SetKeys([]ebiten.Key{ebiten.KeySpace})
	assert.True(t, k.IsPressed(ebiten.KeySpace))
	assert.False(t, k.IsPressed(ebiten.KeyEnter))
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, k.Keys())
}

// realInput stands in for a non-virtual source.
type realInput struct{ InputSource }

func TestKeyboardSetKeysNotVirtual(t *testing.T) {
	k := newKeyboard(realInput{NewVirtualInput()})
	assert.PanicsWithValue(t, ErrNotVirtual, func() {
		k.SetKeys([]ebiten.Key{ebiten.KeyA})
	})
}
