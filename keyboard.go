package wires

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard reports key state for a session.
type Keyboard struct {
	src InputSource
}

func newKeyboard(src InputSource) *Keyboard {
	return &Keyboard{src: src}
}

// IsPressed reports whether k is held down.
func (k *Keyboard) IsPressed(key ebiten.Key) bool {
	return k.src.IsKeyPressed(key)
}

// Keys returns the keys currently held down.
func (k *Keyboard) Keys() []ebiten.Key {
	return k.src.PressedKeys()
}

// SetKeys replaces the pressed keys of a virtual session.
// Panics with ErrNotVirtual when the session reads a real keyboard.
func (k *Keyboard) SetKeys(keys []ebiten.Key) {
	ks, ok := k.src.(keySetter)
	if !ok {
		panic(ErrNotVirtual)
	}
	ks.SetKeys(keys)
}
