package wires

// Mouse reports and controls the pointer of a session.
type Mouse struct {
	src     InputSource
	visible bool
}

func newMouse(src InputSource) *Mouse {
	return &Mouse{src: src, visible: true}
}

// X returns the pointer's x position in screen pixels.
func (m *Mouse) X() float64 {
	x, _ := m.src.CursorPosition()
	return x
}

// Y returns the pointer's y position in screen pixels.
func (m *Mouse) Y() float64 {
	_, y := m.src.CursorPosition()
	return y
}

// Position returns the pointer position.
func (m *Mouse) Position() Vec2 {
	x, y := m.src.CursorPosition()
	return Vec2{x, y}
}

// SetPosition moves the pointer.
func (m *Mouse) SetPosition(x, y float64) {
	m.src.SetCursorPosition(x, y)
}

func (m *Mouse) SetX(x float64) { m.SetPosition(x, m.Y()) }
func (m *Mouse) SetY(y float64) { m.SetPosition(m.X(), y) }

// Visible reports whether the cursor is shown.
func (m *Mouse) Visible() bool { return m.visible }

// SetVisible shows or hides the cursor.
func (m *Mouse) SetVisible(visible bool) {
	m.visible = visible
	m.src.SetCursorVisible(visible)
}

// IsPressed reports whether button b is held down.
func (m *Mouse) IsPressed(b MouseButton) bool {
	return m.src.IsMouseButtonPressed(b)
}
