package wires

import (
	"errors"
	"image"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	// ErrNotRunning is the panic value of Screen.Quit on a screen whose main
	// loop is not running.
	ErrNotRunning = errors.New("wires: cannot quit while not running")

	// ErrNotVirtual is the panic value of Keyboard.SetKeys outside a virtual
	// session, where the real keyboard is authoritative.
	ErrNotVirtual = errors.New("wires: cannot set keys when not in virtual mode")
)

// InputSource supplies pointer, keyboard and window-close state to a session.
// Init picks the Ebitengine source for real sessions and a VirtualInput for
// virtual ones.
type InputSource interface {
	// QuitRequested reports (and consumes) a pending request to close.
	QuitRequested() bool

	CursorPosition() (x, y float64)
	SetCursorPosition(x, y float64)
	SetCursorVisible(visible bool)
	SetCursorGrabbed(grabbed bool)
	IsMouseButtonPressed(b MouseButton) bool

	IsKeyPressed(k ebiten.Key) bool
	// PressedKeys returns the keys currently held, in ascending key order.
	PressedKeys() []ebiten.Key
}

// keySetter is implemented by input sources whose key state may be assigned.
type keySetter interface {
	SetKeys(keys []ebiten.Key)
}

// KeyByName looks up an Ebitengine key by its String name, ignoring case
// (for example "Escape", "space", "ArrowLeft").
func KeyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// --- Ebitengine input ---

// ebitenInput reads live input from the Ebitengine window.
type ebitenInput struct {
	visible bool
	grabbed bool

	// Ebitengine cannot warp the OS cursor, so SetCursorPosition pins the
	// reported position until the real cursor moves.
	pinned   bool
	pinX     float64
	pinY     float64
	pinnedAt image.Point

	keys []ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{visible: true}
}

func (i *ebitenInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

func (i *ebitenInput) CursorPosition() (float64, float64) {
	cx, cy := ebiten.CursorPosition()
	if i.pinned {
		if cx == i.pinnedAt.X && cy == i.pinnedAt.Y {
			return i.pinX, i.pinY
		}
		i.pinned = false
	}
	return float64(cx), float64(cy)
}

func (i *ebitenInput) SetCursorPosition(x, y float64) {
	cx, cy := ebiten.CursorPosition()
	i.pinned = true
	i.pinX, i.pinY = x, y
	i.pinnedAt = image.Pt(cx, cy)
}

func (i *ebitenInput) SetCursorVisible(visible bool) {
	i.visible = visible
	i.applyCursorMode()
}

func (i *ebitenInput) SetCursorGrabbed(grabbed bool) {
	i.grabbed = grabbed
	i.applyCursorMode()
}

func (i *ebitenInput) applyCursorMode() {
	switch {
	case i.grabbed:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	case i.visible:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	default:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func (i *ebitenInput) IsMouseButtonPressed(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return false
}

func (i *ebitenInput) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (i *ebitenInput) PressedKeys() []ebiten.Key {
	i.keys = inpututil.AppendPressedKeys(i.keys[:0])
	out := slices.Clone(i.keys)
	slices.Sort(out)
	return out
}

// --- Virtual input ---

// VirtualInput is an InputSource whose state is set by the program. Virtual
// sessions use it so that keys, buttons and the pointer can be scripted.
type VirtualInput struct {
	keys    []ebiten.Key
	buttons [3]bool

	x, y    float64
	visible bool
	grabbed bool

	quit bool
}

// NewVirtualInput creates a virtual input source with nothing pressed and the
// pointer at the origin.
func NewVirtualInput() *VirtualInput {
	return &VirtualInput{visible: true}
}

func (v *VirtualInput) QuitRequested() bool {
	q := v.quit
	v.quit = false
	return q
}

// RequestQuit queues a window-close request for the next frame.
func (v *VirtualInput) RequestQuit() { v.quit = true }

func (v *VirtualInput) CursorPosition() (float64, float64) { return v.x, v.y }

func (v *VirtualInput) SetCursorPosition(x, y float64) { v.x, v.y = x, y }

func (v *VirtualInput) SetCursorVisible(visible bool) { v.visible = visible }

func (v *VirtualInput) SetCursorGrabbed(grabbed bool) { v.grabbed = grabbed }

// CursorVisible reports the last visibility set.
func (v *VirtualInput) CursorVisible() bool { return v.visible }

// CursorGrabbed reports the last grab mode set.
func (v *VirtualInput) CursorGrabbed() bool { return v.grabbed }

func (v *VirtualInput) IsMouseButtonPressed(b MouseButton) bool {
	if int(b) >= len(v.buttons) {
		return false
	}
	return v.buttons[b]
}

// SetMouseButton sets the pressed state of a button.
func (v *VirtualInput) SetMouseButton(b MouseButton, pressed bool) {
	if int(b) < len(v.buttons) {
		v.buttons[b] = pressed
	}
}

func (v *VirtualInput) IsKeyPressed(k ebiten.Key) bool {
	return slices.Contains(v.keys, k)
}

func (v *VirtualInput) PressedKeys() []ebiten.Key {
	return slices.Clone(v.keys)
}

// SetKeys replaces the set of pressed keys. Duplicates are dropped.
func (v *VirtualInput) SetKeys(keys []ebiten.Key) {
	v.keys = slices.Clone(keys)
	slices.Sort(v.keys)
	v.keys = slices.Compact(v.keys)
}

// PressKey adds k to the pressed keys.
func (v *VirtualInput) PressKey(k ebiten.Key) {
	if !v.IsKeyPressed(k) {
		v.SetKeys(append(v.PressedKeys(), k))
	}
}

// ReleaseKey removes k from the pressed keys.
func (v *VirtualInput) ReleaseKey(k ebiten.Key) {
	v.keys = slices.DeleteFunc(v.keys, func(p ebiten.Key) bool { return p == k })
}
