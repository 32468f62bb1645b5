package wires

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is anything a Screen can simulate. It is satisfied by *Sprite and by
// every type that embeds one (*Text, *Message, *Animation and user types
// embedding any of them); it cannot be implemented from scratch.
type Entity interface {
	sprite() *Sprite
}

// Updater is implemented by entities that want a callback every frame.
type Updater interface {
	Update()
}

// Ticker is implemented by entities that want a callback every Interval
// frames.
type Ticker interface {
	Tick()
}

// spriteIDCounter is a plain counter; wires is single-threaded.
var spriteIDCounter uint32

func nextSpriteID() uint32 {
	spriteIDCounter++
	return spriteIDCounter
}

// SpriteOptions holds the optional placement and motion settings for a new
// sprite. Edge fields take precedence over the center fields on their axis
// (Left, then Right, then X; Top, then Bottom, then Y). A zero edge is
// treated as unset; call SetLeft(0) and friends after construction instead.
type SpriteOptions struct {
	Name string

	Angle float64

	X, Y                     float64
	Top, Bottom, Left, Right float64

	DX, DY float64

	// Interval is the number of frames between Tick calls. Zero means 1.
	Interval int

	// NotCollideable excludes the sprite from overlap checks.
	NotCollideable bool
}

// Sprite is a positioned, velocity-driven image. Its position is the center of
// its bounding rectangle, which is kept in sync with the image, angle and
// position by the setters.
type Sprite struct {
	ID   uint32
	Name string

	image *ebiten.Image
	angle float64

	x, y   float64
	dx, dy float64
	rect   Rect

	collideable bool
	overlapping []Entity

	interval  int
	tickTimer int

	screen *Screen

	// onInterval is the per-kind periodic hook used by Message and Animation.
	// It runs before a user Tick and cannot be replaced from outside the
	// package.
	onInterval func()
}

// NewSprite creates a sprite showing img. It is inert until added to a Screen.
// Panics if img is nil.
func NewSprite(img *ebiten.Image, opts SpriteOptions) *Sprite {
	s := &Sprite{}
	s.init(img, opts)
	return s
}

func (s *Sprite) init(img *ebiten.Image, opts SpriteOptions) {
	if img == nil {
		panic("wires: sprite image is nil")
	}
	interval := opts.Interval
	if interval == 0 {
		interval = 1
	}

	s.ID = nextSpriteID()
	s.Name = opts.Name
	s.image = img
	s.SetInterval(interval)
	s.SetAngle(opts.Angle)

	switch {
	case opts.Left != 0:
		s.SetLeft(opts.Left)
	case opts.Right != 0:
		s.SetRight(opts.Right)
	default:
		s.SetX(opts.X)
	}
	switch {
	case opts.Top != 0:
		s.SetTop(opts.Top)
	case opts.Bottom != 0:
		s.SetBottom(opts.Bottom)
	default:
		s.SetY(opts.Y)
	}

	s.dx, s.dy = opts.DX, opts.DY
	s.collideable = !opts.NotCollideable
}

func (s *Sprite) sprite() *Sprite { return s }

// AsSprite returns the Sprite underlying e, for calling Sprite methods on the
// entities returned by Overlapping and Screen.Entities. Returns nil for nil.
func AsSprite(e Entity) *Sprite {
	if e == nil {
		return nil
	}
	return e.sprite()
}

// --- Image & rotation ---

// Image returns the unrotated image.
func (s *Sprite) Image() *ebiten.Image { return s.image }

// SetImage replaces the displayed image and recomputes the bounding rectangle
// around the current center. Panics if img is nil.
func (s *Sprite) SetImage(img *ebiten.Image) {
	if img == nil {
		panic("wires: sprite image is nil")
	}
	s.image = img
	s.refreshRect()
}

// Angle returns the clockwise rotation in degrees, in [0, 360).
func (s *Sprite) Angle() float64 { return s.angle }

// SetAngle sets the clockwise rotation in degrees. The value is normalized to
// [0, 360) and the bounding rectangle grows to the rotated image's footprint.
func (s *Sprite) SetAngle(deg float64) {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	s.angle = a
	s.refreshRect()
}

// refreshRect rebuilds the bounding rectangle from image, angle and center.
func (s *Sprite) refreshRect() {
	b := s.image.Bounds()
	w, h := rotatedSize(float64(b.Dx()), float64(b.Dy()), s.angle)
	s.rect = Rect{Width: w, Height: h}
	s.rect.SetCenter(s.x, s.y)
}

// --- Geometry ---

// Rect returns a copy of the bounding rectangle.
func (s *Sprite) Rect() Rect { return s.rect }

func (s *Sprite) Width() float64  { return s.rect.Width }
func (s *Sprite) Height() float64 { return s.rect.Height }

// X returns the x coordinate of the center.
func (s *Sprite) X() float64 { return s.x }

// Y returns the y coordinate of the center. Y grows downward.
func (s *Sprite) Y() float64 { return s.y }

func (s *Sprite) SetX(x float64) {
	s.x = x
	s.rect.SetCenterX(x)
}

func (s *Sprite) SetY(y float64) {
	s.y = y
	s.rect.SetCenterY(y)
}

// Position returns the center.
func (s *Sprite) Position() Vec2 { return Vec2{s.x, s.y} }

// SetPosition moves the center to (x, y).
func (s *Sprite) SetPosition(x, y float64) {
	s.SetX(x)
	s.SetY(y)
}

func (s *Sprite) Top() float64    { return s.rect.Top() }
func (s *Sprite) Bottom() float64 { return s.rect.Bottom() }
func (s *Sprite) Left() float64   { return s.rect.Left() }
func (s *Sprite) Right() float64  { return s.rect.Right() }

// SetTop moves the sprite so its top edge lies on y.
func (s *Sprite) SetTop(y float64) {
	s.rect.SetTop(y)
	s.y = s.rect.CenterY()
}

// SetBottom moves the sprite so its bottom edge lies on y.
func (s *Sprite) SetBottom(y float64) {
	s.rect.SetBottom(y)
	s.y = s.rect.CenterY()
}

// SetLeft moves the sprite so its left edge lies on x.
func (s *Sprite) SetLeft(x float64) {
	s.rect.SetLeft(x)
	s.x = s.rect.CenterX()
}

// SetRight moves the sprite so its right edge lies on x.
func (s *Sprite) SetRight(x float64) {
	s.rect.SetRight(x)
	s.x = s.rect.CenterX()
}

// --- Motion ---

func (s *Sprite) DX() float64      { return s.dx }
func (s *Sprite) DY() float64      { return s.dy }
func (s *Sprite) SetDX(dx float64) { s.dx = dx }
func (s *Sprite) SetDY(dy float64) { s.dy = dy }

// Velocity returns the per-frame displacement.
func (s *Sprite) Velocity() Vec2 { return Vec2{s.dx, s.dy} }

func (s *Sprite) SetVelocity(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

func (s *Sprite) move() {
	s.SetX(s.x + s.dx)
	s.SetY(s.y + s.dy)
}

// --- Interval ---

// Interval returns the number of frames between Tick calls.
func (s *Sprite) Interval() int { return s.interval }

// SetInterval sets the number of frames between Tick calls and restarts the
// countdown. Panics if n < 1.
func (s *Sprite) SetInterval(n int) {
	if n < 1 {
		panic("wires: interval must be at least 1")
	}
	s.interval = n
	s.tickTimer = n
}

// --- Collision ---

// Collideable reports whether the sprite takes part in overlap checks.
func (s *Sprite) Collideable() bool { return s.collideable }

// SetCollideable toggles participation in overlap checks and refreshes the
// overlap list.
func (s *Sprite) SetCollideable(c bool) {
	s.collideable = c
	s.checkOverlap()
}

// Overlaps reports whether both sprites are collideable, distinct, and their
// bounding rectangles intersect.
func (s *Sprite) Overlaps(other Entity) bool {
	if other == nil {
		return false
	}
	o := other.sprite()
	return o != s && s.collideable && o.collideable && s.rect.Intersects(o.rect)
}

// Overlapping recomputes and returns the registered entities that overlap this
// sprite, in registration order. It is empty when the sprite is not
// collideable or not on a screen.
func (s *Sprite) Overlapping() []Entity {
	s.checkOverlap()
	return s.overlapping
}

// CheckedOverlaps returns the overlap list from the most recent check without
// recomputing it. During a frame that check runs before the sprite moves, so
// from Update this is what the sprite touched at its pre-move position.
func (s *Sprite) CheckedOverlaps() []Entity { return s.overlapping }

func (s *Sprite) checkOverlap() {
	s.overlapping = nil
	if !s.collideable || s.screen == nil {
		return
	}
	for _, e := range s.screen.entities {
		if s.Overlaps(e) {
			s.overlapping = append(s.overlapping, e)
		}
	}
}

// --- Lifecycle ---

// Screen returns the screen the sprite is registered with, or nil.
func (s *Sprite) Screen() *Screen { return s.screen }

// Registered reports whether the sprite is on a screen.
func (s *Sprite) Registered() bool { return s.screen != nil }

// Destroy removes the sprite from its screen. No-op if it is not registered.
func (s *Sprite) Destroy() {
	if s.screen != nil {
		s.screen.removeSprite(s)
	}
}
