package wires

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. The setters move the rectangle and
// never change its size.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (r *Rect) SetLeft(x float64)   { r.X = x }
func (r *Rect) SetTop(y float64)    { r.Y = y }
func (r *Rect) SetRight(x float64)  { r.X = x - r.Width }
func (r *Rect) SetBottom(y float64) { r.Y = y - r.Height }

// SetCenterX moves the rectangle so its center lies on x.
func (r *Rect) SetCenterX(x float64) { r.X = x - r.Width/2 }

// SetCenterY moves the rectangle so its center lies on y.
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.Height/2 }

// SetCenter moves the rectangle so its center lies on (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.SetCenterX(x)
	r.SetCenterY(y)
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// rotatedSize returns the whole-pixel size of the axis-aligned bounding box
// of a w×h image rotated by deg degrees.
func rotatedSize(w, h, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	rw := w*cos + h*sin
	rh := w*sin + h*cos
	// Sin/Cos at multiples of 90° are off by ~1e-16; keep those exact.
	const eps = 1e-9
	return math.Ceil(rw - eps), math.Ceil(rh - eps)
}
