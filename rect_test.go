package wires

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, 25.0, r.CenterX())
	assert.Equal(t, 40.0, r.CenterY())
}

func TestRectSettersPreserveSize(t *testing.T) {
	tests := []struct {
		name  string
		set   func(r *Rect)
		check func(r Rect) float64
		want  float64
	}{
		{"left", func(r *Rect) { r.SetLeft(5) }, Rect.Left, 5},
		{"top", func(r *Rect) { r.SetTop(-7) }, Rect.Top, -7},
		{"right", func(r *Rect) { r.SetRight(100) }, Rect.Right, 100},
		{"bottom", func(r *Rect) { r.SetBottom(3) }, Rect.Bottom, 3},
		{"center x", func(r *Rect) { r.SetCenterX(50) }, Rect.CenterX, 50},
		{"center y", func(r *Rect) { r.SetCenterY(51) }, Rect.CenterY, 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rect{X: 1, Y: 2, Width: 30, Height: 40}
			tt.set(&r)
			assert.Equal(t, tt.want, tt.check(r))
			assert.Equal(t, 30.0, r.Width)
			assert.Equal(t, 40.0, r.Height)
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, r.Contains(5, 5))
	assert.True(t, r.Contains(10, 10), "edges are inside")
	assert.False(t, r.Contains(10.1, 5))
	assert.False(t, r.Contains(-0.1, 5))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"touching corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"apart x", Rect{X: 10.5, Y: 0, Width: 5, Height: 5}, false},
		{"apart y", Rect{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a), "symmetric")
		})
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h, deg    float64
		wantW, wantH float64
	}{
		{40, 20, 0, 40, 20},
		{40, 20, 90, 20, 40},
		{40, 20, 180, 40, 20},
		{40, 20, 270, 20, 40},
		{10, 10, 45, 15, 15}, // 10*sqrt(2) = 14.14
	}
	for _, tt := range tests {
		w, h := rotatedSize(tt.w, tt.h, tt.deg)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("rotatedSize(%v, %v, %v) = (%v, %v), want (%v, %v)",
				tt.w, tt.h, tt.deg, w, h, tt.wantW, tt.wantH)
		}
	}
}
