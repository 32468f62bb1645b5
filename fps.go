package wires

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter is a sprite showing Ebitengine's measured frame and tick rates.
// It is not collideable.
type FPSCounter struct {
	*Sprite

	img      *ebiten.Image
	fps, tps float64
}

// NewFPSCounter creates a counter that refreshes every interval frames,
// placed with its top-left corner at (left, top).
func NewFPSCounter(left, top float64, interval int) *FPSCounter {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	c := &FPSCounter{img: img}
	c.Sprite = NewSprite(img, SpriteOptions{
		Name:           "fps",
		Interval:       interval,
		NotCollideable: true,
	})
	c.SetLeft(left)
	c.SetTop(top)
	c.onInterval = c.refresh
	c.redraw()
	return c
}

// Rates returns the frame and tick rates shown by the last refresh.
func (c *FPSCounter) Rates() (fps, tps float64) { return c.fps, c.tps }

func (c *FPSCounter) refresh() {
	c.fps, c.tps = ebiten.ActualFPS(), ebiten.ActualTPS()
	c.redraw()
}

func (c *FPSCounter) redraw() {
	c.img.Clear()
	// Semi-transparent background for readability
	c.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(c.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", c.fps, c.tps))
}
