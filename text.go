package wires

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSource is the parsed Go Regular face shared by every Text.
var defaultFontSource *text.GoTextFaceSource

func fontSource() *text.GoTextFaceSource {
	if defaultFontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("wires: failed to parse default font: %v", err))
		}
		defaultFontSource = src
	}
	return defaultFontSource
}

// Text is a sprite whose image is a rendered string. Changing the value, size
// or color re-renders the image immediately; the center stays put.
type Text struct {
	*Sprite

	value string
	size  float64
	color Color
	face  *text.GoTextFace
}

// NewText creates a text sprite. size is the font size in pixels.
// Panics if size is not positive.
func NewText(value string, size float64, c Color, opts SpriteOptions) *Text {
	t := &Text{
		Sprite: &Sprite{},
		value:  value,
		color:  c,
	}
	t.face = newFace(size)
	t.size = size
	t.Sprite.init(t.render(), opts)
	return t
}

func newFace(size float64) *text.GoTextFace {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		panic(fmt.Sprintf("wires: invalid text size %v", size))
	}
	return &text.GoTextFace{Source: fontSource(), Size: size}
}

// Value returns the displayed string.
func (t *Text) Value() string { return t.value }

// SetValue changes the displayed string.
func (t *Text) SetValue(v string) {
	t.value = v
	t.SetImage(t.render())
}

// Size returns the font size in pixels.
func (t *Text) Size() float64 { return t.size }

// SetSize changes the font size. Panics if size is not positive.
func (t *Text) SetSize(size float64) {
	t.face = newFace(size)
	t.size = size
	t.SetImage(t.render())
}

// Color returns the text color.
func (t *Text) Color() Color { return t.color }

// SetColor changes the text color.
func (t *Text) SetColor(c Color) {
	t.color = c
	t.SetImage(t.render())
}

// render draws the current value into a fresh image sized to the text.
// Empty strings still produce a one pixel wide image of the line height.
func (t *Text) render() *ebiten.Image {
	m := t.face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	w, h := text.Measure(t.value, t.face, lh)
	iw := max(1, int(math.Ceil(w)))
	ih := max(1, int(math.Ceil(max(h, lh))))

	img := ebiten.NewImage(iw, ih)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(t.color.toRGBA())
	op.LineSpacing = lh
	text.Draw(img, t.value, t.face, op)
	return img
}
