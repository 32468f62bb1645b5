package wires

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque Color from 0-255 channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Named colors. Everything from ColorDarkRed onwards follows the CSS3 names.
var (
	ColorRed       = RGB(255, 0, 0)
	ColorGreen     = RGB(0, 255, 0)
	ColorBlue      = RGB(0, 0, 255)
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorDarkRed   = RGB(139, 0, 0)
	ColorDarkGreen = RGB(0, 100, 0)
	ColorDarkBlue  = RGB(0, 0, 139)
	ColorDarkGray  = RGB(169, 169, 169)
	ColorGray      = RGB(128, 128, 128)
	ColorLightGray = RGB(211, 211, 211)
	ColorYellow    = RGB(255, 255, 0)
	ColorBrown     = RGB(165, 42, 42)
	ColorPink      = RGB(205, 133, 63)
	ColorPurple    = RGB(128, 0, 128)
)

// ColorByName returns the opaque SVG 1.1 color with the given name, ignoring
// case and spaces ("dark olive green", "SkyBlue").
func ColorByName(name string) (Color, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}
	return RGB(c.R, c.G, c.B), true
}

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// toRGBA converts a Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
