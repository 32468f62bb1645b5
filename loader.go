package wires

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the PNG, JPEG, BMP or WebP file at path. When transparent
// is true every pixel matching the top-left pixel's color becomes fully
// transparent.
func LoadImage(path string, transparent bool) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wires: load image %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("wires: decode image %s: %w", path, err)
	}
	return toEbiten(img, transparent), nil
}

// LoadImageFS is LoadImage reading name from fsys, for embedded assets.
func LoadImageFS(fsys fs.FS, name string, transparent bool) (*ebiten.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("wires: load image %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("wires: decode image %s: %w", name, err)
	}
	return toEbiten(img, transparent), nil
}

// MustLoadImage is LoadImage that panics on error. It suits package-level
// asset variables.
func MustLoadImage(path string, transparent bool) *ebiten.Image {
	img, err := LoadImage(path, transparent)
	if err != nil {
		panic(err)
	}
	return img
}

func toEbiten(img image.Image, transparent bool) *ebiten.Image {
	if transparent {
		img = colorKey(img)
	}
	return ebiten.NewImageFromImage(img)
}

// colorKey copies img to NRGBA with every pixel equal to the top-left one
// made transparent.
func colorKey(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	if b.Empty() {
		return out
	}
	key := out.NRGBAAt(0, 0)
	for y := range b.Dy() {
		for x := range b.Dx() {
			if out.NRGBAAt(x, y) == key {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out
}

// ScaleImage returns a copy of img scaled by sx horizontally and sy
// vertically, rounded to whole pixels. A non-positive sy scales both axes by
// sx. Panics if sx is not positive.
func ScaleImage(img *ebiten.Image, sx, sy float64) *ebiten.Image {
	if sx <= 0 {
		panic("wires: scale must be positive")
	}
	if sy <= 0 {
		sy = sx
	}
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*sx)))
	h := max(1, int(math.Round(float64(b.Dy())*sy)))

	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	out.DrawImage(img, op)
	return out
}
