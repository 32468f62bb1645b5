package wires

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet holds the named frames of a TexturePacker sprite sheet, restored to
// their authored size and orientation.
type Sheet struct {
	frames map[string]*ebiten.Image
}

type sheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type sheetFrame struct {
	Frame            sheetRect `json:"frame"`
	Rotated          bool      `json:"rotated"`
	Trimmed          bool      `json:"trimmed"`
	SpriteSourceSize sheetRect `json:"spriteSourceSize"`
	SourceSize       struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"sourceSize"`
}

// LoadSheet parses TexturePacker JSON in either the hash format (a single
// "frames" object) or the array format (a "textures" list, one entry per
// page) and cuts the frames out of pages.
func LoadSheet(jsonData []byte, pages ...*ebiten.Image) (*Sheet, error) {
	var doc struct {
		Frames   map[string]sheetFrame `json:"frames"`
		Textures []struct {
			Frames map[string]sheetFrame `json:"frames"`
		} `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("wires: parse sheet: %w", err)
	}

	perPage := make([]map[string]sheetFrame, 0, len(doc.Textures))
	switch {
	case doc.Textures != nil:
		for _, tex := range doc.Textures {
			perPage = append(perPage, tex.Frames)
		}
	case doc.Frames != nil:
		perPage = append(perPage, doc.Frames)
	default:
		return nil, fmt.Errorf("wires: parse sheet: neither \"frames\" nor \"textures\" present")
	}
	if len(pages) < len(perPage) {
		return nil, fmt.Errorf("wires: parse sheet: %d pages described, %d given", len(perPage), len(pages))
	}

	sh := &Sheet{frames: make(map[string]*ebiten.Image)}
	for i, frames := range perPage {
		for name, f := range frames {
			img, err := cutFrame(pages[i], f)
			if err != nil {
				return nil, fmt.Errorf("wires: parse sheet: frame %q: %w", name, err)
			}
			sh.frames[name] = img
		}
	}
	return sh, nil
}

// cutFrame extracts f from page, undoing TexturePacker's clockwise rotation
// and re-padding trimmed frames to their source size.
func cutFrame(page *ebiten.Image, f sheetFrame) (*ebiten.Image, error) {
	w, h := f.Frame.W, f.Frame.H
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty frame %dx%d", w, h)
	}
	region := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+w, f.Frame.Y+h)
	if f.Rotated {
		region = image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+h, f.Frame.Y+w)
	}
	if !region.In(page.Bounds()) {
		return nil, fmt.Errorf("region %v outside page %v", region, page.Bounds())
	}
	sub := page.SubImage(region).(*ebiten.Image)
	if !f.Rotated && !f.Trimmed {
		return sub, nil
	}

	outW, outH := w, h
	if f.Trimmed && f.SourceSize.W > 0 && f.SourceSize.H > 0 {
		outW, outH = f.SourceSize.W, f.SourceSize.H
	}
	out := ebiten.NewImage(outW, outH)
	op := &ebiten.DrawImageOptions{}
	if f.Rotated {
		op.GeoM.Rotate(-math.Pi / 2)
		op.GeoM.Translate(0, float64(region.Dx()))
	}
	if f.Trimmed {
		op.GeoM.Translate(float64(f.SpriteSourceSize.X), float64(f.SpriteSourceSize.Y))
	}
	out.DrawImage(sub, op)
	return out, nil
}

var placeholder *ebiten.Image

// Frame returns the named frame. A missing name yields a 1x1 magenta
// placeholder and false.
func (sh *Sheet) Frame(name string) (*ebiten.Image, bool) {
	if img, ok := sh.frames[name]; ok {
		return img, true
	}
	if placeholder == nil {
		placeholder = ebiten.NewImage(1, 1)
		placeholder.Fill(color.RGBA{R: 255, B: 255, A: 255})
	}
	return placeholder, false
}

// Names returns every frame name in sequence order.
func (sh *Sheet) Names() []string {
	return slices.SortedFunc(maps.Keys(sh.frames), sequenceOrder)
}

// Sequence returns the frames whose names start with prefix, ordered so
// that "walk_2" comes before "walk_10". The result suits NewAnimation.
func (sh *Sheet) Sequence(prefix string) []*ebiten.Image {
	var out []*ebiten.Image
	for _, name := range sh.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, sh.frames[name])
		}
	}
	return out
}

func sequenceOrder(a, b string) int {
	return cmp.Or(cmp.Compare(len(a), len(b)), cmp.Compare(a, b))
}

// SliceGrid cuts img into frameW by frameH cells, row by row. Partial cells
// at the right and bottom edges are dropped. Panics if a frame dimension is
// not positive.
func SliceGrid(img *ebiten.Image, frameW, frameH int) []*ebiten.Image {
	if frameW <= 0 || frameH <= 0 {
		panic("wires: grid cell size must be positive")
	}
	b := img.Bounds()
	var out []*ebiten.Image
	for y := b.Min.Y; y+frameH <= b.Max.Y; y += frameH {
		for x := b.Min.X; x+frameW <= b.Max.X; x += frameW {
			out = append(out, img.SubImage(image.Rect(x, y, x+frameW, y+frameH)).(*ebiten.Image))
		}
	}
	return out
}
