package wires

import "github.com/hajimehoshi/ebiten/v2"

// Animation is a sprite that cycles through a sequence of images, advancing
// one image every Interval frames. A finite animation removes itself after
// playing the sequence the requested number of times.
type Animation struct {
	*Sprite

	images  []*ebiten.Image
	pos     int
	repeats int // remaining full cycles; -1 loops forever
}

// NewAnimation creates an animation over images. repeats is the number of
// full cycles to play before the animation destroys itself; zero loops
// forever. opts.Interval is the number of frames each image is shown.
// Panics if images is empty.
func NewAnimation(images []*ebiten.Image, repeats int, opts SpriteOptions) *Animation {
	if len(images) == 0 {
		panic("wires: animation needs at least one image")
	}
	if repeats < 0 {
		panic("wires: animation repeat count must not be negative")
	}
	a := &Animation{
		Sprite: NewSprite(images[0], opts),
		images: append([]*ebiten.Image(nil), images...),
	}
	a.repeats = repeats
	if repeats == 0 {
		a.repeats = -1
	}
	a.onInterval = a.advance
	return a
}

// NewAnimationFromFiles loads each path with LoadImage and builds an
// animation from the results.
func NewAnimationFromFiles(paths []string, transparent bool, repeats int, opts SpriteOptions) (*Animation, error) {
	images := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p, transparent)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return NewAnimation(images, repeats, opts), nil
}

// Frame returns the index of the image currently shown.
func (a *Animation) Frame() int { return a.pos }

// Len returns the number of images in the sequence.
func (a *Animation) Len() int { return len(a.images) }

// RemainingRepeats returns the cycles left to play, or -1 when looping
// forever.
func (a *Animation) RemainingRepeats() int { return a.repeats }

func (a *Animation) advance() {
	a.pos = (a.pos + 1) % len(a.images)
	a.SetImage(a.images[a.pos])
	if a.pos == 0 {
		a.repeats--
	}
	if a.repeats == 0 {
		a.Destroy()
	}
}
