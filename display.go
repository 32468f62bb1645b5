package wires

import (
	"errors"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Display is the surface a Screen composites each frame into. A frame is a
// Begin call, any number of Draw calls and, unless the frame was aborted, a
// Present call.
type Display interface {
	// Begin starts a frame by painting the background into the frame buffer.
	// A nil background paints black.
	Begin(background *ebiten.Image)
	// Draw composites img rotated clockwise by angle degrees, centered on dst.
	Draw(img *ebiten.Image, angle float64, dst Rect)
	// Present makes the finished frame visible.
	Present()
	// Close releases window resources. The Screen calls it on Quit.
	Close()
}

// frameDriver is implemented by displays that own the frame loop and pacing
// themselves instead of letting the Screen sleep between frames.
type frameDriver interface {
	drive(s *Screen) error
}

// screenshotter is implemented by displays that can capture presented frames.
type screenshotter interface {
	Screenshot(label string)
}

// --- Ebitengine display ---

// EbitenDisplay shows frames in an Ebitengine window. It drives the Screen's
// frames from ebiten.RunGame with the tick rate set to the Screen's fps.
type EbitenDisplay struct {
	width, height int
	title         string

	buffer *ebiten.Image // frame being composited
	front  *ebiten.Image // last presented frame
	closed bool
	ran    bool

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
	logger          *log.Logger
}

// NewEbitenDisplay creates a window-backed display. The window opens when the
// Screen's main loop starts.
func NewEbitenDisplay(width, height int, title string) *EbitenDisplay {
	return &EbitenDisplay{
		width:         width,
		height:        height,
		title:         title,
		buffer:        ebiten.NewImage(width, height),
		front:         ebiten.NewImage(width, height),
		ScreenshotDir: "screenshots",
		logger:        log.Default(),
	}
}

// Buffer returns the off-screen frame buffer.
func (d *EbitenDisplay) Buffer() *ebiten.Image { return d.buffer }

func (d *EbitenDisplay) Begin(background *ebiten.Image) {
	d.buffer.Fill(color.Black)
	if background != nil {
		d.buffer.DrawImage(background, nil)
	}
}

func (d *EbitenDisplay) Draw(img *ebiten.Image, angle float64, dst Rect) {
	drawRotated(d.buffer, img, angle, dst)
}

func (d *EbitenDisplay) Present() {
	d.front.Clear()
	d.front.DrawImage(d.buffer, nil)
}

func (d *EbitenDisplay) Close() {
	d.closed = true
}

// errWindowReused is returned when a second main loop is started on an
// EbitenDisplay; Ebitengine runs one game per process.
var errWindowReused = errors.New("wires: the window cannot be reopened after its main loop ended")

func (d *EbitenDisplay) drive(s *Screen) error {
	if d.ran {
		s.state = stateStopped
		return errWindowReused
	}
	d.ran = true
	d.logger = s.logger
	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetTPS(s.fps)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(&ebitenGame{display: d, screen: s})
	d.buffer.Deallocate()
	d.front.Deallocate()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// ebitenGame adapts a Screen to ebiten.Game.
type ebitenGame struct {
	display *EbitenDisplay
	screen  *Screen
}

func (g *ebitenGame) Update() error {
	if !g.screen.Running() || g.display.closed {
		return ebiten.Termination
	}
	g.screen.frame()
	if !g.screen.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.display.front, nil)
	g.display.flushScreenshots(screen)
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return g.display.width, g.display.height
}

// drawRotated draws img onto dst rotated clockwise by angle degrees around
// its center, with the center placed at the center of r.
func drawRotated(dst, img *ebiten.Image, angle float64, r Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if angle != 0 {
		op.GeoM.Rotate(angle * math.Pi / 180)
	}
	op.GeoM.Translate(r.CenterX(), r.CenterY())
	dst.DrawImage(img, op)
}

// --- Headless display ---

// DrawCall records one Draw made against a HeadlessDisplay.
type DrawCall struct {
	Image *ebiten.Image
	Angle float64
	Dst   Rect
}

// HeadlessDisplay records frames without rendering anything. It is used by
// virtual sessions and tests.
type HeadlessDisplay struct {
	background *ebiten.Image
	pending    []DrawCall
	last       []DrawCall
	presented  int
	closed     bool
}

// NewHeadlessDisplay creates a display that only records draw calls.
func NewHeadlessDisplay() *HeadlessDisplay {
	return &HeadlessDisplay{}
}

func (d *HeadlessDisplay) Begin(background *ebiten.Image) {
	d.background = background
	d.pending = d.pending[:0]
}

func (d *HeadlessDisplay) Draw(img *ebiten.Image, angle float64, dst Rect) {
	d.pending = append(d.pending, DrawCall{Image: img, Angle: angle, Dst: dst})
}

func (d *HeadlessDisplay) Present() {
	d.last = append(d.last[:0], d.pending...)
	d.presented++
}

func (d *HeadlessDisplay) Close() {
	d.closed = true
}

// Presented returns the number of frames presented so far.
func (d *HeadlessDisplay) Presented() int { return d.presented }

// LastFrame returns the draw calls of the most recently presented frame.
// The returned slice MUST NOT be mutated.
func (d *HeadlessDisplay) LastFrame() []DrawCall { return d.last }

// Pending returns the draw calls made since the last Begin.
// The returned slice MUST NOT be mutated.
func (d *HeadlessDisplay) Pending() []DrawCall { return d.pending }

// Background returns the background passed to the last Begin.
func (d *HeadlessDisplay) Background() *ebiten.Image { return d.background }

// Closed reports whether Close has been called.
func (d *HeadlessDisplay) Closed() bool { return d.closed }
