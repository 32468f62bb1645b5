package wires

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type screenState uint8

const (
	stateIdle screenState = iota
	stateRunning
	stateStopped
)

func (st screenState) String() string {
	switch st {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	default:
		return "stopped"
	}
}

// Screen owns the registered entities and runs the frame loop that moves,
// collides and draws them. Its size and frame rate are fixed at creation.
type Screen struct {
	width, height int
	fps           int

	display Display
	input   InputSource
	logger  *log.Logger

	background *ebiten.Image

	entities []Entity
	snapshot []Entity // reused per-frame iteration copy

	state      screenState
	frameCount uint64

	prevDirty []Rect
	dirty     []Rect

	exitKey   ebiten.Key
	exitKeyOn bool
	eventGrab bool

	sink   EventSink
	runner *ScriptRunner
	debug  bool
	stats  frameStats
}

// NewScreen creates a screen of the given size that targets fps frames per
// second, compositing into display and polling input for quit requests.
// The Escape key stops the loop unless changed with SetExitKey or
// ClearExitKey. Panics on non-positive dimensions or fps, or nil
// collaborators.
func NewScreen(width, height, fps int, display Display, input InputSource) *Screen {
	if width <= 0 || height <= 0 {
		panic("wires: screen size must be positive")
	}
	if fps <= 0 {
		panic("wires: fps must be positive")
	}
	if display == nil || input == nil {
		panic("wires: screen needs a display and an input source")
	}
	return &Screen{
		width:     width,
		height:    height,
		fps:       fps,
		display:   display,
		input:     input,
		logger:    log.Default(),
		exitKey:   ebiten.KeyEscape,
		exitKeyOn: true,
	}
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }
func (s *Screen) FPS() int    { return s.fps }

// Display returns the display the screen composites into.
func (s *Screen) Display() Display { return s.display }

// SetLogger replaces the logger used for state changes and debug stats.
func (s *Screen) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (s *Screen) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// --- Background & input settings ---

// Background returns the background image, or nil for plain black.
func (s *Screen) Background() *ebiten.Image { return s.background }

// SetBackground sets the image painted at the top-left corner before the
// entities each frame. Areas it does not cover are black.
func (s *Screen) SetBackground(img *ebiten.Image) { s.background = img }

// SetExitKey makes k stop the main loop when held.
func (s *Screen) SetExitKey(k ebiten.Key) {
	s.exitKey = k
	s.exitKeyOn = true
}

// ClearExitKey disables the exit key check.
func (s *Screen) ClearExitKey() { s.exitKeyOn = false }

// ExitKey returns the exit key and whether the check is enabled.
func (s *Screen) ExitKey() (ebiten.Key, bool) { return s.exitKey, s.exitKeyOn }

// EventGrab reports whether input is grabbed by the window.
func (s *Screen) EventGrab() bool { return s.eventGrab }

// SetEventGrab confines the pointer to the window when grab is true.
func (s *Screen) SetEventGrab(grab bool) {
	s.eventGrab = grab
	s.input.SetCursorGrabbed(grab)
}

// --- Entity registration ---

// Add registers e with the screen so it is simulated and drawn each frame,
// after every entity already registered. An entity registered with another
// screen is moved here; adding an entity twice is a no-op.
// Panics if e is nil.
func (s *Screen) Add(e Entity) {
	if e == nil {
		panic("wires: cannot add nil entity")
	}
	sp := e.sprite()
	if sp == nil {
		panic("wires: entity has no sprite")
	}
	if sp.screen == s {
		return
	}
	if sp.screen != nil {
		sp.screen.removeSprite(sp)
	}
	s.entities = append(s.entities, e)
	sp.screen = s
	s.emitLifecycle(EventAdded, sp)
	if s.debug {
		s.debugCheckEntityCount()
	}
}

// Remove deregisters e. No-op if e is not on this screen.
func (s *Screen) Remove(e Entity) {
	if e == nil {
		return
	}
	sp := e.sprite()
	if sp == nil || sp.screen != s {
		return
	}
	s.removeSprite(sp)
}

// removeSprite removes the entity owning sp and clears its back-reference.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Screen) removeSprite(sp *Sprite) {
	for i, e := range s.entities {
		if e.sprite() == sp {
			copy(s.entities[i:], s.entities[i+1:])
			s.entities[len(s.entities)-1] = nil
			s.entities = s.entities[:len(s.entities)-1]
			sp.screen = nil
			sp.overlapping = nil
			s.emitLifecycle(EventRemoved, sp)
			return
		}
	}
}

// Clear removes every registered entity. Only the background remains.
func (s *Screen) Clear() {
	old := s.entities
	s.entities = nil
	for _, e := range old {
		sp := e.sprite()
		sp.screen = nil
		sp.overlapping = nil
		s.emitLifecycle(EventRemoved, sp)
	}
}

// Entities returns a copy of the registered entities in registration order.
func (s *Screen) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

// Len returns the number of registered entities.
func (s *Screen) Len() int { return len(s.entities) }

// Contains reports whether e is registered with this screen.
func (s *Screen) Contains(e Entity) bool {
	if e == nil {
		return false
	}
	sp := e.sprite()
	return sp != nil && sp.screen == s
}

// --- Dirty rectangles ---

// DirtyRects returns a copy of the regions drawn during the current frame.
func (s *Screen) DirtyRects() []Rect { return append([]Rect(nil), s.dirty...) }

// PreviousDirtyRects returns a copy of the regions drawn during the previous
// frame.
func (s *Screen) PreviousDirtyRects() []Rect { return append([]Rect(nil), s.prevDirty...) }

// --- Loop ---

// Running reports whether the main loop is running.
func (s *Screen) Running() bool { return s.state == stateRunning }

// Frame returns the number of frames started so far.
func (s *Screen) Frame() uint64 { return s.frameCount }

// Mainloop runs frames until the loop is stopped by Quit, a window-close
// request or the exit key. Displays that drive their own loop (the Ebitengine
// window) pace frames at the screen's fps; otherwise the screen sleeps out
// the remainder of each frame's time budget.
func (s *Screen) Mainloop() error {
	s.start()
	if d, ok := s.display.(frameDriver); ok {
		return d.drive(s)
	}

	budget := time.Second / time.Duration(s.fps)
	for s.Running() {
		start := time.Now()
		s.frame()
		if !s.Running() {
			return nil
		}
		if delay := budget - time.Since(start); delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}

// RunFrames runs up to n frames back to back without pacing and returns how
// many ran. It stops early if the loop is stopped. The screen is left
// running unless a frame stopped it.
func (s *Screen) RunFrames(n int) int {
	s.start()
	ran := 0
	for ran < n && s.Running() {
		s.frame()
		ran++
	}
	return ran
}

func (s *Screen) start() {
	if s.state != stateRunning {
		s.logger.Debug("main loop started", "from", s.state, "width", s.width, "height", s.height, "fps", s.fps)
	}
	s.state = stateRunning
}

// Quit stops the main loop and closes the display. The current frame is not
// presented. Panics with ErrNotRunning if the loop is not running.
func (s *Screen) Quit() {
	if s.state != stateRunning {
		panic(ErrNotRunning)
	}
	s.state = stateStopped
	s.display.Close()
	s.logger.Debug("main loop stopped", "frame", s.frameCount)
}

// frame runs one iteration of the main loop without pacing.
func (s *Screen) frame() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = frameStats{}
	}

	s.frameCount++
	s.prevDirty, s.dirty = s.dirty, s.prevDirty[:0]
	s.display.Begin(s.background)

	if s.runner != nil {
		s.runner.step(s)
		if !s.Running() {
			return
		}
	}

	if s.input.QuitRequested() {
		s.logger.Info("quit requested")
		s.Quit()
		return
	}
	if s.exitKeyOn && s.input.IsKeyPressed(s.exitKey) {
		s.logger.Info("exit key pressed", "key", s.exitKey)
		s.Quit()
		return
	}

	// Callbacks may add or remove entities; iterate over a copy and skip
	// anything removed earlier in this frame.
	s.snapshot = append(s.snapshot[:0], s.entities...)
	defer clear(s.snapshot)
	for _, e := range s.snapshot {
		if !s.Running() {
			return
		}
		sp := e.sprite()
		if sp.screen != s {
			continue
		}
		s.process(e, sp)
	}
	if !s.Running() {
		return
	}

	s.display.Present()

	if s.debug {
		s.stats.entities = len(s.entities)
		s.stats.dirty = len(s.dirty)
		s.stats.frameTime = time.Since(t0)
		s.debugLog(s.stats)
	}
}

// process runs one entity's per-frame sequence: overlap check, draw, move,
// Update, and the interval countdown.
func (s *Screen) process(e Entity, sp *Sprite) {
	sp.checkOverlap()
	s.emitCollisions(sp)

	s.draw(sp)
	sp.move()

	if u, ok := e.(Updater); ok {
		u.Update()
	}

	sp.tickTimer--
	if sp.tickTimer == 0 {
		if sp.onInterval != nil {
			sp.onInterval()
		}
		if t, ok := e.(Ticker); ok {
			t.Tick()
		}
		sp.tickTimer = sp.interval
	}
}

func (s *Screen) draw(sp *Sprite) {
	s.display.Draw(sp.image, sp.angle, sp.rect)
	s.dirty = append(s.dirty, sp.rect)
	if s.debug {
		s.stats.draws++
	}
}
