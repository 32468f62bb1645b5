package wires

import (
	"os"

	"github.com/charmbracelet/log"
)

// Session bundles the screen and the input and audio façades created by Init.
// A program normally has one; calling Init again builds an independent
// session and the old one should be dropped.
type Session struct {
	Screen   *Screen
	Mouse    *Mouse
	Keyboard *Keyboard
	Music    *Music
	Logger   *log.Logger

	config Config
	input  InputSource
	audio  *audio
}

// Init validates cfg and builds a session. A virtual session composites into
// a HeadlessDisplay, reads a VirtualInput and mixes audio without a speaker;
// a real one opens an Ebitengine window when its main loop starts and plays
// sound through the default output device.
func Init(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wires"})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	var (
		display Display
		input   InputSource
	)
	if cfg.Virtual {
		display = NewHeadlessDisplay()
		input = NewVirtualInput()
	} else {
		display = NewEbitenDisplay(cfg.Width, cfg.Height, cfg.Title)
		input = newEbitenInput()
	}

	a, err := newAudio(cfg.Audio, !cfg.Virtual)
	if err != nil {
		return nil, err
	}

	screen := NewScreen(cfg.Width, cfg.Height, cfg.FPS, display, input)
	screen.SetLogger(logger)
	screen.SetDebugMode(cfg.Debug)
	switch {
	case cfg.Virtual, cfg.ExitKey == "":
		screen.ClearExitKey()
	default:
		k, _ := KeyByName(cfg.ExitKey)
		screen.SetExitKey(k)
	}

	logger.Debug("session initialized",
		"width", cfg.Width,
		"height", cfg.Height,
		"fps", cfg.FPS,
		"virtual", cfg.Virtual,
	)

	return &Session{
		Screen:   screen,
		Mouse:    newMouse(input),
		Keyboard: newKeyboard(input),
		Music:    newMusic(a),
		Logger:   logger,
		config:   cfg,
		input:    input,
		audio:    a,
	}, nil
}

// Config returns the configuration the session was built from.
func (s *Session) Config() Config { return s.config }

// Virtual reports whether the session runs without a window.
func (s *Session) Virtual() bool { return s.config.Virtual }

// VirtualInput returns the scriptable input of a virtual session, or nil for
// a real one.
func (s *Session) VirtualInput() *VirtualInput {
	v, _ := s.input.(*VirtualInput)
	return v
}

// Mainloop runs the screen's main loop and silences all audio once it ends.
func (s *Session) Mainloop() error {
	defer s.audio.close()
	return s.Screen.Mainloop()
}
