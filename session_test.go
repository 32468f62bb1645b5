package wires

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func virtualConfig() Config {
	cfg := DefaultConfig()
	cfg.Virtual = true
	cfg.Width, cfg.Height = 320, 240
	return cfg
}

func TestInitVirtual(t *testing.T) {
	s, err := Init(virtualConfig())
	require.NoError(t, err)

	assert.True(t, s.Virtual())
	assert.IsType(t, &HeadlessDisplay{}, s.Screen.Display())
	require.NotNil(t, s.VirtualInput())
	assert.Equal(t, 320, s.Screen.Width())
	assert.Equal(t, 240, s.Screen.Height())
	assert.Equal(t, 50, s.Screen.FPS())
	assert.Equal(t, log.InfoLevel, s.Logger.GetLevel())

	_, on := s.Screen.ExitKey()
	assert.False(t, on, "virtual sessions ignore the exit key")
}

func TestInitInvalidConfig(t *testing.T) {
	cfg := virtualConfig()
	cfg.FPS = 0
	_, err := Init(cfg)
	assert.Error(t, err)
}

func TestInitDebug(t *testing.T) {
	cfg := virtualConfig()
	cfg.Debug = true
	s, err := Init(cfg)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, s.Logger.GetLevel())
}

func TestSessionVirtualInputDrivesFacades(t *testing.T) {
	s, err := Init(virtualConfig())
	require.NoError(t, err)
	in := s.VirtualInput()

	in.SetCursorPosition(12, 34)
	assert.Equal(t, Vec2{12, 34}, s.Mouse.Position())

	s.Keyboard.SetKeys([]ebiten.Key{ebiten.KeyEscape})
	assert.True(t, in.IsKeyPressed(ebiten.KeyEscape))
	assert.Equal(t, 3, s.Screen.RunFrames(3), "escape ignored in virtual mode")
}

func TestSessionMainloop(t *testing.T) {
	cfg := virtualConfig()
	cfg.FPS = 500
	s, err := Init(cfg)
	require.NoError(t, err)

	m := NewMessage("bye", 12, ColorWhite, 5, s.Screen.Quit, SpriteOptions{})
	s.Screen.Add(m)
	require.NoError(t, s.Mainloop())
	assert.Equal(t, uint64(5), s.Screen.Frame())
}

func TestSessionLoadSound(t *testing.T) {
	s, err := Init(virtualConfig())
	require.NoError(t, err)

	_, err = s.LoadSound(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)

	snd, err := s.LoadSound(writeWAV(t, 44100, 441))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, snd.Len())
	assert.Equal(t, 1.0, snd.Volume())

	snd.Play(0)
	snd.Play(1)
	assert.Equal(t, 2, snd.Playing())
	s.audio.drain(500)
	assert.Equal(t, 1, snd.Playing(), "the single pass finished")
	s.audio.drain(500)
	assert.Equal(t, 0, snd.Playing())
}

func TestSoundStopFadeVolume(t *testing.T) {
	s, err := Init(virtualConfig())
	require.NoError(t, err)
	snd, err := s.LoadSound(writeWAV(t, 44100, 441))
	require.NoError(t, err)

	snd.SetVolume(2)
	assert.Equal(t, 1.0, snd.Volume())
	snd.SetVolume(-1)
	assert.Equal(t, 0.0, snd.Volume())

	snd.Play(-1)
	snd.Play(-1)
	snd.SetVolume(0.25)
	snd.Stop()
	assert.Equal(t, 0, snd.Playing())

	snd.Play(-1)
	snd.Fadeout(5)
	s.audio.drain(300)
	assert.Equal(t, 0, snd.Playing())

	snd.Play(-1)
	snd.Fadeout(0)
	assert.Equal(t, 0, snd.Playing())
}
