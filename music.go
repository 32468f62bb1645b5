package wires

import (
	"time"

	"github.com/gopxl/beep"
)

// Music plays one background track at a time.
type Music struct {
	audio *audio

	track *beep.Buffer
	path  string

	ctrl    *beep.Ctrl
	fade    *fader
	playing bool
}

func newMusic(a *audio) *Music {
	return &Music{audio: a}
}

// Load decodes the WAV file at path as the current track, stopping whatever
// is playing. On error the previous track stays loaded.
func (m *Music) Load(path string) error {
	buf, err := m.audio.load(path)
	if err != nil {
		return err
	}
	m.Stop()
	m.track = buf
	m.path = path
	return nil
}

// Track returns the path of the loaded track, or "" if none.
func (m *Music) Track() string { return m.path }

// Play starts the loaded track from the beginning. loops is the number of
// extra repeats: 0 plays once, -1 repeats forever. Panics if no track is
// loaded.
func (m *Music) Play(loops int) {
	if m.track == nil {
		panic("wires: no music loaded")
	}
	count := loopCount(loops)
	m.Stop()

	fade := &fader{s: beep.Loop(count, m.track.Streamer(0, m.track.Len()))}
	ctrl := &beep.Ctrl{Streamer: fade}
	m.audio.do(func() {
		m.ctrl, m.fade, m.playing = ctrl, fade, true
	})
	m.audio.play(beep.Seq(ctrl, beep.Callback(func() {
		if m.ctrl == ctrl {
			m.playing = false
		}
	})))
}

// Fadeout lowers the volume to silence over ms milliseconds, then stops.
func (m *Music) Fadeout(ms int) {
	if ms <= 0 {
		m.Stop()
		return
	}
	m.audio.do(func() {
		if m.playing {
			m.fade.start(m.audio.rate.N(time.Duration(ms) * time.Millisecond))
		}
	})
}

// Stop ends playback immediately.
func (m *Music) Stop() {
	m.audio.do(func() {
		if m.ctrl != nil {
			m.ctrl.Streamer = nil
		}
		m.ctrl, m.fade, m.playing = nil, nil, false
	})
}

// Playing reports whether the track is still sounding.
func (m *Music) Playing() bool {
	var p bool
	m.audio.do(func() { p = m.playing })
	return p
}
