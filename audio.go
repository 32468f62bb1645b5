package wires

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// audio mixes every playing Music and Sound stream. A live backend feeds the
// speaker; a silent one (virtual sessions) is never drained by a device, so
// streams stay queued until stopped.
type audio struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	live   bool
}

func newAudio(cfg AudioConfig, live bool) (*audio, error) {
	a := &audio{
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	a.master = withVolume(a.mixer, cfg.Volume)
	if !live {
		return a, nil
	}
	buffer := a.rate.N(time.Duration(cfg.BufferMillis) * time.Millisecond)
	if err := speaker.Init(a.rate, buffer); err != nil {
		return nil, fmt.Errorf("wires: init speaker: %w", err)
	}
	speaker.Play(a.master)
	a.live = true
	return a, nil
}

// do runs f with the speaker locked when the speaker is live. Every read or
// write of state shared with streamers goes through it.
func (a *audio) do(f func()) {
	if a.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

func (a *audio) play(s beep.Streamer) {
	a.do(func() { a.mixer.Add(s) })
}

// drain pulls n samples through the mix as a device would.
func (a *audio) drain(n int) {
	buf := make([][2]float64, n)
	a.do(func() { a.master.Stream(buf) })
}

func (a *audio) close() {
	a.do(func() { a.mixer.Clear() })
}

// load decodes the WAV file at path into memory at the mixer's sample rate.
func (a *audio) load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wires: load sound %s: %w", path, err)
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("wires: decode sound %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != a.rate {
		src = beep.Resample(4, format.SampleRate, a.rate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: a.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("wires: decode sound %s: %w", path, err)
	}
	return buf, nil
}

// loopCount converts a play count in the "extra repeats" convention (0 plays
// once, -1 forever) to beep's total count. Panics below -1.
func loopCount(loops int) int {
	if loops < -1 {
		panic("wires: loops must be -1 or more")
	}
	if loops == -1 {
		return -1
	}
	return loops + 1
}

// withVolume scales s by v in [0, 1].
func withVolume(s beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: s, Base: 2}
	setVolume(vol, v)
	return vol
}

func setVolume(vol *effects.Volume, v float64) {
	v = clamp01(v)
	vol.Silent = v == 0
	if v > 0 {
		vol.Volume = math.Log2(v)
	}
}

// fader passes a stream through until a fade is started, then ramps it
// linearly to silence over the fade length and ends it.
type fader struct {
	s           beep.Streamer
	total, left int
}

func (f *fader) start(samples int) {
	if samples < 1 {
		samples = 1
	}
	if f.total > 0 && f.left < samples {
		return // an earlier, shorter fade wins
	}
	f.total, f.left = samples, samples
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.total == 0 {
		return f.s.Stream(samples)
	}
	if f.left <= 0 {
		return 0, false
	}
	n, ok := f.s.Stream(samples[:min(len(samples), f.left)])
	for i := range samples[:n] {
		g := float64(f.left-i) / float64(f.total)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	f.left -= n
	return n, ok
}

func (f *fader) Err() error { return f.s.Err() }
