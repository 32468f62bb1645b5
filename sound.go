package wires

import (
	"slices"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound is a short clip decoded into memory. Each Play starts an independent
// voice, so a sound may overlap itself.
type Sound struct {
	audio  *audio
	clip   *beep.Buffer
	volume float64
	voices []*voice
}

type voice struct {
	ctrl *beep.Ctrl
	fade *fader
	vol  *effects.Volume
}

// LoadSound decodes the WAV file at path.
func (s *Session) LoadSound(path string) (*Sound, error) {
	clip, err := s.audio.load(path)
	if err != nil {
		return nil, err
	}
	return &Sound{audio: s.audio, clip: clip, volume: 1}, nil
}

// Len returns the clip length.
func (snd *Sound) Len() time.Duration {
	return snd.audio.rate.D(snd.clip.Len())
}

// Play starts a new voice. loops is the number of extra repeats: 0 plays
// once, -1 repeats forever.
func (snd *Sound) Play(loops int) {
	count := loopCount(loops)
	v := &voice{fade: &fader{s: beep.Loop(count, snd.clip.Streamer(0, snd.clip.Len()))}}
	v.vol = withVolume(v.fade, snd.volume)
	v.ctrl = &beep.Ctrl{Streamer: v.vol}

	snd.audio.do(func() { snd.voices = append(snd.voices, v) })
	snd.audio.play(beep.Seq(v.ctrl, beep.Callback(func() { snd.drop(v) })))
}

// drop forgets a finished voice. Called with the audio lock held.
func (snd *Sound) drop(v *voice) {
	snd.voices = slices.DeleteFunc(snd.voices, func(o *voice) bool { return o == v })
}

// Stop silences every voice of this sound.
func (snd *Sound) Stop() {
	snd.audio.do(func() {
		for _, v := range snd.voices {
			v.ctrl.Streamer = nil
		}
		snd.voices = nil
	})
}

// Fadeout fades every voice of this sound to silence over ms milliseconds.
func (snd *Sound) Fadeout(ms int) {
	if ms <= 0 {
		snd.Stop()
		return
	}
	n := snd.audio.rate.N(time.Duration(ms) * time.Millisecond)
	snd.audio.do(func() {
		for _, v := range snd.voices {
			v.fade.start(n)
		}
	})
}

// Volume returns the playback volume in [0, 1].
func (snd *Sound) Volume() float64 { return snd.volume }

// SetVolume sets the volume of current and future voices, clamped to [0, 1].
func (snd *Sound) SetVolume(v float64) {
	snd.volume = clamp01(v)
	snd.audio.do(func() {
		for _, vc := range snd.voices {
			setVolume(vc.vol, snd.volume)
		}
	})
}

// Playing returns the number of voices still sounding.
func (snd *Sound) Playing() int {
	var n int
	snd.audio.do(func() { n = len(snd.voices) })
	return n
}
