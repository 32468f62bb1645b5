package wires

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	Key    string   `json:"key,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	Button string   `json:"button,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Frames int      `json:"frames,omitempty"`

	keys   []ebiten.Key
	button MouseButton
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner feeds scripted input into a virtual session, one step per
// frame, for automated runs and tests. Attach it with Screen.SetScriptRunner.
//
// Supported actions: "press"/"release" (key), "keys" (replace the pressed
// set), "move" (x, y), "click" (button, default left; released the next
// frame), "wait" (frames), "quit" (window-close request) and "screenshot"
// (label; only displays that can capture honor it).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	release   *MouseButton
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Screen via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// resolve validates the action and looks up key and button names.
func (st *scriptStep) resolve() error {
	switch st.Action {
	case "press", "release":
		k, ok := KeyByName(st.Key)
		if !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		st.keys = []ebiten.Key{k}
	case "keys":
		st.keys = make([]ebiten.Key, 0, len(st.Keys))
		for _, name := range st.Keys {
			k, ok := KeyByName(name)
			if !ok {
				return fmt.Errorf("unknown key %q", name)
			}
			st.keys = append(st.keys, k)
		}
	case "click":
		switch st.Button {
		case "", "left":
			st.button = MouseButtonLeft
		case "right":
			st.button = MouseButtonRight
		case "middle":
			st.button = MouseButtonMiddle
		default:
			return fmt.Errorf("unknown button %q", st.Button)
		}
	case "move", "wait", "quit", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetScriptRunner attaches a ScriptRunner to the screen. The runner's step
// method is called at the start of every frame, before the quit and exit
// key checks. Panics with ErrNotVirtual unless the screen reads a
// VirtualInput.
func (s *Screen) SetScriptRunner(runner *ScriptRunner) {
	if _, ok := s.input.(*VirtualInput); !ok && runner != nil {
		panic(ErrNotVirtual)
	}
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Screen.frame.
func (r *ScriptRunner) step(s *Screen) {
	if r.done {
		return
	}
	in := s.input.(*VirtualInput)

	if r.release != nil {
		in.SetMouseButton(*r.release, false)
		r.release = nil
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		in.PressKey(st.keys[0])
	case "release":
		in.ReleaseKey(st.keys[0])
	case "keys":
		in.SetKeys(st.keys)
	case "move":
		in.SetCursorPosition(st.X, st.Y)
	case "click":
		in.SetMouseButton(st.button, true)
		b := st.button
		r.release = &b
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		in.RequestQuit()
	case "screenshot":
		if sh, ok := s.display.(screenshotter); ok {
			sh.Screenshot(st.Label)
		} else {
			s.logger.Debug("screenshot skipped, display cannot capture", "label", st.Label)
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.release == nil {
		r.done = true
	}
}
