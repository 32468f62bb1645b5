package wires

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures a session created by Init.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`

	// Virtual runs the session without a window, real input or sound output.
	// Keys, buttons and the pointer are then set by the program.
	Virtual bool `yaml:"virtual"`

	Title string `yaml:"title"`

	// ExitKey names the key that stops the main loop ("Escape" by default).
	// Empty disables it. Ignored in virtual sessions.
	ExitKey string `yaml:"exit_key"`

	// Debug enables per-frame stats at debug log level.
	Debug bool `yaml:"debug"`

	Audio AudioConfig `yaml:"audio"`
}

// AudioConfig configures the speaker used by Music and Sound.
type AudioConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	BufferMillis int     `yaml:"buffer_ms"`
	Volume       float64 `yaml:"volume"`
}

// DefaultConfig returns the configuration used for fields a config file
// leaves out.
func DefaultConfig() Config {
	return Config{
		Width:   640,
		Height:  480,
		FPS:     50,
		Title:   "wires",
		ExitKey: "Escape",
		Audio: AudioConfig{
			SampleRate:   44100,
			BufferMillis: 100,
			Volume:       1,
		},
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("wires: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("wires: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("wires: invalid screen size %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("wires: invalid fps %d", c.FPS)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("wires: invalid audio sample rate %d", c.Audio.SampleRate)
	case c.Audio.BufferMillis <= 0:
		return fmt.Errorf("wires: invalid audio buffer %dms", c.Audio.BufferMillis)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("wires: audio volume %v out of range [0, 1]", c.Audio.Volume)
	}
	if c.ExitKey != "" {
		if _, ok := KeyByName(c.ExitKey); !ok {
			return fmt.Errorf("wires: unknown exit key %q", c.ExitKey)
		}
	}
	return nil
}
