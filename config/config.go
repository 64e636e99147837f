package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Tempo limits for playback.
const (
	MinTempo     = 20
	MaxTempo     = 300
	DefaultTempo = 120
)

// PlaybackConfig stores playback preferences.
type PlaybackConfig struct {
	Port       string `json:"port,omitempty"`       // MIDI output port; empty means first available
	Tempo      int    `json:"tempo,omitempty"`      // beats per minute
	Instrument string `json:"instrument,omitempty"` // General MIDI program name
}

// UIConfig stores UI preferences.
type UIConfig struct {
	Theme string `json:"theme,omitempty"` // path to a GIMP palette file
	Plain bool   `json:"plain,omitempty"` // disable the full-screen player UI
}

// Config is the main configuration structure.
type Config struct {
	Playback PlaybackConfig `json:"playback,omitempty"`
	UI       UIConfig       `json:"ui,omitempty"`
	Debug    bool           `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Tempo:      DefaultTempo,
			Instrument: "Acoustic Grand Piano",
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-canon"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from path, or returns defaults if it does
// not exist. Fields the file omits keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ClampTempo forces bpm into the playable range, substituting the default
// for zero.
func ClampTempo(bpm int) int {
	if bpm == 0 {
		return DefaultTempo
	}
	if bpm < MinTempo {
		return MinTempo
	}
	if bpm > MaxTempo {
		return MaxTempo
	}
	return bpm
}

// TempoOrDefault returns the configured tempo clamped to the playable range.
func (c *Config) TempoOrDefault() int {
	return ClampTempo(c.Playback.Tempo)
}
