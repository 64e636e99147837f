package songbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"go-canon/music"
)

// Entry is one named tune: notation parts plus an optional arrangement.
type Entry struct {
	Name       string       `yaml:"name"`
	Title      string       `yaml:"title,omitempty"`
	Instrument string       `yaml:"instrument,omitempty"` // General MIDI name; piano if empty
	Tempo      int          `yaml:"tempo,omitempty"`      // preferred beats per minute
	Parts      []string     `yaml:"parts"`                // notation, concatenated in order
	Arrange    *Arrangement `yaml:"arrange,omitempty"`
}

// Arrangement turns a parsed tune into a round or canon.
type Arrangement struct {
	Voices     int     `yaml:"voices,omitempty"`     // simultaneous voices; 0 or 1 means solo
	DelayBeats float64 `yaml:"delayBeats,omitempty"` // beats between voice entries
	Transpose  int     `yaml:"transpose,omitempty"`  // semitones added per voice
	Endless    bool    `yaml:"endless,omitempty"`    // loop the tune forever
}

// Build parses the entry's notation and applies its arrangement.
func (e Entry) Build() (music.Music, error) {
	if len(e.Parts) == 0 {
		return nil, fmt.Errorf("songbook: entry %q has no parts", e.Name)
	}
	instrument := music.Piano
	if e.Instrument != "" {
		in, ok := music.InstrumentByName(e.Instrument)
		if !ok {
			return nil, fmt.Errorf("songbook: entry %q: unknown instrument %q", e.Name, e.Instrument)
		}
		instrument = in
	}
	m, err := music.Notes(strings.Join(e.Parts, " "), instrument)
	if err != nil {
		return nil, fmt.Errorf("songbook: entry %q: %w", e.Name, err)
	}
	if a := e.Arrange; a != nil {
		if a.Voices < 0 {
			return nil, fmt.Errorf("songbook: entry %q: negative voice count %d", e.Name, a.Voices)
		}
		if a.DelayBeats < 0 {
			return nil, fmt.Errorf("songbook: entry %q: negative delay %v", e.Name, a.DelayBeats)
		}
		if a.Endless {
			m = music.Forever(m)
		}
		if a.Voices > 1 {
			m = music.Canon(m, a.DelayBeats, music.Transposer(a.Transpose), a.Voices)
		}
	}
	return m, nil
}

// Dir returns the user songbook directory, ~/.config/go-canon/songbook.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-canon", "songbook"), nil
}

// Load returns the built-in entries merged with the user's songbook
// directory, sorted by name. A user entry with a built-in's name replaces
// the built-in. A missing directory is not an error.
func Load() ([]Entry, error) {
	dir, err := Dir()
	if err != nil {
		return Builtins(), nil
	}
	return LoadDir(dir)
}

// LoadDir merges the built-in entries with every .yaml or .yml file found
// in dir, one entry per file.
func LoadDir(dir string) ([]Entry, error) {
	byName := make(map[string]Entry)
	for _, e := range Builtins() {
		byName[e.Name] = e
	}

	files, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		ext := filepath.Ext(f.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		entry, err := LoadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		byName[entry.Name] = entry
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// LoadFile reads a single songbook entry from a YAML file. An entry with no
// name takes the file's base name.
func LoadFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("songbook: %s: %w", path, err)
	}
	if entry.Name == "" {
		entry.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return entry, nil
}

// Save writes the entry to the user songbook directory as <name>.yaml and
// returns the path. The entry must build cleanly first.
func Save(entry Entry) (string, error) {
	if entry.Name == "" {
		return "", fmt.Errorf("songbook: entry needs a name")
	}
	if _, err := entry.Build(); err != nil {
		return "", err
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entry)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, entry.Name+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Find returns the named entry.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
