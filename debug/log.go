package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	file    *os.File
	enabled bool
)

// DefaultPath returns ~/.config/go-canon/debug.log.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-canon", "debug.log"), nil
}

// Enable starts debug logging to the default path, truncating any previous
// log. Calling it again while enabled is a no-op.
func Enable() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return EnableAt(path)
}

// EnableAt starts debug logging to path.
func EnableAt(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	file = f
	enabled = true
	write("debug", "logging started")
	return nil
}

// Disable stops debug logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	enabled = false
}

// Log writes one line tagged with category. It is a no-op unless Enable has
// been called.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	write(category, format, args...)
}

// write appends one line and flushes so the tail survives a crash.
// Lock held.
func write(category, format string, args ...any) {
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(file, "[%s] %-10s %s\n", ts, category, fmt.Sprintf(format, args...))
	file.Sync()
}
