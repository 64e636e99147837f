package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-canon/config"
)

// captureStderr runs fn with os.Stderr redirected to a pipe.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()
	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestInitConfigReportsBrokenConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "go-canon")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644))

	out := captureStderr(t, initConfig)

	assert.Contains(t, out, "using defaults")
	assert.Equal(t, config.DefaultConfig(), globalConfig)
}

func TestInitConfigReportsDebugLogFailure(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// A file where the config directory belongs breaks the debug log too.
	require.NoError(t, os.WriteFile(filepath.Join(home, ".config"), []byte("x"), 0644))

	debugFlag = true
	defer func() { debugFlag = false }()

	out := captureStderr(t, initConfig)

	assert.Contains(t, out, "debug log")
	assert.Equal(t, config.DefaultConfig(), globalConfig)
}
