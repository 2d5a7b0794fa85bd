package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Version, s.Version)
	assert.Empty(t, s.Interpreter)
	assert.Equal(t, "main.py", s.Entry())
	assert.Zero(t, s.Probe.Window())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := New()
	original.Interpreter = "/usr/local/bin/python3.12"
	original.EntryFile = "app.py"
	original.PipArgs = []string{"--user"}
	original.AppLog = "/tmp/solsense-app.log"
	original.Probe.WindowMS = 5000
	original.Probe.IntervalMS = 100

	require.NoError(t, original.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, original.Interpreter, loaded.Interpreter)
	assert.Equal(t, "app.py", loaded.Entry())
	assert.Equal(t, original.PipArgs, loaded.PipArgs)
	assert.Equal(t, original.AppLog, loaded.AppLog)
	assert.Equal(t, 5*time.Second, loaded.Probe.Window())
	assert.Equal(t, 100*time.Millisecond, loaded.Probe.Interval())
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interpreter: [not: valid"), 0600))

	_, err := LoadFrom(path)

	assert.Error(t, err)
}

func TestConfigDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := ConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", ConfigDirName), dir)
}

func TestEntry_Default(t *testing.T) {
	s := New()
	assert.Equal(t, "main.py", s.Entry())

	s.EntryFile = "viewer.py"
	assert.Equal(t, "viewer.py", s.Entry())
}
