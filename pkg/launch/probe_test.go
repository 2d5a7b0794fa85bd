package launch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandle simulates a child that exits after a number of polls.
type fakeHandle struct {
	polls     atomic.Int32
	exitAfter int32 // number of polls before Exited flips; <0 = never
}

func (f *fakeHandle) Exited() bool {
	n := f.polls.Add(1)
	return f.exitAfter >= 0 && n > f.exitAfter
}

func TestProbe_AliveThroughWindow(t *testing.T) {
	launcher := &Launcher{
		ProbeWindow:   30 * time.Millisecond,
		ProbeInterval: 5 * time.Millisecond,
	}

	err := launcher.Probe(&fakeHandle{exitAfter: -1})

	assert.NoError(t, err)
}

func TestProbe_EarlyExitReported(t *testing.T) {
	launcher := &Launcher{
		ProbeWindow:   200 * time.Millisecond,
		ProbeInterval: 5 * time.Millisecond,
	}

	start := time.Now()
	err := launcher.Probe(&fakeHandle{exitAfter: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExitedEarly)
	// The failure is reported inside the window, not after it
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestProbe_ImmediateExit(t *testing.T) {
	launcher := &Launcher{
		ProbeWindow:   50 * time.Millisecond,
		ProbeInterval: 5 * time.Millisecond,
	}

	err := launcher.Probe(&fakeHandle{exitAfter: 0})

	assert.ErrorIs(t, err, ErrExitedEarly)
}

func TestProbe_DefaultsApplied(t *testing.T) {
	launcher := &Launcher{}

	// With a handle that exits immediately the defaults must not make the
	// probe wait for the full default window.
	start := time.Now()
	err := launcher.Probe(&fakeHandle{exitAfter: 0})

	require.Error(t, err)
	assert.Less(t, time.Since(start), DefaultProbeWindow)
}

func TestHints_NotEmpty(t *testing.T) {
	hints := Hints()

	require.NotEmpty(t, hints)
	assert.Contains(t, hints[0], "tkinter")
}

func TestLauncher_StartMissingInterpreter(t *testing.T) {
	launcher := &Launcher{
		Interpreter: "definitely-not-a-real-binary-xyz",
		Entry:       "main.py",
	}

	_, err := launcher.Start()

	assert.Error(t, err)
}
