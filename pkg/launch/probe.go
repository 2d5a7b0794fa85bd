package launch

import (
	"errors"
	"fmt"
	"time"
)

// ErrExitedEarly is returned when the child exits inside the probe window.
var ErrExitedEarly = errors.New("application exited during startup")

// Handle is the minimal process view the probe needs.
type Handle interface {
	Exited() bool
}

// Probe watches the handle for the configured window, sampling at the
// configured interval. Returns nil if the child is still alive when the
// window closes, ErrExitedEarly (wrapped) otherwise. This replaces the
// classic fixed-sleep-then-pgrep check: because the probe owns the
// handle, a fast crash cannot be masked by an unrelated process with the
// same name.
func (l *Launcher) Probe(proc Handle) error {
	window := l.ProbeWindow
	if window <= 0 {
		window = DefaultProbeWindow
	}
	interval := l.ProbeInterval
	if interval <= 0 {
		interval = DefaultProbeInterval
	}

	deadline := time.Now().Add(window)
	for {
		if proc.Exited() {
			return fmt.Errorf("%w (within %s)", ErrExitedEarly, window)
		}
		if time.Now().After(deadline) {
			return nil
		}
		time.Sleep(interval)
	}
}

// Hints returns the common root causes printed when the viewer fails the
// liveness probe. The launcher has no visibility into the app's internal
// failure, so these stay generic.
func Hints() []string {
	return []string{
		"tkinter binding missing: run 'solsense doctor' and install python3-tk",
		"rasterio could not load its native GDAL library: reinstall from conda-forge or install system GDAL",
		"resources/ directory missing next to main.py (splash and interface images)",
		"permission errors writing to the working directory",
	}
}
