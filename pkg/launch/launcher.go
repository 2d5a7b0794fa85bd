// Package launch starts the SolSense viewer as a detached process and
// supervises its first seconds of life. The launcher keeps the child's
// process handle, so liveness is read from the handle itself rather than
// a by-name process table scan.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// Defaults for the supervision window. The window is a heuristic: a child
// that outlives it is reported as started, a slow starter that fails
// later is not caught. Both knobs are settings.
const (
	DefaultProbeWindow   = 3 * time.Second
	DefaultProbeInterval = 250 * time.Millisecond
)

// Launcher configures how the viewer process is started.
type Launcher struct {
	Interpreter   string        // Python interpreter name or path
	Entry         string        // entry file, e.g. "main.py"
	WorkDir       string        // working directory; "" = inherit
	LogPath       string        // child stdout/stderr destination; "" = null device
	ProbeWindow   time.Duration // how long to watch the child after start
	ProbeInterval time.Duration // poll interval inside the window
}

// Process is a handle to a started child.
type Process struct {
	pid string

	mu   sync.Mutex
	err  error
	done chan struct{}
}

// PID returns the child's process ID as a string for display.
func (p *Process) PID() string {
	return p.pid
}

// Exited reports whether the child has been observed to exit.
func (p *Process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// ExitErr returns the child's exit error once it has exited.
func (p *Process) ExitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Start spawns the viewer detached from the launcher: its own session
// (or hidden window on Windows), stdio redirected away from the terminal.
// The launcher never waits for the child beyond the probe window.
func (l *Launcher) Start() (*Process, error) {
	entry := l.Entry
	if entry == "" {
		entry = "main.py"
	}

	sink, err := l.openSink()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(l.Interpreter, entry)
	cmd.Dir = l.WorkDir
	cmd.Stdout = sink
	cmd.Stderr = sink
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		sink.Close()
		return nil, fmt.Errorf("failed to start %s %s: %w", l.Interpreter, entry, err)
	}
	// The child owns the sink now
	sink.Close()

	proc := &Process{
		pid:  fmt.Sprintf("%d", cmd.Process.Pid),
		done: make(chan struct{}),
	}

	// Reap in the background so an early exit is observable by the probe
	// and the child never lingers as a zombie while the launcher runs.
	go func() {
		err := cmd.Wait()
		proc.mu.Lock()
		proc.err = err
		proc.mu.Unlock()
		close(proc.done)
	}()

	return proc, nil
}

// openSink opens the redirect target for the child's stdout/stderr.
func (l *Launcher) openSink() (*os.File, error) {
	if l.LogPath == "" {
		return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	}
	f, err := os.OpenFile(l.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open app log %s: %w", l.LogPath, err)
	}
	return f, nil
}
