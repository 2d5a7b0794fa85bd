package provision

import "time"

// Stage represents a phase of the provisioning pass.
type Stage string

const (
	StageInstalling Stage = "installing"
	StageMarking    Stage = "marking"
	StageComplete   Stage = "complete"
	StageSkipped    Stage = "skipped"
	StageError      Stage = "error"
)

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageInstalling:
		return "Installing"
	case StageMarking:
		return "Recording setup"
	case StageComplete:
		return "Complete"
	case StageSkipped:
		return "Skipped"
	case StageError:
		return "Error"
	default:
		return string(s)
	}
}

// ProgressEvent represents a provisioning progress update.
type ProgressEvent struct {
	Stage     Stage     // Current stage
	Package   string    // Package being installed, if any
	Message   string    // Human-readable message
	Detail    string    // Additional detail (e.g., trimmed pip output)
	Percent   int       // 0-100, -1 for indeterminate
	IsError   bool      // True if this is an error update
	Timestamp time.Time // When this event occurred
}

// ProgressCallback is called with progress updates during a setup pass.
type ProgressCallback func(ProgressEvent)

// NoOpProgress is a progress callback that does nothing.
func NoOpProgress(_ ProgressEvent) {}

// newEvent creates a progress event stamped with the current time.
func newEvent(stage Stage, pkg, message string, percent int, isError bool) ProgressEvent {
	return ProgressEvent{
		Stage:     stage,
		Package:   pkg,
		Message:   message,
		Percent:   percent,
		IsError:   isError,
		Timestamp: time.Now(),
	}
}

// ProgressTracker collects progress events for later review.
type ProgressTracker struct {
	events []ProgressEvent
}

// NewProgressTracker creates a new progress tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{events: make([]ProgressEvent, 0)}
}

// Callback returns a ProgressCallback that records events.
func (t *ProgressTracker) Callback() ProgressCallback {
	return func(e ProgressEvent) {
		t.events = append(t.events, e)
	}
}

// Events returns all recorded events.
func (t *ProgressTracker) Events() []ProgressEvent {
	return t.events
}

// HasErrors returns true if any error events were recorded.
func (t *ProgressTracker) HasErrors() bool {
	for _, e := range t.events {
		if e.IsError {
			return true
		}
	}
	return false
}
