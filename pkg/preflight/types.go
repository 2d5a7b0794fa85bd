// Package preflight provides runtime prerequisite checking for the
// SolSense launcher: the Python interpreter, pip, the tkinter binding,
// the native GDAL stack, and the app entry file.
package preflight

// CheckStatus represents the status of a prerequisite check.
type CheckStatus int

const (
	// StatusOK indicates the prerequisite is present and working.
	StatusOK CheckStatus = iota
	// StatusMissing indicates the prerequisite is not installed.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates the prerequisite has issues but may work.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single prerequisite check result.
type Check struct {
	ID          string      // Unique identifier, e.g., "python", "pip"
	Name        string      // Display name
	Description string      // What this prerequisite is for
	Status      CheckStatus // Current status
	Message     string      // Status message (version info, error, etc.)
	Fatal       bool        // Whether a miss blocks the launch entirely
	FixCommand  *FixCommand // How to fix if missing (nil if not fixable)
}

// FixCommand describes how to fix a missing prerequisite.
type FixCommand struct {
	Description string // Human-readable description of what the fix does
	Command     string // Shell command to run
	Sudo        bool   // Whether the command requires sudo
	Platform    string // Target platform: "darwin", "linux", or "" for both
}

// CheckGroup represents a group of related prerequisite checks.
type CheckGroup struct {
	ID          string  // Unique identifier, e.g., "runtime", "geospatial"
	Name        string  // Display name
	Description string  // What this group is for
	Checks      []Check // Individual checks in this group
}

// GroupID constants for check groups.
const (
	GroupRuntime    = "runtime"
	GroupGeospatial = "geospatial"
	GroupApp        = "app"
)

// CheckID constants for individual checks.
const (
	IDPython    = "python"
	IDPip       = "pip"
	IDTkinter   = "tkinter"
	IDGDAL      = "gdal"
	IDEntryFile = "entry-file"
	IDResources = "resources"
)

// EntryFileName is the fixed, well-known name of the app entry point,
// expected in the launcher's working directory.
const EntryFileName = "main.py"

// ResourcesDirName is the app's bundled assets directory (splash image,
// interface background). Missing assets do not block the launch but are
// a common reason the app dies right after starting.
const ResourcesDirName = "resources"
