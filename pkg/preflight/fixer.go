package preflight

import "fmt"

// Platform constants.
const (
	PlatformDarwin = "darwin"
	PlatformLinux  = "linux"
)

// fixCommands defines platform-specific fix commands for each prerequisite.
var fixCommands = map[string]map[string]*FixCommand{
	IDPython: {
		PlatformDarwin: {
			Description: "Install via Homebrew",
			Command:     "brew install python@3.12",
			Sudo:        false,
			Platform:    PlatformDarwin,
		},
		PlatformLinux: {
			Description: "Install via apt",
			Command:     "sudo apt install -y python3 python3-pip",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
	IDPip: {
		PlatformDarwin: {
			Description: "Bootstrap pip through the interpreter",
			Command:     "python3 -m ensurepip --upgrade",
			Sudo:        false,
			Platform:    PlatformDarwin,
		},
		PlatformLinux: {
			Description: "Install via apt",
			Command:     "sudo apt install -y python3-pip",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
	IDTkinter: {
		PlatformDarwin: {
			Description: "Install the Tcl/Tk binding via Homebrew",
			Command:     "brew install python-tk@3.12",
			Sudo:        false,
			Platform:    PlatformDarwin,
		},
		PlatformLinux: {
			Description: "Install via apt",
			Command:     "sudo apt install -y python3-tk",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
	IDGDAL: {
		PlatformDarwin: {
			Description: "Install via Homebrew",
			Command:     "brew install gdal",
			Sudo:        false,
			Platform:    PlatformDarwin,
		},
		PlatformLinux: {
			Description: "Install via apt",
			Command:     "sudo apt install -y gdal-bin libgdal-dev",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
}

// GetFixCommand returns the fix command for a prerequisite on the given platform.
func GetFixCommand(checkID, platform string) *FixCommand {
	fixes, ok := fixCommands[checkID]
	if !ok {
		return nil
	}
	fix, ok := fixes[platform]
	if !ok {
		return nil
	}
	return fix
}

// Fixer provides functionality to run fix commands.
type Fixer struct {
	executor CommandExecutor
}

// NewFixer creates a new Fixer.
func NewFixer() *Fixer {
	return &Fixer{executor: &RealExecutor{}}
}

// NewFixerWithExecutor creates a new Fixer with a custom executor.
func NewFixerWithExecutor(exec CommandExecutor) *Fixer {
	return &Fixer{executor: exec}
}

// RunFix executes a fix command through the shell.
func (f *Fixer) RunFix(fix *FixCommand) error {
	if fix == nil {
		return fmt.Errorf("no fix command available")
	}

	output, err := f.executor.Run("sh", "-c", fix.Command)
	if err != nil {
		return fmt.Errorf("fix failed: %w\nOutput: %s", err, output)
	}
	return nil
}
