package preflight

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	FileExists(path string) bool
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	// Some tools print their version to stderr
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// FileExists checks if a file exists.
func (e *RealExecutor) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// pythonCandidates are the interpreter names tried in order when no
// override is configured. Windows installs commonly only ship "python".
var pythonCandidates = []string{"python3", "python"}

// ResolvePython returns the first usable interpreter name, or "" if none.
func ResolvePython(exec CommandExecutor, override string) string {
	if override != "" {
		return override
	}
	for _, candidate := range pythonCandidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// extractVersion extracts a version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		regex = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
	}
	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CheckPython checks that a Python 3 interpreter is reachable.
func CheckPython(exec CommandExecutor, interpreter string) Check {
	check := Check{
		ID:          IDPython,
		Name:        "Python 3",
		Description: "Runtime for the SolSense viewer",
		Fatal:       true,
		FixCommand:  GetFixCommand(IDPython, runtime.GOOS),
	}

	resolved := ResolvePython(exec, interpreter)
	if resolved == "" {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	output, err := exec.Run(resolved, "--version")
	if err != nil {
		check.Status = StatusError
		check.Message = "found but failed to run: " + strings.TrimSpace(output)
		return check
	}

	version := extractVersion(output, regexp.MustCompile(`Python (\d+\.\d+\.\d+)`))
	if strings.HasPrefix(version, "2.") {
		check.Status = StatusError
		check.Message = "Python 2 found, Python 3 required"
		return check
	}

	check.Status = StatusOK
	if version != "" {
		check.Message = version
	} else {
		check.Message = "installed"
	}
	return check
}

// CheckPip checks that pip is reachable through the interpreter.
func CheckPip(exec CommandExecutor, interpreter string) Check {
	check := Check{
		ID:          IDPip,
		Name:        "pip",
		Description: "Package installer used by the setup pass",
		Fatal:       true,
		FixCommand:  GetFixCommand(IDPip, runtime.GOOS),
	}

	resolved := ResolvePython(exec, interpreter)
	if resolved == "" {
		check.Status = StatusMissing
		check.Message = "no Python interpreter to run pip through"
		return check
	}

	output, err := exec.Run(resolved, "-m", "pip", "--version")
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not available (python -m pip failed)"
		return check
	}

	version := extractVersion(output, regexp.MustCompile(`pip (\d+(?:\.\d+)+)`))
	check.Status = StatusOK
	if version != "" {
		check.Message = version
	} else {
		check.Message = "installed"
	}
	return check
}

// CheckTkinter checks that the tkinter GUI binding imports cleanly.
// A missing binding is the most common reason the viewer dies on startup.
func CheckTkinter(exec CommandExecutor, interpreter string) Check {
	check := Check{
		ID:          IDTkinter,
		Name:        "tkinter",
		Description: "GUI toolkit binding for the viewer window",
		FixCommand:  GetFixCommand(IDTkinter, runtime.GOOS),
	}

	resolved := ResolvePython(exec, interpreter)
	if resolved == "" {
		check.Status = StatusMissing
		check.Message = "no Python interpreter to check with"
		return check
	}

	if _, err := exec.Run(resolved, "-c", "import tkinter"); err != nil {
		check.Status = StatusMissing
		check.Message = "import tkinter failed"
		return check
	}

	check.Status = StatusOK
	check.Message = "importable"
	return check
}

// CheckGDAL checks for the native GDAL tooling that rasterio binds.
// Advisory only: manylinux rasterio wheels bundle their own GDAL, so a
// miss is a warning, not a blocker.
func CheckGDAL(exec CommandExecutor) Check {
	check := Check{
		ID:          IDGDAL,
		Name:        "GDAL",
		Description: "Native geospatial library behind rasterio",
		FixCommand:  GetFixCommand(IDGDAL, runtime.GOOS),
	}

	path, err := exec.LookPath("gdalinfo")
	if err != nil {
		check.Status = StatusWarning
		check.Message = "gdalinfo not found (ok if rasterio wheels install cleanly)"
		return check
	}

	output, err := exec.Run(path, "--version")
	if err != nil {
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	version := extractVersion(output, regexp.MustCompile(`GDAL (\d+\.\d+\.\d+)`))
	check.Status = StatusOK
	if version != "" {
		check.Message = version
	} else {
		check.Message = "installed"
	}
	return check
}

// CheckEntryFile checks that the app entry point exists in the working directory.
func CheckEntryFile(exec CommandExecutor, entryPath string) Check {
	check := Check{
		ID:          IDEntryFile,
		Name:        "Entry file",
		Description: "SolSense entry point (" + EntryFileName + ")",
		Fatal:       true,
	}

	if entryPath == "" {
		entryPath = EntryFileName
	}

	if exec.FileExists(entryPath) {
		check.Status = StatusOK
		check.Message = entryPath
	} else {
		check.Status = StatusMissing
		check.Message = "no " + entryPath + " in working directory"
	}
	return check
}

// CheckResources checks for the app's bundled resources directory.
func CheckResources(exec CommandExecutor) Check {
	check := Check{
		ID:          IDResources,
		Name:        "Resources",
		Description: "Splash and interface images",
	}

	if exec.FileExists(ResourcesDirName) {
		check.Status = StatusOK
		check.Message = ResourcesDirName + "/"
	} else {
		check.Status = StatusWarning
		check.Message = "no " + ResourcesDirName + "/ directory (app may fail loading images)"
	}
	return check
}
