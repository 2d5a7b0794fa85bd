package provision

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PipRunner executes a single package installation, allowing for testing.
type PipRunner interface {
	Install(ctx context.Context, name string) (string, error)
}

// RealPip runs installs through the configured Python interpreter, one
// "python -m pip install <name>" call per package.
type RealPip struct {
	Python    string   // interpreter name or path, e.g. "python3"
	ExtraArgs []string // appended to every install call (e.g., --user)
}

// Install runs pip for a single package and returns its combined output.
func (p *RealPip) Install(ctx context.Context, name string) (string, error) {
	args := []string{"-m", "pip", "install", name}
	args = append(args, p.ExtraArgs...)

	cmd := exec.CommandContext(ctx, p.Python, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return stdout.String(), fmt.Errorf("pip install %s failed: %s", name, lastLine(errMsg))
		}
		return stdout.String(), fmt.Errorf("pip install %s failed: %w", name, err)
	}

	return stdout.String(), nil
}

// lastLine returns the final non-empty line of output. pip prints its
// actual error last, after pages of build log.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}

// StepResult records the outcome of one install operation.
type StepResult struct {
	Package Package
	Output  string
	Err     error
}

// Result records a full setup pass.
type Result struct {
	Steps []StepResult
}

// Succeeded reports the aggregate outcome of the pass: whether the final,
// most failure-prone operation completed without error. Earlier failures
// do not flip the signal on their own.
func (r *Result) Succeeded() bool {
	if len(r.Steps) == 0 {
		return false
	}
	return r.Steps[len(r.Steps)-1].Err == nil
}

// Failed returns the steps that reported an error.
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// RemediationHints returns the alternate-channel suggestions printed when
// a setup pass fails. rasterio is almost always the culprit: its wheel
// needs a matching native GDAL.
func RemediationHints() []string {
	return []string{
		"try installing rasterio from conda-forge: conda install -c conda-forge rasterio",
		"on Debian/Ubuntu, install the system GDAL first: sudo apt install gdal-bin libgdal-dev",
		"on macOS: brew install gdal, then re-run this launcher",
		"setup will be retried automatically on the next run",
	}
}

// Installer runs the package manifest in order.
type Installer struct {
	runner   PipRunner
	packages []Package
}

// NewInstaller creates an Installer over the fixed manifest.
func NewInstaller(runner PipRunner) *Installer {
	return &Installer{
		runner:   runner,
		packages: Manifest(),
	}
}

// NewInstallerWithPackages creates an Installer over a custom package list (for testing).
func NewInstallerWithPackages(runner PipRunner, packages []Package) *Installer {
	return &Installer{
		runner:   runner,
		packages: packages,
	}
}

// Run executes every install operation in sequence, never batched and
// never short-circuited: a mid-sequence failure still lets later entries
// try, since the aggregate signal only reads the final one.
func (i *Installer) Run(ctx context.Context, progress ProgressCallback) *Result {
	if progress == nil {
		progress = NoOpProgress
	}

	result := &Result{Steps: make([]StepResult, 0, len(i.packages))}

	for idx, pkg := range i.packages {
		percent := idx * 100 / len(i.packages)
		progress(newEvent(StageInstalling, pkg.Name,
			fmt.Sprintf("Installing %s (%d/%d)", pkg.Name, idx+1, len(i.packages)), percent, false))

		output, err := i.runner.Install(ctx, pkg.Name)
		result.Steps = append(result.Steps, StepResult{Package: pkg, Output: output, Err: err})

		if err != nil {
			progress(newEvent(StageError, pkg.Name, err.Error(), percent, true))
		}
	}

	if result.Succeeded() {
		progress(newEvent(StageComplete, "", "All packages installed", 100, false))
	}

	return result
}
