package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/launch"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/logging"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/preflight"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/provision"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/settings"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/tui"
)

// runLaunch runs the full gate-then-launch flow.
func runLaunch(plain bool) error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	log := logging.L().With(slog.String("component", "launch"))

	// Step 1: preflight. Missing runtime, missing pip, or a missing entry
	// file are fatal: no setup, no launch attempt.
	executor := &preflight.RealExecutor{}
	checker := preflight.NewCheckerWithExecutor(executor)
	checker.SetInterpreter(cfg.Interpreter)
	checker.SetEntryPath(cfg.Entry())

	groups := checker.CheckAll()
	if fatal := preflight.FatalChecks(groups); len(fatal) > 0 {
		fmt.Println(tui.ErrorStyle.Render("Cannot launch SolSense:"))
		for _, check := range fatal {
			fmt.Printf("  %s %s: %s\n", tui.StatusGlyph(false), check.Name, check.Message)
			if check.FixCommand != nil {
				fmt.Printf("    %s\n", tui.SubtitleStyle.Render(check.FixCommand.Command))
			}
		}
		fmt.Println("\nRun 'solsense doctor' for the full report.")
		return fmt.Errorf("missing prerequisites")
	}

	python := preflight.ResolvePython(executor, cfg.Interpreter)

	// Step 2+3: gate, then the setup pass if the marker is absent.
	store := provision.NewFileStore()
	user := provision.CurrentUser()
	installer := provision.NewInstaller(&provision.RealPip{Python: python, ExtraArgs: cfg.PipArgs})
	gate := provision.NewGate(store, installer)

	result, err := ensureProvisioned(context.Background(), gate, store, user, plain)
	if err != nil {
		return err
	}
	if result != nil && !result.Succeeded() {
		// Recoverable: marker withheld, the next run retries. The launch
		// still goes ahead; the app may work from a partial install.
		fmt.Println(tui.WarningStyle.Render("Package setup did not complete cleanly:"))
		for _, step := range result.Failed() {
			fmt.Printf("  %s %s\n", tui.StatusGlyph(false), step.Err)
		}
		for _, hint := range provision.RemediationHints() {
			fmt.Printf("  - %s\n", hint)
		}
		log.Warn("setup pass failed", slog.Int("failed_steps", len(result.Failed())))
	}

	// Step 4: start the viewer detached.
	launcher := &launch.Launcher{
		Interpreter:   python,
		Entry:         cfg.Entry(),
		LogPath:       cfg.AppLog,
		ProbeWindow:   cfg.Probe.Window(),
		ProbeInterval: cfg.Probe.Interval(),
	}

	fmt.Println(tui.InfoStyle.Render("Starting SolSense..."))
	proc, err := launcher.Start()
	if err != nil {
		return err
	}
	log.Info("viewer started", slog.String("pid", proc.PID()))

	// Step 5: liveness probe.
	if err := launcher.Probe(proc); err != nil {
		fmt.Println(tui.ErrorStyle.Render("SolSense did not stay running."))
		fmt.Println("Common causes:")
		for _, hint := range launch.Hints() {
			fmt.Printf("  - %s\n", hint)
		}
		if cfg.AppLog != "" {
			fmt.Printf("\nThe app's output was captured in %s\n", cfg.AppLog)
		}
		log.Error("liveness probe failed", slog.String("pid", proc.PID()))
		return err
	}

	fmt.Printf("%s SolSense is running (pid %s)\n", tui.StatusGlyph(true), proc.PID())
	return nil
}

// ensureProvisioned runs the gate with the appropriate progress display.
func ensureProvisioned(ctx context.Context, gate *provision.Gate, store provision.Store, user string, plain bool) (*provision.Result, error) {
	// The interactive display is only worth starting when there is work
	// to do and somewhere to draw it.
	interactive := !plain && isatty.IsTerminal(os.Stdout.Fd()) && !store.IsProvisioned(user)

	if !interactive {
		return gate.Ensure(ctx, user, tui.PlainProgress())
	}

	var result *provision.Result
	var gateErr error
	err := tui.RunSetup("Setting up the SolSense environment", func(cb provision.ProgressCallback) {
		result, gateErr = gate.Ensure(ctx, user, cb)
	})
	if err != nil {
		// Display failure, not setup failure: fall back to reporting the
		// pass outcome below.
		fmt.Println(tui.WarningStyle.Render(err.Error()))
	}
	return result, gateErr
}
