package main

import (
	"context"
	"fmt"

	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/launch"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/preflight"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/provision"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/settings"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/tui"
)

// runSetup runs the package setup pass without launching the viewer.
func runSetup(force, plain bool) error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	executor := &preflight.RealExecutor{}
	python := preflight.ResolvePython(executor, cfg.Interpreter)
	if python == "" {
		return fmt.Errorf("no Python 3 interpreter found; install it and retry")
	}
	if pip := preflight.CheckPip(executor, cfg.Interpreter); pip.Status != preflight.StatusOK {
		return fmt.Errorf("pip is not available: %s", pip.Message)
	}

	store := provision.NewFileStore()
	user := provision.CurrentUser()

	if force {
		if err := store.Clear(user); err != nil {
			return err
		}
	}

	installer := provision.NewInstaller(&provision.RealPip{Python: python, ExtraArgs: cfg.PipArgs})
	gate := provision.NewGate(store, installer)

	result, err := ensureProvisioned(context.Background(), gate, store, user, plain)
	if err != nil {
		return err
	}

	if result == nil {
		fmt.Printf("%s Already provisioned (marker: %s)\n", tui.StatusGlyph(true), store.Path(user))
		fmt.Println(tui.SubtitleStyle.Render("Use --force to reinstall."))
		return nil
	}

	if !result.Succeeded() {
		fmt.Println(tui.ErrorStyle.Render("Setup failed; the install will be retried next run."))
		for _, step := range result.Failed() {
			fmt.Printf("  %s %s\n", tui.StatusGlyph(false), step.Err)
		}
		for _, hint := range provision.RemediationHints() {
			fmt.Printf("  - %s\n", hint)
		}
		return fmt.Errorf("setup failed")
	}

	fmt.Printf("%s Environment provisioned (marker: %s)\n", tui.StatusGlyph(true), store.Path(user))
	return nil
}

// runStatus reports the gate state and the settings in effect.
func runStatus() error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store := provision.NewFileStore()
	user := provision.CurrentUser()

	fmt.Println(tui.TitleStyle.Render("SolSense launcher status"))
	fmt.Printf("  User:        %s\n", user)
	fmt.Printf("  Marker:      %s\n", store.Path(user))
	if store.IsProvisioned(user) {
		fmt.Printf("  Provisioned: %s\n", tui.SuccessStyle.Render("yes"))
	} else {
		fmt.Printf("  Provisioned: %s\n", tui.WarningStyle.Render("no (setup runs on next launch)"))
	}

	python := preflight.ResolvePython(&preflight.RealExecutor{}, cfg.Interpreter)
	if python == "" {
		python = tui.ErrorStyle.Render("not found")
	}
	fmt.Printf("  Interpreter: %s\n", python)
	fmt.Printf("  Entry file:  %s\n", cfg.Entry())

	window := cfg.Probe.Window()
	if window <= 0 {
		window = launch.DefaultProbeWindow
	}
	fmt.Printf("  Probe:       %s window\n", window)

	if path, err := settings.ConfigPath(); err == nil {
		fmt.Printf("  Config:      %s\n", path)
	}

	return nil
}

// runReset removes the install marker.
func runReset() error {
	store := provision.NewFileStore()
	user := provision.CurrentUser()

	if !store.IsProvisioned(user) {
		fmt.Println("No install marker present; nothing to reset.")
		return nil
	}

	if err := store.Clear(user); err != nil {
		return err
	}

	fmt.Printf("%s Removed %s; the next launch will reinstall packages.\n",
		tui.StatusGlyph(true), store.Path(user))
	return nil
}

// runPackages lists the manifest in install order.
func runPackages() error {
	sentinel := provision.Sentinel()

	fmt.Println(tui.TitleStyle.Render("SolSense package manifest"))
	for i, pkg := range provision.Manifest() {
		line := fmt.Sprintf("  %d. %-12s %s", i+1, pkg.Name, tui.SubtitleStyle.Render(pkg.Description))
		fmt.Println(line)
	}
	fmt.Printf("\nInstalled one at a time, in order. The %s install decides the\naggregate outcome: if it fails, setup is retried on the next run.\n", sentinel.Name)

	return nil
}
