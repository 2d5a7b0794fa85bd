package main

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/preflight"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/settings"
	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/tui"
)

// runDoctor prints the full prerequisite report.
func runDoctor(fix bool) error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	checker := preflight.NewChecker()
	checker.SetInterpreter(cfg.Interpreter)
	checker.SetEntryPath(cfg.Entry())

	groups := checker.CheckAll()

	fmt.Println(tui.TitleStyle.Render("SolSense prerequisite check"))
	for _, group := range groups {
		fmt.Printf("%s\n", tui.InfoStyle.Render(group.Name))
		for _, check := range group.Checks {
			glyph := tui.StatusGlyph(check.Status == preflight.StatusOK)
			if check.Status == preflight.StatusWarning {
				glyph = tui.WarningStyle.Render("!")
			}
			fmt.Printf("  %s %-12s %s\n", glyph, check.Name, check.Message)
		}
		fmt.Println()
	}

	summary := checker.GetSummary(groups)
	fmt.Printf("%d checks: %d ok, %d missing, %d warnings, %d errors\n",
		summary.Total, summary.OK, summary.Missing, summary.Warnings, summary.Errors)

	if fix {
		if err := offerFixes(groups); err != nil {
			return err
		}
		// Re-check so the exit code reflects the fixed state
		groups = checker.CheckAll()
	}

	if checker.HasIssues(groups) {
		return fmt.Errorf("prerequisites missing")
	}
	return nil
}

// offerFixes walks the failed checks and offers their platform fix commands.
func offerFixes(groups []preflight.CheckGroup) error {
	fixer := preflight.NewFixer()

	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Status == preflight.StatusOK || check.FixCommand == nil {
				continue
			}

			var confirmed bool
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Fix %s?", check.Name)).
						Description(check.FixCommand.Description + "\n\n  " + check.FixCommand.Command).
						Affirmative("Run it").
						Negative("Skip").
						Value(&confirmed),
				),
			).WithTheme(tui.Theme())

			if err := form.Run(); err != nil {
				return fmt.Errorf("confirmation cancelled: %w", err)
			}
			if !confirmed {
				continue
			}

			fmt.Printf("Running: %s\n", check.FixCommand.Command)
			if err := fixer.RunFix(check.FixCommand); err != nil {
				fmt.Printf("%s %v\n", tui.StatusGlyph(false), err)
				continue
			}
			fmt.Printf("%s %s fixed\n", tui.StatusGlyph(true), check.Name)
		}
	}

	return nil
}
