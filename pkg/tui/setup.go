package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/provision"
)

// Message types for async progress.
type (
	// progressMsg carries one provisioning event.
	progressMsg provision.ProgressEvent

	// setupDoneMsg indicates the setup pass has finished.
	setupDoneMsg struct{}
)

// setupModel renders the setup pass: a spinner, the package currently
// installing, and a line per completed step.
type setupModel struct {
	title   string
	spinner spinner.Model
	events  <-chan provision.ProgressEvent

	lines   []string
	current string
	done    bool
}

// newSetupModel creates the setup progress model.
func newSetupModel(title string, events <-chan provision.ProgressEvent) setupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return setupModel{
		title:   title,
		spinner: s,
		events:  events,
	}
}

// waitForEvent reads the next progress event from the channel.
func (m setupModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		if !ok {
			return setupDoneMsg{}
		}
		return progressMsg(e)
	}
}

// Init implements tea.Model.
func (m setupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// Update implements tea.Model.
func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Setup is not cancellable from the UI; a half-installed
		// environment would still be retried next run, but Ctrl+C
		// mid-pip leaves pip's own caches in a bad state.
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		e := provision.ProgressEvent(msg)
		switch {
		case e.IsError:
			m.lines = append(m.lines, fmt.Sprintf("%s %s", StatusGlyph(false), e.Message))
		case e.Stage == provision.StageInstalling:
			if m.current != "" {
				m.lines = append(m.lines, fmt.Sprintf("%s %s", StatusGlyph(true), m.current))
			}
			m.current = e.Message
		default:
			if m.current != "" {
				m.lines = append(m.lines, fmt.Sprintf("%s %s", StatusGlyph(true), m.current))
				m.current = ""
			}
			m.lines = append(m.lines, InfoStyle.Render(e.Message))
		}
		return m, m.waitForEvent()

	case setupDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m setupModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !m.done && m.current != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.current))
	}

	return b.String()
}

// RunSetup drives the setup pass with a live progress display. run is
// executed on its own goroutine and must report through the callback;
// RunSetup returns once run has finished and the display has drained.
func RunSetup(title string, run func(provision.ProgressCallback)) error {
	events := make(chan provision.ProgressEvent)

	go func() {
		defer close(events)
		run(func(e provision.ProgressEvent) {
			events <- e
		})
	}()

	p := tea.NewProgram(newSetupModel(title, events))
	_, err := p.Run()

	// Keep draining so the worker goroutine can always finish, even when
	// the display quit early.
	for range events {
	}

	if err != nil {
		return fmt.Errorf("setup display failed: %w", err)
	}
	return nil
}

// PlainProgress returns a ProgressCallback that prints one line per
// event, for non-TTY runs.
func PlainProgress() provision.ProgressCallback {
	return func(e provision.ProgressEvent) {
		if e.IsError {
			fmt.Println(ErrorStyle.Render("error:"), e.Message)
			return
		}
		fmt.Println(e.Message)
	}
}
