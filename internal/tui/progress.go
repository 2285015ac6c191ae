// Package tui renders the interactive progress bar and the preview report.
// The scheduler knows nothing about rendering; it only calls a progress
// callback, and the CLI forwards those calls here as messages.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressMsg carries a completion update from the scheduler callback.
type ProgressMsg struct {
	Done  int
	Total int
}

// FinishedMsg tells the model the run is over and the program may exit.
type FinishedMsg struct{}

// ProgressModel is a minimal bubbletea model around a progress bar.
type ProgressModel struct {
	bar      progress.Model
	done     int
	total    int
	finished bool
}

// NewProgress returns a model for a run of the given size.
func NewProgress(total int) ProgressModel {
	return ProgressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 24
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case ProgressMsg:
		m.done = msg.Done
		if m.total <= 0 {
			return m, nil
		}
		return m, m.bar.SetPercent(float64(msg.Done) / float64(m.total))

	case FinishedMsg:
		m.finished = true
		return m, tea.Sequence(m.bar.SetPercent(1.0), tea.Quit)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		// The display quits; cancellation of the run itself is handled by
		// the CLI's signal context.
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	label := labelStyle.Render("Generating")
	if m.finished {
		label = okStyle.Render("Done      ")
	}
	return fmt.Sprintf("%s %s %s\n",
		label,
		m.bar.View(),
		countStyle.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
}
