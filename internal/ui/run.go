package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
