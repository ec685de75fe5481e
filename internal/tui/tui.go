// Package tui implements the interactive terminal client built on Bubble Tea.
// A single state machine renders the login form, the key list, the value
// detail view and the create/edit form, and talks to the server through
// [adapter.ServerAdapter].
package tui

import (
	"context"

	"github.com/MKhiriev/go-kv-keeper/internal/adapter"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run starts the terminal UI and blocks until the user quits or the program
// fails. When needLogin is true the session opens on the login screen,
// otherwise it goes straight to the key list.
func (t *TUI) Run(ctx context.Context, needLogin bool) error {
	root := newAppModel(ctx, t.server, needLogin)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
