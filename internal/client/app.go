package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kv-keeper/internal/adapter"
	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/tui"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// App wires the server adapter and the terminal UI together.
type App struct {
	server adapter.ServerAdapter
	ui     *tui.TUI
	auth   config.ClientAuth
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, auth config.ClientAuth, log *logger.Logger) (*App, error) {
	if server == nil || ui == nil {
		return nil, errors.New("server adapter and ui are required")
	}
	return &App{server: server, ui: ui, auth: auth, logger: log}, nil
}

// Run starts the client. When credentials are present in the configuration
// the app logs in silently and the UI opens straight on the key list;
// otherwise the UI opens on the login form. An unauthorized response at any
// point sends the user back to the login form, so a failed auto-login is
// not fatal.
func (a *App) Run() error {
	ctx := context.Background()

	needLogin := true
	if a.auth.Login != "" && a.auth.Password != "" {
		credentials := models.Credentials{Login: a.auth.Login, Password: a.auth.Password}
		if err := a.server.Login(ctx, credentials); err != nil {
			a.logger.Warn().Err(err).Msg("automatic login failed")
		} else {
			needLogin = false
		}
	} else {
		// Without configured credentials try the server once. A server
		// running with auth disabled accepts anonymous requests, so the
		// login screen can be skipped entirely.
		if _, err := a.server.Keys(ctx, ""); err == nil {
			needLogin = false
		}
	}

	if err := a.ui.Run(ctx, needLogin); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("terminal ui error: %w", err)
	}

	return nil
}
