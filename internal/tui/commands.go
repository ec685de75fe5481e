package tui

import (
	"github.com/MKhiriev/go-kv-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLogin(login, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.Login(ctx, models.Credentials{Login: login, Password: password})
		if err != nil {
			return errMsg{err: err}
		}
		return loggedInMsg{}
	}
}

func (m appModel) cmdLoadKeys() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		keys, err := server.Keys(ctx, "")
		if err != nil {
			return errMsg{err: err}
		}
		return keysLoadedMsg(keys)
	}
}

func (m appModel) cmdLoadEntry(key string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		value, err := server.Get(ctx, key)
		if err != nil {
			return errMsg{err: err}
		}
		return entryLoadedMsg(models.Entry{Key: key, Value: value})
	}
}

func (m appModel) cmdSave(key, value string, existing bool) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		var entry models.Entry
		var err error
		if existing {
			entry, err = server.Update(ctx, key, value)
		} else {
			entry, err = server.Upsert(ctx, key, value)
		}
		if err != nil {
			return errMsg{err: err}
		}
		return savedMsg(entry)
	}
}

func (m appModel) cmdDelete(key string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		if err := server.Remove(ctx, key); err != nil {
			return errMsg{err: err}
		}
		return deletedMsg(key)
	}
}
