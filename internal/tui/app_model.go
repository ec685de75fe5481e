// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-kv-keeper/internal/adapter"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
)

// appModel is the single Bubble Tea model driving the whole client UI.
// One value-type state machine: Update returns the mutated copy, commands
// talk to the server through the adapter and resolve to messages.
type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	screen  screen
	spinner spinner.Model
	loading bool

	keys []string
	idx  int

	detailKey   string
	detailValue string

	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool

	// confirmKey holds the key awaiting delete confirmation; empty when no
	// confirmation prompt is active.
	confirmKey string

	status     string
	errMsg     string
	quitByUser bool
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter, needLogin bool) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:     ctx,
		server:  server,
		spinner: s,
	}
	if needLogin {
		m.screen = screenLogin
		m.inputs = newLoginInputs()
	} else {
		m.screen = screenList
		m.loading = true
	}
	return m
}

func newLoginInputs() []textinput.Model {
	login := textinput.New()
	login.Placeholder = "login"
	login.CharLimit = 64
	login.Width = 40
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return []textinput.Model{login, password}
}

func newFormInputs(key, value string) []textinput.Model {
	keyInput := textinput.New()
	keyInput.Placeholder = "key"
	keyInput.CharLimit = 256
	keyInput.Width = 40
	keyInput.SetValue(key)
	keyInput.Focus()

	valueInput := textinput.New()
	valueInput.Placeholder = "value"
	valueInput.CharLimit = 4096
	valueInput.Width = 60
	valueInput.SetValue(value)

	return []textinput.Model{keyInput, valueInput}
}

func (m appModel) Init() tea.Cmd {
	if m.screen == screenList {
		return tea.Batch(m.spinner.Tick, m.cmdLoadKeys())
	}
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

func (m appModel) currentKey() (string, bool) {
	if len(m.keys) == 0 || m.idx < 0 || m.idx >= len(m.keys) {
		return "", false
	}
	return m.keys[m.idx], true
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loggedInMsg:
		m.submitting = false
		m.errMsg = ""
		m.status = ""
		m.screen = screenList
		m.loading = true
		m.inputs = nil
		return m, m.cmdLoadKeys()

	case keysLoadedMsg:
		m.loading = false
		m.keys = msg
		if m.idx >= len(m.keys) {
			m.idx = len(m.keys) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case entryLoadedMsg:
		m.loading = false
		m.detailKey = msg.Key
		m.detailValue = msg.Value
		m.screen = screenDetail
		return m, nil

	case savedMsg:
		m.submitting = false
		m.inputs = nil
		m.screen = screenList
		m.status = "Saved " + msg.Key
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadKeys()

	case deletedMsg:
		m.status = "Deleted " + string(msg)
		m.errMsg = ""
		m.screen = screenList
		m.loading = true
		return m, m.cmdLoadKeys()

	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, nil

	case errMsg:
		m.loading = false
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			m.screen = screenLogin
			m.inputs = newLoginInputs()
			m.focus = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.confirmKey != "" {
		switch keyMsg.String() {
		case "y":
			key := m.confirmKey
			m.confirmKey = ""
			return m, m.cmdDelete(key)
		case "n", "esc":
			m.confirmKey = ""
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenForm:
		return m.updateForm(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m appModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.keys)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadKeys()
	case "n":
		m.screen = screenForm
		m.editing = false
		m.inputs = newFormInputs("", "")
		m.focus = 0
		m.status = ""
		return m, textinput.Blink
	case "d":
		if key, ok := m.currentKey(); ok {
			m.confirmKey = key
		}
	case "enter":
		if key, ok := m.currentKey(); ok {
			m.loading = true
			return m, m.cmdLoadEntry(key)
		}
	}
	return m, nil
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenList
		m.status = ""
	case "c":
		if err := clipboard.WriteAll(m.detailValue); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	case "e":
		m.screen = screenForm
		m.editing = true
		m.inputs = newFormInputs(m.detailKey, m.detailValue)
		m.focus = 1
		m.inputs[0].Blur()
		m.inputs[1].Focus()
		return m, textinput.Blink
	case "d":
		m.confirmKey = m.detailKey
	}
	return m, nil
}

func (m appModel) updateLogin(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "tab", "down":
		m.focusInput((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		login := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()
		if login == "" || password == "" {
			m.errMsg = "Login and password are required"
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdLogin(login, password)
	}
	return m.updateInputs(keyMsg)
}

func (m appModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenList
		m.inputs = nil
		m.errMsg = ""
		return m, nil
	case "tab", "down":
		m.focusInput((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		key := strings.TrimSpace(m.inputs[0].Value())
		value := m.inputs[1].Value()
		if key == "" || value == "" {
			m.errMsg = "Key and value are required"
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSave(key, value, m.editing)
	}
	return m.updateInputs(keyMsg)
}

func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *appModel) focusInput(idx int) {
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = idx
}
