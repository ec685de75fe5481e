package tui

import (
	"fmt"
	"strings"
)

func (m appModel) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " signing in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return renderPage("kv-keeper · sign in", b.String(), "enter: submit  tab: next field")
}

func (m appModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " loading...\n")
	} else if len(m.keys) == 0 {
		b.WriteString("No keys stored yet\n")
	} else {
		for i, key := range m.keys {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, fitText(key, 60)))
		}
	}

	if m.confirmKey != "" {
		b.WriteString("\n" + errorStyle.Render("Delete "+fitText(m.confirmKey, 40)+"? y/n") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("kv-keeper · keys", b.String(),
		"enter: open  n: new  d: delete  r: reload  q: quit")
}

func (m appModel) viewDetail() string {
	var b strings.Builder
	b.WriteString(keyStyle.Render(m.detailKey))
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render(m.detailValue))
	b.WriteString("\n")
	if m.confirmKey != "" {
		b.WriteString("\n" + errorStyle.Render("Delete "+fitText(m.confirmKey, 40)+"? y/n") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return renderPage("kv-keeper · "+fitText(m.detailKey, 40), b.String(),
		"c: copy  e: edit  d: delete  esc: back")
}

func (m appModel) viewForm() string {
	title := "kv-keeper · new key"
	if m.editing {
		title = "kv-keeper · edit " + fitText(m.detailKey, 40)
	}

	var b strings.Builder
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " saving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return renderPage(title, b.String(), "enter: save  tab: next field  esc: cancel")
}
