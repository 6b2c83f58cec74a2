package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/imdisperser/iminstall/internal/wizard"
)

// pathFormats lists the formats that get a path field, in deployment order.
func pathFormats(view wizard.View) []payload.Format {
	var formats []payload.Format
	for _, f := range payload.All() {
		if view.Selected[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

// enterSelectPath loads the current destinations into the inputs and focuses
// the first one.
func (m *Model) enterSelectPath() tea.Cmd {
	view := m.ctrl.View()
	for f, ti := range m.pathInputs {
		ti.SetValue(view.Paths[f])
		ti.CursorEnd()
		ti.Blur()
	}
	m.focusedPath = 0
	return m.focusPath()
}

func (m *Model) focusPath() tea.Cmd {
	formats := pathFormats(m.ctrl.View())
	var cmd tea.Cmd
	for i, f := range formats {
		if i == m.focusedPath {
			cmd = m.pathInputs[f].Focus()
		} else {
			m.pathInputs[f].Blur()
		}
	}
	return tea.Batch(cmd, textinput.Blink)
}

func (m Model) viewSelectPath(view wizard.View) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	b.WriteString(m.styles.Title.Render("Choose install locations"))
	b.WriteString("\n")

	for i, f := range pathFormats(view) {
		label := f.String() + " folder"
		if i == m.focusedPath {
			b.WriteString(m.styles.SelectedOption.Render(label))
		} else {
			b.WriteString(m.styles.Bold.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.pathInputs[f].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFooter(view.Buttons,
		m.keys.NextField, m.keys.Back, nextBinding(m.keys, view.Buttons.NextLabel)))

	return b.String()
}

func (m Model) updateSelectPath(msg tea.Msg) (tea.Model, tea.Cmd) {
	formats := pathFormats(m.ctrl.View())
	if len(formats) == 0 {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Next):
			return m.next()
		case key.Matches(keyMsg, m.keys.Back):
			return m.prev()
		case key.Matches(keyMsg, m.keys.NextField):
			m.focusedPath = (m.focusedPath + 1) % len(formats)
			cmd := m.focusPath()
			return m, cmd
		case key.Matches(keyMsg, m.keys.PrevField):
			m.focusedPath = (m.focusedPath + len(formats) - 1) % len(formats)
			cmd := m.focusPath()
			return m, cmd
		}
	}

	if m.focusedPath >= len(formats) {
		return m, nil
	}

	f := formats[m.focusedPath]
	updated, cmd := m.pathInputs[f].Update(msg)
	*m.pathInputs[f] = updated
	m.ctrl.SetPath(f, strings.TrimSpace(updated.Value()))
	return m, cmd
}
