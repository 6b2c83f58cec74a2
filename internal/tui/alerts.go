package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/imdisperser/iminstall/internal/notify"
)

// AlertQueue is the sink the wizard reports to while the TUI owns the
// terminal. Queued alerts are shown as a modal over the current page and hold
// all other input until dismissed.
type AlertQueue struct {
	pending []notify.Alert
}

func (q *AlertQueue) Notify(title, message string) {
	q.pending = append(q.pending, notify.Alert{Title: title, Message: message})
}

func (q *AlertQueue) Current() (notify.Alert, bool) {
	if len(q.pending) == 0 {
		return notify.Alert{}, false
	}
	return q.pending[0], true
}

func (q *AlertQueue) Dismiss() {
	if len(q.pending) > 0 {
		q.pending = q.pending[1:]
	}
}

func (q *AlertQueue) Len() int {
	return len(q.pending)
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.alerts.Dismiss()
	}
	return m, nil
}

func (m Model) viewModal(alert notify.Alert) string {
	var b strings.Builder

	b.WriteString(m.styles.ModalTitle.Render(alert.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render(alert.Message))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HighlightButton.Render("OK"))

	box := m.styles.Modal.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
