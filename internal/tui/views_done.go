package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/wizard"
)

func (m Model) viewInstalling(view wizard.View) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Installing..."))
	b.WriteString("\n")
	b.WriteString(m.renderButtons(view.Buttons))

	return b.String()
}

func (m Model) viewDone(view wizard.View) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	b.WriteString(m.styles.Title.Render("Installation complete"))
	b.WriteString("\n")

	for _, result := range view.Results {
		b.WriteString(m.styles.Success.Render("✓ " + result.Format.String()))
		b.WriteString("  ")
		b.WriteString(m.styles.Normal.Render(result.Path))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Rescan plugins in your DAW to pick up IM Disperser."))
	b.WriteString("\n")

	b.WriteString(m.renderFooter(view.Buttons, nextBinding(m.keys, view.Buttons.NextLabel)))

	return b.String()
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Next) {
		return m.next()
	}
	return m, nil
}
