package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/wizard"
)

func (m Model) viewConfirm(view wizard.View) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	b.WriteString(m.styles.Title.Render("Ready to install"))
	b.WriteString("\n")

	b.WriteString(m.styles.Normal.Render("The following files will be written:"))
	b.WriteString("\n\n")

	for _, f := range pathFormats(view) {
		root := view.Paths[f]
		b.WriteString(m.styles.Bold.Render(fmt.Sprintf("  %-5s", f)))
		b.WriteString(m.styles.Normal.Render(filepath.Join(root, f.RelPath())))
		if m.installed(f, root) {
			b.WriteString(m.styles.Warning.Render("  (replaces existing install)"))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(view.Buttons,
		m.keys.Back, nextBinding(m.keys, view.Buttons.NextLabel)))

	return b.String()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Next):
			return m.next()
		case key.Matches(keyMsg, m.keys.Back):
			return m.prev()
		}
	}
	return m, nil
}
