package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/imdisperser/iminstall/internal/wizard"
)

var formatDescriptions = map[payload.Format]string{
	payload.FormatVST3: "Steinberg VST3 bundle, supported by most DAWs.",
	payload.FormatCLAP: "CLever Audio Plugin, for Bitwig, Reaper and other CLAP hosts.",
}

func (m Model) viewSelectFormat(view wizard.View) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	b.WriteString(m.styles.Title.Render("Choose plugin formats"))
	b.WriteString("\n")

	if m.osInfo != nil {
		b.WriteString(m.styles.Subtle.Render("System: " + m.osInfo.String()))
		b.WriteString("\n\n")
	}

	for i, f := range payload.All() {
		check := "[ ]"
		if view.Selected[f] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, f)
		if i == m.formatCursor {
			b.WriteString(m.styles.SelectedOption.Render("▶ " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("      " + formatDescriptions[f]))
		b.WriteString("\n")
	}

	if !view.Buttons.NextEnabled {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Select at least one format to continue."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(view.Buttons,
		m.keys.Up, m.keys.Down, m.keys.Toggle, nextBinding(m.keys, view.Buttons.NextLabel)))

	return b.String()
}

func (m Model) updateSelectFormat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	formats := payload.All()
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.formatCursor > 0 {
			m.formatCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.formatCursor < len(formats)-1 {
			m.formatCursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		m.ctrl.Toggle(formats[m.formatCursor])
	case key.Matches(keyMsg, m.keys.Next):
		return m.next()
	}
	return m, nil
}
