// Package tui renders the installation wizard in the terminal and turns key
// presses into wizard events.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imdisperser/iminstall/internal/osinfo"
	"github.com/imdisperser/iminstall/internal/payload"
	"github.com/imdisperser/iminstall/internal/wizard"
)

type Options struct {
	Version    string
	Controller *wizard.Controller
	// Alerts must be the sink the Controller was built with.
	Alerts *AlertQueue
	// Installed reports whether a format already exists below a root. Optional.
	Installed func(f payload.Format, root string) bool
	OSInfo    *osinfo.OSInfo
}

type Model struct {
	version   string
	ctrl      *wizard.Controller
	alerts    *AlertQueue
	installed func(f payload.Format, root string) bool
	osInfo    *osinfo.OSInfo

	styles Styles
	keys   keyMap
	help   help.Model

	formatCursor int
	pathInputs   map[payload.Format]*textinput.Model
	focusedPath  int

	width    int
	height   int
	finished bool
}

func NewModel(opts Options) Model {
	installed := opts.Installed
	if installed == nil {
		installed = func(payload.Format, string) bool { return false }
	}

	m := Model{
		version:    opts.Version,
		ctrl:       opts.Controller,
		alerts:     opts.Alerts,
		installed:  installed,
		osInfo:     opts.OSInfo,
		styles:     NewStyles(DisperserTheme()),
		keys:       defaultKeyMap(),
		help:       help.New(),
		pathInputs: make(map[payload.Format]*textinput.Model),
	}

	for _, f := range payload.All() {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = "Destination folder for " + f.String()
		ti.CharLimit = 4096
		ti.Width = 60
		m.pathInputs[f] = &ti
	}
	return m
}

// Finished reports whether the user pressed Finish on the last page.
func (m Model) Finished() bool {
	return m.finished
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.alerts.Len() > 0 {
			return m.updateModal(msg)
		}
	}

	switch m.ctrl.View().Page {
	case wizard.PageSelectFormat:
		return m.updateSelectFormat(msg)
	case wizard.PageSelectPath:
		return m.updateSelectPath(msg)
	case wizard.PageConfirm:
		return m.updateConfirm(msg)
	case wizard.PageDone:
		return m.updateDone(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if alert, ok := m.alerts.Current(); ok {
		return m.viewModal(alert)
	}

	view := m.ctrl.View()
	switch view.Page {
	case wizard.PageSelectFormat:
		return m.viewSelectFormat(view)
	case wizard.PageSelectPath:
		return m.viewSelectPath(view)
	case wizard.PageConfirm:
		return m.viewConfirm(view)
	case wizard.PageInstalling:
		return m.viewInstalling(view)
	case wizard.PageDone:
		return m.viewDone(view)
	}
	return ""
}

// next presses the forward button and prepares whatever page it lands on.
func (m Model) next() (tea.Model, tea.Cmd) {
	if m.ctrl.Next() {
		m.finished = true
		return m, tea.Quit
	}
	if m.ctrl.View().Page == wizard.PageSelectPath {
		cmd := m.enterSelectPath()
		return m, cmd
	}
	return m, nil
}

func (m Model) prev() (tea.Model, tea.Cmd) {
	if !m.ctrl.View().Buttons.ShowPrev {
		return m, nil
	}
	m.ctrl.Prev()
	if m.ctrl.View().Page == wizard.PageSelectPath {
		cmd := m.enterSelectPath()
		return m, cmd
	}
	return m, nil
}

func (m Model) renderButtons(buttons wizard.ButtonState) string {
	var parts []string
	if buttons.ShowPrev {
		parts = append(parts, m.styles.Button.Render(wizard.LabelBack))
	}
	if buttons.ShowNext {
		if buttons.NextEnabled {
			parts = append(parts, m.styles.HighlightButton.Render(buttons.NextLabel))
		} else {
			parts = append(parts, m.styles.DisabledButton.Render(buttons.NextLabel))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter(buttons wizard.ButtonState, bindings ...key.Binding) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderButtons(buttons))
	b.WriteString("\n\n")
	bindings = append(bindings, m.keys.Quit)
	b.WriteString(m.help.ShortHelpView(bindings))

	return b.String()
}

func nextBinding(k keyMap, label string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Next.Keys()...),
		key.WithHelp(k.Next.Help().Key, strings.ToLower(label)),
	)
}
