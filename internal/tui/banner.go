package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) renderBanner() string {
	logo := `
██╗███╗   ███╗    ██████╗ ██╗███████╗██████╗ ███████╗██████╗ ███████╗███████╗██████╗ 
██║████╗ ████║    ██╔══██╗██║██╔════╝██╔══██╗██╔════╝██╔══██╗██╔════╝██╔════╝██╔══██╗
██║██╔████╔██║    ██║  ██║██║███████╗██████╔╝█████╗  ██████╔╝███████╗█████╗  ██████╔╝
██║██║╚██╔╝██║    ██║  ██║██║╚════██║██╔═══╝ ██╔══╝  ██╔══██╗╚════██║██╔══╝  ██╔══██╗
██║██║ ╚═╝ ██║    ██████╔╝██║███████║██║     ███████╗██║  ██║███████║███████╗██║  ██║
╚═╝╚═╝     ╚═╝    ╚═════╝ ╚═╝╚══════╝╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝`

	theme := DisperserTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		Align(lipgloss.Center).
		MarginBottom(1)

	// the wide logo wraps badly on narrow terminals
	if m.width > 0 && m.width < lipgloss.Width(logo) {
		return style.Render("\nIM DISPERSER")
	}
	return style.Render(logo)
}
