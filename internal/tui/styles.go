package tui

import "github.com/charmbracelet/lipgloss"

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Warning    string
	Success    string
	Background string
	Surface    string
}

func DisperserTheme() AppTheme {
	return AppTheme{
		Primary:    "#8bd5ca",
		Secondary:  "#2e5954",
		Accent:     "#c6f4ec",
		Text:       "#e3e6e5",
		Subtle:     "#a3aeab",
		Error:      "#ffb4ab",
		Warning:    "#f5d98b",
		Success:    "#a6e3a1",
		Background: "#121615",
		Surface:    "#1d2321",
	}
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		HighlightButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 2).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Surface)).
			Padding(0, 2),

		DisabledButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(theme.Surface)).
			Faint(true).
			Padding(0, 2),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Error)).
			Padding(1, 3),

		ModalTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)).
			Bold(true).
			MarginBottom(1),
	}
}

type Styles struct {
	Title           lipgloss.Style
	Normal          lipgloss.Style
	Bold            lipgloss.Style
	Subtle          lipgloss.Style
	Warning         lipgloss.Style
	Error           lipgloss.Style
	Success         lipgloss.Style
	HighlightButton lipgloss.Style
	Button          lipgloss.Style
	DisabledButton  lipgloss.Style
	SelectedOption  lipgloss.Style
	Modal           lipgloss.Style
	ModalTitle      lipgloss.Style
}
