package browse

import "github.com/charmbracelet/lipgloss"

// Colors used by the browse view.
var (
	ColorHeader = lipgloss.Color("39")
	ColorMuted  = lipgloss.Color("245")
	ColorError  = lipgloss.Color("196")
	ColorAccent = lipgloss.Color("229")
	ColorSelect = lipgloss.Color("57")
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

var tableHeaderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(ColorMuted).
	BorderBottom(true).
	Bold(true)

var tableSelectedStyle = lipgloss.NewStyle().
	Foreground(ColorAccent).
	Background(ColorSelect)
