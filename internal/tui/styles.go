package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	muted     = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}
	danger    = lipgloss.AdaptiveColor{Light: "#E0245E", Dark: "#F25D94"}

	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"})

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle).
			Padding(0, 1)

	toggleStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(muted).
			Padding(0, 1)

	toggleActiveStyle = toggleStyle.
				Background(highlight).
				Foreground(lipgloss.Color("#FFF")).
				Bold(true)

	itemStyle    = lipgloss.NewStyle()
	focusedStyle = lipgloss.NewStyle().Background(subtle).Bold(true)
	liftedStyle  = lipgloss.NewStyle().Background(highlight).Foreground(lipgloss.Color("#FFF")).Bold(true)
	slotStyle    = lipgloss.NewStyle().Foreground(muted).Faint(true)
	ghostStyle   = lipgloss.NewStyle().Background(special).Foreground(lipgloss.Color("#000")).Bold(true)
	removeStyle  = ghostStyle.Background(danger)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(muted)
	lockedStyle  = lipgloss.NewStyle().Faint(true)

	splitStyle       = lipgloss.NewStyle().Foreground(subtle)
	splitActiveStyle = lipgloss.NewStyle().Foreground(highlight)

	logTitleStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(special)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
)
