package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	trendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(1, 2)

	focusedPanelStyle = panelStyle.BorderForeground(lipgloss.Color("#89B4FA"))

	// chat transcript
	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CBA6F7"))
	timestampStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	thinkingStyle       = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#F9E2AF"))
)

// panelFrame is the horizontal and vertical space panelStyle adds around its
// content: border plus padding.
const (
	panelFrameWidth  = 2 + 4
	panelFrameHeight = 2 + 2
)

// renderPanel draws content inside a bordered panel of the given outer size.
func renderPanel(content string, width, height int, focused bool) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	return style.
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		Render(content)
}
