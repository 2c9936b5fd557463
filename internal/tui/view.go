package tui

import "github.com/charmbracelet/lipgloss"

// View renders the TUI interface
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.renderSplitView()
}

// renderSplitView renders cards on the left 60% and chat on the right 40%.
func (m Model) renderSplitView() string {
	leftWidth, rightWidth := splitWidth(m.width)

	cards := m.renderCardsPanel(leftWidth, m.height)
	chat := m.renderChatPanel(rightWidth, m.height)

	return lipgloss.JoinHorizontal(lipgloss.Top, cards, chat)
}
