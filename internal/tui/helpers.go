package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens s to at most max display cells.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		for len(runes) > 0 && lipgloss.Width(string(runes)) > max {
			runes = runes[:len(runes)-1]
		}
		return string(runes)
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// 60/40
func splitWidth(total int) (left, right int) {
	left = int(float64(total) * 0.6)
	return left, total - left
}

func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
