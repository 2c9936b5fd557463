package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/roster/internal/model"
)

const crumbSep = " › "

var (
	crumbStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	currentCrumbStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))
)

// Breadcrumb renders trail on one line with the last item emphasised. Leading
// items are dropped behind an ellipsis until the trail fits width.
func Breadcrumb(trail []string, width int) string {
	if len(trail) == 0 || width <= 0 {
		return ""
	}

	items, lead := trail, ""
	for len(items) > 1 && lipgloss.Width(lead+strings.Join(items, crumbSep)) > width {
		items = items[1:]
		lead = "…" + crumbSep
	}

	last := items[len(items)-1]
	if len(items) == 1 {
		return crumbStyle.Render(lead) + currentCrumbStyle.Render(truncate(last, width-lipgloss.Width(lead)))
	}

	parts := make([]string, 0, len(items))
	for _, it := range items[:len(items)-1] {
		parts = append(parts, crumbStyle.Render(it))
	}
	parts = append(parts, currentCrumbStyle.Render(last))
	return crumbStyle.Render(lead) + strings.Join(parts, crumbStyle.Render(crumbSep))
}

// HiddenTags lays out the hashtags behind an overflow indicator as badge rows.
// selected indexes tags, or -1.
func HiddenTags(tags []model.Hashtag, selected, width int) []string {
	items := make([]string, len(tags))
	for i, t := range tags {
		style := BadgeStyle
		if i == selected {
			style = selectedBadgeStyle
		}
		items[i] = style.Render(t.Display())
	}
	return flow(items, width)
}
