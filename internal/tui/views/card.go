// Package views renders directory cards.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/roster/internal/model"
)

// SummaryMaxLines is the summary clamp.
const SummaryMaxLines = 7

// HeaderLines is the number of body rows above the summary: title, subtitle
// and a blank separator.
const HeaderLines = 3

// Card frame: rounded border plus one cell of horizontal padding.
const (
	frameWidth  = 2 + 2
	frameHeight = 2
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(0, 1)

	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("#89B4FA"))

	cardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))
	cardSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	summaryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	leaderStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	editStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	// BadgeStyle is the hashtag badge. Measuring and drawing must use the
	// same padding so fitted counts hold on screen.
	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#89B4FA"))

	selectedBadgeStyle = BadgeStyle.Background(lipgloss.Color("#F5C2E7")).Bold(true)

	moreStyle = BadgeStyle.
			Foreground(lipgloss.Color("#CDD6F4")).
			Background(lipgloss.Color("#45475A"))

	selectedMoreStyle = moreStyle.Background(lipgloss.Color("#F5C2E7")).Foreground(lipgloss.Color("#1E1E2E")).Bold(true)
)

// Body returns the content box inside a card of the given outer size.
func Body(width, height int) (w, h int) {
	return max(0, width-frameWidth), max(0, height-frameHeight)
}

// LabelArea returns the height shared by the summary and the hashtag rows,
// which is what the label fitter balances against.
func LabelArea(height int) int {
	_, h := Body(0, height)
	return max(0, h-HeaderLines)
}

// Summary wraps text to width and clamps it to SummaryMaxLines, marking a
// cut with an ellipsis.
func Summary(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" || width <= 0 {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= SummaryMaxLines {
		return lines
	}
	lines = lines[:SummaryMaxLines]
	last := []rune(lines[SummaryMaxLines-1])
	for len(last) > 0 && lipgloss.Width(string(last))+1 > width {
		last = last[:len(last)-1]
	}
	lines[SummaryMaxLines-1] = string(last) + "…"
	return lines
}

// CardProps is everything needed to draw one card.
type CardProps struct {
	Card    model.Card
	Width   int
	Height  int
	Visible int // hashtags to draw before the indicator
	// Selected is the tag cursor, or -1. Positions at or past Visible
	// highlight the indicator.
	Selected int
	Active   bool
}

// RenderCard draws a card at exactly Width x Height cells.
func RenderCard(p CardProps) string {
	bodyW, bodyH := Body(p.Width, p.Height)
	if bodyW <= 0 || bodyH <= 0 {
		return ""
	}

	header := []string{
		titleLine(p.Card, bodyW),
		cardSubtitleStyle.Render(truncate(subtitle(p.Card), bodyW)),
		"",
	}

	tags := flow(badges(p.Card.Hashtags, p.Visible, p.Selected), bodyW)
	summary := Summary(p.Card.Summary, bodyW)

	room := bodyH - len(header) - len(tags)
	if room < 0 {
		room = 0
	}
	if len(summary) > room {
		summary = summary[:room]
	}

	lines := make([]string, 0, bodyH)
	lines = append(lines, header...)
	for _, l := range summary {
		lines = append(lines, summaryStyle.Render(l))
	}
	for len(lines)+len(tags) < bodyH {
		lines = append(lines, "")
	}
	lines = append(lines, tags...)
	if len(lines) > bodyH {
		lines = lines[:bodyH]
	}

	style := cardStyle
	if p.Active {
		style = activeCardStyle
	}
	return style.
		Width(p.Width - 2).
		Height(bodyH).
		Render(strings.Join(lines, "\n"))
}

func titleLine(c model.Card, width int) string {
	var marks []string
	if c.Leader {
		marks = append(marks, leaderStyle.Render("★ leader"))
	}
	if c.CanEdit {
		marks = append(marks, editStyle.Render("✎"))
	}
	suffix := strings.Join(marks, " ")
	if suffix != "" {
		suffix = " " + suffix
	}
	title := truncate(c.Title, width-lipgloss.Width(suffix))
	return cardTitleStyle.Render(title) + suffix
}

func subtitle(c model.Card) string {
	if c.Kind == model.KindTeam {
		parts := []string{"team"}
		if c.Subtitle != "" {
			parts = append(parts, c.Subtitle)
		}
		if c.LeaderName != "" {
			parts = append(parts, "lead "+c.LeaderName)
		}
		return strings.Join(parts, " · ")
	}
	return c.Subtitle
}

// badges renders the first visible hashtags plus the overflow indicator.
func badges(tags []model.Hashtag, visible, selected int) []string {
	if visible > len(tags) || visible < 0 {
		visible = len(tags)
	}
	out := make([]string, 0, visible+1)
	for i, t := range tags[:visible] {
		style := BadgeStyle
		if i == selected {
			style = selectedBadgeStyle
		}
		out = append(out, style.Render(t.Display()))
	}
	if n := len(tags) - visible; n > 0 {
		style := moreStyle
		if selected >= visible {
			style = selectedMoreStyle
		}
		out = append(out, style.Render(fmt.Sprintf("+%d more", n)))
	}
	return out
}

// flow lays badges into rows no wider than width, one cell apart.
func flow(items []string, width int) []string {
	var rows []string
	var row strings.Builder
	rowW := 0
	for _, it := range items {
		w := lipgloss.Width(it)
		if rowW > 0 && rowW+1+w > width {
			rows = append(rows, row.String())
			row.Reset()
			rowW = 0
		}
		if rowW > 0 {
			row.WriteString(" ")
			rowW++
		}
		row.WriteString(it)
		rowW += w
	}
	if rowW > 0 {
		rows = append(rows, row.String())
	}
	return rows
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
