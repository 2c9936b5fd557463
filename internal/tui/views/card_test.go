package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/roster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(names ...string) []model.Hashtag {
	out := make([]model.Hashtag, len(names))
	for i, n := range names {
		out[i] = model.Hashtag{ID: i + 1, TagName: n}
	}
	return out
}

func TestSummaryClampsToSevenLines(t *testing.T) {
	text := strings.Repeat("word ", 200)
	lines := Summary(text, 20)
	require.Len(t, lines, SummaryMaxLines)
	assert.True(t, strings.HasSuffix(lines[SummaryMaxLines-1], "…"))
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 20)
	}

	assert.Len(t, Summary("short text", 20), 1)
	assert.Nil(t, Summary("   ", 20))
}

func TestRenderCardExactSize(t *testing.T) {
	card := model.Card{
		Kind:     model.KindUser,
		Title:    "Kim Minji",
		Subtitle: "Search",
		Summary:  strings.Repeat("Owns the query pipeline. ", 10),
		Hashtags: tags("search", "ranking", "go", "kafka", "oncall"),
		Leader:   true,
		CanEdit:  true,
	}
	out := RenderCard(CardProps{Card: card, Width: 36, Height: 14, Visible: 2, Selected: -1})
	assert.Equal(t, 36, lipgloss.Width(out))
	assert.Equal(t, 14, lipgloss.Height(out))
	assert.Contains(t, out, "#search")
	assert.Contains(t, out, "+3 more")
	assert.NotContains(t, out, "#kafka")
	assert.Contains(t, out, "★ leader")
}

func TestRenderCardAllVisibleHasNoIndicator(t *testing.T) {
	card := model.Card{Title: "Infra", Kind: model.KindTeam, Hashtags: tags("k8s")}
	out := RenderCard(CardProps{Card: card, Width: 30, Height: 10, Visible: 1, Selected: 0})
	assert.NotContains(t, out, "more")
	assert.Contains(t, out, "#k8s")
	assert.Contains(t, out, "team")
}

func TestRenderCardTooSmall(t *testing.T) {
	assert.Empty(t, RenderCard(CardProps{Width: 3, Height: 10}))
}

func TestFlowWrapsRows(t *testing.T) {
	rows := flow([]string{"aaaa", "bbbb", "cccc"}, 9)
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, rows)
	assert.Nil(t, flow(nil, 10))
}

func TestLabelArea(t *testing.T) {
	assert.Equal(t, 9, LabelArea(14))
	assert.Equal(t, 0, LabelArea(4))
}

func TestBadgesHighlightIndicatorPastVisible(t *testing.T) {
	ts := tags("a", "b", "c", "d")
	plain := badges(ts, 2, -1)
	require.Len(t, plain, 3)
	assert.Equal(t, moreStyle.Render("+2 more"), plain[2])

	onIndicator := badges(ts, 2, 2)
	assert.Equal(t, selectedMoreStyle.Render("+2 more"), onIndicator[2])

	onHidden := badges(ts, 2, 4)
	assert.Equal(t, selectedMoreStyle.Render("+2 more"), onHidden[2])
	assert.Equal(t, BadgeStyle.Render("#a"), onHidden[0])
}
