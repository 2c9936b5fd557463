package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumb(t *testing.T) {
	trail := []string{"Home", "Engineering", "Search"}

	full := Breadcrumb(trail, 60)
	assert.Contains(t, full, "Home")
	assert.Contains(t, full, "Search")
	assert.Equal(t, lipgloss.Width("Home › Engineering › Search"), lipgloss.Width(full))

	short := Breadcrumb(trail, 22)
	assert.NotContains(t, short, "Home")
	assert.True(t, strings.HasPrefix(short, crumbStyle.Render("…"+crumbSep)))
	assert.LessOrEqual(t, lipgloss.Width(short), 22)

	tiny := Breadcrumb(trail, 6)
	assert.LessOrEqual(t, lipgloss.Width(tiny), 6)

	assert.Empty(t, Breadcrumb(nil, 10))
}

func TestHiddenTagsFlow(t *testing.T) {
	rows := HiddenTags(tags("alpha", "beta", "gamma"), 1, 16)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "#alpha")
	assert.Contains(t, rows[0], selectedBadgeStyle.Render("#beta"))
	assert.Contains(t, rows[1], "#gamma")
}
