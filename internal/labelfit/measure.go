package labelfit

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// scratch holds badges rendered off-screen for a single measuring pass.
type scratch struct {
	nodes []string
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{nodes: make([]string, 0, 16)} },
}

// scratchHook, when set, sees +1 on acquire and -1 on release.
var scratchHook func(delta int)

func acquireScratch() *scratch {
	if scratchHook != nil {
		scratchHook(1)
	}
	return scratchPool.Get().(*scratch)
}

func (s *scratch) release() {
	for i := range s.nodes {
		s.nodes[i] = ""
	}
	s.nodes = s.nodes[:0]
	scratchPool.Put(s)
	if scratchHook != nil {
		scratchHook(-1)
	}
}

func (s *scratch) render(style lipgloss.Style, text string) string {
	node := style.Render(text)
	s.nodes = append(s.nodes, node)
	return node
}

// BadgeMeasurer measures texts as they render inside Badge.
type BadgeMeasurer struct {
	Badge lipgloss.Style
}

// NewBadgeMeasurer returns a measurer for the given badge style.
func NewBadgeMeasurer(badge lipgloss.Style) *BadgeMeasurer {
	return &BadgeMeasurer{Badge: badge}
}

// MeasureWidths renders every text into a scratch area, reads back the cell
// width, and discards the scratch.
func (m *BadgeMeasurer) MeasureWidths(texts []string) ([]int, error) {
	s := acquireScratch()
	defer s.release()

	widths := make([]int, len(texts))
	for i, t := range texts {
		widths[i] = lipgloss.Width(s.render(m.Badge, t))
	}
	return widths, nil
}
