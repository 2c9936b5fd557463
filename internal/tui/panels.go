package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/roster/internal/geometry"
	"github.com/rusenback/roster/internal/labelfit"
	"github.com/rusenback/roster/internal/model"
	"github.com/rusenback/roster/internal/tui/views"
	"go.uber.org/zap"
)

// cardsHeaderLines is the title row, the trending row and a blank row.
const cardsHeaderLines = 3

// detailMaxLines caps the description rows under a breadcrumb.
const detailMaxLines = 2

// cardView is one card in the grid with its own label fit state.
type cardView struct {
	card    model.Card
	labels  []labelfit.Label
	watcher *labelfit.Watcher
	visible int
	cancel  func()
}

// refit recomputes the visible hashtag count for a card box.
func (cv *cardView) refit(box geometry.Box) {
	bodyW, _ := views.Body(box.Width, box.Height)
	cv.visible = cv.watcher.Observe(labelfit.Request{
		ContainerWidth:       bodyW,
		ContainerHeight:      views.LabelArea(box.Height),
		SiblingContentHeight: len(views.Summary(cv.card.Summary, bodyW)),
		Labels:               cv.labels,
	})
}

// detailInfo is the header of an opened team or user.
type detailInfo struct {
	breadcrumb []string
	lines      []string
}

// pageState is a grid the user can go back to.
type pageState struct {
	title  string
	cards  []model.Card
	cursor int
	detail *detailInfo
}

// cardsPane is the card grid. Card boxes are published through an Observer
// and every card refits its hashtags when the box changes.
//
// tag is a cursor over the selected card's hashtags: positions below visible
// are badges, position visible is the "+N more" indicator and the positions
// after it walk the hidden hashtags.
type cardsPane struct {
	observer *geometry.Observer
	fitter   *labelfit.Fitter
	logger   *zap.Logger

	cardHeight   int
	cardMinWidth int

	title   string
	cards   []*cardView
	cursor  int
	tag     int
	loading bool
	err     error

	detail  *detailInfo
	history []pageState

	width   int
	height  int
	columns int
	offset  int // first visible grid row
}

func newCardsPane(cardHeight, cardMinWidth int, logger *zap.Logger) *cardsPane {
	fitter := labelfit.NewFitter(
		labelfit.NewBadgeMeasurer(views.BadgeStyle),
		labelfit.WithGap(labelfit.DefaultGap),
		labelfit.WithMinSpareHeight(labelfit.DefaultMinSpareHeight),
		labelfit.WithLogger(logger),
	)
	return &cardsPane{
		observer:     geometry.NewObserver(),
		fitter:       fitter,
		logger:       logger,
		cardHeight:   cardHeight,
		cardMinWidth: cardMinWidth,
		title:        "My cards",
		loading:      true,
		tag:          -1,
		columns:      1,
	}
}

// setCards replaces the grid and forgets any opened detail pages.
func (p *cardsPane) setCards(title string, cards []model.Card) {
	p.detail = nil
	p.history = nil
	p.load(title, cards)
}

// showDetail opens a team or user page on top of the current grid.
func (p *cardsPane) showDetail(title string, info *detailInfo, cards []model.Card) {
	p.history = append(p.history, p.page())
	p.load(title, cards)
	p.detail = info
	p.ensureVisible()
}

// back returns to the grid a detail page was opened from.
func (p *cardsPane) back() bool {
	if len(p.history) == 0 {
		return false
	}
	prev := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.load(prev.title, prev.cards)
	p.detail = prev.detail
	if prev.cursor < len(p.cards) {
		p.cursor = prev.cursor
	}
	p.ensureVisible()
	return true
}

func (p *cardsPane) page() pageState {
	cards := make([]model.Card, len(p.cards))
	for i, cv := range p.cards {
		cards[i] = cv.card
	}
	return pageState{title: p.title, cards: cards, cursor: p.cursor, detail: p.detail}
}

// load swaps the grid contents. Old cards stop listening for resizes and
// new ones fit against the current box as they subscribe.
func (p *cardsPane) load(title string, cards []model.Card) {
	p.clearCards()
	p.title = title
	p.loading = false
	p.err = nil
	p.cursor = 0
	p.tag = -1
	p.offset = 0

	p.cards = make([]*cardView, 0, len(cards))
	for _, c := range cards {
		cv := &cardView{
			card:    c,
			labels:  labelsFor(c.Hashtags),
			watcher: labelfit.NewWatcher(p.fitter),
			visible: len(c.Hashtags),
		}
		cv.cancel = p.observer.Subscribe(cv.refit)
		p.cards = append(p.cards, cv)
	}
	p.logger.Debug("cards replaced", zap.String("title", title), zap.Int("count", len(cards)))
}

func (p *cardsPane) selected() (model.Card, bool) {
	if len(p.cards) == 0 {
		return model.Card{}, false
	}
	return p.cards[p.cursor].card, true
}

func (p *cardsPane) setError(err error) {
	p.loading = false
	p.err = err
}

func (p *cardsPane) clearCards() {
	for _, cv := range p.cards {
		if cv.cancel != nil {
			cv.cancel()
		}
	}
	p.cards = nil
}

func (p *cardsPane) close() {
	p.clearCards()
	p.history = nil
}

// resize lays the grid out for a pane of the given outer size and publishes
// the resulting card box.
func (p *cardsPane) resize(width, height int) {
	p.width, p.height = width, height

	innerW := width - panelFrameWidth
	p.columns = 1
	if p.cardMinWidth > 0 && innerW/p.cardMinWidth > 1 {
		p.columns = innerW / p.cardMinWidth
	}
	cardW := 0
	if innerW > 0 {
		cardW = innerW / p.columns
	}

	before := -1
	if len(p.cards) > 0 {
		before = p.cards[p.cursor].visible
	}
	p.observer.Publish(geometry.Box{Width: cardW, Height: p.cardHeight})
	// a refit shifts the indicator, so positions past it no longer name the
	// same hashtag
	if before >= 0 && p.cards[p.cursor].visible != before {
		p.tag = -1
	}
	p.ensureVisible()
}

func (p *cardsPane) headerLines() int {
	if p.detail == nil {
		return cardsHeaderLines
	}
	return cardsHeaderLines + 1 + min(len(p.detail.lines), detailMaxLines)
}

// gridRows is how many card rows fit below the header and above the footer.
func (p *cardsPane) gridRows() int {
	innerH := p.height - panelFrameHeight - p.headerLines() - 2
	if p.cardHeight <= 0 || innerH < p.cardHeight {
		return 1
	}
	return innerH / p.cardHeight
}

func (p *cardsPane) ensureVisible() {
	if p.columns <= 0 {
		return
	}
	row := p.cursor / p.columns
	rows := p.gridRows()
	if row < p.offset {
		p.offset = row
	}
	if row >= p.offset+rows {
		p.offset = row - rows + 1
	}
}

// moveCursor shifts the selected card by delta, clamped to the grid.
func (p *cardsPane) moveCursor(delta int) {
	if len(p.cards) == 0 {
		return
	}
	next := p.cursor + delta
	if next < 0 || next >= len(p.cards) {
		return
	}
	p.cursor = next
	p.tag = -1
	p.ensureVisible()
}

// tagRing is the number of tag cursor positions on the selected card: every
// visible badge, plus the indicator and each hidden hashtag when some are
// hidden.
func (p *cardsPane) tagRing() int {
	if len(p.cards) == 0 {
		return 0
	}
	cv := p.cards[p.cursor]
	total := len(cv.card.Hashtags)
	if cv.visible >= total {
		return total
	}
	return total + 1
}

// cycleTag moves the tag cursor around the ring of the selected card.
func (p *cardsPane) cycleTag(delta int) {
	n := p.tagRing()
	if n == 0 {
		p.tag = -1
		return
	}
	if p.tag < 0 {
		p.tag = 0
		return
	}
	p.tag = ((p.tag+delta)%n + n) % n
}

// onIndicator reports whether the tag cursor rests on "+N more".
func (p *cardsPane) onIndicator() bool {
	if len(p.cards) == 0 {
		return false
	}
	cv := p.cards[p.cursor]
	return p.tag == cv.visible && cv.visible < len(cv.card.Hashtags)
}

// hiddenTags returns the selected card's hashtags behind the indicator and
// the cursor's index among them, or nil while the cursor is on a badge.
func (p *cardsPane) hiddenTags() ([]model.Hashtag, int) {
	if len(p.cards) == 0 || p.tag < 0 {
		return nil, -1
	}
	cv := p.cards[p.cursor]
	if p.tag < cv.visible || cv.visible >= len(cv.card.Hashtags) {
		return nil, -1
	}
	return cv.card.Hashtags[cv.visible:], p.tag - cv.visible - 1
}

// selectedHashtag returns the hashtag under the tag cursor. The indicator
// itself names no hashtag.
func (p *cardsPane) selectedHashtag() (model.Hashtag, bool) {
	if len(p.cards) == 0 || p.tag < 0 {
		return model.Hashtag{}, false
	}
	cv := p.cards[p.cursor]
	i := p.tag
	switch {
	case i < cv.visible:
	case i == cv.visible:
		return model.Hashtag{}, false
	default:
		i--
	}
	if i >= len(cv.card.Hashtags) {
		return model.Hashtag{}, false
	}
	return cv.card.Hashtags[i], true
}

// renderCardsPanel renders the card grid panel
func (m Model) renderCardsPanel(width, height int) string {
	p := m.cards
	innerW := max(0, width-panelFrameWidth)
	innerH := max(0, height-panelFrameHeight)

	var s strings.Builder
	title := "👥 " + p.title
	if len(p.cards) > 0 {
		title += fmt.Sprintf(" (%d)", len(p.cards))
	}
	s.WriteString(titleStyle.Render(truncate(title, innerW)) + "\n")
	s.WriteString(renderTrending(m.trending, m.catalog, innerW) + "\n")
	if d := p.detail; d != nil {
		s.WriteString(views.Breadcrumb(d.breadcrumb, innerW) + "\n")
		for _, l := range d.lines[:min(len(d.lines), detailMaxLines)] {
			s.WriteString(dimStyle.Render(truncate(l, innerW)) + "\n")
		}
	}
	s.WriteString("\n")

	switch {
	case p.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", p.err)) + "\n")
	case p.loading:
		s.WriteString("Loading...\n")
	case len(p.cards) == 0:
		s.WriteString(dimStyle.Render("No cards to show") + "\n")
	default:
		s.WriteString(p.renderGrid(m.focus == focusCards))
		s.WriteString("\n")
	}

	var footer []string
	if hidden, sel := p.hiddenTags(); len(hidden) > 0 {
		footer = append(footer, views.HiddenTags(hidden, sel, innerW)...)
	}
	if m.message != "" {
		footer = append(footer, truncate(m.message, innerW))
	}
	help := "[tab] chat  [←↑↓→] card  [ [ / ] ] tag  [enter] search/open  [o] open  [H] home  [q] quit"
	if len(p.history) > 0 {
		help = "[esc] back  " + help
	}
	footer = append(footer, helpStyle.Render(truncate(help, innerW)))

	room := innerH - len(footer)
	body := clipLines(strings.TrimRight(s.String(), "\n"), room)
	if pad := room - lipgloss.Height(body); pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += "\n" + strings.Join(footer, "\n")

	return renderPanel(body, width, height, m.focus == focusCards)
}

func (p *cardsPane) renderGrid(focused bool) string {
	box, ok := p.observer.Current()
	if !ok || box.Empty() {
		return ""
	}

	rows := p.gridRows()
	var lines []string
	for r := p.offset; r < p.offset+rows; r++ {
		start := r * p.columns
		if start >= len(p.cards) {
			break
		}
		end := min(start+p.columns, len(p.cards))

		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cv := p.cards[i]
			selected := -1
			if i == p.cursor {
				selected = p.tag
			}
			row = append(row, views.RenderCard(views.CardProps{
				Card:     cv.card,
				Width:    box.Width,
				Height:   box.Height,
				Visible:  cv.visible,
				Selected: selected,
				Active:   focused && i == p.cursor,
			}))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderTrending lists trending hashtags on one line.
func renderTrending(tags []model.Hashtag, catalog, width int) string {
	if len(tags) == 0 {
		return dimStyle.Render("No trending hashtags")
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Display()
	}
	line := "Trending: " + strings.Join(names, " ")
	if catalog > 0 {
		line += " · " + strconv.Itoa(catalog) + " tags"
	}
	return trendingStyle.Render(truncate(line, width))
}

func labelsFor(tags []model.Hashtag) []labelfit.Label {
	labels := make([]labelfit.Label, len(tags))
	for i, t := range tags {
		labels[i] = labelfit.Label{ID: strconv.Itoa(t.ID), Text: t.Display()}
	}
	return labels
}
