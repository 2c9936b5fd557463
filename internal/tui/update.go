package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/roster/internal/model"
	"go.uber.org/zap"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	frame := m.requestFrame()
	return m, tea.Batch(cmd, frame)
}

// requestFrame keeps at most one frame tick in flight, and only while the
// frame loop has work queued.
func (m *Model) requestFrame() tea.Cmd {
	if m.frameInFlight || !m.frames.Pending() {
		return nil
	}
	m.frameInFlight = true
	return frameCmd()
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case frameMsg:
		m.frameInFlight = false
		m.frames.Tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		left, _ := splitWidth(m.width)
		if msg.X >= left && tea.MouseEvent(msg).IsWheel() {
			return m.chat.scroll(msg)
		}

	case overviewMsg:
		if msg.err != nil {
			m.logger.Warn("overview failed", zap.Error(msg.err))
			m.cards.setError(msg.err)
			return nil
		}
		home := msg.overview.Home
		m.trending = home.TrendingHashtags
		m.catalog = len(msg.overview.Catalog.Hashtags)
		m.cards.setCards("My cards", home.Cards())

	case answerMsg:
		m.chat.setThinking(false)
		if msg.err != nil {
			m.logger.Warn("chat query failed", zap.String("question", msg.question), zap.Error(msg.err))
			failed := newMessage(model.SenderAssistant, fmt.Sprintf("Sorry, I couldn't answer that: %v", msg.err))
			failed.Failed = true
			m.chat.append(failed)
			return nil
		}
		m.chat.append(newMessage(model.SenderAssistant, msg.resp.Answer))
		if !msg.resp.CardResult.Empty() {
			m.cards.setCards("Results: "+msg.question, msg.resp.CardResult.Cards(m.userID))
		}

	case hashtagResultsMsg:
		if msg.err != nil {
			m.logger.Warn("hashtag search failed", zap.Int("hashtag_id", msg.tag.ID), zap.Error(msg.err))
			m.message = fmt.Sprintf("Search %s failed: %v", msg.tag.Display(), msg.err)
			return nil
		}
		m.message = ""
		m.cards.setCards(msg.tag.Display(), msg.result.Cards(m.userID))

	case teamMsg:
		if msg.err != nil {
			m.logger.Warn("team lookup failed", zap.Int("org_id", msg.orgID), zap.Error(msg.err))
			m.message = fmt.Sprintf("Open team failed: %v", msg.err)
			return nil
		}
		m.message = ""
		title, info, cards := teamPage(msg.resp, m.userID)
		m.cards.showDetail(title, info, cards)

	case userMsg:
		if msg.err != nil {
			m.logger.Warn("user lookup failed", zap.Int("user_id", msg.userID), zap.Error(msg.err))
			m.message = fmt.Sprintf("Open profile failed: %v", msg.err)
			return nil
		}
		m.message = ""
		title, info, cards := userPage(msg.resp)
		m.cards.showDetail(title, info, cards)

	default:
		if m.focus == focusChat {
			var cmd tea.Cmd
			m.chat.input, cmd = m.chat.input.Update(msg)
			return cmd
		}
	}
	return nil
}

// layout splits the window 60/40 and resizes both panes.
func (m *Model) layout() {
	left, right := splitWidth(m.width)
	m.cards.resize(left, m.height)
	m.chat.resize(right, m.height)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return tea.Quit
	case "tab", "shift+tab":
		m.toggleFocus()
		return nil
	}

	if m.focus == focusChat {
		return m.handleChatKey(msg)
	}
	return m.handleCardsKey(msg)
}

func (m *Model) toggleFocus() {
	if m.focus == focusChat {
		m.focus = focusCards
		m.chat.input.Blur()
		return
	}
	m.focus = focusChat
	m.chat.input.Focus()
}

func (m *Model) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.toggleFocus()
		return nil

	case "enter":
		question := strings.TrimSpace(m.chat.input.Value())
		if question == "" || m.chat.thinking {
			return nil
		}
		m.chat.input.Reset()
		m.chat.append(newMessage(model.SenderUser, question))
		m.chat.setThinking(true)
		return askQuestion(m.client, m.userID, question)

	case "pgup", "pgdown", "up", "down", "ctrl+u", "ctrl+d":
		return m.chat.scroll(msg)

	case "home":
		m.chat.scrollToTop()
		return nil

	case "end":
		m.chat.scrollToBottom()
		return nil
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return cmd
}

func (m *Model) handleCardsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.Close()
		return tea.Quit

	case "left", "h":
		m.cards.moveCursor(-1)
	case "right", "l":
		m.cards.moveCursor(1)
	case "up", "k":
		m.cards.moveCursor(-m.cards.columns)
	case "down", "j":
		m.cards.moveCursor(m.cards.columns)

	case "[":
		m.cards.cycleTag(-1)
	case "]":
		m.cards.cycleTag(1)

	case "enter":
		if tag, ok := m.cards.selectedHashtag(); ok {
			m.message = "Searching " + tag.Display() + "..."
			return searchHashtag(m.client, tag)
		}
		if m.cards.onIndicator() {
			m.cards.cycleTag(1)
			return nil
		}
		if m.cards.tag < 0 {
			return m.openSelected()
		}

	case "o":
		return m.openSelected()

	case "esc", "backspace":
		if m.cards.tag >= 0 {
			m.cards.tag = -1
			return nil
		}
		m.cards.back()

	case "H", "R":
		m.cards.detail = nil
		m.cards.history = nil
		m.cards.loading = true
		m.message = ""
		return fetchOverview(m.client)
	}
	return nil
}

// openSelected loads the detail page of the card under the cursor.
func (m *Model) openSelected() tea.Cmd {
	card, ok := m.cards.selected()
	if !ok {
		return nil
	}
	m.message = "Opening " + card.Title + "..."
	if card.Kind == model.KindTeam {
		return fetchTeam(m.client, card.ID)
	}
	return fetchUser(m.client, card.ID)
}

// teamPage lays out a team: the team's own card first, then its members.
func teamPage(resp *model.TeamResponse, viewerID int) (string, *detailInfo, []model.Card) {
	t := resp.Team
	lead := ""
	if t.Leader != nil {
		lead = t.Leader.Name
	}
	team := model.TeamCard{
		OrgID:      t.OrgID,
		TeamName:   t.TeamName,
		OrgPath:    t.OrgPath,
		Summary:    t.TeamSummary,
		Hashtags:   t.Hashtags,
		LeaderName: lead,
	}.Card()
	team.CanEdit = resp.Editable(viewerID)

	info := &detailInfo{breadcrumb: model.Breadcrumb(resp.OrganizationHierarchy, "")}
	if len(resp.OrganizationHierarchy) == 0 {
		info.breadcrumb = model.Breadcrumb(nil, t.TeamName)
	}
	if t.TeamDescription != "" {
		info.lines = append(info.lines, t.TeamDescription)
	}
	info.lines = append(info.lines, fmt.Sprintf("%d members", len(resp.Members)))

	return t.TeamName, info, append([]model.Card{team}, resp.MemberCards()...)
}

func userPage(resp *model.UserResponse) (string, *detailInfo, []model.Card) {
	u := resp.User
	info := &detailInfo{breadcrumb: model.Breadcrumb(resp.OrganizationHierarchy, u.Name)}

	var contact []string
	for _, v := range []string{u.Email, u.Phone} {
		if v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		info.lines = append(info.lines, strings.Join(contact, " · "))
	}
	if d := resp.Responsibility.Detail; d != "" {
		info.lines = append(info.lines, d)
	}
	return u.Name, info, []model.Card{resp.Card()}
}
