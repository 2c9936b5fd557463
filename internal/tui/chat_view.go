package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rusenback/roster/internal/anchor"
	"github.com/rusenback/roster/internal/model"
	"go.uber.org/zap"
)

const greetingText = "Hi! Ask me who works on what, or pick a hashtag on the left to browse people and teams."

// chatPane is the live transcript: a viewport that follows new messages
// unless the user has scrolled up, plus the question input.
type chatPane struct {
	viewport viewport.Model
	input    textinput.Model
	anchor   *anchor.Anchor
	logger   *zap.Logger

	messages []model.Message
	thinking bool

	renderer *glamour.TermRenderer
	wrap     int
	rendered map[string]string // message id -> rendered body
}

func newChatPane(frames anchor.Scheduler, logger *zap.Logger) *chatPane {
	ti := textinput.New()
	ti.Placeholder = "Ask about people, teams or skills..."
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Focus()

	c := &chatPane{
		viewport: viewport.New(0, 0),
		input:    ti,
		logger:   logger,
		rendered: make(map[string]string),
	}
	c.messages = []model.Message{newMessage(model.SenderAssistant, greetingText)}
	c.anchor = anchor.New(viewportRegion{c}, frames,
		anchor.WithLogger(logger),
		anchor.WithLength(len(c.messages)))
	return c
}

func newMessage(sender model.Sender, text string) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// viewportRegion exposes the chat viewport to the anchor. Rows stand in for
// pixels.
type viewportRegion struct {
	c *chatPane
}

func (r viewportRegion) Snapshot() (anchor.Snapshot, bool) {
	vp := &r.c.viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return anchor.Snapshot{}, false
	}
	return anchor.Snapshot{
		ScrollTop:    vp.YOffset,
		ScrollHeight: vp.TotalLineCount(),
		ClientHeight: vp.Height,
	}, true
}

func (r viewportRegion) ScrollToBottom() {
	r.c.viewport.GotoBottom()
}

// resize fits the pane into an outer box of width x height.
func (c *chatPane) resize(width, height int) {
	innerW := max(0, width-panelFrameWidth)
	innerH := max(0, height-panelFrameHeight)

	// title, input and help rows
	c.viewport.Width = innerW
	c.viewport.Height = max(0, innerH-3)
	c.input.Width = max(1, innerW-lipgloss.Width(c.input.Prompt)-1)

	if innerW != c.wrap {
		c.wrap = innerW
		c.renderer = nil
		c.rendered = make(map[string]string)
		if innerW > 0 {
			r, err := glamour.NewTermRenderer(
				glamour.WithStylePath("dark"),
				glamour.WithWordWrap(innerW),
			)
			if err != nil {
				c.logger.Warn("markdown renderer unavailable", zap.Error(err))
			} else {
				c.renderer = r
			}
		}
	}
	c.refresh()
}

// append adds a message and lets the anchor decide whether to follow it.
func (c *chatPane) append(msg model.Message) {
	c.messages = append(c.messages, msg)
	c.refresh()
}

func (c *chatPane) setThinking(on bool) {
	if c.thinking == on {
		return
	}
	c.thinking = on
	c.refresh()
}

// refresh re-renders the transcript into the viewport and reports the
// change to the anchor.
func (c *chatPane) refresh() {
	c.viewport.SetContent(c.renderTranscript())
	c.anchor.OnTranscript(len(c.messages))
}

func (c *chatPane) renderTranscript() string {
	var b strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(messageHeader(msg))
		b.WriteString("\n")
		b.WriteString(c.renderBody(msg))
	}
	if c.thinking {
		b.WriteString("\n\n")
		b.WriteString(thinkingStyle.Render("thinking…"))
	}
	return b.String()
}

func messageHeader(msg model.Message) string {
	label := assistantLabelStyle.Render("Assistant")
	if msg.Sender == model.SenderUser {
		label = userLabelStyle.Render("You")
	}
	return label + " " + timestampStyle.Render(msg.Timestamp.Format("15:04"))
}

func (c *chatPane) renderBody(msg model.Message) string {
	if out, ok := c.rendered[msg.ID]; ok {
		return out
	}

	var out string
	switch {
	case msg.Failed:
		out = errorStyle.Width(max(1, c.wrap)).Render(msg.Text)
	case msg.Sender == model.SenderAssistant && c.renderer != nil:
		md, err := c.renderer.Render(msg.Text)
		if err != nil {
			c.logger.Debug("markdown render failed", zap.String("id", msg.ID), zap.Error(err))
			out = lipgloss.NewStyle().Width(max(1, c.wrap)).Render(msg.Text)
		} else {
			out = strings.Trim(md, "\n")
		}
	default:
		out = lipgloss.NewStyle().Width(max(1, c.wrap)).Render(msg.Text)
	}

	c.rendered[msg.ID] = out
	return out
}

// scroll forwards a scroll key or wheel event to the viewport and lets the
// anchor re-evaluate on the next frame.
func (c *chatPane) scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	c.anchor.OnScroll()
	return cmd
}

func (c *chatPane) scrollToTop() {
	c.viewport.GotoTop()
	c.anchor.OnScroll()
}

func (c *chatPane) scrollToBottom() {
	c.viewport.GotoBottom()
	c.anchor.OnScroll()
}

func (c *chatPane) close() {
	c.anchor.Close()
}

// renderChatPanel renders the chat panel
func (m Model) renderChatPanel(width, height int) string {
	c := m.chat
	innerW := max(0, width-panelFrameWidth)

	title := titleStyle.Render("💬 Ask")
	if c.anchor.Following() {
		title += " [Auto-follow: ON]"
	} else {
		title += dimStyle.Render(" [Auto-follow: OFF] end:latest")
	}

	help := "[enter] send  [pgup/pgdn] scroll  [tab] cards"
	if total := c.viewport.TotalLineCount(); total > c.viewport.Height && c.viewport.Height > 0 {
		help = fmt.Sprintf("[%d/%d] ", c.viewport.YOffset+1, total) + help
	}

	content := strings.Join([]string{
		lipgloss.NewStyle().MaxWidth(innerW).Render(title),
		c.viewport.View(),
		c.input.View(),
		helpStyle.Render(truncate(help, innerW)),
	}, "\n")

	return renderPanel(content, width, height, m.focus == focusChat)
}
