package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rusenback/roster/internal/anchor"
	"github.com/rusenback/roster/internal/gateway"
	"github.com/rusenback/roster/internal/model"
	"go.uber.org/zap"
)

type focus int

const (
	focusChat focus = iota
	focusCards
)

// Model represents the TUI application state
type Model struct {
	client gateway.Gateway
	logger *zap.Logger
	userID int

	width  int
	height int
	focus  focus

	cards *cardsPane
	chat  *chatPane

	frames        *anchor.FrameLoop
	frameInFlight bool

	trending []model.Hashtag
	catalog  int
	message  string
}

// Options configures NewModel.
type Options struct {
	UserID       int
	CardHeight   int
	CardMinWidth int
	Logger       *zap.Logger
}

// Message types for Bubbletea update loop
type frameMsg time.Time

type overviewMsg struct {
	overview *model.Overview
	err      error
}

type answerMsg struct {
	question string
	resp     *model.ChatResponse
	err      error
}

type hashtagResultsMsg struct {
	tag    model.Hashtag
	result *model.HashtagSearchResponse
	err    error
}

type teamMsg struct {
	orgID int
	resp  *model.TeamResponse
	err   error
}

type userMsg struct {
	userID int
	resp   *model.UserResponse
	err    error
}

// NewModel creates a new TUI model
func NewModel(client gateway.Gateway, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CardHeight <= 0 {
		opts.CardHeight = 14
	}
	if opts.CardMinWidth <= 0 {
		opts.CardMinWidth = 34
	}

	frames := anchor.NewFrameLoop()
	return Model{
		client: client,
		logger: logger,
		userID: opts.UserID,
		focus:  focusChat,
		cards:  newCardsPane(opts.CardHeight, opts.CardMinWidth, logger.Named("cards")),
		chat:   newChatPane(frames, logger.Named("chat")),
		frames: frames,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchOverview(m.client), textinput.Blink)
}

// Close releases subscriptions and cancels pending frame work.
func (m Model) Close() {
	m.chat.close()
	m.cards.close()
	m.frames.Reset()
}
