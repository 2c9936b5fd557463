package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/roster/internal/gateway"
	"github.com/rusenback/roster/internal/model"
)

// frameInterval paces deferred scroll work at roughly 60 frames per second.
const frameInterval = time.Second / 60

// frameCmd delivers the next frame tick.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fetchOverview loads home cards, trending hashtags and the catalog.
func fetchOverview(client gateway.Gateway) tea.Cmd {
	return func() tea.Msg {
		ov, err := client.Overview()
		return overviewMsg{overview: ov, err: err}
	}
}

func askQuestion(client gateway.Gateway, userID int, question string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Ask(userID, question)
		return answerMsg{question: question, resp: resp, err: err}
	}
}

// searchHashtag fetches the cards tagged with tag.
func searchHashtag(client gateway.Gateway, tag model.Hashtag) tea.Cmd {
	return func() tea.Msg {
		result, err := client.SearchHashtag(tag.ID)
		return hashtagResultsMsg{tag: tag, result: result, err: err}
	}
}

func fetchTeam(client gateway.Gateway, orgID int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Team(orgID)
		return teamMsg{orgID: orgID, resp: resp, err: err}
	}
}

func fetchUser(client gateway.Gateway, userID int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.User(userID)
		return userMsg{userID: userID, resp: resp, err: err}
	}
}
