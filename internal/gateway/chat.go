package gateway

import (
	"strings"

	"github.com/rusenback/roster/internal/model"
)

// Ask sends a free-text question to the chat backend.
func (c *Client) Ask(userID int, query string) (*model.ChatResponse, error) {
	query = strings.TrimSpace(query)

	var resp model.ChatResponse
	if err := c.post(c.chat, "/chat/v1/search/query", model.ChatRequest{UserID: userID, Query: query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
