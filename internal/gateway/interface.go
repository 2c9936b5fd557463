package gateway

import "github.com/rusenback/roster/internal/model"

// Gateway is the backend surface the TUI talks to. It is an interface so the
// UI can be tested against a stub.
type Gateway interface {
	Ask(userID int, query string) (*model.ChatResponse, error)
	SearchHashtag(hashtagID int) (*model.HashtagSearchResponse, error)
	Home() (*model.Home, error)
	Hashtags() (*model.HashtagCatalog, error)
	Overview() (*model.Overview, error)
	Team(orgID int) (*model.TeamResponse, error)
	User(userID int) (*model.UserResponse, error)
	Close() error
}

var _ Gateway = (*Client)(nil)
