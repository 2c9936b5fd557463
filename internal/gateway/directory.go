package gateway

import (
	"fmt"

	"github.com/rusenback/roster/internal/model"
	"golang.org/x/sync/errgroup"
)

const directoryPrefix = "/hallucinations/v1"

// SearchHashtag returns the cards tagged with hashtagID.
func (c *Client) SearchHashtag(hashtagID int) (*model.HashtagSearchResponse, error) {
	var resp model.HashtagSearchResponse
	path := fmt.Sprintf("%s/hashtags/%d/search", directoryPrefix, hashtagID)
	if err := c.get(c.directory, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Home returns the landing data for the configured user.
func (c *Client) Home() (*model.Home, error) {
	var resp model.Home
	if err := c.get(c.directory, directoryPrefix+"/home", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Hashtags returns the hashtag catalog.
func (c *Client) Hashtags() (*model.HashtagCatalog, error) {
	var resp model.HashtagCatalog
	if err := c.get(c.directory, directoryPrefix+"/hashtags", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Team returns the detail view of a team with its members.
func (c *Client) Team(orgID int) (*model.TeamResponse, error) {
	var resp model.TeamResponse
	if err := c.get(c.directory, fmt.Sprintf("%s/teams/%d", directoryPrefix, orgID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) User(userID int) (*model.UserResponse, error) {
	var resp model.UserResponse
	if err := c.get(c.directory, fmt.Sprintf("%s/users/%d", directoryPrefix, userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Overview fetches home data and the hashtag catalog concurrently.
func (c *Client) Overview() (*model.Overview, error) {
	var (
		g       errgroup.Group
		home    *model.Home
		catalog *model.HashtagCatalog
	)

	g.Go(func() error {
		h, err := c.Home()
		if err != nil {
			return fmt.Errorf("home: %w", err)
		}
		home = h
		return nil
	})
	g.Go(func() error {
		h, err := c.Hashtags()
		if err != nil {
			return fmt.Errorf("hashtags: %w", err)
		}
		catalog = h
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &model.Overview{Home: *home, Catalog: *catalog}, nil
}
