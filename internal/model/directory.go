package model

// HashtagSearchResponse lists the cards tagged with a hashtag.
type HashtagSearchResponse = CardResult

// HomeUser is the signed-in user as returned by the home endpoint.
type HomeUser struct {
	UserID           int     `json:"user_id"`
	SSOID            string  `json:"sso_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	ProfileImagePath *string `json:"profile_image_path"`
}

// Home is the landing data for the current user.
type Home struct {
	User             HomeUser  `json:"user"`
	MyTeamCard       TeamCard  `json:"my_team_card"`
	MyProfileCard    UserCard  `json:"my_profile_card"`
	TrendingHashtags []Hashtag `json:"trending_hashtags"`
}

// Cards returns the home cards in display order.
func (h Home) Cards() []Card {
	var cards []Card
	if h.MyProfileCard.UserID != 0 {
		cards = append(cards, h.MyProfileCard.Card())
	}
	if h.MyTeamCard.OrgID != 0 {
		c := h.MyTeamCard.Card()
		c.CanEdit = c.CanEdit || h.MyTeamCard.LedBy(h.User.UserID)
		cards = append(cards, c)
	}
	return cards
}

// HashtagCatalog is the full list of known hashtags.
type HashtagCatalog struct {
	Hashtags []Hashtag `json:"hashtags"`
}

// Overview bundles home data with the hashtag catalog.
type Overview struct {
	Home    Home
	Catalog HashtagCatalog
}
