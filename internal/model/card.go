package model

// Hashtag is a directory tag attached to users and teams.
type Hashtag struct {
	ID      int    `json:"hashtag_id"`
	TagName string `json:"tag_name"`
}

// Display returns the badge text for the tag.
func (h Hashtag) Display() string {
	return "#" + h.TagName
}

// TeamCard is a team entry in search results.
type TeamCard struct {
	OrgID      int       `json:"org_id"`
	TeamName   string    `json:"team_name"`
	OrgPath    string    `json:"org_path"`
	Summary    string    `json:"summary"`
	Hashtags   []Hashtag `json:"hashtags"`
	LeaderID   *int      `json:"leader_id,omitempty"`
	LeaderName string    `json:"leader_name,omitempty"`
	CanEdit    bool      `json:"can_edit,omitempty"`
}

// UserCard is a person entry in search results.
type UserCard struct {
	UserID   int       `json:"user_id"`
	Name     string    `json:"name"`
	TeamName string    `json:"team_name"`
	OrgPath  string    `json:"org_path"`
	Summary  string    `json:"summary"`
	Hashtags []Hashtag `json:"hashtags"`
	IsLeader bool      `json:"is_leader"`
	CanEdit  bool      `json:"can_edit"`
}

// CardResult groups the cards returned for a query.
type CardResult struct {
	TeamCards []TeamCard `json:"team_cards"`
	UserCards []UserCard `json:"user_cards"`
}

// Empty reports whether the result holds no cards.
func (r CardResult) Empty() bool {
	return len(r.TeamCards) == 0 && len(r.UserCards) == 0
}

// Kind tells which directory entity a Card shows.
type Kind int

const (
	KindUser Kind = iota
	KindTeam
)

// Card is the display form shared by user and team cards.
type Card struct {
	Kind       Kind
	ID         int
	Title      string
	Subtitle   string
	Summary    string
	Hashtags   []Hashtag
	Leader     bool
	LeaderName string // team cards only
	CanEdit    bool
}

// Cards flattens a result into display cards, users first. viewerID marks
// teams the viewer leads as editable.
func (r CardResult) Cards(viewerID int) []Card {
	cards := make([]Card, 0, len(r.UserCards)+len(r.TeamCards))
	for _, u := range r.UserCards {
		cards = append(cards, u.Card())
	}
	for _, t := range r.TeamCards {
		c := t.Card()
		c.CanEdit = c.CanEdit || t.LedBy(viewerID)
		cards = append(cards, c)
	}
	return cards
}

// Card converts a user card for display.
func (u UserCard) Card() Card {
	return Card{
		Kind:     KindUser,
		ID:       u.UserID,
		Title:    u.Name,
		Subtitle: u.TeamName,
		Summary:  u.Summary,
		Hashtags: u.Hashtags,
		Leader:   u.IsLeader,
		CanEdit:  u.CanEdit,
	}
}

// Card converts a team card for display.
func (t TeamCard) Card() Card {
	return Card{
		Kind:       KindTeam,
		ID:         t.OrgID,
		Title:      t.TeamName,
		Subtitle:   t.OrgPath,
		Summary:    t.Summary,
		Hashtags:   t.Hashtags,
		LeaderName: t.LeaderName,
		CanEdit:    t.CanEdit,
	}
}

// LedBy reports whether userID leads the team.
func (t TeamCard) LedBy(userID int) bool {
	return t.LeaderID != nil && *t.LeaderID == userID
}
