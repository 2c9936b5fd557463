package model

// Person is a directory user embedded in team and user detail responses.
type Person struct {
	UserID           int     `json:"user_id"`
	SSOID            string  `json:"sso_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	ProfileImagePath *string `json:"profile_image_path"`
	IsLeader         bool    `json:"is_leader,omitempty"`
}

// OrgNode is one organization in a hierarchy, root first.
type OrgNode struct {
	OrgID                     int     `json:"org_id"`
	OrgCode                   string  `json:"org_code"`
	OrgName                   string  `json:"org_name"`
	OrgType                   string  `json:"org_type"`
	ParentOrgID               *int    `json:"parent_org_id"`
	TeamLeaderID              *int    `json:"team_leader_id"`
	TeamDescriptionOriginal   string  `json:"team_description_original"`
	TeamDescriptionNormalized string  `json:"team_description_normalized"`
	TeamSummary               *string `json:"team_summary"`
	IsActive                  bool    `json:"is_active"`
	CreatedAt                 string  `json:"created_at"`
	UpdatedAt                 string  `json:"updated_at"`
}

// Breadcrumb returns the trail from Home down to the last organization in
// hierarchy, followed by current when it is set.
func Breadcrumb(hierarchy []OrgNode, current string) []string {
	trail := make([]string, 0, len(hierarchy)+2)
	trail = append(trail, "Home")
	for _, org := range hierarchy {
		trail = append(trail, org.OrgName)
	}
	if current != "" {
		trail = append(trail, current)
	}
	return trail
}

// TeamDetail is the team section of a team response.
type TeamDetail struct {
	OrgID           int       `json:"org_id"`
	TeamName        string    `json:"team_name"`
	OrgPath         string    `json:"org_path"`
	OrgType         string    `json:"org_type"`
	TeamSummary     string    `json:"team_summary"`
	TeamDescription string    `json:"team_description"`
	Hashtags        []Hashtag `json:"hashtags"`
	Leader          *Person   `json:"leader"`
}

// TeamMember is a member entry of a team response.
type TeamMember struct {
	UserID           int       `json:"user_id"`
	SSOID            string    `json:"sso_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfileImagePath *string   `json:"profile_image_path"`
	TeamName         string    `json:"team_name"`
	OrgPath          string    `json:"org_path"`
	Summary          string    `json:"summary"`
	Hashtags         []Hashtag `json:"hashtags"`
}

// TeamResponse is the team detail view.
type TeamResponse struct {
	Team                  TeamDetail   `json:"team"`
	OrganizationHierarchy []OrgNode    `json:"organization_hierarchy"`
	Members               []TeamMember `json:"members"`
	CanEdit               bool         `json:"can_edit"`
}

// Editable reports whether viewerID may edit the team, either by the server
// flag or by leading it.
func (r TeamResponse) Editable(viewerID int) bool {
	return r.CanEdit || (r.Team.Leader != nil && r.Team.Leader.UserID == viewerID)
}

// MemberCards converts members into user cards. The team leader is marked.
func (r TeamResponse) MemberCards() []Card {
	leaderID := 0
	if r.Team.Leader != nil {
		leaderID = r.Team.Leader.UserID
	}
	cards := make([]Card, 0, len(r.Members))
	for _, m := range r.Members {
		cards = append(cards, UserCard{
			UserID:   m.UserID,
			Name:     m.Name,
			TeamName: m.TeamName,
			OrgPath:  m.OrgPath,
			Summary:  m.Summary,
			Hashtags: m.Hashtags,
			IsLeader: leaderID != 0 && m.UserID == leaderID,
			CanEdit:  r.CanEdit,
		}.Card())
	}
	return cards
}

// Membership is the organization a user belongs to.
type Membership struct {
	OrgID    int    `json:"org_id"`
	TeamName string `json:"team_name"`
	OrgPath  string `json:"org_path"`
	OrgType  string `json:"org_type"`
}

// Responsibility describes what a user works on.
type Responsibility struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// UserResponse is the user detail view.
type UserResponse struct {
	User                  Person         `json:"user"`
	Organization          Membership     `json:"organization"`
	OrganizationHierarchy []OrgNode      `json:"organization_hierarchy"`
	Responsibility        Responsibility `json:"responsibility"`
	Hashtags              []Hashtag      `json:"hashtags"`
	CanEdit               bool           `json:"can_edit"`
}

// Card converts the user detail into a single display card.
func (r UserResponse) Card() Card {
	return UserCard{
		UserID:   r.User.UserID,
		Name:     r.User.Name,
		TeamName: r.Organization.TeamName,
		OrgPath:  r.Organization.OrgPath,
		Summary:  r.Responsibility.Summary,
		Hashtags: r.Hashtags,
		IsLeader: r.User.IsLeader,
		CanEdit:  r.CanEdit,
	}.Card()
}
