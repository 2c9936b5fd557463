package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumb(t *testing.T) {
	orgs := []OrgNode{{OrgID: 1, OrgName: "Eng"}, {OrgID: 2, OrgName: "Search"}}
	assert.Equal(t, []string{"Home", "Eng", "Search"}, Breadcrumb(orgs, ""))
	assert.Equal(t, []string{"Home", "Eng", "Search", "Kim"}, Breadcrumb(orgs, "Kim"))
	assert.Equal(t, []string{"Home"}, Breadcrumb(nil, ""))
}

func TestMemberCardsWithoutLeader(t *testing.T) {
	r := TeamResponse{
		Members: []TeamMember{{UserID: 0, Name: "Unknown"}, {UserID: 4, Name: "Jo"}},
		CanEdit: true,
	}
	cards := r.MemberCards()
	if assert.Len(t, cards, 2) {
		assert.False(t, cards[0].Leader, "zero id never matches a missing leader")
		assert.True(t, cards[1].CanEdit)
	}
	assert.False(t, TeamResponse{}.Editable(0))
}
