package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardResultCards(t *testing.T) {
	leader := 7
	r := CardResult{
		TeamCards: []TeamCard{
			{OrgID: 1, TeamName: "Search", OrgPath: "Eng > Search", LeaderID: &leader},
			{OrgID: 2, TeamName: "Infra"},
		},
		UserCards: []UserCard{{UserID: 7, Name: "Kim", TeamName: "Search", IsLeader: true}},
	}

	cards := r.Cards(7)
	if assert.Len(t, cards, 3) {
		assert.Equal(t, KindUser, cards[0].Kind)
		assert.True(t, cards[0].Leader)
		assert.Equal(t, "Search", cards[1].Title)
		assert.True(t, cards[1].CanEdit, "viewer leads the team")
		assert.False(t, cards[2].CanEdit)
	}
	assert.False(t, r.Empty())
	assert.True(t, CardResult{}.Empty())
}

func TestHomeCardsSkipsMissing(t *testing.T) {
	h := Home{MyProfileCard: UserCard{UserID: 3, Name: "Lee"}}
	cards := h.Cards()
	assert.Len(t, cards, 1)
	assert.Equal(t, "Lee", cards[0].Title)
}

func TestHashtagDisplay(t *testing.T) {
	assert.Equal(t, "#golang", Hashtag{ID: 1, TagName: "golang"}.Display())
}
