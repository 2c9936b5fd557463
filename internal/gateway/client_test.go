package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rusenback/roster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	c, err := NewClient(Config{DirectoryURL: srv.URL + "/api/", ChatURL: srv.URL + "/api", Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
		srv.Close()
	})
	return c
}

func TestNewClientValidatesURLs(t *testing.T) {
	_, err := NewClient(Config{DirectoryURL: "", ChatURL: "http://x"}, nil)
	assert.ErrorContains(t, err, "directory url")

	_, err = NewClient(Config{DirectoryURL: "http://x", ChatURL: "ftp://x"}, nil)
	assert.ErrorContains(t, err, "chat url")

	c, err := NewClient(Config{DirectoryURL: "http://x/api/", ChatURL: "https://y"}, nil)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "http://x/api", c.directory.String())
	assert.Equal(t, DefaultConfig().Timeout, c.timeout)
}

func TestAsk(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat/v1/search/query", func(w http.ResponseWriter, r *http.Request) {
		var req model.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.ChatRequest{UserID: 7, Query: "who owns billing?"}, req)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"log_id": 42,
			"question": "who owns billing?",
			"llm_answer": "The **payments** team.",
			"card_result": {
				"team_cards": [{"org_id": 3, "team_name": "Payments", "hashtags": [{"hashtag_id": 1, "tag_name": "billing"}]}],
				"user_cards": []
			}
		}`))
	})
	c := newTestClient(t, mux)

	resp, err := c.Ask(7, "  who owns billing?  ")
	require.NoError(t, err)

	want := &model.ChatResponse{
		LogID:    42,
		Question: "who owns billing?",
		Answer:   "The **payments** team.",
		CardResult: model.CardResult{
			TeamCards: []model.TeamCard{{OrgID: 3, TeamName: "Payments", Hashtags: []model.Hashtag{{ID: 1, TagName: "billing"}}}},
			UserCards: []model.UserCard{},
		},
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("Ask() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchHashtag(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hallucinations/v1/hashtags/{id}/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12", r.PathValue("id"))
		w.Write([]byte(`{"team_cards": [], "user_cards": [{"user_id": 5, "name": "Kim", "is_leader": true}]}`))
	})
	c := newTestClient(t, mux)

	resp, err := c.SearchHashtag(12)
	require.NoError(t, err)
	require.Len(t, resp.UserCards, 1)
	assert.Equal(t, "Kim", resp.UserCards[0].Name)
	assert.True(t, resp.UserCards[0].IsLeader)
}

func TestTeam(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hallucinations/v1/teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.PathValue("id"))
		w.Write([]byte(`{
			"team": {
				"org_id": 2, "team_name": "Search", "org_path": "Eng > Search",
				"team_summary": "Owns search.", "team_description": "Ranking and indexing.",
				"hashtags": [{"hashtag_id": 1, "tag_name": "go"}],
				"leader": {"user_id": 9, "name": "Lee", "profile_image_path": null}
			},
			"organization_hierarchy": [
				{"org_id": 1, "org_name": "Eng", "parent_org_id": null, "is_active": true},
				{"org_id": 2, "org_name": "Search", "parent_org_id": 1, "team_leader_id": 9, "is_active": true}
			],
			"members": [
				{"user_id": 9, "name": "Lee", "team_name": "Search", "summary": "Leads."},
				{"user_id": 11, "name": "Park", "team_name": "Search", "hashtags": [{"hashtag_id": 3, "tag_name": "ml"}]}
			],
			"can_edit": false
		}`))
	})
	c := newTestClient(t, mux)

	resp, err := c.Team(2)
	require.NoError(t, err)
	assert.Equal(t, "Ranking and indexing.", resp.Team.TeamDescription)
	require.NotNil(t, resp.Team.Leader)
	assert.Equal(t, 9, resp.Team.Leader.UserID)
	require.Len(t, resp.OrganizationHierarchy, 2)
	require.NotNil(t, resp.OrganizationHierarchy[1].ParentOrgID)
	assert.Equal(t, 1, *resp.OrganizationHierarchy[1].ParentOrgID)
	assert.Nil(t, resp.OrganizationHierarchy[0].ParentOrgID)
	assert.True(t, resp.Editable(9))
	assert.False(t, resp.Editable(11))

	cards := resp.MemberCards()
	require.Len(t, cards, 2)
	assert.True(t, cards[0].Leader)
	assert.False(t, cards[1].Leader)
	assert.Equal(t, "#ml", cards[1].Hashtags[0].Display())
}

func TestUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hallucinations/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "11", r.PathValue("id"))
		w.Write([]byte(`{
			"user": {"user_id": 11, "name": "Park", "email": "park@example.com", "phone": "010", "is_leader": false},
			"organization": {"org_id": 2, "team_name": "Search", "org_path": "Eng > Search"},
			"organization_hierarchy": [{"org_id": 1, "org_name": "Eng"}, {"org_id": 2, "org_name": "Search"}],
			"responsibility": {"summary": "Query parsing.", "detail": "Owns the tokenizer."},
			"hashtags": [{"hashtag_id": 3, "tag_name": "ml"}],
			"can_edit": true
		}`))
	})
	c := newTestClient(t, mux)

	resp, err := c.User(11)
	require.NoError(t, err)

	want := model.Card{
		Kind:     model.KindUser,
		ID:       11,
		Title:    "Park",
		Subtitle: "Search",
		Summary:  "Query parsing.",
		Hashtags: []model.Hashtag{{ID: 3, TagName: "ml"}},
		CanEdit:  true,
	}
	if diff := cmp.Diff(want, resp.Card()); diff != "" {
		t.Errorf("Card() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Owns the tokenizer.", resp.Responsibility.Detail)
	assert.Equal(t, []string{"Home", "Eng", "Search", "Park"}, model.Breadcrumb(resp.OrganizationHierarchy, resp.User.Name))
}

func TestTeamNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hallucinations/v1/teams/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such team", http.StatusNotFound)
	})
	c := newTestClient(t, mux)

	resp, err := c.Team(404)
	assert.Nil(t, resp)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "/hallucinations/v1/teams/404", apiErr.Path)
}

func TestAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hallucinations/v1/home", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found", http.StatusNotFound)
	})
	c := newTestClient(t, mux)

	_, err := c.Home()
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "user not found", apiErr.Body)
	assert.Contains(t, err.Error(), "GET /hallucinations/v1/home: 404")
}

func TestDecodeError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hallucinations/v1/hashtags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hashtags": [`))
	})
	c := newTestClient(t, mux)

	_, err := c.Hashtags()
	assert.ErrorContains(t, err, "decode")
}

func TestOverview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hallucinations/v1/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"user": {"user_id": 9, "name": "Lee"},
			"my_team_card": {"org_id": 2, "team_name": "Infra", "leader_id": 9},
			"my_profile_card": {"user_id": 9, "name": "Lee"},
			"trending_hashtags": [{"hashtag_id": 4, "tag_name": "k8s"}]
		}`))
	})
	mux.HandleFunc("/api/hallucinations/v1/hashtags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hashtags": [{"hashtag_id": 4, "tag_name": "k8s"}, {"hashtag_id": 5, "tag_name": "go"}]}`))
	})
	c := newTestClient(t, mux)

	ov, err := c.Overview()
	require.NoError(t, err)
	assert.Equal(t, 9, ov.Home.User.UserID)
	assert.Len(t, ov.Catalog.Hashtags, 2)

	cards := ov.Home.Cards()
	require.Len(t, cards, 2)
	assert.True(t, cards[1].CanEdit, "viewer leads the team")
}

func TestOverviewFailsWhenEitherFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hallucinations/v1/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/hallucinations/v1/hashtags", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)

	_, err := c.Overview()
	assert.ErrorContains(t, err, "hashtags")
}
