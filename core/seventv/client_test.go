package seventv_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"emote-manager/core/seventv"

	"github.com/stretchr/testify/assert"
)

// stubUpstream serves a fixed GraphQL response and captures the last request.
func stubUpstream(t *testing.T, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestClientUserID(t *testing.T) {
	srv, _ := stubUpstream(t, `{"data":{"users":[{"id":"642839073ff2b562db16cad2"}]}}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL})

	id, err := c.UserID(context.Background(), "foo")
	assert.NoError(t, err)
	assert.Equal(t, "642839073ff2b562db16cad2", id)
}

func TestClientUserIDNoResults(t *testing.T) {
	srv, _ := stubUpstream(t, `{"data":{"users":[]}}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL})

	id, err := c.UserID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Empty(t, id)
}

func TestClientGraphQLErrorIsTyped(t *testing.T) {
	srv, _ := stubUpstream(t, `{"errors":[{"message":"this emote is already in the set"}]}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL})

	_, err := c.ModifyEmoteSet(context.Background(), "set1", seventv.ActionAdd, "e1", "")

	var apiErr *seventv.Error
	assert.ErrorAs(t, err, &apiErr)
	// The transport prefix is stripped, the upstream text kept verbatim.
	assert.Equal(t, "this emote is already in the set", apiErr.Message)
}

func TestClientTransportFailureIsNotTyped(t *testing.T) {
	srv, _ := stubUpstream(t, `{}`)
	srv.Close()
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL, TimeoutSeconds: 1})

	_, err := c.UserID(context.Background(), "foo")
	assert.Error(t, err)

	var apiErr *seventv.Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestClientSearchEmotesMapsChannelCount(t *testing.T) {
	srv, _ := stubUpstream(t, `{"data":{"emotes":{"items":[
		{"id":"e1","name":"wha","channels":{"total":512}},
		{"id":"e2","name":"WHA","channels":{"total":12}}
	]}}}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL})

	emotes, err := c.SearchEmotes(context.Background(), "wha", 300)
	assert.NoError(t, err)
	assert.Len(t, emotes, 2)
	assert.Equal(t, 512, emotes[0].ChannelCount)
}

func TestClientSendsBearerToken(t *testing.T) {
	srv, captured := stubUpstream(t, `{"data":{"users":[]}}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL, Token: "token123"})

	_, err := c.UserID(context.Background(), "foo")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token123", captured.Header.Get("Authorization"))
}

func TestClientUserMapsNestedFields(t *testing.T) {
	srv, _ := stubUpstream(t, `{"data":{"user":{
		"id":"u1",
		"connections":[{"emote_set_id":"set1"}],
		"emote_sets":[{"id":"set1","emotes":[{"id":"e1","name":"wha","data":{"tags":["reaction"]}}]}],
		"owned_emotes":[{"id":"e2","name":"mine","tags":["own"]}],
		"editors":[{"user":{"username":"trustedmod"}}],
		"editor_of":[{"user":{"username":"forsen","display_name":"Forsen"}}]
	}}}`)
	c := seventv.NewClient(seventv.Config{Endpoint: srv.URL})

	user, err := c.User(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "set1", user.Connections[0].EmoteSetID)
	assert.Equal(t, []string{"reaction"}, user.EmoteSets[0].Emotes[0].Tags)
	assert.Equal(t, "mine", user.OwnedEmotes[0].Name)
	assert.Equal(t, "trustedmod", user.Editors[0].Username)
	assert.Equal(t, "Forsen", user.EditorOf[0].DisplayName)
}
