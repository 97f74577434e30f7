package seventv

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"
)

// Client defines the typed operations against the upstream GraphQL API.
type Client interface {
	// UserID resolves a login or display name to the upstream user id.
	UserID(ctx context.Context, query string) (string, error)
	// User fetches the full user details (connections, emote sets, owned
	// emotes, editors, editor-of).
	User(ctx context.Context, id string) (*User, error)
	// Emotes fetches emotes by id.
	Emotes(ctx context.Context, ids []string) ([]Emote, error)
	// SearchEmotes searches emotes by name, returning up to limit candidates.
	SearchEmotes(ctx context.Context, query string, limit int) ([]Emote, error)
	// ModifyEmoteSet adds or removes one emote in an emote set and returns
	// the post-mutation emote list of the set.
	ModifyEmoteSet(ctx context.Context, setID string, action ListItemAction, emoteID, rename string) ([]Emote, error)
}

const (
	queryUserID = `
query QueryUserID($query: String!) {
	users(query: $query) {
		id
	}
}`

	queryFullUserDetails = `
query GetFullUserDetails($id: ObjectID!) {
	user(id: $id) {
		id
		connections {
			emote_set_id
		}
		emote_sets {
			id
			emotes {
				id
				name
				data {
					tags
				}
			}
		}
		owned_emotes {
			id
			name
			tags
		}
		editors {
			user {
				username
			}
		}
		editor_of {
			user {
				username
				display_name
			}
		}
	}
}`

	queryEmotesByID = `
query GetEmotes($list: [ObjectID!]!) {
	emotesByID(list: $list) {
		id
		name
		tags
	}
}`

	querySearchEmotes = `
query QueryEmotes($query: String!, $limit: Int) {
	emotes(query: $query, limit: $limit) {
		items {
			id
			name
			channels {
				total
			}
		}
	}
}`

	mutationModifyEmoteSet = `
mutation ModifyEmote($id: ObjectID!, $action: ListItemAction!, $emote_id: ObjectID!, $name: String) {
	emoteSet(id: $id) {
		emotes(id: $emote_id, action: $action, name: $name) {
			id
			name
		}
	}
}`
)

// client is the machinebox/graphql-backed implementation.
type client struct {
	gql   *graphql.Client
	token string
}

// NewClient creates a new upstream client based on the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts; a hung upstream must not hang a request.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeoutDuration,
	}

	return &client{
		gql:   graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(httpClient)),
		token: cfg.Token,
	}
}

// run executes a request and normalizes upstream-reported errors into *Error.
func (c *client) run(ctx context.Context, req *graphql.Request, resp any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	err := c.gql.Run(ctx, req, resp)
	if err == nil {
		return nil
	}
	// machinebox prefixes GraphQL-level errors with "graphql: ".
	if msg, ok := strings.CutPrefix(err.Error(), "graphql: "); ok {
		return &Error{Message: msg}
	}
	return fmt.Errorf("upstream request failed: %w", err)
}

func (c *client) UserID(ctx context.Context, query string) (string, error) {
	req := graphql.NewRequest(queryUserID)
	req.Var("query", query)

	var resp struct {
		Users []struct {
			ID string `json:"id"`
		} `json:"users"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Users) == 0 {
		return "", nil
	}
	return resp.Users[0].ID, nil
}

func (c *client) User(ctx context.Context, id string) (*User, error) {
	req := graphql.NewRequest(queryFullUserDetails)
	req.Var("id", id)

	var resp struct {
		User *struct {
			ID          string `json:"id"`
			Connections []struct {
				EmoteSetID string `json:"emote_set_id"`
			} `json:"connections"`
			EmoteSets []struct {
				ID     string `json:"id"`
				Emotes []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
					Data struct {
						Tags []string `json:"tags"`
					} `json:"data"`
				} `json:"emotes"`
			} `json:"emote_sets"`
			OwnedEmotes []struct {
				ID   string   `json:"id"`
				Name string   `json:"name"`
				Tags []string `json:"tags"`
			} `json:"owned_emotes"`
			Editors []struct {
				User struct {
					Username string `json:"username"`
				} `json:"user"`
			} `json:"editors"`
			EditorOf []struct {
				User struct {
					Username    string `json:"username"`
					DisplayName string `json:"display_name"`
				} `json:"user"`
			} `json:"editor_of"`
		} `json:"user"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, nil
	}

	user := &User{ID: resp.User.ID}
	for _, conn := range resp.User.Connections {
		user.Connections = append(user.Connections, Connection{EmoteSetID: conn.EmoteSetID})
	}
	for _, set := range resp.User.EmoteSets {
		emoteSet := EmoteSet{ID: set.ID}
		for _, e := range set.Emotes {
			emoteSet.Emotes = append(emoteSet.Emotes, Emote{ID: e.ID, Name: e.Name, Tags: e.Data.Tags})
		}
		user.EmoteSets = append(user.EmoteSets, emoteSet)
	}
	for _, e := range resp.User.OwnedEmotes {
		user.OwnedEmotes = append(user.OwnedEmotes, Emote{ID: e.ID, Name: e.Name, Tags: e.Tags})
	}
	for _, ed := range resp.User.Editors {
		user.Editors = append(user.Editors, Editor{Username: ed.User.Username})
	}
	for _, ed := range resp.User.EditorOf {
		user.EditorOf = append(user.EditorOf, Editor{
			Username:    ed.User.Username,
			DisplayName: ed.User.DisplayName,
		})
	}
	return user, nil
}

func (c *client) Emotes(ctx context.Context, ids []string) ([]Emote, error) {
	req := graphql.NewRequest(queryEmotesByID)
	req.Var("list", ids)

	var resp struct {
		EmotesByID []struct {
			ID   string   `json:"id"`
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		} `json:"emotesByID"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}

	emotes := make([]Emote, 0, len(resp.EmotesByID))
	for _, e := range resp.EmotesByID {
		emotes = append(emotes, Emote{ID: e.ID, Name: e.Name, Tags: e.Tags})
	}
	return emotes, nil
}

func (c *client) SearchEmotes(ctx context.Context, query string, limit int) ([]Emote, error) {
	req := graphql.NewRequest(querySearchEmotes)
	req.Var("query", query)
	req.Var("limit", limit)

	var resp struct {
		Emotes struct {
			Items []struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				Channels struct {
					Total int `json:"total"`
				} `json:"channels"`
			} `json:"items"`
		} `json:"emotes"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}

	emotes := make([]Emote, 0, len(resp.Emotes.Items))
	for _, e := range resp.Emotes.Items {
		emotes = append(emotes, Emote{ID: e.ID, Name: e.Name, ChannelCount: e.Channels.Total})
	}
	return emotes, nil
}

func (c *client) ModifyEmoteSet(ctx context.Context, setID string, action ListItemAction, emoteID, rename string) ([]Emote, error) {
	req := graphql.NewRequest(mutationModifyEmoteSet)
	req.Var("id", setID)
	req.Var("action", string(action))
	req.Var("emote_id", emoteID)
	req.Var("name", rename)

	var resp struct {
		EmoteSet *struct {
			Emotes []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"emotes"`
		} `json:"emoteSet"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.EmoteSet == nil {
		return nil, nil
	}

	emotes := make([]Emote, 0, len(resp.EmoteSet.Emotes))
	for _, e := range resp.EmoteSet.Emotes {
		emotes = append(emotes, Emote{ID: e.ID, Name: e.Name})
	}
	return emotes, nil
}
