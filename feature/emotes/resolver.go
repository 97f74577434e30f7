package emotes

import (
	"context"
	"errors"
	"sort"
	"strings"

	"emote-manager/core/cache"
	"emote-manager/core/errcat"
	"emote-manager/core/seventv"
)

// Resolver wraps every upstream read in the cache-aside pattern with tiered
// TTLs. Each method returns a typed *errcat.Error cause on failure and never
// caches failed lookups.
type Resolver struct {
	client      seventv.Client
	store       cache.Store
	ttl         cache.Config
	searchLimit int
	errors      *errcat.Catalog
}

// NewResolver creates a resolver over the given upstream client and cache.
// searchLimit is the candidate page size for name searches; zero or negative
// falls back to the default.
func NewResolver(client seventv.Client, store cache.Store, ttl cache.Config, searchLimit int, errs *errcat.Catalog) *Resolver {
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	return &Resolver{client: client, store: store, ttl: ttl, searchLimit: searchLimit, errors: errs}
}

// upstreamErr maps raw client failures: API-reported errors become the
// generic descriptor with the upstream text kept in the trace, transport
// failures map to the unreachable code.
func (r *Resolver) upstreamErr(err error) *errcat.Error {
	var apiErr *seventv.Error
	if errors.As(err, &apiErr) {
		return r.errors.Wrap(apiErr)
	}
	e := r.errors.New(errcat.CodeUpstreamUnreachable)
	e.Trace = err.Error()
	return e
}

// defaultSearchLimit is the candidate page size for name searches when the
// configuration does not set one.
const defaultSearchLimit = 300

// UserID resolves a login or display name to the upstream user id.
func (r *Resolver) UserID(ctx context.Context, query string) (string, error) {
	return cache.GetOrSet(ctx, r.store, "7tv_id_"+query, r.ttl.LongTTL(),
		func(ctx context.Context) (string, error) {
			id, err := r.client.UserID(ctx, query)
			if err != nil {
				return "", r.upstreamErr(err)
			}
			if id == "" || id == zeroObjectID {
				return "", r.errors.New(errcat.CodeUserNotFound)
			}
			return id, nil
		})
}

// zeroObjectID is the upstream's all-zero object identifier, returned for
// missing users by some API versions.
const zeroObjectID = "000000000000000000000000"

// ChannelEmotes returns the channel's live catalog: the emotes of the active
// emote set of the user's first linked connection. Short TTL tier.
func (r *Resolver) ChannelEmotes(ctx context.Context, userID string) ([]Emote, error) {
	return cache.GetOrSet(ctx, r.store, "channel_emotes_"+userID, r.ttl.ShortTTL(),
		func(ctx context.Context) ([]Emote, error) {
			user, err := r.fetchUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			if len(user.Connections) == 0 {
				return nil, r.errors.New(errcat.CodeNoConnection)
			}

			// The active set is keyed by the first linked connection.
			setID := user.Connections[0].EmoteSetID
			for _, set := range user.EmoteSets {
				if set.ID != setID {
					continue
				}
				if len(set.Emotes) == 0 {
					break
				}
				return toEmotes(set.Emotes), nil
			}
			return nil, r.errors.New(errcat.CodeEmptyChannel)
		})
}

// OwnerEmotes returns the emotes owned (uploaded) by the user.
func (r *Resolver) OwnerEmotes(ctx context.Context, userID string) ([]Emote, error) {
	return cache.GetOrSet(ctx, r.store, "owner_emotes_"+userID, r.ttl.LongTTL(),
		func(ctx context.Context) ([]Emote, error) {
			user, err := r.fetchUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			if len(user.OwnedEmotes) == 0 {
				return nil, r.errors.New(errcat.CodeEmptyOwned)
			}
			return toEmotes(user.OwnedEmotes), nil
		})
}

// ChannelEditors returns the usernames with editor rights on the channel.
func (r *Resolver) ChannelEditors(ctx context.Context, userID string) ([]string, error) {
	return cache.GetOrSet(ctx, r.store, "channel_editors_"+userID, r.ttl.LongTTL(),
		func(ctx context.Context) ([]string, error) {
			user, err := r.fetchUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			if len(user.Editors) == 0 {
				return nil, r.errors.New(errcat.CodeNoEditors)
			}
			editors := make([]string, 0, len(user.Editors))
			for _, e := range user.Editors {
				editors = append(editors, e.Username)
			}
			return editors, nil
		})
}

// EditorAccess returns the channels the user can edit, lowercased.
func (r *Resolver) EditorAccess(ctx context.Context, userID string) ([]string, error) {
	return cache.GetOrSet(ctx, r.store, "editor_access_"+userID, r.ttl.LongTTL(),
		func(ctx context.Context) ([]string, error) {
			user, err := r.fetchUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			if len(user.EditorOf) == 0 {
				return nil, r.errors.New(errcat.CodeNoEditorAccess)
			}
			channels := make([]string, 0, len(user.EditorOf))
			for _, e := range user.EditorOf {
				channels = append(channels, strings.ToLower(e.DisplayName))
			}
			return channels, nil
		})
}

// ActiveEmoteSetID returns the id of the emote set bound to the user's first
// linked connection.
func (r *Resolver) ActiveEmoteSetID(ctx context.Context, userID string) (string, error) {
	return cache.GetOrSet(ctx, r.store, "active_emote_setid_"+userID, r.ttl.LongTTL(),
		func(ctx context.Context) (string, error) {
			user, err := r.fetchUser(ctx, userID)
			if err != nil {
				return "", err
			}
			if len(user.Connections) == 0 {
				return "", r.errors.New(errcat.CodeNoConnection)
			}
			return user.Connections[0].EmoteSetID, nil
		})
}

// SearchEmote resolves a free-text name to the best upstream candidate:
// highest channel count first; among case-insensitive matches an exact-case
// match is preferred.
func (r *Resolver) SearchEmote(ctx context.Context, name string) (Emote, error) {
	return cache.GetOrSet(ctx, r.store, "emote_search_"+name, r.ttl.LongTTL(),
		func(ctx context.Context) (Emote, error) {
			candidates, err := r.client.SearchEmotes(ctx, name, r.searchLimit)
			if err != nil {
				return Emote{}, r.upstreamErr(err)
			}

			sort.SliceStable(candidates, func(i, j int) bool {
				return candidates[i].ChannelCount > candidates[j].ChannelCount
			})

			var pick *seventv.Emote
			for i := range candidates {
				c := &candidates[i]
				if !strings.EqualFold(c.Name, name) {
					continue
				}
				if c.Name == name {
					pick = c
					break
				}
				if pick == nil {
					pick = c
				}
			}
			if pick == nil {
				return Emote{}, r.errors.New(errcat.CodeEmoteNotFound)
			}
			return Emote{ID: pick.ID, Name: pick.Name}, nil
		})
}

// Emote fetches a single emote by id.
func (r *Resolver) Emote(ctx context.Context, id string) (Emote, error) {
	return cache.GetOrSet(ctx, r.store, "emote_get_"+id, r.ttl.LongTTL(),
		func(ctx context.Context) (Emote, error) {
			found, err := r.client.Emotes(ctx, []string{id})
			if err != nil {
				return Emote{}, r.upstreamErr(err)
			}
			for _, e := range found {
				if e.ID == id {
					return Emote{ID: e.ID, Name: e.Name, Tags: e.Tags}, nil
				}
			}
			return Emote{}, r.errors.New(errcat.CodeEmoteNotFound)
		})
}

// AddEmote adds one emote to an emote set. Never cached. Upstream-reported
// failures surface with upstream's verbatim message.
func (r *Resolver) AddEmote(ctx context.Context, emoteID, setID, rename string) ([]Emote, error) {
	result, err := r.client.ModifyEmoteSet(ctx, setID, seventv.ActionAdd, emoteID, rename)
	return r.mutationResult(result, err)
}

// RemoveEmote removes one emote from an emote set. Never cached.
func (r *Resolver) RemoveEmote(ctx context.Context, emoteID, setID string) ([]Emote, error) {
	result, err := r.client.ModifyEmoteSet(ctx, setID, seventv.ActionRemove, emoteID, "")
	return r.mutationResult(result, err)
}

func (r *Resolver) mutationResult(result []seventv.Emote, err error) ([]Emote, error) {
	if err != nil {
		var apiErr *seventv.Error
		if errors.As(err, &apiErr) {
			return nil, r.errors.Upstream(apiErr.Message)
		}
		e := r.errors.New(errcat.CodeUpstreamUnreachable)
		e.Trace = err.Error()
		return nil, e
	}
	if result == nil {
		return nil, r.errors.New(errcat.CodeEmptyPayload)
	}
	return toEmotes(result), nil
}

// fetchUser loads the full user detail and maps the absent-user case.
func (r *Resolver) fetchUser(ctx context.Context, userID string) (*seventv.User, error) {
	user, err := r.client.User(ctx, userID)
	if err != nil {
		return nil, r.upstreamErr(err)
	}
	if user == nil {
		return nil, r.errors.New(errcat.CodeUserNotFound)
	}
	return user, nil
}

func toEmotes(list []seventv.Emote) []Emote {
	out := make([]Emote, 0, len(list))
	for _, e := range list {
		out = append(out, Emote{ID: e.ID, Name: e.Name, Tags: e.Tags})
	}
	return out
}
