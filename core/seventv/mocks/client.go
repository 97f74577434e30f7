package mocks

import (
	"context"

	"emote-manager/core/seventv"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of seventv.Client
type Client struct {
	mock.Mock
}

func (m *Client) UserID(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *Client) User(ctx context.Context, id string) (*seventv.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*seventv.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Emotes(ctx context.Context, ids []string) ([]seventv.Emote, error) {
	args := m.Called(ctx, ids)
	if emotes, ok := args.Get(0).([]seventv.Emote); ok {
		return emotes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SearchEmotes(ctx context.Context, query string, limit int) ([]seventv.Emote, error) {
	args := m.Called(ctx, query, limit)
	if emotes, ok := args.Get(0).([]seventv.Emote); ok {
		return emotes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ModifyEmoteSet(ctx context.Context, setID string, action seventv.ListItemAction, emoteID, rename string) ([]seventv.Emote, error) {
	args := m.Called(ctx, setID, action, emoteID, rename)
	if emotes, ok := args.Get(0).([]seventv.Emote); ok {
		return emotes, args.Error(1)
	}
	return nil, args.Error(1)
}
