package emotes

import (
	"fmt"

	"emote-manager/core/errcat"
)

// Emote represents one emote flowing through a batch operation: a resolved
// upstream entity, an unresolved query, or a failure record. Identity is the
// ID when present, otherwise the Name.
type Emote struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Rename string   `json:"rename,omitempty"`

	// ErrorMessage carries the per-entity failure reason inside a batch.
	ErrorMessage string `json:"-"`
}

// Identifier returns the display identifier: rename if set, else name,
// else id, else empty.
func (e Emote) Identifier() string {
	if e.Rename != "" {
		return e.Rename
	}
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// PreviewString renders the emote with its CDN preview URL.
func (e Emote) PreviewString() string {
	return fmt.Sprintf("%s - ( https://cdn.7tv.app/emote/%s/4x.webp )", e.Name, e.ID)
}

// RenameString renders the rename target, or "Default Name" when empty.
func (e Emote) RenameString() string {
	if e.Rename == "" {
		return "Default Name"
	}
	return e.Rename
}

// FuzzyEmote is a near-match suggestion for a name that had no exact match.
type FuzzyEmote struct {
	Name  string `json:"name"`
	Fuzzy string `json:"fuzzy"`
	Score int    `json:"score"`
}

func (f FuzzyEmote) String() string {
	return fmt.Sprintf("%s => %s (%d)", f.Name, f.Fuzzy, f.Score)
}

// PreviewRequest is the body for POST /emotes/preview.
type PreviewRequest struct {
	TargetEmotes []string `json:"targetemotes"`
	Source       string   `json:"source,omitempty"`
}

// ModifyRequest is the body for the add, remove and rename endpoints.
type ModifyRequest struct {
	TargetEmotes  []string `json:"targetemotes"`
	TargetChannel string   `json:"targetchannel"`
	Source        string   `json:"source,omitempty"`
	Owner         string   `json:"owner,omitempty"`
	EmoteRename   string   `json:"emoterename"`
	DefaultName   bool     `json:"defaultname"`
	// Actor is the username requesting the change. When set, it must have
	// editor access on the target channel.
	Actor string `json:"actor,omitempty"`
}

// apiResponse is the uniform JSON envelope for every endpoint.
type apiResponse struct {
	Success bool          `json:"success"`
	Result  any           `json:"result"`
	Error   *errcat.Error `json:"error,omitempty"`
}
