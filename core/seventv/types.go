package seventv

// ListItemAction selects the emote-set mutation to perform.
type ListItemAction string

const (
	ActionAdd    ListItemAction = "ADD"
	ActionRemove ListItemAction = "REMOVE"
)

// Emote is a single upstream emote entity.
type Emote struct {
	ID   string
	Name string
	// Tags are the searchable labels attached to the emote.
	Tags []string
	// ChannelCount is the number of channels using the emote. It is the
	// popularity signal used to rank name-search candidates.
	ChannelCount int
}

// Connection is a linked external (Twitch) account of an upstream user.
type Connection struct {
	// EmoteSetID is the emote set active for this connection.
	EmoteSetID string
}

// EmoteSet is a named collection of emotes.
type EmoteSet struct {
	ID     string
	Emotes []Emote
}

// Editor is a user granted edit rights on a channel, or a channel the user
// can edit (for editor-of listings).
type Editor struct {
	Username    string
	DisplayName string
}

// User is the full upstream user detail record.
type User struct {
	ID          string
	Connections []Connection
	EmoteSets   []EmoteSet
	OwnedEmotes []Emote
	Editors     []Editor
	EditorOf    []Editor
}

// Error is a failure reported by the upstream API itself, as opposed to a
// transport failure. The message is upstream's verbatim text.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
