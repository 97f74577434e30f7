package errcat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Error codes used across the service. The user-facing text for each code
// lives in the catalog file, not in code.
const (
	CodeUpstreamUnreachable = "7001"
	CodeUserNotFound        = "7002"
	CodeNoConnection        = "7003"
	CodeEmptyChannel        = "7004"
	CodeEmptyOwned          = "7005"
	CodeNoEditors           = "7006"
	CodeNoEditorAccess      = "7007"
	CodeEmoteNotFound       = "7008"
	CodeEmptyTargetList     = "7010"
	CodeMultiTargetRename   = "7011"
	CodePermissionDenied    = "7012"
	CodeEmptyPayload        = "7013"
)

// GenericMessage is returned for failures that have no catalog entry.
// The internal diagnostic is kept in the trace field, never in the message.
const GenericMessage = "An unexpected error has occurred. Please try again later."

// Error is a user-facing error descriptor.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Trace   string `json:"trace,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Catalog holds the process-wide error descriptors. It is loaded once at
// startup and immutable afterwards.
type Catalog struct {
	byCode map[string]Error
}

// Load reads the error catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read error catalog: %w", err)
	}

	var entries []Error
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse error catalog: %w", err)
	}

	byCode := make(map[string]Error, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e
	}
	return &Catalog{byCode: byCode}, nil
}

// New returns the catalog error for the given code. Unknown codes fall back
// to the generic message with the code preserved in the trace.
func (c *Catalog) New(code string) *Error {
	if e, ok := c.byCode[code]; ok {
		return &Error{Code: e.Code, Message: e.Message}
	}
	return &Error{Message: GenericMessage, Trace: "unknown error code " + code}
}

// Upstream wraps an upstream failure message as a descriptor. The upstream
// text is shown verbatim, matching what the provider told us.
func (c *Catalog) Upstream(message string) *Error {
	return &Error{Message: message}
}

// Wrap converts any error into a descriptor. Catalog errors pass through
// unchanged; everything else becomes the generic message with the original
// error retained as trace.
func (c *Catalog) Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Message: GenericMessage, Trace: err.Error()}
}
