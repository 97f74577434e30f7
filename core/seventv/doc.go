// Package seventv is the typed client for the upstream emote provider's
// GraphQL API.
//
// The Client interface exposes one method per logical operation; the rest of
// the application never sees GraphQL documents or wire shapes. Failures
// reported by the API itself surface as *Error with upstream's verbatim
// message, while transport failures surface as wrapped plain errors.
package seventv
