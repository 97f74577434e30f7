// Package emotes implements the emote catalog management feature.
//
// It lets callers inspect and modify a channel's emote set on the upstream
// provider by mixing three kinds of target tokens in one request:
//  1. Object IDs: 24-hex-character upstream identifiers, used directly.
//  2. Links: http(s) URLs whose last path segment is the identifier.
//  3. Names: free text resolved against a channel catalog or global search.
//
// # Resolution
//
// All upstream reads go through the cache-aside Resolver (`core/cache` over
// Redis). Name tokens are matched against a catalog snapshot exactly first,
// then by fuzzy similarity; near misses come back as suggestions instead of
// silent failures.
//
// # Components
//
//   - Service: Orchestrates classification, resolution, per-emote mutations
//     and report assembly.
//   - Resolver: Cached reads and uncached mutations against the upstream.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /emotes/preview : Render CDN preview links for targets.
//   - GET  /emotes/searchemotes : List a channel's emote names.
//   - GET  /emotes/getchanneleditors : List a channel's editors.
//   - GET  /emotes/getusereditoraccess : List channels a user can edit.
//   - POST /emotes/add : Add emotes to a channel's active set.
//   - POST /emotes/remove : Remove emotes from a channel's active set.
//   - POST /emotes/rename : Rename a single emote (remove + re-add).
package emotes
