// Package cache provides the cache-aside layer in front of the upstream API.
//
// It exposes a narrow Store interface (get/set with TTL) backed by Redis,
// plus a generic GetOrSet helper implementing the read-through pattern with
// JSON-encoded values.
//
// # TTL tiers
//
// Two expiry tiers are configured: "short" for near-real-time data such as a
// channel's live emote catalog, and "long" for near-static data such as
// user-id lookups and editor lists. Resolver code picks the tier per key.
//
// # Consistency
//
// There is no single-flight de-duplication and no distributed locking.
// Concurrent misses on the same key may both hit upstream and both write the
// cache; the last write wins. Failures from the fill function are never
// cached.
package cache
