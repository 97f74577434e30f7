package emotes

import (
	"net/url"
	"path"
	"regexp"
)

// objectIDPattern matches the upstream's 24-hex-character object identifiers.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ClassifyTargets splits raw tokens into already-an-ID emotes and name
// queries that still need resolution. Absolute http(s) URLs contribute their
// last path segment as the candidate identifier. Input order is preserved
// within each list. Pure; no network or cache access.
func ClassifyTargets(targets []string) (ids, queries []Emote) {
	for _, target := range targets {
		candidate := target
		if u, err := url.Parse(target); err == nil && u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https") {
			candidate = path.Base(u.Path)
		}

		if objectIDPattern.MatchString(candidate) {
			ids = append(ids, Emote{ID: candidate})
		} else {
			queries = append(queries, Emote{Name: target})
		}
	}
	return ids, queries
}
