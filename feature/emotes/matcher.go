package emotes

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// fuzzyCutoff is the minimum similarity score (0-100) for a suggestion.
const fuzzyCutoff = 70

// Scorer computes a similarity score between a queried name and a catalog
// name on a 0-100 scale. It is pluggable so the scoring algorithm can be
// swapped without touching orchestration logic.
type Scorer interface {
	Score(query, candidate string) int
}

// WeightedScorer is the default Scorer, backed by fuzzywuzzy's weighted
// ratio.
type WeightedScorer struct{}

func (WeightedScorer) Score(query, candidate string) int {
	return fuzzy.WRatio(query, candidate)
}

// MatchResult is the partition of desired names against a catalog snapshot.
// Every input query lands in exactly one of the three buckets.
type MatchResult struct {
	// Matched holds exact name matches, carrying the requested name as the
	// rename intent.
	Matched []Emote
	// Fuzzy holds near-match suggestions that cleared the cutoff.
	Fuzzy []FuzzyEmote
	// NotFound holds queries with no exact or fuzzy candidate.
	NotFound []Emote
}

// MatchCatalog matches the queried names against the catalog. Matching is
// case-sensitive. Unmatched queries are scored against every catalog name;
// the first candidate in catalog order with the top score wins, giving
// deterministic tie-breaking. The catalog is never mutated.
func MatchCatalog(catalog []Emote, queries []Emote, scorer Scorer) MatchResult {
	byName := make(map[string]Emote, len(catalog))
	for _, e := range catalog {
		// Duplicate display names are tolerated; first entry wins.
		if _, ok := byName[e.Name]; !ok {
			byName[e.Name] = e
		}
	}

	var result MatchResult
	for _, q := range queries {
		if e, ok := byName[q.Name]; ok {
			result.Matched = append(result.Matched, Emote{
				ID:     e.ID,
				Name:   e.Name,
				Rename: q.Name,
			})
			continue
		}

		bestScore := -1
		bestName := ""
		for _, e := range catalog {
			if score := scorer.Score(q.Name, e.Name); score > bestScore {
				bestScore = score
				bestName = e.Name
			}
		}

		if bestScore >= fuzzyCutoff {
			result.Fuzzy = append(result.Fuzzy, FuzzyEmote{
				Name:  q.Name,
				Fuzzy: bestName,
				Score: bestScore,
			})
			continue
		}

		result.NotFound = append(result.NotFound, Emote{Name: q.Name})
	}
	return result
}
