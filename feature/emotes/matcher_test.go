package emotes_test

import (
	"testing"

	"emote-manager/feature/emotes"

	"github.com/stretchr/testify/assert"
)

// fixedScorer scores from a lookup table keyed by "query/candidate" and
// returns zero for anything unknown.
type fixedScorer map[string]int

func (s fixedScorer) Score(query, candidate string) int {
	return s[query+"/"+candidate]
}

func catalogFixture() []emotes.Emote {
	return []emotes.Emote{
		{ID: "642839073ff2b562db16cad2", Name: "wha"},
		{ID: "60ae958e229664e8667aea38", Name: "catJAM"},
		{ID: "60ae2b747c14b0dbfb4e3f34", Name: "PogU"},
	}
}

func TestMatchCatalogExactMatchCarriesRenameIntent(t *testing.T) {
	result := emotes.MatchCatalog(catalogFixture(), []emotes.Emote{{Name: "catJAM"}}, fixedScorer{})

	assert.Len(t, result.Matched, 1)
	assert.Equal(t, "60ae958e229664e8667aea38", result.Matched[0].ID)
	assert.Equal(t, "catJAM", result.Matched[0].Rename)
	assert.Empty(t, result.Fuzzy)
	assert.Empty(t, result.NotFound)
}

func TestMatchCatalogIsCaseSensitive(t *testing.T) {
	scores := fixedScorer{"catjam/catJAM": 91}
	result := emotes.MatchCatalog(catalogFixture(), []emotes.Emote{{Name: "catjam"}}, scores)

	assert.Empty(t, result.Matched)
	assert.Len(t, result.Fuzzy, 1)
	assert.Equal(t, "catJAM", result.Fuzzy[0].Fuzzy)
	assert.Equal(t, 91, result.Fuzzy[0].Score)
}

func TestMatchCatalogCutoffBoundary(t *testing.T) {
	// 70 clears the cutoff, 69 does not.
	at := emotes.MatchCatalog(catalogFixture(), []emotes.Emote{{Name: "wah"}}, fixedScorer{"wah/wha": 70})
	assert.Len(t, at.Fuzzy, 1)
	assert.Empty(t, at.NotFound)

	below := emotes.MatchCatalog(catalogFixture(), []emotes.Emote{{Name: "wah"}}, fixedScorer{"wah/wha": 69})
	assert.Empty(t, below.Fuzzy)
	assert.Len(t, below.NotFound, 1)
	assert.Equal(t, "wah", below.NotFound[0].Name)
}

func TestMatchCatalogTieBreaksOnCatalogOrder(t *testing.T) {
	scores := fixedScorer{
		"xyz/wha":    80,
		"xyz/catJAM": 80,
		"xyz/PogU":   80,
	}
	result := emotes.MatchCatalog(catalogFixture(), []emotes.Emote{{Name: "xyz"}}, scores)

	assert.Len(t, result.Fuzzy, 1)
	assert.Equal(t, "wha", result.Fuzzy[0].Fuzzy)
}

func TestMatchCatalogEveryQueryLandsInOneBucket(t *testing.T) {
	queries := []emotes.Emote{
		{Name: "wha"},
		{Name: "wah"},
		{Name: "nothing-alike"},
	}
	result := emotes.MatchCatalog(catalogFixture(), queries, fixedScorer{"wah/wha": 85})

	total := len(result.Matched) + len(result.Fuzzy) + len(result.NotFound)
	assert.Equal(t, len(queries), total)
}

func TestMatchCatalogDuplicateNamesFirstEntryWins(t *testing.T) {
	catalog := []emotes.Emote{
		{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "twin"},
		{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: "twin"},
	}
	result := emotes.MatchCatalog(catalog, []emotes.Emote{{Name: "twin"}}, fixedScorer{})

	assert.Len(t, result.Matched, 1)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa", result.Matched[0].ID)
}
