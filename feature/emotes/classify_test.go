package emotes_test

import (
	"testing"

	"emote-manager/feature/emotes"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTargetsSplitsIDsAndNames(t *testing.T) {
	ids, queries := emotes.ClassifyTargets([]string{
		"642839073ff2b562db16cad2",
		"catJAM",
		"https://7tv.app/emotes/60ae958e229664e8667aea38",
		"AbCdEf0123456789aBcDeF01",
	})

	assert.Len(t, ids, 3)
	assert.Equal(t, "642839073ff2b562db16cad2", ids[0].ID)
	assert.Equal(t, "60ae958e229664e8667aea38", ids[1].ID)
	assert.Equal(t, "AbCdEf0123456789aBcDeF01", ids[2].ID)

	assert.Len(t, queries, 1)
	assert.Equal(t, "catJAM", queries[0].Name)
}

func TestClassifyTargetsRejectsNearMissIDs(t *testing.T) {
	// 23 chars, 25 chars, non-hex: all name queries.
	_, queries := emotes.ClassifyTargets([]string{
		"642839073ff2b562db16cad",
		"642839073ff2b562db16cad2a",
		"642839073ff2b562db16cadZ",
	})
	assert.Len(t, queries, 3)
}

func TestClassifyTargetsLinkWithoutIDIsAQuery(t *testing.T) {
	ids, queries := emotes.ClassifyTargets([]string{"https://7tv.app/emotes"})

	assert.Empty(t, ids)
	assert.Len(t, queries, 1)
	// The query keeps the raw token, not the parsed path segment.
	assert.Equal(t, "https://7tv.app/emotes", queries[0].Name)
}

func TestClassifyTargetsPreservesOrder(t *testing.T) {
	ids, queries := emotes.ClassifyTargets([]string{
		"zzz", "642839073ff2b562db16cad2", "aaa", "60ae958e229664e8667aea38",
	})

	assert.Equal(t, []string{"642839073ff2b562db16cad2", "60ae958e229664e8667aea38"}, []string{ids[0].ID, ids[1].ID})
	assert.Equal(t, []string{"zzz", "aaa"}, []string{queries[0].Name, queries[1].Name})
}
