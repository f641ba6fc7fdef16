package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/schema"
)

func TestRankWatchlistDedup(t *testing.T) {
	entries := []schema.WatchlistEntry{
		{CompanyID: "1", ReadinessScore: fptr(5)},
		{CompanyID: "2", ReadinessScore: fptr(1)},
		{CompanyID: "1", ReadinessScore: fptr(9)},
	}

	ranked := RankWatchlist(entries)

	require.Len(t, ranked, 2)
	assert.Equal(t, "1", ranked[0].CompanyID, "first-seen position")
	assert.Equal(t, 9.0, *ranked[0].ReadinessScore, "last-seen value")
	assert.Equal(t, "2", ranked[1].CompanyID)
	assert.Equal(t, 1.0, *ranked[1].ReadinessScore)
}

func TestRankWatchlistEmpty(t *testing.T) {
	assert.Empty(t, RankWatchlist(nil))
}

func TestRankWatchlistNoDuplicates(t *testing.T) {
	entries := []schema.WatchlistEntry{
		{CompanyID: "a"},
		{CompanyID: "b"},
		{CompanyID: "c"},
	}

	ranked := RankWatchlist(entries)

	assert.Equal(t, entries, ranked)
}

func TestProjectWatchlistRows(t *testing.T) {
	entries := []schema.WatchlistEntry{
		{
			CompanyID:      "1",
			CompanyName:    "Acme AI",
			ReadinessScore: fptr(7.25),
			ScoreDelta:     fptr(0.5),
			Confidence:     fptr(0.82),
			AlertEligible:  true,
			TopRuleHits:    []string{"hiring_spike", "s1_language"},
		},
		{
			CompanyID:   "2",
			CompanyName: "Globex",
		},
	}

	rows := ProjectWatchlistRows(entries, 1, false)

	require.Len(t, rows, 2)
	assert.Equal(t, "7.2", rows[0].Readiness)
	assert.Equal(t, "0.5", rows[0].Delta)
	assert.Equal(t, "82%", rows[0].Confidence)
	assert.Equal(t, schema.AlertEligibleLabel, rows[0].Alert)
	assert.True(t, rows[0].AlertEligible)
	assert.Equal(t, "hiring_spike, s1_language", rows[0].TopRules)

	assert.Equal(t, schema.AbsentValue, rows[1].Readiness, "absent scores must not render as zero")
	assert.Equal(t, schema.AbsentValue, rows[1].Delta)
	assert.Equal(t, schema.AbsentValue, rows[1].Confidence)
	assert.Equal(t, schema.AlertHoldLabel, rows[1].Alert)
	assert.Equal(t, schema.AbsentValue, rows[1].TopRules)
}
