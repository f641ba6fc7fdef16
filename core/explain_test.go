package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/schema"
)

func TestComposeExplainNilResult(t *testing.T) {
	view := ComposeExplain(nil, 1)

	assert.False(t, view.HasData)
	assert.Empty(t, view.RuleHits)
}

func TestComposeExplain(t *testing.T) {
	res := &schema.ExplainResult{
		ReadinessScore: fptr(7.4),
		Confidence:     0.82,
		AlertEligible:  true,
		AlertReason:    "3 rules fired in the last 30 days",
		RuleHits: []schema.ExplainRuleHit{
			{RuleName: "hiring_spike", Snippet: "VP Finance role", SourceSnippet: "We are hiring a VP Finance"},
			{RuleName: "s1_language", Snippet: "confidential S-1", SourceSnippet: "filed a confidential S-1"},
		},
		SourceSnippets: []schema.SourceSnippet{
			{Snippet: "We are hiring a VP Finance"},
		},
	}

	view := ComposeExplain(res, 1)

	require.True(t, view.HasData)
	assert.Equal(t, "7.4", view.Readiness)
	assert.Equal(t, 82, view.ConfidencePct)
	assert.Equal(t, schema.ExplainEligibleLabel, view.AlertLabel)
	assert.Equal(t, "3 rules fired in the last 30 days", view.AlertReason)
	require.Len(t, view.RuleHits, 2)
	assert.Equal(t, "hiring_spike", view.RuleHits[0].RuleName, "rule hits keep backend order")
	assert.Equal(t, []string{"We are hiring a VP Finance"}, view.SourceSnippets)
}

func TestComposeExplainLabelIgnoresConfidence(t *testing.T) {
	// Eligibility is an opaque backend decision; a high confidence must not
	// flip the label.
	res := &schema.ExplainResult{
		Confidence:    0.99,
		AlertEligible: false,
	}

	view := ComposeExplain(res, 1)

	assert.Equal(t, schema.ExplainNotEligibleLabel, view.AlertLabel)
	assert.False(t, view.AlertEligible)
}

func TestComposeExplainAbsentReadiness(t *testing.T) {
	res := &schema.ExplainResult{Confidence: 0.5}

	view := ComposeExplain(res, 1)

	assert.Equal(t, schema.AbsentValue, view.Readiness)
}
