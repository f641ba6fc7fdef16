package core

import (
	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// ComposeExplain assembles the explainability trace: header fields first,
// rule hits in backend order, then the raw source snippets. The alert label
// comes straight from alert_eligible; confidence never feeds into it. A nil
// result means the backend has no explain data yet and yields HasData=false.
func ComposeExplain(res *schema.ExplainResult, precision int) schema.ExplainView {
	if res == nil {
		return schema.ExplainView{}
	}

	view := schema.ExplainView{
		HasData:       true,
		Readiness:     contract.FormatOptFloat(res.ReadinessScore, precision),
		ConfidencePct: contract.RoundPercent(res.Confidence),
		AlertEligible: res.AlertEligible,
		AlertLabel:    schema.ExplainNotEligibleLabel,
		AlertReason:   res.AlertReason,
		RuleHits:      res.RuleHits,
	}
	if res.AlertEligible {
		view.AlertLabel = schema.ExplainEligibleLabel
	}
	for _, snippet := range res.SourceSnippets {
		view.SourceSnippets = append(view.SourceSnippets, snippet.Snippet)
	}
	return view
}
