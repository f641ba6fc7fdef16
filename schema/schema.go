// Package schema has the wire records, render models and constants shared by
// all parts of intentctl. Wire types mirror the intent service's REST contract
// and are treated as immutable snapshots once decoded.
package schema

import "time"

// Tenant is a workspace that owns companies, API keys and analytics.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// APIKey is an issued credential for a tenant.
type APIKey struct {
	Key string `json:"key"`
}

// Company is a tracked company inside a tenant.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyRequest is the payload for creating a company.
type CompanyRequest struct {
	Name            string  `json:"name"`
	Domain          string  `json:"domain"`
	GreenhouseBoard *string `json:"greenhouse_board,omitempty"`
}

// Evidence is a textual snippet plus the rule triggers that fired on it.
// An empty Triggers slice marks a drift-based detection with no explicit rule.
type Evidence struct {
	Snippet  string   `json:"snippet"`
	Triggers []string `json:"triggers"`
}

// IntentRecord is one detected intent for a company, with supporting evidence
// in the order the backend ranked it.
type IntentRecord struct {
	IntentType  string     `json:"intent_type"`
	Confidence  float64    `json:"confidence"`
	Explanation string     `json:"explanation"`
	Evidence    []Evidence `json:"evidence"`
}

// SignalEvent is a raw ingested signal. Only the timestamp matters to this
// client; it anchors the demo outcome offsets.
type SignalEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OutcomeRequest records a real-world outcome used by the backtester.
type OutcomeRequest struct {
	OutcomeType string `json:"outcome_type"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
}

// BacktestMetric is the backend's per-outcome-type backtest result.
// AvgLagDays is nil when no matched outcome produced a lag measurement.
type BacktestMetric struct {
	OutcomeType string   `json:"outcome_type"`
	Outcomes    int      `json:"outcomes"`
	Matched     int      `json:"matched"`
	MatchRate   float64  `json:"match_rate"`
	AvgLagDays  *float64 `json:"avg_lag_days"`
}

// BacktestKPI carries ranking-quality figures for a backtest run.
type BacktestKPI struct {
	K                    int      `json:"k"`
	PrecisionAtK         float64  `json:"precision_at_k"`
	MedianLeadTimeMonths *float64 `json:"median_lead_time_months"`
	FalsePositives       int      `json:"false_positives"`
}

// WatchlistEntry is one row of the raw per-tenant watchlist feed. The feed may
// carry several entries per company (one snapshot per pipeline run).
type WatchlistEntry struct {
	CompanyID      string   `json:"company_id"`
	CompanyName    string   `json:"company_name"`
	ReadinessScore *float64 `json:"readiness_score"`
	ScoreDelta     *float64 `json:"score_delta"`
	Confidence     *float64 `json:"confidence"`
	AlertEligible  bool     `json:"alert_eligible"`
	TopRuleHits    []string `json:"top_rule_hits"`
}

// TimelinePoint is one confidence sample of an intent-type time series.
type TimelinePoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
}

// TimelineSeries groups chronologically ascending points for one intent type.
type TimelineSeries struct {
	IntentType string          `json:"intent_type"`
	Points     []TimelinePoint `json:"points"`
}

// ReadinessPoint is one sample of a company's readiness history.
type ReadinessPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	ReadinessScore *float64  `json:"readiness_score"`
	DriftScore     *float64  `json:"drift_score"`
	RuleHits       int       `json:"rule_hits"`
}

// ExplainRuleHit is one rule that contributed to an intent detection.
type ExplainRuleHit struct {
	RuleName      string `json:"rule_name"`
	Snippet       string `json:"snippet"`
	SourceSnippet string `json:"source_snippet"`
}

// SourceSnippet is a raw evidence snippet backing an explanation.
type SourceSnippet struct {
	Snippet string `json:"snippet"`
}

// ExplainResult is the backend's explainability payload for a company's
// current primary intent. AlertEligible is authoritative; the client never
// recomputes eligibility from confidence.
type ExplainResult struct {
	ReadinessScore *float64         `json:"readiness_score"`
	Confidence     float64          `json:"confidence"`
	AlertEligible  bool             `json:"alert_eligible"`
	AlertReason    string           `json:"alert_reason"`
	RuleHits       []ExplainRuleHit `json:"rule_hits"`
	SourceSnippets []SourceSnippet  `json:"source_snippets"`
}

// PortfolioSummary aggregates the tenant-wide backtest report.
type PortfolioSummary struct {
	Companies            int      `json:"companies"`
	PrecisionAtKAvg      *float64 `json:"precision_at_k_avg"`
	MedianLeadTimeMonths *float64 `json:"median_lead_time_months"`
}

// PortfolioRow is one company's line in the tenant-wide backtest report.
type PortfolioRow struct {
	CompanyName          string   `json:"company_name"`
	S1Date               *string  `json:"s1_date"`
	PrecisionAtK         *float64 `json:"precision_at_k"`
	MedianLeadTimeMonths *float64 `json:"median_lead_time_months"`
	Status               string   `json:"status"`
}

// PortfolioReport is the full tenant-wide backtest report.
type PortfolioReport struct {
	Summary PortfolioSummary `json:"summary"`
	Rows    []PortfolioRow   `json:"rows"`
}

// Credentials is the persisted API key plus the tenant it was issued for.
// Both are stored and cleared together.
type Credentials struct {
	APIKey   string `json:"api_key"`
	TenantID string `json:"tenant_id"`
}
