package schema

// FeedItem is one evidence-feed line derived from an intent's top evidence.
type FeedItem struct {
	IntentType  string `json:"intent_type"`
	Snippet     string `json:"snippet"`
	TriggerLine string `json:"trigger_line"`
}

// WatchlistRow is the display projection of one deduplicated watchlist entry.
// Numeric fields are pre-formatted so absent values render as AbsentValue
// instead of a misleading zero.
type WatchlistRow struct {
	CompanyID     string `json:"company_id"`
	CompanyName   string `json:"company_name"`
	Readiness     string `json:"readiness"`
	Delta         string `json:"delta"`
	Confidence    string `json:"confidence"`
	Alert         string `json:"alert"`
	AlertEligible bool   `json:"alert_eligible"`
	TopRules      string `json:"top_rules"`
}

// ExplainView is the composed explainability trace for one intent.
type ExplainView struct {
	HasData        bool             `json:"has_data"`
	Readiness      string           `json:"readiness"`
	ConfidencePct  int              `json:"confidence_pct"`
	AlertEligible  bool             `json:"alert_eligible"`
	AlertLabel     string           `json:"alert_label"`
	AlertReason    string           `json:"alert_reason"`
	RuleHits       []ExplainRuleHit `json:"rule_hits"`
	SourceSnippets []string         `json:"source_snippets"`
}

// CompanyView is everything the dashboard shows for one company. Intents are
// required; the remaining panels are best-effort and carry their own state.
type CompanyView struct {
	TenantID  string `json:"tenant_id"`
	CompanyID string `json:"company_id"`

	Intents []IntentRecord `json:"intents"`
	Feed    []FeedItem     `json:"feed"`

	Timeline      []TimelineSeries `json:"timeline"`
	TimelineState PanelState       `json:"timeline_state"`

	Readiness      []ReadinessPoint `json:"readiness"`
	ReadinessState PanelState       `json:"readiness_state"`

	Explain      ExplainView `json:"explain"`
	ExplainState PanelState  `json:"explain_state"`
}

// TenantView is the tenant-level dashboard: ranked watchlist plus the
// portfolio backtest report. PortfolioState distinguishes "no report yet"
// (run the backtest job first) from a present, possibly empty report.
type TenantView struct {
	TenantID string `json:"tenant_id"`

	Watchlist []WatchlistRow `json:"watchlist"`

	Portfolio      *PortfolioReport `json:"portfolio,omitempty"`
	PortfolioState PanelState       `json:"portfolio_state"`
}
