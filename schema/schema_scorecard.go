package schema

// ScorecardKPI carries the optional ranking-quality block of a scorecard.
// PrecisionAtK keeps the exact value; PrecisionAtKPct is the rounded display
// form so table, CSV and JSON output agree.
type ScorecardKPI struct {
	K                    int      `json:"k"`
	PrecisionAtK         float64  `json:"precision_at_k"`
	PrecisionAtKPct      int      `json:"precision_at_k_pct"`
	MedianLeadTimeMonths *float64 `json:"median_lead_time_months"`
	FalsePositives       int      `json:"false_positives"`
}

// ChartRow is one bar of the match-rate chart, in backend metric order.
type ChartRow struct {
	OutcomeType string  `json:"outcome_type"`
	MatchRate   float64 `json:"match_rate"`
	Percent     int     `json:"percent"`
}

// MetricCard is the per-outcome-type detail card of a backtest report.
type MetricCard struct {
	OutcomeType  string   `json:"outcome_type"`
	Matched      int      `json:"matched"`
	Outcomes     int      `json:"outcomes"`
	MatchRatePct int      `json:"match_rate_pct"`
	AvgLagDays   *float64 `json:"avg_lag_days"`
}

// Scorecard is the folded backtest summary for one company. HasData is false
// when the backend returned no metrics at all; a zero-valued scorecard with
// HasData=true is a different, meaningful result.
type Scorecard struct {
	HasData          bool          `json:"has_data"`
	TotalOutcomes    int           `json:"total_outcomes"`
	TotalMatched     int           `json:"total_matched"`
	OverallMatchRate float64       `json:"overall_match_rate"`
	AvgLeadTimeDays  *float64      `json:"avg_lead_time_days"`
	KPI              *ScorecardKPI `json:"kpi,omitempty"`
	Chart            []ChartRow    `json:"chart"`
	Cards            []MetricCard  `json:"cards"`
}
