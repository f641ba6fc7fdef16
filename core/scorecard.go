package core

import (
	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// BuildScorecard folds per-outcome-type backtest metrics and an optional KPI
// block into one scorecard. The overall rate is recomputed from the summed
// counts; per-row match_rate is taken from the backend as-is for the chart.
// An empty metrics slice yields HasData=false, which is distinct from a
// zero-valued scorecard.
func BuildScorecard(metrics []schema.BacktestMetric, kpi *schema.BacktestKPI) schema.Scorecard {
	card := schema.Scorecard{}
	if len(metrics) == 0 {
		return card
	}
	card.HasData = true

	for _, m := range metrics {
		card.TotalOutcomes += m.Outcomes
		card.TotalMatched += m.Matched
		card.Chart = append(card.Chart, schema.ChartRow{
			OutcomeType: m.OutcomeType,
			MatchRate:   m.MatchRate,
			Percent:     contract.RoundPercent(m.MatchRate),
		})
		card.Cards = append(card.Cards, schema.MetricCard{
			OutcomeType:  m.OutcomeType,
			Matched:      m.Matched,
			Outcomes:     m.Outcomes,
			MatchRatePct: contract.RoundPercent(m.MatchRate),
			AvgLagDays:   m.AvgLagDays,
		})
	}

	if card.TotalOutcomes > 0 {
		card.OverallMatchRate = float64(card.TotalMatched) / float64(card.TotalOutcomes)
	}
	card.AvgLeadTimeDays = averageLag(metrics)

	if kpi != nil {
		card.KPI = &schema.ScorecardKPI{
			K:                    kpi.K,
			PrecisionAtK:         kpi.PrecisionAtK,
			PrecisionAtKPct:      contract.RoundPercent(kpi.PrecisionAtK),
			MedianLeadTimeMonths: kpi.MedianLeadTimeMonths,
			FalsePositives:       kpi.FalsePositives,
		}
	}

	return card
}

// averageLag returns the mean of the present avg_lag_days values. When no
// metric carries a value the result is nil, never zero.
func averageLag(metrics []schema.BacktestMetric) *float64 {
	var sum float64
	var count int
	for _, m := range metrics {
		if m.AvgLagDays != nil {
			sum += *m.AvgLagDays
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}
