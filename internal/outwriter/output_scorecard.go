package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// noBacktestMessage renders when no backtest has produced metrics yet.
const noBacktestMessage = "No backtest yet. Add outcomes and run it."

// PrintScorecard outputs the backtest scorecard, dispatching on the configured format.
func PrintScorecard(card schema.Scorecard, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, card)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScorecardCSV(w, card, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for scorecards. Use text, csv, or json")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScorecardTable(w, card, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeScorecardTable generates and writes the human-readable scorecard.
func writeScorecardTable(w io.Writer, card schema.Scorecard, cfg *contract.Config, fmtFloat func(float64) string) error {
	if !card.HasData {
		_, err := fmt.Fprintln(w, noBacktestMessage)
		return err
	}

	if _, err := fmt.Fprintf(w, "Outcomes checked: %d\n", card.TotalOutcomes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Matched intents:  %d\n", card.TotalMatched); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Match rate:       %s (%s)\n",
		contract.FormatPercent(card.OverallMatchRate),
		confidenceLabel(card.OverallMatchRate, cfg)); err != nil {
		return err
	}
	lead := schema.AbsentValue
	if card.AvgLeadTimeDays != nil {
		lead = fmtFloat(*card.AvgLeadTimeDays) + " days"
	}
	if _, err := fmt.Fprintf(w, "Avg lead time:    %s\n", lead); err != nil {
		return err
	}

	if card.KPI != nil {
		median := schema.AbsentValue
		if card.KPI.MedianLeadTimeMonths != nil {
			median = fmtFloat(*card.KPI.MedianLeadTimeMonths) + " months"
		}
		if _, err := fmt.Fprintf(w, "Precision@%d:     %d%%\n", card.KPI.K, card.KPI.PrecisionAtKPct); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Median lead time: %s\n", median); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "False positives:  %d\n", card.KPI.FalsePositives); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Outcome", "Matched", "Rate", "Bar", "Avg lag"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, row := range card.Chart {
		lag := schema.AbsentValue
		if card.Cards[i].AvgLagDays != nil {
			lag = fmtFloat(*card.Cards[i].AvgLagDays)
		}
		data = append(data, []string{
			row.OutcomeType,
			fmt.Sprintf("%d/%d", card.Cards[i].Matched, card.Cards[i].Outcomes),
			strconv.Itoa(row.Percent) + "%",
			matchRateBar(row.Percent),
			lag,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// matchRateBar draws a ten-slot bar for a whole-percent match rate.
func matchRateBar(percent int) string {
	filled := percent / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// confidenceLabel picks the colored or plain severity label for a rate.
func confidenceLabel(rate float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorConfidenceLabel(rate)
	}
	return contract.GetPlainConfidenceLabel(rate)
}

// writeScorecardCSV writes one row per outcome type plus a totals row.
func writeScorecardCSV(w io.Writer, card schema.Scorecard, fmtFloat func(float64) string) error {
	header := []string{"outcome_type", "matched", "outcomes", "match_rate", "avg_lag_days"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		if !card.HasData {
			return nil
		}
		for _, metric := range card.Cards {
			lag := ""
			if metric.AvgLagDays != nil {
				lag = fmtFloat(*metric.AvgLagDays)
			}
			rec := []string{
				metric.OutcomeType,
				strconv.Itoa(metric.Matched),
				strconv.Itoa(metric.Outcomes),
				strconv.Itoa(metric.MatchRatePct) + "%",
				lag,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		totalLag := ""
		if card.AvgLeadTimeDays != nil {
			totalLag = fmtFloat(*card.AvgLeadTimeDays)
		}
		return csvWriter.Write([]string{
			"TOTAL",
			strconv.Itoa(card.TotalMatched),
			strconv.Itoa(card.TotalOutcomes),
			contract.FormatPercent(card.OverallMatchRate),
			totalLag,
		})
	})
}
