// Package parquet exports watchlist, portfolio and journal data to Parquet
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/intentops/intentctl/schema"
)

// WatchlistRecord is one ranked watchlist row. Display sentinels are dropped;
// optional metrics are carried as nullable columns instead.
type WatchlistRecord struct {
	Rank          int32   `parquet:"rank,snappy"`
	CompanyID     string  `parquet:"company_id,snappy"`
	CompanyName   string  `parquet:"company_name,snappy"`
	Readiness     string  `parquet:"readiness,snappy"`
	Delta         string  `parquet:"delta,snappy"`
	Confidence    string  `parquet:"confidence,snappy"`
	AlertEligible bool    `parquet:"alert_eligible,snappy"`
	TopRules      string  `parquet:"top_rules,snappy"`
}

// PortfolioRecord is one company's line of the tenant-wide backtest report.
type PortfolioRecord struct {
	CompanyName          string   `parquet:"company_name,snappy"`
	S1Date               *string  `parquet:"s1_date,optional,snappy"`
	PrecisionAtK         *float64 `parquet:"precision_at_k,optional,snappy"`
	MedianLeadTimeMonths *float64 `parquet:"median_lead_time_months,optional,snappy"`
	Status               string   `parquet:"status,snappy"`
}

// ViewRunRecord maps to the intent_view_runs journal table.
type ViewRunRecord struct {
	RunID        int64      `parquet:"run_id,snappy"`
	Kind         string     `parquet:"kind,snappy"`
	StartTime    time.Time  `parquet:"start_time,snappy"`
	EndTime      *time.Time `parquet:"end_time,optional,snappy"`
	PanelCount   int32      `parquet:"panel_count,snappy"`
	ConfigParams *string    `parquet:"config_params,optional,snappy"`
}

// ViewPanelRecord maps to the intent_view_panels journal table.
type ViewPanelRecord struct {
	RunID      int64     `parquet:"run_id,snappy"`
	Panel      string    `parquet:"panel,snappy"`
	State      string    `parquet:"state,snappy"`
	Detail     *string   `parquet:"detail,optional,snappy"`
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// WriteWatchlist writes ranked watchlist rows as Parquet. Rank reflects the
// slice order, matching the rendered table.
func WriteWatchlist(w io.Writer, rows []schema.WatchlistRow) error {
	records := make([]WatchlistRecord, len(rows))
	for i, row := range rows {
		records[i] = WatchlistRecord{
			Rank:          int32(i + 1),
			CompanyID:     row.CompanyID,
			CompanyName:   row.CompanyName,
			Readiness:     row.Readiness,
			Delta:         row.Delta,
			Confidence:    row.Confidence,
			AlertEligible: row.AlertEligible,
			TopRules:      row.TopRules,
		}
	}
	return writeRecords(w, records)
}

// WritePortfolio writes the per-company backtest report rows as Parquet.
func WritePortfolio(w io.Writer, rows []schema.PortfolioRow) error {
	records := make([]PortfolioRecord, len(rows))
	for i, row := range rows {
		records[i] = PortfolioRecord{
			CompanyName:          row.CompanyName,
			S1Date:               row.S1Date,
			PrecisionAtK:         row.PrecisionAtK,
			MedianLeadTimeMonths: row.MedianLeadTimeMonths,
			Status:               row.Status,
		}
	}
	return writeRecords(w, records)
}

// WriteViewRuns writes journal run rows as Parquet.
func WriteViewRuns(w io.Writer, runs []schema.ViewRunRecord) error {
	records := make([]ViewRunRecord, len(runs))
	for i, run := range runs {
		records[i] = ViewRunRecord{
			RunID:        run.RunID,
			Kind:         run.Kind,
			StartTime:    run.StartTime,
			EndTime:      run.EndTime,
			PanelCount:   int32(run.PanelCount),
			ConfigParams: run.ConfigParams,
		}
	}
	return writeRecords(w, records)
}

// WriteViewPanels writes journal panel rows as Parquet.
func WriteViewPanels(w io.Writer, panels []schema.ViewPanelRecord) error {
	records := make([]ViewPanelRecord, len(panels))
	for i, panel := range panels {
		records[i] = ViewPanelRecord{
			RunID:      panel.RunID,
			Panel:      panel.Panel,
			State:      panel.State,
			Detail:     panel.Detail,
			RecordedAt: panel.RecordedAt,
		}
	}
	return writeRecords(w, records)
}

// writeRecords streams records through a generic writer whose schema is
// inferred from the struct tags.
func writeRecords[T any](w io.Writer, records []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet records: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
