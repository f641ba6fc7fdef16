package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/parquet"
	"github.com/intentops/intentctl/schema"
)

// noWatchlistMessage renders when the tenant has no companies yet.
const noWatchlistMessage = "No companies yet. Add a company to get started."

// PrintWatchlist outputs the ranked watchlist, dispatching on the configured format.
func PrintWatchlist(rows []schema.WatchlistRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWatchlistCSV(w, rows)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteWatchlist(w, rows)
		}, "Wrote parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWatchlistTable(w, rows)
		}, "Wrote table")
	}
}

// writeWatchlistTable generates and writes the human-readable watchlist.
func writeWatchlistTable(w io.Writer, rows []schema.WatchlistRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, noWatchlistMessage)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Company", "Readiness", "Delta", "Confidence", "Alert", "Top rules"})

	var data [][]string
	for i, row := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s #%s", row.CompanyName, row.CompanyID),
			row.Readiness,
			row.Delta,
			row.Confidence,
			row.Alert,
			row.TopRules,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeWatchlistCSV writes one row per company. The alert column uses the
// boolean flag so downstream tools do not parse a display label.
func writeWatchlistCSV(w io.Writer, rows []schema.WatchlistRow) error {
	header := []string{"rank", "company_id", "company_name", "readiness", "delta", "confidence", "alert_eligible", "top_rules"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, row := range rows {
			rec := []string{
				strconv.Itoa(i + 1),
				row.CompanyID,
				row.CompanyName,
				row.Readiness,
				row.Delta,
				row.Confidence,
				strconv.FormatBool(row.AlertEligible),
				row.TopRules,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
