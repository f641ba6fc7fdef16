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

// noPortfolioMessage renders when the report has not been generated yet.
// This is a different condition from a present, empty report.
const noPortfolioMessage = "No portfolio report yet. Run the backtest job first."

// PrintTenantView outputs the tenant dashboard: ranked watchlist plus the
// portfolio report.
func PrintTenantView(view *schema.TenantView, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON")
	case schema.CSVOut, schema.ParquetOut:
		// Structured modes export the watchlist; the portfolio has its own command.
		return PrintWatchlist(view.Watchlist, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Tenant %s\n\n== Watchlist ==\n", view.TenantID); err != nil {
				return err
			}
			if err := writeWatchlistTable(w, view.Watchlist); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, "\n== Portfolio backtest =="); err != nil {
				return err
			}
			return writePortfolioText(w, view.Portfolio, view.PortfolioState, cfg)
		}, "Wrote table")
	}
}

// PrintPortfolio outputs the tenant-wide backtest report on its own.
func PrintPortfolio(report *schema.PortfolioReport, state schema.PanelState, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePortfolioCSV(w, report)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if report == nil {
				return fmt.Errorf("no portfolio report to export")
			}
			return parquet.WritePortfolio(w, report.Rows)
		}, "Wrote parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePortfolioText(w, report, state, cfg)
		}, "Wrote table")
	}
}

// writePortfolioText renders the summary card and per-company table.
func writePortfolioText(w io.Writer, report *schema.PortfolioReport, state schema.PanelState, cfg *contract.Config) error {
	if state == schema.FailedPanel || report == nil {
		_, err := fmt.Fprintln(w, noPortfolioMessage)
		return err
	}

	precision := schema.AbsentValue
	if report.Summary.PrecisionAtKAvg != nil {
		precision = contract.FormatPercent(*report.Summary.PrecisionAtKAvg)
	}
	median := schema.AbsentValue
	if report.Summary.MedianLeadTimeMonths != nil {
		median = contract.FormatOptFloat(report.Summary.MedianLeadTimeMonths, cfg.Precision) + " months"
	}
	if _, err := fmt.Fprintf(w, "Companies: %d\nPrecision@20: %s\nMedian lead time: %s\n\n",
		report.Summary.Companies, precision, median); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Company", "S-1", "Precision@20", "Lead time", "Status"})
	var data [][]string
	for _, row := range report.Rows {
		data = append(data, []string{
			row.CompanyName,
			optString(row.S1Date),
			optPercent(row.PrecisionAtK),
			optMonths(row.MedianLeadTimeMonths, cfg.Precision),
			row.Status,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writePortfolioCSV writes one row per company.
func writePortfolioCSV(w io.Writer, report *schema.PortfolioReport) error {
	header := []string{"company_name", "s1_date", "precision_at_k", "median_lead_time_months", "status"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		if report == nil {
			return nil
		}
		for _, row := range report.Rows {
			precision := ""
			if row.PrecisionAtK != nil {
				precision = strconv.FormatFloat(*row.PrecisionAtK, 'f', -1, 64)
			}
			median := ""
			if row.MedianLeadTimeMonths != nil {
				median = strconv.FormatFloat(*row.MedianLeadTimeMonths, 'f', -1, 64)
			}
			s1 := ""
			if row.S1Date != nil {
				s1 = *row.S1Date
			}
			rec := []string{row.CompanyName, s1, precision, median, row.Status}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func optString(v *string) string {
	if v == nil {
		return schema.AbsentValue
	}
	return *v
}

func optPercent(v *float64) string {
	if v == nil {
		return schema.AbsentValue
	}
	return contract.FormatPercent(*v)
}

func optMonths(v *float64, precision int) string {
	if v == nil {
		return schema.AbsentValue
	}
	return fmt.Sprintf("%.*f mo", precision, *v)
}
