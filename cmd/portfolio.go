package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/gateway"
	"github.com/intentops/intentctl/schema"
)

// portfolioCmd renders the tenant-wide backtest report on its own.
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show the tenant-wide backtest report",
	Long: `Fetch and render the portfolio backtest report: one line per company
with S-1 date, precision@20 and median lead time.

A missing report (the backtest job has not produced one yet) renders a
placeholder rather than an empty table.

Examples:
  intentctl portfolio --tenant t-42
  intentctl portfolio --tenant t-42 --output parquet --output-file portfolio.parquet`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		report, err := gw.PortfolioReport(rootCtx, cfg.TenantID)
		if err != nil {
			// A missing id is a usage error; a failed fetch means no report yet.
			var inputErr *gateway.InputError
			if errors.As(err, &inputErr) {
				return err
			}
			contract.LogWarn("portfolio fetch", err)
			return writer.WritePortfolio(nil, schema.FailedPanel, cfg)
		}
		state := schema.OKPanel
		if len(report.Rows) == 0 {
			state = schema.EmptyPanel
		}
		return writer.WritePortfolio(report, state, cfg)
	},
}
