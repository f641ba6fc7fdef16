package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/core"
)

// watchlistCmd renders the tenant view: ranked watchlist plus portfolio.
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Show the ranked watchlist for the configured tenant",
	Long: `Load and render the tenant dashboard: the deduplicated, ranked company
watchlist and the portfolio backtest summary.

The watchlist keeps one row per company (the most recent snapshot wins) in
first-seen order. Absent readiness or delta values render as a dash, never
as zero.

Examples:
  # Terminal table
  intentctl watchlist --tenant t-42

  # Columnar export for analytics
  intentctl watchlist --tenant t-42 --output parquet --output-file watchlist.parquet`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		view, err := core.LoadTenantView(rootCtx, gw, journalStore(), cfg)
		if err != nil {
			return err
		}
		return writer.WriteTenantView(view, cfg)
	},
}
