package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/core"
)

// backtestCmd groups backtest commands.
var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run backtests and render the scorecard",
	Long: `Check detected intents against recorded real-world outcomes.

Subcommands:
  seed   - Record three synthetic outcomes anchored on the latest signal
  run    - Trigger a backtest over the lookback window
  report - Render the scorecard from the latest backtest

Examples:
  # Seed, run, inspect
  intentctl backtest seed --tenant t-42 --company c-7
  intentctl backtest run --tenant t-42 --company c-7
  intentctl backtest report --tenant t-42 --company c-7`,
}

// backtestRunCmd triggers a backtest job.
var backtestRunCmd = &cobra.Command{
	Use:     "run",
	Short:   "Trigger a backtest over the lookback window",
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := gw.RunBacktest(rootCtx, cfg.TenantID, cfg.CompanyID, cfg.LookbackDays); err != nil {
			return err
		}
		fmt.Printf("Backtest triggered for company %s (lookback %d days).\n", cfg.CompanyID, cfg.LookbackDays)
		return nil
	},
}

// backtestReportCmd fetches metrics and KPIs and renders the scorecard.
var backtestReportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Render the scorecard from the latest backtest",
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		metrics, err := gw.BacktestReport(rootCtx, cfg.TenantID, cfg.CompanyID)
		if err != nil {
			return err
		}
		kpis, err := gw.BacktestKPIs(rootCtx, cfg.TenantID, cfg.CompanyID)
		if err != nil {
			return err
		}
		return writer.WriteScorecard(core.BuildScorecard(metrics, kpis), cfg)
	},
}

// backtestSeedCmd records the synthetic outcome triple.
var backtestSeedCmd = &cobra.Command{
	Use:     "seed",
	Short:   "Record synthetic IPO/LAYOFF/FUNDING outcomes for testing",
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := core.SeedOutcomes(rootCtx, gw, cfg.TenantID, cfg.CompanyID); err != nil {
			return err
		}
		fmt.Printf("Seeded 3 outcomes for company %s.\n", cfg.CompanyID)
		return nil
	},
}
