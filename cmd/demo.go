package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/core"
)

// demoCmd runs the scripted end-to-end flow against a live backend.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted end-to-end demo flow",
	Long: `Run the full demo against the configured backend:

1. Create a demo tenant and issue an API key (stored locally)
2. Register the demo company and ingest both mock sources
3. Load the company dashboard and the tenant watchlist
4. Seed synthetic outcomes anchored on the latest signal
5. Run a backtest and render the scorecard

Examples:
  # Against a local backend
  intentctl demo

  # Against a remote backend
  intentctl demo --base-url https://intents.example.com`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		result, err := core.RunDemo(rootCtx, gw, credentialStore(), journalStore(), cfg, func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		})
		if err != nil {
			return err
		}

		fmt.Println()
		if err := writer.WriteCompanyView(result.View, cfg); err != nil {
			return err
		}
		fmt.Println()
		if err := writer.WriteTenantView(result.TenantView, cfg); err != nil {
			return err
		}
		fmt.Println()
		if err := writer.WriteScorecard(result.Scorecard, cfg); err != nil {
			return err
		}

		fmt.Printf("\nDemo complete. Tenant %s, company %s.\n", result.Tenant.ID, result.Company.ID)
		return nil
	},
}
