package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/core"
)

// dashboardCmd loads the company view for the configured tenant/company pair.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the intent dashboard for the configured company",
	Long: `Load and render the full company dashboard.

Panels:
- Intents: current detections with confidence and explanation (required)
- Evidence feed: the strongest evidence line per intent
- Intent timeline: last confidence samples per intent type
- IPO readiness: recent readiness history
- Why: explainability trace for the primary intent

The intent panel must load; every other panel is best-effort and falls back
to a placeholder when its fetch fails.

Examples:
  # Human-readable dashboard
  intentctl dashboard --tenant t-42 --company c-7

  # Full view as JSON for scripting
  intentctl dashboard --tenant t-42 --company c-7 --output json`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		view, err := core.LoadCompanyView(rootCtx, gw, journalStore(), cfg)
		if err != nil {
			return err
		}
		return writer.WriteCompanyView(view, cfg)
	},
}
