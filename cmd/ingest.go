package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ingestCmd triggers ingestion of one source for the configured company.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest one signal source for the configured company",
	Long: `Trigger ingestion of a single signal source for a company.

The backend fetches and stores the raw signals; detection runs as part of
ingestion, so the dashboard reflects the new signals immediately.

Examples:
  # Ingest mock job posts
  intentctl ingest --tenant t-42 --company c-7 --source mock

  # Ingest mock SEC filings
  intentctl ingest --tenant t-42 --company c-7 --source sec_mock`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		source := viper.GetString("source")
		if err := gw.IngestSource(rootCtx, cfg.TenantID, cfg.CompanyID, source); err != nil {
			return err
		}
		fmt.Printf("Ingestion of %s triggered for company %s.\n", source, cfg.CompanyID)
		return nil
	},
}

// pipelineCmd runs the full detection pipeline across sources.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full detection pipeline for the tenant",
	Long: `Run the backend detection pipeline across all companies of the tenant.

The pipeline re-ingests the given sources and recomputes intents, readiness
and the watchlist in one pass.

Examples:
  # Run with the default mock sources
  intentctl pipeline --tenant t-42

  # Restrict to one source
  intentctl pipeline --tenant t-42 --sources sec_mock`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		sources := strings.Split(viper.GetString("sources"), ",")
		for i := range sources {
			sources[i] = strings.TrimSpace(sources[i])
		}
		if err := gw.RunPipeline(rootCtx, cfg.TenantID, sources); err != nil {
			return err
		}
		fmt.Printf("Pipeline run triggered for tenant %s (sources: %s).\n", cfg.TenantID, strings.Join(sources, ", "))
		return nil
	},
}
