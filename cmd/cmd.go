// Package cmd defines the command-line interface for intentctl.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(tenantCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(backtestCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the tenant subcommands to the parent tenant command
	tenantCmd.AddCommand(tenantCreateCmd)
	tenantCmd.AddCommand(tenantUseCmd)

	// Add the key subcommands to the parent key command
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyGenerateCmd)
	keyCmd.AddCommand(keyClearCmd)
	keyCmd.AddCommand(keyStatusCmd)

	// Add the company subcommands to the parent company command
	companyCmd.AddCommand(companyCreateCmd)
	companyCmd.AddCommand(companyLoadCmd)

	// Add the backtest subcommands to the parent backtest command
	backtestCmd.AddCommand(backtestRunCmd)
	backtestCmd.AddCommand(backtestReportCmd)
	backtestCmd.AddCommand(backtestSeedCmd)

	// Add the journal subcommands to the parent journal command
	journalCmd.AddCommand(journalStatusCmd)
	journalCmd.AddCommand(journalClearCmd)
	journalCmd.AddCommand(journalExportCmd)
	journalCmd.AddCommand(journalMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Base URL of the intent analytics service")
	rootCmd.PersistentFlags().String("api-key", "", "API key override (wins over the stored credential)")
	rootCmd.PersistentFlags().StringP("tenant", "t", "", "Tenant id for tenant-scoped operations")
	rootCmd.PersistentFlags().StringP("company", "c", "", "Company id for company-scoped operations")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("timeout", "", "HTTP timeout as a Go duration (default 30s)")
	rootCmd.PersistentFlags().Int("days", contract.DefaultTimelineDays, "Lookback window in days for timeline reads")
	rootCmd.PersistentFlags().String("cred-backend", string(schema.SQLiteBackend), "Credential store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cred-db-connect", "", "Database connection string for mysql/postgresql credential store")
	rootCmd.PersistentFlags().String("journal-backend", string(schema.NoneBackend), "View-run journal backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("journal-db-connect", "", "Database connection string for the journal (must differ from cred-db-connect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of keyGenerateCmd to Viper
	keyGenerateCmd.Flags().String("key-name", "default", "Display name for the generated key")
	keyGenerateCmd.Flags().Int("rate-limit", contract.DefaultRateLimit, "Requests per minute allowed for the key")
	if err := viper.BindPFlags(keyGenerateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding key generate flags", err)
	}

	// Bind all flags of ingestCmd to Viper
	ingestCmd.Flags().String("source", schema.MockSource, "Signal source to ingest: mock or sec_mock")
	if err := viper.BindPFlags(ingestCmd.Flags()); err != nil {
		contract.LogFatal("Error binding ingest flags", err)
	}

	// Bind all flags of pipelineCmd to Viper
	pipelineCmd.Flags().String("sources", schema.MockSource+","+schema.SECMockSource, "Comma-separated sources for the pipeline run")
	if err := viper.BindPFlags(pipelineCmd.Flags()); err != nil {
		contract.LogFatal("Error binding pipeline flags", err)
	}

	// Bind all flags of companyCreateCmd to Viper
	companyCreateCmd.Flags().String("greenhouse-board", "", "Optional Greenhouse board token for job-post ingestion")
	if err := viper.BindPFlags(companyCreateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding company create flags", err)
	}

	// Bind all flags of backtestRunCmd to Viper
	backtestRunCmd.Flags().Int("lookback-days", contract.DefaultLookbackDays, "Backtest lookback window in days")
	if err := viper.BindPFlags(backtestRunCmd.Flags()); err != nil {
		contract.LogFatal("Error binding backtest run flags", err)
	}

	// Bind all flags of journalMigrateCmd to Viper
	journalMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(journalMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding journal migrate flags", err)
	}
}
