package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/credstore"
	"github.com/intentops/intentctl/internal/journal"
	"github.com/intentops/intentctl/schema"
)

// journalSetup loads minimal configuration needed for journal operations.
// This is used by commands that need journal access without full shared setup.
func journalSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get journal-related config values
	backendStr := viper.GetString("journal-backend")
	connStr := viper.GetString("journal-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the journal store only; no credential access is needed here.
	if err := credstore.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	cfg.JournalBackend = backend
	cfg.JournalDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// journalSetupWrapper wraps journalSetup to provide PreRunE for journal commands.
func journalSetupWrapper(_ *cobra.Command, _ []string) error {
	return journalSetup()
}

// journalMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func journalMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("journal-backend")
	connStr := viper.GetString("journal-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetJournalDBFilePath()
	}

	cfg.JournalBackend = backend
	cfg.JournalDBConnect = connStr

	return nil
}

// journalMigrateSetupWrapper wraps journalMigrateSetup to provide PreRunE for migrate command.
func journalMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return journalMigrateSetup()
}

// journalCmd focused on view-run journal management.
//
// Note: Journal subcommands use minimal initialization (journalSetup) instead
// of the full sharedSetup. This avoids backend URL validation and gateway
// construction for local store operations.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage the local view-run journal and exports",
	Long: `Manage the local journal of orchestrated view runs.

When enabled, intentctl records every dashboard/watchlist/demo run, storing:
- Run metadata (kind, timestamps, panel count, parameters)
- Per-panel outcomes (ok, empty, failed) with failure detail

This enables reliability review and data export for BI tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show journal statistics
  export  - Export runs and panels to Parquet
  clear   - Remove all journal data
  migrate - Run database schema migrations

Examples:
  # Check journal status
  intentctl journal status --journal-backend sqlite

  # Export for analysis in pandas/DuckDB
  intentctl journal export --journal-backend sqlite --output-file journal-data`,
}

// journalStatusCmd shows journal status.
var journalStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display journal statistics and connection details",
	PreRunE: journalSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := journalStore()
		if store == nil {
			fmt.Println("Journal disabled (journal-backend is none).")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get journal status", err)
		}
		journal.PrintJournalStatus(status)
	},
}

// journalClearCmd clears the journal data.
var journalClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all recorded view runs and panel outcomes",
	PreRunE: journalSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := journalStore()
		if store == nil {
			fmt.Println("Journal disabled (journal-backend is none).")
			return
		}
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear journal data", err)
		}
		fmt.Println("Journal data cleared successfully.")
	},
}

// journalExportCmd exports journal data to Parquet files.
var journalExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export view runs and panel outcomes to Parquet",
	PreRunE: journalSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := journalStore()
		if store == nil {
			contract.LogFatal("Failed to export journal data", fmt.Errorf("journal disabled (journal-backend is none)"))
		}
		if err := journal.ExecuteJournalExport(store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export journal data", err)
		}
	},
}

// journalMigrateCmd runs database migrations for the journal store.
var journalMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the view-run journal.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  intentctl journal migrate --journal-backend sqlite

  # Rollback to previous version
  intentctl journal migrate --journal-backend sqlite --target-version 0`,
	PreRunE: journalMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := journal.MigrateJournal(cfg.JournalBackend, cfg.JournalDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
