package contract

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/intentops/intentctl/schema"
)

// Default values for configuration.
const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultTimelineDays = 1095
	DefaultLookbackDays = 1095
	DefaultPrecision    = 1
	DefaultTimeout      = 30 * time.Second
	DefaultRateLimit    = 120
)

// Display windows for the projected timelines. The two views share one
// projection algorithm and differ only in window size.
const (
	IntentTimelineWindow    = 3
	ReadinessTimelineWindow = 8
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for the client.
// This struct remains the "final, validated" config.
type Config struct {
	BaseURL   string
	APIKey    string // Flag/env override; takes precedence over the stored credential
	TenantID  string
	CompanyID string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Timeout      time.Duration
	TimelineDays int
	LookbackDays int

	CredBackend   schema.DatabaseBackend
	CredDBConnect string // Please use env var as this is plaintext

	JournalBackend   schema.DatabaseBackend
	JournalDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	BaseURL          string `mapstructure:"base-url"`
	APIKey           string `mapstructure:"api-key"`
	Tenant           string `mapstructure:"tenant"`
	Company          string `mapstructure:"company"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Timeout          string `mapstructure:"timeout"`
	Days             int    `mapstructure:"days"`
	CredBackend      string `mapstructure:"cred-backend"`
	CredDBConnect    string `mapstructure:"cred-db-connect"`
	JournalBackend   string `mapstructure:"journal-backend"`
	JournalDBConnect string `mapstructure:"journal-db-connect"`

	// --- Fields from backtestRunCmd.Flags() ---
	LookbackDays int `mapstructure:"lookback-days"`

	// --- Fields from ingestCmd / pipelineCmd flags ---
	Source string `mapstructure:"source"`

	// --- Fields from keyGenerateCmd.Flags() ---
	KeyName   string `mapstructure:"key-name"`
	RateLimit int    `mapstructure:"rate-limit"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Base URL validation ---
	base := strings.TrimRight(strings.TrimSpace(input.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base URL %q: must include scheme and host (e.g. http://localhost:8000)", input.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid base URL scheme %q: must be http or https", parsed.Scheme)
	}
	cfg.BaseURL = base

	// --- 2. Identifier passthrough ---
	// Tenant/company ids are validated per command; a missing id must fail
	// before any request is attempted, not here.
	cfg.APIKey = strings.TrimSpace(input.APIKey)
	cfg.TenantID = strings.TrimSpace(input.Tenant)
	cfg.CompanyID = strings.TrimSpace(input.Company)

	// --- 3. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	// --- 4. Timing windows ---
	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: must be a Go duration (e.g. 30s): %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.Timeout = d
	}

	if input.Days <= 0 {
		return fmt.Errorf("days must be greater than 0 (received %d)", input.Days)
	}
	cfg.TimelineDays = input.Days

	cfg.LookbackDays = input.LookbackDays
	if cfg.LookbackDays == 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	if cfg.LookbackDays < 0 {
		return fmt.Errorf("lookback-days must be greater than 0 (received %d)", input.LookbackDays)
	}

	// --- 5. Store backends ---
	credBackend := schema.DatabaseBackend(strings.ToLower(input.CredBackend))
	if credBackend == "" {
		credBackend = schema.SQLiteBackend
	}
	if err := ValidateDatabaseConnectionString(credBackend, input.CredDBConnect); err != nil {
		return err
	}
	cfg.CredBackend = credBackend
	cfg.CredDBConnect = input.CredDBConnect

	journalBackend := schema.DatabaseBackend(strings.ToLower(input.JournalBackend))
	if journalBackend == "" {
		journalBackend = schema.NoneBackend
	}
	if err := ValidateDatabaseConnectionString(journalBackend, input.JournalDBConnect); err != nil {
		return err
	}
	cfg.JournalBackend = journalBackend
	cfg.JournalDBConnect = input.JournalDBConnect

	return nil
}

// ValidateDatabaseConnectionString ensures server backends carry a connection
// string; SQLite falls back to its default file path when none is given.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("%s backend requires a connection string", backend)
		}
	}
	return nil
}

// ProcessProfilingConfig validates the profiling prefix and updates the config.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		profile.Enabled = false
		return nil
	}
	if strings.ContainsAny(prefix, " \t") {
		return fmt.Errorf("profile prefix cannot contain whitespace: %q", prefix)
	}
	profile.Enabled = true
	profile.Prefix = prefix
	return nil
}

// GetCredentialDBFilePath returns the path to the SQLite DB file for credential storage.
func GetCredentialDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".intentctl_credentials.db"
	}
	return filepath.Join(homeDir, ".intentctl_credentials.db")
}

// GetJournalDBFilePath returns the path to the SQLite DB file for journal storage.
func GetJournalDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".intentctl_journal.db"
	}
	return filepath.Join(homeDir, ".intentctl_journal.db")
}
