// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/intentops/intentctl/schema"
)

// Gateway defines the REST operations of the intent analytics service.
// This allows the core aggregation logic to be tested without a live backend.
type Gateway interface {
	// --- Tenant / credential lifecycle ---

	// CreateTenant creates a workspace and returns it with its assigned id.
	CreateTenant(ctx context.Context, name string) (*schema.Tenant, error)

	// CreateAPIKey issues an API key for the tenant.
	CreateAPIKey(ctx context.Context, tenantID, name string, rateLimitPerMin int) (*schema.APIKey, error)

	// --- Company setup and ingestion ---

	// CreateCompany registers a company inside the tenant.
	CreateCompany(ctx context.Context, tenantID string, req schema.CompanyRequest) (*schema.Company, error)

	// IngestSource triggers ingestion of one source for a company.
	IngestSource(ctx context.Context, tenantID, companyID, source string) error

	// RunPipeline runs the full detection pipeline for the given sources.
	RunPipeline(ctx context.Context, tenantID string, sources []string) error

	// --- Derived analytics reads ---

	// IntentDashboard returns the current intent detections for a company.
	IntentDashboard(ctx context.Context, tenantID, companyID string) ([]schema.IntentRecord, error)

	// IntentTimeline returns per-intent-type confidence series over the window.
	IntentTimeline(ctx context.Context, tenantID, companyID string, days int) ([]schema.TimelineSeries, error)

	// ReadinessTimeline returns the company's readiness history over the window.
	ReadinessTimeline(ctx context.Context, tenantID, companyID string, days int) ([]schema.ReadinessPoint, error)

	// Explain returns the explainability trace for the company's primary intent.
	Explain(ctx context.Context, tenantID, companyID string) (*schema.ExplainResult, error)

	// RecentSignals returns recent raw signals, newest first.
	RecentSignals(ctx context.Context, tenantID, companyID string) ([]schema.SignalEvent, error)

	// Watchlist returns the raw per-tenant watchlist feed.
	Watchlist(ctx context.Context, tenantID string) ([]schema.WatchlistEntry, error)

	// --- Backtesting ---

	// RecordOutcome stores a real-world outcome for backtest matching.
	RecordOutcome(ctx context.Context, tenantID, companyID string, outcome schema.OutcomeRequest) error

	// RunBacktest triggers a backtest over the lookback window.
	RunBacktest(ctx context.Context, tenantID, companyID string, lookbackDays int) error

	// BacktestReport returns the per-outcome-type backtest metrics.
	BacktestReport(ctx context.Context, tenantID, companyID string) ([]schema.BacktestMetric, error)

	// BacktestKPIs returns ranking-quality KPIs, or nil when none exist yet.
	BacktestKPIs(ctx context.Context, tenantID, companyID string) (*schema.BacktestKPI, error)

	// PortfolioReport returns the tenant-wide backtest report.
	PortfolioReport(ctx context.Context, tenantID string) (*schema.PortfolioReport, error)
}

// CredentialProvider yields the API key attached to outgoing requests.
// An empty key with a nil error means "no credential"; the request is then
// sent unauthenticated and the server decides whether to reject it.
type CredentialProvider interface {
	APIKey() (string, error)
}

// CredentialStore persists the API key and its issuing tenant, keyed by fixed
// names and cleared together. Writes are serialized by user interaction, so
// no locking beyond the store's own connection handling is needed.
type CredentialStore interface {
	CredentialProvider

	// Get returns the stored credentials; a zero value means none stored.
	Get() (schema.Credentials, error)

	// Set stores the key and the tenant it was issued for, replacing any
	// previous pair. An empty key clears both fields.
	Set(apiKey, tenantID string) error

	// Clear removes the stored credentials.
	Clear() error

	// GetStatus returns status information about the credential store.
	GetStatus() (schema.CredentialStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// JournalStore tracks orchestrated view runs and their per-panel outcomes.
type JournalStore interface {
	// BeginView creates a new view run and returns its unique ID.
	BeginView(start time.Time, kind schema.ViewKind, configParams map[string]any) (int64, error)

	// EndView updates the view run with completion data.
	EndView(runID int64, end time.Time, panelCount int) error

	// RecordPanel stores the outcome of one panel within a run.
	RecordPanel(runID int64, panel string, state schema.PanelState, detail string) error

	// GetAllViewRuns returns every recorded run, oldest first.
	GetAllViewRuns() ([]schema.ViewRunRecord, error)

	// GetAllViewPanels returns every recorded panel outcome, oldest first.
	GetAllViewPanels() ([]schema.ViewPanelRecord, error)

	// GetStatus returns status information about the journal store.
	GetStatus() (schema.JournalStatus, error)

	// Clear removes all recorded runs and panel outcomes.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing local stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetCredentialStore() CredentialStore
	GetJournalStore() JournalStore
}
