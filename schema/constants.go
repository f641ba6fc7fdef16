package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for local stores.
	DatabaseBackend string

	// PanelState represents the outcome of one best-effort dashboard panel.
	PanelState string

	// ViewKind labels an orchestrated view run in the journal.
	ViewKind string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All local store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All panel states supported. EmptyPanel means the backend answered with
// "nothing yet" (a normal value); FailedPanel means the fetch itself failed
// and the panel fell back to a placeholder.
const (
	OKPanel     PanelState = "ok"
	EmptyPanel  PanelState = "empty"
	FailedPanel PanelState = "failed"
)

// All view kinds recorded by the journal.
const (
	CompanyViewKind ViewKind = "company"
	TenantViewKind  ViewKind = "tenant"
	DemoViewKind    ViewKind = "demo"
)

// Ingestion sources understood by the backend.
const (
	MockSource    = "mock"
	SECMockSource = "sec_mock"
)

// Alert labels for watchlist rows and explainability headers.
const (
	AlertEligibleLabel      = "Eligible"
	AlertHoldLabel          = "Hold"
	ExplainEligibleLabel    = "Alert eligible"
	ExplainNotEligibleLabel = "Not alert eligible"
)

// AbsentValue is the sentinel rendered for absent numeric or date fields.
// It is deliberately distinct from a formatted zero.
const AbsentValue = "—"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
