package schema

import "time"

// CredentialStatus represents the status of the credential store.
type CredentialStatus struct {
	Backend     string    `json:"backend"`
	Connected   bool      `json:"connected"`
	HasKey      bool      `json:"has_key"`
	TenantID    string    `json:"tenant_id"`
	StoredAt    time.Time `json:"stored_at"`
	KeyMasked   string    `json:"key_masked"`
	StorePath   string    `json:"store_path,omitempty"`
	TotalFields int       `json:"total_fields"`
}

// JournalStatus represents the status of the view-run journal.
type JournalStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalPanels   int              `json:"total_panels"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ViewRunRecord is a row from the intent_view_runs journal table.
type ViewRunRecord struct {
	RunID        int64
	Kind         string
	StartTime    time.Time
	EndTime      *time.Time
	PanelCount   int
	ConfigParams *string
}

// ViewPanelRecord is a row from the intent_view_panels journal table.
type ViewPanelRecord struct {
	RunID      int64
	Panel      string
	State      string
	Detail     *string
	RecordedAt time.Time
}
