package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/intentops/intentctl/schema"
)

// Response envelopes. The service wraps collection payloads in a single
// field; records decode directly into schema types.
type (
	dashboardEnvelope struct {
		Items []schema.IntentRecord `json:"items"`
	}
	timelineEnvelope struct {
		Series []schema.TimelineSeries `json:"series"`
	}
	readinessEnvelope struct {
		Points []schema.ReadinessPoint `json:"points"`
	}
	reportEnvelope struct {
		Metrics []schema.BacktestMetric `json:"metrics"`
	}
	kpiEnvelope struct {
		KPIs *schema.BacktestKPI `json:"kpis"`
	}
	watchlistEnvelope struct {
		Items []schema.WatchlistEntry `json:"items"`
	}
)

func tenantPath(tenantID, suffix string) string {
	return "/tenants/" + url.PathEscape(tenantID) + suffix
}

func companyPath(tenantID, companyID, suffix string) string {
	return tenantPath(tenantID, "/companies/"+url.PathEscape(companyID)+suffix)
}

// CreateTenant creates a workspace and returns it with its assigned id.
func (c *Client) CreateTenant(ctx context.Context, name string) (*schema.Tenant, error) {
	var tenant schema.Tenant
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/tenants", nil, body, &tenant); err != nil {
		return nil, err
	}
	if tenant.ID == "" {
		return nil, &DecodeError{Path: "/tenants", Err: fmt.Errorf("response missing tenant id")}
	}
	return &tenant, nil
}

// CreateAPIKey issues an API key for the tenant.
func (c *Client) CreateAPIKey(ctx context.Context, tenantID, name string, rateLimitPerMin int) (*schema.APIKey, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	var key schema.APIKey
	body := map[string]any{"name": name, "rate_limit_per_min": rateLimitPerMin}
	path := tenantPath(tenantID, "/api-keys")
	if err := c.do(ctx, http.MethodPost, path, nil, body, &key); err != nil {
		return nil, err
	}
	if key.Key == "" {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("response missing key")}
	}
	return &key, nil
}

// CreateCompany registers a company inside the tenant.
func (c *Client) CreateCompany(ctx context.Context, tenantID string, req schema.CompanyRequest) (*schema.Company, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	var company schema.Company
	path := tenantPath(tenantID, "/companies/")
	if err := c.do(ctx, http.MethodPost, path, nil, req, &company); err != nil {
		return nil, err
	}
	if company.ID == "" {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("response missing company id")}
	}
	return &company, nil
}

// IngestSource triggers ingestion of one source for a company.
func (c *Client) IngestSource(ctx context.Context, tenantID, companyID, source string) error {
	if tenantID == "" {
		return NewInputError("tenant id")
	}
	if companyID == "" {
		return NewInputError("company id")
	}
	path := tenantPath(tenantID, "/companies/ingest/"+url.PathEscape(companyID))
	query := url.Values{"source": {source}}
	return c.do(ctx, http.MethodPost, path, query, nil, nil)
}

// RunPipeline runs the full detection pipeline for the given sources.
func (c *Client) RunPipeline(ctx context.Context, tenantID string, sources []string) error {
	if tenantID == "" {
		return NewInputError("tenant id")
	}
	query := url.Values{"source": {strings.Join(sources, ",")}}
	return c.do(ctx, http.MethodPost, tenantPath(tenantID, "/pipeline/run"), query, nil, nil)
}

// IntentDashboard returns the current intent detections for a company.
func (c *Client) IntentDashboard(ctx context.Context, tenantID, companyID string) ([]schema.IntentRecord, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var env dashboardEnvelope
	path := companyPath(tenantID, companyID, "/intents/dashboard")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// IntentTimeline returns per-intent-type confidence series over the window.
func (c *Client) IntentTimeline(ctx context.Context, tenantID, companyID string, days int) ([]schema.TimelineSeries, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var env timelineEnvelope
	path := companyPath(tenantID, companyID, "/intents/timeline")
	query := url.Values{"days": {fmt.Sprint(days)}}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	return env.Series, nil
}

// ReadinessTimeline returns the company's readiness history over the window.
func (c *Client) ReadinessTimeline(ctx context.Context, tenantID, companyID string, days int) ([]schema.ReadinessPoint, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var env readinessEnvelope
	path := companyPath(tenantID, companyID, "/timeline/ipo_prep")
	query := url.Values{"days": {fmt.Sprint(days)}}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	return env.Points, nil
}

// Explain returns the explainability trace for the company's primary intent.
func (c *Client) Explain(ctx context.Context, tenantID, companyID string) (*schema.ExplainResult, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var result schema.ExplainResult
	path := companyPath(tenantID, companyID, "/explain")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RecentSignals returns recent raw signals, newest first.
func (c *Client) RecentSignals(ctx context.Context, tenantID, companyID string) ([]schema.SignalEvent, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var signals []schema.SignalEvent
	path := companyPath(tenantID, companyID, "/signals/recent")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &signals); err != nil {
		return nil, err
	}
	return signals, nil
}

// Watchlist returns the raw per-tenant watchlist feed.
func (c *Client) Watchlist(ctx context.Context, tenantID string) ([]schema.WatchlistEntry, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	var env watchlistEnvelope
	if err := c.do(ctx, http.MethodGet, tenantPath(tenantID, "/watchlist"), nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// RecordOutcome stores a real-world outcome for backtest matching.
func (c *Client) RecordOutcome(ctx context.Context, tenantID, companyID string, outcome schema.OutcomeRequest) error {
	if tenantID == "" {
		return NewInputError("tenant id")
	}
	if companyID == "" {
		return NewInputError("company id")
	}
	path := companyPath(tenantID, companyID, "/outcomes")
	return c.do(ctx, http.MethodPost, path, nil, outcome, nil)
}

// RunBacktest triggers a backtest over the lookback window.
func (c *Client) RunBacktest(ctx context.Context, tenantID, companyID string, lookbackDays int) error {
	if tenantID == "" {
		return NewInputError("tenant id")
	}
	if companyID == "" {
		return NewInputError("company id")
	}
	path := companyPath(tenantID, companyID, "/backtest/run")
	query := url.Values{"lookback_days": {fmt.Sprint(lookbackDays)}}
	return c.do(ctx, http.MethodPost, path, query, nil, nil)
}

// BacktestReport returns the per-outcome-type backtest metrics.
func (c *Client) BacktestReport(ctx context.Context, tenantID, companyID string) ([]schema.BacktestMetric, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var env reportEnvelope
	path := companyPath(tenantID, companyID, "/backtest/report")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Metrics, nil
}

// BacktestKPIs returns ranking-quality KPIs, or nil when none exist yet.
func (c *Client) BacktestKPIs(ctx context.Context, tenantID, companyID string) (*schema.BacktestKPI, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	if companyID == "" {
		return nil, NewInputError("company id")
	}
	var env kpiEnvelope
	path := companyPath(tenantID, companyID, "/backtest/kpis")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.KPIs, nil
}

// PortfolioReport returns the tenant-wide backtest report.
func (c *Client) PortfolioReport(ctx context.Context, tenantID string) (*schema.PortfolioReport, error) {
	if tenantID == "" {
		return nil, NewInputError("tenant id")
	}
	var report schema.PortfolioReport
	if err := c.do(ctx, http.MethodGet, tenantPath(tenantID, "/backtest/ipo_report"), nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
