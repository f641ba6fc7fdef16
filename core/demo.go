package core

import (
	"context"
	"time"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// Demo seed constants. The outcome offsets are days ahead of the most recent
// real signal, so the backtest window always covers them.
const (
	demoTenantName  = "Demo Workspace"
	demoKeyName     = "demo-key"
	demoCompany     = "Acme AI"
	demoDomain      = "acme-ai.com"
	demoSource      = "demo"
	demoRateLimit   = 120
	demoIPOOffset   = 90
	demoLayoffDays  = 60
	demoFundingDays = 30
)

// StatusFunc receives progress lines while the demo flow runs.
type StatusFunc func(format string, args ...any)

// DemoResult carries everything the scripted demo created and loaded.
type DemoResult struct {
	Tenant     *schema.Tenant
	APIKey     string
	Company    *schema.Company
	View       *schema.CompanyView
	TenantView *schema.TenantView
	Scorecard  schema.Scorecard
}

// RunDemo drives the scripted end-to-end flow: create a tenant, issue a key,
// create a company, ingest both mock sources, load the dashboard, seed
// synthetic outcomes anchored on the most recent signal, run a backtest, and
// reload the scorecard. The issued key is stored in creds when present, so
// every request after issuance is authenticated.
func RunDemo(ctx context.Context, gw contract.Gateway, creds contract.CredentialStore, journal contract.JournalStore, cfg *contract.Config, status StatusFunc) (*DemoResult, error) {
	run := beginRun(journal, schema.DemoViewKind, map[string]any{
		"lookback_days": cfg.LookbackDays,
	})
	defer run.end()

	status("Creating demo tenant...")
	tenant, err := gw.CreateTenant(ctx, demoTenantName)
	if err != nil {
		return nil, err
	}
	status("Tenant ready (id %s).", tenant.ID)

	status("Creating API key...")
	key, err := gw.CreateAPIKey(ctx, tenant.ID, demoKeyName, demoRateLimit)
	if err != nil {
		return nil, err
	}
	if creds != nil {
		if err := creds.Set(key.Key, tenant.ID); err != nil {
			contract.LogWarn("storing demo key", err)
		}
	}
	status("API key saved.")

	status("Creating demo company...")
	company, err := gw.CreateCompany(ctx, tenant.ID, schema.CompanyRequest{
		Name:   demoCompany,
		Domain: demoDomain,
	})
	if err != nil {
		return nil, err
	}
	status("Company ready (id %s).", company.ID)

	status("Ingesting job posts...")
	if err := gw.IngestSource(ctx, tenant.ID, company.ID, schema.MockSource); err != nil {
		return nil, err
	}
	status("Ingesting filings...")
	if err := gw.IngestSource(ctx, tenant.ID, company.ID, schema.SECMockSource); err != nil {
		return nil, err
	}

	demoCfg := cfg.Clone()
	demoCfg.TenantID = tenant.ID
	demoCfg.CompanyID = company.ID

	status("Loading intent dashboard...")
	view, err := LoadCompanyView(ctx, gw, nil, demoCfg)
	if err != nil {
		return nil, err
	}
	tenantView, err := LoadTenantView(ctx, gw, nil, demoCfg)
	if err != nil {
		return nil, err
	}

	status("Adding sample outcomes...")
	if err := SeedOutcomes(ctx, gw, tenant.ID, company.ID); err != nil {
		return nil, err
	}

	status("Running backtest...")
	if err := gw.RunBacktest(ctx, tenant.ID, company.ID, demoCfg.LookbackDays); err != nil {
		return nil, err
	}
	metrics, err := gw.BacktestReport(ctx, tenant.ID, company.ID)
	if err != nil {
		return nil, err
	}
	kpis, err := gw.BacktestKPIs(ctx, tenant.ID, company.ID)
	if err != nil {
		return nil, err
	}
	status("Backtest complete.")

	run.record(intentsPanel, panelState(len(view.Intents)), "")
	run.record(watchlistPanel, panelState(len(tenantView.Watchlist)), "")

	return &DemoResult{
		Tenant:     tenant,
		APIKey:     key.Key,
		Company:    company,
		View:       view,
		TenantView: tenantView,
		Scorecard:  BuildScorecard(metrics, kpis),
	}, nil
}

// SeedOutcomes posts three synthetic outcomes at future offsets from the most
// recent signal timestamp. When no signal exists yet the offsets anchor on
// now instead; the signal lookup itself is best-effort.
func SeedOutcomes(ctx context.Context, gw contract.Gateway, tenantID, companyID string) error {
	base := time.Now().UTC()
	if signals, err := gw.RecentSignals(ctx, tenantID, companyID); err == nil && len(signals) > 0 {
		base = signals[0].Timestamp
	}

	outcomes := []schema.OutcomeRequest{
		{OutcomeType: "IPO", Timestamp: base.AddDate(0, 0, demoIPOOffset).Format(time.RFC3339), Source: demoSource},
		{OutcomeType: "LAYOFF", Timestamp: base.AddDate(0, 0, demoLayoffDays).Format(time.RFC3339), Source: demoSource},
		{OutcomeType: "FUNDING", Timestamp: base.AddDate(0, 0, demoFundingDays).Format(time.RFC3339), Source: demoSource},
	}
	for _, outcome := range outcomes {
		if err := gw.RecordOutcome(ctx, tenantID, companyID, outcome); err != nil {
			return err
		}
	}
	return nil
}
