package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/gateway"
	"github.com/intentops/intentctl/schema"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

// mockGateway implements contract.Gateway with overridable fetch behavior.
type mockGateway struct {
	intents       []schema.IntentRecord
	intentsErr    error
	timeline      []schema.TimelineSeries
	timelineErr   error
	readiness     []schema.ReadinessPoint
	readinessErr  error
	explainResult *schema.ExplainResult
	explainErr    error
	watchlist     []schema.WatchlistEntry
	watchlistErr  error
	portfolio     *schema.PortfolioReport
	portfolioErr  error
	signals       []schema.SignalEvent
	signalsErr    error
	outcomes      []schema.OutcomeRequest
	metrics       []schema.BacktestMetric
	kpis          *schema.BacktestKPI
	ingested      []string
}

var _ contract.Gateway = (*mockGateway)(nil)

func (m *mockGateway) CreateTenant(_ context.Context, name string) (*schema.Tenant, error) {
	return &schema.Tenant{ID: "t-1", Name: name}, nil
}

func (m *mockGateway) CreateAPIKey(_ context.Context, _, _ string, _ int) (*schema.APIKey, error) {
	return &schema.APIKey{Key: "demo-key-value"}, nil
}

func (m *mockGateway) CreateCompany(_ context.Context, _ string, req schema.CompanyRequest) (*schema.Company, error) {
	return &schema.Company{ID: "c-1", Name: req.Name}, nil
}

func (m *mockGateway) IngestSource(_ context.Context, _, _, source string) error {
	m.ingested = append(m.ingested, source)
	return nil
}

func (m *mockGateway) RunPipeline(_ context.Context, _ string, _ []string) error { return nil }

func (m *mockGateway) IntentDashboard(_ context.Context, _, _ string) ([]schema.IntentRecord, error) {
	return m.intents, m.intentsErr
}

func (m *mockGateway) IntentTimeline(_ context.Context, _, _ string, _ int) ([]schema.TimelineSeries, error) {
	return m.timeline, m.timelineErr
}

func (m *mockGateway) ReadinessTimeline(_ context.Context, _, _ string, _ int) ([]schema.ReadinessPoint, error) {
	return m.readiness, m.readinessErr
}

func (m *mockGateway) Explain(_ context.Context, _, _ string) (*schema.ExplainResult, error) {
	return m.explainResult, m.explainErr
}

func (m *mockGateway) RecentSignals(_ context.Context, _, _ string) ([]schema.SignalEvent, error) {
	return m.signals, m.signalsErr
}

func (m *mockGateway) Watchlist(_ context.Context, _ string) ([]schema.WatchlistEntry, error) {
	return m.watchlist, m.watchlistErr
}

func (m *mockGateway) RecordOutcome(_ context.Context, _, _ string, outcome schema.OutcomeRequest) error {
	m.outcomes = append(m.outcomes, outcome)
	return nil
}

func (m *mockGateway) RunBacktest(_ context.Context, _, _ string, _ int) error { return nil }

func (m *mockGateway) BacktestReport(_ context.Context, _, _ string) ([]schema.BacktestMetric, error) {
	return m.metrics, nil
}

func (m *mockGateway) BacktestKPIs(_ context.Context, _, _ string) (*schema.BacktestKPI, error) {
	return m.kpis, nil
}

func (m *mockGateway) PortfolioReport(_ context.Context, _ string) (*schema.PortfolioReport, error) {
	return m.portfolio, m.portfolioErr
}

func testConfig() *contract.Config {
	return &contract.Config{
		TenantID:     "t-1",
		CompanyID:    "c-1",
		Precision:    1,
		TimelineDays: contract.DefaultTimelineDays,
		LookbackDays: contract.DefaultLookbackDays,
	}
}

func TestBuildFeed(t *testing.T) {
	intents := []schema.IntentRecord{
		{
			IntentType: "IPO_PREP",
			Evidence: []schema.Evidence{
				{Snippet: "first snippet", Triggers: []string{"hiring_spike", "s1_language"}},
				{Snippet: "second snippet"},
			},
		},
		{
			IntentType: "HIRING",
			Evidence:   []schema.Evidence{{Snippet: "drift snippet"}},
		},
		{
			IntentType: "NO_EVIDENCE",
		},
	}

	feed := BuildFeed(intents)

	require.Len(t, feed, 2, "intents without evidence are skipped")
	assert.Equal(t, "first snippet", feed[0].Snippet, "only the first evidence item feeds the line")
	assert.Equal(t, "Triggers: hiring_spike, s1_language", feed[0].TriggerLine)
	assert.Equal(t, driftFeedLine, feed[1].TriggerLine)
}

func TestLoadCompanyViewIntentsRequired(t *testing.T) {
	gw := &mockGateway{intentsErr: errors.New("boom")}

	view, err := LoadCompanyView(context.Background(), gw, nil, testConfig())

	require.Error(t, err)
	assert.Nil(t, view)
}

func TestLoadCompanyViewBestEffortPanels(t *testing.T) {
	gw := &mockGateway{
		intents: []schema.IntentRecord{
			{IntentType: "IPO_PREP", Confidence: 0.8, Evidence: []schema.Evidence{{Snippet: "s"}}},
		},
		timelineErr:  errors.New("timeline down"),
		readinessErr: errors.New("readiness down"),
		explainResult: &schema.ExplainResult{
			Confidence:    0.8,
			AlertEligible: true,
		},
	}

	view, err := LoadCompanyView(context.Background(), gw, nil, testConfig())

	require.NoError(t, err, "panel failures never abort the view")
	assert.Len(t, view.Intents, 1)
	assert.Len(t, view.Feed, 1)
	assert.Equal(t, schema.FailedPanel, view.TimelineState)
	assert.Equal(t, schema.FailedPanel, view.ReadinessState)
	assert.Equal(t, schema.OKPanel, view.ExplainState)
	assert.True(t, view.Explain.HasData)
}

func TestLoadCompanyViewExplainNotFoundIsEmpty(t *testing.T) {
	gw := &mockGateway{
		intents:    []schema.IntentRecord{{IntentType: "IPO_PREP"}},
		explainErr: &gateway.ServiceError{Status: 404, Body: "no IPO_PREP intent"},
	}

	view, err := LoadCompanyView(context.Background(), gw, nil, testConfig())

	require.NoError(t, err)
	assert.Equal(t, schema.EmptyPanel, view.ExplainState, "a missing intent is a normal empty outcome")
	assert.False(t, view.Explain.HasData)
}

func TestLoadCompanyViewProjectsWindows(t *testing.T) {
	gw := &mockGateway{
		intents: []schema.IntentRecord{{IntentType: "IPO_PREP"}},
		timeline: []schema.TimelineSeries{
			{IntentType: "IPO_PREP", Points: makePoints(10)},
		},
		readiness: make([]schema.ReadinessPoint, 12),
	}

	view, err := LoadCompanyView(context.Background(), gw, nil, testConfig())

	require.NoError(t, err)
	require.Len(t, view.Timeline, 1)
	assert.Len(t, view.Timeline[0].Points, contract.IntentTimelineWindow)
	assert.Len(t, view.Readiness, contract.ReadinessTimelineWindow)
	assert.Equal(t, schema.OKPanel, view.TimelineState)
	assert.Equal(t, schema.OKPanel, view.ReadinessState)
}

func TestLoadTenantView(t *testing.T) {
	gw := &mockGateway{
		watchlist: []schema.WatchlistEntry{
			{CompanyID: "1", CompanyName: "Acme AI", ReadinessScore: fptr(5)},
			{CompanyID: "1", CompanyName: "Acme AI", ReadinessScore: fptr(9)},
		},
		portfolio: &schema.PortfolioReport{
			Summary: schema.PortfolioSummary{Companies: 1},
			Rows:    []schema.PortfolioRow{{CompanyName: "Acme AI", Status: "tracking"}},
		},
	}

	view, err := LoadTenantView(context.Background(), gw, nil, testConfig())

	require.NoError(t, err)
	require.Len(t, view.Watchlist, 1, "watchlist is deduplicated")
	assert.Equal(t, "9.0", view.Watchlist[0].Readiness)
	assert.Equal(t, schema.OKPanel, view.PortfolioState)
	require.NotNil(t, view.Portfolio)
}

func TestLoadTenantViewPortfolioPlaceholder(t *testing.T) {
	gw := &mockGateway{
		watchlist:    []schema.WatchlistEntry{{CompanyID: "1"}},
		portfolioErr: &gateway.ServiceError{Status: 404, Body: "no report"},
	}

	view, err := LoadTenantView(context.Background(), gw, nil, testConfig())

	require.NoError(t, err)
	assert.Equal(t, schema.FailedPanel, view.PortfolioState, "missing report renders a placeholder, not an empty table")
	assert.Nil(t, view.Portfolio)
}

func TestRunDemoFlow(t *testing.T) {
	gw := &mockGateway{
		intents: []schema.IntentRecord{{IntentType: "IPO_PREP"}},
		watchlist: []schema.WatchlistEntry{
			{CompanyID: "c-1", CompanyName: "Acme AI"},
		},
		metrics: []schema.BacktestMetric{
			{OutcomeType: "IPO", Outcomes: 10, Matched: 6, MatchRate: 0.6},
		},
	}

	var lines []string
	status := func(format string, args ...any) {
		lines = append(lines, format)
	}

	result, err := RunDemo(context.Background(), gw, nil, nil, testConfig(), status)

	require.NoError(t, err)
	assert.Equal(t, "t-1", result.Tenant.ID)
	assert.Equal(t, "demo-key-value", result.APIKey)
	assert.Equal(t, []string{schema.MockSource, schema.SECMockSource}, gw.ingested)
	require.Len(t, gw.outcomes, 3)
	assert.Equal(t, "IPO", gw.outcomes[0].OutcomeType)
	assert.Equal(t, "LAYOFF", gw.outcomes[1].OutcomeType)
	assert.Equal(t, "FUNDING", gw.outcomes[2].OutcomeType)
	assert.True(t, result.Scorecard.HasData)
	assert.NotEmpty(t, lines)
}

func TestSeedOutcomesAnchorsOnSignal(t *testing.T) {
	gw := &mockGateway{
		signals: []schema.SignalEvent{
			{Timestamp: mustTime(t, "2025-06-01T00:00:00Z")},
		},
	}

	require.NoError(t, SeedOutcomes(context.Background(), gw, "t-1", "c-1"))

	require.Len(t, gw.outcomes, 3)
	assert.Equal(t, "2025-08-30T00:00:00Z", gw.outcomes[0].Timestamp, "+90 days from the most recent signal")
	assert.Equal(t, "2025-07-31T00:00:00Z", gw.outcomes[1].Timestamp)
	assert.Equal(t, "2025-07-01T00:00:00Z", gw.outcomes[2].Timestamp)
}

func TestSeedOutcomesSignalFetchBestEffort(t *testing.T) {
	gw := &mockGateway{signalsErr: errors.New("signals down")}

	require.NoError(t, SeedOutcomes(context.Background(), gw, "t-1", "c-1"))
	assert.Len(t, gw.outcomes, 3, "a failed signal lookup falls back to now")
}
