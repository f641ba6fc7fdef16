package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/schema"
)

// recordedRequest captures what the server saw for path/query assertions.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

func newRecordingServer(t *testing.T, response any) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		rec.body = body
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestCreateTenant(t *testing.T) {
	srv, rec := newRecordingServer(t, schema.Tenant{ID: "t-9", Name: "Demo Workspace"})
	client := NewClient(srv.URL, nil)

	tenant, err := client.CreateTenant(context.Background(), "Demo Workspace")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/tenants", rec.path)
	assert.JSONEq(t, `{"name":"Demo Workspace"}`, string(rec.body))
	assert.Equal(t, "t-9", tenant.ID)
}

func TestCreateTenantMissingID(t *testing.T) {
	srv, _ := newRecordingServer(t, schema.Tenant{Name: "no id"})
	client := NewClient(srv.URL, nil)

	_, err := client.CreateTenant(context.Background(), "x")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestCreateAPIKey(t *testing.T) {
	srv, rec := newRecordingServer(t, schema.APIKey{Key: "k-abc"})
	client := NewClient(srv.URL, nil)

	key, err := client.CreateAPIKey(context.Background(), "t-1", "demo-key", 120)

	require.NoError(t, err)
	assert.Equal(t, "/tenants/t-1/api-keys", rec.path)
	assert.JSONEq(t, `{"name":"demo-key","rate_limit_per_min":120}`, string(rec.body))
	assert.Equal(t, "k-abc", key.Key)
}

func TestCreateCompany(t *testing.T) {
	srv, rec := newRecordingServer(t, schema.Company{ID: "c-1", Name: "Acme AI"})
	client := NewClient(srv.URL, nil)

	company, err := client.CreateCompany(context.Background(), "t-1", schema.CompanyRequest{
		Name:   "Acme AI",
		Domain: "acme-ai.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "/tenants/t-1/companies/", rec.path)
	assert.JSONEq(t, `{"name":"Acme AI","domain":"acme-ai.com"}`, string(rec.body))
	assert.Equal(t, "c-1", company.ID)
}

func TestIngestAndPipeline(t *testing.T) {
	srv, rec := newRecordingServer(t, nil)
	client := NewClient(srv.URL, nil)

	require.NoError(t, client.IngestSource(context.Background(), "t-1", "c-1", schema.SECMockSource))
	assert.Equal(t, "/tenants/t-1/companies/ingest/c-1", rec.path)
	assert.Equal(t, "source=sec_mock", rec.query)

	require.NoError(t, client.RunPipeline(context.Background(), "t-1", []string{schema.MockSource, schema.SECMockSource}))
	assert.Equal(t, "/tenants/t-1/pipeline/run", rec.path)
	assert.Equal(t, "source=mock%2Csec_mock", rec.query)
}

func TestDashboardReads(t *testing.T) {
	t.Run("intents", func(t *testing.T) {
		srv, rec := newRecordingServer(t, dashboardEnvelope{
			Items: []schema.IntentRecord{{IntentType: "IPO_PREP", Confidence: 0.8}},
		})
		client := NewClient(srv.URL, nil)

		items, err := client.IntentDashboard(context.Background(), "t-1", "c-1")

		require.NoError(t, err)
		assert.Equal(t, "/tenants/t-1/companies/c-1/intents/dashboard", rec.path)
		require.Len(t, items, 1)
		assert.Equal(t, "IPO_PREP", items[0].IntentType)
	})

	t.Run("timeline", func(t *testing.T) {
		srv, rec := newRecordingServer(t, timelineEnvelope{
			Series: []schema.TimelineSeries{{IntentType: "IPO_PREP"}},
		})
		client := NewClient(srv.URL, nil)

		series, err := client.IntentTimeline(context.Background(), "t-1", "c-1", 1095)

		require.NoError(t, err)
		assert.Equal(t, "/tenants/t-1/companies/c-1/intents/timeline", rec.path)
		assert.Equal(t, "days=1095", rec.query)
		require.Len(t, series, 1)
	})

	t.Run("readiness", func(t *testing.T) {
		srv, rec := newRecordingServer(t, readinessEnvelope{
			Points: []schema.ReadinessPoint{{RuleHits: 2}},
		})
		client := NewClient(srv.URL, nil)

		points, err := client.ReadinessTimeline(context.Background(), "t-1", "c-1", 1095)

		require.NoError(t, err)
		assert.Equal(t, "/tenants/t-1/companies/c-1/timeline/ipo_prep", rec.path)
		require.Len(t, points, 1)
	})

	t.Run("signals decode bare array", func(t *testing.T) {
		srv, rec := newRecordingServer(t, []map[string]string{
			{"timestamp": "2025-06-01T00:00:00Z"},
		})
		client := NewClient(srv.URL, nil)

		signals, err := client.RecentSignals(context.Background(), "t-1", "c-1")

		require.NoError(t, err)
		assert.Equal(t, "/tenants/t-1/companies/c-1/signals/recent", rec.path)
		require.Len(t, signals, 1)
		assert.Equal(t, 2025, signals[0].Timestamp.Year())
	})
}

func TestBacktestRoutes(t *testing.T) {
	srv, rec := newRecordingServer(t, nil)
	client := NewClient(srv.URL, nil)

	require.NoError(t, client.RecordOutcome(context.Background(), "t-1", "c-1", schema.OutcomeRequest{
		OutcomeType: "IPO", Timestamp: "2025-09-01T00:00:00Z", Source: "demo",
	}))
	assert.Equal(t, "/tenants/t-1/companies/c-1/outcomes", rec.path)

	require.NoError(t, client.RunBacktest(context.Background(), "t-1", "c-1", 1095))
	assert.Equal(t, "/tenants/t-1/companies/c-1/backtest/run", rec.path)
	assert.Equal(t, "lookback_days=1095", rec.query)
}

func TestBacktestReportAndKPIs(t *testing.T) {
	avgLag := 45.0
	srv, _ := newRecordingServer(t, reportEnvelope{
		Metrics: []schema.BacktestMetric{
			{OutcomeType: "IPO", Outcomes: 10, Matched: 6, MatchRate: 0.6, AvgLagDays: &avgLag},
			{OutcomeType: "LAYOFF", Outcomes: 5},
		},
	})
	client := NewClient(srv.URL, nil)

	metrics, err := client.BacktestReport(context.Background(), "t-1", "c-1")

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	require.NotNil(t, metrics[0].AvgLagDays)
	assert.Equal(t, 45.0, *metrics[0].AvgLagDays)
	assert.Nil(t, metrics[1].AvgLagDays, "absent lag stays nil, never zero")

	t.Run("kpis may be absent", func(t *testing.T) {
		srv, _ := newRecordingServer(t, kpiEnvelope{})
		client := NewClient(srv.URL, nil)

		kpis, err := client.BacktestKPIs(context.Background(), "t-1", "c-1")

		require.NoError(t, err)
		assert.Nil(t, kpis)
	})
}

func TestWatchlistAndPortfolio(t *testing.T) {
	srv, rec := newRecordingServer(t, watchlistEnvelope{
		Items: []schema.WatchlistEntry{{CompanyID: "c-1", AlertEligible: true}},
	})
	client := NewClient(srv.URL, nil)

	items, err := client.Watchlist(context.Background(), "t-1")

	require.NoError(t, err)
	assert.Equal(t, "/tenants/t-1/watchlist", rec.path)
	require.Len(t, items, 1)
	assert.True(t, items[0].AlertEligible)

	t.Run("portfolio", func(t *testing.T) {
		srv, rec := newRecordingServer(t, schema.PortfolioReport{
			Summary: schema.PortfolioSummary{Companies: 2},
			Rows: []schema.PortfolioRow{
				{CompanyName: "Acme AI", Status: "tracking"},
			},
		})
		client := NewClient(srv.URL, nil)

		report, err := client.PortfolioReport(context.Background(), "t-1")

		require.NoError(t, err)
		assert.Equal(t, "/tenants/t-1/backtest/ipo_report", rec.path)
		assert.Equal(t, 2, report.Summary.Companies)
		assert.Nil(t, report.Rows[0].S1Date)
	})
}

func TestPathEscaping(t *testing.T) {
	srv, rec := newRecordingServer(t, dashboardEnvelope{})
	client := NewClient(srv.URL, nil)

	_, err := client.IntentDashboard(context.Background(), "t 1", "c/1")

	require.NoError(t, err)
	assert.Equal(t, "/tenants/t 1/companies/c/1/intents/dashboard", rec.path, "ids are escaped on the wire and decode back")
}
