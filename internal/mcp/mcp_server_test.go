package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/internal/contract"
	mcp_internal "github.com/intentops/intentctl/internal/mcp"
	"github.com/intentops/intentctl/schema"
)

// stubGateway serves canned analytics payloads for handler tests.
type stubGateway struct {
	intents []schema.IntentRecord
	entries []schema.WatchlistEntry
	metrics []schema.BacktestMetric
	kpis    *schema.BacktestKPI
}

func (g *stubGateway) CreateTenant(context.Context, string) (*schema.Tenant, error) {
	return &schema.Tenant{ID: "t-1"}, nil
}

func (g *stubGateway) CreateAPIKey(context.Context, string, string, int) (*schema.APIKey, error) {
	return &schema.APIKey{Key: "k"}, nil
}

func (g *stubGateway) CreateCompany(context.Context, string, schema.CompanyRequest) (*schema.Company, error) {
	return &schema.Company{ID: "c-1"}, nil
}

func (g *stubGateway) IngestSource(context.Context, string, string, string) error { return nil }

func (g *stubGateway) RunPipeline(context.Context, string, []string) error { return nil }

func (g *stubGateway) IntentDashboard(_ context.Context, tenantID, companyID string) ([]schema.IntentRecord, error) {
	if tenantID == "" {
		return nil, &inputError{field: "tenant id"}
	}
	if companyID == "" {
		return nil, &inputError{field: "company id"}
	}
	return g.intents, nil
}

func (g *stubGateway) IntentTimeline(context.Context, string, string, int) ([]schema.TimelineSeries, error) {
	return nil, nil
}

func (g *stubGateway) ReadinessTimeline(context.Context, string, string, int) ([]schema.ReadinessPoint, error) {
	return nil, nil
}

func (g *stubGateway) Explain(context.Context, string, string) (*schema.ExplainResult, error) {
	return &schema.ExplainResult{}, nil
}

func (g *stubGateway) RecentSignals(context.Context, string, string) ([]schema.SignalEvent, error) {
	return nil, nil
}

func (g *stubGateway) Watchlist(_ context.Context, tenantID string) ([]schema.WatchlistEntry, error) {
	if tenantID == "" {
		return nil, &inputError{field: "tenant id"}
	}
	return g.entries, nil
}

func (g *stubGateway) RecordOutcome(context.Context, string, string, schema.OutcomeRequest) error {
	return nil
}

func (g *stubGateway) RunBacktest(context.Context, string, string, int) error { return nil }

func (g *stubGateway) BacktestReport(context.Context, string, string) ([]schema.BacktestMetric, error) {
	return g.metrics, nil
}

func (g *stubGateway) BacktestKPIs(context.Context, string, string) (*schema.BacktestKPI, error) {
	return g.kpis, nil
}

func (g *stubGateway) PortfolioReport(context.Context, string) (*schema.PortfolioReport, error) {
	return &schema.PortfolioReport{}, nil
}

type inputError struct{ field string }

func (e *inputError) Error() string { return "enter a " + e.field + " first" }

func TestMCPServerHandlers(t *testing.T) {
	gw := &stubGateway{
		intents: []schema.IntentRecord{
			{IntentType: "IPO_PREP", Confidence: 0.82, Explanation: "filing language detected"},
		},
		entries: []schema.WatchlistEntry{
			{CompanyID: "c-1", CompanyName: "Acme AI"},
		},
		metrics: []schema.BacktestMetric{
			{OutcomeType: "IPO", Outcomes: 10, Matched: 7, MatchRate: 0.7},
		},
		kpis: &schema.BacktestKPI{K: 20, PrecisionAtK: 0.65},
	}
	baseCfg := &contract.Config{
		TenantID:     "t-1",
		CompanyID:    "c-1",
		Precision:    1,
		TimelineDays: contract.DefaultTimelineDays,
	}
	s := mcp_internal.NewMCPServer(baseCfg, gw)
	ctx := context.Background()

	t.Run("get_company_dashboard returns view JSON", func(t *testing.T) {
		tool := s.GetTool("get_company_dashboard")
		require.NotNil(t, tool, "Tool get_company_dashboard should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_company_dashboard", Arguments: map[string]any{}},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "IPO_PREP")
	})

	t.Run("get_company_dashboard missing tenant", func(t *testing.T) {
		tool := s.GetTool("get_company_dashboard")
		require.NotNil(t, tool)

		emptyCfg := &contract.Config{Precision: 1, TimelineDays: contract.DefaultTimelineDays}
		sEmpty := mcp_internal.NewMCPServer(emptyCfg, gw)
		emptyTool := sEmpty.GetTool("get_company_dashboard")
		require.NotNil(t, emptyTool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_company_dashboard", Arguments: map[string]any{}},
		}
		res, err := emptyTool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "enter a tenant id first")
	})

	t.Run("get_watchlist returns ranked rows", func(t *testing.T) {
		tool := s.GetTool("get_watchlist")
		require.NotNil(t, tool, "Tool get_watchlist should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_watchlist", Arguments: map[string]any{}},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "Acme AI")
	})

	t.Run("get_backtest_scorecard folds metrics", func(t *testing.T) {
		tool := s.GetTool("get_backtest_scorecard")
		require.NotNil(t, tool, "Tool get_backtest_scorecard should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_backtest_scorecard", Arguments: map[string]any{}},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"has_data": true`)
		assert.Contains(t, text, "IPO")
	})

	t.Run("tenant override argument wins", func(t *testing.T) {
		tool := s.GetTool("get_watchlist")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_watchlist",
				Arguments: map[string]any{"tenant_id": "t-override"},
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
	})
}
