// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/intentops/intentctl/internal/contract"
)

// NewMCPServer initializes and configures the intentctl MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, gw contract.Gateway) *server.MCPServer {
	s := server.NewMCPServer(
		"Intent Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		gw:      gw,
	}

	// --- 1. Tool: get_company_dashboard ---
	s.AddTool(mcp.NewTool("get_company_dashboard",
		mcp.WithDescription("Load the full intent dashboard for a company: detections, evidence feed, timelines and explainability."),
		mcp.WithString("tenant_id", mcp.Description("Tenant id owning the company (defaults to the configured tenant).")),
		mcp.WithString("company_id", mcp.Description("Company id to load (defaults to the configured company).")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days for timeline panels.")),
	), h.handleGetCompanyDashboard)

	// --- 2. Tool: get_watchlist ---
	s.AddTool(mcp.NewTool("get_watchlist",
		mcp.WithDescription("Load the tenant's deduplicated, ranked company watchlist plus the portfolio backtest summary."),
		mcp.WithString("tenant_id", mcp.Description("Tenant id to load (defaults to the configured tenant).")),
	), h.handleGetWatchlist)

	// --- 3. Tool: get_backtest_scorecard ---
	s.AddTool(mcp.NewTool("get_backtest_scorecard",
		mcp.WithDescription("Fetch the latest backtest metrics and KPIs for a company and fold them into a scorecard."),
		mcp.WithString("tenant_id", mcp.Description("Tenant id owning the company (defaults to the configured tenant).")),
		mcp.WithString("company_id", mcp.Description("Company id to report on (defaults to the configured company).")),
	), h.handleGetBacktestScorecard)

	return s
}

// StartMCPServer starts the intentctl MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, gw contract.Gateway) error {
	s := NewMCPServer(baseCfg, gw)
	return server.ServeStdio(s)
}
