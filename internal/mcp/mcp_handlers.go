package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/intentops/intentctl/core"
	"github.com/intentops/intentctl/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	gw      contract.Gateway
}

func (h *toolHandler) handleGetCompanyDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("tenant_id", ""); t != "" {
		cfg.TenantID = t
	}
	if c := request.GetString("company_id", ""); c != "" {
		cfg.CompanyID = c
	}
	if d := request.GetInt("days", 0); d > 0 {
		cfg.TimelineDays = d
	}

	view, err := core.LoadCompanyView(ctx, h.gw, nil, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dashboard load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWatchlist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("tenant_id", ""); t != "" {
		cfg.TenantID = t
	}

	view, err := core.LoadTenantView(ctx, h.gw, nil, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("watchlist load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBacktestScorecard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("tenant_id", ""); t != "" {
		cfg.TenantID = t
	}
	if c := request.GetString("company_id", ""); c != "" {
		cfg.CompanyID = c
	}

	metrics, err := h.gw.BacktestReport(ctx, cfg.TenantID, cfg.CompanyID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("backtest report failed: %v", err)), nil
	}
	kpis, err := h.gw.BacktestKPIs(ctx, cfg.TenantID, cfg.CompanyID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("backtest KPIs failed: %v", err)), nil
	}

	card := core.BuildScorecard(metrics, kpis)
	jsonData, _ := json.MarshalIndent(card, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
