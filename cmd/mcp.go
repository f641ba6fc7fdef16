package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the intentctl MCP server",
	Long:  `Launch an MCP server that allows AI agents to query intent dashboards, watchlists and backtest scorecards via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal status output when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gw)
	},
}
