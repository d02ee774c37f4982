package cmd

import (
	"github.com/huangsam/sdrfbench/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the sdrfbench MCP server",
	Long:  `Launch an MCP server that allows AI agents to score and check SDRF submissions via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The stdio transport carries the protocol, so setup must not
		// write to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
