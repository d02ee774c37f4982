// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the sdrfbench MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"SDRF Benchmark Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_submission ---
	s.AddTool(mcp.NewTool("score_submission",
		mcp.WithDescription("Score an SDRF submission table against the solution table using clustered set F1."),
		mcp.WithString("solution_path", mcp.Description("Path to the solution CSV (defaults to the configured data directory).")),
		mcp.WithString("submission_path", mcp.Description("Path to the submission CSV to score.")),
		mcp.WithString("group_key", mcp.Description("Column that partitions rows into datasets. Defaults to 'PXD'.")),
		mcp.WithNumber("threshold", mcp.Description("Similarity threshold for clustering, in (0, 1]. Defaults to 0.80.")),
	), h.handleScoreSubmission)

	// --- 2. Tool: check_submission ---
	s.AddTool(mcp.NewTool("check_submission",
		mcp.WithDescription("Validate the structure of an SDRF submission against the template (columns, rows, identity cells)."),
		mcp.WithString("template_path", mcp.Description("Path to the template CSV.")),
		mcp.WithString("submission_path", mcp.Description("Path to the submission CSV to check.")),
	), h.handleCheckSubmission)

	return s
}

// StartMCPServer starts the sdrfbench MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
