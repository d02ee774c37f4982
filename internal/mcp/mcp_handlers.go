package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/sdrfbench/core"
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/tabfile"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleScoreSubmission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("solution_path", ""); p != "" {
		cfg.SolutionPath = p
	}
	if p := request.GetString("submission_path", ""); p != "" {
		cfg.SubmissionPath = p
	}
	if k := request.GetString("group_key", ""); k != "" {
		cfg.GroupKey = k
	}
	if th := request.GetFloat("threshold", 0); th > 0 {
		if th > 1 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid threshold %v: must be in (0, 1]", th)), nil
		}
		cfg.Threshold = th
	}

	solution, err := tabfile.Load(cfg.SolutionPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading solution failed: %v", err)), nil
	}
	submission, err := tabfile.Load(cfg.SubmissionPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading submission failed: %v", err)), nil
	}

	report, err := core.ScoreTables(solution, submission, core.ScoreOptions{
		GroupKey:  cfg.GroupKey,
		Columns:   cfg.Columns,
		Threshold: cfg.Threshold,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckSubmission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("template_path", ""); p != "" {
		cfg.TemplatePath = p
	}
	if p := request.GetString("submission_path", ""); p != "" {
		cfg.SubmissionPath = p
	}

	template, err := tabfile.Load(cfg.TemplatePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading template failed: %v", err)), nil
	}
	submission, err := tabfile.Load(cfg.SubmissionPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading submission failed: %v", err)), nil
	}

	result := core.CheckSubmission(template, submission)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
