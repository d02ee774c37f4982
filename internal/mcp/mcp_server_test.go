package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/sdrfbench/internal/contract"
	mcp_internal "github.com/huangsam/sdrfbench/internal/mcp"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMCPServerHandlers(t *testing.T) {
	tmpDir := t.TempDir()
	solutionPath := writeCSV(t, tmpDir, "Solution.csv",
		"ID,PXD,Raw Data File,organism\n1,PXD001819,run01.raw,homo sapiens\n")
	submissionPath := writeCSV(t, tmpDir, "submission.csv",
		"ID,PXD,Raw Data File,organism\n1,PXD001819,run01.raw,Homo sapiens\n")

	baseCfg := &contract.Config{
		SolutionPath:   solutionPath,
		SubmissionPath: submissionPath,
		TemplatePath:   solutionPath,
		GroupKey:       "PXD",
		Threshold:      0.8,
	}

	// No persistence needed for the handler paths under test
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("score_submission succeeds", func(t *testing.T) {
		tool := s.GetTool("score_submission")
		require.NotNil(t, tool, "Tool score_submission should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "score_submission",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var report schema.ScoreReport
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &report))
		assert.InDelta(t, 1.0, report.Score, 0.001)
		assert.Equal(t, 1, report.ScoredPairs)
	})

	t.Run("score_submission missing file", func(t *testing.T) {
		tool := s.GetTool("score_submission")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_submission",
				Arguments: map[string]any{
					"submission_path": filepath.Join(tmpDir, "absent.csv"),
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "loading submission failed")
	})

	t.Run("score_submission invalid threshold", func(t *testing.T) {
		tool := s.GetTool("score_submission")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_submission",
				Arguments: map[string]any{
					"threshold": 1.5,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "must be in (0, 1]")
	})

	t.Run("check_submission succeeds", func(t *testing.T) {
		tool := s.GetTool("check_submission")
		require.NotNil(t, tool, "Tool check_submission should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "check_submission",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result schema.CheckResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Empty(t, result.Issues)
	})

	t.Run("check_submission reports issues", func(t *testing.T) {
		shortPath := writeCSV(t, tmpDir, "short.csv",
			"ID,PXD,Raw Data File,organism\n")

		tool := s.GetTool("check_submission")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "check_submission",
				Arguments: map[string]any{
					"submission_path": shortPath,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError, "Structural issues are results, not errors")

		var result schema.CheckResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.NotEmpty(t, result.Issues)
	})
}
