// ABOUTME: MCP resource implementations for the habit tracker.
// ABOUTME: Provides levelup://status, levelup://weekly and levelup://export.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// levelup://status - current score, level, streak and today's budget
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "levelup://status",
		Name:        "Current Status",
		Description: "Score, level, streak and today's XP budget",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// levelup://weekly - the 7-day report
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "levelup://weekly",
		Name:        "Weekly Report",
		Description: "Per-day XP totals, run/study split and mission rate for the last 7 days",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)

	// levelup://export - every stored blob, for backup
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "levelup://export",
		Name:        "Full Data Export",
		Description: "Every stored record keyed by its storage key",
		MIMEType:    "application/json",
	}, s.handleExportResource)
}

// Resource handlers

func (s *Server) handleStatusResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.tracker.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}
	return jsonResource("levelup://status", st)
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, comment, err := s.tracker.Weekly()
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly report: %w", err)
	}
	return jsonResource("levelup://weekly", map[string]any{
		"summary": sum,
		"comment": comment,
	})
}

func (s *Server) handleExportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	dump, err := s.store.Dump()
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return jsonResource("levelup://export", dump)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
