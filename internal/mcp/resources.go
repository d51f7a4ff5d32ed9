package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/coachplan/internal/fallback"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) splitCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req, fallback.SplitCatalog())
}

func (h *handlers) dietCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req, fallback.DietCatalog())
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
