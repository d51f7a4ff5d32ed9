// Package mcp exposes plan generation over the Model Context Protocol so
// agent clients can request plans directly.
package mcp

import (
	"log/slog"

	"github.com/claude/coachplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(p *planner.Service, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("CoachPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("CoachPlan workout and diet planning server. Generate 7-day plans from a goal, training days per week, diet type, and age. Plans are always structurally valid; the source field reports whether the generative model or the deterministic fallback produced them."),
	)

	h := &handlers{planner: p, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGenerateFallbackPlan, Handler: h.generateFallbackPlan},
	)

	s.AddResources(
		server.ServerResource{Resource: resSplitCatalog, Handler: h.splitCatalog},
		server.ServerResource{Resource: resDietCatalog, Handler: h.dietCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	planner *planner.Service
	log     *slog.Logger
}

// --- Resource definitions ---

var resSplitCatalog = mcp.NewResource(
	"coachplan://splits",
	"Training Split Catalog",
	mcp.WithResourceDescription("Goal-to-split mapping used by the deterministic generator: ordered exercise lists per training-day theme"),
	mcp.WithMIMEType("application/json"),
)

var resDietCatalog = mcp.NewResource(
	"coachplan://diet_templates",
	"Diet Template Catalog",
	mcp.WithResourceDescription("Fixed meal-text pools per diet type (vegetarian, vegan, non_veg)"),
	mcp.WithMIMEType("application/json"),
)
