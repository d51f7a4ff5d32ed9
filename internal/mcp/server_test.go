package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/coachplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

func testHandlers() *handlers {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &handlers{planner: planner.New(nil, log), log: log}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultJSON(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error: %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] type = %T, want TextContent", res.Content[0])
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	return out
}

// TestGeneratePlanTool verifies the full-pipeline tool returns a 7-day plan
// with provenance. With no model client configured it reports the fallback.
func TestGeneratePlanTool(t *testing.T) {
	h := testHandlers()

	res, err := h.generatePlan(context.Background(), toolRequest(map[string]any{
		"goal":          "hypertrophy",
		"days_per_week": float64(4),
		"diet_type":     "vegan",
		"age":           float64(28),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := resultJSON(t, res)
	if out["source"] != "fallback" || out["used_ai"] != false {
		t.Errorf("provenance = source:%v used_ai:%v, want fallback", out["source"], out["used_ai"])
	}
	if out["reason"] != "no_client" {
		t.Errorf("reason = %v, want no_client", out["reason"])
	}
	days, _ := out["workout_plan"].([]any)
	if len(days) != 7 {
		t.Errorf("workout_plan days = %d, want 7", len(days))
	}
}

// TestGenerateFallbackPlanTool verifies the deterministic tool honors its
// arguments and defaults absent ones.
func TestGenerateFallbackPlanTool(t *testing.T) {
	h := testHandlers()

	res, err := h.generateFallbackPlan(context.Background(), toolRequest(map[string]any{
		"goal": "yoga",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := resultJSON(t, res)
	days, _ := out["workout_plan"].([]any)
	if len(days) != 7 {
		t.Fatalf("workout_plan days = %d, want 7", len(days))
	}
	wed, _ := days[2].(map[string]any)
	if wed["focus"] != "Yoga Flow" {
		t.Errorf("Wednesday focus = %v, want Yoga Flow (default 3-day pattern)", wed["focus"])
	}
}

// TestSplitCatalogResource verifies the static split table is exposed as a
// JSON resource covering every goal.
func TestSplitCatalogResource(t *testing.T) {
	h := testHandlers()

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "coachplan://splits"

	contents, err := h.splitCatalog(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] type = %T", contents[0])
	}

	var catalog map[string][]map[string]any
	if err := json.Unmarshal([]byte(text.Text), &catalog); err != nil {
		t.Fatalf("resource is not JSON: %v", err)
	}
	for _, goal := range []string{"strength", "hypertrophy", "yoga", "weight_loss", "general"} {
		if len(catalog[goal]) == 0 {
			t.Errorf("catalog missing goal %q", goal)
		}
	}
}
