package mcp

import (
	"context"

	"github.com/claude/coachplan/internal/fallback"
	"github.com/claude/coachplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a 7-day workout and diet plan. Tries the generative model once when configured; falls back to deterministic rule tables on any failure. The result always contains a valid plan plus provenance (used_ai, source, reason)."),
	mcp.WithString("goal", mcp.Description("Training goal: strength, hypertrophy, yoga, weight_loss, or general. Defaults to general."), mcp.Enum("strength", "hypertrophy", "yoga", "weight_loss", "general")),
	mcp.WithNumber("days_per_week", mcp.Description("Training days per week, clamped to 1-6. Defaults to 3.")),
	mcp.WithString("diet_type", mcp.Description("Diet type: vegetarian, vegan, or non_veg. Defaults to vegetarian."), mcp.Enum("vegetarian", "vegan", "non_veg")),
	mcp.WithNumber("age", mcp.Description("Age in years, clamped to 12-90. Defaults to 30.")),
)

var toolGenerateFallbackPlan = mcp.NewTool("generate_fallback_plan",
	mcp.WithDescription("Generate a plan from the deterministic rule tables only, skipping the model. Identical inputs always yield identical output."),
	mcp.WithString("goal", mcp.Description("Training goal. Defaults to general.")),
	mcp.WithNumber("days_per_week", mcp.Description("Training days per week. Defaults to 3.")),
	mcp.WithString("diet_type", mcp.Description("Diet type. Defaults to vegetarian.")),
	mcp.WithNumber("age", mcp.Description("Age in years. Defaults to 30.")),
)

// --- Tool handlers ---

func requestFromArgs(req mcp.CallToolRequest) planner.Request {
	return planner.Request{
		Goal:        req.GetString("goal", "general"),
		DaysPerWeek: req.GetInt("days_per_week", 3),
		DietType:    req.GetString("diet_type", "vegetarian"),
		Age:         req.GetInt("age", 30),
	}
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pr := requestFromArgs(req)
	res := h.planner.ProducePlan(ctx, pr)

	out := map[string]any{
		"workout_plan": res.Plan.WorkoutPlan,
		"diet_plan":    res.Plan.DietPlan,
		"notes":        res.Plan.Notes,
		"used_ai":      res.UsedAI,
		"source":       res.Source,
	}
	if res.Reason != "" {
		out["reason"] = res.Reason
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateFallbackPlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pr := requestFromArgs(req)
	p := fallback.Generate(pr.Goal, pr.DaysPerWeek, pr.DietType, pr.Age)

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
