package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/coachplan/internal/plan"
	"github.com/claude/coachplan/internal/planner"
	"github.com/claude/coachplan/internal/render"
)

// planResponse is the record handed to the presentation layer: the
// normalized plan, pre-rendered HTML fragments, and provenance. Reason is
// null when the model produced the plan.
type planResponse struct {
	WorkoutPlan []plan.WorkoutDay `json:"workout_plan"`
	DietPlan    []plan.DietDay    `json:"diet_plan"`
	Notes       string            `json:"notes"`
	WorkoutHTML string            `json:"workout_html"`
	DietHTML    string            `json:"diet_html"`
	UsedAI      bool              `json:"used_ai"`
	Source      string            `json:"source"`
	Reason      *string           `json:"reason"`
}

// handleGeneratePlan always answers 200 with a valid plan. User inputs are
// clamped, not rejected; an unreadable body simply means defaults. Model
// failures show up only in the source/reason fields.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planner.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Warn("plan request body unreadable, using defaults", "error", err)
		req = planner.Request{}
	}

	result := s.planner.ProducePlan(r.Context(), req)

	workoutHTML, dietHTML, err := render.Tables(result.Plan)
	if err != nil {
		s.log.Error("render error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}

	resp := planResponse{
		WorkoutPlan: result.Plan.WorkoutPlan,
		DietPlan:    result.Plan.DietPlan,
		Notes:       result.Plan.Notes,
		WorkoutHTML: workoutHTML,
		DietHTML:    dietHTML,
		UsedAI:      result.UsedAI,
		Source:      result.Source,
	}
	if result.Reason != "" {
		resp.Reason = &result.Reason
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
