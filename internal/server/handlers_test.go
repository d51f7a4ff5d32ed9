package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/coachplan/internal/planner"
)

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(planner.New(nil, log), log)
}

func postPlan(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, resp
}

// TestHandleGeneratePlan verifies the happy path without a model client:
// 200, fallback provenance, 7-day plan, rendered fragments.
func TestHandleGeneratePlan(t *testing.T) {
	s := newTestServer()
	rec, resp := postPlan(t, s, `{"goal": "strength", "days_per_week": 3, "diet_type": "vegetarian", "age": 50}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp["used_ai"] != false {
		t.Errorf("used_ai = %v, want false", resp["used_ai"])
	}
	if resp["source"] != "fallback" {
		t.Errorf("source = %v, want fallback", resp["source"])
	}
	if resp["reason"] != "no_client" {
		t.Errorf("reason = %v, want no_client", resp["reason"])
	}

	days, ok := resp["workout_plan"].([]any)
	if !ok || len(days) != 7 {
		t.Errorf("workout_plan has %d days, want 7", len(days))
	}
	workoutHTML, _ := resp["workout_html"].(string)
	if !strings.Contains(workoutHTML, "Upper Strength") {
		t.Errorf("workout_html missing split focus:\n%s", workoutHTML)
	}
	dietHTML, _ := resp["diet_html"].(string)
	if !strings.Contains(dietHTML, "plan-table") {
		t.Error("diet_html missing table markup")
	}
	if resp["notes"] == "" {
		t.Error("notes empty")
	}
}

// TestHandleGeneratePlanBadBody verifies an unreadable body still yields a
// 200 with a default plan: user input is clamped, never rejected.
func TestHandleGeneratePlanBadBody(t *testing.T) {
	s := newTestServer()
	rec, resp := postPlan(t, s, `{{{not json`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	days, _ := resp["workout_plan"].([]any)
	if len(days) != 7 {
		t.Errorf("workout_plan has %d days, want 7", len(days))
	}
	if resp["source"] != "fallback" {
		t.Errorf("source = %v, want fallback", resp["source"])
	}
}

// TestHandleGeneratePlanEmptyBody verifies an empty object picks up the
// documented defaults (general / 3 days / vegetarian / 30).
func TestHandleGeneratePlanEmptyBody(t *testing.T) {
	s := newTestServer()
	_, resp := postPlan(t, s, `{}`)

	workoutHTML, _ := resp["workout_html"].(string)
	if !strings.Contains(workoutHTML, "Full Body") {
		t.Errorf("default goal should produce Full Body days:\n%s", workoutHTML)
	}
}

// TestHandleHealthz verifies the liveness endpoint.
func TestHandleHealthz(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
