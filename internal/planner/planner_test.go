package planner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/claude/coachplan/internal/fallback"
	"github.com/claude/coachplan/internal/plan"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubClient returns a canned response or error for the single model call,
// and records the prompts it was given.
type stubClient struct {
	text   string
	err    error
	system string
	user   string
	calls  int
}

func (s *stubClient) CreateText(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.system = system
	s.user = user
	return s.text, s.err
}

const validModelJSON = `{
	"workout_plan": [
		{"day": "Monday", "focus": "Push", "exercises": [
			{"name": "Push-ups", "sets": 3, "reps": "8-12", "rest_sec": 60}
		]}
	],
	"diet_plan": [
		{"day": "Monday", "meals": [{"name": "Dal + rice", "notes": "add salad"}]}
	],
	"notes": "stay consistent"
}`

// TestProducePlanNoClient verifies the no-client path: provenance reports
// the fallback with the no_client sentinel, and the plan equals the
// fallback generator's output for the same clamped inputs.
func TestProducePlanNoClient(t *testing.T) {
	s := New(nil, testLogger())

	res := s.ProducePlan(context.Background(), Request{Goal: "strength", DaysPerWeek: 3, DietType: "vegetarian", Age: 50})

	if res.UsedAI {
		t.Error("used_ai = true, want false")
	}
	if res.Source != SourceFallback {
		t.Errorf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Reason != ReasonNoClient {
		t.Errorf("reason = %q, want %q", res.Reason, ReasonNoClient)
	}
	want := fallback.Generate("strength", 3, "vegetarian", 50)
	if !reflect.DeepEqual(res.Plan, want) {
		t.Error("plan differs from fallback generator output")
	}
}

// TestProducePlanAISuccess verifies the model path: one call, used_ai=true,
// and the plan equals the normalizer's output on the returned JSON.
func TestProducePlanAISuccess(t *testing.T) {
	stub := &stubClient{text: validModelJSON}
	s := New(stub, testLogger())

	res := s.ProducePlan(context.Background(), Request{Goal: "general", DaysPerWeek: 3, DietType: "vegetarian", Age: 30})

	if stub.calls != 1 {
		t.Fatalf("model calls = %d, want exactly 1", stub.calls)
	}
	if !res.UsedAI || res.Source != SourceAI {
		t.Errorf("provenance = used_ai:%v source:%q, want ai", res.UsedAI, res.Source)
	}
	if res.Reason != "" {
		t.Errorf("reason = %q, want empty on success", res.Reason)
	}

	var raw any
	if err := json.Unmarshal([]byte(validModelJSON), &raw); err != nil {
		t.Fatal(err)
	}
	want, err := plan.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Plan, want) {
		t.Error("plan differs from normalizer output")
	}
}

// TestProducePlanTransportError verifies a failed model call degrades to
// the fallback with an ai_error reason, never an error to the caller.
func TestProducePlanTransportError(t *testing.T) {
	stub := &stubClient{err: errors.New("connection refused")}
	s := New(stub, testLogger())

	res := s.ProducePlan(context.Background(), Request{})

	if res.UsedAI || res.Source != SourceFallback {
		t.Errorf("provenance = used_ai:%v source:%q, want fallback", res.UsedAI, res.Source)
	}
	if !strings.HasPrefix(res.Reason, "ai_error: ") {
		t.Errorf("reason = %q, want ai_error prefix", res.Reason)
	}
	if !strings.Contains(res.Reason, "connection refused") {
		t.Errorf("reason = %q, want diagnostic detail", res.Reason)
	}
	if res.Plan == nil || len(res.Plan.WorkoutPlan) != 7 {
		t.Error("fallback plan missing or incomplete")
	}
}

// TestProducePlanMalformedJSON verifies non-JSON model output is discarded
// and replaced by the fallback.
func TestProducePlanMalformedJSON(t *testing.T) {
	stub := &stubClient{text: "Sure! Here is your plan:\n..."}
	s := New(stub, testLogger())

	res := s.ProducePlan(context.Background(), Request{})

	if res.Source != SourceFallback || !strings.HasPrefix(res.Reason, "ai_error: ") {
		t.Errorf("provenance = source:%q reason:%q, want fallback/ai_error", res.Source, res.Reason)
	}
}

// TestProducePlanSchemaViolation verifies a parseable but schema-violating
// payload is discarded wholesale, with no partial acceptance of valid days.
func TestProducePlanSchemaViolation(t *testing.T) {
	stub := &stubClient{text: `{"workout_plan": [{"day": "Monday"}], "diet_plan": []}`}
	s := New(stub, testLogger())

	res := s.ProducePlan(context.Background(), Request{})

	if res.UsedAI {
		t.Error("used_ai = true for rejected payload")
	}
	if !strings.Contains(res.Reason, "workout_plan[0]") {
		t.Errorf("reason = %q, want offending path", res.Reason)
	}
	if len(res.Plan.WorkoutPlan) != 7 {
		t.Errorf("plan has %d workout days, want the full fallback week", len(res.Plan.WorkoutPlan))
	}
}

// TestPromptClamping verifies the prompt embeds clamped inputs: days into
// [1,6], age into [12,90], text lowered and defaulted.
func TestPromptClamping(t *testing.T) {
	stub := &stubClient{text: validModelJSON}
	s := New(stub, testLogger())

	s.ProducePlan(context.Background(), Request{Goal: " STRENGTH ", DaysPerWeek: 9, DietType: "", Age: 5})

	for _, want := range []string{"Goal: strength", "Days per week: 6", "Diet type: vegetarian", "Age: 12"} {
		if !strings.Contains(stub.user, want) {
			t.Errorf("user prompt missing %q:\n%s", want, stub.user)
		}
	}
	if !strings.Contains(stub.system, "STRICT JSON") {
		t.Error("system prompt missing JSON instruction")
	}
}

// TestRequestNormalizedDefaults verifies zero values pick up the documented
// defaults (general, 3 days, vegetarian, age 30).
func TestRequestNormalizedDefaults(t *testing.T) {
	got := Request{}.normalized()
	want := Request{Goal: "general", DaysPerWeek: 3, DietType: "vegetarian", Age: 30}
	if got != want {
		t.Errorf("normalized zero request = %+v, want %+v", got, want)
	}
}
