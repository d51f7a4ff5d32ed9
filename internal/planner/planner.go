// Package planner orchestrates plan production: one model attempt at most,
// any failure funneled to the deterministic fallback. Callers always receive
// a usable plan; provenance records where it came from.
package planner

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/claude/coachplan/internal/fallback"
	"github.com/claude/coachplan/internal/plan"
)

// ModelClient is the outbound generative-model dependency. Satisfied by
// *anthropic.Client; tests substitute stubs.
type ModelClient interface {
	CreateText(ctx context.Context, system, user string) (string, error)
}

// Plan source values reported in provenance.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// ReasonNoClient marks fallback plans produced because no model client is
// configured. Model-path failures get "ai_error: " plus a short diagnostic.
const ReasonNoClient = "no_client"

const reasonAIErrorPrefix = "ai_error: "

// Request carries the four user inputs. Zero values are replaced by the
// documented defaults; nothing is trusted as pre-validated.
type Request struct {
	Goal        string `json:"goal"`
	DaysPerWeek int    `json:"days_per_week"`
	DietType    string `json:"diet_type"`
	Age         int    `json:"age"`
}

// normalized applies defaults and clamps. The same values feed both the
// model prompt and, when needed, the fallback generator.
func (r Request) normalized() Request {
	out := Request{
		Goal:        strings.ToLower(strings.TrimSpace(r.Goal)),
		DietType:    strings.ToLower(strings.TrimSpace(r.DietType)),
		DaysPerWeek: r.DaysPerWeek,
		Age:         r.Age,
	}
	if out.Goal == "" {
		out.Goal = "general"
	}
	if out.DietType == "" {
		out.DietType = "vegetarian"
	}
	if out.DaysPerWeek == 0 {
		out.DaysPerWeek = 3
	}
	if out.Age == 0 {
		out.Age = 30
	}
	out.DaysPerWeek = clamp(out.DaysPerWeek, 1, 6)
	out.Age = clamp(out.Age, 12, 90)
	return out
}

// Result is the single outcome record: a valid Plan plus provenance. Reason
// is empty when the model produced the plan.
type Result struct {
	Plan   *plan.Plan
	UsedAI bool
	Source string
	Reason string
}

// Service produces plans. Safe for concurrent use: it holds no mutable
// state beyond its injected dependencies.
type Service struct {
	client ModelClient
	log    *slog.Logger
}

// New creates a Service. client may be nil, in which case every request is
// served by the fallback generator.
func New(client ModelClient, log *slog.Logger) *Service {
	return &Service{client: client, log: log}
}

// ProducePlan runs the pipeline: at most one model call, normalization of
// its output, and the fallback as the terminal step. It cannot fail; model
// errors surface only in the Result's provenance.
func (s *Service) ProducePlan(ctx context.Context, req Request) Result {
	req = req.normalized()

	if s.client == nil {
		return Result{
			Plan:   fallback.Generate(req.Goal, req.DaysPerWeek, req.DietType, req.Age),
			Source: SourceFallback,
			Reason: ReasonNoClient,
		}
	}

	p, diag := s.tryModel(ctx, req)
	if p != nil {
		return Result{Plan: p, UsedAI: true, Source: SourceAI}
	}

	s.log.Warn("model plan rejected, using fallback", "reason", diag)
	return Result{
		Plan:   fallback.Generate(req.Goal, req.DaysPerWeek, req.DietType, req.Age),
		Source: SourceFallback,
		Reason: reasonAIErrorPrefix + diag,
	}
}

// tryModel makes the single model attempt. Transport failures, unparseable
// output, and schema violations all collapse to (nil, diagnostic); the
// attempt is discarded wholesale, never partially accepted.
func (s *Service) tryModel(ctx context.Context, req Request) (*plan.Plan, string) {
	text, err := s.client.CreateText(ctx, systemPrompt, buildUserPrompt(req.Goal, req.DaysPerWeek, req.DietType, req.Age))
	if err != nil {
		return nil, err.Error()
	}

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, "response is not valid JSON: " + err.Error()
	}

	p, err := plan.Parse(raw)
	if err != nil {
		return nil, err.Error()
	}
	return p, ""
}
