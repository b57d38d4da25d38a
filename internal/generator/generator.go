package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/endurely/internal/models"
	"github.com/openai/openai-go/v2"
)

const (
	// directMaxWeeks is the longest program generated in a single completion
	// call. Longer programs are decomposed week-by-week: their JSON does not
	// fit reliably in one response.
	directMaxWeeks = 6

	// programTokenBudget caps the output of a whole-program call.
	programTokenBudget = 16000

	// weekTokenBudget caps the output of a single-week call.
	weekTokenBudget = 3000

	// jsonPreviewLimit bounds how much offending text a MalformedJSON error
	// carries, to aid debugging without flooding logs.
	jsonPreviewLimit = 800
)

// Generator turns a ProgramRequest into a validated TrainingProgram by
// orchestrating prompt building, adaptive completion calls, JSON extraction,
// and day normalization. It holds no state across calls; intermediate JSON is
// scoped to the call that produced it.
type Generator struct {
	client *Client
	log    *slog.Logger

	// Temperature, when set, is forwarded on every completion call. Nil
	// keeps the provider's implicit default, which is the only value some
	// deployments accept.
	Temperature *float64
}

// New creates a Generator backed by the given completion client.
func New(client *Client, log *slog.Logger) *Generator {
	return &Generator{client: client, log: log}
}

// GenerateProgram produces a complete training program. Programs of up to
// six weeks are generated in one completion call; longer ones are decomposed
// into per-phase, per-week calls. Either way the result is validated into the
// domain schema before being returned, and any failure fails the whole
// request — no partial program is ever returned.
func (g *Generator) GenerateProgram(ctx context.Context, req *models.ProgramRequest) (*models.TrainingProgram, error) {
	if req.DurationWeeks > directMaxWeeks {
		return g.generateProgressive(ctx, req)
	}

	g.log.Info("generating program", "mode", "direct", "goal", req.Goal, "weeks", req.DurationWeeks)

	res, err := g.client.createChatCompletion(ctx, completionRequest{
		messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(req, true)),
		},
		temperature:     g.Temperature,
		maxOutputTokens: programTokenBudget,
		jsonObject:      true,
	})
	if err != nil {
		return nil, err
	}

	content := ExtractJSONObject(res.content)
	if strings.TrimSpace(content) == "" {
		return nil, failf(EmptyResponse,
			"model returned no content (finish_reason=%q); this can happen with auth/deployment issues, content filtering, or unsupported parameters",
			res.finishReason)
	}
	if res.finishReason == "length" {
		return nil, failf(TruncatedResponse,
			"model hit the token limit after %d chars of JSON; reduce duration_weeks (currently %d), increase the output budget (currently %d), or use a model with larger output capacity",
			len(content), req.DurationWeeks, programTokenBudget)
	}

	var programData map[string]any
	if err := json.Unmarshal([]byte(content), &programData); err != nil {
		return nil, wrapf(MalformedJSON, err, "model did not return valid JSON; first %d chars: %s",
			jsonPreviewLimit, jsonPreview(content))
	}

	programData = AssignWeekdays(programData)

	var program models.TrainingProgram
	if err := redecode(programData, &program); err != nil {
		return nil, wrapf(SchemaValidationFailed, err, "generated program does not match the schema")
	}
	if err := program.Validate(); err != nil {
		return nil, wrapf(SchemaValidationFailed, err, "generated program failed validation")
	}
	return &program, nil
}

// generateProgressive builds a long program one week at a time across the
// four periodization phases. Weeks are numbered sequentially from 1 across
// phase boundaries; a failure on any week fails the whole assembly.
func (g *Generator) generateProgressive(ctx context.Context, req *models.ProgramRequest) (*models.TrainingProgram, error) {
	phases, err := SplitPhases(req.DurationWeeks)
	if err != nil {
		return nil, err
	}

	g.log.Info("generating program", "mode", "progressive", "goal", req.Goal, "weeks", req.DurationWeeks,
		"base", phases[0].Weeks, "build", phases[1].Weeks, "peak", phases[2].Weeks, "taper", phases[3].Weeks)

	var weeks []models.WeekPlan
	weekNum := 1
	for _, phase := range phases {
		for i := 0; i < phase.Weeks; i++ {
			week, err := g.GenerateSingleWeek(ctx, req, weekNum, phase.Name)
			if err != nil {
				return nil, fmt.Errorf("week %d (%s phase): %w", weekNum, phase.Name, err)
			}
			weeks = append(weeks, *week)
			weekNum++
		}
	}

	program := &models.TrainingProgram{
		Goal:          req.Goal,
		FitnessLevel:  req.FitnessLevel,
		DurationWeeks: req.DurationWeeks,
		Weeks:         weeks,
		Notes: fmt.Sprintf("%d-week %s program with %dw base, %dw build, %dw peak, %dw taper phases",
			req.DurationWeeks, req.Goal, phases[0].Weeks, phases[1].Weeks, phases[2].Weeks, phases[3].Weeks),
	}
	if err := program.Validate(); err != nil {
		return nil, wrapf(SchemaValidationFailed, err, "assembled program failed validation")
	}
	return program, nil
}

// GenerateSingleWeek produces one validated week of training. Progressive
// mode calls it per week; it is also exposed for ad-hoc extension of an
// existing program. The returned week carries the caller's week number
// regardless of what the model echoed back.
func (g *Generator) GenerateSingleWeek(ctx context.Context, req *models.ProgramRequest, weekNumber int, phase string) (*models.WeekPlan, error) {
	res, err := g.client.createChatCompletion(ctx, completionRequest{
		messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildWeekPrompt(req, weekNumber, phase)),
		},
		temperature:     g.Temperature,
		maxOutputTokens: weekTokenBudget,
		jsonObject:      true,
	})
	if err != nil {
		return nil, err
	}

	content := ExtractJSONObject(res.content)
	if strings.TrimSpace(content) == "" {
		return nil, failf(EmptyResponse,
			"model returned no content for week %d (finish_reason=%q)", weekNumber, res.finishReason)
	}
	if res.finishReason == "length" {
		return nil, failf(TruncatedResponse,
			"model hit the token limit on week %d; increase the output budget (currently %d) or use a model with larger output capacity",
			weekNumber, weekTokenBudget)
	}

	var weekData map[string]any
	if err := json.Unmarshal([]byte(content), &weekData); err != nil {
		return nil, wrapf(MalformedJSON, err, "model did not return valid JSON for week %d; first %d chars: %s",
			weekNumber, jsonPreviewLimit, jsonPreview(content))
	}

	// Reuse the program-shaped normalizer by wrapping the single week.
	normalized := AssignWeekdays(map[string]any{"weeks": []any{weekData}})
	weekData, _ = normalized["weeks"].([]any)[0].(map[string]any)

	var week models.WeekPlan
	if err := redecode(weekData, &week); err != nil {
		return nil, wrapf(SchemaValidationFailed, err, "week %d does not match the schema", weekNumber)
	}
	week.WeekNumber = weekNumber
	if err := week.Validate(); err != nil {
		return nil, wrapf(SchemaValidationFailed, err, "week %d failed validation", weekNumber)
	}
	return &week, nil
}

// redecode round-trips a decoded JSON structure into a typed value so the
// schema types' coercing unmarshallers run.
func redecode(data map[string]any, dst any) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}

// jsonPreview returns a bounded single-line preview of offending text.
func jsonPreview(s string) string {
	if len(s) > jsonPreviewLimit {
		s = s[:jsonPreviewLimit]
	}
	return strings.ReplaceAll(s, "\n", `\n`)
}
