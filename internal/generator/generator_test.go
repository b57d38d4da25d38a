package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/claude/endurely/internal/models"
	"github.com/openai/openai-go/v2"
)

func testRequest(weeks int) *models.ProgramRequest {
	return &models.ProgramRequest{
		SportType:             models.SportTypeTriathlon,
		Goal:                  models.RaceSprint,
		FitnessLevel:          models.FitnessBeginner,
		AvailableHoursPerWeek: 6,
		CurrentWeek:           1,
		DurationWeeks:         weeks,
	}
}

// testWeekJSON builds one week of model-shaped JSON with day fields omitted,
// so the day normalizer has work to do.
func testWeekJSON(weekNumber int, focus string) map[string]any {
	workout := func(sport, title string, rest bool) map[string]any {
		return map[string]any{
			"sport":                  sport,
			"title":                  title,
			"is_rest_day":            rest,
			"total_duration_minutes": 60,
			"warmup":                 "10 min easy",
			"main_set": []any{map[string]any{
				"duration_minutes": 40, "intensity": "Zone 2", "description": "Steady effort",
			}},
			"cooldown": "10 min easy",
		}
	}
	return map[string]any{
		"week_number": weekNumber,
		"focus":       focus,
		"workouts": []any{
			workout("swim", "Technique Swim", false),
			workout("bike", "Endurance Ride", false),
			workout("rest", "Rest Day", true),
			workout("run", "Tempo Run", false),
			workout("brick (bike + run)", "Brick Session", false),
		},
		"weekly_volume_hours": 6.0,
		"weekly_distance_km":  45.0,
	}
}

func testProgramJSON(t *testing.T, weeks int) string {
	t.Helper()
	wk := make([]any, weeks)
	for i := range wk {
		wk[i] = testWeekJSON(i+1, "Base Building")
	}
	buf, err := json.Marshal(map[string]any{
		"goal":           "sprint",
		"fitness_level":  "beginner",
		"duration_weeks": weeks,
		"weeks":          wk,
		"notes":          "Program overview",
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(buf)
}

// TestGenerateProgram_Direct is the end-to-end direct-mode scenario: a
// 4-week sprint request resolves in one completion call, every workout ends
// up with a day, and every sport is in the closed vocabulary.
func TestGenerateProgram_Direct(t *testing.T) {
	var programJSON string
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		return chatResponse("Here is your program:\n```json\n"+programJSON+"\n```\nGood luck!", "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())
	programJSON = testProgramJSON(t, 4)

	program, err := g.GenerateProgram(context.Background(), testRequest(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("completion calls = %d, want 1", len(fake.calls))
	}
	if len(program.Weeks) != 4 {
		t.Fatalf("weeks = %d, want 4", len(program.Weeks))
	}
	if program.Goal != models.RaceSprint || program.FitnessLevel != models.FitnessBeginner {
		t.Errorf("program header = %s/%s", program.Goal, program.FitnessLevel)
	}
	for wi, week := range program.Weeks {
		for i, wo := range week.Workouts {
			if !wo.Day.Known() {
				t.Errorf("week %d workout %d: day = %q", wi+1, i, wo.Day)
			}
			if !wo.Sport.Known() {
				t.Errorf("week %d workout %d: sport = %q", wi+1, i, wo.Sport)
			}
		}
	}
	// Coercions applied before validation: "rest" -> swim, brick -> bike.
	if got := program.Weeks[0].Workouts[2].Sport; got != models.SportSwim {
		t.Errorf("rest-day sport = %q, want swim", got)
	}
	if got := program.Weeks[0].Workouts[4].Sport; got != models.SportBike {
		t.Errorf("brick sport = %q, want bike", got)
	}
}

// TestGenerateProgram_Truncated verifies finish_reason=length surfaces as a
// TruncatedResponse whose detail carries actionable guidance.
func TestGenerateProgram_Truncated(t *testing.T) {
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		return chatResponse(`{"goal": "sprint", "weeks": [`, "length"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	_, err := g.GenerateProgram(context.Background(), testRequest(4))
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != TruncatedResponse {
		t.Errorf("kind = %v, want %v", KindOf(err), TruncatedResponse)
	}
	if !strings.Contains(err.Error(), "duration_weeks") {
		t.Errorf("detail should suggest reducing duration_weeks: %v", err)
	}
}

// TestGenerateProgram_Empty verifies a contentless response surfaces as
// EmptyResponse including the finish reason.
func TestGenerateProgram_Empty(t *testing.T) {
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		return chatResponse("", "content_filter"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	_, err := g.GenerateProgram(context.Background(), testRequest(4))
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != EmptyResponse {
		t.Errorf("kind = %v, want %v", KindOf(err), EmptyResponse)
	}
	if !strings.Contains(err.Error(), "content_filter") {
		t.Errorf("detail should carry the finish reason: %v", err)
	}
}

// TestGenerateProgram_MalformedJSON verifies unparseable output surfaces as
// MalformedJSON with a bounded preview of the offending text.
func TestGenerateProgram_MalformedJSON(t *testing.T) {
	long := `{"goal": "sprint", ` + strings.Repeat("x", 2000)
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		return chatResponse(long, "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	_, err := g.GenerateProgram(context.Background(), testRequest(4))
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != MalformedJSON {
		t.Errorf("kind = %v, want %v", KindOf(err), MalformedJSON)
	}
	if len(err.Error()) > jsonPreviewLimit+200 {
		t.Errorf("error detail too long (%d chars), preview not bounded", len(err.Error()))
	}
}

// TestGenerateProgram_SchemaValidation verifies that JSON parsing may succeed
// while validation still rejects out-of-vocabulary values, naming the field.
func TestGenerateProgram_SchemaValidation(t *testing.T) {
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		return chatResponse(`{"goal": "vertical kilometer", "fitness_level": "beginner", "duration_weeks": 4, "weeks": [], "notes": ""}`, "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	_, err := g.GenerateProgram(context.Background(), testRequest(4))
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != SchemaValidationFailed {
		t.Errorf("kind = %v, want %v", KindOf(err), SchemaValidationFailed)
	}
	if !strings.Contains(err.Error(), "goal") {
		t.Errorf("detail should name the failing field: %v", err)
	}
}

// TestGenerateProgram_Progressive verifies the 12-week decomposition: one
// call per week across Base/Build/Peak/Taper, week numbers strictly
// sequential from 1, and the phase summary recorded in the notes.
func TestGenerateProgram_Progressive(t *testing.T) {
	call := 0
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		call++
		buf, _ := json.Marshal(testWeekJSON(call, fmt.Sprintf("Week %d Training", call)))
		return chatResponse(string(buf), "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	program, err := g.GenerateProgram(context.Background(), testRequest(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.calls) != 12 {
		t.Errorf("completion calls = %d, want 12", len(fake.calls))
	}
	if len(program.Weeks) != 12 {
		t.Fatalf("weeks = %d, want 12", len(program.Weeks))
	}
	for i, week := range program.Weeks {
		if week.WeekNumber != i+1 {
			t.Errorf("weeks[%d].week_number = %d, want %d", i, week.WeekNumber, i+1)
		}
	}
	if !strings.Contains(program.Notes, "7w base, 3w build, 1w peak, 1w taper") {
		t.Errorf("notes = %q", program.Notes)
	}
}

// TestGenerateProgram_ProgressiveWeekFailure verifies a single failed week
// fails the whole assembly with no partial program.
func TestGenerateProgram_ProgressiveWeekFailure(t *testing.T) {
	call := 0
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		call++
		if call == 5 {
			return nil, errors.New("503: The service is temporarily unable to process your request.")
		}
		buf, _ := json.Marshal(testWeekJSON(call, "Base Training"))
		return chatResponse(string(buf), "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	program, err := g.GenerateProgram(context.Background(), testRequest(12))
	if err == nil {
		t.Fatal("expected error")
	}
	if program != nil {
		t.Error("no partial program may be returned")
	}
	if KindOf(err) != ProviderRejected {
		t.Errorf("kind = %v, want %v", KindOf(err), ProviderRejected)
	}
	if !strings.Contains(err.Error(), "week 5") {
		t.Errorf("error should name the failed week: %v", err)
	}
	if len(fake.calls) != 5 {
		t.Errorf("completion calls = %d, want 5 (stop at first failure)", len(fake.calls))
	}
}

// TestGenerateSingleWeek verifies the ad-hoc single-week operation returns a
// validated week carrying the caller's week number, with days assigned.
func TestGenerateSingleWeek(t *testing.T) {
	fake := &fakeCompleter{respond: func(openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
		buf, _ := json.Marshal(testWeekJSON(99, "Peak Training"))
		return chatResponse(string(buf), "stop"), nil
	}}
	g := New(NewClientWithCompleter(fake, "gpt-test", nil, testLogger()), testLogger())

	week, err := g.GenerateSingleWeek(context.Background(), testRequest(12), 11, "Peak")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week.WeekNumber != 11 {
		t.Errorf("week_number = %d, want 11 (caller-assigned)", week.WeekNumber)
	}
	if week.Focus != "Peak Training" {
		t.Errorf("focus = %q", week.Focus)
	}
	for i, wo := range week.Workouts {
		if !wo.Day.Known() {
			t.Errorf("workout %d: day = %q", i, wo.Day)
		}
	}
}
