package mcp

import (
	"context"
	"time"

	"github.com/claude/endurely/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		var dateOnly bool
		end, dateOnly, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if dateOnly {
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, _, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

// parseFlexTime accepts RFC3339 or a bare date, reporting which form matched.
func parseFlexTime(s string) (time.Time, bool, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, false, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}

// requestFromArgs builds a validated ProgramRequest from tool arguments.
func requestFromArgs(req mcp.CallToolRequest) (*models.ProgramRequest, *mcp.CallToolResult) {
	goal, err := req.RequireString("goal")
	if err != nil {
		return nil, mcp.NewToolResultError("goal parameter is required")
	}
	fitness, err := req.RequireString("fitness_level")
	if err != nil {
		return nil, mcp.NewToolResultError("fitness_level parameter is required")
	}

	pr := &models.ProgramRequest{
		SportType:             models.SportType(req.GetString("sport_type", "triathlon")),
		Goal:                  models.NormalizeRaceDistance(goal),
		FitnessLevel:          models.NormalizeFitnessLevel(fitness),
		AvailableHoursPerWeek: req.GetInt("available_hours_per_week", 8),
		CurrentWeek:           req.GetInt("current_week", 1),
		DurationWeeks:         req.GetInt("duration_weeks", 12),
	}
	pr.ApplyDefaults()
	if err := pr.Validate(); err != nil {
		return nil, mcp.NewToolResultError("invalid request: " + err.Error())
	}
	return pr, nil
}

// --- Tool definitions ---

var toolGenerateProgram = mcp.NewTool("generate_program",
	mcp.WithDescription("Generate a complete periodized endurance training program and store it. Programs longer than 6 weeks are built week-by-week across base/build/peak/taper phases."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Goal race distance (e.g. sprint, olympic, 70.3, ironman, marathon, gran_fondo)")),
	mcp.WithString("fitness_level", mcp.Required(), mcp.Description("Athlete fitness level"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("sport_type", mcp.Description("Event type. Defaults to triathlon."), mcp.Enum("triathlon", "running", "cycling", "duathlon", "aquathlon")),
	mcp.WithNumber("available_hours_per_week", mcp.Description("Weekly training hours available (3-30). Defaults to 8.")),
	mcp.WithNumber("duration_weeks", mcp.Description("Program length in weeks (4-52). Defaults to 12.")),
)

var toolGenerateWeek = mcp.NewTool("generate_week",
	mcp.WithDescription("Generate a single week of training for a given phase, without storing it. Useful for extending or adjusting an existing program."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Goal race distance")),
	mcp.WithString("fitness_level", mcp.Required(), mcp.Description("Athlete fitness level"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("sport_type", mcp.Description("Event type. Defaults to triathlon."), mcp.Enum("triathlon", "running", "cycling", "duathlon", "aquathlon")),
	mcp.WithNumber("available_hours_per_week", mcp.Description("Weekly training hours available (3-30). Defaults to 8.")),
	mcp.WithNumber("duration_weeks", mcp.Description("Overall program length the week belongs to. Defaults to 12.")),
	mcp.WithNumber("week_number", mcp.Description("Week number within the program. Defaults to 1.")),
	mcp.WithString("phase", mcp.Description("Training phase for the week. Defaults to base."), mcp.Enum("base", "build", "peak", "taper")),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List stored training programs, newest first. Returns summaries without the full plan body."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of programs to return. Defaults to 20.")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Retrieve a stored training program by ID, including the full week-by-week plan."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program UUID")),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Query logged workouts in a time range. Entries include sport, duration, distance, perceived effort, and whether the workout was skipped."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of entries. Defaults to 50.")),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Aggregate statistics over all logged workouts: totals, hours, distance, and per-sport breakdowns."),
)

// --- Tool handlers ---

func (h *handlers) generateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pr, errResult := requestFromArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	program, err := h.gen.GenerateProgram(ctx, pr)
	if err != nil {
		h.log.Error("mcp generate_program", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	id, err := h.db.SaveProgram(ctx, pr, program)
	if err != nil {
		h.log.Error("mcp generate_program: save", "error", err)
		return mcp.NewToolResultError("saving program failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"id": id, "program": program})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pr, errResult := requestFromArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	weekNumber := req.GetInt("week_number", 1)
	phase := req.GetString("phase", "base")

	week, err := h.gen.GenerateSingleWeek(ctx, pr, weekNumber, phase)
	if err != nil {
		h.log.Error("mcp generate_week", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(week)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	programs, err := h.db.ListPrograms(ctx, limit)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid program ID: " + idStr), nil
	}

	rec, err := h.db.GetProgram(ctx, id)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}
	limit := req.GetInt("limit", 50)

	entries, err := h.db.QueryHistory(ctx, start, end, limit)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.db.GetTrainingStats(ctx)
	if err != nil {
		h.log.Error("mcp get_training_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
