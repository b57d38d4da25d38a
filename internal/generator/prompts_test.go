package generator

import (
	"strings"
	"testing"

	"github.com/claude/endurely/internal/models"
)

// TestRaceDistanceLabel verifies the human-readable labels used in prompts.
func TestRaceDistanceLabel(t *testing.T) {
	tests := []struct {
		goal models.RaceDistance
		want string
	}{
		{models.RaceSprint, "Sprint Triathlon"},
		{models.RaceHalfIronman, "Half Ironman"},
		{models.RaceMarathon, "Marathon"},
	}
	for _, tt := range tests {
		if got := RaceDistanceLabel(tt.goal); !strings.HasPrefix(got, tt.want) {
			t.Errorf("RaceDistanceLabel(%q) = %q, want prefix %q", tt.goal, got, tt.want)
		}
	}
	// Unmapped goals fall back to the raw value rather than an empty label.
	if got := RaceDistanceLabel(models.RaceDistance("vertical_kilometer")); got != "vertical_kilometer" {
		t.Errorf("fallback label = %q, want the raw value", got)
	}
}

// TestBuildUserPrompt verifies the whole-program prompt carries the request
// parameters and the JSON format matching the requested verbosity.
func TestBuildUserPrompt(t *testing.T) {
	req := &models.ProgramRequest{
		SportType:             models.SportTypeTriathlon,
		Goal:                  models.RaceOlympic,
		FitnessLevel:          models.FitnessIntermediate,
		AvailableHoursPerWeek: 9,
		CurrentWeek:           1,
		DurationWeeks:         6,
	}

	p := buildUserPrompt(req, true)
	for _, want := range []string{"Olympic", "intermediate", "9", "6-week"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(p, `"weeks"`) {
		t.Error("prompt should include the JSON format example")
	}

	// Concise and full formats differ in size, nothing else observable here.
	full := buildUserPrompt(req, false)
	if len(full) <= len(p) {
		t.Error("full format should be larger than the concise one")
	}
}

// TestBuildWeekPrompt verifies the single-week prompt pins the week number
// and phase.
func TestBuildWeekPrompt(t *testing.T) {
	req := &models.ProgramRequest{
		SportType:             models.SportTypeRunning,
		Goal:                  models.RaceMarathon,
		FitnessLevel:          models.FitnessBeginner,
		AvailableHoursPerWeek: 5,
		CurrentWeek:           1,
		DurationWeeks:         16,
	}

	p := buildWeekPrompt(req, 11, "Peak")
	for _, want := range []string{"Week 11", "Peak", "Marathon", "beginner"} {
		if !strings.Contains(p, want) {
			t.Errorf("week prompt missing %q", want)
		}
	}
}
