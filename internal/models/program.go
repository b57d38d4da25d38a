package models

import "fmt"

// WorkoutInterval is one segment of a workout's main set.
type WorkoutInterval struct {
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	DistanceKm      float64 `json:"distance_km,omitempty"`
	Intensity       string  `json:"intensity"`
	Description     string  `json:"description"`
}

// Workout is a single training session. Rest days carry a placeholder sport
// (is_rest_day is the authoritative signal); duration 0 and an empty main set
// are conventional for rest days but not enforced, so callers must not rely
// on them.
type Workout struct {
	Sport                Sport             `json:"sport"`
	Title                string            `json:"title"`
	Day                  Weekday           `json:"day"`
	IsRestDay            bool              `json:"is_rest_day"`
	TotalDurationMinutes int               `json:"total_duration_minutes"`
	TotalDistanceKm      float64           `json:"total_distance_km,omitempty"`
	Warmup               string            `json:"warmup"`
	MainSet              []WorkoutInterval `json:"main_set"`
	Cooldown             string            `json:"cooldown"`
	Notes                string            `json:"notes,omitempty"`
}

// WeekPlan is one week of a program. The volume and distance aggregates come
// from the model as-is; they are not recomputed from the workouts.
type WeekPlan struct {
	WeekNumber       int       `json:"week_number"`
	Focus            string    `json:"focus"`
	Workouts         []Workout `json:"workouts"`
	WeeklyVolumeHours float64  `json:"weekly_volume_hours"`
	WeeklyDistanceKm  float64  `json:"weekly_distance_km"`
}

// TrainingProgram is a complete multi-week plan.
type TrainingProgram struct {
	Goal          RaceDistance `json:"goal"`
	FitnessLevel  FitnessLevel `json:"fitness_level"`
	DurationWeeks int          `json:"duration_weeks"`
	Weeks         []WeekPlan   `json:"weeks"`
	Notes         string       `json:"notes"`
}

// ProgramRequest carries the caller's parameters for one generation call.
// It is immutable for the duration of that call.
type ProgramRequest struct {
	SportType             SportType    `json:"sport_type"`
	Goal                  RaceDistance `json:"goal"`
	FitnessLevel          FitnessLevel `json:"fitness_level"`
	AvailableHoursPerWeek int          `json:"available_hours_per_week"`
	CurrentWeek           int          `json:"current_week"`
	DurationWeeks         int          `json:"duration_weeks"`
	FocusAreas            []string     `json:"focus_areas,omitempty"`
}

// ApplyDefaults fills the optional request fields the same way the API
// treats their absence: triathlon, week 1, 12 weeks.
func (r *ProgramRequest) ApplyDefaults() {
	if r.SportType == "" {
		r.SportType = SportTypeTriathlon
	}
	if r.CurrentWeek == 0 {
		r.CurrentWeek = 1
	}
	if r.DurationWeeks == 0 {
		r.DurationWeeks = 12
	}
}

// Validate checks the request against the closed vocabularies and ranges.
func (r *ProgramRequest) Validate() error {
	if !r.SportType.Known() {
		return fmt.Errorf("sport_type: unknown value %q", string(r.SportType))
	}
	if !r.Goal.Known() {
		return fmt.Errorf("goal: unknown race distance %q", string(r.Goal))
	}
	if !r.FitnessLevel.Known() {
		return fmt.Errorf("fitness_level: unknown value %q", string(r.FitnessLevel))
	}
	if r.AvailableHoursPerWeek < 3 || r.AvailableHoursPerWeek > 30 {
		return fmt.Errorf("available_hours_per_week: %d outside range 3-30", r.AvailableHoursPerWeek)
	}
	if r.DurationWeeks < 4 || r.DurationWeeks > 52 {
		return fmt.Errorf("duration_weeks: %d outside range 4-52", r.DurationWeeks)
	}
	if r.CurrentWeek < 1 {
		return fmt.Errorf("current_week: %d must be >= 1", r.CurrentWeek)
	}
	return nil
}

// Validate checks a parsed program against the domain schema. Aggregate
// weekly volumes are not cross-checked against the workouts, and the total
// week count is not compared to the originally requested duration (phase
// rounding in progressive generation can differ by a week).
func (p *TrainingProgram) Validate() error {
	if !p.Goal.Known() {
		return fmt.Errorf("goal: unknown race distance %q", string(p.Goal))
	}
	if !p.FitnessLevel.Known() {
		return fmt.Errorf("fitness_level: unknown value %q", string(p.FitnessLevel))
	}
	if p.DurationWeeks < 1 {
		return fmt.Errorf("duration_weeks: %d must be >= 1", p.DurationWeeks)
	}
	if len(p.Weeks) == 0 {
		return fmt.Errorf("weeks: at least one week is required")
	}
	for i := range p.Weeks {
		if err := p.Weeks[i].Validate(); err != nil {
			return fmt.Errorf("weeks[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single week against the domain schema.
func (w *WeekPlan) Validate() error {
	if w.WeekNumber < 1 {
		return fmt.Errorf("week_number: %d must be >= 1", w.WeekNumber)
	}
	if len(w.Workouts) == 0 {
		return fmt.Errorf("workouts: at least one workout is required")
	}
	for i := range w.Workouts {
		if err := w.Workouts[i].Validate(); err != nil {
			return fmt.Errorf("workouts[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single workout against the domain schema.
func (wo *Workout) Validate() error {
	if !wo.Sport.Known() {
		return fmt.Errorf("sport: unknown value %q", string(wo.Sport))
	}
	if wo.Title == "" {
		return fmt.Errorf("title: required")
	}
	if !wo.Day.Known() {
		return fmt.Errorf("day: unknown weekday %q", string(wo.Day))
	}
	if wo.TotalDurationMinutes < 0 {
		return fmt.Errorf("total_duration_minutes: %d must be >= 0", wo.TotalDurationMinutes)
	}
	return nil
}
