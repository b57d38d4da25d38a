package generator

import (
	"fmt"
	"strings"

	"github.com/claude/endurely/internal/models"
)

const fence = "```"

const systemPrompt = `You are an expert endurance sports coach with 20+ years of experience training athletes for triathlon, running, cycling, duathlon, and aquathlon events.

Your role is to create structured, periodized training programs that include:
- Sport-specific workouts with intervals and intensity zones (swim, bike, run)
- Proper warmup and cooldown protocols
- Progressive overload and recovery weeks

Key principles:

**Intensity Zones**:
- Zone 1: Recovery (very easy)
- Zone 2: Aerobic/Endurance (comfortable)
- Zone 3: Tempo (moderately hard)
- Zone 4: Threshold (hard, sustained)
- Zone 5: VO2 Max (very hard, intervals)

**Periodization**:
- Base Phase (60-70%): Build aerobic base, Zone 2 focus
- Build Phase (20-30%): Add intensity, Zone 3-4
- Peak Phase (5-10%): Race-specific intensity
- Taper Phase (1-2 weeks): Reduce volume, maintain intensity

**Weekly Structure**:
- Monday: Recovery or rest
- Tuesday: Intensity/speed work
- Wednesday: Endurance
- Thursday: Tempo or technique
- Friday: Easy or rest
- Saturday: Long session
- Sunday: Long session or brick/transition workout (for multi-sport)

You must respond with valid JSON matching the TrainingProgram schema.`

// raceDistanceLabels maps canonical goal values to the human description
// used in prompts.
var raceDistanceLabels = map[models.RaceDistance]string{
	models.RaceSprint:      "Sprint Triathlon (750m swim, 20km bike, 5km run)",
	models.RaceOlympic:     "Olympic Triathlon (1.5km swim, 40km bike, 10km run)",
	models.RaceHalfIronman: "Half Ironman (1.9km swim, 90km bike, 21.1km run)",
	models.RaceFullIronman: "Full Ironman (3.8km swim, 180km bike, 42.2km run)",

	models.Race5K:        "5K Run",
	models.Race10K:       "10K Run",
	models.RaceHalfMara:  "Half Marathon",
	models.RaceMarathon:  "Marathon",
	models.RaceUltra50K:  "Ultra Marathon 50K",
	models.RaceUltra100K: "Ultra Marathon 100K",

	models.RaceCentury:       "Century Ride (100 miles / 160km)",
	models.RaceGranFondo:     "Gran Fondo (100-200km)",
	models.RaceDoubleCentury: "Double Century (200 miles / 320km)",

	models.RaceDuathlonSprint:   "Sprint Duathlon (5km run, 20km bike, 2.5km run)",
	models.RaceDuathlonStandard: "Standard Duathlon (10km run, 40km bike, 5km run)",
	models.RaceDuathlonLong:     "Long Duathlon (10km run, 60km bike, 10km run)",

	models.RaceAquathlonSprint:   "Sprint Aquathlon (750m swim, 5km run)",
	models.RaceAquathlonStandard: "Standard Aquathlon (1km swim, 5km run)",
}

// RaceDistanceLabel returns the display description for a goal, falling back
// to the raw value for anything unmapped.
func RaceDistanceLabel(goal models.RaceDistance) string {
	if label, ok := raceDistanceLabels[goal]; ok {
		return label
	}
	return string(goal)
}

// sportGuidance tells the model which disciplines belong in the program.
var sportGuidance = map[models.SportType]string{
	models.SportTypeTriathlon: "Include swim, bike, and run workouts. Add brick workouts (bike-to-run transitions).",
	models.SportTypeRunning:   "Include ONLY run workouts. Focus on varied paces, intervals, tempo runs, and long runs.",
	models.SportTypeCycling:   "Include ONLY bike workouts. Focus on endurance rides, intervals, hill work, and tempo efforts.",
	models.SportTypeDuathlon:  "Include bike and run workouts. Add brick workouts (bike-to-run transitions). NO swimming.",
	models.SportTypeAquathlon: "Include swim and run workouts. Add transition workouts (swim-to-run). NO cycling.",
}

const conciseProgramFormat = `{
  "goal": "sprint",
  "fitness_level": "beginner",
  "duration_weeks": 12,
  "weeks": [
    {
      "week_number": 1,
      "focus": "Base Building",
      "workouts": [
        {
          "sport": "swim",
          "title": "Easy Swim",
          "day": "Tuesday",
          "is_rest_day": false,
          "total_duration_minutes": 45,
          "total_distance_km": 1.5,
          "warmup": "10 min easy",
          "main_set": [{"duration_minutes": 25, "distance_km": 1.0, "intensity": "Zone 2", "description": "Steady swim"}],
          "cooldown": "10 min easy",
          "notes": "Focus on technique"
        }
      ],
      "weekly_volume_hours": 6.5,
      "weekly_distance_km": 50.0
    }
  ],
  "notes": "Program overview"
}`

const fullProgramFormat = `{
  "goal": "sprint",
  "fitness_level": "beginner",
  "duration_weeks": 12,
  "weeks": [
    {
      "week_number": 1,
      "focus": "Base Building",
      "workouts": [
        {
          "sport": "swim|bike|run",
          "title": "Workout Title",
          "day": "Monday",
          "is_rest_day": false,
          "total_duration_minutes": 60,
          "total_distance_km": 5.0,
          "warmup": "10 min easy, drills",
          "main_set": [
            {
              "duration_minutes": 30,
              "distance_km": 3.0,
              "intensity": "Zone 2",
              "description": "Continuous aerobic effort"
            }
          ],
          "cooldown": "10 min easy",
          "notes": "Focus on form"
        },
        {
          "sport": "swim",
          "title": "Rest Day",
          "day": "Friday",
          "is_rest_day": true,
          "total_duration_minutes": 0,
          "warmup": "",
          "main_set": [],
          "cooldown": "",
          "notes": "Complete rest"
        }
      ],
      "weekly_volume_hours": 6.5,
      "weekly_distance_km": 50.0
    }
  ],
  "notes": "Program overview and key focus areas"
}`

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildUserPrompt renders the whole-program user prompt. The concise variant
// trims descriptions for models with smaller output budgets.
func buildUserPrompt(req *models.ProgramRequest, concise bool) string {
	guidance, ok := sportGuidance[req.SportType]
	if !ok {
		guidance = sportGuidance[models.SportTypeTriathlon]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Create a %d-week training program:

**Sport Type**: %s
**Goal**: %s
**Fitness Level**: %s
**Available Time**: %d hours/week
**Current Week**: %d
**Sports**: %s
`,
		req.DurationWeeks,
		titleCase(string(req.SportType)),
		RaceDistanceLabel(req.Goal),
		req.FitnessLevel,
		req.AvailableHoursPerWeek,
		req.CurrentWeek,
		guidance,
	)

	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&b, "**Focus Areas**: %s\n", strings.Join(req.FocusAreas, ", "))
	}

	if concise {
		b.WriteString("\n**JSON Format** (keep descriptions brief, 5-10 words):\n")
		b.WriteString(fence + "json\n" + conciseProgramFormat + "\n" + fence + "\n")
		b.WriteString(`
**CRITICAL**:
1. Create 5-6 workouts per week
2. Distribute workouts across DIFFERENT days (Monday-Sunday)
3. Include swim, bike, run
4. Keep all descriptions under 10 words
5. Include 1 rest day per week (is_rest_day: true, total_duration_minutes: 0)
6. Return ONLY valid JSON
`)
	} else {
		b.WriteString("\n**JSON Format**:\n")
		b.WriteString(fence + "json\n" + fullProgramFormat + "\n" + fence + "\n")
		b.WriteString(`
**CRITICAL REQUIREMENTS**:
1. Create 5-7 workouts per week
2. **IMPORTANT**: Assign each workout to a DIFFERENT day of the week
   - Use "day": "Monday", "Tuesday", "Wednesday", etc.
   - DO NOT put multiple workouts on the same day
   - Spread workouts evenly across the week
3. **SPORT VALUES**: Use ONLY "swim", "bike", or "run" for the sport field based on the sport type
   - For triathlon: Include all three sports (swim, bike, run)
   - For running: Use ONLY "run"
   - For cycling: Use ONLY "bike"
   - For duathlon: Use "bike" and "run" only (NO swim)
   - For aquathlon: Use "swim" and "run" only (NO bike)
   - For brick/transition workouts, use the primary sport (e.g., "bike" for bike-to-run)
   - For rest days, use any valid sport and set is_rest_day: true
4. Include sport-appropriate workouts based on the sport type
5. Each workout must have specific intervals with intensity zones
6. For multi-sport events (triathlon, duathlon, aquathlon), include at least one brick/transition workout per week
7. Progressive volume with recovery weeks every 3-4 weeks
8. Include at least 1 rest day per week (is_rest_day: true, total_duration_minutes: 0)
9. Order workouts by day (Monday first, Sunday last)
10. Return ONLY the JSON, no markdown or extra text
`)
	}

	return b.String()
}

// buildWeekPrompt renders the prompt for a single week of a longer program.
func buildWeekPrompt(req *models.ProgramRequest, weekNumber int, phase string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Create Week %d of a %d-week %s training program.

**Phase**: %s
**Fitness Level**: %s
**Available Hours**: %d hours/week

Return a JSON object with this structure (be CONCISE in descriptions):
`,
		weekNumber,
		req.DurationWeeks,
		RaceDistanceLabel(req.Goal),
		phase,
		req.FitnessLevel,
		req.AvailableHoursPerWeek,
	)
	fmt.Fprintf(&b, `%sjson
{
  "week_number": %d,
  "focus": "%s Training",
  "workouts": [
    {
      "sport": "swim|bike|run",
      "title": "Brief title",
      "total_duration_minutes": 60,
      "total_distance_km": 5.0,
      "warmup": "Brief description",
      "main_set": [
        {
          "duration_minutes": 30,
          "distance_km": 3.0,
          "intensity": "Zone 2",
          "description": "Brief description"
        }
      ],
      "cooldown": "Brief description",
      "notes": "Brief notes"
    }
  ],
  "weekly_volume_hours": 6.5,
  "weekly_distance_km": 45.0
}
%s

Create 5-6 workouts. Include swim, bike, run. Keep descriptions under 10 words. Return ONLY valid JSON.
`, fence, weekNumber, phase, fence)
	return b.String()
}
