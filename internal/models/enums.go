package models

import (
	"encoding/json"
	"strings"
)

// Sport is a workout discipline. The schema only knows swim, bike, and run;
// brick sessions are recorded under bike and rest days keep a placeholder
// sport with IsRestDay set.
type Sport string

const (
	SportSwim Sport = "swim"
	SportBike Sport = "bike"
	SportRun  Sport = "run"
)

// CoerceSport maps a free-form sport string onto the closed vocabulary.
// Model output is unreliable here: "rest" appears on rest days even though
// rest is signaled via is_rest_day, and brick workouts arrive as "bike/run",
// "bike-run", "brick (bike+run)" and similar. Anything unrecognized falls
// back to run.
func CoerceSport(raw string) Sport {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "rest":
		return SportSwim
	case strings.Contains(v, "bike") && strings.Contains(v, "run"):
		return SportBike
	case v == "swim" || v == "bike" || v == "run":
		return Sport(v)
	default:
		return SportRun
	}
}

// UnmarshalJSON coerces the sport value before it ever reaches validation.
func (s *Sport) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = CoerceSport(raw)
	return nil
}

// Known reports whether the sport is one of the closed values.
func (s Sport) Known() bool {
	return s == SportSwim || s == SportBike || s == SportRun
}

// Weekday is a calendar day label used to place workouts within a week.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the seven days in assignment order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday matches a day name case-insensitively and returns the
// canonical form.
func ParseWeekday(raw string) (Weekday, bool) {
	v := strings.TrimSpace(raw)
	for _, d := range Weekdays {
		if strings.EqualFold(v, string(d)) {
			return d, true
		}
	}
	return "", false
}

// UnmarshalJSON normalizes day casing; unknown values are kept verbatim so
// validation can report them.
func (w *Weekday) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if d, ok := ParseWeekday(raw); ok {
		*w = d
		return nil
	}
	*w = Weekday(raw)
	return nil
}

// Known reports whether the weekday is one of the seven canonical days.
func (w Weekday) Known() bool {
	_, ok := ParseWeekday(string(w))
	return ok
}

// SportType is the kind of endurance event a program targets.
type SportType string

const (
	SportTypeTriathlon SportType = "triathlon"
	SportTypeRunning   SportType = "running"
	SportTypeCycling   SportType = "cycling"
	SportTypeDuathlon  SportType = "duathlon"
	SportTypeAquathlon SportType = "aquathlon"
)

var sportTypes = map[SportType]bool{
	SportTypeTriathlon: true,
	SportTypeRunning:   true,
	SportTypeCycling:   true,
	SportTypeDuathlon:  true,
	SportTypeAquathlon: true,
}

func (t *SportType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = SportType(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

// Known reports whether the sport type is in the closed vocabulary.
func (t SportType) Known() bool {
	return sportTypes[t]
}

// RaceDistance is the goal event distance.
type RaceDistance string

const (
	// Triathlon
	RaceSprint      RaceDistance = "sprint"
	RaceOlympic     RaceDistance = "olympic"
	RaceHalfIronman RaceDistance = "half_ironman"
	RaceFullIronman RaceDistance = "full_ironman"

	// Running
	Race5K        RaceDistance = "5k"
	Race10K       RaceDistance = "10k"
	RaceHalfMara  RaceDistance = "half_marathon"
	RaceMarathon  RaceDistance = "marathon"
	RaceUltra50K  RaceDistance = "ultra_50k"
	RaceUltra100K RaceDistance = "ultra_100k"

	// Cycling
	RaceCentury       RaceDistance = "century"
	RaceGranFondo     RaceDistance = "gran_fondo"
	RaceDoubleCentury RaceDistance = "double_century"

	// Duathlon
	RaceDuathlonSprint   RaceDistance = "duathlon_sprint"
	RaceDuathlonStandard RaceDistance = "duathlon_standard"
	RaceDuathlonLong     RaceDistance = "duathlon_long"

	// Aquathlon
	RaceAquathlonSprint   RaceDistance = "aquathlon_sprint"
	RaceAquathlonStandard RaceDistance = "aquathlon_standard"
)

var raceDistances = map[RaceDistance]bool{
	RaceSprint: true, RaceOlympic: true, RaceHalfIronman: true, RaceFullIronman: true,
	Race5K: true, Race10K: true, RaceHalfMara: true, RaceMarathon: true,
	RaceUltra50K: true, RaceUltra100K: true,
	RaceCentury: true, RaceGranFondo: true, RaceDoubleCentury: true,
	RaceDuathlonSprint: true, RaceDuathlonStandard: true, RaceDuathlonLong: true,
	RaceAquathlonSprint: true, RaceAquathlonStandard: true,
}

// NormalizeRaceDistance maps common textual variants of a goal distance onto
// the closed vocabulary: "Sprint Triathlon" → sprint, "70.3" / "half ironman"
// / "half-ironman" → half_ironman, "140.6" / "ironman" → full_ironman.
// Already-canonical values pass through unchanged; unrecognized ones are
// returned lowercased so validation can reject them.
func NormalizeRaceDistance(raw string) RaceDistance {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.TrimSpace(strings.ReplaceAll(v, " triathlon", ""))
	switch v {
	case "70.3", "half-ironman", "half ironman":
		return RaceHalfIronman
	case "140.6", "full-ironman", "full ironman", "ironman":
		return RaceFullIronman
	}
	return RaceDistance(v)
}

func (d *RaceDistance) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = NormalizeRaceDistance(raw)
	return nil
}

// Known reports whether the distance is in the closed vocabulary.
func (d RaceDistance) Known() bool {
	return raceDistances[d]
}

// FitnessLevel is the athlete's self-assessed training background.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// NormalizeFitnessLevel lowercases and trims a fitness level value.
func NormalizeFitnessLevel(raw string) FitnessLevel {
	return FitnessLevel(strings.ToLower(strings.TrimSpace(raw)))
}

func (f *FitnessLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = NormalizeFitnessLevel(raw)
	return nil
}

// Known reports whether the level is in the closed vocabulary.
func (f FitnessLevel) Known() bool {
	return f == FitnessBeginner || f == FitnessIntermediate || f == FitnessAdvanced
}
