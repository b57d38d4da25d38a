package models

import (
	"encoding/json"
	"testing"
)

// TestCoerceSport checks the free-form sport strings models actually emit.
func TestCoerceSport(t *testing.T) {
	tests := []struct {
		raw  string
		want Sport
	}{
		{"swim", SportSwim},
		{"bike", SportBike},
		{"run", SportRun},
		{"Run", SportRun},
		{" swim ", SportSwim},
		{"rest", SportSwim},
		{"Rest", SportSwim},
		{"bike/run", SportBike},
		{"bike-run", SportBike},
		{"brick (bike + run)", SportBike},
		{"Brick: Bike to Run", SportBike},
		{"strength", SportRun},
		{"yoga", SportRun},
		{"", SportRun},
	}
	for _, tt := range tests {
		if got := CoerceSport(tt.raw); got != tt.want {
			t.Errorf("CoerceSport(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// TestSportUnmarshalCoerces verifies coercion runs during JSON decoding, so
// parsed workouts never carry out-of-vocabulary sports.
func TestSportUnmarshalCoerces(t *testing.T) {
	var s Sport
	if err := json.Unmarshal([]byte(`"brick (bike+run)"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != SportBike {
		t.Errorf("got %q, want bike", s)
	}
	if !s.Known() {
		t.Error("coerced sport must be in the closed vocabulary")
	}
}

// TestNormalizeRaceDistance checks the goal aliases and that canonical values
// pass through unchanged (normalization is idempotent).
func TestNormalizeRaceDistance(t *testing.T) {
	tests := []struct {
		raw  string
		want RaceDistance
	}{
		{"sprint", RaceSprint},
		{"Sprint", RaceSprint},
		{"Sprint Triathlon", RaceSprint},
		{"olympic triathlon", RaceOlympic},
		{"70.3", RaceHalfIronman},
		{"half ironman", RaceHalfIronman},
		{"half-ironman", RaceHalfIronman},
		{"Half Ironman Triathlon", RaceHalfIronman},
		{"140.6", RaceFullIronman},
		{"ironman", RaceFullIronman},
		{"Full Ironman", RaceFullIronman},
		{"half_ironman", RaceHalfIronman},
		{"full_ironman", RaceFullIronman},
		{"marathon", RaceMarathon},
		{"gran_fondo", RaceGranFondo},
	}
	for _, tt := range tests {
		got := NormalizeRaceDistance(tt.raw)
		if got != tt.want {
			t.Errorf("NormalizeRaceDistance(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if again := NormalizeRaceDistance(string(got)); again != got {
			t.Errorf("normalization not idempotent: %q -> %q -> %q", tt.raw, got, again)
		}
	}
}

// TestNormalizeRaceDistanceUnknown verifies unrecognized goals survive
// normalization so validation can name them.
func TestNormalizeRaceDistanceUnknown(t *testing.T) {
	got := NormalizeRaceDistance("Vertical Kilometer")
	if got.Known() {
		t.Errorf("%q should not be a known distance", got)
	}
	if got != "vertical kilometer" {
		t.Errorf("unknown value should be kept lowercased, got %q", got)
	}
}

// TestParseWeekday covers canonicalization and rejection.
func TestParseWeekday(t *testing.T) {
	if d, ok := ParseWeekday("wednesday"); !ok || d != Wednesday {
		t.Errorf("ParseWeekday(wednesday) = %q, %v", d, ok)
	}
	if d, ok := ParseWeekday(" Friday "); !ok || d != Friday {
		t.Errorf("ParseWeekday( Friday ) = %q, %v", d, ok)
	}
	if _, ok := ParseWeekday("Funday"); ok {
		t.Error("Funday should not parse")
	}
	if _, ok := ParseWeekday(""); ok {
		t.Error("empty string should not parse")
	}
}

// TestWeekdayUnmarshal verifies casing is canonicalized during decoding while
// unknown values are preserved for validation to report.
func TestWeekdayUnmarshal(t *testing.T) {
	var d Weekday
	if err := json.Unmarshal([]byte(`"SATURDAY"`), &d); err != nil {
		t.Fatal(err)
	}
	if d != Saturday {
		t.Errorf("got %q, want Saturday", d)
	}
	if err := json.Unmarshal([]byte(`"Someday"`), &d); err != nil {
		t.Fatal(err)
	}
	if d != "Someday" || d.Known() {
		t.Errorf("unknown day should be kept verbatim and not Known, got %q", d)
	}
}

func TestFitnessLevelNormalize(t *testing.T) {
	if got := NormalizeFitnessLevel(" Beginner "); got != FitnessBeginner {
		t.Errorf("got %q", got)
	}
	if NormalizeFitnessLevel("elite").Known() {
		t.Error("elite should not be a known level")
	}
}
