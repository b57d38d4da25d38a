package generator

// Phase is one periodization segment of a program.
type Phase struct {
	Name  string
	Weeks int
}

// SplitPhases partitions a program's duration into the four classic
// periodization phases: Base 60%, Build 25%, Peak at least one week (10%),
// and Taper taking whatever remains. Percentages round down, so the taper
// absorbs the rounding slack; for short durations the peak minimum can push
// the taper negative, which is a data-integrity failure rather than
// something to clamp silently.
func SplitPhases(totalWeeks int) ([]Phase, error) {
	base := totalWeeks * 60 / 100
	build := totalWeeks * 25 / 100
	peak := max(1, totalWeeks*10/100)
	taper := totalWeeks - base - build - peak
	if taper < 0 {
		return nil, failf(PhaseArithmeticInvalid,
			"%d weeks split into base=%d build=%d peak=%d leaves taper=%d",
			totalWeeks, base, build, peak, taper)
	}
	return []Phase{
		{Name: "Base", Weeks: base},
		{Name: "Build", Weeks: build},
		{Name: "Peak", Weeks: peak},
		{Name: "Taper", Weeks: taper},
	}, nil
}
