package generator

import "github.com/claude/endurely/internal/models"

// AssignWeekdays returns a copy of parsed program data in which every workout
// in a day-less week carries a "day" field. The input is a decoded JSON
// object holding a "weeks" array of week objects, each with a "workouts"
// array. The input is not mutated; the same parsed structure can be reused
// across retries safely.
//
// A week is only touched when none of its workouts has a day field. If the
// model assigned days to even one workout the whole week is preserved as-is,
// since a partial assignment usually reflects deliberate placement.
//
// Assignment is deterministic and order-preserving: the first rest workout
// goes on Monday, active workouts take the following days in their original
// order, and any further rest workouts fill the remaining days. Once the
// seven days are used up, extra workouts keep no day.
func AssignWeekdays(programData map[string]any) map[string]any {
	out := cloneMap(programData)
	weeksVal, ok := programData["weeks"].([]any)
	if !ok {
		return out
	}
	weeks := make([]any, len(weeksVal))
	for i, wv := range weeksVal {
		if week, ok := wv.(map[string]any); ok {
			weeks[i] = assignWeekdaysToWeek(week)
		} else {
			weeks[i] = wv
		}
	}
	out["weeks"] = weeks
	return out
}

func assignWeekdaysToWeek(week map[string]any) map[string]any {
	workoutsVal, ok := week["workouts"].([]any)
	if !ok || len(workoutsVal) == 0 {
		return week
	}
	for _, wv := range workoutsVal {
		if m, ok := wv.(map[string]any); ok {
			if _, has := m["day"]; has {
				return week
			}
		}
	}

	outWeek := cloneMap(week)
	workouts := make([]any, len(workoutsVal))
	var rest, active []map[string]any
	for i, wv := range workoutsVal {
		m, ok := wv.(map[string]any)
		if !ok {
			workouts[i] = wv
			continue
		}
		c := cloneMap(m)
		workouts[i] = c
		if isRest, _ := c["is_rest_day"].(bool); isRest {
			rest = append(rest, c)
		} else {
			active = append(active, c)
		}
	}

	dayIdx := 0
	if len(rest) > 0 {
		rest[0]["day"] = string(models.Monday)
		dayIdx = 1
	}
	for _, w := range active {
		if dayIdx >= len(models.Weekdays) {
			break
		}
		w["day"] = string(models.Weekdays[dayIdx])
		dayIdx++
	}
	if len(rest) > 1 {
		for _, w := range rest[1:] {
			if dayIdx >= len(models.Weekdays) {
				break
			}
			w["day"] = string(models.Weekdays[dayIdx])
			dayIdx++
		}
	}

	outWeek["workouts"] = workouts
	return outWeek
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
