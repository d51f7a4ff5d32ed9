// Package fallback deterministically synthesizes a complete 7-day plan from
// static rule tables. It has no external dependencies and no error path:
// every input combination yields a schema-valid plan, so it serves as the
// availability guarantee when the model path is absent or rejected.
package fallback

import (
	"strings"

	"github.com/claude/coachplan/internal/plan"
)

// Generate builds a full week from the lookup tables. Pure and free of
// randomness: identical inputs always yield identical output. Out-of-range
// or unrecognized inputs are clamped or defaulted internally, never rejected.
func Generate(goal string, daysPerWeek int, dietType string, age int) *plan.Plan {
	goal = strings.ToLower(strings.TrimSpace(goal))
	dietType = strings.ToLower(strings.TrimSpace(dietType))

	trainingDays := pickTrainingDays(daysPerWeek)
	volume, restLow, restHigh := volumeAndRestByAge(age)
	splits := splitsForGoal(goal)
	reps := repSchemeForGoal(goal)
	meals := mealsForWeek(dietType)

	p := &plan.Plan{
		WorkoutPlan: make([]plan.WorkoutDay, 0, len(plan.Days)),
		DietPlan:    make([]plan.DietDay, 0, len(plan.Days)),
		Notes:       globalNotes,
	}

	splitIdx := 0
	for i, day := range plan.Days {
		if trainingDays[i] {
			sp := splits[splitIdx%len(splits)]
			splitIdx++
			p.WorkoutPlan = append(p.WorkoutPlan, plan.WorkoutDay{
				Day:       day,
				Focus:     sp.Focus,
				Exercises: buildExercises(sp.Exercises, goal, volume, reps, restLow, restHigh),
			})
		} else {
			p.WorkoutPlan = append(p.WorkoutPlan, plan.WorkoutDay{
				Day:   day,
				Focus: restDayFocus,
				Exercises: []plan.Exercise{
					{Name: restDayActivity, Sets: 1, Reps: "30-45m", RestSec: nil},
				},
			})
		}

		p.DietPlan = append(p.DietPlan, plan.DietDay{Day: day, Meals: meals})
	}

	return p
}

// pickTrainingDays returns the weekday selection for the requested count,
// falling back to the 3-day pattern when the count is out of range.
func pickTrainingDays(daysPerWeek int) map[int]bool {
	pattern, ok := trainingDayPatterns[daysPerWeek]
	if !ok {
		pattern = defaultPattern
	}
	selected := make(map[int]bool, len(pattern))
	for _, idx := range pattern {
		selected[idx] = true
	}
	return selected
}

// volumeAndRestByAge is a monotonic three-tier policy: older trainees get
// fewer exercises per day and a longer rest window.
func volumeAndRestByAge(age int) (volume, restLow, restHigh int) {
	switch {
	case age >= 55:
		return 4, 75, 150
	case age >= 45:
		return 5, 60, 120
	default:
		return 6, 45, 90
	}
}

// buildExercises emits exactly volume exercises by cycling the split's list.
// Concatenating the list with itself guarantees enough items even when the
// base list is shorter than volume.
func buildExercises(names []string, goal string, volume int, reps string, restLow, restHigh int) []plan.Exercise {
	pool := append(append([]string{}, names...), names...)
	if volume > len(pool) {
		volume = len(pool)
	}

	out := make([]plan.Exercise, 0, volume)
	for _, name := range pool[:volume] {
		if goal == "yoga" {
			// Duration-based flows: no set counting, no timed rest.
			out = append(out, plan.Exercise{Name: name, Sets: 1, Reps: reps, RestSec: nil})
			continue
		}

		sets := 3
		if goal == "strength" {
			sets = 4
		}
		rest := 45
		if goal == "strength" || goal == "hypertrophy" {
			rest = (restLow + restHigh) / 2
		}
		out = append(out, plan.Exercise{Name: name, Sets: sets, Reps: reps, RestSec: &rest})
	}
	return out
}

// mealsForWeek builds the daily meal list: the first four pool items, each
// annotated by keyword match against the meal text.
func mealsForWeek(dietType string) []plan.Meal {
	pool := dietPool(dietType)
	if len(pool) > 4 {
		pool = pool[:4]
	}

	meals := make([]plan.Meal, 0, len(pool))
	for _, name := range pool {
		meals = append(meals, plan.Meal{Name: name, Notes: mealNote(name)})
	}
	return meals
}

func mealNote(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range proteinKeywords {
		if strings.Contains(lower, kw) {
			return proteinNote
		}
	}
	return genericNote
}
