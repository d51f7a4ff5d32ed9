// Package plan defines the canonical 7-day workout and diet plan shape and
// the normalization layer that turns untrusted, loosely-typed model output
// into a conforming Plan value.
package plan

// Days lists the canonical weekday names in schedule order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// dayRank maps weekday names to their schedule position. Unrecognized names
// rank after all seven known days.
var dayRank = func() map[string]int {
	m := make(map[string]int, len(Days))
	for i, d := range Days {
		m[d] = i
	}
	return m
}()

const unknownDayRank = 99

// DayRank returns the schedule position of a day name, or a rank past Sunday
// for names not among the seven weekdays.
func DayRank(day string) int {
	if r, ok := dayRank[day]; ok {
		return r
	}
	return unknownDayRank
}

// Exercise is a single workout entry. RestSec is nil when no explicit rest
// applies (flows, circuits); when set it is always within [15,240], so a
// normalized Exercise never carries rest_sec == 0.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"` // free-form: "5", "8-12", "45s"
	RestSec  *int   `json:"rest_sec"`
	VideoURL string `json:"video_url,omitempty"`
	FormTips string `json:"form_tips,omitempty"`
}

// WorkoutDay is one day of the workout schedule.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// Meal is a single diet entry.
type Meal struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// DietDay is one day of the diet schedule.
type DietDay struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// Plan is the combined 7-day workout and diet schedule. A Plan returned by
// Parse or Normalize has at most one entry per day name in each schedule,
// ordered Monday through Sunday with unrecognized days last.
type Plan struct {
	WorkoutPlan []WorkoutDay `json:"workout_plan"`
	DietPlan    []DietDay    `json:"diet_plan"`
	Notes       string       `json:"notes"`
}

// Normalize deduplicates both schedules by day name (first occurrence wins)
// and stable-sorts them into canonical weekday order. It returns a new Plan
// and never mutates its input. Normalizing an already-normalized Plan is a
// no-op.
func Normalize(p *Plan) *Plan {
	out := &Plan{
		WorkoutPlan: make([]WorkoutDay, 0, len(p.WorkoutPlan)),
		DietPlan:    make([]DietDay, 0, len(p.DietPlan)),
		Notes:       p.Notes,
	}

	seen := make(map[string]bool, len(p.WorkoutPlan))
	for _, d := range p.WorkoutPlan {
		if !seen[d.Day] {
			out.WorkoutPlan = append(out.WorkoutPlan, d)
			seen[d.Day] = true
		}
	}
	sortByDay(out.WorkoutPlan, func(d WorkoutDay) string { return d.Day })

	seen = make(map[string]bool, len(p.DietPlan))
	for _, d := range p.DietPlan {
		if !seen[d.Day] {
			out.DietPlan = append(out.DietPlan, d)
			seen[d.Day] = true
		}
	}
	sortByDay(out.DietPlan, func(d DietDay) string { return d.Day })

	return out
}

// sortByDay is an insertion sort keyed on DayRank. Stable, so duplicate-free
// input with equal ranks (only possible for unrecognized names) keeps its
// original relative order.
func sortByDay[T any](items []T, day func(T) string) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && DayRank(day(items[j-1])) > DayRank(day(items[j])); j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}
