package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SchemaError reports a structural defect in a candidate plan that the
// coercion rules could not repair. Path identifies the offending field in
// the raw payload. The caller is expected to discard the whole candidate;
// there is no partial acceptance.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("plan schema: %s: %s", e.Path, e.Msg)
}

// Parse accepts an arbitrary decoded JSON value (as produced by
// json.Unmarshal into any) and returns a fully conforming, normalized Plan.
// Per-field coercion runs before structural checks: sets and rest_sec are
// clamped, reps is stringified, missing meal notes become "". Anything the
// coercions cannot repair fails with a *SchemaError.
func Parse(raw any) (*Plan, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: "$", Msg: "plan must be a JSON object"}
	}

	p := &Plan{}

	workout, err := parseWorkoutDays(obj["workout_plan"])
	if err != nil {
		return nil, err
	}
	p.WorkoutPlan = workout

	diet, err := parseDietDays(obj["diet_plan"])
	if err != nil {
		return nil, err
	}
	p.DietPlan = diet

	notes, err := optionalString(obj["notes"], "notes")
	if err != nil {
		return nil, err
	}
	p.Notes = notes

	return Normalize(p), nil
}

func parseWorkoutDays(raw any) ([]WorkoutDay, error) {
	items, err := requireArray(raw, "workout_plan")
	if err != nil {
		return nil, err
	}

	days := make([]WorkoutDay, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("workout_plan[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Path: path, Msg: "workout day must be an object"}
		}

		day, err := requireText(obj, "day", path)
		if err != nil {
			return nil, err
		}
		focus, err := requireString(obj, "focus", path)
		if err != nil {
			return nil, err
		}
		exercises, err := parseExercises(obj["exercises"], path)
		if err != nil {
			return nil, err
		}

		days = append(days, WorkoutDay{Day: day, Focus: focus, Exercises: exercises})
	}
	return days, nil
}

func parseExercises(raw any, parent string) ([]Exercise, error) {
	items, err := requireArray(raw, parent+".exercises")
	if err != nil {
		return nil, err
	}

	exercises := make([]Exercise, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.exercises[%d]", parent, i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Path: path, Msg: "exercise must be an object"}
		}

		name, err := requireText(obj, "name", path)
		if err != nil {
			return nil, err
		}

		// Required keys, loose types: the model may emit numbers as text
		// and vice versa.
		if _, ok := obj["sets"]; !ok {
			return nil, &SchemaError{Path: path + ".sets", Msg: "missing required key"}
		}
		reps, ok := obj["reps"]
		if !ok || reps == nil {
			return nil, &SchemaError{Path: path + ".reps", Msg: "missing required key"}
		}

		ex := Exercise{
			Name:    name,
			Sets:    coerceSets(obj["sets"]),
			Reps:    stringify(reps),
			RestSec: coerceRestSec(obj["rest_sec"]),
		}
		// Optional free-text extras pass through only when well-typed.
		if v, ok := obj["video_url"].(string); ok {
			ex.VideoURL = v
		}
		if v, ok := obj["form_tips"].(string); ok {
			ex.FormTips = v
		}

		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func parseDietDays(raw any) ([]DietDay, error) {
	items, err := requireArray(raw, "diet_plan")
	if err != nil {
		return nil, err
	}

	days := make([]DietDay, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("diet_plan[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Path: path, Msg: "diet day must be an object"}
		}

		day, err := requireText(obj, "day", path)
		if err != nil {
			return nil, err
		}

		mealItems, err := requireArray(obj["meals"], path+".meals")
		if err != nil {
			return nil, err
		}
		meals := make([]Meal, 0, len(mealItems))
		for j, mi := range mealItems {
			mpath := fmt.Sprintf("%s.meals[%d]", path, j)
			mobj, ok := mi.(map[string]any)
			if !ok {
				return nil, &SchemaError{Path: mpath, Msg: "meal must be an object"}
			}
			name, err := requireText(mobj, "name", mpath)
			if err != nil {
				return nil, err
			}
			notes, err := optionalString(mobj["notes"], mpath+".notes")
			if err != nil {
				return nil, err
			}
			meals = append(meals, Meal{Name: name, Notes: notes})
		}

		days = append(days, DietDay{Day: day, Meals: meals})
	}
	return days, nil
}

// coerceSets converts any input to an int in [1,6]. Unconvertible values
// default to 3 rather than failing.
func coerceSets(v any) int {
	n, ok := asInt(v)
	if !ok {
		n = 3
	}
	if n < 1 {
		return 1
	}
	if n > 6 {
		return 6
	}
	return n
}

// coerceRestSec maps any input to either nil ("no explicit rest") or an int
// in [15,240]. Zero and negatives mean nil, so the result is never 0.
func coerceRestSec(v any) *int {
	if v == nil || v == "" {
		return nil
	}
	n, ok := asInt(v)
	if !ok || n <= 0 {
		return nil
	}
	if n < 15 {
		n = 15
	}
	if n > 240 {
		n = 240
	}
	return &n
}

// asInt attempts integer conversion of the scalar types encoding/json
// produces, truncating fractional numbers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(math.Trunc(n)), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// stringify renders a scalar as text. Whole-number floats lose the decimal
// point so a model emitting reps as 8 round-trips to "8".
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// requireText fetches a non-empty string field.
func requireText(obj map[string]any, key, parent string) (string, error) {
	s, err := requireString(obj, key, parent)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", &SchemaError{Path: parent + "." + key, Msg: "must be non-empty"}
	}
	return s, nil
}

func requireString(obj map[string]any, key, parent string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", &SchemaError{Path: parent + "." + key, Msg: "missing required key"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Path: parent + "." + key, Msg: "must be a string"}
	}
	return s, nil
}

// optionalString returns "" for absent or null values and errors on
// non-string values.
func optionalString(v any, path string) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Path: path, Msg: "must be a string"}
	}
	return s, nil
}

func requireArray(v any, path string) ([]any, error) {
	if v == nil {
		return nil, &SchemaError{Path: path, Msg: "missing required key"}
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &SchemaError{Path: path, Msg: "must be an array"}
	}
	return items, nil
}
