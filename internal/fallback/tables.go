package fallback

// trainingDayPatterns maps days-per-week to weekday indices (0=Monday),
// chosen to spread training with rest days interleaved. Out-of-range counts
// fall back to the 3-day pattern.
var trainingDayPatterns = map[int][]int{
	1: {2},                // Wed
	2: {1, 4},             // Tue, Fri
	3: {0, 2, 4},          // Mon, Wed, Fri
	4: {0, 2, 4, 6},       // Mon, Wed, Fri, Sun
	5: {0, 1, 3, 4, 5},    // Mon, Tue, Thu, Fri, Sat
	6: {0, 1, 2, 4, 5, 6}, // Mon-Wed, Fri-Sun (Thu rest)
}

var defaultPattern = []int{0, 2, 4}

// Split is a named, ordered exercise list representing one training-day theme.
type Split struct {
	Focus     string
	Exercises []string
}

var (
	pushExercises = []string{"Push-ups", "Incline DB Press", "Overhead Press", "Dips (assisted)"}
	pullExercises = []string{"Bent-over Row", "Lat Pulldown", "Seated Row", "Face Pull"}
	legExercises  = []string{"Squat", "Lunge", "Romanian Deadlift", "Step-ups", "Hip Thrust"}
	fullBody      = []string{"Goblet Squat", "Push-ups", "DB Row", "RDL", "Plank", "Farmer Carry"}
	yogaFlow      = []string{"Sun Salutation", "Warrior Flow", "Triangle/Trikonasana", "Bridge", "Pigeon", "Savasana"}
)

// splitsForGoal maps a goal to its training splits, cycled round-robin across
// successive training days. Unrecognized goals get the full-body default.
func splitsForGoal(goal string) []Split {
	switch goal {
	case "strength":
		return []Split{
			{Focus: "Upper Strength", Exercises: []string{"Overhead Press", "Incline DB Press", "Bent-over Row", "Lat Pulldown", "Face Pull", "Plank"}},
			{Focus: "Lower Strength", Exercises: []string{"Squat", "Romanian Deadlift", "Lunge", "Hip Thrust", "Calf Raise", "Side Plank"}},
		}
	case "hypertrophy":
		return []Split{
			{Focus: "Push", Exercises: pushExercises},
			{Focus: "Pull", Exercises: pullExercises},
			{Focus: "Legs", Exercises: legExercises},
		}
	case "yoga":
		return []Split{{Focus: "Yoga Flow", Exercises: yogaFlow}}
	case "weight_loss":
		return []Split{{Focus: "Full Body Circuit", Exercises: append(append([]string{}, fullBody...), "Core Finisher")}}
	default:
		return []Split{{Focus: "Full Body", Exercises: fullBody}}
	}
}

// repSchemeForGoal returns the rep convention applied to every exercise on
// every training day.
func repSchemeForGoal(goal string) string {
	switch goal {
	case "strength":
		return "4-6"
	case "hypertrophy":
		return "8-12"
	case "weight_loss":
		return "30-45s"
	case "yoga":
		return "45-60m"
	default:
		return "8-12"
	}
}

// dietPool returns the fixed meal-text pool for a diet type. Unrecognized
// values get the vegetarian default.
func dietPool(dietType string) []string {
	switch dietType {
	case "vegan":
		return []string{
			"Tofu scramble + whole-grain toast",
			"Quinoa bowl + roasted veggies + chickpeas",
			"Hummus wrap + salad",
			"Soy yogurt + berries + nuts",
			"Lentil soup + sourdough",
		}
	case "non_veg":
		return []string{
			"Egg omelet + whole-grain toast",
			"Chicken breast + rice + veggies",
			"Greek yogurt + berries + granola",
			"Tuna salad wrap",
			"Salmon + quinoa + greens",
		}
	default:
		return []string{
			"Paneer/Tofu stir-fry + rice",
			"Dal + roti/rice + salad",
			"Greek yogurt bowl + fruit + nuts",
			"Chickpea salad + olive oil",
			"Veggie omelet (or tofu) + toast",
		}
	}
}

// proteinKeywords trigger the protein-portion meal note when present in the
// meal text. Literal substring match.
var proteinKeywords = []string{"yogurt", "paneer", "chicken", "tofu", "salmon", "eggs"}

const (
	proteinNote = "aim ~25–35g protein"
	genericNote = "whole foods, hydrate"

	restDayFocus    = "Rest/Active Recovery"
	restDayActivity = "Walk 30–45 min or gentle mobility"

	globalNotes = "Hydrate 2–3L/day. Warm up 5–10 min. " +
		"Progress gradually; deload if joints feel tender. " +
		"Protein ~1.6–2.2 g/kg/day (adjust for age). Sleep 7–9h."
)
