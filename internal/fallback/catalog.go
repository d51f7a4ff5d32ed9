package fallback

// Goals and DietTypes list the input values with dedicated rule tables.
// Anything else falls through to the documented defaults.
var (
	Goals     = []string{"strength", "hypertrophy", "yoga", "weight_loss", "general"}
	DietTypes = []string{"vegetarian", "vegan", "non_veg"}
)

// SplitCatalog returns the goal-to-splits mapping used on training days.
func SplitCatalog() map[string][]Split {
	out := make(map[string][]Split, len(Goals))
	for _, g := range Goals {
		out[g] = splitsForGoal(g)
	}
	return out
}

// DietCatalog returns the fixed meal-text pool per diet type.
func DietCatalog() map[string][]string {
	out := make(map[string][]string, len(DietTypes))
	for _, d := range DietTypes {
		out[d] = dietPool(d)
	}
	return out
}
