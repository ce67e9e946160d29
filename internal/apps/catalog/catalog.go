// Package catalog holds the static table of karma activities. The table is
// immutable: it is built at program start and never mutated.
package catalog

// Chemical is the neurochemical an activity is tagged with.
type Chemical string

const (
	Dopamine   Chemical = "dopamine"
	Serotonin  Chemical = "serotonin"
	Oxytocin   Chemical = "oxytocin"
	Endorphins Chemical = "endorphins"
	None       Chemical = "none"
)

// Chemicals lists the four scored neurochemicals, in display order.
var Chemicals = []Chemical{Dopamine, Serotonin, Oxytocin, Endorphins}

// JournalingActivity is the catalog entry whose presence in a day log counts
// as a journal entry for streak purposes.
const JournalingActivity = "Journaling"

// Activity is one immutable catalog definition.
type Activity struct {
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	BasePoints         int      `json:"base_points"`
	QuantificationUnit string   `json:"quantification_unit,omitempty"`
	RequiresPhoto      bool     `json:"requires_photo,omitempty"`
	CommonTriggers     []string `json:"common_triggers,omitempty"`
	ChemicalRelease    Chemical `json:"chemical_release"`
}

var activities = []Activity{
	// Mindfulness
	{Name: JournalingActivity, Category: "Mindfulness", BasePoints: 10, ChemicalRelease: Serotonin},
	{Name: "Meditation", Category: "Mindfulness", BasePoints: 10, QuantificationUnit: "minutes", ChemicalRelease: Serotonin},
	{Name: "Gratitude Practice", Category: "Mindfulness", BasePoints: 8, ChemicalRelease: Serotonin},
	{Name: "Deep Breathing", Category: "Mindfulness", BasePoints: 5, QuantificationUnit: "minutes", ChemicalRelease: Serotonin},
	{Name: "Prayer", Category: "Mindfulness", BasePoints: 8, ChemicalRelease: Serotonin},

	// Health
	{Name: "Exercise", Category: "Health", BasePoints: 15, QuantificationUnit: "minutes", RequiresPhoto: true, ChemicalRelease: Endorphins},
	{Name: "Running", Category: "Health", BasePoints: 15, QuantificationUnit: "km", RequiresPhoto: true, ChemicalRelease: Endorphins},
	{Name: "Yoga", Category: "Health", BasePoints: 12, QuantificationUnit: "minutes", ChemicalRelease: Endorphins},
	{Name: "Healthy Meal", Category: "Health", BasePoints: 10, RequiresPhoto: true, ChemicalRelease: Dopamine},
	{Name: "Drank Water", Category: "Health", BasePoints: 3, QuantificationUnit: "glasses", ChemicalRelease: None},
	{Name: "Slept 8 Hours", Category: "Health", BasePoints: 10, ChemicalRelease: Serotonin},
	{Name: "Cold Shower", Category: "Health", BasePoints: 8, ChemicalRelease: Endorphins},
	{Name: "Walk in Nature", Category: "Health", BasePoints: 10, QuantificationUnit: "minutes", RequiresPhoto: true, ChemicalRelease: Serotonin},

	// Social
	{Name: "Helped Someone", Category: "Social", BasePoints: 15, ChemicalRelease: Oxytocin},
	{Name: "Called Family", Category: "Social", BasePoints: 10, ChemicalRelease: Oxytocin},
	{Name: "Quality Time", Category: "Social", BasePoints: 12, ChemicalRelease: Oxytocin},
	{Name: "Volunteered", Category: "Social", BasePoints: 20, RequiresPhoto: true, ChemicalRelease: Oxytocin},
	{Name: "Gave a Compliment", Category: "Social", BasePoints: 5, ChemicalRelease: Oxytocin},
	{Name: "Hugged Someone", Category: "Social", BasePoints: 5, ChemicalRelease: Oxytocin},

	// Growth
	{Name: "Read a Book", Category: "Growth", BasePoints: 10, QuantificationUnit: "pages", ChemicalRelease: Dopamine},
	{Name: "Learned Something New", Category: "Growth", BasePoints: 10, ChemicalRelease: Dopamine},
	{Name: "Completed a Task", Category: "Growth", BasePoints: 8, ChemicalRelease: Dopamine},
	{Name: "Practiced a Skill", Category: "Growth", BasePoints: 10, QuantificationUnit: "minutes", ChemicalRelease: Dopamine},
	{Name: "Listened to Music", Category: "Growth", BasePoints: 4, ChemicalRelease: Dopamine},

	// Habits & addictions (negative)
	{Name: "Smoking", Category: "Addiction", BasePoints: -15, QuantificationUnit: "cigarettes",
		CommonTriggers: []string{"Stress", "After meals", "Social pressure", "Boredom"}, ChemicalRelease: None},
	{Name: "Alcohol", Category: "Addiction", BasePoints: -12, QuantificationUnit: "drinks",
		CommonTriggers: []string{"Stress", "Social events", "Loneliness", "Celebration"}, ChemicalRelease: None},
	{Name: "Junk Food", Category: "Addiction", BasePoints: -8,
		CommonTriggers: []string{"Stress", "Boredom", "Late night", "Convenience"}, ChemicalRelease: None},
	{Name: "Doomscrolling", Category: "Addiction", BasePoints: -8, QuantificationUnit: "minutes",
		CommonTriggers: []string{"Boredom", "Anxiety", "Procrastination", "Before sleep"}, ChemicalRelease: None},
	{Name: "Gambling", Category: "Addiction", BasePoints: -20,
		CommonTriggers: []string{"Excitement", "Financial stress", "Escapism"}, ChemicalRelease: None},
	{Name: "Skipped Sleep", Category: "Negative", BasePoints: -10, ChemicalRelease: None},
	{Name: "Lost Temper", Category: "Negative", BasePoints: -10,
		CommonTriggers: []string{"Stress", "Fatigue", "Conflict"}, ChemicalRelease: None},
	{Name: "Procrastinated", Category: "Negative", BasePoints: -5, ChemicalRelease: None},
}

var byName = func() map[string]Activity {
	m := make(map[string]Activity, len(activities))
	for _, a := range activities {
		m[a.Name] = a
	}
	return m
}()

// All returns every activity definition.
func All() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// Find looks up an activity by its unique name.
func Find(name string) (Activity, bool) {
	a, ok := byName[name]
	return a, ok
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range activities {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}
