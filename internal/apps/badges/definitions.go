package badges

import "github.com/karmajournal/karma-backend/internal/apps/catalog"

// AllDefinitions returns the full badge catalog.
func AllDefinitions() []Definition {
	return []Definition{
		{ID: "first_reflection", Name: "First Reflection", CriteriaType: CriteriaReflections, CriteriaCount: 1},
		{ID: "reflective_mind", Name: "Reflective Mind", CriteriaType: CriteriaReflections, CriteriaCount: 10},
		{ID: "deep_thinker", Name: "Deep Thinker", CriteriaType: CriteriaReflections, CriteriaCount: 50},

		{ID: "streak_3", Name: "Three In A Row", CriteriaType: CriteriaStreak, CriteriaCount: 3},
		{ID: "streak_7", Name: "One Week Strong", CriteriaType: CriteriaStreak, CriteriaCount: 7},
		{ID: "streak_30", Name: "Thirty Day Habit", CriteriaType: CriteriaStreak, CriteriaCount: 30},

		{ID: "mood_tracker", Name: "Mood Tracker", CriteriaType: CriteriaMoodsWeek, CriteriaCount: 5},

		{ID: "affirmation_fan", Name: "Affirmation Fan", CriteriaType: CriteriaFavorites, CriteriaCount: 5},
		{ID: "affirmation_collector", Name: "Affirmation Collector", CriteriaType: CriteriaFavorites, CriteriaCount: 20},

		{ID: "balanced_day", Name: "Balanced Day", CriteriaType: CriteriaBalancedDay},

		{ID: "dopamine_week", Name: "Dopamine Discipline", CriteriaType: CriteriaSustained, CriteriaCount: 5, Chemical: catalog.Dopamine},
		{ID: "serotonin_week", Name: "Serotonin Steady", CriteriaType: CriteriaSustained, CriteriaCount: 5, Chemical: catalog.Serotonin},
		{ID: "oxytocin_week", Name: "Connection Keeper", CriteriaType: CriteriaSustained, CriteriaCount: 5, Chemical: catalog.Oxytocin},
		{ID: "endorphins_week", Name: "Endorphin Engine", CriteriaType: CriteriaSustained, CriteriaCount: 5, Chemical: catalog.Endorphins},
	}
}
