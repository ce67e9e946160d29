package journal

import (
	"math"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
)

// photoPenalty is the partial-credit factor applied when a photo-recommended
// activity is logged without attached media.
const photoPenalty = 0.7

// Score computes the total karma score for a day log. Each logged activity
// contributes its catalog base points; photo-recommended activities without
// media earn round(points*0.7), rounded half away from zero once per
// activity. Unknown activity names contribute nothing.
func Score(log DayLog) int {
	total := 0
	for _, entry := range log.Activities {
		total += activityScore(entry)
	}
	return total
}

func activityScore(entry LoggedActivity) int {
	def, ok := catalog.Find(entry.ActivityName)
	if !ok {
		return 0
	}
	if def.RequiresPhoto && entry.Media == nil {
		return int(math.Round(float64(def.BasePoints) * photoPenalty))
	}
	return def.BasePoints
}
