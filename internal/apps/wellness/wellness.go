// Package wellness derives the four neuro-wellness scores from daily logs.
// Scores are always recomputed from the raw day log; the stored wellness
// record is a cache and never the source of truth.
package wellness

import (
	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
)

// scoreStep is the score contribution of one tagged activity; scoreCap is the
// diminishing-returns ceiling, reached after five activities per chemical.
const (
	scoreStep = 20
	scoreCap  = 100
)

// ChemicalScore is one chemical's daily result.
type ChemicalScore struct {
	Score         int `json:"score"`
	ActivityCount int `json:"activity_count"`
}

// DailyRecord holds the four independent chemical scores for one day.
type DailyRecord struct {
	Date       string        `json:"date"`
	Dopamine   ChemicalScore `json:"dopamine"`
	Serotonin  ChemicalScore `json:"serotonin"`
	Oxytocin   ChemicalScore `json:"oxytocin"`
	Endorphins ChemicalScore `json:"endorphins"`
}

// Chemical returns the record's score for the given chemical.
func (r DailyRecord) Chemical(c catalog.Chemical) ChemicalScore {
	switch c {
	case catalog.Dopamine:
		return r.Dopamine
	case catalog.Serotonin:
		return r.Serotonin
	case catalog.Oxytocin:
		return r.Oxytocin
	case catalog.Endorphins:
		return r.Endorphins
	}
	return ChemicalScore{}
}

// Aggregate computes a day's neuro-wellness record from its activity log.
// Each tagged activity adds one to its chemical's count and 20 to its score,
// capped at 100. Chemicals are single-valued per activity, so nothing is
// double counted.
func Aggregate(log journal.DayLog) DailyRecord {
	record := DailyRecord{Date: log.Date}
	for _, entry := range log.Activities {
		def, ok := catalog.Find(entry.ActivityName)
		if !ok || def.ChemicalRelease == catalog.None {
			continue
		}
		switch def.ChemicalRelease {
		case catalog.Dopamine:
			bump(&record.Dopamine)
		case catalog.Serotonin:
			bump(&record.Serotonin)
		case catalog.Oxytocin:
			bump(&record.Oxytocin)
		case catalog.Endorphins:
			bump(&record.Endorphins)
		}
	}
	return record
}

func bump(cs *ChemicalScore) {
	cs.ActivityCount++
	if cs.Score < scoreCap {
		cs.Score += scoreStep
		if cs.Score > scoreCap {
			cs.Score = scoreCap
		}
	}
}
