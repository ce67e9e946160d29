package wellness

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/storage"
)

// WeeklyTrend is the trailing 7-day window of daily records. Missing days
// appear as all-zero records; there is no smoothing or interpolation.
type WeeklyTrend struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []DailyRecord  `json:"days"`
	Averages  map[string]int `json:"averages"`
}

type WellnessService struct {
	store storage.Store
}

func NewWellnessService(store storage.Store) *WellnessService {
	return &WellnessService{store: store}
}

// Day recomputes the wellness record for a date from the raw day log and
// refreshes the cached copy. The cache is write-only here; reads never trust
// it.
func (s *WellnessService) Day(userID uuid.UUID, day time.Time) DailyRecord {
	record := Aggregate(journal.LoadDayLog(s.store, userID, day))

	if raw, err := json.Marshal(record); err == nil {
		if err := s.store.Set(userID, storage.DayKey(storage.PrefixWellness, day), raw); err != nil {
			slog.Warn("wellness cache write failed", "user_id", userID, "date", record.Date, "error", err)
		}
	}
	return record
}

// Weekly collects the trailing seven days ending at endDate.
func (s *WellnessService) Weekly(userID uuid.UUID, endDate time.Time) WeeklyTrend {
	trend := WeeklyTrend{
		StartDate: endDate.AddDate(0, 0, -6).Format(storage.DateLayout),
		EndDate:   endDate.Format(storage.DateLayout),
		Days:      make([]DailyRecord, 0, 7),
		Averages:  make(map[string]int, 4),
	}

	totals := make(map[catalog.Chemical]int, 4)
	for i := 6; i >= 0; i-- {
		day := endDate.AddDate(0, 0, -i)
		record := Aggregate(journal.LoadDayLog(s.store, userID, day))
		record.Date = day.Format(storage.DateLayout)
		trend.Days = append(trend.Days, record)
		for _, chem := range catalog.Chemicals {
			totals[chem] += record.Chemical(chem).Score
		}
	}

	for _, chem := range catalog.Chemicals {
		trend.Averages[string(chem)] = totals[chem] / 7
	}
	return trend
}
