package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/storage"
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownActivity = errors.New("unknown activity")
	ErrInvalidMood     = errors.New("invalid mood")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// BadgeChecker re-evaluates badge predicates after a save and returns the
// names of any newly earned badges. Implemented by the badges feature.
type BadgeChecker interface {
	CheckAndAward(userID uuid.UUID, day time.Time) ([]string, error)
}

// JournalService owns the daily log store, score aggregation and the
// journaling streak.
type JournalService struct {
	db     *gorm.DB
	store  storage.Store
	badges BadgeChecker
}

func NewJournalService(db *gorm.DB, store storage.Store, badges BadgeChecker) *JournalService {
	return &JournalService{db: db, store: store, badges: badges}
}

// ParseDate parses a calendar-day path parameter.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(storage.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// LoadDayLog reads the stored day log for a date. Missing or malformed
// records come back as an empty log, never an error.
func LoadDayLog(store storage.Store, userID uuid.UUID, day time.Time) DayLog {
	empty := DayLog{Date: day.Format(storage.DateLayout)}
	raw, ok, err := store.Get(userID, storage.DayKey(storage.PrefixDayLog, day))
	if err != nil || !ok {
		return empty
	}
	var log DayLog
	if err := json.Unmarshal(raw, &log); err != nil {
		slog.Warn("discarding malformed day log", "user_id", userID, "date", empty.Date, "error", err)
		return empty
	}
	log.Date = empty.Date
	return log
}

// LoadReflection reads the stored reflection for a date, degrading to empty
// on missing or malformed data.
func LoadReflection(store storage.Store, userID uuid.UUID, day time.Time) Reflection {
	empty := Reflection{Date: day.Format(storage.DateLayout)}
	raw, ok, err := store.Get(userID, storage.DayKey(storage.PrefixReflection, day))
	if err != nil || !ok {
		return empty
	}
	var refl Reflection
	if err := json.Unmarshal(raw, &refl); err != nil {
		slog.Warn("discarding malformed reflection", "user_id", userID, "date", empty.Date, "error", err)
		return empty
	}
	refl.Date = empty.Date
	return refl
}

// SaveDay validates and persists the full log for one day, then runs the
// streak transition and badge evaluation. The save supersedes any previous
// record for that date.
func (s *JournalService) SaveDay(userID uuid.UUID, day time.Time, req SaveDayRequest) (*SaveDayResponse, error) {
	for _, entry := range req.Activities {
		if _, ok := catalog.Find(entry.ActivityName); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, entry.ActivityName)
		}
		if entry.Quantity != nil && *entry.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if req.Mood != "" && !validMood(req.Mood) {
		return nil, ErrInvalidMood
	}

	dateStr := day.Format(storage.DateLayout)
	log := DayLog{Date: dateStr, Activities: req.Activities}
	refl := Reflection{Date: dateStr, Text: req.Reflection, Mood: req.Mood}

	logJSON, err := json.Marshal(log)
	if err != nil {
		return nil, fmt.Errorf("encode day log: %w", err)
	}
	if err := s.store.Set(userID, storage.DayKey(storage.PrefixDayLog, day), logJSON); err != nil {
		return nil, err
	}

	reflJSON, err := json.Marshal(refl)
	if err != nil {
		return nil, fmt.Errorf("encode reflection: %w", err)
	}
	if err := s.store.Set(userID, storage.DayKey(storage.PrefixReflection, day), reflJSON); err != nil {
		return nil, err
	}

	resp := &SaveDayResponse{Date: dateStr, Score: Score(log)}

	if Qualifies(log, refl) {
		streak, message, err := s.applyStreak(userID, day)
		if err != nil {
			return nil, err
		}
		resp.Streak = streakResponse(streak)
		resp.StreakMessage = message
	} else {
		streak, err := s.GetStreak(userID)
		if err != nil {
			return nil, err
		}
		resp.Streak = streakResponse(streak)
	}

	if s.badges != nil {
		newBadges, err := s.badges.CheckAndAward(userID, day)
		if err != nil {
			slog.Warn("badge evaluation failed", "user_id", userID, "error", err)
		} else {
			resp.NewBadges = newBadges
		}
	}

	return resp, nil
}

// Day returns the stored log and reflection for a date together with the
// recomputed score.
func (s *JournalService) Day(userID uuid.UUID, day time.Time) *DayResponse {
	log := LoadDayLog(s.store, userID, day)
	refl := LoadReflection(s.store, userID, day)
	return &DayResponse{
		Date:       log.Date,
		Activities: log.Activities,
		Reflection: refl.Text,
		Mood:       refl.Mood,
		Score:      Score(log),
	}
}

// GetStreak returns the streak record, zero-valued when none exists yet.
func (s *JournalService) GetStreak(userID uuid.UUID) (*Streak, error) {
	var streak Streak
	err := s.db.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return &streak, nil
}

// applyStreak runs one qualifying save through the streak state machine and
// persists the result.
func (s *JournalService) applyStreak(userID uuid.UUID, day time.Time) (*Streak, string, error) {
	var streak Streak
	err := s.db.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = Streak{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, "", fmt.Errorf("load streak: %w", err)
	}

	previous := streak.CurrentStreak
	outcome := advanceStreak(&streak, day)
	if outcome == streakUnchanged && streak.ID == uuid.Nil {
		// Nothing to persist for a brand-new record that saw no transition.
		return &streak, "", nil
	}

	if err := s.db.Save(&streak).Error; err != nil {
		return nil, "", fmt.Errorf("save streak: %w", err)
	}
	return &streak, streakMessage(outcome, &streak, previous), nil
}

// Calendar returns the dates within the trailing window that have a day log.
func (s *JournalService) Calendar(userID uuid.UUID, days int) ([]string, error) {
	if days < 7 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	entries, err := s.store.List(userID, storage.PrefixDayLog)
	if err != nil {
		return nil, err
	}

	cutoff := truncateDay(time.Now().UTC()).AddDate(0, 0, -days)
	var dates []string
	for key := range entries {
		dateStr := key[len(storage.PrefixDayLog):]
		day, err := time.Parse(storage.DateLayout, dateStr)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			dates = append(dates, dateStr)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func validMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

func streakResponse(s *Streak) StreakResponse {
	resp := StreakResponse{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		TotalEntries:  s.TotalEntries,
	}
	if !s.LastQualifyingDate.IsZero() {
		resp.LastQualifyingDate = s.LastQualifyingDate.Format(storage.DateLayout)
	}
	return resp
}
