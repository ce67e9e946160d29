package badges

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/karmajournal/karma-backend/internal/apps/affirmations"
	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/apps/wellness"
	"github.com/karmajournal/karma-backend/internal/storage"
)

// Evaluate returns the definitions whose predicate holds for stats and that
// are not already achieved. Predicates only ever add to the achieved set;
// they never revoke.
func Evaluate(defs []Definition, stats Stats, achieved map[string]bool) []Definition {
	var earned []Definition
	for _, def := range defs {
		if achieved[def.ID] {
			continue
		}
		if predicateHolds(def, stats) {
			earned = append(earned, def)
		}
	}
	return earned
}

func predicateHolds(def Definition, stats Stats) bool {
	switch def.CriteriaType {
	case CriteriaReflections:
		return stats.ReflectionCount >= def.CriteriaCount
	case CriteriaStreak:
		return stats.CurrentStreak >= def.CriteriaCount
	case CriteriaMoodsWeek:
		return stats.MoodsThisWeek >= def.CriteriaCount
	case CriteriaFavorites:
		return stats.FavoriteCount >= def.CriteriaCount
	case CriteriaBalancedDay:
		for _, chem := range catalog.Chemicals {
			if stats.Day.Chemical(chem).Score < balancedThreshold {
				return false
			}
		}
		return true
	case CriteriaSustained:
		activeDays := 0
		for _, day := range stats.Week {
			if day.Chemical(def.Chemical).ActivityCount > 0 {
				activeDays++
			}
		}
		return activeDays >= def.CriteriaCount
	}
	return false
}

// BadgeService evaluates badge rules against a user's aggregate state and
// appends new awards.
type BadgeService struct {
	db          *gorm.DB
	store       storage.Store
	definitions []Definition
}

func NewBadgeService(db *gorm.DB, store storage.Store) *BadgeService {
	return &BadgeService{db: db, store: store, definitions: AllDefinitions()}
}

// CheckAndAward re-evaluates every badge for the user around the given day
// and persists newly earned ones. Returns the new badge names. Satisfies
// journal.BadgeChecker.
func (s *BadgeService) CheckAndAward(userID uuid.UUID, day time.Time) ([]string, error) {
	achieved, err := s.achievedSet(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.collectStats(userID, day)
	if err != nil {
		return nil, err
	}

	earned := Evaluate(s.definitions, stats, achieved)
	if len(earned) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(earned))
	for _, def := range earned {
		award := Award{
			ID:           uuid.New(),
			UserID:       userID,
			BadgeID:      def.ID,
			AchievedDate: day,
		}
		// DoNothing keeps awards append-only under concurrent saves.
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).Create(&award).Error
		if err != nil {
			return nil, fmt.Errorf("award badge %s: %w", def.ID, err)
		}
		names = append(names, def.Name)
	}
	return names, nil
}

// List returns every definition together with its achievement state.
func (s *BadgeService) List(userID uuid.UUID) (*BadgesResponse, error) {
	var awards []Award
	if err := s.db.Where("user_id = ?", userID).Find(&awards).Error; err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	awarded := make(map[string]time.Time, len(awards))
	for _, a := range awards {
		awarded[a.BadgeID] = a.AchievedDate
	}

	resp := &BadgesResponse{Total: len(s.definitions)}
	for _, def := range s.definitions {
		status := BadgeStatus{Definition: def}
		if date, ok := awarded[def.ID]; ok {
			status.Achieved = true
			status.AchievedDate = date.Format(storage.DateLayout)
			resp.Achieved++
		}
		resp.Badges = append(resp.Badges, status)
	}
	return resp, nil
}

func (s *BadgeService) achievedSet(userID uuid.UUID) (map[string]bool, error) {
	var awards []Award
	if err := s.db.Where("user_id = ?", userID).Find(&awards).Error; err != nil {
		return nil, fmt.Errorf("load awards: %w", err)
	}
	achieved := make(map[string]bool, len(awards))
	for _, a := range awards {
		achieved[a.BadgeID] = true
	}
	return achieved, nil
}

// collectStats assembles the aggregate snapshot the predicates need. All
// counters are recomputed from raw records; nothing here trusts cached
// derived state.
func (s *BadgeService) collectStats(userID uuid.UUID, day time.Time) (Stats, error) {
	var stats Stats

	reflections, err := s.store.List(userID, storage.PrefixReflection)
	if err != nil {
		return stats, fmt.Errorf("list reflections: %w", err)
	}

	weekStart := day.AddDate(0, 0, -6).Format(storage.DateLayout)
	weekEnd := day.Format(storage.DateLayout)
	for key, raw := range reflections {
		var refl journal.Reflection
		if err := json.Unmarshal(raw, &refl); err != nil {
			continue
		}
		if refl.Text != "" {
			stats.ReflectionCount++
		}
		dateStr := key[len(storage.PrefixReflection):]
		if refl.Mood != "" && dateStr >= weekStart && dateStr <= weekEnd {
			stats.MoodsThisWeek++
		}
	}

	var streak journal.Streak
	err = s.db.Where("user_id = ?", userID).First(&streak).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return stats, fmt.Errorf("load streak: %w", err)
	}
	stats.CurrentStreak = streak.CurrentStreak

	var favorites int64
	if err := s.db.Model(&affirmations.FavoriteAffirmation{}).Where("user_id = ?", userID).Count(&favorites).Error; err != nil {
		return stats, fmt.Errorf("count favorites: %w", err)
	}
	stats.FavoriteCount = int(favorites)

	stats.Day = wellness.Aggregate(journal.LoadDayLog(s.store, userID, day))
	for i := 6; i >= 0; i-- {
		d := day.AddDate(0, 0, -i)
		stats.Week = append(stats.Week, wellness.Aggregate(journal.LoadDayLog(s.store, userID, d)))
	}

	return stats, nil
}
