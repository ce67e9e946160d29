package badges

import (
	"time"

	"github.com/google/uuid"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/apps/wellness"
)

// Criteria types a badge predicate can use.
const (
	CriteriaReflections = "reflections"  // total reflections written
	CriteriaStreak      = "streak"       // current journaling streak length
	CriteriaMoodsWeek   = "moods_week"   // moods recorded in the trailing 7 days
	CriteriaFavorites   = "favorites"    // favorited affirmations
	CriteriaBalancedDay = "balanced_day" // all four chemicals >= 70 on one day
	CriteriaSustained   = "sustained"    // chemical active on >= N of trailing 7 days
)

// balancedThreshold is the per-chemical score required for the balanced-day
// badge.
const balancedThreshold = 70

// Definition is one immutable badge rule.
type Definition struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	CriteriaType  string           `json:"criteria_type"`
	CriteriaCount int              `json:"criteria_count,omitempty"`
	Chemical      catalog.Chemical `json:"chemical,omitempty"`
}

// Award records an earned badge. Awards are append-only: once earned a badge
// is never removed, even if the underlying counter later drops.
type Award struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_awards_user_badge" json:"user_id"`
	BadgeID      string    `gorm:"size:60;not null;uniqueIndex:idx_awards_user_badge" json:"badge_id"`
	AchievedDate time.Time `gorm:"not null" json:"achieved_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats is the aggregate snapshot badge predicates are evaluated against.
type Stats struct {
	ReflectionCount int
	CurrentStreak   int
	MoodsThisWeek   int
	FavoriteCount   int
	Day             wellness.DailyRecord
	Week            []wellness.DailyRecord
}

// --- DTOs ---

type BadgeStatus struct {
	Definition
	Achieved     bool   `json:"achieved"`
	AchievedDate string `json:"achieved_date,omitempty"`
}

type BadgesResponse struct {
	Badges   []BadgeStatus `json:"badges"`
	Achieved int           `json:"achieved"`
	Total    int           `json:"total"`
}

type CheckResponse struct {
	NewBadges []string `json:"new_badges"`
}
