package badges

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karmajournal/karma-backend/internal/apps/affirmations"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/apps/wellness"
	"github.com/karmajournal/karma-backend/internal/storage"
)

func TestEvaluateThresholds(t *testing.T) {
	defs := AllDefinitions()

	earned := Evaluate(defs, Stats{ReflectionCount: 10, CurrentStreak: 3}, map[string]bool{})
	ids := make(map[string]bool)
	for _, def := range earned {
		ids[def.ID] = true
	}

	for _, want := range []string{"first_reflection", "reflective_mind", "streak_3"} {
		if !ids[want] {
			t.Errorf("expected %s to be earned, got %v", want, ids)
		}
	}
	if ids["deep_thinker"] || ids["streak_7"] {
		t.Errorf("earned badges above threshold: %v", ids)
	}
}

func TestEvaluateSkipsAchieved(t *testing.T) {
	achieved := map[string]bool{"first_reflection": true}
	earned := Evaluate(AllDefinitions(), Stats{ReflectionCount: 1}, achieved)
	if len(earned) != 0 {
		t.Errorf("re-earned already achieved badges: %v", earned)
	}
}

func TestEvaluateNeverRevokes(t *testing.T) {
	// A counter dropping back below its threshold must not surface the badge
	// again, and achieved entries stay achieved.
	achieved := map[string]bool{"streak_7": true}
	earned := Evaluate(AllDefinitions(), Stats{CurrentStreak: 1}, achieved)
	for _, def := range earned {
		if def.ID == "streak_7" {
			t.Error("revoked-then-reearned badge surfaced for a lower counter")
		}
	}
}

func TestEvaluateBalancedDay(t *testing.T) {
	day := wellness.DailyRecord{
		Dopamine:   wellness.ChemicalScore{Score: 80},
		Serotonin:  wellness.ChemicalScore{Score: 70},
		Oxytocin:   wellness.ChemicalScore{Score: 100},
		Endorphins: wellness.ChemicalScore{Score: 70},
	}
	earned := Evaluate(AllDefinitions(), Stats{Day: day}, map[string]bool{})
	if !containsID(earned, "balanced_day") {
		t.Error("all four chemicals >= 70 should earn balanced_day")
	}

	day.Serotonin.Score = 60
	earned = Evaluate(AllDefinitions(), Stats{Day: day}, map[string]bool{})
	if containsID(earned, "balanced_day") {
		t.Error("one chemical below 70 must not earn balanced_day")
	}
}

func TestEvaluateSustainedChemical(t *testing.T) {
	week := make([]wellness.DailyRecord, 7)
	for i := 0; i < 5; i++ {
		week[i].Dopamine = wellness.ChemicalScore{Score: 20, ActivityCount: 1}
	}

	earned := Evaluate(AllDefinitions(), Stats{Week: week}, map[string]bool{})
	if !containsID(earned, "dopamine_week") {
		t.Error("5 active days of 7 should earn dopamine_week")
	}
	if containsID(earned, "serotonin_week") {
		t.Error("inactive chemical must not earn its sustained badge")
	}

	week[4].Dopamine = wellness.ChemicalScore{}
	earned = Evaluate(AllDefinitions(), Stats{Week: week}, map[string]bool{})
	if containsID(earned, "dopamine_week") {
		t.Error("4 active days must not earn dopamine_week")
	}
}

func containsID(defs []Definition, id string) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}

func setupBadgeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&Award{}, &journal.Streak{}, &affirmations.FavoriteAffirmation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Where("1 = 1").Delete(&Award{})
		db.Where("1 = 1").Delete(&journal.Streak{})
		db.Where("1 = 1").Delete(&affirmations.FavoriteAffirmation{})
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func putReflection(t *testing.T, store storage.Store, userID uuid.UUID, date, text, mood string) {
	t.Helper()
	day, err := time.Parse(storage.DateLayout, date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	raw, err := json.Marshal(journal.Reflection{Date: date, Text: text, Mood: mood})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := store.Set(userID, storage.DayKey(storage.PrefixReflection, day), raw); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestCheckAndAwardPersistsOnce(t *testing.T) {
	db := setupBadgeTestDB(t)
	store := storage.NewMemStore()
	svc := NewBadgeService(db, store)
	userID := uuid.New()
	day, _ := time.Parse(storage.DateLayout, "2026-01-05")

	putReflection(t, store, userID, "2026-01-05", "a first entry", "")

	names, err := svc.CheckAndAward(userID, day)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	if len(names) != 1 || names[0] != "First Reflection" {
		t.Errorf("names = %v, want [First Reflection]", names)
	}

	// Second evaluation must not re-award.
	names, err = svc.CheckAndAward(userID, day)
	if err != nil {
		t.Fatalf("CheckAndAward again: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("re-awarded badges: %v", names)
	}

	var count int64
	db.Model(&Award{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("award rows = %d, want 1", count)
	}
}

func TestCheckAndAwardStreakBadge(t *testing.T) {
	db := setupBadgeTestDB(t)
	store := storage.NewMemStore()
	svc := NewBadgeService(db, store)
	userID := uuid.New()
	day, _ := time.Parse(storage.DateLayout, "2026-01-05")

	streak := journal.Streak{ID: uuid.New(), UserID: userID, CurrentStreak: 7, LongestStreak: 7, LastQualifyingDate: day}
	if err := db.Create(&streak).Error; err != nil {
		t.Fatalf("seed streak: %v", err)
	}

	names, err := svc.CheckAndAward(userID, day)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["Three In A Row"] || !found["One Week Strong"] {
		t.Errorf("names = %v, want both streak badges at 7 days", names)
	}
	if found["Thirty Day Habit"] {
		t.Errorf("names = %v, 30-day badge earned at 7 days", names)
	}
}

func TestCheckAndAwardMoodWindow(t *testing.T) {
	db := setupBadgeTestDB(t)
	store := storage.NewMemStore()
	svc := NewBadgeService(db, store)
	userID := uuid.New()
	day, _ := time.Parse(storage.DateLayout, "2026-01-10")

	// Five moods inside the trailing week, one well outside it.
	for _, d := range []string{"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08", "2026-01-10"} {
		putReflection(t, store, userID, d, "", "happy")
	}
	putReflection(t, store, userID, "2025-12-01", "", "sad")

	names, err := svc.CheckAndAward(userID, day)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	found := false
	for _, n := range names {
		if n == "Mood Tracker" {
			found = true
		}
	}
	if !found {
		t.Errorf("names = %v, want Mood Tracker for 5 moods this week", names)
	}
}

func TestListReportsAchievementState(t *testing.T) {
	db := setupBadgeTestDB(t)
	store := storage.NewMemStore()
	svc := NewBadgeService(db, store)
	userID := uuid.New()
	day, _ := time.Parse(storage.DateLayout, "2026-01-05")

	putReflection(t, store, userID, "2026-01-05", "entry", "")
	if _, err := svc.CheckAndAward(userID, day); err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}

	resp, err := svc.List(userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Total != len(AllDefinitions()) {
		t.Errorf("Total = %d, want %d", resp.Total, len(AllDefinitions()))
	}
	if resp.Achieved != 1 {
		t.Errorf("Achieved = %d, want 1", resp.Achieved)
	}
	for _, b := range resp.Badges {
		if b.ID == "first_reflection" {
			if !b.Achieved || b.AchievedDate != "2026-01-05" {
				t.Errorf("first_reflection status = %+v, want achieved on 2026-01-05", b)
			}
		}
	}
}
