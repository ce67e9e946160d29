package goals

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGoalTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&Goal{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Where("1 = 1").Delete(&Goal{})
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateGoalRequiresName(t *testing.T) {
	svc := NewGoalService(setupGoalTestDB(t))

	if _, err := svc.Create(uuid.New(), "   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}

	goal, err := svc.Create(uuid.New(), "  Meditate daily  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if goal.Name != "Meditate daily" {
		t.Errorf("Name = %q, want trimmed", goal.Name)
	}
}

func TestToggleBuildsAndBreaksStreak(t *testing.T) {
	svc := NewGoalService(setupGoalTestDB(t))
	userID := uuid.New()

	goal, err := svc.Create(userID, "No sugar")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.Toggle(userID, goal.ID, date("2026-01-05"))
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if resp.Streak != 1 || !resp.IsCompletedToday {
		t.Errorf("resp = %+v, want streak 1 completed today", resp)
	}

	resp, err = svc.Toggle(userID, goal.ID, date("2026-01-06"))
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if resp.Streak != 2 {
		t.Errorf("Streak = %d, want 2 on consecutive day", resp.Streak)
	}

	resp, err = svc.Toggle(userID, goal.ID, date("2026-01-09"))
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if resp.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after a gap", resp.Streak)
	}
}

func TestToggleSameDayUndoes(t *testing.T) {
	svc := NewGoalService(setupGoalTestDB(t))
	userID := uuid.New()

	goal, err := svc.Create(userID, "Read")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.Toggle(userID, goal.ID, date("2026-01-05"))
	svc.Toggle(userID, goal.ID, date("2026-01-06"))

	resp, err := svc.Toggle(userID, goal.ID, date("2026-01-06"))
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if resp.Streak != 1 || resp.IsCompletedToday {
		t.Errorf("resp = %+v, want streak rolled back to 1 and not completed today", resp)
	}

	// The rollback left the last completion on 2026-01-05; un-toggling that
	// day too clears the streak entirely.
	resp, err = svc.Toggle(userID, goal.ID, date("2026-01-05"))
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if resp.Streak != 0 || resp.IsCompletedToday {
		t.Errorf("resp = %+v, want streak 0 and nothing completed", resp)
	}
}

func TestToggleUnknownGoal(t *testing.T) {
	svc := NewGoalService(setupGoalTestDB(t))

	_, err := svc.Toggle(uuid.New(), uuid.New(), date("2026-01-05"))
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestListScopedToUser(t *testing.T) {
	svc := NewGoalService(setupGoalTestDB(t))
	alice, bob := uuid.New(), uuid.New()

	svc.Create(alice, "Walk")
	svc.Create(alice, "Stretch")
	svc.Create(bob, "Swim")

	goals, err := svc.List(alice, date("2026-01-05"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 2 {
		t.Errorf("len = %d, want 2", len(goals))
	}
}
