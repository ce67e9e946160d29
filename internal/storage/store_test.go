package storage

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDayKey(t *testing.T) {
	day, _ := time.Parse(DateLayout, "2026-01-05")
	if got := DayKey(PrefixDayLog, day); got != "karmaLog:2026-01-05" {
		t.Errorf("DayKey = %q, want karmaLog:2026-01-05", got)
	}
}

func setupStoreTestDB(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Where("1 = 1").Delete(&Record{})
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewGormStore(db)
}

func storeImplementations(t *testing.T) map[string]Store {
	return map[string]Store{
		"mem":  NewMemStore(),
		"gorm": setupStoreTestDB(t),
	}
}

func TestStoreRoundtrip(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			userID := uuid.New()

			if _, ok, err := store.Get(userID, "karmaLog:2026-01-05"); err != nil || ok {
				t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
			}

			want := []byte(`{"date":"2026-01-05"}`)
			if err := store.Set(userID, "karmaLog:2026-01-05", want); err != nil {
				t.Fatalf("Set: %v", err)
			}

			got, ok, err := store.Get(userID, "karmaLog:2026-01-05")
			if err != nil || !ok {
				t.Fatalf("Get: ok=%v err=%v", ok, err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Get = %s, want %s", got, want)
			}
		})
	}
}

func TestStoreSetReplaces(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			userID := uuid.New()

			store.Set(userID, "reflection:2026-01-05", []byte(`{"text":"first"}`))
			if err := store.Set(userID, "reflection:2026-01-05", []byte(`{"text":"second"}`)); err != nil {
				t.Fatalf("second Set: %v", err)
			}

			got, ok, err := store.Get(userID, "reflection:2026-01-05")
			if err != nil || !ok {
				t.Fatalf("Get: ok=%v err=%v", ok, err)
			}
			if string(got) != `{"text":"second"}` {
				t.Errorf("Get = %s, want the second write", got)
			}

			entries, err := store.List(userID, PrefixReflection)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("List = %d entries, want 1 after upsert", len(entries))
			}
		})
	}
}

func TestStoreListFiltersByPrefixAndUser(t *testing.T) {
	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			alice, bob := uuid.New(), uuid.New()

			store.Set(alice, "karmaLog:2026-01-05", []byte(`{}`))
			store.Set(alice, "karmaLog:2026-01-06", []byte(`{}`))
			store.Set(alice, "reflection:2026-01-05", []byte(`{}`))
			store.Set(bob, "karmaLog:2026-01-05", []byte(`{}`))

			entries, err := store.List(alice, PrefixDayLog)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(entries) != 2 {
				t.Errorf("List = %d entries, want 2: %v", len(entries), keys(entries))
			}
			for key := range entries {
				if key[:len(PrefixDayLog)] != PrefixDayLog {
					t.Errorf("List leaked key %q outside prefix", key)
				}
			}
		})
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
