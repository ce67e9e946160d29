package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karmajournal/karma-backend/internal/apps/affirmations"
	"github.com/karmajournal/karma-backend/internal/apps/badges"
	"github.com/karmajournal/karma-backend/internal/apps/goals"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/config"
	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/models"
	"github.com/karmajournal/karma-backend/internal/storage"
)

func setupAuthTest(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.RefreshToken{}, &storage.Record{},
		&journal.Streak{}, &goals.Goal{}, &affirmations.FavoriteAffirmation{}, &badges.Award{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		for _, m := range []interface{}{
			&models.RefreshToken{}, &models.User{}, &storage.Record{},
			&journal.Streak{}, &goals.Goal{}, &affirmations.FavoriteAffirmation{}, &badges.Award{},
		} {
			db.Where("1 = 1").Delete(m)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(db, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthTest(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "mira@example.com", Password: "hunter2hunter2", DisplayName: "Mira"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if resp.User.Email != "mira@example.com" || resp.User.DisplayName != "Mira" {
		t.Errorf("User = %+v", resp.User)
	}

	if _, err := svc.Register(&dto.RegisterRequest{Email: "mira@example.com", Password: "hunter2hunter2"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate register err = %v, want ErrEmailTaken", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "mira@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}

	login, err := svc.Login(&dto.LoginRequest{Email: "mira@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.AccessToken == "" {
		t.Error("login returned no access token")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := setupAuthTest(t)

	if _, err := svc.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "short"}); err == nil {
		t.Error("expected an error for a short password")
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := setupAuthTest(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "rot@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is revoked after rotation.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused token err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := setupAuthTest(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "out@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("post-logout refresh err = %v, want ErrInvalidToken", err)
	}
}

func TestDeleteAccountRemovesUserData(t *testing.T) {
	svc := setupAuthTest(t)

	reg, err := svc.Register(&dto.RegisterRequest{Email: "gone@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	userID := reg.User.ID

	store := storage.NewGormStore(svc.db)
	if err := store.Set(userID, "karmaLog:2026-01-05", []byte(`{}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := svc.DeleteAccount(userID, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.DeleteAccount(userID, "hunter2hunter2"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	var users int64
	svc.db.Model(&models.User{}).Where("id = ?", userID).Count(&users)
	if users != 0 {
		t.Error("user row survived deletion")
	}

	var records int64
	svc.db.Model(&storage.Record{}).Where("user_id = ?", userID).Count(&records)
	if records != 0 {
		t.Error("journal records survived deletion")
	}
}
