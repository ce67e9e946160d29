package journal

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
	"github.com/karmajournal/karma-backend/internal/storage"
)

type JournalPlugin struct {
	store  storage.Store
	badges BadgeChecker
}

// New wires the journal feature. The badge checker is optional; passing nil
// disables badge evaluation on save.
func New(store storage.Store, badges BadgeChecker) *JournalPlugin {
	return &JournalPlugin{store: store, badges: badges}
}

func (p *JournalPlugin) ID() string { return "journal" }

func (p *JournalPlugin) Models() []interface{} {
	return []interface{}{
		&Streak{},
	}
}

func (p *JournalPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewJournalService(db, p.store, p.badges)
	handler := NewHandler(svc)

	router.Put("/journal/:date", handler.SaveDay)
	router.Get("/journal/streak", handler.GetStreak)
	router.Get("/journal/calendar", handler.GetCalendar)
	router.Get("/journal/:date", handler.GetDay)
	router.Get("/journal/:date/score", handler.GetScore)
}
