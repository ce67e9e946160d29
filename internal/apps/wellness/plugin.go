package wellness

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
	"github.com/karmajournal/karma-backend/internal/storage"
)

type WellnessPlugin struct {
	store storage.Store
}

func New(store storage.Store) *WellnessPlugin {
	return &WellnessPlugin{store: store}
}

func (p *WellnessPlugin) ID() string { return "wellness" }

// Models returns nil: wellness records live in the key/value store.
func (p *WellnessPlugin) Models() []interface{} { return nil }

func (p *WellnessPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewWellnessService(p.store)
	handler := NewHandler(svc)

	router.Get("/wellness/weekly", handler.GetWeekly)
	router.Get("/wellness/:date", handler.GetDay)
}
