package coach

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
	"github.com/karmajournal/karma-backend/internal/storage"
)

type CoachPlugin struct {
	store storage.Store
}

func New(store storage.Store) *CoachPlugin {
	return &CoachPlugin{store: store}
}

func (p *CoachPlugin) ID() string { return "coach" }

// Models returns nil: the coach keeps no persisted state of its own.
func (p *CoachPlugin) Models() []interface{} { return nil }

func (p *CoachPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	client := NewClient(cfg)
	svc := NewCoachService(client, db, p.store)
	handler := NewHandler(svc)

	router.Post("/coach/counselling", handler.Counselling)
	router.Post("/coach/coaching", handler.Coaching)
	router.Post("/coach/extract-activities", handler.ExtractActivities)
	router.Post("/coach/transcribe", handler.Transcribe)
	router.Post("/coach/analyze-journal", handler.AnalyzeJournal)
}
