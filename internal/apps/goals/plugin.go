package goals

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
)

type GoalsPlugin struct{}

func New() *GoalsPlugin {
	return &GoalsPlugin{}
}

func (p *GoalsPlugin) ID() string { return "goals" }

func (p *GoalsPlugin) Models() []interface{} {
	return []interface{}{
		&Goal{},
	}
}

func (p *GoalsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewGoalService(db)
	handler := NewHandler(svc)

	router.Post("/goals", handler.CreateGoal)
	router.Get("/goals", handler.ListGoals)
	router.Post("/goals/:id/toggle", handler.ToggleGoal)
}
