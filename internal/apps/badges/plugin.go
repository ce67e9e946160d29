package badges

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
)

type BadgesPlugin struct {
	service *BadgeService
}

// New wires the badges feature around a shared service instance. The same
// service is handed to the journal plugin as its BadgeChecker.
func New(service *BadgeService) *BadgesPlugin {
	return &BadgesPlugin{service: service}
}

func (p *BadgesPlugin) ID() string { return "badges" }

func (p *BadgesPlugin) Models() []interface{} {
	return []interface{}{
		&Award{},
	}
}

func (p *BadgesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(p.service)

	router.Get("/badges", handler.ListBadges)
	router.Post("/badges/check", handler.CheckBadges)
}
