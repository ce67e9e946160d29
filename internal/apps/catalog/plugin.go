package catalog

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
)

type CatalogPlugin struct{}

func New() *CatalogPlugin {
	return &CatalogPlugin{}
}

func (p *CatalogPlugin) ID() string { return "catalog" }

// Models returns nil: the catalog is static and never persisted.
func (p *CatalogPlugin) Models() []interface{} { return nil }

func (p *CatalogPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler()

	router.Get("/activities", handler.ListActivities)
	router.Get("/activities/:name", handler.GetActivity)
}
