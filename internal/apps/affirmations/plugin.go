package affirmations

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/config"
)

type AffirmationsPlugin struct{}

func New() *AffirmationsPlugin {
	return &AffirmationsPlugin{}
}

func (p *AffirmationsPlugin) ID() string { return "affirmations" }

func (p *AffirmationsPlugin) Models() []interface{} {
	return []interface{}{
		&FavoriteAffirmation{},
	}
}

func (p *AffirmationsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewAffirmationService(db)
	handler := NewHandler(svc)

	router.Get("/affirmations/today", handler.GetToday)
	router.Get("/affirmations/favorites", handler.ListFavorites)
	router.Post("/affirmations/favorites", handler.AddFavorite)
	router.Delete("/affirmations/favorites/:id", handler.RemoveFavorite)
}
