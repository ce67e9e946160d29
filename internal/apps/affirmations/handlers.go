package affirmations

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/middleware"
)

type Handler struct {
	affirmationService *AffirmationService
}

func NewHandler(affirmationService *AffirmationService) *Handler {
	return &Handler{affirmationService: affirmationService}
}

// GetToday handles GET /affirmations/today - returns today's affirmation.
func (h *Handler) GetToday(c *fiber.Ctx) error {
	return c.JSON(h.affirmationService.Today(time.Now().UTC()))
}

// ListFavorites handles GET /affirmations/favorites.
func (h *Handler) ListFavorites(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	favs, total, err := h.affirmationService.ListFavorites(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch favorites",
		})
	}

	return c.JSON(FavoritesResponse{Favorites: favs, Total: total})
}

// AddFavorite handles POST /affirmations/favorites.
func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	fav, err := h.affirmationService.AddFavorite(userID, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fav)
}

// RemoveFavorite handles DELETE /affirmations/favorites/:id.
func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	favID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid favorite ID",
		})
	}

	if err := h.affirmationService.RemoveFavorite(userID, favID); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Favorite not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove favorite",
		})
	}

	return c.JSON(fiber.Map{"message": "Favorite removed"})
}
