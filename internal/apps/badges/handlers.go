package badges

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/middleware"
)

type Handler struct {
	badgeService *BadgeService
}

func NewHandler(badgeService *BadgeService) *Handler {
	return &Handler{badgeService: badgeService}
}

// ListBadges handles GET /badges - returns all definitions with achievement state.
func (h *Handler) ListBadges(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.badgeService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch badges",
		})
	}

	return c.JSON(resp)
}

// CheckBadges handles POST /badges/check - re-evaluates all predicates now.
func (h *Handler) CheckBadges(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	newBadges, err := h.badgeService.CheckAndAward(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to evaluate badges",
		})
	}

	if newBadges == nil {
		newBadges = []string{}
	}
	return c.JSON(CheckResponse{NewBadges: newBadges})
}
