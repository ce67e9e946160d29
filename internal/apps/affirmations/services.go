package affirmations

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/storage"
)

var (
	ErrEmptyText        = errors.New("affirmation text is required")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

var dailyAffirmations = []string{
	"I am in charge of how I feel today, and I choose happiness.",
	"Every small positive action I take compounds into real change.",
	"I forgive myself for yesterday and commit to today.",
	"My habits are votes for the person I am becoming.",
	"I am allowed to be a work in progress and a masterpiece at once.",
	"Cravings pass. My values stay.",
	"I treat my body like someone I am responsible for caring about.",
	"Progress, not perfection, is the goal.",
	"I can do hard things, one day at a time.",
	"Today I will notice one thing I am grateful for.",
	"My setbacks are data, not verdicts.",
	"I choose connection over isolation today.",
	"Rest is productive. I am allowed to recharge.",
	"I speak to myself the way I would speak to a friend.",
}

type AffirmationService struct {
	db *gorm.DB
}

func NewAffirmationService(db *gorm.DB) *AffirmationService {
	return &AffirmationService{db: db}
}

// Today returns the affirmation for a calendar day. The pick is
// deterministic by date, so every read of the same day agrees.
func (s *AffirmationService) Today(day time.Time) TodayResponse {
	dateStr := day.Format(storage.DateLayout)
	sum := 0
	for _, b := range []byte(dateStr) {
		sum += int(b)
	}
	return TodayResponse{
		Date:        dateStr,
		Affirmation: dailyAffirmations[sum%len(dailyAffirmations)],
	}
}

func (s *AffirmationService) AddFavorite(userID uuid.UUID, text string) (*FavoriteAffirmation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	fav := FavoriteAffirmation{
		ID:     uuid.New(),
		UserID: userID,
		Text:   text,
	}
	if err := s.db.Create(&fav).Error; err != nil {
		return nil, fmt.Errorf("save favorite: %w", err)
	}
	return &fav, nil
}

func (s *AffirmationService) ListFavorites(userID uuid.UUID) ([]FavoriteAffirmation, int64, error) {
	var favs []FavoriteAffirmation
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	if err != nil {
		return nil, 0, err
	}
	return favs, int64(len(favs)), nil
}

func (s *AffirmationService) RemoveFavorite(userID, favID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", favID, userID).Delete(&FavoriteAffirmation{})
	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
