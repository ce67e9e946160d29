package affirmations

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteAffirmation is a saved affirmation. Removing a favorite never
// revokes badges earned from the favorite count.
type FavoriteAffirmation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// --- DTOs ---

type FavoriteRequest struct {
	Text string `json:"text"`
}

type TodayResponse struct {
	Date        string `json:"date"`
	Affirmation string `json:"affirmation"`
}

type FavoritesResponse struct {
	Favorites []FavoriteAffirmation `json:"favorites"`
	Total     int64                 `json:"total"`
}
