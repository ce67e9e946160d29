package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaRef points at an attached media note. The handle is opaque to the
// journal: clients upload media elsewhere and store the reference here.
type MediaRef struct {
	Kind   string `json:"kind"` // "photo", "audio" or "video"
	Handle string `json:"handle"`
}

// LoggedActivity is one activity instance logged on a given day.
type LoggedActivity struct {
	ActivityName string    `json:"activity_name"`
	Quantity     *float64  `json:"quantity,omitempty"`
	Trigger      string    `json:"trigger,omitempty"`
	Media        *MediaRef `json:"media,omitempty"`
}

// DayLog is the full activity log for one calendar day. Saves supersede the
// stored record; entries are never merged.
type DayLog struct {
	Date       string           `json:"date"`
	Activities []LoggedActivity `json:"activities"`
}

// Reflection is the free-text journal entry and mood for one day.
type Reflection struct {
	Date string `json:"date"`
	Text string `json:"text,omitempty"`
	Mood string `json:"mood,omitempty"`
}

// Moods a reflection may carry.
var Moods = []string{"happy", "calm", "grateful", "neutral", "tired", "sad", "anxious", "angry"}

// triggerSeparator joins the predefined-selection part of a trigger with the
// user's free text.
const triggerSeparator = "||"

// JoinTrigger combines a predefined trigger selection and free text into the
// stored trigger string.
func JoinTrigger(selection, freeText string) string {
	selection = strings.TrimSpace(selection)
	freeText = strings.TrimSpace(freeText)
	switch {
	case selection == "":
		return freeText
	case freeText == "":
		return selection
	default:
		return selection + triggerSeparator + freeText
	}
}

// SplitTrigger splits a stored trigger string back into its selection and
// free-text parts.
func SplitTrigger(trigger string) (selection, freeText string) {
	if i := strings.Index(trigger, triggerSeparator); i >= 0 {
		return trigger[:i], trigger[i+len(triggerSeparator):]
	}
	return trigger, ""
}

// Streak is the singleton per-user journaling streak record.
type Streak struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	CurrentStreak      int       `gorm:"default:0" json:"current_streak"`
	LongestStreak      int       `gorm:"default:0" json:"longest_streak"`
	TotalEntries       int       `gorm:"default:0" json:"total_entries"`
	LastQualifyingDate time.Time `json:"last_qualifying_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// --- DTOs ---

type SaveDayRequest struct {
	Activities []LoggedActivity `json:"activities"`
	Reflection string           `json:"reflection"`
	Mood       string           `json:"mood"`
}

type DayResponse struct {
	Date       string           `json:"date"`
	Activities []LoggedActivity `json:"activities"`
	Reflection string           `json:"reflection"`
	Mood       string           `json:"mood"`
	Score      int              `json:"score"`
}

type SaveDayResponse struct {
	Date          string         `json:"date"`
	Score         int            `json:"score"`
	Streak        StreakResponse `json:"streak"`
	StreakMessage string         `json:"streak_message,omitempty"`
	NewBadges     []string       `json:"new_badges,omitempty"`
}

type StreakResponse struct {
	CurrentStreak      int    `json:"current_streak"`
	LongestStreak      int    `json:"longest_streak"`
	TotalEntries       int    `json:"total_entries"`
	LastQualifyingDate string `json:"last_qualifying_date,omitempty"`
}

type CalendarResponse struct {
	Dates []string `json:"dates"`
	Days  int      `json:"days"`
}
