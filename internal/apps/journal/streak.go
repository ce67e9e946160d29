package journal

import (
	"fmt"
	"time"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
)

// Qualifies reports whether saving this day log counts as a journal entry for
// streak purposes: the Journaling activity was logged, or the reflection has
// text, or a mood was recorded, or any activity carries a media note.
func Qualifies(log DayLog, refl Reflection) bool {
	if refl.Text != "" || refl.Mood != "" {
		return true
	}
	for _, entry := range log.Activities {
		if entry.ActivityName == catalog.JournalingActivity {
			return true
		}
		if entry.Media != nil {
			return true
		}
	}
	return false
}

type streakOutcome int

const (
	streakUnchanged streakOutcome = iota // same-day re-save or backdated edit
	streakStarted
	streakContinued
	streakReset
)

// advanceStreak applies one qualifying save for day to the streak record.
// Streaks are forward-only: an edit dated before the last qualifying day
// leaves the record untouched. The record is mutated in place; the returned
// outcome tells the caller what happened.
func advanceStreak(s *Streak, day time.Time) streakOutcome {
	day = truncateDay(day)
	last := truncateDay(s.LastQualifyingDate)

	var outcome streakOutcome
	switch {
	case s.LastQualifyingDate.IsZero():
		s.CurrentStreak = 1
		outcome = streakStarted
	case day.Equal(last):
		return streakUnchanged
	case day.Before(last):
		return streakUnchanged
	case day.Equal(last.AddDate(0, 0, 1)):
		s.CurrentStreak++
		outcome = streakContinued
	default:
		s.CurrentStreak = 1
		outcome = streakReset
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.TotalEntries++
	s.LastQualifyingDate = day
	return outcome
}

// streakMessage produces the user-visible note for a streak transition. A
// broken streak is reported, never silently dropped.
func streakMessage(outcome streakOutcome, s *Streak, previous int) string {
	switch outcome {
	case streakStarted:
		return "Your journaling streak begins! Day 1."
	case streakContinued:
		return fmt.Sprintf("%d day streak! Keep going!", s.CurrentStreak)
	case streakReset:
		return fmt.Sprintf("Your %d day streak ended. A new one starts today!", previous)
	default:
		return ""
	}
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
