package journal

import (
	"strings"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name string
		log  DayLog
		refl Reflection
		want bool
	}{
		{"empty day", DayLog{}, Reflection{}, false},
		{"reflection text", DayLog{}, Reflection{Text: "good day"}, true},
		{"mood only", DayLog{}, Reflection{Mood: "calm"}, true},
		{"journaling activity", DayLog{Activities: []LoggedActivity{{ActivityName: "Journaling"}}}, Reflection{}, true},
		{"media note", DayLog{Activities: []LoggedActivity{{ActivityName: "Exercise", Media: &MediaRef{Kind: "photo", Handle: "h"}}}}, Reflection{}, true},
		{"plain activity only", DayLog{Activities: []LoggedActivity{{ActivityName: "Exercise"}}}, Reflection{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Qualifies(tc.log, tc.refl); got != tc.want {
				t.Errorf("Qualifies() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAdvanceStreakFirstEntry(t *testing.T) {
	s := &Streak{}
	outcome := advanceStreak(s, day("2026-01-05"))

	if outcome != streakStarted {
		t.Fatalf("outcome = %d, want streakStarted", outcome)
	}
	if s.CurrentStreak != 1 || s.LongestStreak != 1 || s.TotalEntries != 1 {
		t.Errorf("streak = %+v, want current=1 longest=1 total=1", s)
	}
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	s := &Streak{}
	advanceStreak(s, day("2026-01-05"))

	outcome := advanceStreak(s, day("2026-01-06"))
	if outcome != streakContinued {
		t.Fatalf("outcome = %d, want streakContinued", outcome)
	}
	if s.CurrentStreak != 2 || s.LongestStreak != 2 {
		t.Errorf("streak = %+v, want current=2 longest=2", s)
	}
}

func TestAdvanceStreakSameDayIdempotent(t *testing.T) {
	s := &Streak{}
	advanceStreak(s, day("2026-01-05"))

	outcome := advanceStreak(s, day("2026-01-05"))
	if outcome != streakUnchanged {
		t.Fatalf("outcome = %d, want streakUnchanged", outcome)
	}
	if s.CurrentStreak != 1 || s.TotalEntries != 1 {
		t.Errorf("same-day re-save changed streak: %+v", s)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	s := &Streak{}
	advanceStreak(s, day("2026-01-05"))
	advanceStreak(s, day("2026-01-06"))
	advanceStreak(s, day("2026-01-07"))

	outcome := advanceStreak(s, day("2026-01-10"))
	if outcome != streakReset {
		t.Fatalf("outcome = %d, want streakReset", outcome)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after gap", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3 preserved across reset", s.LongestStreak)
	}
}

func TestAdvanceStreakBackdatedEditIgnored(t *testing.T) {
	s := &Streak{}
	advanceStreak(s, day("2026-01-05"))
	advanceStreak(s, day("2026-01-06"))

	outcome := advanceStreak(s, day("2026-01-02"))
	if outcome != streakUnchanged {
		t.Fatalf("outcome = %d, want streakUnchanged for backdated edit", outcome)
	}
	if s.CurrentStreak != 2 || !truncateDay(s.LastQualifyingDate).Equal(day("2026-01-06")) {
		t.Errorf("backdated edit mutated streak: %+v", s)
	}
}

func TestAdvanceStreakCurrentNeverExceedsLongest(t *testing.T) {
	s := &Streak{}
	dates := []string{"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-06", "2026-01-07"}
	for _, d := range dates {
		advanceStreak(s, day(d))
		if s.CurrentStreak > s.LongestStreak {
			t.Fatalf("after %s: current %d > longest %d", d, s.CurrentStreak, s.LongestStreak)
		}
	}
	if s.CurrentStreak != 2 || s.LongestStreak != 3 {
		t.Errorf("streak = %+v, want current=2 longest=3", s)
	}
}

func TestStreakMessage(t *testing.T) {
	s := &Streak{CurrentStreak: 1, LongestStreak: 5}

	if msg := streakMessage(streakReset, s, 5); !strings.Contains(msg, "5 day streak ended") {
		t.Errorf("reset message = %q, want mention of the broken streak", msg)
	}
	if msg := streakMessage(streakStarted, s, 0); msg == "" {
		t.Error("started message should not be empty")
	}
	if msg := streakMessage(streakUnchanged, s, 1); msg != "" {
		t.Errorf("unchanged message = %q, want empty", msg)
	}

	s.CurrentStreak = 7
	if msg := streakMessage(streakContinued, s, 6); !strings.Contains(msg, "7") {
		t.Errorf("continued message = %q, want current count", msg)
	}
}
