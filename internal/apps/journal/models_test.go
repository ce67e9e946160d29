package journal

import "testing"

func TestJoinTrigger(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		freeText  string
		want      string
	}{
		{"both parts", "Stress", "deadline at work", "Stress||deadline at work"},
		{"selection only", "Boredom", "", "Boredom"},
		{"free text only", "", "saw an old photo", "saw an old photo"},
		{"neither", "", "", ""},
		{"whitespace trimmed", "  Stress  ", "  late night  ", "Stress||late night"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := JoinTrigger(tc.selection, tc.freeText); got != tc.want {
				t.Errorf("JoinTrigger = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplitTrigger(t *testing.T) {
	sel, free := SplitTrigger("Stress||deadline at work")
	if sel != "Stress" || free != "deadline at work" {
		t.Errorf("SplitTrigger = (%q, %q)", sel, free)
	}

	// Without the separator the whole string is the selection part.
	sel, free = SplitTrigger("Boredom")
	if sel != "Boredom" || free != "" {
		t.Errorf("SplitTrigger = (%q, %q)", sel, free)
	}

	sel, free = SplitTrigger("")
	if sel != "" || free != "" {
		t.Errorf("SplitTrigger = (%q, %q)", sel, free)
	}
}
