package models

import "testing"

func TestParseTopic(t *testing.T) {
	for _, topic := range Topics {
		parsed, err := ParseTopic(string(topic))
		if err != nil || parsed != topic {
			t.Errorf("topic %s: expected round trip, got %v (%v)", topic, parsed, err)
		}
	}
	if _, err := ParseTopic("history"); err == nil {
		t.Error("expected error for topic outside the enumeration")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		parsed, err := ParseDifficulty(string(d))
		if err != nil || parsed != d {
			t.Errorf("difficulty %s: expected round trip, got %v (%v)", d, parsed, err)
		}
	}
	if _, err := ParseDifficulty("extreme"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestDifficultySteps(t *testing.T) {
	testCases := []struct {
		name           string
		start          Difficulty
		harder, easier Difficulty
	}{
		{"easy", DifficultyEasy, DifficultyMedium, DifficultyEasy},
		{"medium", DifficultyMedium, DifficultyHard, DifficultyEasy},
		{"hard", DifficultyHard, DifficultyHard, DifficultyMedium},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.Harder(); got != tc.harder {
				t.Errorf("Harder: expected %s, got %s", tc.harder, got)
			}
			if got := tc.start.Easier(); got != tc.easier {
				t.Errorf("Easier: expected %s, got %s", tc.easier, got)
			}
		})
	}
}

func TestHarderThan(t *testing.T) {
	if !DifficultyHard.HarderThan(DifficultyMedium) || !DifficultyMedium.HarderThan(DifficultyEasy) {
		t.Error("expected easy < medium < hard ordering")
	}
	if DifficultyEasy.HarderThan(DifficultyEasy) {
		t.Error("a level is not harder than itself")
	}
}
