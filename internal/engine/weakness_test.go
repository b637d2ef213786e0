package engine

import (
	"testing"

	"assessment-service/internal/models"
)

func TestWeakTopics_EmptyHistory(t *testing.T) {
	weak := WeakTopics(nil, DefaultConfig())
	if len(weak) != 0 {
		t.Errorf("expected no weak topics without history, got %v", weak)
	}
}

func TestWeakTopics_FlagsLowAccuracy(t *testing.T) {
	cfg := DefaultConfig()

	// 1/4 correct on statistics over the short window (0.25 < 0.50); python
	// is healthy at 3/4.
	attempts := []models.AttemptRecord{
		{Outcomes: []models.QuestionOutcome{
			{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Correct: true},
			{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Correct: false},
			{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Correct: true},
			{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Correct: true},
		}},
		{Outcomes: []models.QuestionOutcome{
			{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Correct: false},
			{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Correct: false},
			{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Correct: true},
			{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Correct: false},
		}},
	}

	weak := WeakTopics(attempts, cfg)
	if len(weak) != 1 || weak[0] != models.TopicStatistics {
		t.Errorf("expected [statistics], got %v", weak)
	}
}

func TestWeakTopics_ExactThresholdNotWeak(t *testing.T) {
	cfg := DefaultConfig()

	// 2/4 = 0.50 is not strictly below the 0.50 threshold.
	attempts := []models.AttemptRecord{attemptWith(models.TopicSQL, models.DifficultyEasy, 2, 4)}
	weak := WeakTopics(attempts, cfg)
	if len(weak) != 0 {
		t.Errorf("expected accuracy at threshold to not be weak, got %v", weak)
	}
}

func TestWeakTopics_NoEvidenceExcluded(t *testing.T) {
	cfg := DefaultConfig()

	// Every answer wrong on quant, nothing attempted elsewhere: only quant
	// may be flagged, untouched topics stay out of the set.
	attempts := []models.AttemptRecord{attemptWith(models.TopicQuant, models.DifficultyEasy, 0, 3)}
	weak := WeakTopics(attempts, cfg)
	if len(weak) != 1 || weak[0] != models.TopicQuant {
		t.Errorf("expected only [quant], got %v", weak)
	}
}

func TestWeakTopics_WindowShorterThanDifficultyWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeakLookback = 1

	// Newest attempt is clean; the older failures fall outside the window.
	attempts := []models.AttemptRecord{
		attemptWith(models.TopicLanguage, models.DifficultyEasy, 3, 3),
		attemptWith(models.TopicLanguage, models.DifficultyEasy, 0, 3),
		attemptWith(models.TopicLanguage, models.DifficultyEasy, 0, 3),
	}
	weak := WeakTopics(attempts, cfg)
	if len(weak) != 0 {
		t.Errorf("expected no weak topics within window, got %v", weak)
	}
}

func TestWeakTopics_EnumerationOrder(t *testing.T) {
	cfg := DefaultConfig()

	attempts := []models.AttemptRecord{
		{Outcomes: []models.QuestionOutcome{
			{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Correct: false},
			{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Correct: false},
			{Topic: models.TopicLogical, Difficulty: models.DifficultyEasy, Correct: false},
		}},
	}
	weak := WeakTopics(attempts, cfg)
	expected := []models.Topic{models.TopicPython, models.TopicLogical, models.TopicStatistics}
	if len(weak) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, weak)
	}
	for i := range expected {
		if weak[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], weak[i])
		}
	}
}
