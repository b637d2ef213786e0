package engine

import (
	"testing"

	"assessment-service/internal/models"
)

func easyTargets() map[models.Topic]models.Difficulty {
	targets := map[models.Topic]models.Difficulty{}
	for _, topic := range models.Topics {
		targets[topic] = models.DifficultyEasy
	}
	return targets
}

func planCounts(plan []CellRequest) (map[models.Topic]int, int) {
	counts := map[models.Topic]int{}
	total := 0
	for _, cell := range plan {
		counts[cell.Topic] += cell.Count
		total += cell.Count
	}
	return counts, total
}

func TestBuildPlan_ColdStartEvenSplit(t *testing.T) {
	cfg := DefaultConfig() // quiz_size 12, six topics

	plan := BuildPlan(easyTargets(), nil, cfg)
	counts, total := planCounts(plan)

	if total != 12 {
		t.Errorf("expected 12 planned questions, got %d", total)
	}
	for _, topic := range models.Topics {
		if counts[topic] != 2 {
			t.Errorf("topic %s: expected 2 questions, got %d", topic, counts[topic])
		}
	}
	for _, cell := range plan {
		if cell.Difficulty != models.DifficultyEasy {
			t.Errorf("topic %s: expected easy on cold start, got %s", cell.Topic, cell.Difficulty)
		}
	}
}

func TestBuildPlan_WeakReservation(t *testing.T) {
	cfg := DefaultConfig()

	// round(0.30 * 12) = 4 slots reserved for statistics, plus its share of
	// the even fill. Remaining 8 slots: one per topic, remainder of 2 to
	// the first topics in enumeration order.
	plan := BuildPlan(easyTargets(), []models.Topic{models.TopicStatistics}, cfg)
	counts, total := planCounts(plan)

	if total != 12 {
		t.Errorf("expected 12 planned questions, got %d", total)
	}
	if counts[models.TopicStatistics] != 5 {
		t.Errorf("expected statistics to get 4 reserved + 1 fill = 5, got %d", counts[models.TopicStatistics])
	}
	if counts[models.TopicPython] != 2 || counts[models.TopicSQL] != 2 {
		t.Errorf("expected fill remainder to land on python and sql, got python=%d sql=%d",
			counts[models.TopicPython], counts[models.TopicSQL])
	}
}

func TestBuildPlan_WeakRemainderRoundRobin(t *testing.T) {
	cfg := DefaultConfig()

	// 4 reserved slots across three weak topics: base 1 each, the leftover
	// goes to the first weak topic in enumeration order.
	weak := []models.Topic{models.TopicPython, models.TopicSQL, models.TopicLogical}
	plan := BuildPlan(easyTargets(), weak, cfg)
	counts, total := planCounts(plan)

	if total != 12 {
		t.Errorf("expected 12 planned questions, got %d", total)
	}
	// Reserved: python 2, sql 1, logical 1. Even fill of remaining 8: one
	// per topic plus remainder to python and sql.
	expected := map[models.Topic]int{
		models.TopicPython:     4,
		models.TopicSQL:        3,
		models.TopicLogical:    2,
		models.TopicQuant:      1,
		models.TopicLanguage:   1,
		models.TopicStatistics: 1,
	}
	for topic, want := range expected {
		if counts[topic] != want {
			t.Errorf("topic %s: expected %d, got %d", topic, want, counts[topic])
		}
	}
}

func TestBuildPlan_UsesTargetDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	targets := easyTargets()
	targets[models.TopicSQL] = models.DifficultyHard

	plan := BuildPlan(targets, nil, cfg)
	for _, cell := range plan {
		if cell.Topic == models.TopicSQL && cell.Difficulty != models.DifficultyHard {
			t.Errorf("expected sql cell at hard, got %s", cell.Difficulty)
		}
	}
}

func TestBuildPlan_TinyQuiz(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuizSize = 3

	plan := BuildPlan(easyTargets(), []models.Topic{models.TopicQuant}, cfg)
	_, total := planCounts(plan)
	if total != 3 {
		t.Errorf("expected plan total to match quiz size 3, got %d", total)
	}
}
