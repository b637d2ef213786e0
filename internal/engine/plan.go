package engine

import (
	"math"

	"assessment-service/internal/models"
)

// CellRequest asks the composer for Count questions on Topic at Difficulty.
type CellRequest struct {
	Topic      models.Topic
	Difficulty models.Difficulty
	Count      int
}

// BuildPlan turns per-topic target difficulties and the weak set into a
// selection plan: how many questions each topic contributes and at what
// level. It is a pure function of its inputs, with no randomness or I/O, so
// the branching policy here is testable apart from question sampling.
//
// A rounded WeakShareFraction of the quiz is reserved for weak topics,
// split evenly among them with the remainder handed out round-robin in
// enumeration order. The remaining slots spread evenly across every topic,
// remainder again round-robin in enumeration order. Both halves of a
// topic's allotment are served at its single target difficulty, so the plan
// has at most one cell per topic.
func BuildPlan(targets map[models.Topic]models.Difficulty, weak []models.Topic, cfg Config) []CellRequest {
	counts := map[models.Topic]int{}

	reserved := 0
	if len(weak) > 0 {
		reserved = int(math.Round(cfg.WeakShareFraction * float64(cfg.QuizSize)))
		if reserved > cfg.QuizSize {
			reserved = cfg.QuizSize
		}
		base, rem := reserved/len(weak), reserved%len(weak)
		for i, topic := range weak {
			counts[topic] += base
			if i < rem {
				counts[topic]++
			}
		}
	}

	remaining := cfg.QuizSize - reserved
	base, rem := remaining/len(models.Topics), remaining%len(models.Topics)
	for i, topic := range models.Topics {
		counts[topic] += base
		if i < rem {
			counts[topic]++
		}
	}

	var plan []CellRequest
	for _, topic := range models.Topics {
		if counts[topic] == 0 {
			continue
		}
		difficulty, ok := targets[topic]
		if !ok {
			difficulty = models.DifficultyEasy
		}
		plan = append(plan, CellRequest{Topic: topic, Difficulty: difficulty, Count: counts[topic]})
	}
	return plan
}
