package engine

import "assessment-service/internal/models"

// NextDifficulty decides the level to serve for a topic on the next quiz,
// derived entirely from the attempt window (newest first). There is no
// persisted "current difficulty": the history log stays the single source of
// truth and this function is recomputed whenever a quiz is built.
//
// Accuracy is computed over the topic's outcomes in the window. At or above
// the promote threshold the level steps up from the most recently observed
// one; at or below the demote threshold it steps down. Promotion is checked
// first, so a window that somehow satisfies both resolves toward promotion.
// A topic with no outcomes in the window is a cold start and gets easy.
func NextDifficulty(attempts []models.AttemptRecord, topic models.Topic, cfg Config) models.Difficulty {
	window := attempts
	if len(window) > cfg.LookbackQuizzes {
		window = window[:cfg.LookbackQuizzes]
	}

	correct, total := 0, 0
	for _, attempt := range window {
		for _, outcome := range attempt.Outcomes {
			if outcome.Topic != topic {
				continue
			}
			total++
			if outcome.Correct {
				correct++
			}
		}
	}
	if total == 0 {
		return models.DifficultyEasy
	}

	current := latestObservedDifficulty(window, topic)
	accuracy := float64(correct) / float64(total)

	switch {
	case accuracy >= cfg.PromoteThreshold:
		return current.Harder()
	case accuracy <= cfg.DemoteThreshold:
		return current.Easier()
	default:
		return current
	}
}

// latestObservedDifficulty returns the level the topic was mostly served at
// in the newest attempt containing it. Within one attempt questions carry no
// ordering of recency, so the modal difficulty is used, with ties resolved
// toward the harder level to keep the decision deterministic.
func latestObservedDifficulty(attempts []models.AttemptRecord, topic models.Topic) models.Difficulty {
	for _, attempt := range attempts {
		counts := map[models.Difficulty]int{}
		for _, outcome := range attempt.Outcomes {
			if outcome.Topic == topic {
				counts[outcome.Difficulty]++
			}
		}
		if len(counts) == 0 {
			continue
		}
		best := models.DifficultyEasy
		bestCount := 0
		for _, d := range models.Difficulties {
			if counts[d] >= bestCount && counts[d] > 0 {
				best, bestCount = d, counts[d]
			}
		}
		return best
	}
	return models.DifficultyEasy
}
