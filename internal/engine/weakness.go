package engine

import "assessment-service/internal/models"

// WeakTopics returns the topics whose accuracy over the short lookback
// window falls strictly below the weak-topic threshold, in enumeration
// order. Topics with no outcomes in the window are never flagged: without
// evidence a topic cannot be judged weak, which keeps untouched topics from
// showing up as false positives.
func WeakTopics(attempts []models.AttemptRecord, cfg Config) []models.Topic {
	window := attempts
	if len(window) > cfg.WeakLookback {
		window = window[:cfg.WeakLookback]
	}

	type tally struct{ correct, total int }
	perTopic := map[models.Topic]*tally{}
	for _, attempt := range window {
		for _, outcome := range attempt.Outcomes {
			t := perTopic[outcome.Topic]
			if t == nil {
				t = &tally{}
				perTopic[outcome.Topic] = t
			}
			t.total++
			if outcome.Correct {
				t.correct++
			}
		}
	}

	var weak []models.Topic
	for _, topic := range models.Topics {
		t := perTopic[topic]
		if t == nil || t.total == 0 {
			continue
		}
		if float64(t.correct)/float64(t.total) < cfg.WeakTopicThreshold {
			weak = append(weak, topic)
		}
	}
	return weak
}
