package engine

import "fmt"

// Config holds the tunable parameters of the assessment engine. Settings are
// resolved once per request from the settings store, so a hot reload never
// produces a torn read inside a single generate or submit call.
type Config struct {
	// PromoteThreshold is the accuracy at or above which a topic's
	// difficulty rises one level.
	PromoteThreshold float64 `json:"promote_threshold"`
	// DemoteThreshold is the accuracy at or below which it falls one level.
	DemoteThreshold float64 `json:"demote_threshold"`
	// WeakTopicThreshold is the accuracy strictly below which a topic is
	// flagged weak.
	WeakTopicThreshold float64 `json:"weak_topic_threshold"`
	// WeakShareFraction is the fraction of a quiz reserved for weak topics.
	WeakShareFraction float64 `json:"weak_share_fraction"`
	// LookbackQuizzes is the attempt window for difficulty decisions.
	LookbackQuizzes int `json:"lookback_quizzes"`
	// WeakLookback is the shorter attempt window for weak-topic detection.
	WeakLookback int `json:"weak_lookback"`
	// QuizSize is the number of questions per generated quiz.
	QuizSize int `json:"quiz_size"`
}

func DefaultConfig() Config {
	return Config{
		PromoteThreshold:   0.70,
		DemoteThreshold:    0.40,
		WeakTopicThreshold: 0.50,
		WeakShareFraction:  0.30,
		LookbackQuizzes:    6,
		WeakLookback:       3,
		QuizSize:           12,
	}
}

// Validate rejects configurations the engine cannot run under. A promote
// threshold at or below the demote threshold would make a single window
// eligible for both transitions, so it is refused at load time rather than
// tie-broken at decision time.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"promote_threshold", c.PromoteThreshold},
		{"demote_threshold", c.DemoteThreshold},
		{"weak_topic_threshold", c.WeakTopicThreshold},
		{"weak_share_fraction", c.WeakShareFraction},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", f.name, f.value)
		}
	}
	if c.PromoteThreshold <= c.DemoteThreshold {
		return fmt.Errorf("promote_threshold (%g) must be greater than demote_threshold (%g)",
			c.PromoteThreshold, c.DemoteThreshold)
	}
	if c.LookbackQuizzes < 1 {
		return fmt.Errorf("lookback_quizzes must be at least 1, got %d", c.LookbackQuizzes)
	}
	if c.WeakLookback < 1 {
		return fmt.Errorf("weak_lookback must be at least 1, got %d", c.WeakLookback)
	}
	if c.QuizSize < 1 {
		return fmt.Errorf("quiz_size must be at least 1, got %d", c.QuizSize)
	}
	return nil
}
