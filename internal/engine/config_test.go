package engine

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default configuration must validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"promote below demote", func(c *Config) { c.PromoteThreshold = 0.3 }},
		{"promote equals demote", func(c *Config) { c.PromoteThreshold = 0.4 }},
		{"promote above one", func(c *Config) { c.PromoteThreshold = 1.5 }},
		{"negative demote", func(c *Config) { c.DemoteThreshold = -0.1 }},
		{"weak threshold above one", func(c *Config) { c.WeakTopicThreshold = 1.2 }},
		{"negative weak share", func(c *Config) { c.WeakShareFraction = -0.3 }},
		{"zero lookback", func(c *Config) { c.LookbackQuizzes = 0 }},
		{"zero weak lookback", func(c *Config) { c.WeakLookback = 0 }},
		{"zero quiz size", func(c *Config) { c.QuizSize = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
