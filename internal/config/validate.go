package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Learning.validate(); err != nil {
		return fmt.Errorf("learning: %w", err)
	}

	return nil
}

func (l *LearningConfig) validate() error {
	if l.MasteryGain <= 0 {
		return fmt.Errorf("mastery_gain must be > 0 (got %d)", l.MasteryGain)
	}
	if l.MasteryLoss <= 0 {
		return fmt.Errorf("mastery_loss must be > 0 (got %d)", l.MasteryLoss)
	}
	if l.LearnedThreshold <= 0 || l.LearnedThreshold > 100 {
		return fmt.Errorf("learned_threshold must be in (0,100] (got %d)", l.LearnedThreshold)
	}
	if l.ReviewIntervalDays <= 0 {
		return fmt.Errorf("review_interval_days must be > 0 (got %d)", l.ReviewIntervalDays)
	}
	if l.LearnedIntervalDays < l.ReviewIntervalDays {
		return fmt.Errorf("learned_interval_days must be >= review_interval_days (got %d < %d)",
			l.LearnedIntervalDays, l.ReviewIntervalDays)
	}
	if l.ReviewQueueLimit <= 0 {
		return fmt.Errorf("review_queue_limit must be > 0 (got %d)", l.ReviewQueueLimit)
	}
	if l.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", l.SessionTTL)
	}
	if l.StreakLookbackDays <= 0 {
		return fmt.Errorf("streak_lookback_days must be > 0 (got %d)", l.StreakLookbackDays)
	}
	return nil
}
