package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/pkg/ctxutil"
)

// GetStats returns the caller's learning stats, creating a zeroed row on
// first read. The derived fields are recomputed from live data on every
// read: the streak from the daily activity scan, the mastery score and
// learned count from the mastery aggregate.
func (s *Service) GetStats(ctx context.Context) (*domain.LearningStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.stats.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		stats, err = s.stats.Create(ctx, userID, s.cfg.WeeklyGoalDefault)
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	days, err := s.daily.GetRecent(ctx, userID, s.cfg.StreakLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("get daily learning: %w", err)
	}

	agg, err := s.userWords.AggregateMastery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate mastery: %w", err)
	}

	stats.CurrentVocabStreak = calculateStreak(days, s.clock.Now())
	stats.MasteryScore = agg.Score()
	stats.VocabularyLearned = agg.LearnedCount
	stats.WordsSeen = agg.WordCount

	s.log.DebugContext(ctx, "stats loaded",
		slog.String("user_id", userID.String()),
		slog.Int("streak", stats.CurrentVocabStreak),
		slog.Int("mastery_score", stats.MasteryScore),
	)

	return stats, nil
}

// calculateStreak counts consecutive days with at least one learned word,
// walking backwards from today. days must be sorted DESC by date.
// No qualifying row for today means streak 0; a day with activity but zero
// learned words breaks the run the same way a missing day does.
func calculateStreak(days []domain.DailyLearning, today time.Time) int {
	sameDay := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}

	expected := today
	streak := 0
	for _, d := range days {
		if !sameDay(d.Date, expected) || d.WordsLearned <= 0 {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}
