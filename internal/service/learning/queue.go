package learning

import (
	"context"
	"fmt"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/pkg/ctxutil"
)

// GetReviewQueue returns words due for review right now, most overdue first.
// A zero limit falls back to the configured default.
func (s *Service) GetReviewQueue(ctx context.Context, input GetReviewQueueInput) ([]domain.ReviewWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.ReviewQueueLimit
	}

	queue, err := s.userWords.GetReviewQueue(ctx, userID, s.clock.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("get review queue: %w", err)
	}

	return queue, nil
}

// GetFavoriteWords returns the caller's favorite words with learning state.
func (s *Service) GetFavoriteWords(ctx context.Context) ([]domain.WordWithState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.userWords.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorite words: %w", err)
	}

	return words, nil
}
