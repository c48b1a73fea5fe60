package learning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/pkg/ctxutil"
)

// ListSets returns published sets matching the filter with the caller's
// per-set progress joined in, plus the total match count.
func (s *Service) ListSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	sets, total, err := s.sets.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list sets: %w", err)
	}

	return sets, total, nil
}

// GetSet returns one set with its words joined against the caller's state.
func (s *Service) GetSet(ctx context.Context, setID uuid.UUID) (*domain.SetWithProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	set, err := s.sets.GetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}

	return set, nil
}

// UpdateSetProgress folds session results into a set's progress row outside
// the completion path. Counters accumulate, accuracy is replaced.
func (s *Service) UpdateSetProgress(ctx context.Context, input UpdateSetProgressInput) (*domain.VocabularyProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	accuracy := float64(input.CorrectAnswers) / float64(input.TotalWords) * 100
	minutes := input.TimeSpentSec / 60

	progress, err := s.progress.ApplySession(ctx, userID, input.SetID,
		input.CorrectAnswers, input.TotalWords, accuracy, minutes, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("apply set progress: %w", err)
	}

	return progress, nil
}
