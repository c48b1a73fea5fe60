package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/pkg/ctxutil"
)

// RecordAnswer appends one answered word to the session's audit trail.
// The session must belong to the caller and still be ACTIVE.
func (s *Service) RecordAnswer(ctx context.Context, input RecordAnswerInput) (*domain.SessionAnswer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	switch session.Status {
	case domain.SessionStatusCompleted:
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionCompleted)
	case domain.SessionStatusAbandoned:
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionExpired)
	}

	answer := &domain.SessionAnswer{
		ID:            uuid.New(),
		SessionID:     input.SessionID,
		WordID:        input.WordID,
		UserAnswer:    input.UserAnswer,
		CorrectAnswer: input.CorrectAnswer,
		IsCorrect:     input.IsCorrect,
		TimeSpentMs:   input.TimeSpentMs,
	}

	created, err := s.answers.Create(ctx, answer)
	if err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	return created, nil
}

// UpdateUserWord folds one answer outcome into the word's learning state via
// the pure scheduler and persists the result. A word the user has never
// touched starts from zero state.
func (s *Service) UpdateUserWord(ctx context.Context, input UpdateUserWordInput) (*domain.UserWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state WordState
	existing, err := s.userWords.Get(ctx, userID, input.WordID)
	switch {
	case err == nil:
		state = WordState{
			MasteryLevel: existing.MasteryLevel,
			TimesSeen:    existing.TimesSeen,
			TimesCorrect: existing.TimesCorrect,
			IsLearned:    existing.IsLearned,
			LastReviewed: existing.LastReviewed,
			NextReview:   existing.NextReview,
		}
	case errors.Is(err, domain.ErrNotFound):
		// First exposure: zero state.
	default:
		return nil, fmt.Errorf("get user word: %w", err)
	}

	next := ApplyOutcome(state, input.IsCorrect, s.clock.Now(), s.rules())

	updated, err := s.userWords.Upsert(ctx, &domain.UserWord{
		UserID:       userID,
		WordID:       input.WordID,
		IsLearned:    next.IsLearned,
		MasteryLevel: next.MasteryLevel,
		TimesSeen:    next.TimesSeen,
		TimesCorrect: next.TimesCorrect,
		LastReviewed: next.LastReviewed,
		NextReview:   next.NextReview,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user word: %w", err)
	}

	s.log.DebugContext(ctx, "user word updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.Int("mastery_level", updated.MasteryLevel),
		slog.Bool("is_learned", updated.IsLearned),
	)

	return updated, nil
}

// ToggleFavorite flips the favorite flag on a word, creating the state row
// on first touch. Returns the new flag value.
func (s *Service) ToggleFavorite(ctx context.Context, input ToggleFavoriteInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	isFavorite, err := s.userWords.ToggleFavorite(ctx, userID, input.WordID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	return isFavorite, nil
}
