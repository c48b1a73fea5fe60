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

// StartSessionResult carries the persisted session stub together with the
// word snapshot the caller drives its state machine over.
type StartSessionResult struct {
	Session *domain.LearningSession
	Words   []domain.VocabularyWord
}

// StartSession creates an ACTIVE session over a snapshot of the set's words.
// Returns a ValidationError if the set has no words.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*StartSessionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.sets.GetWords(ctx, input.SetID)
	if err != nil {
		return nil, fmt.Errorf("get set words: %w", err)
	}
	if len(words) == 0 {
		return nil, domain.NewValidationError("set_id", "set has no words")
	}

	session := &domain.LearningSession{
		ID:         uuid.New(),
		UserID:     userID,
		SetID:      input.SetID,
		Mode:       input.Mode,
		Status:     domain.SessionStatusActive,
		TotalWords: len(words),
		StartedAt:  s.clock.Now(),
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("set_id", input.SetID.String()),
		slog.Int("total_words", created.TotalWords),
	)

	return &StartSessionResult{Session: created, Words: words}, nil
}

// CompleteSession finalizes an ACTIVE session and folds its outcome into the
// set progress, the day's activity, and the user's stats. The session row and
// all three aggregates commit in one transaction, so a failure leaves every
// aggregate untouched.
//
// Sessions older than the configured TTL are treated as abandoned and
// rejected with ErrSessionExpired; a completed session returns
// ErrSessionCompleted.
func (s *Service) CompleteSession(ctx context.Context, input CompleteSessionInput) (*domain.LearningSession, error) {
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

	now := s.clock.Now()
	if now.Sub(session.StartedAt) > s.cfg.SessionTTL {
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionExpired)
	}

	if input.CorrectAnswers > session.TotalWords {
		return nil, domain.NewValidationError("correct_answers", "exceeds session word count")
	}

	seconds := int(now.Sub(session.StartedAt).Seconds())
	accuracy := float64(input.CorrectAnswers) / float64(session.TotalWords) * 100
	minutes := seconds / 60

	var completed *domain.LearningSession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session.CorrectAnswers = input.CorrectAnswers
		session.CompletedWords = input.CorrectAnswers
		session.AccuracyRate = accuracy
		session.TimeSpentSeconds = seconds
		session.CompletedAt = &now

		finalized, err := s.sessions.Complete(txCtx, session)
		if err != nil {
			return fmt.Errorf("finalize session: %w", err)
		}
		completed = finalized

		if _, err := s.progress.ApplySession(txCtx, userID, session.SetID,
			input.CorrectAnswers, session.TotalWords, accuracy, minutes, now); err != nil {
			return fmt.Errorf("apply set progress: %w", err)
		}

		if _, err := s.daily.ApplySession(txCtx, userID, now,
			input.CorrectAnswers, seconds, accuracy); err != nil {
			return fmt.Errorf("apply daily learning: %w", err)
		}

		if err := s.applyStats(txCtx, userID, accuracy, minutes, session.TotalWords); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session completed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", completed.ID.String()),
		slog.Int("correct_answers", completed.CorrectAnswers),
		slog.Float64("accuracy", completed.AccuracyRate),
	)

	return completed, nil
}

// applyStats folds a completed session into the stats row, creating it first
// if the user has none. The learned-word delta comes from the live mastery
// aggregate so vocabulary_learned stays equal to the true learned count.
func (s *Service) applyStats(ctx context.Context, userID uuid.UUID, accuracy float64, minutes, wordsSeen int) error {
	stats, err := s.stats.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		stats, err = s.stats.Create(ctx, userID, s.cfg.WeeklyGoalDefault)
	}
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	agg, err := s.userWords.AggregateMastery(ctx, userID)
	if err != nil {
		return fmt.Errorf("aggregate mastery: %w", err)
	}

	newlyLearned := agg.LearnedCount - stats.VocabularyLearned
	if newlyLearned < 0 {
		newlyLearned = 0
	}

	if _, err := s.stats.ApplySession(ctx, userID, newlyLearned, accuracy, minutes, wordsSeen); err != nil {
		return fmt.Errorf("apply stats: %w", err)
	}

	return nil
}

// SweepAbandonedSessions marks every ACTIVE session older than the session
// TTL as ABANDONED. Their partial answers stay recorded but are never
// aggregated. Returns the number of sessions swept.
func (s *Service) SweepAbandonedSessions(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.cfg.SessionTTL)

	swept, err := s.sessions.MarkAbandoned(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark abandoned: %w", err)
	}

	if swept > 0 {
		s.log.InfoContext(ctx, "abandoned sessions swept", slog.Int("count", swept))
	}

	return swept, nil
}
