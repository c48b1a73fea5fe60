package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

// StudySession drives one run through a set's words. A mutex serializes
// answer transitions: two answers for the same session are never in flight
// at once. Per-answer writes are fire-and-forget; the in-memory state
// machine advances regardless of write outcome.
type StudySession struct {
	client *Client

	mu      sync.Mutex
	state   *domain.Session
	pending sync.WaitGroup
}

// StartStudySession creates a persisted session stub and the local state
// machine over the returned word snapshot.
func (c *Client) StartStudySession(ctx context.Context, setID uuid.UUID, mode domain.LearningMode) (*StudySession, error) {
	result, err := c.api.StartSession(ctx, learning.StartSessionInput{SetID: setID, Mode: mode})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	state, err := domain.NewSession(result.Session.ID, setID, mode, result.Words, result.Session.StartedAt)
	if err != nil {
		return nil, err
	}

	return &StudySession{client: c, state: state}, nil
}

// CurrentWord returns the word awaiting an answer.
func (s *StudySession) CurrentWord() (domain.VocabularyWord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentWord()
}

// Progress returns answered and total word counts.
func (s *StudySession) Progress() (answered, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentIndex, s.state.TotalWords()
}

// Answer records the outcome for the current word and advances the state
// machine. The answer record and the word's scheduler update are written in
// the background with best-effort semantics: failures are logged and never
// block the session. Returns ErrSessionCompleted once every word is answered.
func (s *StudySession) Answer(ctx context.Context, userAnswer string, isCorrect bool, timeSpentMs int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.state.CurrentWord()
	if err != nil {
		return err
	}
	if err := s.state.Answer(isCorrect); err != nil {
		return err
	}

	// Writes survive caller cancellation once issued.
	bgCtx := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		if _, err := s.client.api.RecordAnswer(bgCtx, learning.RecordAnswerInput{
			SessionID:     s.state.ID,
			WordID:        word.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: word.Translation,
			IsCorrect:     isCorrect,
			TimeSpentMs:   timeSpentMs,
		}); err != nil {
			s.client.log.WarnContext(bgCtx, "record answer failed",
				slog.String("word_id", word.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		if _, err := s.client.api.UpdateUserWord(bgCtx, learning.UpdateUserWordInput{
			WordID:    word.ID,
			IsCorrect: isCorrect,
		}); err != nil {
			s.client.log.WarnContext(bgCtx, "update user word failed",
				slog.String("word_id", word.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()

	return nil
}

// Completed reports whether every word has been answered.
func (s *StudySession) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Completed()
}

// Complete finalizes the session (failure logged, not surfaced), then
// invalidates the cache and refreshes stats and sets concurrently.
// Waits for outstanding per-answer writes first so the aggregates see them.
// Set progress, daily activity and overall stats are rolled up server-side
// as part of session completion, so no separate progress write happens here.
func (s *StudySession) Complete(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.Completed() {
		s.mu.Unlock()
		return domain.NewValidationError("session", "session still has unanswered words")
	}
	state := s.state
	s.mu.Unlock()

	s.pending.Wait()

	bgCtx := context.WithoutCancel(ctx)

	if _, err := s.client.api.CompleteSession(bgCtx, learning.CompleteSessionInput{
		SessionID:      state.ID,
		CorrectAnswers: state.CorrectAnswers,
	}); err != nil {
		s.client.log.WarnContext(bgCtx, "complete session failed",
			slog.String("session_id", state.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.client.InvalidateCache()

	var refresh errgroup.Group
	refresh.Go(func() error {
		if _, err := s.client.fetchStats(bgCtx); err != nil {
			s.client.log.WarnContext(bgCtx, "stats refresh failed", slog.String("error", err.Error()))
		}
		return nil
	})
	refresh.Go(func() error {
		if _, _, err := s.client.fetchSets(bgCtx, domain.SetFilter{}); err != nil {
			s.client.log.WarnContext(bgCtx, "sets refresh failed", slog.String("error", err.Error()))
		}
		return nil
	})
	refresh.Wait() //nolint:errcheck

	return nil
}
