package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the in-memory state machine for one run through a word list.
// It is a pure value: transitions perform no I/O and are deterministic, so
// they can be tested without any persistence in place. The word list is
// snapshotted at start; later content changes to the set do not affect an
// in-progress session.
type Session struct {
	ID             uuid.UUID
	SetID          uuid.UUID
	Mode           LearningMode
	Words          []VocabularyWord
	CurrentIndex   int
	CorrectAnswers int
	StartedAt      time.Time
}

// NewSession starts a session over a snapshot of words.
// Returns a ValidationError if the word list is empty.
func NewSession(id, setID uuid.UUID, mode LearningMode, words []VocabularyWord, now time.Time) (*Session, error) {
	if len(words) == 0 {
		return nil, NewValidationError("words", "word list must not be empty")
	}
	if !mode.IsValid() {
		return nil, NewValidationError("mode", "unknown learning mode")
	}

	snapshot := make([]VocabularyWord, len(words))
	copy(snapshot, words)

	return &Session{
		ID:        id,
		SetID:     setID,
		Mode:      mode,
		Words:     snapshot,
		StartedAt: now,
	}, nil
}

// TotalWords returns the number of words in the session snapshot.
func (s *Session) TotalWords() int { return len(s.Words) }

// Completed reports whether every word has been answered.
func (s *Session) Completed() bool { return s.CurrentIndex >= len(s.Words) }

// CurrentWord returns the word awaiting an answer.
// Returns ErrSessionCompleted once the session has finished.
func (s *Session) CurrentWord() (VocabularyWord, error) {
	if s.Completed() {
		return VocabularyWord{}, ErrSessionCompleted
	}
	return s.Words[s.CurrentIndex], nil
}

// Answer records the outcome for the current word and advances the index.
// Exactly one call per word: the Nth call on an N-word session completes it,
// and any further call returns ErrSessionCompleted without mutating state.
func (s *Session) Answer(isCorrect bool) error {
	if s.Completed() {
		return ErrSessionCompleted
	}
	if isCorrect {
		s.CorrectAnswers++
	}
	s.CurrentIndex++
	return nil
}

// AccuracyRate returns the percentage of correct answers over the full
// session length. Meaningful at completion; partial sessions report the
// rate against TotalWords, matching the aggregation rule.
func (s *Session) AccuracyRate() float64 {
	if len(s.Words) == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(len(s.Words)) * 100
}

// LearningSession is the persisted record of a session.
// A stub row is created when the session starts and finalized exactly once
// on completion.
type LearningSession struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SetID            uuid.UUID
	Mode             LearningMode
	Status           SessionStatus
	TotalWords       int
	CorrectAnswers   int
	CompletedWords   int
	AccuracyRate     float64
	TimeSpentSeconds int
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
}

// SessionAnswer is the append-only audit record of a single answered word.
// Immutable after creation.
type SessionAnswer struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	WordID        uuid.UUID
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentMs   int
	CreatedAt     time.Time
}
