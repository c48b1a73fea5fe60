package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testWords(n int) []VocabularyWord {
	words := make([]VocabularyWord, n)
	for i := range words {
		words[i] = VocabularyWord{
			ID:          uuid.New(),
			Word:        "kata",
			Translation: "word",
			Position:    i,
		}
	}
	return words
}

func TestNewSession_EmptyWordList(t *testing.T) {
	t.Parallel()

	_, err := NewSession(uuid.New(), uuid.New(), LearningModeFlashcard, nil, time.Now())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestNewSession_InvalidMode(t *testing.T) {
	t.Parallel()

	_, err := NewSession(uuid.New(), uuid.New(), LearningMode("KARAOKE"), testWords(1), time.Now())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestNewSession_SnapshotsWords(t *testing.T) {
	t.Parallel()

	words := testWords(2)
	s, err := NewSession(uuid.New(), uuid.New(), LearningModeQuiz, words, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's slice must not leak into the session.
	words[0].Translation = "changed"

	current, err := s.CurrentWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Translation != "word" {
		t.Errorf("snapshot leaked: got %q", current.Translation)
	}
}

func TestSession_CompletesAfterExactlyNAnswers(t *testing.T) {
	t.Parallel()

	const n = 3
	s, err := NewSession(uuid.New(), uuid.New(), LearningModeFlashcard, testWords(n), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < n; i++ {
		if s.Completed() {
			t.Fatalf("completed after %d answers, want %d", i, n)
		}
		if err := s.Answer(true); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if !s.Completed() {
		t.Fatal("not completed after N answers")
	}

	// The N+1th answer must fail without mutating state.
	if err := s.Answer(true); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("want ErrSessionCompleted, got %v", err)
	}
	if s.CorrectAnswers != n {
		t.Errorf("correct answers mutated after completion: got %d, want %d", s.CorrectAnswers, n)
	}
}

func TestSession_AccuracyAndCorrectCount(t *testing.T) {
	t.Parallel()

	s, err := NewSession(uuid.New(), uuid.New(), LearningModeQuiz, testWords(3), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, correct := range []bool{true, false, true} {
		if err := s.Answer(correct); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}

	if s.CorrectAnswers != 2 {
		t.Errorf("correct answers: got %d, want 2", s.CorrectAnswers)
	}
	if got := s.AccuracyRate(); got < 66.6 || got > 66.7 {
		t.Errorf("accuracy rate: got %v, want ~66.67", got)
	}
}

func TestSession_CurrentWordAdvancesInOrder(t *testing.T) {
	t.Parallel()

	words := testWords(2)
	s, err := NewSession(uuid.New(), uuid.New(), LearningModeSpelling, words, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := s.CurrentWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != words[0].ID {
		t.Error("first word mismatch")
	}

	if err := s.Answer(false); err != nil {
		t.Fatalf("answer: %v", err)
	}

	second, err := s.CurrentWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != words[1].ID {
		t.Error("second word mismatch")
	}

	if err := s.Answer(true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	if _, err := s.CurrentWord(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("want ErrSessionCompleted, got %v", err)
	}
}
