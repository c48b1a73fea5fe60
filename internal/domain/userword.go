package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserWord is the per-user learning state of a single word.
// Created on first exposure, mutated on every answer, never deleted.
//
// Invariants maintained by the mastery scheduler:
//   - IsLearned == (MasteryLevel >= 80)
//   - TimesCorrect <= TimesSeen
//   - NextReview > LastReviewed whenever both are set
type UserWord struct {
	UserID       uuid.UUID
	WordID       uuid.UUID
	IsFavorite   bool
	IsLearned    bool
	MasteryLevel int
	TimesSeen    int
	TimesCorrect int
	LastReviewed *time.Time
	NextReview   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDueForReview returns true if the word is eligible for re-presentation.
// Words never reviewed are always due.
func (w *UserWord) IsDueForReview(now time.Time) bool {
	if w.NextReview == nil {
		return true
	}
	return !w.NextReview.After(now)
}

// ReviewWord joins a user's word state with the word content for the review queue.
type ReviewWord struct {
	UserWord
	Word VocabularyWord
}
