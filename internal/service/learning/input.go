package learning

import (
	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

// StartSessionInput holds the parameters for starting a session.
type StartSessionInput struct {
	SetID uuid.UUID
	Mode  domain.LearningMode
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be FLASHCARD, QUIZ, SPELLING, LISTENING, or MATCHING"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CompleteSessionInput holds the parameters for completing a session.
type CompleteSessionInput struct {
	SessionID      uuid.UUID
	CorrectAnswers int
}

// Validate checks all fields and collects all errors.
func (i *CompleteSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.CorrectAnswers < 0 {
		errs = append(errs, domain.FieldError{Field: "correct_answers", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordAnswerInput holds the parameters for recording one answered word.
type RecordAnswerInput struct {
	SessionID     uuid.UUID
	WordID        uuid.UUID
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentMs   int
}

// Validate checks all fields and collects all errors.
func (i *RecordAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.TimeSpentMs < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_ms", Message: "must be non-negative"})
	}
	if i.TimeSpentMs > 600_000 {
		errs = append(errs, domain.FieldError{Field: "time_spent_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateUserWordInput holds the parameters for applying one answer outcome
// to a word's learning state.
type UpdateUserWordInput struct {
	WordID    uuid.UUID
	IsCorrect bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateUserWordInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}
	return nil
}

// ToggleFavoriteInput holds the parameters for flipping a word's favorite flag.
type ToggleFavoriteInput struct {
	WordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ToggleFavoriteInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}
	return nil
}

// UpdateSetProgressInput holds the parameters for a standalone progress
// update outside the session completion path.
type UpdateSetProgressInput struct {
	SetID          uuid.UUID
	CorrectAnswers int
	TotalWords     int
	TimeSpentSec   int
}

// Validate checks all fields and collects all errors.
func (i *UpdateSetProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if i.TotalWords <= 0 {
		errs = append(errs, domain.FieldError{Field: "total_words", Message: "must be positive"})
	}
	if i.CorrectAnswers < 0 || (i.TotalWords > 0 && i.CorrectAnswers > i.TotalWords) {
		errs = append(errs, domain.FieldError{Field: "correct_answers", Message: "must be between 0 and total_words"})
	}
	if i.TimeSpentSec < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_sec", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetReviewQueueInput holds the parameters for fetching the review queue.
type GetReviewQueueInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetReviewQueueInput) Validate() error {
	if i.Limit < 0 || i.Limit > 200 {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}
