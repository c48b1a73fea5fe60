package rest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

// learningService defines the minimal interface needed by LearningHandler.
type learningService interface {
	ListSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error)
	GetSet(ctx context.Context, setID uuid.UUID) (*domain.SetWithProgress, error)
	StartSession(ctx context.Context, input learning.StartSessionInput) (*learning.StartSessionResult, error)
	CompleteSession(ctx context.Context, input learning.CompleteSessionInput) (*domain.LearningSession, error)
	RecordAnswer(ctx context.Context, input learning.RecordAnswerInput) (*domain.SessionAnswer, error)
	UpdateUserWord(ctx context.Context, input learning.UpdateUserWordInput) (*domain.UserWord, error)
	ToggleFavorite(ctx context.Context, input learning.ToggleFavoriteInput) (bool, error)
	UpdateSetProgress(ctx context.Context, input learning.UpdateSetProgressInput) (*domain.VocabularyProgress, error)
	GetStats(ctx context.Context) (*domain.LearningStats, error)
	GetReviewQueue(ctx context.Context, input learning.GetReviewQueueInput) ([]domain.ReviewWord, error)
	GetFavoriteWords(ctx context.Context) ([]domain.WordWithState, error)
}

// LearningHandler serves the vocabulary learning REST endpoints.
type LearningHandler struct {
	svc learningService
	log *slog.Logger
}

// NewLearningHandler creates a LearningHandler.
func NewLearningHandler(svc learningService, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{svc: svc, log: logger.With("handler", "learning")}
}
