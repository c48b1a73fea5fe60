// Package learning implements the vocabulary learning business logic:
// set listing, session lifecycle, the mastery scheduler, and the progress
// aggregates derived from completed sessions.
package learning

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lexicult/lexicult-backend/internal/config"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

//go:generate moq -out mocks_test.go . setRepo userWordRepo sessionRepo answerRepo progressRepo dailyRepo statsRepo txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type setRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.SetFilter) ([]domain.SetWithProgress, int, error)
	GetByID(ctx context.Context, userID, setID uuid.UUID) (*domain.SetWithProgress, error)
	GetWords(ctx context.Context, setID uuid.UUID) ([]domain.VocabularyWord, error)
}

type userWordRepo interface {
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	Upsert(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	ToggleFavorite(ctx context.Context, userID, wordID uuid.UUID) (bool, error)
	AggregateMastery(ctx context.Context, userID uuid.UUID) (domain.MasteryAggregate, error)
	GetReviewQueue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewWord, error)
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]domain.WordWithState, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)
	Complete(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error)
	MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error)
}

type answerRepo interface {
	Create(ctx context.Context, a *domain.SessionAnswer) (*domain.SessionAnswer, error)
}

type progressRepo interface {
	ApplySession(ctx context.Context, userID, setID uuid.UUID, correctAnswers, totalWords int, accuracy float64, minutes int, studiedAt time.Time) (*domain.VocabularyProgress, error)
}

type dailyRepo interface {
	ApplySession(ctx context.Context, userID uuid.UUID, day time.Time, wordsLearned, seconds int, accuracy float64) (*domain.DailyLearning, error)
	GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyLearning, error)
}

type statsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStats, error)
	Create(ctx context.Context, userID uuid.UUID, weeklyGoal int) (*domain.LearningStats, error)
	ApplySession(ctx context.Context, userID uuid.UUID, newlyLearned int, overallAccuracy float64, minutes, wordsSeen int) (*domain.LearningStats, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the learning business logic.
type Service struct {
	sets      setRepo
	userWords userWordRepo
	sessions  sessionRepo
	answers   answerRepo
	progress  progressRepo
	daily     dailyRepo
	stats     statsRepo
	tx        txManager
	clock     clockwork.Clock
	log       *slog.Logger
	cfg       config.LearningConfig
}

// NewService creates a new learning service.
func NewService(
	log *slog.Logger,
	sets setRepo,
	userWords userWordRepo,
	sessions sessionRepo,
	answers answerRepo,
	progress progressRepo,
	daily dailyRepo,
	stats statsRepo,
	tx txManager,
	clock clockwork.Clock,
	cfg config.LearningConfig,
) *Service {
	return &Service{
		sets:      sets,
		userWords: userWords,
		sessions:  sessions,
		answers:   answers,
		progress:  progress,
		daily:     daily,
		stats:     stats,
		tx:        tx,
		clock:     clock,
		log:       log.With("service", "learning"),
		cfg:       cfg,
	}
}

// rules builds the scheduler constants from config.
func (s *Service) rules() ReviewRules {
	return ReviewRules{
		MasteryGain:         s.cfg.MasteryGain,
		MasteryLoss:         s.cfg.MasteryLoss,
		LearnedThreshold:    s.cfg.LearnedThreshold,
		ReviewIntervalDays:  s.cfg.ReviewIntervalDays,
		LearnedIntervalDays: s.cfg.LearnedIntervalDays,
	}
}
