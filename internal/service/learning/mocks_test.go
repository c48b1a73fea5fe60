package learning

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

var _ setRepo = &setRepoMock{}

type setRepoMock struct {
	ListFunc     func(ctx context.Context, userID uuid.UUID, filter domain.SetFilter) ([]domain.SetWithProgress, int, error)
	GetByIDFunc  func(ctx context.Context, userID, setID uuid.UUID) (*domain.SetWithProgress, error)
	GetWordsFunc func(ctx context.Context, setID uuid.UUID) ([]domain.VocabularyWord, error)

	calls struct {
		List     []struct{ UserID uuid.UUID }
		GetByID  []struct{ UserID, SetID uuid.UUID }
		GetWords []struct{ SetID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *setRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	if mock.ListFunc == nil {
		panic("setRepoMock.ListFunc: method is nil but setRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *setRepoMock) GetByID(ctx context.Context, userID, setID uuid.UUID) (*domain.SetWithProgress, error) {
	if mock.GetByIDFunc == nil {
		panic("setRepoMock.GetByIDFunc: method is nil but setRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ UserID, SetID uuid.UUID }{userID, setID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, setID)
}

func (mock *setRepoMock) GetWords(ctx context.Context, setID uuid.UUID) ([]domain.VocabularyWord, error) {
	if mock.GetWordsFunc == nil {
		panic("setRepoMock.GetWordsFunc: method is nil but setRepo.GetWords was just called")
	}
	mock.lock.Lock()
	mock.calls.GetWords = append(mock.calls.GetWords, struct{ SetID uuid.UUID }{setID})
	mock.lock.Unlock()
	return mock.GetWordsFunc(ctx, setID)
}

func (mock *setRepoMock) GetWordsCalls() []struct{ SetID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetWords
}

var _ userWordRepo = &userWordRepoMock{}

type userWordRepoMock struct {
	GetFunc              func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	UpsertFunc           func(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	ToggleFavoriteFunc   func(ctx context.Context, userID, wordID uuid.UUID) (bool, error)
	AggregateMasteryFunc func(ctx context.Context, userID uuid.UUID) (domain.MasteryAggregate, error)
	GetReviewQueueFunc   func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewWord, error)
	GetFavoritesFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.WordWithState, error)

	calls struct {
		Get            []struct{ UserID, WordID uuid.UUID }
		Upsert         []struct{ UserWord *domain.UserWord }
		ToggleFavorite []struct{ UserID, WordID uuid.UUID }
		GetReviewQueue []struct {
			Now   time.Time
			Limit int
		}
	}
	lock sync.RWMutex
}

func (mock *userWordRepoMock) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	if mock.GetFunc == nil {
		panic("userWordRepoMock.GetFunc: method is nil but userWordRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ UserID, WordID uuid.UUID }{userID, wordID})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID, wordID)
}

func (mock *userWordRepoMock) Upsert(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	if mock.UpsertFunc == nil {
		panic("userWordRepoMock.UpsertFunc: method is nil but userWordRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ UserWord *domain.UserWord }{uw})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, uw)
}

func (mock *userWordRepoMock) UpsertCalls() []struct{ UserWord *domain.UserWord } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

func (mock *userWordRepoMock) ToggleFavorite(ctx context.Context, userID, wordID uuid.UUID) (bool, error) {
	if mock.ToggleFavoriteFunc == nil {
		panic("userWordRepoMock.ToggleFavoriteFunc: method is nil but userWordRepo.ToggleFavorite was just called")
	}
	mock.lock.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, struct{ UserID, WordID uuid.UUID }{userID, wordID})
	mock.lock.Unlock()
	return mock.ToggleFavoriteFunc(ctx, userID, wordID)
}

func (mock *userWordRepoMock) AggregateMastery(ctx context.Context, userID uuid.UUID) (domain.MasteryAggregate, error) {
	if mock.AggregateMasteryFunc == nil {
		panic("userWordRepoMock.AggregateMasteryFunc: method is nil but userWordRepo.AggregateMastery was just called")
	}
	return mock.AggregateMasteryFunc(ctx, userID)
}

func (mock *userWordRepoMock) GetReviewQueue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewWord, error) {
	if mock.GetReviewQueueFunc == nil {
		panic("userWordRepoMock.GetReviewQueueFunc: method is nil but userWordRepo.GetReviewQueue was just called")
	}
	mock.lock.Lock()
	mock.calls.GetReviewQueue = append(mock.calls.GetReviewQueue, struct {
		Now   time.Time
		Limit int
	}{now, limit})
	mock.lock.Unlock()
	return mock.GetReviewQueueFunc(ctx, userID, now, limit)
}

func (mock *userWordRepoMock) GetReviewQueueCalls() []struct {
	Now   time.Time
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetReviewQueue
}

func (mock *userWordRepoMock) GetFavorites(ctx context.Context, userID uuid.UUID) ([]domain.WordWithState, error) {
	if mock.GetFavoritesFunc == nil {
		panic("userWordRepoMock.GetFavoritesFunc: method is nil but userWordRepo.GetFavorites was just called")
	}
	return mock.GetFavoritesFunc(ctx, userID)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error)
	GetByIDFunc       func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)
	CompleteFunc      func(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error)
	MarkAbandonedFunc func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		Create        []struct{ Session *domain.LearningSession }
		Complete      []struct{ Session *domain.LearningSession }
		MarkAbandoned []struct{ Cutoff time.Time }
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Session *domain.LearningSession }{s})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ Session *domain.LearningSession } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) Complete(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error) {
	if mock.CompleteFunc == nil {
		panic("sessionRepoMock.CompleteFunc: method is nil but sessionRepo.Complete was just called")
	}
	mock.lock.Lock()
	mock.calls.Complete = append(mock.calls.Complete, struct{ Session *domain.LearningSession }{s})
	mock.lock.Unlock()
	return mock.CompleteFunc(ctx, s)
}

func (mock *sessionRepoMock) CompleteCalls() []struct{ Session *domain.LearningSession } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Complete
}

func (mock *sessionRepoMock) MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.MarkAbandonedFunc == nil {
		panic("sessionRepoMock.MarkAbandonedFunc: method is nil but sessionRepo.MarkAbandoned was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkAbandoned = append(mock.calls.MarkAbandoned, struct{ Cutoff time.Time }{cutoff})
	mock.lock.Unlock()
	return mock.MarkAbandonedFunc(ctx, cutoff)
}

func (mock *sessionRepoMock) MarkAbandonedCalls() []struct{ Cutoff time.Time } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkAbandoned
}

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	CreateFunc func(ctx context.Context, a *domain.SessionAnswer) (*domain.SessionAnswer, error)

	calls struct {
		Create []struct{ Answer *domain.SessionAnswer }
	}
	lock sync.RWMutex
}

func (mock *answerRepoMock) Create(ctx context.Context, a *domain.SessionAnswer) (*domain.SessionAnswer, error) {
	if mock.CreateFunc == nil {
		panic("answerRepoMock.CreateFunc: method is nil but answerRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Answer *domain.SessionAnswer }{a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *answerRepoMock) CreateCalls() []struct{ Answer *domain.SessionAnswer } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ApplySessionFunc func(ctx context.Context, userID, setID uuid.UUID, correctAnswers, totalWords int, accuracy float64, minutes int, studiedAt time.Time) (*domain.VocabularyProgress, error)

	calls struct {
		ApplySession []struct {
			CorrectAnswers int
			TotalWords     int
			Accuracy       float64
			Minutes        int
		}
	}
	lock sync.RWMutex
}

func (mock *progressRepoMock) ApplySession(ctx context.Context, userID, setID uuid.UUID, correctAnswers, totalWords int, accuracy float64, minutes int, studiedAt time.Time) (*domain.VocabularyProgress, error) {
	if mock.ApplySessionFunc == nil {
		panic("progressRepoMock.ApplySessionFunc: method is nil but progressRepo.ApplySession was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplySession = append(mock.calls.ApplySession, struct {
		CorrectAnswers int
		TotalWords     int
		Accuracy       float64
		Minutes        int
	}{correctAnswers, totalWords, accuracy, minutes})
	mock.lock.Unlock()
	return mock.ApplySessionFunc(ctx, userID, setID, correctAnswers, totalWords, accuracy, minutes, studiedAt)
}

func (mock *progressRepoMock) ApplySessionCalls() []struct {
	CorrectAnswers int
	TotalWords     int
	Accuracy       float64
	Minutes        int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplySession
}

var _ dailyRepo = &dailyRepoMock{}

type dailyRepoMock struct {
	ApplySessionFunc func(ctx context.Context, userID uuid.UUID, day time.Time, wordsLearned, seconds int, accuracy float64) (*domain.DailyLearning, error)
	GetRecentFunc    func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyLearning, error)

	calls struct {
		ApplySession []struct {
			Day          time.Time
			WordsLearned int
			Seconds      int
			Accuracy     float64
		}
	}
	lock sync.RWMutex
}

func (mock *dailyRepoMock) ApplySession(ctx context.Context, userID uuid.UUID, day time.Time, wordsLearned, seconds int, accuracy float64) (*domain.DailyLearning, error) {
	if mock.ApplySessionFunc == nil {
		panic("dailyRepoMock.ApplySessionFunc: method is nil but dailyRepo.ApplySession was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplySession = append(mock.calls.ApplySession, struct {
		Day          time.Time
		WordsLearned int
		Seconds      int
		Accuracy     float64
	}{day, wordsLearned, seconds, accuracy})
	mock.lock.Unlock()
	return mock.ApplySessionFunc(ctx, userID, day, wordsLearned, seconds, accuracy)
}

func (mock *dailyRepoMock) ApplySessionCalls() []struct {
	Day          time.Time
	WordsLearned int
	Seconds      int
	Accuracy     float64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplySession
}

func (mock *dailyRepoMock) GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyLearning, error) {
	if mock.GetRecentFunc == nil {
		panic("dailyRepoMock.GetRecentFunc: method is nil but dailyRepo.GetRecent was just called")
	}
	return mock.GetRecentFunc(ctx, userID, limit)
}

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	GetFunc          func(ctx context.Context, userID uuid.UUID) (*domain.LearningStats, error)
	CreateFunc       func(ctx context.Context, userID uuid.UUID, weeklyGoal int) (*domain.LearningStats, error)
	ApplySessionFunc func(ctx context.Context, userID uuid.UUID, newlyLearned int, overallAccuracy float64, minutes, wordsSeen int) (*domain.LearningStats, error)

	calls struct {
		Create       []struct{ WeeklyGoal int }
		ApplySession []struct {
			NewlyLearned    int
			OverallAccuracy float64
			Minutes         int
			WordsSeen       int
		}
	}
	lock sync.RWMutex
}

func (mock *statsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStats, error) {
	if mock.GetFunc == nil {
		panic("statsRepoMock.GetFunc: method is nil but statsRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID)
}

func (mock *statsRepoMock) Create(ctx context.Context, userID uuid.UUID, weeklyGoal int) (*domain.LearningStats, error) {
	if mock.CreateFunc == nil {
		panic("statsRepoMock.CreateFunc: method is nil but statsRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ WeeklyGoal int }{weeklyGoal})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, weeklyGoal)
}

func (mock *statsRepoMock) CreateCalls() []struct{ WeeklyGoal int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *statsRepoMock) ApplySession(ctx context.Context, userID uuid.UUID, newlyLearned int, overallAccuracy float64, minutes, wordsSeen int) (*domain.LearningStats, error) {
	if mock.ApplySessionFunc == nil {
		panic("statsRepoMock.ApplySessionFunc: method is nil but statsRepo.ApplySession was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplySession = append(mock.calls.ApplySession, struct {
		NewlyLearned    int
		OverallAccuracy float64
		Minutes         int
		WordsSeen       int
	}{newlyLearned, overallAccuracy, minutes, wordsSeen})
	mock.lock.Unlock()
	return mock.ApplySessionFunc(ctx, userID, newlyLearned, overallAccuracy, minutes, wordsSeen)
}

func (mock *statsRepoMock) ApplySessionCalls() []struct {
	NewlyLearned    int
	OverallAccuracy float64
	Minutes         int
	WordsSeen       int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplySession
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
