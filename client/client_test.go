package client

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

// backendMock implements backend with overridable funcs.
type backendMock struct {
	ListSetsFunc          func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error)
	GetStatsFunc          func(ctx context.Context) (*domain.LearningStats, error)
	StartSessionFunc      func(ctx context.Context, input learning.StartSessionInput) (*learning.StartSessionResult, error)
	CompleteSessionFunc   func(ctx context.Context, input learning.CompleteSessionInput) (*domain.LearningSession, error)
	RecordAnswerFunc      func(ctx context.Context, input learning.RecordAnswerInput) (*domain.SessionAnswer, error)
	UpdateUserWordFunc    func(ctx context.Context, input learning.UpdateUserWordInput) (*domain.UserWord, error)
	ToggleFavoriteFunc    func(ctx context.Context, input learning.ToggleFavoriteInput) (bool, error)
	UpdateSetProgressFunc func(ctx context.Context, input learning.UpdateSetProgressInput) (*domain.VocabularyProgress, error)
}

func (m *backendMock) ListSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	return m.ListSetsFunc(ctx, filter)
}

func (m *backendMock) GetStats(ctx context.Context) (*domain.LearningStats, error) {
	return m.GetStatsFunc(ctx)
}

func (m *backendMock) StartSession(ctx context.Context, input learning.StartSessionInput) (*learning.StartSessionResult, error) {
	return m.StartSessionFunc(ctx, input)
}

func (m *backendMock) CompleteSession(ctx context.Context, input learning.CompleteSessionInput) (*domain.LearningSession, error) {
	return m.CompleteSessionFunc(ctx, input)
}

func (m *backendMock) RecordAnswer(ctx context.Context, input learning.RecordAnswerInput) (*domain.SessionAnswer, error) {
	return m.RecordAnswerFunc(ctx, input)
}

func (m *backendMock) UpdateUserWord(ctx context.Context, input learning.UpdateUserWordInput) (*domain.UserWord, error) {
	return m.UpdateUserWordFunc(ctx, input)
}

func (m *backendMock) ToggleFavorite(ctx context.Context, input learning.ToggleFavoriteInput) (bool, error) {
	return m.ToggleFavoriteFunc(ctx, input)
}

func (m *backendMock) UpdateSetProgress(ctx context.Context, input learning.UpdateSetProgressInput) (*domain.VocabularyProgress, error) {
	return m.UpdateSetProgressFunc(ctx, input)
}

func TestLoadSets_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			calls.Add(1)
			return []domain.SetWithProgress{{VocabularySet: domain.VocabularySet{ID: uuid.New()}}}, 1, nil
		},
	}

	clock := clockwork.NewFakeClock()
	c := New(api, clock, slog.Default())

	if _, _, err := c.LoadSets(context.Background(), domain.SetFilter{}); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, _, err := c.LoadSets(context.Background(), domain.SetFilter{}); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("backend calls: got %d, want 1 (second load served from cache)", got)
	}

	// Past the TTL the entry is stale and refetched.
	clock.Advance(5 * time.Minute)
	if _, _, err := c.LoadSets(context.Background(), domain.SetFilter{}); err != nil {
		t.Fatalf("third load: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("backend calls after expiry: got %d, want 2", got)
	}
}

func TestLoadSets_DifferentFiltersCacheSeparately(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			calls.Add(1)
			return nil, 0, nil
		},
	}

	c := New(api, clockwork.NewFakeClock(), slog.Default())

	category := "animals"
	if _, _, err := c.LoadSets(context.Background(), domain.SetFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, _, err := c.LoadSets(context.Background(), domain.SetFilter{Category: &category}); err != nil {
		t.Fatalf("filtered load: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("backend calls: got %d, want 2 (distinct cache keys)", got)
	}
}

func TestLoadSets_SupersededReadDiscarded(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			if filter.Search == nil {
				close(firstStarted)
				select {
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				case <-release:
					t.Error("first read should have been cancelled")
					return nil, 0, nil
				}
			}
			return []domain.SetWithProgress{{}}, 1, nil
		},
	}

	c := New(api, clockwork.NewFakeClock(), slog.Default())

	type result struct {
		sets []domain.SetWithProgress
		err  error
	}
	firstDone := make(chan result, 1)
	go func() {
		sets, _, err := c.LoadSets(context.Background(), domain.SetFilter{})
		firstDone <- result{sets: sets, err: err}
	}()

	<-firstStarted

	// The second read cancels the first.
	search := "cat"
	sets, total, err := c.LoadSets(context.Background(), domain.SetFilter{Search: &search})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(sets) != 1 || total != 1 {
		t.Errorf("second load result: %d sets total=%d", len(sets), total)
	}

	got := <-firstDone
	close(release)
	if got.err != nil {
		t.Errorf("superseded read should swallow cancellation, got: %v", got.err)
	}
	if got.sets != nil {
		t.Errorf("superseded read should discard its result, got %d sets", len(got.sets))
	}
}

func TestLoadStats_CacheAndInvalidate(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	api := &backendMock{
		GetStatsFunc: func(ctx context.Context) (*domain.LearningStats, error) {
			calls.Add(1)
			return &domain.LearningStats{CurrentVocabStreak: 3}, nil
		},
	}

	c := New(api, clockwork.NewFakeClock(), slog.Default())

	stats, err := c.LoadStats(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats.CurrentVocabStreak != 3 {
		t.Errorf("stats: %+v", stats)
	}

	if _, err := c.LoadStats(context.Background()); err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("backend calls: got %d, want 1", got)
	}

	c.InvalidateCache()
	if _, err := c.LoadStats(context.Background()); err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("backend calls after invalidate: got %d, want 2", got)
	}
}

func TestLoadSets_ErrorSurfaces(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			return nil, 0, boom
		},
	}

	c := New(api, clockwork.NewFakeClock(), slog.Default())

	_, _, err := c.LoadSets(context.Background(), domain.SetFilter{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to surface, got: %v", err)
	}
}
