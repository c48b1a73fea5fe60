package client

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

func TestSearchSets_DebounceCoalesces(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var lastQuery atomic.Value

	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			calls.Add(1)
			lastQuery.Store(*filter.Search)
			return []domain.SetWithProgress{{}}, 1, nil
		},
	}

	clock := clockwork.NewFakeClock()
	c := New(api, clock, slog.Default())

	delivered := make(chan SearchResult, 3)
	deliver := func(r SearchResult) { delivered <- r }

	// Three keystrokes in quick succession: only the last one fires.
	c.SearchSets(context.Background(), "c", domain.SetFilter{}, deliver)
	clock.Advance(100 * time.Millisecond)
	c.SearchSets(context.Background(), "ca", domain.SetFilter{}, deliver)
	clock.Advance(100 * time.Millisecond)
	c.SearchSets(context.Background(), "cat", domain.SetFilter{}, deliver)

	clock.Advance(300 * time.Millisecond)

	select {
	case result := <-delivered:
		if result.Err != nil {
			t.Fatalf("search error: %v", result.Err)
		}
		if result.Total != 1 {
			t.Errorf("total: got %d, want 1", result.Total)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never delivered")
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("backend calls: got %d, want 1 (earlier keystrokes coalesced)", got)
	}
	if got := lastQuery.Load(); got != "cat" {
		t.Errorf("query: got %v, want %q", got, "cat")
	}

	select {
	case extra := <-delivered:
		t.Errorf("unexpected extra delivery: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSearchSets_CancelledContextNeverDelivers(t *testing.T) {
	t.Parallel()

	api := &backendMock{
		ListSetsFunc: func(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
			return nil, 0, ctx.Err()
		},
	}

	clock := clockwork.NewFakeClock()
	c := New(api, clock, slog.Default())

	delivered := make(chan SearchResult, 1)
	ctx, cancel := context.WithCancel(context.Background())
	c.SearchSets(ctx, "cat", domain.SetFilter{}, func(r SearchResult) { delivered <- r })
	cancel()

	clock.Advance(300 * time.Millisecond)

	select {
	case result := <-delivered:
		t.Errorf("cancelled search should not deliver, got: %+v", result)
	case <-time.After(100 * time.Millisecond):
	}
}
