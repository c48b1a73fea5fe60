// Package client is the orchestration layer over the learning service:
// it caches and cancels reads, debounces search, drives study sessions,
// and applies optimistic updates for low-risk mutations.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

const (
	cacheTTL       = 5 * time.Minute
	cacheSize      = 128
	searchDebounce = 300 * time.Millisecond
)

// backend is the request boundary the orchestration layer drives.
// *learning.Service satisfies it.
type backend interface {
	ListSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error)
	GetStats(ctx context.Context) (*domain.LearningStats, error)
	StartSession(ctx context.Context, input learning.StartSessionInput) (*learning.StartSessionResult, error)
	CompleteSession(ctx context.Context, input learning.CompleteSessionInput) (*domain.LearningSession, error)
	RecordAnswer(ctx context.Context, input learning.RecordAnswerInput) (*domain.SessionAnswer, error)
	UpdateUserWord(ctx context.Context, input learning.UpdateUserWordInput) (*domain.UserWord, error)
	ToggleFavorite(ctx context.Context, input learning.ToggleFavoriteInput) (bool, error)
	UpdateSetProgress(ctx context.Context, input learning.UpdateSetProgressInput) (*domain.VocabularyProgress, error)
}

var _ backend = (*learning.Service)(nil)

// cacheEntry stores a cached read result with its own timestamp so expiry
// follows the injected clock, not the wall clock the LRU uses internally.
type cacheEntry struct {
	value    any
	storedAt time.Time
}

// Client coordinates reads and writes against the learning backend.
// Safe for use from multiple goroutines.
type Client struct {
	api   backend
	clock clockwork.Clock
	log   *slog.Logger

	cache *expirable.LRU[string, cacheEntry]

	mu          sync.Mutex
	cancelRead  context.CancelFunc
	readGen     uint64
	searchTimer clockwork.Timer
}

// New creates a Client over the given backend.
func New(api backend, clock clockwork.Clock, logger *slog.Logger) *Client {
	return &Client{
		api:   api,
		clock: clock,
		log:   logger.With("component", "client"),
		cache: expirable.NewLRU[string, cacheEntry](cacheSize, nil, cacheTTL),
	}
}

// LoadSets fetches vocabulary sets for the current filter. Results are
// cached for five minutes per filter. Issuing a new load cancels any
// in-flight one; the superseded call returns zero values and a nil error.
func (c *Client) LoadSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	sets, total, _, err := c.loadSets(ctx, filter)
	return sets, total, err
}

type setsResult struct {
	sets  []domain.SetWithProgress
	total int
}

// loadSets reports supersession separately so callers can tell a discarded
// read from a genuinely empty one.
func (c *Client) loadSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, bool, error) {
	key := setsCacheKey(filter)
	if entry, ok := c.cacheGet(key); ok {
		cached := entry.(setsResult)
		return cached.sets, cached.total, false, nil
	}

	ctx, done := c.beginPrimaryRead(ctx)
	defer done()

	sets, total, err := c.fetchSets(ctx, filter)
	if errors.Is(err, context.Canceled) {
		return nil, 0, true, nil
	}
	return sets, total, false, err
}

// fetchSets hits the backend directly, bypassing the primary-read slot.
// Used by background refreshes that must not cancel each other.
func (c *Client) fetchSets(ctx context.Context, filter domain.SetFilter) ([]domain.SetWithProgress, int, error) {
	sets, total, err := c.api.ListSets(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	c.cachePut(setsCacheKey(filter), setsResult{sets: sets, total: total})
	return sets, total, nil
}

// LoadStats fetches the user's learning stats, cached for five minutes.
// Superseded calls return a nil result and a nil error.
func (c *Client) LoadStats(ctx context.Context) (*domain.LearningStats, error) {
	const key = "stats"
	if entry, ok := c.cacheGet(key); ok {
		return entry.(*domain.LearningStats), nil
	}

	ctx, done := c.beginPrimaryRead(ctx)
	defer done()

	stats, err := c.fetchStats(ctx)
	if errors.Is(err, context.Canceled) {
		return nil, nil
	}
	return stats, err
}

func (c *Client) fetchStats(ctx context.Context) (*domain.LearningStats, error) {
	stats, err := c.api.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	c.cachePut("stats", stats)
	return stats, nil
}

// InvalidateCache drops every cached read result.
func (c *Client) InvalidateCache() {
	c.cache.Purge()
}

// beginPrimaryRead registers a new primary read, cancelling any prior one.
// The returned done func releases the slot if this read is still the owner.
func (c *Client) beginPrimaryRead(ctx context.Context) (context.Context, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelRead != nil {
		c.cancelRead()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancelRead = cancel
	c.readGen++
	gen := c.readGen

	done := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		cancel()
		// A later read may own the slot already.
		if c.readGen == gen {
			c.cancelRead = nil
		}
	}
	return ctx, done
}

func (c *Client) cacheGet(key string) (any, bool) {
	entry, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(entry.storedAt) >= cacheTTL {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (c *Client) cachePut(key string, value any) {
	c.cache.Add(key, cacheEntry{value: value, storedAt: c.clock.Now()})
}

func setsCacheKey(filter domain.SetFilter) string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return fmt.Sprintf("sets|%s|%s|%s|%s|%s|%d|%d",
		deref(filter.Category), deref(filter.Level), deref(filter.Search),
		filter.SortBy, filter.SortOrder, filter.Limit, filter.Offset)
}
