package client

import (
	"context"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

// SearchResult carries one debounced search outcome.
type SearchResult struct {
	Sets  []domain.SetWithProgress
	Total int
	Err   error
}

// SearchSets schedules a set search for the given text, coalescing rapid
// successive calls: only the last call within the debounce window fires.
// The outcome is delivered through deliver on a separate goroutine;
// superseded and cancelled searches never deliver anything.
func (c *Client) SearchSets(ctx context.Context, query string, filter domain.SetFilter, deliver func(SearchResult)) {
	filter.Search = &query

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	c.searchTimer = c.clock.AfterFunc(searchDebounce, func() {
		sets, total, superseded, err := c.loadSets(ctx, filter)
		if superseded || ctx.Err() != nil {
			return
		}
		deliver(SearchResult{Sets: sets, Total: total, Err: err})
	})
}
