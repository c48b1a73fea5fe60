package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

// FavoriteView is the client-held favorite state for the words on screen.
// Toggles apply optimistically: the local flag flips before the backend
// call and flips back if the call fails.
type FavoriteView struct {
	client *Client

	mu    sync.Mutex
	words map[uuid.UUID]bool
}

// NewFavoriteView creates a view seeded with the given state.
func (c *Client) NewFavoriteView(seed map[uuid.UUID]bool) *FavoriteView {
	words := make(map[uuid.UUID]bool, len(seed))
	for id, fav := range seed {
		words[id] = fav
	}
	return &FavoriteView{client: c, words: words}
}

// IsFavorite returns the local flag for a word.
func (v *FavoriteView) IsFavorite(wordID uuid.UUID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.words[wordID]
}

// Toggle flips the word's favorite flag optimistically and persists the
// change. On failure the local flag is restored to its pre-toggle value
// and the error is returned. The persisted value wins on success.
func (v *FavoriteView) Toggle(ctx context.Context, wordID uuid.UUID) error {
	v.mu.Lock()
	previous := v.words[wordID]
	v.words[wordID] = !previous
	v.mu.Unlock()

	persisted, err := v.client.api.ToggleFavorite(ctx, learning.ToggleFavoriteInput{WordID: wordID})
	if err != nil {
		v.mu.Lock()
		v.words[wordID] = previous
		v.mu.Unlock()
		return fmt.Errorf("toggle favorite: %w", err)
	}

	v.mu.Lock()
	v.words[wordID] = persisted
	v.mu.Unlock()
	return nil
}
