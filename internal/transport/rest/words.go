package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

type updateUserWordRequest struct {
	IsCorrect bool `json:"isCorrect"`
}

type toggleFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

// UpdateUserWord handles PATCH /api/v1/user-words/{wordId}.
func (h *LearningHandler) UpdateUserWord(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("wordId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateUserWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateUserWord(r.Context(), learning.UpdateUserWordInput{
		WordID:    wordID,
		IsCorrect: req.IsCorrect,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserWordResponse(updated))
}

// ToggleFavorite handles POST /api/v1/user-words/{wordId}/favorite.
func (h *LearningHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.PathValue("wordId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	isFavorite, err := h.svc.ToggleFavorite(r.Context(), learning.ToggleFavoriteInput{WordID: wordID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleFavoriteResponse{IsFavorite: isFavorite})
}

// ReviewQueue handles GET /api/v1/review-queue.
// Optional query parameter: limit.
func (h *LearningHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	var input learning.GetReviewQueueInput
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	queue, err := h.svc.GetReviewQueue(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]reviewWordResponse, 0, len(queue))
	for _, rw := range queue {
		resp = append(resp, toReviewWordResponse(rw))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Favorites handles GET /api/v1/favorites.
func (h *LearningHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.GetFavoriteWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]wordStateResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toWordStateResponse(word))
	}
	writeJSON(w, http.StatusOK, resp)
}
