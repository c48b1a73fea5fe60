package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

type updateProgressRequest struct {
	SetID          string `json:"setId"`
	CorrectAnswers int    `json:"correctAnswers"`
	TotalWords     int    `json:"totalWords"`
	TimeSpentSec   int    `json:"timeSpentSec"`
}

// UpdateProgress handles PATCH /api/v1/vocabulary-progress.
func (h *LearningHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	setID, _ := uuid.Parse(req.SetID)
	progress, err := h.svc.UpdateSetProgress(r.Context(), learning.UpdateSetProgressInput{
		SetID:          setID,
		CorrectAnswers: req.CorrectAnswers,
		TotalWords:     req.TotalWords,
		TimeSpentSec:   req.TimeSpentSec,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// Stats handles GET /api/v1/stats.
func (h *LearningHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
