package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/internal/domain"
	"github.com/lexicult/lexicult-backend/internal/service/learning"
)

type startSessionRequest struct {
	SetID string `json:"setId"`
	Mode  string `json:"mode"`
}

type completeSessionRequest struct {
	CorrectAnswers int `json:"correctAnswers"`
}

type recordAnswerRequest struct {
	SessionID     string `json:"sessionId"`
	WordID        string `json:"wordId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	TimeSpentMs   int    `json:"timeSpentMs"`
}

// StartSession handles POST /api/v1/sessions.
func (h *LearningHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	setID, _ := uuid.Parse(req.SetID)
	result, err := h.svc.StartSession(r.Context(), learning.StartSessionInput{
		SetID: setID,
		Mode:  domain.LearningMode(req.Mode),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := startSessionResponse{
		Session: toSessionResponse(result.Session),
		Words:   make([]wordResponse, 0, len(result.Words)),
	}
	for _, word := range result.Words {
		resp.Words = append(resp.Words, toWordResponse(word))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// CompleteSession handles PATCH /api/v1/sessions/{id}.
func (h *LearningHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req completeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), learning.CompleteSessionInput{
		SessionID:      sessionID,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// RecordAnswer handles POST /api/v1/answers.
func (h *LearningHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req recordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, _ := uuid.Parse(req.SessionID)
	wordID, _ := uuid.Parse(req.WordID)
	answer, err := h.svc.RecordAnswer(r.Context(), learning.RecordAnswerInput{
		SessionID:     sessionID,
		WordID:        wordID,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		IsCorrect:     req.IsCorrect,
		TimeSpentMs:   req.TimeSpentMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnswerResponse(answer))
}
