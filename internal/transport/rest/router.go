package rest

import "net/http"

// NewRouter builds the HTTP route table. Middleware is applied by the caller.
func NewRouter(learning *LearningHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/vocabulary-sets", learning.ListSets)
	mux.HandleFunc("GET /api/v1/vocabulary-sets/{id}", learning.GetSet)
	mux.HandleFunc("GET /api/v1/stats", learning.Stats)
	mux.HandleFunc("POST /api/v1/sessions", learning.StartSession)
	mux.HandleFunc("PATCH /api/v1/sessions/{id}", learning.CompleteSession)
	mux.HandleFunc("POST /api/v1/answers", learning.RecordAnswer)
	mux.HandleFunc("PATCH /api/v1/user-words/{wordId}", learning.UpdateUserWord)
	mux.HandleFunc("POST /api/v1/user-words/{wordId}/favorite", learning.ToggleFavorite)
	mux.HandleFunc("PATCH /api/v1/vocabulary-progress", learning.UpdateProgress)
	mux.HandleFunc("GET /api/v1/review-queue", learning.ReviewQueue)
	mux.HandleFunc("GET /api/v1/favorites", learning.Favorites)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	return mux
}
