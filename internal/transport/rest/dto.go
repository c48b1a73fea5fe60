package rest

import (
	"time"

	"github.com/lexicult/lexicult-backend/internal/domain"
)

type wordResponse struct {
	ID            string   `json:"id"`
	SetID         string   `json:"setId"`
	Word          string   `json:"word"`
	Translation   string   `json:"translation"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"partOfSpeech,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Definition    string   `json:"definition,omitempty"`
	Examples      []string `json:"examples,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	AudioURL      *string  `json:"audioUrl,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	Position      int      `json:"position"`
}

type wordStateResponse struct {
	wordResponse
	IsFavorite   bool       `json:"isFavorite"`
	IsLearned    bool       `json:"isLearned"`
	MasteryLevel int        `json:"masteryLevel"`
	TimesSeen    int        `json:"timesSeen"`
	TimesCorrect int        `json:"timesCorrect"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
}

type setResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description,omitempty"`
	Category         string              `json:"category"`
	Level            string              `json:"level"`
	IsPremium        bool                `json:"isPremium"`
	Rating           float64             `json:"rating"`
	EstimatedMinutes int                 `json:"estimatedMinutes"`
	Author           string              `json:"author,omitempty"`
	Thumbnail        *string             `json:"thumbnail,omitempty"`
	WordCount        int                 `json:"wordCount"`
	CompletedWords   int                 `json:"completedWords"`
	AccuracyRate     float64             `json:"accuracyRate"`
	IsCompleted      bool                `json:"isCompleted"`
	LastStudied      *time.Time          `json:"lastStudied,omitempty"`
	Words            []wordStateResponse `json:"words,omitempty"`
}

type setListResponse struct {
	Sets  []setResponse `json:"sets"`
	Total int           `json:"total"`
}

type sessionResponse struct {
	ID               string     `json:"id"`
	SetID            string     `json:"setId"`
	Mode             string     `json:"mode"`
	Status           string     `json:"status"`
	TotalWords       int        `json:"totalWords"`
	CorrectAnswers   int        `json:"correctAnswers"`
	CompletedWords   int        `json:"completedWords"`
	AccuracyRate     float64    `json:"accuracyRate"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

type startSessionResponse struct {
	Session sessionResponse `json:"session"`
	Words   []wordResponse  `json:"words"`
}

type answerResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	WordID      string    `json:"wordId"`
	IsCorrect   bool      `json:"isCorrect"`
	TimeSpentMs int       `json:"timeSpentMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

type userWordResponse struct {
	WordID       string     `json:"wordId"`
	IsFavorite   bool       `json:"isFavorite"`
	IsLearned    bool       `json:"isLearned"`
	MasteryLevel int        `json:"masteryLevel"`
	TimesSeen    int        `json:"timesSeen"`
	TimesCorrect int        `json:"timesCorrect"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`
}

type reviewWordResponse struct {
	userWordResponse
	Word wordResponse `json:"word"`
}

type progressResponse struct {
	SetID            string    `json:"setId"`
	CompletedWords   int       `json:"completedWords"`
	TotalWords       int       `json:"totalWords"`
	AccuracyRate     float64   `json:"accuracyRate"`
	TimeSpentMinutes int       `json:"timeSpentMinutes"`
	IsCompleted      bool      `json:"isCompleted"`
	LastStudied      time.Time `json:"lastStudied"`
}

type statsResponse struct {
	VocabularyLearned          int     `json:"vocabularyLearned"`
	CurrentVocabStreak         int     `json:"currentVocabStreak"`
	WeeklyVocabGoal            int     `json:"weeklyVocabGoal"`
	WeeklyVocabProgress        int     `json:"weeklyVocabProgress"`
	OverallAccuracy            float64 `json:"overallAccuracy"`
	TotalVocabularyTimeMinutes int     `json:"totalVocabularyTimeMinutes"`
	MasteryScore               int     `json:"masteryScore"`
	WordsSeen                  int     `json:"wordsSeen"`
}

func toWordResponse(w domain.VocabularyWord) wordResponse {
	return wordResponse{
		ID:            w.ID.String(),
		SetID:         w.SetID.String(),
		Word:          w.Word,
		Translation:   w.Translation,
		Pronunciation: w.Pronunciation,
		PartOfSpeech:  w.PartOfSpeech.String(),
		Difficulty:    w.Difficulty.String(),
		Definition:    w.Definition,
		Examples:      w.Examples,
		Synonyms:      w.Synonyms,
		Antonyms:      w.Antonyms,
		Tags:          w.Tags,
		AudioURL:      w.AudioURL,
		ImageURL:      w.ImageURL,
		Position:      w.Position,
	}
}

func toWordStateResponse(w domain.WordWithState) wordStateResponse {
	return wordStateResponse{
		wordResponse: toWordResponse(w.VocabularyWord),
		IsFavorite:   w.IsFavorite,
		IsLearned:    w.IsLearned,
		MasteryLevel: w.MasteryLevel,
		TimesSeen:    w.TimesSeen,
		TimesCorrect: w.TimesCorrect,
		LastReviewed: w.LastReviewed,
	}
}

func toSetResponse(s domain.SetWithProgress) setResponse {
	resp := setResponse{
		ID:               s.ID.String(),
		Title:            s.Title,
		Description:      s.Description,
		Category:         s.Category,
		Level:            s.Level,
		IsPremium:        s.IsPremium,
		Rating:           s.Rating,
		EstimatedMinutes: s.EstimatedMinutes,
		Author:           s.Author,
		Thumbnail:        s.Thumbnail,
		WordCount:        s.WordCount,
		CompletedWords:   s.CompletedWords,
		AccuracyRate:     s.AccuracyRate,
		IsCompleted:      s.IsCompleted,
		LastStudied:      s.LastStudied,
	}
	for _, w := range s.Words {
		resp.Words = append(resp.Words, toWordStateResponse(w))
	}
	return resp
}

func toSessionResponse(s *domain.LearningSession) sessionResponse {
	return sessionResponse{
		ID:               s.ID.String(),
		SetID:            s.SetID.String(),
		Mode:             s.Mode.String(),
		Status:           s.Status.String(),
		TotalWords:       s.TotalWords,
		CorrectAnswers:   s.CorrectAnswers,
		CompletedWords:   s.CompletedWords,
		AccuracyRate:     s.AccuracyRate,
		TimeSpentSeconds: s.TimeSpentSeconds,
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
	}
}

func toAnswerResponse(a *domain.SessionAnswer) answerResponse {
	return answerResponse{
		ID:          a.ID.String(),
		SessionID:   a.SessionID.String(),
		WordID:      a.WordID.String(),
		IsCorrect:   a.IsCorrect,
		TimeSpentMs: a.TimeSpentMs,
		CreatedAt:   a.CreatedAt,
	}
}

func toUserWordResponse(w *domain.UserWord) userWordResponse {
	return userWordResponse{
		WordID:       w.WordID.String(),
		IsFavorite:   w.IsFavorite,
		IsLearned:    w.IsLearned,
		MasteryLevel: w.MasteryLevel,
		TimesSeen:    w.TimesSeen,
		TimesCorrect: w.TimesCorrect,
		LastReviewed: w.LastReviewed,
		NextReview:   w.NextReview,
	}
}

func toReviewWordResponse(w domain.ReviewWord) reviewWordResponse {
	return reviewWordResponse{
		userWordResponse: toUserWordResponse(&w.UserWord),
		Word:             toWordResponse(w.Word),
	}
}

func toProgressResponse(p *domain.VocabularyProgress) progressResponse {
	return progressResponse{
		SetID:            p.SetID.String(),
		CompletedWords:   p.CompletedWords,
		TotalWords:       p.TotalWords,
		AccuracyRate:     p.AccuracyRate,
		TimeSpentMinutes: p.TimeSpentMinutes,
		IsCompleted:      p.IsCompleted,
		LastStudied:      p.LastStudied,
	}
}

func toStatsResponse(s *domain.LearningStats) statsResponse {
	return statsResponse{
		VocabularyLearned:          s.VocabularyLearned,
		CurrentVocabStreak:         s.CurrentVocabStreak,
		WeeklyVocabGoal:            s.WeeklyVocabGoal,
		WeeklyVocabProgress:        s.WeeklyVocabProgress,
		OverallAccuracy:            s.OverallAccuracy,
		TotalVocabularyTimeMinutes: s.TotalVocabularyTimeMinutes,
		MasteryScore:               s.MasteryScore,
		WordsSeen:                  s.WordsSeen,
	}
}
