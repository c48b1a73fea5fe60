package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyWord is a single word inside a vocabulary set.
// Content is immutable once published; per-user learning state lives in UserWord.
type VocabularyWord struct {
	ID            uuid.UUID
	SetID         uuid.UUID
	Word          string
	Translation   string
	Pronunciation string
	PartOfSpeech  PartOfSpeech
	Difficulty    Difficulty
	Definition    string
	Examples      []string
	Synonyms      []string
	Antonyms      []string
	Tags          []string
	AudioURL      *string
	ImageURL      *string
	Position      int
	CreatedAt     time.Time
}

// VocabularySet is an ordered collection of vocabulary words.
// Word order matters for display only, never for scheduling.
type VocabularySet struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	Level            string
	IsPremium        bool
	IsPublished      bool
	Rating           float64
	EstimatedMinutes int
	Author           string
	Thumbnail        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WordWithState joins a word's content with the acting user's learning state.
// State is zero-valued (never seen) when the user has no UserWord row yet.
type WordWithState struct {
	VocabularyWord
	IsFavorite   bool
	IsLearned    bool
	MasteryLevel int
	TimesSeen    int
	TimesCorrect int
	LastReviewed *time.Time
}

// SetWithProgress is the per-user view of a vocabulary set: the set content,
// its words joined with the user's state, and the user's set-level progress.
type SetWithProgress struct {
	VocabularySet
	Words          []WordWithState
	WordCount      int
	CompletedWords int
	AccuracyRate   float64
	IsCompleted    bool
	LastStudied    *time.Time
}
