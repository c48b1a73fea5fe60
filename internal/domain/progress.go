package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyProgress accumulates a user's progress within one set across
// sessions. CompletedWords and TimeSpentMinutes are increment-only;
// AccuracyRate is replaced with the latest session's value.
type VocabularyProgress struct {
	UserID           uuid.UUID
	SetID            uuid.UUID
	CompletedWords   int
	TotalWords       int
	AccuracyRate     float64
	TimeSpentMinutes int
	IsCompleted      bool
	LastStudied      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DailyLearning is one row per (user, calendar day), accumulating outcomes
// of every session completed that day.
type DailyLearning struct {
	UserID            uuid.UUID
	Date              time.Time
	WordsLearned      int
	TimeSpentSeconds  int
	SessionsCompleted int
	Accuracy          float64
}

// LearningStats is the per-user aggregate, one row per user.
// It is a derived cache: MasteryScore and CurrentVocabStreak are recomputed
// from UserWord and DailyLearning on read, the rest is maintained on session
// completion.
type LearningStats struct {
	UserID                     uuid.UUID
	VocabularyLearned          int
	CurrentVocabStreak         int
	WeeklyVocabGoal            int
	WeeklyVocabProgress        int
	OverallAccuracy            float64
	TotalVocabularyTimeMinutes int
	MasteryScore               int
	WordsSeen                  int
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// MasteryAggregate holds SQL-computed totals over a user's words.
type MasteryAggregate struct {
	WordCount    int
	MasterySum   int
	LearnedCount int
}

// Score returns the rounded average mastery level, or 0 with no words.
func (a MasteryAggregate) Score() int {
	if a.WordCount == 0 {
		return 0
	}
	return (a.MasterySum + a.WordCount/2) / a.WordCount
}
