package learning

import (
	"time"
)

// ReviewRules holds the scheduling constants. Values come from
// config.LearningConfig; tests construct them directly.
type ReviewRules struct {
	MasteryGain         int
	MasteryLoss         int
	LearnedThreshold    int
	ReviewIntervalDays  int
	LearnedIntervalDays int
}

// WordState is the scheduler's view of one user word. Pure value.
type WordState struct {
	MasteryLevel int
	TimesSeen    int
	TimesCorrect int
	IsLearned    bool
	LastReviewed *time.Time
	NextReview   *time.Time
}

// ApplyOutcome is a pure function. No DB, no context, no logger.
// It folds one answer outcome into a word's state:
//
//	correct:   mastery += gain, capped at 100
//	incorrect: mastery -= loss, floored at 0
//
// TimesSeen always advances, TimesCorrect only on a correct answer.
// IsLearned tracks the threshold, and the next review lands further out
// for learned words than for unlearned ones.
func ApplyOutcome(state WordState, isCorrect bool, now time.Time, rules ReviewRules) WordState {
	next := state

	if isCorrect {
		next.MasteryLevel = min(state.MasteryLevel+rules.MasteryGain, 100)
		next.TimesCorrect = state.TimesCorrect + 1
	} else {
		next.MasteryLevel = max(state.MasteryLevel-rules.MasteryLoss, 0)
	}

	next.TimesSeen = state.TimesSeen + 1
	next.IsLearned = next.MasteryLevel >= rules.LearnedThreshold

	intervalDays := rules.ReviewIntervalDays
	if next.IsLearned {
		intervalDays = rules.LearnedIntervalDays
	}

	reviewed := now
	due := now.AddDate(0, 0, intervalDays)
	next.LastReviewed = &reviewed
	next.NextReview = &due

	return next
}
