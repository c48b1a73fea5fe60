// Package stats implements the per-user learning stats repository using
// PostgreSQL. One row per user, created lazily on first read or first
// session completion.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides learning stats persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const statsColumns = `user_id, vocabulary_learned, current_vocab_streak,
weekly_vocab_goal, weekly_vocab_progress, overall_accuracy,
total_vocabulary_time_minutes, words_seen, created_at, updated_at`

const getSQL = `
SELECT ` + statsColumns + `
FROM learning_stats
WHERE user_id = $1`

const createSQL = `
INSERT INTO learning_stats (user_id, weekly_vocab_goal, created_at, updated_at)
VALUES ($1, $2, now(), now())
ON CONFLICT (user_id) DO NOTHING
RETURNING ` + statsColumns

const applySessionSQL = `
UPDATE learning_stats
SET vocabulary_learned            = vocabulary_learned + $2,
	weekly_vocab_progress         = weekly_vocab_progress + $2,
	overall_accuracy              = $3,
	total_vocabulary_time_minutes = total_vocabulary_time_minutes + $4,
	words_seen                    = words_seen + $5,
	updated_at                    = now()
WHERE user_id = $1
RETURNING ` + statsColumns

// Get returns the user's stats row.
// Returns domain.ErrNotFound when no row exists yet.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID)

	s, err := scanStats(row)
	if err != nil {
		return nil, mapError(err, "stats", userID)
	}

	return s, nil
}

// Create inserts a zeroed stats row with the given weekly goal.
// A concurrent create wins silently; the existing row is returned either way.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, weeklyGoal int) (*domain.LearningStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, userID, weeklyGoal)

	s, err := scanStats(row)
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row when someone else created it.
		if errors.Is(err, pgx.ErrNoRows) {
			return r.Get(ctx, userID)
		}
		return nil, mapError(err, "stats", userID)
	}

	return s, nil
}

// ApplySession folds one completed session into the user's stats row.
// newlyLearned counts words that crossed the learned threshold this session.
// The row must already exist.
func (r *Repo) ApplySession(ctx context.Context, userID uuid.UUID, newlyLearned int, overallAccuracy float64, minutes, wordsSeen int) (*domain.LearningStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, applySessionSQL,
		userID,
		newlyLearned,
		overallAccuracy,
		minutes,
		wordsSeen,
	)

	s, err := scanStats(row)
	if err != nil {
		return nil, mapError(err, "stats", userID)
	}

	return s, nil
}

func scanStats(row pgx.Row) (*domain.LearningStats, error) {
	var s domain.LearningStats
	if err := row.Scan(
		&s.UserID, &s.VocabularyLearned, &s.CurrentVocabStreak,
		&s.WeeklyVocabGoal, &s.WeeklyVocabProgress, &s.OverallAccuracy,
		&s.TotalVocabularyTimeMinutes, &s.WordsSeen, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
