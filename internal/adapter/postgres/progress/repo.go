// Package progress implements the per-set vocabulary progress repository
// using PostgreSQL. The single write path is an increment-upsert applied on
// session completion, so concurrent completions accumulate instead of
// overwriting each other.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides vocabulary progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const progressColumns = `user_id, set_id, completed_words, total_words, accuracy,
time_spent_minutes, is_completed, last_studied, created_at, updated_at`

const getSQL = `
SELECT ` + progressColumns + `
FROM vocabulary_progress
WHERE user_id = $1 AND set_id = $2`

// completed_words and time_spent_minutes accumulate; accuracy and
// total_words are replaced by the latest session's values.
const applySessionSQL = `
INSERT INTO vocabulary_progress (user_id, set_id, completed_words, total_words,
	accuracy, time_spent_minutes, is_completed, last_studied, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $3 >= $4, $7, now(), now())
ON CONFLICT (user_id, set_id) DO UPDATE SET
	completed_words    = vocabulary_progress.completed_words + EXCLUDED.completed_words,
	total_words        = EXCLUDED.total_words,
	accuracy           = EXCLUDED.accuracy,
	time_spent_minutes = vocabulary_progress.time_spent_minutes + EXCLUDED.time_spent_minutes,
	is_completed       = vocabulary_progress.completed_words + EXCLUDED.completed_words >= EXCLUDED.total_words,
	last_studied       = EXCLUDED.last_studied,
	updated_at         = now()
RETURNING ` + progressColumns

// Get returns the user's progress for one set.
// Returns domain.ErrNotFound when the user has never studied the set.
func (r *Repo) Get(ctx context.Context, userID, setID uuid.UUID) (*domain.VocabularyProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID, setID)

	p, err := scanProgress(row)
	if err != nil {
		return nil, mapError(err, "progress", setID)
	}

	return p, nil
}

// ApplySession folds one completed session into the set's progress row,
// creating it on first study.
func (r *Repo) ApplySession(ctx context.Context, userID, setID uuid.UUID, correctAnswers, totalWords int, accuracy float64, minutes int, studiedAt time.Time) (*domain.VocabularyProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, applySessionSQL,
		userID,
		setID,
		correctAnswers,
		totalWords,
		accuracy,
		minutes,
		studiedAt.UTC().Truncate(time.Microsecond),
	)

	p, err := scanProgress(row)
	if err != nil {
		return nil, mapError(err, "progress", setID)
	}

	return p, nil
}

func scanProgress(row pgx.Row) (*domain.VocabularyProgress, error) {
	var p domain.VocabularyProgress
	if err := row.Scan(
		&p.UserID, &p.SetID, &p.CompletedWords, &p.TotalWords, &p.AccuracyRate,
		&p.TimeSpentMinutes, &p.IsCompleted, &p.LastStudied, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
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

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
