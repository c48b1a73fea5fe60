// Package daily implements the daily learning activity repository using
// PostgreSQL. One row per (user, calendar day), upserted on each session
// completion and scanned in reverse date order for streak computation.
package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides daily learning persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily learning repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const dailyColumns = `user_id, date, words_learned, time_spent_seconds,
sessions_completed, accuracy`

const applySessionSQL = `
INSERT INTO daily_learning (user_id, date, words_learned, time_spent_seconds,
	sessions_completed, accuracy, created_at, updated_at)
VALUES ($1, $2, $3, $4, 1, $5, now(), now())
ON CONFLICT (user_id, date) DO UPDATE SET
	words_learned      = daily_learning.words_learned + EXCLUDED.words_learned,
	time_spent_seconds = daily_learning.time_spent_seconds + EXCLUDED.time_spent_seconds,
	sessions_completed = daily_learning.sessions_completed + 1,
	accuracy           = EXCLUDED.accuracy,
	updated_at         = now()
RETURNING ` + dailyColumns

const getRecentSQL = `
SELECT ` + dailyColumns + `
FROM daily_learning
WHERE user_id = $1
ORDER BY date DESC
LIMIT $2`

// ApplySession folds one completed session into the day's row,
// creating it on the day's first session.
func (r *Repo) ApplySession(ctx context.Context, userID uuid.UUID, day time.Time, wordsLearned, seconds int, accuracy float64) (*domain.DailyLearning, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, applySessionSQL,
		userID,
		day.UTC().Truncate(24*time.Hour),
		wordsLearned,
		seconds,
		accuracy,
	)

	var d domain.DailyLearning
	if err := row.Scan(
		&d.UserID, &d.Date, &d.WordsLearned, &d.TimeSpentSeconds,
		&d.SessionsCompleted, &d.Accuracy,
	); err != nil {
		return nil, fmt.Errorf("apply daily session: %w", err)
	}

	return &d, nil
}

// GetRecent returns the user's most recent activity rows, newest first.
// Days with no activity have no row.
func (r *Repo) GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyLearning, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getRecentSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent daily learning: %w", err)
	}
	defer rows.Close()

	days := []domain.DailyLearning{}
	for rows.Next() {
		var d domain.DailyLearning
		if err := rows.Scan(
			&d.UserID, &d.Date, &d.WordsLearned, &d.TimeSpentSeconds,
			&d.SessionsCompleted, &d.Accuracy,
		); err != nil {
			return nil, fmt.Errorf("get recent daily learning: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get recent daily learning: %w", err)
	}

	return days, nil
}
