// Package answer implements the session answer repository using PostgreSQL.
// Answers are an append-only audit trail, written once per answered word.
package answer

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

// Repo provides session answer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new answer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const answerColumns = `id, session_id, word_id, user_answer, correct_answer,
is_correct, time_spent_ms, created_at`

const createSQL = `
INSERT INTO session_answers (id, session_id, word_id, user_answer, correct_answer, is_correct, time_spent_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING ` + answerColumns

const listBySessionSQL = `
SELECT ` + answerColumns + `
FROM session_answers
WHERE session_id = $1
ORDER BY created_at ASC`

// Create appends one answer record.
func (r *Repo) Create(ctx context.Context, a *domain.SessionAnswer) (*domain.SessionAnswer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		a.ID,
		a.SessionID,
		a.WordID,
		a.UserAnswer,
		a.CorrectAnswer,
		a.IsCorrect,
		a.TimeSpentMs,
	)

	created, err := scanAnswer(row)
	if err != nil {
		return nil, mapError(err, "answer", a.ID)
	}

	return created, nil
}

// ListBySession returns a session's answers in submission order.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionAnswer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	answers := []domain.SessionAnswer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("list answers: %w", err)
		}
		answers = append(answers, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return answers, nil
}

func scanAnswer(row pgx.Row) (*domain.SessionAnswer, error) {
	var a domain.SessionAnswer
	if err := row.Scan(
		&a.ID, &a.SessionID, &a.WordID, &a.UserAnswer, &a.CorrectAnswer,
		&a.IsCorrect, &a.TimeSpentMs, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
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
