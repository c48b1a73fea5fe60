// Package session implements the learning session repository using
// PostgreSQL. All queries use raw SQL constants.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexicult/lexicult-backend/internal/adapter/postgres"
	"github.com/lexicult/lexicult-backend/internal/domain"
)

// Repo provides learning session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, set_id, mode, status, total_words,
correct_answers, completed_words, accuracy_rate, time_spent_seconds,
started_at, completed_at, created_at`

const createSQL = `
INSERT INTO learning_sessions (id, user_id, set_id, mode, status, total_words, started_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM learning_sessions
WHERE id = $1 AND user_id = $2`

const completeSQL = `
UPDATE learning_sessions
SET status = 'COMPLETED',
	correct_answers = $3,
	completed_words = $4,
	accuracy_rate = $5,
	time_spent_seconds = $6,
	completed_at = $7
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'
RETURNING ` + sessionColumns

const markAbandonedSQL = `
UPDATE learning_sessions
SET status = 'ABANDONED', completed_at = now()
WHERE status = 'ACTIVE' AND started_at < $1`

// Create inserts a new ACTIVE session stub and returns the persisted record.
func (r *Repo) Create(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	startedAt := s.StartedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.SetID,
		string(s.Mode),
		string(s.Status),
		s.TotalWords,
		startedAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "session", s.ID)
	}

	return created, nil
}

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, sessionID, userID)

	s, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "session", sessionID)
	}

	return s, nil
}

// Complete finalizes an ACTIVE session with its results.
// Returns domain.ErrNotFound if the session does not exist, belongs to
// another user, or is no longer ACTIVE; finalization happens at most once.
func (r *Repo) Complete(ctx context.Context, s *domain.LearningSession) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var completedAt *time.Time
	if s.CompletedAt != nil {
		t := s.CompletedAt.UTC().Truncate(time.Microsecond)
		completedAt = &t
	}

	row := querier.QueryRow(ctx, completeSQL,
		s.ID,
		s.UserID,
		s.CorrectAnswers,
		s.CompletedWords,
		s.AccuracyRate,
		s.TimeSpentSeconds,
		completedAt,
	)

	completed, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "session", s.ID)
	}

	return completed, nil
}

// MarkAbandoned transitions every ACTIVE session started before the cutoff
// to ABANDONED. Returns the number of sessions swept.
func (r *Repo) MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markAbandonedSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark abandoned sessions: %w", err)
	}

	return int(ct.RowsAffected()), nil
}

func scanSession(row pgx.Row) (*domain.LearningSession, error) {
	var (
		s      domain.LearningSession
		mode   string
		status string
	)

	if err := row.Scan(
		&s.ID, &s.UserID, &s.SetID, &mode, &status, &s.TotalWords,
		&s.CorrectAnswers, &s.CompletedWords, &s.AccuracyRate,
		&s.TimeSpentSeconds, &s.StartedAt, &s.CompletedAt, &s.CreatedAt,
	); err != nil {
		return nil, err
	}

	s.Mode = domain.LearningMode(mode)
	s.Status = domain.SessionStatus(status)

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
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
